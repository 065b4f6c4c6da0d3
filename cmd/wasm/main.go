//go:build js && wasm

package main

import (
	"encoding/json"
	"fmt"
	"syscall/js"
	"time"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"github.com/vietkhmer/vkedit/internal/index"
	"github.com/vietkhmer/vkedit/internal/store"
	"github.com/vietkhmer/vkedit/pkg/command"
	"github.com/vietkhmer/vkedit/pkg/docmanager"
	"github.com/vietkhmer/vkedit/pkg/editor"
	"github.com/vietkhmer/vkedit/pkg/export"
	"github.com/vietkhmer/vkedit/pkg/i18n"
	"github.com/vietkhmer/vkedit/pkg/logger"
)

const Version = "1.0.0"

// Widget binding retries. The page constructs Quill before loading the wasm
// module, but script ordering in the wild is not guaranteed.
const (
	bindAttempts = 50
	bindDelay    = 100 * time.Millisecond
)

// app holds the wired components. Everything runs on the JS event loop, so
// no locking is needed here.
type app struct {
	log        *zap.Logger
	tr         *i18n.Translator
	store      *store.Store
	index      *index.Index
	widget     *editor.QuillWidget
	ed         *editor.Adapter
	manager    *docmanager.Manager
	autosave   *editor.Autosave
	exporter   *export.Coordinator
	dispatcher *command.Dispatcher
}

func main() {
	log := logger.New(zapcore.InfoLevel)
	a := &app{log: log, tr: i18n.New()}

	var backend store.Backend
	backend, err := store.NewLocalStorageBackend()
	storageDown := err != nil
	if storageDown {
		// Documents survive only for the session, but the editor still works.
		log.Warn("localStorage unavailable, using in-memory storage", zap.Error(err))
		backend = store.NewMemoryBackend()
	}
	a.store = store.New(backend, hostNotifier{app: a}, log)
	a.tr.SetLanguage(a.pickLanguage())
	if storageDown {
		hostNotifier{app: a}.Notify(store.NoticeWarning, "storageUnavailable")
	}

	ix, err := index.New()
	if err != nil {
		log.Warn("content index unavailable", zap.Error(err))
	} else {
		a.index = ix
	}

	widget, err := bindWidget()
	if err != nil {
		log.Error("editor widget init failed", zap.Error(err))
		hostNotifier{app: a}.Notify(store.NoticeError, "editorInitFailed")
		return
	}
	a.widget = widget
	a.ed = editor.NewAdapter(widget)

	a.manager = docmanager.New(a.store, a.index, a.ed, a.tr,
		hostNotifier{app: a}, jsConfirmer{app: a}, log)
	a.exporter = export.NewCoordinator(log)

	settings := a.store.GetSettings()
	a.autosave = editor.NewAutosave(
		func() { a.manager.SaveCurrent(a.currentTitle()) },
		editor.DefaultDebounce,
		time.Duration(settings.AutoSaveInterval)*time.Millisecond,
	)
	if settings.AutoSave {
		a.autosave.Start()
		widget.OnTextChange(a.autosave.Trigger)
	}

	a.dispatcher = a.buildDispatcher()
	a.manager.Init()

	js.Global().Set("VKEdit", js.ValueOf(map[string]interface{}{
		"version": js.FuncOf(func(js.Value, []js.Value) interface{} { return Version }),

		// Document lifecycle
		"newDocument":       js.FuncOf(a.jsNewDocument),
		"saveDocument":      js.FuncOf(a.jsSaveDocument),
		"openDocument":      js.FuncOf(a.jsOpenDocument),
		"deleteDocument":    js.FuncOf(a.jsDeleteDocument),
		"duplicateDocument": js.FuncOf(a.jsDuplicateDocument),
		"currentDocument":   js.FuncOf(a.jsCurrentDocument),
		"listDocuments":     js.FuncOf(a.jsListDocuments),
		"searchDocuments":   js.FuncOf(a.jsSearchDocuments),
		"searchContent":     js.FuncOf(a.jsSearchContent),

		// Editing
		"toggleFormat":   js.FuncOf(a.jsToggleFormat),
		"setFormat":      js.FuncOf(a.jsSetFormat),
		"toggleList":     js.FuncOf(a.jsToggleList),
		"insertTable":    js.FuncOf(a.jsInsertTable),
		"insertLink":     js.FuncOf(a.jsInsertLink),
		"insertImage":    js.FuncOf(a.jsInsertImage),
		"findNext":       js.FuncOf(a.jsFindNext),
		"replaceCurrent": js.FuncOf(a.jsReplaceCurrent),
		"replaceAll":     js.FuncOf(a.jsReplaceAll),
		"getStats":       js.FuncOf(a.jsGetStats),
		"topWords":       js.FuncOf(a.jsTopWords),

		// Export
		"exportWord":    js.FuncOf(a.jsExportWord),
		"exportPDF":     js.FuncOf(a.jsExportPDF),
		"exportJSON":    js.FuncOf(a.jsExportJSON),
		"importJSON":    js.FuncOf(a.jsImportJSON),
		"printDocument": js.FuncOf(a.jsPrint),

		// Backup and storage
		"backupAll":     js.FuncOf(a.jsBackupAll),
		"restoreBackup": js.FuncOf(a.jsRestoreBackup),
		"clearAll":      js.FuncOf(a.jsClearAll),
		"storageUsage":  js.FuncOf(a.jsStorageUsage),

		// Settings and language
		"getSettings":  js.FuncOf(a.jsGetSettings),
		"saveSettings": js.FuncOf(a.jsSaveSettings),
		"setLanguage":  js.FuncOf(a.jsSetLanguage),
		"translate":    js.FuncOf(a.jsTranslate),
		"relativeTime": js.FuncOf(a.jsRelativeTime),

		// Keyboard
		"handleKey": js.FuncOf(a.jsHandleKey),
	}))

	fmt.Println("[VKEdit] WASM ready v" + Version)
	select {}
}

// bindWidget attaches to the page's Quill instance, retrying while the page
// finishes booting.
func bindWidget() (*editor.QuillWidget, error) {
	var lastErr error
	for i := 0; i < bindAttempts; i++ {
		w, err := editor.BindGlobalQuill()
		if err == nil {
			return w, nil
		}
		lastErr = err
		time.Sleep(bindDelay)
	}
	return nil, lastErr
}

// pickLanguage resolves the UI language: the explicit preference, then the
// settings record, then the browser's language list.
func (a *app) pickLanguage() string {
	if lang := a.store.GetLanguage(); lang != "" {
		return lang
	}
	if lang := a.store.GetSettings().Language; lang != "" {
		return lang
	}

	var prefs []string
	langs := js.Global().Get("navigator").Get("languages")
	if langs.Truthy() {
		for i := 0; i < langs.Length(); i++ {
			prefs = append(prefs, langs.Index(i).String())
		}
	}
	return i18n.Match(prefs...)
}

// currentTitle reads the title input the page renders above the toolbar.
func (a *app) currentTitle() string {
	el := js.Global().Get("document").Call("getElementById", "documentTitle")
	if !el.Truthy() {
		return ""
	}
	return el.Get("value").String()
}

// buildDispatcher binds keyboard commands. Commands that open panels are
// delegated to the host page, which owns the dialogs.
func (a *app) buildDispatcher() *command.Dispatcher {
	d := command.NewDispatcher()
	d.Handle(command.Save, func() {
		if a.manager.SaveCurrent(a.currentTitle()).OK() {
			hostNotifier{app: a}.Notify(store.NoticeSuccess, "documentSaved")
		}
	})
	d.Handle(command.NewDocument, func() { a.manager.CreateNew() })
	d.Handle(command.Print, func() { a.exporter.Print() })
	d.Handle(command.Bold, func() { a.ed.ToggleFormat("bold") })
	d.Handle(command.Italic, func() { a.ed.ToggleFormat("italic") })
	d.Handle(command.Underline, func() { a.ed.ToggleFormat("underline") })
	d.Handle(command.Find, func() { hostCommand("openFind") })
	d.Handle(command.Statistics, func() { hostCommand("openStatistics") })
	d.Handle(command.InsertLink, func() { hostCommand("openLinkDialog") })
	d.Handle(command.CloseOverlay, func() { hostCommand("closeOverlays") })
	d.Handle(command.Fullscreen, toggleFullscreen)
	return d
}

func toggleFullscreen() {
	doc := js.Global().Get("document")
	if doc.Get("fullscreenElement").Truthy() {
		doc.Call("exitFullscreen")
		return
	}
	doc.Get("documentElement").Call("requestFullscreen")
}

// hostCommand forwards a UI command to the host page.
func hostCommand(name string) {
	host := js.Global().Get("VKEditHost")
	if host.Truthy() && host.Get("command").Type() == js.TypeFunction {
		host.Call("command", name)
	}
}

// hostNotifier localizes a notice and hands it to the host page's toast
// surface, falling back to the console.
type hostNotifier struct{ app *app }

func (n hostNotifier) Notify(level store.NoticeLevel, key string) {
	msg := n.app.tr.T(key)
	host := js.Global().Get("VKEditHost")
	if host.Truthy() && host.Get("notify").Type() == js.TypeFunction {
		host.Call("notify", string(level), msg)
		return
	}
	fmt.Printf("[VKEdit] %s: %s\n", level, msg)
}

// jsConfirmer localizes a confirmation prompt through window.confirm.
type jsConfirmer struct{ app *app }

func (c jsConfirmer) Confirm(key string) bool {
	return js.Global().Call("confirm", c.app.tr.T(key)).Bool()
}

// Helper: JSON error result for the host page.
func errorResult(msg string) interface{} {
	bytes, _ := json.Marshal(map[string]interface{}{"error": msg})
	return string(bytes)
}

// Helper: JSON success result.
func successResult(msg string) interface{} {
	bytes, _ := json.Marshal(map[string]interface{}{"success": msg})
	return string(bytes)
}

// makePromise creates a JS Promise and returns it with its resolve/reject
// functions.
func makePromise() (promise, resolve, reject js.Value) {
	var resolveFn, rejectFn js.Value
	handler := js.FuncOf(func(this js.Value, args []js.Value) interface{} {
		resolveFn = args[0]
		rejectFn = args[1]
		return nil
	})
	defer handler.Release()

	promise = js.Global().Get("Promise").New(handler)
	return promise, resolveFn, rejectFn
}

// =============================================================================
// Document lifecycle
// =============================================================================

func (a *app) jsNewDocument(this js.Value, args []js.Value) interface{} {
	id := a.manager.CreateNew()
	if id == "" {
		return errorResult("create failed")
	}
	return id
}

// saveDocument: [title string (optional, defaults to the title input)]
func (a *app) jsSaveDocument(this js.Value, args []js.Value) interface{} {
	title := a.currentTitle()
	if len(args) > 0 && args[0].Type() == js.TypeString {
		title = args[0].String()
	}
	st := a.manager.SaveCurrent(title)
	if !st.OK() {
		return errorResult(st.String())
	}
	hostNotifier{app: a}.Notify(store.NoticeSuccess, "documentSaved")
	return successResult("saved " + a.manager.CurrentID())
}

// openDocument: [id string]
func (a *app) jsOpenDocument(this js.Value, args []js.Value) interface{} {
	if len(args) < 1 {
		return errorResult("openDocument requires 1 arg: id")
	}
	if st := a.manager.Load(args[0].String()); !st.OK() {
		return errorResult(st.String())
	}
	return successResult("opened " + args[0].String())
}

// deleteDocument: [id string]
func (a *app) jsDeleteDocument(this js.Value, args []js.Value) interface{} {
	if len(args) < 1 {
		return errorResult("deleteDocument requires 1 arg: id")
	}
	if st := a.manager.Delete(args[0].String()); !st.OK() {
		return errorResult(st.String())
	}
	return successResult("deleted")
}

// duplicateDocument: [id string]
func (a *app) jsDuplicateDocument(this js.Value, args []js.Value) interface{} {
	if len(args) < 1 {
		return errorResult("duplicateDocument requires 1 arg: id")
	}
	id, st := a.manager.Duplicate(args[0].String())
	if !st.OK() {
		return errorResult(st.String())
	}
	return id
}

func (a *app) jsCurrentDocument(this js.Value, args []js.Value) interface{} {
	return a.manager.CurrentID()
}

func (a *app) jsListDocuments(this js.Value, args []js.Value) interface{} {
	bytes, _ := json.Marshal(a.manager.List())
	return string(bytes)
}

// searchDocuments: [query string]
func (a *app) jsSearchDocuments(this js.Value, args []js.Value) interface{} {
	query := ""
	if len(args) > 0 {
		query = args[0].String()
	}
	bytes, _ := json.Marshal(a.manager.Search(query))
	return string(bytes)
}

// searchContent: [query string, limit int (optional)]
func (a *app) jsSearchContent(this js.Value, args []js.Value) interface{} {
	if len(args) < 1 {
		return errorResult("searchContent requires 1 arg: query")
	}
	limit := 20
	if len(args) > 1 && args[1].Type() == js.TypeNumber {
		limit = args[1].Int()
	}
	bytes, _ := json.Marshal(a.manager.SearchContent(args[0].String(), limit))
	return string(bytes)
}

// =============================================================================
// Editing
// =============================================================================

func (a *app) jsToggleFormat(this js.Value, args []js.Value) interface{} {
	if len(args) < 1 {
		return errorResult("toggleFormat requires 1 arg: name")
	}
	a.ed.ToggleFormat(args[0].String())
	return nil
}

// setFormat: [name string, value string]
func (a *app) jsSetFormat(this js.Value, args []js.Value) interface{} {
	if len(args) < 2 {
		return errorResult("setFormat requires 2 args: name, value")
	}
	a.ed.SetFormat(args[0].String(), args[1].String())
	return nil
}

// toggleList: [kind string]
func (a *app) jsToggleList(this js.Value, args []js.Value) interface{} {
	if len(args) < 1 {
		return errorResult("toggleList requires 1 arg: kind")
	}
	a.ed.ToggleList(args[0].String())
	return nil
}

// insertTable: [rows int, cols int]
func (a *app) jsInsertTable(this js.Value, args []js.Value) interface{} {
	if len(args) < 2 {
		return errorResult("insertTable requires 2 args: rows, cols")
	}
	if err := a.ed.InsertTable(args[0].Int(), args[1].Int()); err != nil {
		hostNotifier{app: a}.Notify(store.NoticeError, "invalidTableSize")
		return errorResult(err.Error())
	}
	return successResult("table inserted")
}

// insertLink: [text string, url string]
func (a *app) jsInsertLink(this js.Value, args []js.Value) interface{} {
	if len(args) < 2 {
		return errorResult("insertLink requires 2 args: text, url")
	}
	if err := a.ed.InsertLink(args[0].String(), args[1].String()); err != nil {
		hostNotifier{app: a}.Notify(store.NoticeError, "enterUrl")
		return errorResult(err.Error())
	}
	return successResult("link inserted")
}

// insertImage: [src string]
func (a *app) jsInsertImage(this js.Value, args []js.Value) interface{} {
	if len(args) < 1 {
		return errorResult("insertImage requires 1 arg: src")
	}
	if err := a.ed.InsertImage(args[0].String()); err != nil {
		return errorResult(err.Error())
	}
	return successResult("image inserted")
}

// findNext: [query string]
func (a *app) jsFindNext(this js.Value, args []js.Value) interface{} {
	if len(args) < 1 {
		return errorResult("findNext requires 1 arg: query")
	}
	found, wrapped, err := a.ed.FindNext(args[0].String())
	if err != nil {
		return errorResult(err.Error())
	}
	bytes, _ := json.Marshal(map[string]interface{}{
		"found":   found,
		"wrapped": wrapped,
	})
	return string(bytes)
}

// replaceCurrent: [query string, replacement string]
func (a *app) jsReplaceCurrent(this js.Value, args []js.Value) interface{} {
	if len(args) < 2 {
		return errorResult("replaceCurrent requires 2 args: query, replacement")
	}
	replaced, err := a.ed.ReplaceCurrent(args[0].String(), args[1].String())
	if err != nil {
		return errorResult(err.Error())
	}
	bytes, _ := json.Marshal(map[string]interface{}{"replaced": replaced})
	return string(bytes)
}

// replaceAll: [query string, replacement string]
func (a *app) jsReplaceAll(this js.Value, args []js.Value) interface{} {
	if len(args) < 2 {
		return errorResult("replaceAll requires 2 args: query, replacement")
	}
	n, err := a.ed.ReplaceAll(args[0].String(), args[1].String())
	if err != nil {
		return errorResult(err.Error())
	}
	bytes, _ := json.Marshal(map[string]interface{}{"count": n})
	return string(bytes)
}

func (a *app) jsGetStats(this js.Value, args []js.Value) interface{} {
	bytes, _ := json.Marshal(a.ed.Stats())
	return string(bytes)
}

// topWords: [limit int (optional)]
func (a *app) jsTopWords(this js.Value, args []js.Value) interface{} {
	limit := 10
	if len(args) > 0 && args[0].Type() == js.TypeNumber {
		limit = args[0].Int()
	}
	bytes, _ := json.Marshal(a.ed.TopWords(limit))
	return string(bytes)
}

// =============================================================================
// Export
// =============================================================================

func (a *app) jsExportWord(this js.Value, args []js.Value) interface{} {
	title := a.currentTitle()
	c := a.ed.GetContent()
	if err := a.exporter.ExportWord(title, c.HTML); err != nil {
		hostNotifier{app: a}.Notify(store.NoticeError, "errorExportingWord")
		return errorResult(err.Error())
	}
	hostNotifier{app: a}.Notify(store.NoticeSuccess, "exportedWord")
	return successResult("word export started")
}

// exportPDF returns a Promise resolving when the file has been generated.
func (a *app) jsExportPDF(this js.Value, args []js.Value) interface{} {
	promise, resolve, reject := makePromise()
	title := a.currentTitle()

	a.exporter.ExportPDF(title, func(err error) {
		if err != nil {
			hostNotifier{app: a}.Notify(store.NoticeError, "errorExportingPDF")
			reject.Invoke(js.Global().Get("Error").New(err.Error()))
			return
		}
		hostNotifier{app: a}.Notify(store.NoticeSuccess, "exportedPDF")
		resolve.Invoke("done")
	})
	return promise
}

// exportJSON: [id string (optional, defaults to the open document)]
func (a *app) jsExportJSON(this js.Value, args []js.Value) interface{} {
	id := a.manager.CurrentID()
	if len(args) > 0 && args[0].Type() == js.TypeString {
		id = args[0].String()
	}
	blob, st := a.store.ExportDocumentJSON(id)
	if !st.OK() {
		return errorResult(st.String())
	}
	doc, _ := a.store.Get(id)
	if err := a.exporter.ExportJSON(doc.Title, blob); err != nil {
		return errorResult(err.Error())
	}
	return successResult("json export started")
}

// importJSON: [payload string]
func (a *app) jsImportJSON(this js.Value, args []js.Value) interface{} {
	if len(args) < 1 {
		return errorResult("importJSON requires 1 arg: payload")
	}
	id, st := a.store.ImportDocumentJSON([]byte(args[0].String()))
	if !st.OK() {
		return errorResult(st.String())
	}
	if st := a.manager.Load(id); !st.OK() {
		return errorResult(st.String())
	}
	return id
}

func (a *app) jsPrint(this js.Value, args []js.Value) interface{} {
	if err := a.exporter.Print(); err != nil {
		return errorResult(err.Error())
	}
	return successResult("print dialog opened")
}

// =============================================================================
// Backup and storage
// =============================================================================

func (a *app) jsBackupAll(this js.Value, args []js.Value) interface{} {
	blob, st := a.store.BackupAll()
	if !st.OK() {
		hostNotifier{app: a}.Notify(store.NoticeError, "backupFailed")
		return errorResult(st.String())
	}
	name := "vkedit_backup_" + time.Now().Format("2006-01-02")
	if err := a.exporter.ExportJSON(name, blob); err != nil {
		return errorResult(err.Error())
	}
	hostNotifier{app: a}.Notify(store.NoticeSuccess, "backupCreated")
	return successResult("backup started")
}

// restoreBackup: [payload string]
func (a *app) jsRestoreBackup(this js.Value, args []js.Value) interface{} {
	if len(args) < 1 {
		return errorResult("restoreBackup requires 1 arg: payload")
	}
	if !(jsConfirmer{app: a}).Confirm("confirmRestore") {
		return successResult("cancelled")
	}
	if st := a.store.Restore([]byte(args[0].String())); !st.OK() {
		hostNotifier{app: a}.Notify(store.NoticeError, "restoreFailed")
		return errorResult(st.String())
	}
	if a.index != nil {
		if err := a.index.Rebuild(a.store.GetAll()); err != nil {
			a.log.Warn("index rebuild after restore failed", zap.Error(err))
		}
	}
	a.manager.Init()
	hostNotifier{app: a}.Notify(store.NoticeSuccess, "restoreSuccess")
	return successResult("restored")
}

func (a *app) jsClearAll(this js.Value, args []js.Value) interface{} {
	if !(jsConfirmer{app: a}).Confirm("confirmClearAll") {
		return successResult("cancelled")
	}
	if st := a.store.ClearAll(); !st.OK() {
		return errorResult(st.String())
	}
	if a.index != nil {
		if err := a.index.Rebuild(nil); err != nil {
			a.log.Warn("index clear failed", zap.Error(err))
		}
	}
	a.manager.Init()
	return successResult("cleared")
}

func (a *app) jsStorageUsage(this js.Value, args []js.Value) interface{} {
	u := a.store.UsageInfo()
	bytes, _ := json.Marshal(map[string]interface{}{
		"bytes":         u.Bytes,
		"documentCount": u.DocumentCount,
		"quotaBytes":    a.store.QuotaBytes(),
	})
	return string(bytes)
}

// =============================================================================
// Settings and language
// =============================================================================

func (a *app) jsGetSettings(this js.Value, args []js.Value) interface{} {
	bytes, _ := json.Marshal(a.store.GetSettings())
	return string(bytes)
}

// saveSettings: [settingsJSON string]
func (a *app) jsSaveSettings(this js.Value, args []js.Value) interface{} {
	if len(args) < 1 {
		return errorResult("saveSettings requires 1 arg: settingsJSON")
	}
	cfg := a.store.GetSettings()
	if err := json.Unmarshal([]byte(args[0].String()), &cfg); err != nil {
		return errorResult("invalid settings json: " + err.Error())
	}
	if st := a.store.SaveSettings(cfg); !st.OK() {
		return errorResult(st.String())
	}
	a.tr.SetLanguage(cfg.Language)
	return successResult("settings saved")
}

// setLanguage: [lang string]
func (a *app) jsSetLanguage(this js.Value, args []js.Value) interface{} {
	if len(args) < 1 {
		return errorResult("setLanguage requires 1 arg: lang")
	}
	lang := args[0].String()
	if !a.tr.SetLanguage(lang) {
		return errorResult("unsupported language: " + lang)
	}
	a.store.SetLanguage(lang)
	return successResult("language set")
}

// translate: [key string]
func (a *app) jsTranslate(this js.Value, args []js.Value) interface{} {
	if len(args) < 1 {
		return ""
	}
	return a.tr.T(args[0].String())
}

// relativeTime: [timestamp string] (the stored ISO format)
func (a *app) jsRelativeTime(this js.Value, args []js.Value) interface{} {
	if len(args) < 1 {
		return ""
	}
	ts := store.ParseTime(args[0].String())
	if ts.IsZero() {
		return args[0].String()
	}
	return a.tr.RelativeTime(ts, time.Now())
}

// =============================================================================
// Keyboard
// =============================================================================

// handleKey: [key string, ctrl bool, shift bool]
// Returns true when the chord was consumed, telling the page to call
// preventDefault.
func (a *app) jsHandleKey(this js.Value, args []js.Value) interface{} {
	if len(args) < 3 {
		return false
	}
	return a.dispatcher.Dispatch(args[0].String(), args[1].Bool(), args[2].Bool())
}
