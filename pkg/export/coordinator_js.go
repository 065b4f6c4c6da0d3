//go:build js && wasm

package export

import (
	"errors"
	"fmt"
	"sync/atomic"
	"syscall/js"

	"go.uber.org/zap"
)

// ErrBusy is returned when an export is already running. PDF rendering can
// take seconds and overlapping runs corrupt each other's canvas.
var ErrBusy = errors.New("an export is already in progress")

// editorSelector locates the rendered document for PDF capture.
const editorSelector = ".ql-editor"

// Coordinator drives the browser-side export libraries: a Word download from
// the HTML envelope, html2canvas plus jsPDF for PDF, plain blobs for JSON.
type Coordinator struct {
	log  *zap.Logger
	busy atomic.Bool
}

// NewCoordinator builds a coordinator. A nil logger is replaced with a no-op.
func NewCoordinator(log *zap.Logger) *Coordinator {
	if log == nil {
		log = zap.NewNop()
	}
	return &Coordinator{log: log}
}

// ExportWord downloads the document as a .doc file.
func (c *Coordinator) ExportWord(title, body string) (err error) {
	defer catch(&err)
	content := WordHTML(title, body)
	downloadBlob(Filename(title)+".doc", "application/msword", []byte(content))
	c.log.Info("word export", zap.String("title", title))
	return nil
}

// ExportJSON downloads raw bytes as a .json file.
func (c *Coordinator) ExportJSON(name string, data []byte) (err error) {
	defer catch(&err)
	downloadBlob(Filename(name)+".json", "application/json", data)
	return nil
}

// ExportPDF renders the editor to a canvas and paginates it onto A4 pages.
// The work is asynchronous; done is called exactly once with the outcome.
func (c *Coordinator) ExportPDF(title string, done func(error)) {
	if !c.busy.CompareAndSwap(false, true) {
		done(ErrBusy)
		return
	}
	finish := func(err error) {
		c.busy.Store(false)
		if err != nil {
			c.log.Error("pdf export", zap.Error(err))
		} else {
			c.log.Info("pdf export", zap.String("title", title))
		}
		done(err)
	}

	element := js.Global().Get("document").Call("querySelector", editorSelector)
	if !element.Truthy() {
		finish(errors.New("editor element not found"))
		return
	}

	opts := js.ValueOf(map[string]interface{}{
		"scale":           2,
		"useCORS":         true,
		"backgroundColor": "#ffffff",
	})

	var onCanvas, onError js.Func
	release := func() {
		onCanvas.Release()
		onError.Release()
	}
	onCanvas = js.FuncOf(func(_ js.Value, args []js.Value) interface{} {
		defer release()
		finish(c.writePDF(title, args[0]))
		return nil
	})
	onError = js.FuncOf(func(_ js.Value, args []js.Value) interface{} {
		defer release()
		finish(fmt.Errorf("html2canvas: %s", jsErrorText(args)))
		return nil
	})

	promise := js.Global().Call("html2canvas", element, opts)
	promise.Call("then", onCanvas).Call("catch", onError)
}

// writePDF places the rendered canvas onto A4 pages and saves the file.
func (c *Coordinator) writePDF(title string, canvas js.Value) (err error) {
	defer catch(&err)

	imgData := canvas.Call("toDataURL", "image/png").String()
	width := canvas.Get("width").Float()
	height := canvas.Get("height").Float()

	pdf := js.Global().Get("jspdf").Get("jsPDF").New(js.ValueOf(map[string]interface{}{
		"orientation": "portrait",
		"unit":        "mm",
		"format":      "a4",
	}))

	imgHeight, pages := Paginate(width, height)
	for i, page := range pages {
		if i > 0 {
			pdf.Call("addPage")
		}
		pdf.Call("addImage", imgData, "PNG", 0, page.Y, PageWidthMM, imgHeight)
	}
	pdf.Call("save", Filename(title)+".pdf")
	return nil
}

// Print opens the browser print dialog; print CSS produces the paper layout.
func (c *Coordinator) Print() (err error) {
	defer catch(&err)
	js.Global().Get("window").Call("print")
	return nil
}

// downloadBlob triggers a client-side download through a temporary anchor.
func downloadBlob(filename, mime string, data []byte) {
	buf := js.Global().Get("Uint8Array").New(len(data))
	js.CopyBytesToJS(buf, data)

	blob := js.Global().Get("Blob").New(
		[]interface{}{buf},
		js.ValueOf(map[string]interface{}{"type": mime}),
	)
	url := js.Global().Get("URL").Call("createObjectURL", blob)

	doc := js.Global().Get("document")
	a := doc.Call("createElement", "a")
	a.Set("href", url)
	a.Set("download", filename)
	doc.Get("body").Call("appendChild", a)
	a.Call("click")
	doc.Get("body").Call("removeChild", a)
	js.Global().Get("URL").Call("revokeObjectURL", url)
}

func jsErrorText(args []js.Value) string {
	if len(args) == 0 || !args[0].Truthy() {
		return "unknown error"
	}
	if msg := args[0].Get("message"); msg.Type() == js.TypeString {
		return msg.String()
	}
	return args[0].String()
}

// catch converts a panicking JS exception into an error return.
func catch(err *error) {
	if r := recover(); r != nil {
		if jsErr, ok := r.(js.Error); ok {
			*err = jsErr
			return
		}
		*err = fmt.Errorf("export: %v", r)
	}
}
