package i18n

// String tables carried over from the original web app. Keys are shared
// across languages; missing Khmer entries fall back to Vietnamese.

var tableVI = map[string]string{
	// App info
	"appName":          "Soạn Thảo Việt-Khmer",
	"untitledDocument": "Tài liệu chưa có tên",
	"startTyping":      "Bắt đầu soạn thảo văn bản...",

	// Header & menu
	"guest":       "Khách",
	"myDocuments": "Tài liệu của tôi",
	"settings":    "Cài đặt",

	// Toolbar actions
	"newDocument": "Tài liệu mới",
	"save":        "Lưu",
	"exportWord":  "Xuất Word",
	"exportPDF":   "Xuất PDF",
	"print":       "In",
	"undo":        "Hoàn tác",
	"redo":        "Làm lại",

	// Text formatting
	"bold":             "In đậm",
	"italic":           "In nghiêng",
	"underline":        "Gạch chân",
	"strikethrough":    "Gạch ngang",
	"textColor":        "Màu chữ",
	"backgroundColor":  "Màu nền",
	"removeBackground": "Xóa màu nền",

	// Alignment
	"alignLeft":    "Căn trái",
	"alignCenter":  "Căn giữa",
	"alignRight":   "Căn phải",
	"alignJustify": "Căn đều",

	// Lists
	"bulletList": "Danh sách gạch đầu dòng",
	"numberList": "Danh sách đánh số",

	// Insert
	"insertImage": "Chèn hình ảnh",
	"insertTable": "Chèn bảng",
	"insertLink":  "Chèn liên kết",
	"insert":      "Chèn",

	// Find & replace
	"find":        "Tìm kiếm",
	"findReplace": "Tìm & Thay thế",
	"findWhat":    "Tìm kiếm:",
	"replaceWith": "Thay bằng:",
	"findNext":    "Tìm tiếp",
	"replace":     "Thay thế",
	"replaceAll":  "Thay thế tất cả",

	// Statistics
	"statistics":         "Thống kê",
	"words":              "từ",
	"characters":         "ký tự",
	"charactersNoSpaces": "Ký tự (không dấu cách)",
	"paragraphs":         "Đoạn văn",
	"page":               "trang",
	"pages":              "Trang",
	"readingTime":        "Thời gian đọc",
	"minutes":            "phút",

	// Table
	"rows":    "Số hàng",
	"columns": "Số cột",

	// Link
	"linkText": "Văn bản hiển thị",
	"linkUrl":  "URL",

	// Common
	"cancel": "Hủy",
	"delete": "Xóa",
	"copy":   "Bản sao",
	"search": "Tìm kiếm...",

	// Status
	"saved":   "Đã lưu",
	"saving":  "Đang lưu...",
	"loading": "Đang xử lý...",

	// Messages
	"documentSaved":      "Đã lưu tài liệu",
	"newDocumentCreated": "Đã tạo tài liệu mới",
	"documentNotFound":   "Không tìm thấy tài liệu",
	"documentDeleted":    "Đã xóa tài liệu",
	"noDocuments":        "Chưa có tài liệu nào",
	"noResults":          "Không tìm thấy kết quả",

	// Validation & errors
	"invalidImageFormat": "Định dạng hình ảnh không hợp lệ",
	"invalidTableSize":   "Kích thước bảng không hợp lệ",
	"enterUrl":           "Vui lòng nhập URL",
	"enterSearchText":    "Vui lòng nhập từ khóa tìm kiếm",
	"found":              "Đã tìm thấy",
	"foundFromStart":     "Tìm thấy từ đầu tài liệu",
	"notFound":           "Không tìm thấy",
	"replaced":           "Đã thay thế",
	"replacedCount":      "Đã thay thế",
	"occurrences":        "lần",

	// Export messages
	"tableInserted":      "Đã chèn bảng",
	"linkInserted":       "Đã chèn liên kết",
	"enterFileName":      "Nhập tên file:",
	"exportCancelled":    "Đã hủy xuất file",
	"exportingWord":      "Đang xuất file Word...",
	"exportedWord":       "Đã xuất file Word thành công",
	"errorExportingWord": "Lỗi khi xuất file Word",
	"exportingPDF":       "Đang xuất file PDF...",
	"exportedPDF":        "Đã xuất file PDF thành công",
	"errorExportingPDF":  "Lỗi khi xuất file PDF",
	"exportedJSON":       "Đã xuất file JSON",
	"importedJSON":       "Đã nhập tài liệu",
	"errorImporting":     "Lỗi khi nhập tài liệu",

	// Storage
	"storageQuotaExceeded": "Dung lượng lưu trữ đã đầy",
	"storageWarning":       "Dung lượng sắp đầy. Hãy xóa bớt tài liệu cũ.",
	"storageUnavailable":   "Storage không khả dụng",
	"errorSaving":          "Lỗi khi lưu tài liệu",
	"errorDeleting":        "Lỗi khi xóa tài liệu",
	"errorClearing":        "Lỗi khi xóa tài liệu",
	"confirmDelete":        "Bạn có chắc muốn xóa tài liệu này?",
	"confirmClearAll":      "Bạn có chắc muốn xóa tất cả tài liệu? Hành động này không thể hoàn tác.",
	"allDocumentsDeleted":  "Đã xóa tất cả tài liệu",
	"backupCreated":        "Đã tạo bản sao lưu",
	"backupFailed":         "Lỗi khi tạo bản sao lưu",
	"confirmRestore":       "Khôi phục bản sao lưu? Dữ liệu hiện tại sẽ bị thay thế.",
	"restoreSuccess":       "Đã khôi phục thành công",
	"restoreFailed":        "Lỗi khi khôi phục",

	// Time
	"justNow":    "Vừa xong",
	"minutesAgo": "phút trước",
	"hoursAgo":   "giờ trước",
	"daysAgo":    "ngày trước",

	// Extra surfaces
	"keyboardShortcuts": "Phím tắt",
	"templates":         "Mẫu tài liệu",
	"fullscreen":        "Toàn màn hình",
	"importDocument":    "Nhập tài liệu",
	"closeModal":        "Đóng cửa sổ",

	// Settings
	"generalSettings":  "Cài đặt chung",
	"autoSave":         "Tự động lưu",
	"autoSaveInterval": "Tần suất tự động lưu (giây)",
	"defaultFont":      "Font chữ mặc định",
	"defaultFontSize":  "Cỡ chữ mặc định",
	"appearance":       "Giao diện",
	"darkMode":         "Chế độ tối",
	"compactToolbar":   "Toolbar thu gọn",
	"storage":          "Dung lượng",
	"totalDocuments":   "Tổng số tài liệu",
	"usedStorage":      "Dung lượng đã dùng",
	"clearAllData":     "Xóa tất cả dữ liệu",
	"saveSettings":     "Lưu cài đặt",
	"settingsSaved":    "Đã lưu cài đặt",

	// Editor failures
	"editorInitFailed": "Không thể khởi tạo trình soạn thảo. Vui lòng tải lại trang.",
}

var tableKM = map[string]string{
	// App info
	"appName":          "កម្មវិធីសរសេរ វៀត-ខ្មែរ",
	"untitledDocument": "ឯកសារគ្មានចំណងជើង",
	"startTyping":      "ចាប់ផ្តើមសរសេរឯកសារ...",

	// Header & menu
	"guest":       "ភ្ញៀវ",
	"myDocuments": "ឯកសាររបស់ខ្ញុំ",
	"settings":    "ការកំណត់",

	// Toolbar actions
	"newDocument": "ឯកសារថ្មី",
	"save":        "រក្សាទុក",
	"exportWord":  "នាំចេញ Word",
	"exportPDF":   "នាំចេញ PDF",
	"print":       "បោះពុម្ព",
	"undo":        "មិនធ្វើវិញ",
	"redo":        "ធ្វើម្តងទៀត",

	// Text formatting
	"bold":             "ដិត",
	"italic":           "ទ្រេត",
	"underline":        "គូសបន្ទាត់ក្រោម",
	"strikethrough":    "គូសបន្ទាត់កណ្តាល",
	"textColor":        "ពណ៌អក្សរ",
	"backgroundColor":  "ពណ៌ផ្ទៃខាងក្រោយ",
	"removeBackground": "លុបពណ៌ភ្ទៃខាងក្រោម",

	// Alignment
	"alignLeft":    "តម្រឹមឆ្វេង",
	"alignCenter":  "តម្រឹមកណ្តាល",
	"alignRight":   "តម្រឹមស្តាំ",
	"alignJustify": "តម្រឹមពេញ",

	// Lists
	"bulletList": "បញ្ជីចំណុច",
	"numberList": "បញ្ជីលេខ",

	// Insert
	"insertImage": "បញ្ចូលរូបភាព",
	"insertTable": "បញ្ចូលតារាង",
	"insertLink":  "បញ្ចូលតំណ",
	"insert":      "បញ្ចូល",

	// Find & replace
	"find":        "ស្វែងរក",
	"findReplace": "ស្វែងរក & ជំនួស",
	"findWhat":    "ស្វែងរក:",
	"replaceWith": "ជំនួសដោយ:",
	"findNext":    "ស្វែងរកបន្ទាប់",
	"replace":     "ជំនួស",
	"replaceAll":  "ជំនួសទាំងអស់",

	// Statistics
	"statistics":         "ស្ថិតិ",
	"words":              "ពាក្យ",
	"characters":         "តួអក្សរ",
	"charactersNoSpaces": "តួអក្សរ (គ្មានដកឃ្លា)",
	"paragraphs":         "កថាខណ្ឌ",
	"page":               "ទំព័រ",
	"pages":              "ទំព័រ",
	"readingTime":        "ពេលវេលាអាន",
	"minutes":            "នាទី",

	// Table
	"rows":    "ចំនួនជួរដេក",
	"columns": "ចំនួនជួរឈរ",

	// Link
	"linkText": "អត្ថបទបង្ហាញ",
	"linkUrl":  "តំណភ្ជាប់",

	// Common
	"cancel": "បោះបង់",
	"delete": "លុប",
	"copy":   "ចម្លង",
	"search": "ស្វែងរក...",

	// Status
	"saved":   "បានរក្សាទុក",
	"saving":  "កំពុងរក្សាទុក...",
	"loading": "កំពុងដំណើរការ...",

	// Messages
	"documentSaved":      "បានរក្សាទុកឯកសារ",
	"newDocumentCreated": "បានបង្កើតឯកសារថ្មី",
	"documentNotFound":   "រកមិនឃើញឯកសារ",
	"documentDeleted":    "បានលុបឯកសារ",
	"noDocuments":        "មិនមានឯកសារ",
	"noResults":          "រកមិនឃើញលទ្ធផល",

	// Validation & errors
	"invalidImageFormat": "ទ្រង់ទ្រាយរូបភាពមិនត្រឹមត្រូវ",
	"invalidTableSize":   "ទំហំតារាងមិនត្រឹមត្រូវ",
	"enterUrl":           "សូមបញ្ចូលតំណភ្ជាប់",
	"enterSearchText":    "សូមបញ្ចូលពាក្យស្វែងរក",
	"found":              "រកឃើញ",
	"foundFromStart":     "រកឃើញពីដើមឯកសារ",
	"notFound":           "រកមិនឃើញ",
	"replaced":           "បានជំនួស",
	"replacedCount":      "បានជំនួស",
	"occurrences":        "ដង",

	// Export messages
	"tableInserted":      "បានបញ្ចូលតារាង",
	"linkInserted":       "បានបញ្ចូលតំណ",
	"exportingWord":      "កំពុងនាំចេញ Word...",
	"exportedWord":       "បាននាំចេញ Word ដោយជោគជ័យ",
	"errorExportingWord": "កំហុសក្នុងការនាំចេញ Word",
	"exportingPDF":       "កំពុងនាំចេញ PDF...",
	"exportedPDF":        "បាននាំចេញ PDF ដោយជោគជ័យ",
	"errorExportingPDF":  "កំហុសក្នុងការនាំចេញ PDF",
	"exportedJSON":       "បាននាំចេញ JSON",
	"importedJSON":       "បាននាំចូលឯកសារ",
	"errorImporting":     "កំហុសក្នុងការនាំចូលឯកសារ",

	// Storage
	"storageQuotaExceeded": "ទំហំផ្ទុកពេញ",
	"errorSaving":          "កំហុសក្នុងការរក្សាទុក",
	"errorDeleting":        "កំហុសក្នុងការលុប",
	"errorClearing":        "កំហុសក្នុងការលុបឯកសារ",
	"confirmDelete":        "តើអ្នកប្រាកដថាចង់លុបឯកសារនេះ?",
	"confirmClearAll":      "តើអ្នកប្រាកដថាចង់លុបឯកសារទាំងអស់? សកម្មភាពនេះមិនអាចត្រឡប់វិញបានទេ។",
	"allDocumentsDeleted":  "បានលុបឯកសារទាំងអស់",

	// Time
	"justNow":    "ទើបតែ",
	"minutesAgo": "នាទីមុន",
	"hoursAgo":   "ម៉ោងមុន",
	"daysAgo":    "ថ្ងៃមុន",

	// Extra surfaces
	"keyboardShortcuts": "ផ្លូវកាត់",
	"templates":         "គំរូឯកសារ",
	"fullscreen":        "ពេញអេក្រង់",
	"importDocument":    "នាំចូលឯកសារ",
	"closeModal":        "បិទបង្អួច",

	// Settings
	"generalSettings":  "ការកំណត់ទូទៅ",
	"autoSave":         "រក្សាទុកស្វ័យប្រវត្តិ",
	"autoSaveInterval": "ប្រេកង់រក្សាទុកស្វ័យប្រវត្តិ (វិនាទី)",
	"defaultFont":      "ពុម្ពអក្សរលំនាំដើម",
	"defaultFontSize":  "ទំហំអក្សរលំនាំដើម",
	"appearance":       "រូបរាង",
	"darkMode":         "របៀបងងឹត",
	"compactToolbar":   "របារឧបករណ៍តូច",
	"storage":          "ទំហំផ្ទុក",
	"totalDocuments":   "ឯកសារសរុប",
	"usedStorage":      "ទំហំផ្ទុកបានប្រើ",
	"clearAllData":     "លុបទិន្នន័យទាំងអស់",
	"saveSettings":     "រក្សាទុកការកំណត់",
	"settingsSaved":    "បានរក្សាទុកការកំណត់",
}
