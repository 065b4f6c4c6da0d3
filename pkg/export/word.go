// Package export produces the downloadable renditions of a document: a Word
// compatible HTML file, a paginated PDF and raw JSON. The envelope and
// pagination logic are pure; the browser glue lives in the js build.
package export

import (
	"html"
	"strings"
)

// khmerFonts are embedded in the Word envelope so Khmer text renders on
// machines without the fonts installed as defaults.
var khmerFonts = []string{
	"Khmer OS",
	"Khmer OS System",
	"Khmer OS Battambang",
	"Khmer OS Siemreap",
	"Noto Sans Khmer",
	"Hanuman",
	"Battambang",
}

// WordHTML wraps rendered document HTML in the Office-compatible envelope
// Microsoft Word accepts as a .doc file.
func WordHTML(title, body string) string {
	var b strings.Builder
	b.WriteString(`<html xmlns:o='urn:schemas-microsoft-com:office:office' ` +
		`xmlns:w='urn:schemas-microsoft-com:office:word' ` +
		`xmlns='http://www.w3.org/TR/REC-html40'>`)
	b.WriteString("<head><meta charset='utf-8'><title>")
	b.WriteString(html.EscapeString(title))
	b.WriteString("</title>")
	b.WriteString(`<!--[if gte mso 9]><xml><w:WordDocument>` +
		`<w:View>Print</w:View><w:Zoom>100</w:Zoom>` +
		`<w:DoNotOptimizeForBrowser/></w:WordDocument></xml><![endif]-->`)

	b.WriteString("<style>")
	for _, font := range khmerFonts {
		b.WriteString("@font-face { font-family: '")
		b.WriteString(font)
		b.WriteString("'; }\n")
	}
	b.WriteString(`body { font-family: 'Arial', 'Khmer OS', sans-serif; ` +
		`font-size: 14px; line-height: 1.6; }` + "\n")
	b.WriteString(`table { border-collapse: collapse; width: 100%; }` + "\n")
	b.WriteString(`td, th { border: 1px solid #ccc; padding: 8px; }` + "\n")
	b.WriteString("</style></head><body>")
	b.WriteString(body)
	b.WriteString("</body></html>")
	return b.String()
}
