package export

import "strings"

// maxFilenameRunes bounds generated filenames; some filesystems reject very
// long names and downloads inherit the document title verbatim otherwise.
const maxFilenameRunes = 100

// forbidden are the characters no common filesystem accepts in a name.
const forbidden = `\/:*?"<>|`

// Filename derives a safe download filename (without extension) from a
// document title. Forbidden characters are dropped, whitespace runs become
// single underscores and the result is length-capped. An empty result falls
// back to "document".
func Filename(title string) string {
	cleaned := strings.Map(func(r rune) rune {
		if strings.ContainsRune(forbidden, r) || r < 0x20 {
			return -1
		}
		return r
	}, title)

	name := strings.Join(strings.Fields(cleaned), "_")
	if runes := []rune(name); len(runes) > maxFilenameRunes {
		name = string(runes[:maxFilenameRunes])
	}
	if name == "" || strings.Trim(name, "._") == "" {
		return "document"
	}
	return name
}
