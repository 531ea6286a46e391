package textcheck

import "strings"

// mojibakeTable maps UTF-8-decoded-as-cp1252 artifacts back to the intended
// characters. Escape literals keep the broken sequences unambiguous; the bare
// "â€" prefix is listed last so the longer sequences win.
var mojibakeTable = []struct {
	broken string
	fixed  string
}{
	{"â€™", "'"},      // ’ mangled
	{"â€˜", "'"},      // ‘ mangled
	{"â€œ", "“"}, // “ mangled
	{"â€”", "—"}, // — mangled
	{"â€“", "–"}, // – mangled
	{"â€¦", "…"}, // … mangled
	{"â€", "”"},       // ” mangled (0x9D is unmapped in cp1252)
	{"Ã©", "é"},       // é mangled
	{"Ã¨", "è"},       // è mangled
	{"Ã¢", "â"},       // â mangled
	{"Ã´", "ô"},       // ô mangled
	{"Ã§", "ç"},       // ç mangled
	{"Ã±", "ñ"},       // ñ mangled
	{"Ã¼", "ü"},       // ü mangled
	{"Ã¶", "ö"},       // ö mangled
	{"Ã¤", "ä"},       // ä mangled
	{"Â°", "°"},       // ° mangled
	{"Â·", "·"},       // · mangled
	{"Â ", " "},       // nbsp mangled
}

// CleanEncoding repairs mojibake, strips BOMs, and normalizes whitespace.
// Idempotent: applying it to already-clean text returns the text unchanged.
func CleanEncoding(text string) string {
	// BOM at the start or leaked mid-text
	text = strings.ReplaceAll(text, "\ufeff", "")

	for _, sub := range mojibakeTable {
		text = strings.ReplaceAll(text, sub.broken, sub.fixed)
	}

	// Normalize line endings
	text = strings.ReplaceAll(text, "\r\n", "\n")
	text = strings.ReplaceAll(text, "\r", "\n")

	// Strip trailing spaces per line
	lines := strings.Split(text, "\n")
	for i, line := range lines {
		lines[i] = strings.TrimRight(line, " \t")
	}
	text = strings.Join(lines, "\n")

	// Collapse runs of blank lines to a single paragraph break
	for strings.Contains(text, "\n\n\n") {
		text = strings.ReplaceAll(text, "\n\n\n", "\n\n")
	}

	return text
}
