package wpconfig

import "strings"

// Document is a configuration file held as an ordered sequence of lines.
// Lines are split on \n and rejoined on \n; a CR before the newline stays
// attached to its line, so CRLF files round-trip byte for byte.
type Document struct {
	lines []string
}

// ParseDocument splits text into a Document.
func ParseDocument(text string) *Document {
	return &Document{lines: strings.Split(text, "\n")}
}

// String reassembles the document into its full text.
func (d *Document) String() string {
	return strings.Join(d.lines, "\n")
}
