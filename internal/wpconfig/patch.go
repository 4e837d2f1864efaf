package wpconfig

import "strings"

// Patch applies the changed values to the document and returns the result.
// current must be the mapping the changes were diffed against: the patcher
// replaces old literals, and only knows them from there.
//
// This is a best-effort textual patch, not a PHP-aware rewrite. A line is
// modified only when it contains both the key token and the recorded old
// literal verbatim, and only the first occurrence of the old literal is
// replaced. When the old literal is absent (different quoting, or a falsy
// current value that never made it into the mapping) the line stays as it
// is and the change silently does not apply.
//
// A non-empty extra PHP block is spliced in before the sentinel comment,
// padded with one blank line on each side. A missing sentinel fails the
// whole patch; nothing partial is returned.
func Patch(doc *Document, changes Updates, current Values) (*Document, error) {
	lines := make([]string, len(doc.lines))
	copy(lines, doc.lines)

	for i, line := range lines {
		for key, next := range changes {
			if key == KeyExtraPHP {
				continue
			}
			if !strings.Contains(line, string(key)) {
				continue
			}
			old, ok := current[string(key)]
			if !ok {
				continue
			}
			line = strings.Replace(line, old.Literal(), next.Literal(), 1)
		}
		lines[i] = line
	}

	out := &Document{lines: lines}
	extra, ok := changes[KeyExtraPHP]
	if !ok {
		return out, nil
	}
	return spliceExtra(out, extra.Str)
}

// spliceExtra inserts the trimmed block immediately before the sentinel.
// Everything before and after the sentinel is preserved byte for byte.
func spliceExtra(doc *Document, block string) (*Document, error) {
	text := doc.String()
	idx := strings.Index(text, Sentinel)
	if idx < 0 {
		return nil, ErrSentinelNotFound
	}
	spliced := text[:idx] + "\n" + strings.TrimSpace(block) + "\n\n" + text[idx:]
	return ParseDocument(spliced), nil
}
