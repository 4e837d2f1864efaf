package wpconfig

import (
	"regexp"
	"strconv"
	"strings"
)

// defineRe matches define('NAME', <expr>); calls with a literal name.
// Single or double quotes are accepted around the name.
var defineRe = regexp.MustCompile(`^\s*define\s*\(\s*['"]([A-Za-z_][A-Za-z0-9_]*)['"]\s*,\s*(.+?)\s*\)\s*;`)

// assignRe matches $name = <expr>; variable assignments.
var assignRe = regexp.MustCompile(`^\s*\$([A-Za-z_][A-Za-z0-9_]*)\s*=\s*(.+?)\s*;`)

// Extract scans the document and returns every constant and variable whose
// value is a scalar literal the scanner understands. Assignments whose value
// is an expression (concatenation, function call, another constant) are
// skipped, so those names count as not defined.
//
// Falsy values (false, empty string, "0") are dropped from the result, so
// the diff stage cannot tell them apart from undefined names. That matches
// the historical behavior of this tool and the patcher relies on it: a line
// whose recorded old value is missing is left untouched.
func Extract(doc *Document) (Values, error) {
	if !strings.Contains(doc.String(), "<?") {
		return nil, ErrNotPHP
	}

	vals := make(Values)
	for _, line := range doc.lines {
		var name, expr string
		if m := defineRe.FindStringSubmatch(line); m != nil {
			name, expr = m[1], m[2]
		} else if m := assignRe.FindStringSubmatch(line); m != nil {
			name, expr = m[1], m[2]
		} else {
			continue
		}

		v, ok := parseLiteral(expr)
		if !ok {
			continue
		}
		if _, exists := vals[name]; exists {
			// PHP's define ignores redefinition; the first one wins.
			continue
		}
		if v.Falsy() {
			continue
		}
		vals[name] = v
	}
	return vals, nil
}

// parseLiteral reads a PHP scalar literal: a quoted string, true/false, or
// an integer. Anything else is rejected.
func parseLiteral(expr string) (Value, bool) {
	if len(expr) >= 2 {
		if q := expr[0]; q == '\'' || q == '"' {
			if expr[len(expr)-1] == q {
				return String(expr[1 : len(expr)-1]), true
			}
			return Value{}, false
		}
	}
	switch strings.ToLower(expr) {
	case "true":
		return Bool(true), true
	case "false":
		return Bool(false), true
	}
	if _, err := strconv.Atoi(expr); err == nil {
		return String(expr), true
	}
	return Value{}, false
}
