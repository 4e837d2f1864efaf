package wpconfig

import (
	"fmt"
	"io"
	"regexp"
)

// prefixRe is the allowed character class for table prefixes.
var prefixRe = regexp.MustCompile(`^[A-Za-z0-9_]+$`)

// Normalize turns raw options, keyed by external option name, into an update
// set keyed by internal Key. In order:
//
//  1. A boolean true extra-php option switches the block to standard input;
//     the stream is read to EOF and becomes the option's value.
//  2. The table prefix is validated against [A-Za-z0-9_]+.
//  3. Supplied options are merged over the default template in the fixed
//     option order.
//  4. Each external option name is renamed to its internal key.
//  5. Empty-string entries are dropped; boolean false is a real value and
//     is kept.
//
// Supplying no options at all is an error, not an empty result.
func Normalize(opts map[string]Value, stdin io.Reader) (Updates, error) {
	if len(opts) == 0 {
		return nil, ErrNoUpdates
	}

	supplied := make(map[string]Value, len(opts))
	for name, v := range opts {
		supplied[name] = v
	}

	if v, ok := supplied["extra-php"]; ok && v.Kind == KindBool {
		if v.Bool {
			data, err := io.ReadAll(stdin)
			if err != nil {
				return nil, fmt.Errorf("reading extra PHP from standard input: %w", err)
			}
			supplied["extra-php"] = String(string(data))
		} else {
			supplied["extra-php"] = String("")
		}
	}

	if v, ok := supplied["dbprefix"]; ok && v.Kind == KindString && v.Str != "" {
		if !prefixRe.MatchString(v.Str) {
			return nil, fmt.Errorf("%w: %q", ErrInvalidPrefix, v.Str)
		}
	}

	updates := make(Updates)
	for _, opt := range Options {
		v, ok := supplied[opt.Name]
		if !ok {
			v = String("") // template default
		}
		if v.Kind == KindString && v.Str == "" {
			continue
		}
		updates[opt.Key] = v
	}
	return updates, nil
}
