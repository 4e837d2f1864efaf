package wpconfig

// Kind discriminates the PHP scalar types a Value can hold.
type Kind int

const (
	KindString Kind = iota
	KindBool
)

// Value is a PHP scalar read from or destined for wp-config.php.
// Values are comparable; == is strict equality of kind and value.
type Value struct {
	Kind Kind
	Str  string
	Bool bool
}

// String returns a string-kinded Value.
func String(s string) Value { return Value{Kind: KindString, Str: s} }

// Bool returns a bool-kinded Value.
func Bool(b bool) Value { return Value{Kind: KindBool, Bool: b} }

// Literal returns the source-text form used for substitution: the bare
// characters of a string (quotes belong to the surrounding line) or
// true/false for booleans.
func (v Value) Literal() string {
	if v.Kind == KindBool {
		if v.Bool {
			return "true"
		}
		return "false"
	}
	return v.Str
}

// Falsy reports whether v is falsy under PHP rules (false, "", "0").
func (v Value) Falsy() bool {
	if v.Kind == KindBool {
		return !v.Bool
	}
	return v.Str == "" || v.Str == "0"
}

// Values maps defined names (constant or variable) to their current values.
type Values map[string]Value

// Updates maps internal keys to desired values.
type Updates map[Key]Value
