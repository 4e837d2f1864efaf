// Package wpconfig reads, diffs, and patches wp-config.php files.
//
// The file is treated as text, never as parsed PHP: current values are
// pulled out by a narrow line scanner, and updates are applied by replacing
// the old literal with the new one on the line that carries the key. That
// keeps every byte the tool did not deliberately change intact, at the cost
// of not understanding values produced by expressions or conditionals.
package wpconfig

// Key identifies a supported wp-config.php entry. For define()-style
// constants the Key is the constant name; for variables it is the name
// without the $ sigil.
type Key string

const (
	KeyDBName      Key = "DB_NAME"
	KeyDBUser      Key = "DB_USER"
	KeyDBPassword  Key = "DB_PASSWORD"
	KeyDBHost      Key = "DB_HOST"
	KeyTablePrefix Key = "table_prefix"
	KeyDBCharset   Key = "DB_CHARSET"
	KeyDBCollate   Key = "DB_COLLATE"
	KeyWPDebug     Key = "WP_DEBUG"
	KeyLocale      Key = "WPLANG"
	KeyExtraPHP    Key = "extra-php"
)

// Option pairs an external option name with the Key it sets.
type Option struct {
	Name string
	Key  Key
}

// Options is the closed set of supported options. The order is load-bearing:
// the default template is built in this order, and the Nth option name maps
// to the Nth key.
var Options = []Option{
	{"dbname", KeyDBName},
	{"dbuser", KeyDBUser},
	{"dbpass", KeyDBPassword},
	{"dbhost", KeyDBHost},
	{"dbprefix", KeyTablePrefix},
	{"dbcharset", KeyDBCharset},
	{"dbcollate", KeyDBCollate},
	{"wpdebug", KeyWPDebug},
	{"locale", KeyLocale},
	{"extra-php", KeyExtraPHP},
}

// Sentinel is the marker comment separating editable configuration from the
// WordPress bootstrap. Extra PHP is spliced in immediately before it. The
// trailing punctuation varies between WordPress vintages ("Happy blogging."
// vs "Happy publishing."), so only the stable prefix is matched.
const Sentinel = "/* That's all, stop editing!"
