// ─────────────────────────────────────────────────────────────────────────────
// [Filename]: constants.go — driver defaults
//
// Purpose:
//   - Compile-time defaults for the circbuf command.
//   - Every value can be overridden at runtime by flag or CIRCBUF_* env var.
// ─────────────────────────────────────────────────────────────────────────────

package constants

const (
	// AppName is the command name and the viper config key namespace.
	AppName = "circbuf"

	// EnvPrefix namespaces environment overrides, e.g. CIRCBUF_CAPACITY=8.
	EnvPrefix = "CIRCBUF"

	// DefaultCapacity matches the demonstration script's buffer size.
	DefaultCapacity = 5

	// DefaultLogLevel is the zap level name used when none is configured.
	DefaultLogLevel = "info"
)

// Op separators and verbs accepted by the script parser.
const (
	OpSep = ":"

	VerbPush     = "push"
	VerbPop      = "pop"
	VerbPeek     = "peek"
	VerbContains = "contains"
	VerbLen      = "len"
	VerbCap      = "cap"
	VerbClear    = "clear"
	VerbResize   = "resize"
	VerbShrink   = "shrink"
	VerbIter     = "iter"
	VerbDisplay  = "display"
	VerbJSON     = "json"
)

// DemoScript is run when no operations are given on the command line.
var DemoScript = []string{
	"push:10", "push:20", "push:30", "display",
	"push:40", "push:50", "display",
	"push:60", "display",
	"pop", "display",
	"push:70", "display",
	"peek",
	"contains:30", "contains:100",
	"len", "cap",
	"clear", "display",
	"resize:7", "push:80", "push:90", "display",
	"iter",
	"shrink", "cap",
}
