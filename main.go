// ════════════════════════════════════════════════════════════════════════════════════════════════
// circbuf - Ring Buffer Driver
// ────────────────────────────────────────────────────────────────────────────────────────────────
// Component: command-line entry point
//
// Description:
//   Builds an integer ring and runs an operation script against it, one token per argument:
//
//     circbuf -c 3 push:1 push:2 push:3 push:4 display pop json
//
//   With no tokens the built-in demonstration script runs.
//
// Configuration:
//   - Flags first, then CIRCBUF_* environment variables, then compiled defaults.
//
// ════════════════════════════════════════════════════════════════════════════════════════════════

package main

import (
	"io"
	"os"
	"strconv"
	"strings"

	"circbuf/constants"
	"circbuf/debug"
	"circbuf/ring"

	"github.com/pkg/errors"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"
)

// Config keys, shared by flags and environment.
const (
	keyCapacity = "capacity"
	keyJSON     = "json"
	keyTrace    = "trace"
	keyLogLevel = "log-level"
)

// config is the resolved runtime configuration.
type config struct {
	Capacity int
	JSON     bool
	Trace    bool
	LogLevel string
}

// ═══════════════════════════════════════════════════════════════════════════════════════════════
// MAIN ORCHESTRATION
// ═══════════════════════════════════════════════════════════════════════════════════════════════

func main() {
	defer debug.Sync()
	if err := newRootCmd(viper.New(), os.Stdout).Execute(); err != nil {
		debug.DropError("FATAL", err)
		debug.Sync()
		os.Exit(1)
	}
}

// newRootCmd wires flags into v and returns the command writing to out.
func newRootCmd(v *viper.Viper, out io.Writer) *cobra.Command {
	cmd := &cobra.Command{
		Use:           constants.AppName + " [flags] [op...]",
		Short:         "Run an operation script against a fixed-capacity ring buffer",
		Long:          "Ops: push:N pop peek contains:N len cap clear resize:N shrink iter display json",
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadConfig(v)
			if err != nil {
				return err
			}
			return run(cfg, args, out)
		},
	}
	cmd.SetOut(out)

	fs := cmd.Flags()
	fs.IntP(keyCapacity, "c", constants.DefaultCapacity, "ring capacity (>= 1)")
	fs.Bool(keyJSON, false, "print a JSON snapshot after the script")
	fs.BoolP(keyTrace, "t", false, "display the buffer after every mutating op")
	fs.String(keyLogLevel, constants.DefaultLogLevel, "log level: debug, info, warn, error")
	bindFlags(v, fs)
	return cmd
}

// bindFlags makes every flag resolvable through v, with CIRCBUF_* env
// overrides ("log-level" maps to CIRCBUF_LOG_LEVEL).
func bindFlags(v *viper.Viper, fs *pflag.FlagSet) {
	v.SetEnvPrefix(constants.EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	v.AutomaticEnv()
	fs.VisitAll(func(f *pflag.Flag) {
		_ = v.BindPFlag(f.Name, f) // flag is non-nil
	})
}

// loadConfig resolves and validates the configuration.
func loadConfig(v *viper.Viper) (config, error) {
	cfg := config{
		Capacity: v.GetInt(keyCapacity),
		JSON:     v.GetBool(keyJSON),
		Trace:    v.GetBool(keyTrace),
		LogLevel: v.GetString(keyLogLevel),
	}
	if cfg.Capacity < 1 {
		return config{}, errors.Wrapf(ring.ErrInvalidCapacity, "capacity %d", cfg.Capacity)
	}
	if err := debug.SetLevel(cfg.LogLevel); err != nil {
		return config{}, errors.Wrapf(err, "log level %q", cfg.LogLevel)
	}
	return cfg, nil
}

// run parses the script, executes it and emits the optional snapshot.
func run(cfg config, tokens []string, out io.Writer) error {
	if len(tokens) == 0 {
		tokens = constants.DemoScript
	}
	ops, err := parseScript(tokens)
	if err != nil {
		return err
	}

	debug.DropMessage("INIT", "capacity "+strconv.Itoa(cfg.Capacity)+", "+strconv.Itoa(len(ops))+" ops")
	rn := &runner{r: ring.New[int](cfg.Capacity), out: out, trace: cfg.Trace}
	if err := rn.run(ops); err != nil {
		return err
	}
	if cfg.JSON {
		return rn.printJSON()
	}
	return nil
}
