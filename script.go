// ─────────────────────────────────────────────────────────────────────────────
// [Filename]: script.go — operation script parsing and execution
//
// Purpose:
//   - Parses "verb" / "verb:arg" tokens into ops up front, so a malformed
//     script is rejected before anything runs.
//   - Executes ops against an integer ring, echoing results to an io.Writer.
//
// Notes:
//   - A rejected resize is logged and the script continues; every other op
//     is total.
// ─────────────────────────────────────────────────────────────────────────────

package main

import (
	"fmt"
	"io"
	"strconv"
	"strings"

	"circbuf/constants"
	"circbuf/debug"
	"circbuf/ring"

	"github.com/pkg/errors"
)

// errBadOp reports a token the parser could not understand.
var errBadOp = errors.New("invalid operation")

// op is one parsed script step.
type op struct {
	verb string
	arg  int
	raw  string
}

// needsArg lists verbs that take an integer argument.
var needsArg = map[string]bool{
	constants.VerbPush:     true,
	constants.VerbContains: true,
	constants.VerbResize:   true,
}

// bareVerbs lists verbs that take no argument.
var bareVerbs = map[string]bool{
	constants.VerbPop:     true,
	constants.VerbPeek:    true,
	constants.VerbLen:     true,
	constants.VerbCap:     true,
	constants.VerbClear:   true,
	constants.VerbShrink:  true,
	constants.VerbIter:    true,
	constants.VerbDisplay: true,
	constants.VerbJSON:    true,
}

// mutating verbs trigger a Display after they run when tracing.
var mutating = map[string]bool{
	constants.VerbPush:   true,
	constants.VerbPop:    true,
	constants.VerbClear:  true,
	constants.VerbResize: true,
	constants.VerbShrink: true,
}

// parseOp turns one token into an op.
func parseOp(tok string) (op, error) {
	verb, arg, found := strings.Cut(strings.TrimSpace(tok), constants.OpSep)
	verb = strings.ToLower(verb)
	o := op{verb: verb, raw: tok}

	switch {
	case needsArg[verb]:
		if !found {
			return op{}, errors.Wrapf(errBadOp, "%q: %s needs an integer argument", tok, verb)
		}
		n, err := strconv.Atoi(arg)
		if err != nil {
			return op{}, errors.Wrapf(errBadOp, "%q: %v", tok, err)
		}
		o.arg = n
	case bareVerbs[verb]:
		if found {
			return op{}, errors.Wrapf(errBadOp, "%q: %s takes no argument", tok, verb)
		}
	default:
		return op{}, errors.Wrapf(errBadOp, "%q: unknown verb", tok)
	}
	return o, nil
}

// parseScript parses every token, failing on the first bad one.
func parseScript(tokens []string) ([]op, error) {
	ops := make([]op, 0, len(tokens))
	for _, tok := range tokens {
		o, err := parseOp(tok)
		if err != nil {
			return nil, err
		}
		ops = append(ops, o)
	}
	return ops, nil
}

// runner executes ops against one ring.
type runner struct {
	r     *ring.Ring[int]
	out   io.Writer
	trace bool
}

// run executes ops in order.  Only write failures on out are returned.
func (rn *runner) run(ops []op) error {
	for _, o := range ops {
		debug.DropMessage("STEP", o.raw)
		if err := rn.step(o); err != nil {
			return err
		}
		if mutating[o.verb] && rn.trace {
			if err := rn.r.Display(rn.out); err != nil {
				return errors.Wrap(err, "display")
			}
		}
	}
	return nil
}

func (rn *runner) step(o op) error {
	r := rn.r
	switch o.verb {
	case constants.VerbPush:
		if r.IsFull() {
			if oldest, ok := r.Peek(); ok {
				debug.DropMessage("EVICT", strconv.Itoa(oldest))
			}
		}
		r.Push(o.arg)
	case constants.VerbPop:
		return rn.printOpt("popped", r.Pop)
	case constants.VerbPeek:
		return rn.printOpt("peek", r.Peek)
	case constants.VerbContains:
		return rn.printf("contains %d: %t\n", o.arg, r.Contains(o.arg))
	case constants.VerbLen:
		return rn.printf("len: %d\n", r.Len())
	case constants.VerbCap:
		return rn.printf("cap: %d\n", r.Cap())
	case constants.VerbClear:
		r.Clear()
	case constants.VerbResize:
		if err := r.Resize(o.arg); err != nil {
			debug.DropError("RESIZE", err)
		}
	case constants.VerbShrink:
		r.ShrinkToFit()
	case constants.VerbIter:
		for v := range r.All() {
			if err := rn.printf("item: %d\n", v); err != nil {
				return err
			}
		}
	case constants.VerbDisplay:
		if err := r.Display(rn.out); err != nil {
			return errors.Wrap(err, "display")
		}
	case constants.VerbJSON:
		return rn.printJSON()
	}
	return nil
}

func (rn *runner) printOpt(label string, f func() (int, bool)) error {
	if v, ok := f(); ok {
		return rn.printf("%s: %d\n", label, v)
	}
	return rn.printf("%s: <empty>\n", label)
}

func (rn *runner) printJSON() error {
	b, err := rn.r.MarshalJSON()
	if err != nil {
		return errors.Wrap(err, "encode snapshot")
	}
	return rn.printf("%s\n", b)
}

func (rn *runner) printf(format string, args ...any) error {
	_, err := fmt.Fprintf(rn.out, format, args...)
	return errors.Wrap(err, "write output")
}
