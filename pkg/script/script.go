// Package script provides the sandboxed expression evaluator behind the
// Script node. It wraps zygomys in a sandboxed environment with a hard
// evaluation timeout; user code reads the node's input bucket through the
// (input) builtin and the value of the last expression becomes the output
// bucket.
package script

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"
	"sync"
	"time"

	zygo "github.com/glycerine/zygomys/zygo"

	"github.com/xylemcad/xylem/pkg/graph"
)

// DefaultTimeout is the hard limit for a single script evaluation.
const DefaultTimeout = 5 * time.Second

// ScriptError represents a parse or runtime error in user code.
type ScriptError struct {
	Line    int
	Message string
}

func (e *ScriptError) Error() string {
	if e.Line > 0 {
		return fmt.Sprintf("line %d: %s", e.Line, e.Message)
	}
	return e.Message
}

// Engine evaluates sandboxed scripts. Each call to Run creates a fresh
// zygomys sandbox for determinism; the sandbox prevents user code from
// reaching the filesystem or syscalls.
type Engine struct {
	// Timeout bounds a single evaluation. Zero means DefaultTimeout.
	Timeout time.Duration

	mu         sync.Mutex
	generation uint64
}

// NewEngine creates a new Engine instance.
func NewEngine() *Engine {
	return &Engine{}
}

// Run evaluates source against the given input bucket and returns the
// output bucket. The narrow contract is input bucket -> output bucket,
// fallible: every failure mode (parse error, runtime error, timeout,
// panic, unconvertible value) comes back as an error for the calling
// node to surface as a domain failure.
func (e *Engine) Run(source string, input graph.Bucket) (graph.Bucket, error) {
	if strings.TrimSpace(source) == "" {
		return nil, fmt.Errorf("empty script")
	}

	e.mu.Lock()
	e.generation++
	gen := e.generation
	e.mu.Unlock()

	ch := make(chan runResult, 1)
	go func() {
		defer func() {
			if r := recover(); r != nil {
				ch <- runResult{err: fmt.Errorf("panic during script evaluation: %v", r)}
			}
		}()
		out, err := e.evaluate(source, input)
		ch <- runResult{out: out, err: err}
	}()

	return e.waitWithTimeout(ch, gen)
}

// evaluate performs the actual zygomys evaluation in a fresh sandbox.
func (e *Engine) evaluate(source string, input graph.Bucket) (graph.Bucket, error) {
	env := zygo.NewZlispSandbox()
	defer env.Stop()

	// (input) returns the node's input bucket as an array.
	// (in i) returns the i-th input value.
	env.AddFunction("input", func(env *zygo.Zlisp, name string, args []zygo.Sexp) (zygo.Sexp, error) {
		return toSexpArray(env, input)
	})
	env.AddFunction("in", func(env *zygo.Zlisp, name string, args []zygo.Sexp) (zygo.Sexp, error) {
		if len(args) != 1 {
			return zygo.SexpNull, fmt.Errorf("in requires exactly 1 argument, got %d", len(args))
		}
		i, ok := args[0].(*zygo.SexpInt)
		if !ok {
			return zygo.SexpNull, fmt.Errorf("in: expected integer index, got %T", args[0])
		}
		idx := int(i.Val)
		if idx < 0 || idx >= len(input) {
			return zygo.SexpNull, fmt.Errorf("in: index %d out of range [0,%d)", idx, len(input))
		}
		return toSexp(env, input[idx])
	})

	if err := env.LoadString(source); err != nil {
		return nil, parseScriptError(err)
	}
	result, err := env.Run()
	if err != nil {
		return nil, parseScriptError(err)
	}
	return toBucket(result)
}

// runResult is the internal type used to pass results through channels.
type runResult struct {
	out graph.Bucket
	err error
}

// waitWithTimeout waits for a result from ch, but returns a timeout error
// if evaluation exceeds the engine timeout. A generation counter discards
// stale results from superseded evaluations.
func (e *Engine) waitWithTimeout(ch <-chan runResult, gen uint64) (graph.Bucket, error) {
	timeout := e.Timeout
	if timeout <= 0 {
		timeout = DefaultTimeout
	}
	timer := time.NewTimer(timeout)
	defer timer.Stop()

	select {
	case res := <-ch:
		e.mu.Lock()
		current := e.generation
		e.mu.Unlock()
		if gen != current {
			// A newer evaluation was started; discard this result.
			return nil, fmt.Errorf("script evaluation superseded by newer request")
		}
		return res.out, res.err

	case <-timer.C:
		return nil, fmt.Errorf("script evaluation timed out after %s", timeout)
	}
}

// linePattern matches zygomys error messages that include "Error on line N: ..."
var linePattern = regexp.MustCompile(`(?i)(?:error )?on line (\d+):\s*(.*)`)

// linePatternShort matches simpler "line N: ..." patterns.
var linePatternShort = regexp.MustCompile(`(?i)^line (\d+):\s*(.*)`)

// parseScriptError converts a zygomys error into a ScriptError, extracting
// line number information from the message where possible.
func parseScriptError(err error) *ScriptError {
	msg := err.Error()

	if m := linePattern.FindStringSubmatch(msg); m != nil {
		line, _ := strconv.Atoi(m[1])
		return &ScriptError{Line: line, Message: strings.TrimSpace(m[2])}
	}
	if m := linePatternShort.FindStringSubmatch(msg); m != nil {
		line, _ := strconv.Atoi(m[1])
		return &ScriptError{Line: line, Message: strings.TrimSpace(m[2])}
	}
	return &ScriptError{Message: strings.TrimSpace(msg)}
}
