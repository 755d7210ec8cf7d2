package script

import (
	"errors"
	"testing"
	"time"

	"github.com/xylemcad/xylem/pkg/graph"
)

func TestRunScalarResult(t *testing.T) {
	eng := NewEngine()

	out, err := eng.Run("(+ 1 2)", nil)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(out) != 1 || out[0].(int) != 3 {
		t.Errorf("out = %v, want [3]", out)
	}
}

func TestRunFloatArithmetic(t *testing.T) {
	eng := NewEngine()

	out, err := eng.Run("(* 2.5 4.0)", nil)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(out) != 1 || out[0].(float64) != 10.0 {
		t.Errorf("out = %v, want [10]", out)
	}
}

func TestRunReadsInputBucket(t *testing.T) {
	eng := NewEngine()

	out, err := eng.Run("(input)", graph.Bucket{1.5, "two", true})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(out) != 3 {
		t.Fatalf("out = %v, want three values", out)
	}
	if out[0].(float64) != 1.5 || out[1].(string) != "two" || out[2].(bool) != true {
		t.Errorf("out = %v", out)
	}
}

func TestRunIndexedInput(t *testing.T) {
	eng := NewEngine()

	out, err := eng.Run("(+ (in 0) (in 1))", graph.Bucket{4.0, 5.0})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(out) != 1 || out[0].(float64) != 9.0 {
		t.Errorf("out = %v, want [9]", out)
	}
}

func TestRunIndexedInputOutOfRange(t *testing.T) {
	eng := NewEngine()

	if _, err := eng.Run("(in 5)", graph.Bucket{1.0}); err == nil {
		t.Error("expected range error")
	}
}

func TestRunMultipleExpressions(t *testing.T) {
	eng := NewEngine()

	source := `
(def x 10)
(def y 20)
(+ x y)
`
	out, err := eng.Run(source, nil)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(out) != 1 || out[0].(int) != 30 {
		t.Errorf("out = %v, want [30]", out)
	}
}

func TestRunEmptySource(t *testing.T) {
	eng := NewEngine()
	if _, err := eng.Run("   \n\t  ", nil); err == nil {
		t.Error("expected error for empty source")
	}
}

func TestRunParseErrorHasLineInfo(t *testing.T) {
	eng := NewEngine()

	_, err := eng.Run("(+ 1 2", nil)
	if err == nil {
		t.Fatal("expected parse error")
	}
	var se *ScriptError
	if !errors.As(err, &se) {
		t.Fatalf("error type = %T, want *ScriptError", err)
	}
}

func TestRunVectorInput(t *testing.T) {
	eng := NewEngine()

	// A vector arrives as a 3-element array.
	out, err := eng.Run("(input)", graph.Bucket{graph.Vec3{X: 1, Y: 2, Z: 3}})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(out) != 1 {
		t.Fatalf("out = %v, want one value", out)
	}
	comps, ok := out[0].(graph.Bucket)
	if !ok || len(comps) != 3 || comps[2].(float64) != 3.0 {
		t.Errorf("vector components = %v", out[0])
	}
}

func TestRunTimeout(t *testing.T) {
	eng := NewEngine()
	eng.Timeout = 50 * time.Millisecond

	// Unbounded recursion either times out or dies in the interpreter;
	// both must come back as an error, never a hang.
	source := `
(def f (fn [n] (if (> n 0) (f (- n 1)) 0)))
(f 100000000)
`
	_, err := eng.Run(source, nil)
	if err == nil {
		t.Fatal("expected timeout or runtime error")
	}
}

func TestScriptErrorMessage(t *testing.T) {
	e := &ScriptError{Line: 3, Message: "unexpected token"}
	if got := e.Error(); got != "line 3: unexpected token" {
		t.Errorf("Error() = %q", got)
	}
	e = &ScriptError{Message: "bad"}
	if got := e.Error(); got != "bad" {
		t.Errorf("Error() = %q", got)
	}
}
