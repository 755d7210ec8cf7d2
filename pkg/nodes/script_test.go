package nodes

import "testing"

func TestScriptNodeTransformsInput(t *testing.T) {
	env := newEnv(t)
	src := listSource(t, env, 2.0, 3.0)
	n := build(t, env, NewScript)
	n.Inputs[0].SetDefault(replaceText(`(* (in 0) (in 1))`))
	connect(t, env, src.Outputs[0], n.Inputs[1])

	wantFloats(t, evalNumbers(t, n, 0), 6)
}

func TestScriptNodeDefaultPassesThrough(t *testing.T) {
	env := newEnv(t)
	src := listSource(t, env, 1.0, 2.0)
	n := build(t, env, NewScript)
	connect(t, env, src.Outputs[0], n.Inputs[1])

	wantFloats(t, evalNumbers(t, n, 0), 1, 2)
}

func TestScriptNodeErrorIsDomainFailure(t *testing.T) {
	env := newEnv(t)
	n := build(t, env, NewScript)
	n.Inputs[0].SetDefault(replaceText("(((("))
	n.MarkDirty()

	if _, err := n.Eval(0); err == nil {
		t.Fatal("expected parse failure")
	}
	if !n.IsInvalid() {
		t.Error("node should be invalid")
	}
	if n.Diagnostic() == "" {
		t.Error("diagnostic should describe the failure")
	}
}
