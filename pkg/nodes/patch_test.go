package nodes

import (
	"testing"

	"github.com/xylemcad/xylem/pkg/graph"
)

func TestInletFeedsGraph(t *testing.T) {
	env := newEnv(t)
	inlet := build(t, env, NewInlet)
	mathNode := build(t, env, NewBasicMath)
	connect(t, env, inlet.Outputs[0], mathNode.Inputs[1])

	op := inlet.Op().(*InletOp)
	if err := op.SetData(graph.Bucket{5.0}); err != nil {
		t.Fatal(err)
	}

	// 5 + 10 with the math default b.
	wantFloats(t, evalNumbers(t, mathNode, 0), 15)

	// New host data invalidates downstream caches.
	if err := op.SetData(graph.Bucket{7.0}); err != nil {
		t.Fatal(err)
	}
	if !mathNode.IsDirty() {
		t.Error("downstream should be dirty after SetData")
	}
	wantFloats(t, evalNumbers(t, mathNode, 0), 17)
}

func TestOutletCapturesData(t *testing.T) {
	env := newEnv(t)
	rng := build(t, env, NewMakeRange)
	outlet := build(t, env, NewOutlet)
	connect(t, env, rng.Outputs[0], outlet.Inputs[0])

	if _, err := outlet.Eval(0); err != nil {
		t.Fatal(err)
	}

	op := outlet.Op().(*OutletOp)
	got, err := ToFloats(op.Data())
	if err != nil {
		t.Fatal(err)
	}
	if len(got) != 10 || got[9] != 9 {
		t.Errorf("captured = %v", got)
	}
}

func TestRegisterAllIsComplete(t *testing.T) {
	env := newEnv(t)
	c := newCatalog(t)

	for _, d := range c.Descriptors() {
		n, err := d.Factory(env)
		if err != nil {
			t.Errorf("%s: factory failed: %v", d.Title, err)
			continue
		}
		if n.OpCode != d.OpCode {
			t.Errorf("%s: node op code %d, descriptor %d", d.Title, n.OpCode, d.OpCode)
		}
	}
}

func TestRegisterAllRejectsSecondRun(t *testing.T) {
	c := newCatalog(t)
	if err := RegisterAll(c); err == nil {
		t.Error("second registration should collide")
	}
}
