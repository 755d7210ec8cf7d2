package nodes

import (
	"testing"

	"github.com/xylemcad/xylem/pkg/bus"
	"github.com/xylemcad/xylem/pkg/catalog"
	"github.com/xylemcad/xylem/pkg/graph"
	"github.com/xylemcad/xylem/pkg/kernel"
	"github.com/xylemcad/xylem/pkg/script"
)

// fakeSolid is a bounding box and nothing else.
type fakeSolid struct {
	min, max [3]float64
}

func (s fakeSolid) BoundingBox() (min, max [3]float64) { return s.min, s.max }

// fakeKernel implements kernel.Kernel with pure bounding box arithmetic,
// keeping node tests independent of the real geometry backend.
type fakeKernel struct{}

func (fakeKernel) Box(x, y, z float64) kernel.Solid {
	return fakeSolid{max: [3]float64{x, y, z}}
}

func (fakeKernel) Sphere(r float64) kernel.Solid {
	return fakeSolid{min: [3]float64{-r, -r, -r}, max: [3]float64{r, r, r}}
}

func (fakeKernel) Cylinder(h, r float64, segments int) kernel.Solid {
	return fakeSolid{min: [3]float64{-r, -r, -h / 2}, max: [3]float64{r, r, h / 2}}
}

func (fakeKernel) Union(a, b kernel.Solid) kernel.Solid {
	amin, amax := a.BoundingBox()
	bmin, bmax := b.BoundingBox()
	for i := 0; i < 3; i++ {
		if bmin[i] < amin[i] {
			amin[i] = bmin[i]
		}
		if bmax[i] > amax[i] {
			amax[i] = bmax[i]
		}
	}
	return fakeSolid{min: amin, max: amax}
}

func (fakeKernel) Difference(a, b kernel.Solid) kernel.Solid {
	min, max := a.BoundingBox()
	return fakeSolid{min: min, max: max}
}

func (fakeKernel) Intersection(a, b kernel.Solid) kernel.Solid {
	amin, amax := a.BoundingBox()
	bmin, bmax := b.BoundingBox()
	for i := 0; i < 3; i++ {
		if bmin[i] > amin[i] {
			amin[i] = bmin[i]
		}
		if bmax[i] < amax[i] {
			amax[i] = bmax[i]
		}
	}
	return fakeSolid{min: amin, max: amax}
}

func (fakeKernel) Translate(s kernel.Solid, x, y, z float64) kernel.Solid {
	min, max := s.BoundingBox()
	d := [3]float64{x, y, z}
	for i := range d {
		min[i] += d[i]
		max[i] += d[i]
	}
	return fakeSolid{min: min, max: max}
}

// Rotate models only the quarter turn about Z that tests use; other
// angles pass through unchanged.
func (fakeKernel) Rotate(s kernel.Solid, x, y, z float64) kernel.Solid {
	if x == 0 && y == 0 && z == 90 {
		min, max := s.BoundingBox()
		return fakeSolid{
			min: [3]float64{-max[1], min[0], min[2]},
			max: [3]float64{-min[1], max[0], max[2]},
		}
	}
	return s
}

func (fakeKernel) ToMesh(s kernel.Solid) (*kernel.Mesh, error) {
	return &kernel.Mesh{}, nil
}

// newEnv builds a complete test environment with a fresh graph, bus and
// script engine.
func newEnv(t *testing.T) *catalog.Env {
	t.Helper()
	return &catalog.Env{
		Graph:  graph.New(),
		Bus:    bus.NewRegistry(),
		Kernel: fakeKernel{},
		Script: script.NewEngine(),
	}
}

// build runs a factory and registers the node with the env's graph.
func build(t *testing.T, env *catalog.Env, f func(*catalog.Env) (*graph.Node, error)) *graph.Node {
	t.Helper()
	n, err := f(env)
	if err != nil {
		t.Fatal(err)
	}
	if err := env.Graph.AddNode(n); err != nil {
		t.Fatal(err)
	}
	return n
}

// setWidget replaces an input default and recomputes the node.
func setWidget(t *testing.T, n *graph.Node, input int, d graph.Default) {
	t.Helper()
	n.Inputs[input].SetDefault(d)
	if err := n.InputChanged(); err != nil {
		t.Fatal(err)
	}
}

// newCatalog builds a catalog with every built-in node registered.
func newCatalog(t *testing.T) *catalog.Catalog {
	t.Helper()
	c := catalog.New()
	if err := RegisterAll(c); err != nil {
		t.Fatal(err)
	}
	return c
}

// replaceText shortens the common widget replacement in tests.
func replaceText(s string) graph.Default {
	return graph.Text{Value: s}
}

// evalNumbers reads an output socket and asserts it holds floats.
func evalNumbers(t *testing.T, n *graph.Node, socket int) []float64 {
	t.Helper()
	b, err := n.Eval(socket)
	if err != nil {
		t.Fatal(err)
	}
	out, err := ToFloats(b)
	if err != nil {
		t.Fatal(err)
	}
	return out
}

func wantFloats(t *testing.T, got []float64, want ...float64) {
	t.Helper()
	if len(got) != len(want) {
		t.Fatalf("values = %v, want %v", got, want)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("values[%d] = %v, want %v", i, got[i], want[i])
		}
	}
}

// connect wires two sockets or fails the test.
func connect(t *testing.T, env *catalog.Env, from, to *graph.Socket) {
	t.Helper()
	if _, err := env.Graph.Connect(from, to); err != nil {
		t.Fatal(err)
	}
}
