package nodes

import (
	"fmt"

	"github.com/xylemcad/xylem/pkg/catalog"
	"github.com/xylemcad/xylem/pkg/graph"
	"github.com/xylemcad/xylem/pkg/kernel"
)

// firstFloat reads the first value of a bucket as a float, or returns
// fallback for an empty bucket. Generator dimensions use unconnected
// empty defaults, so "no input" means "built-in size".
func firstFloat(b graph.Bucket, label string, fallback float64) (float64, error) {
	if len(b) == 0 {
		return fallback, nil
	}
	f, err := ToFloat(b[0])
	if err != nil {
		return 0, fmt.Errorf("%s: %w", label, err)
	}
	return f, nil
}

// firstVec reads the first value of a bucket as a vector, defaulting to
// the origin.
func firstVec(b graph.Bucket, label string) (graph.Vec3, error) {
	if len(b) == 0 {
		return graph.Vec3{}, nil
	}
	v, ok := b[0].(graph.Vec3)
	if !ok {
		return graph.Vec3{}, fmt.Errorf("%s: expected vector, got %T", label, b[0])
	}
	return v, nil
}

// firstSolid reads the first value of a bucket as a kernel solid.
func firstSolid(b graph.Bucket, label string) (kernel.Solid, error) {
	if len(b) == 0 {
		return nil, fmt.Errorf("%s input is empty", label)
	}
	s, ok := b[0].(kernel.Solid)
	if !ok {
		return nil, fmt.Errorf("%s: expected solid, got %T", label, b[0])
	}
	return s, nil
}

type solidBoxOp struct {
	k kernel.Kernel
}

func (o *solidBoxOp) Apply(in []graph.Bucket) ([]graph.Bucket, error) {
	w, err := firstFloat(in[0], "width", 10)
	if err != nil {
		return nil, err
	}
	l, err := firstFloat(in[1], "length", 10)
	if err != nil {
		return nil, err
	}
	h, err := firstFloat(in[2], "height", 10)
	if err != nil {
		return nil, err
	}
	if w <= 0 || l <= 0 || h <= 0 {
		return nil, fmt.Errorf("box dimensions must be positive, got %v x %v x %v", w, l, h)
	}
	pos, err := firstVec(in[3], "position")
	if err != nil {
		return nil, err
	}

	s := o.k.Box(w, l, h)
	if pos != (graph.Vec3{}) {
		s = o.k.Translate(s, pos.X, pos.Y, pos.Z)
	}
	return []graph.Bucket{{s}}, nil
}

// NewSolidBox builds the box generator node.
func NewSolidBox(env *catalog.Env) (*graph.Node, error) {
	if env.Kernel == nil {
		return nil, fmt.Errorf("box node requires a geometry kernel")
	}
	return graph.NewNode(OpSolidBox, "Box", &solidBoxOp{k: env.Kernel},
		[]graph.SocketSpec{
			{Type: graph.TypeNumber, Label: "Width"},
			{Type: graph.TypeNumber, Label: "Length"},
			{Type: graph.TypeNumber, Label: "Height"},
			{Type: graph.TypeVector, Label: "Position"},
		},
		[]graph.SocketSpec{
			{Type: graph.TypeShape, Label: "Shape"},
		}), nil
}

type solidSphereOp struct {
	k kernel.Kernel
}

func (o *solidSphereOp) Apply(in []graph.Bucket) ([]graph.Bucket, error) {
	if len(in[0]) == 0 {
		return nil, fmt.Errorf("radius input is empty")
	}
	r, err := ToFloat(in[0][0])
	if err != nil {
		return nil, fmt.Errorf("radius: %w", err)
	}
	if r <= 0 {
		return nil, fmt.Errorf("radius must be positive, got %v", r)
	}
	pos, err := firstVec(in[1], "position")
	if err != nil {
		return nil, err
	}

	s := o.k.Sphere(r)
	if pos != (graph.Vec3{}) {
		s = o.k.Translate(s, pos.X, pos.Y, pos.Z)
	}
	return []graph.Bucket{{s}}, nil
}

// NewSolidSphere builds the sphere generator node.
func NewSolidSphere(env *catalog.Env) (*graph.Node, error) {
	if env.Kernel == nil {
		return nil, fmt.Errorf("sphere node requires a geometry kernel")
	}
	return graph.NewNode(OpSolidSphere, "Sphere", &solidSphereOp{k: env.Kernel},
		[]graph.SocketSpec{
			{Type: graph.TypeNumber, Label: "Radius", Default: graph.Text{Value: "10.0"}},
			{Type: graph.TypeVector, Label: "Position"},
		},
		[]graph.SocketSpec{
			{Type: graph.TypeShape, Label: "Shape"},
		}), nil
}

type solidCylinderOp struct {
	k kernel.Kernel
}

func (o *solidCylinderOp) Apply(in []graph.Bucket) ([]graph.Bucket, error) {
	h, err := firstFloat(in[0], "height", 10)
	if err != nil {
		return nil, err
	}
	r, err := firstFloat(in[1], "radius", 5)
	if err != nil {
		return nil, err
	}
	if h <= 0 || r <= 0 {
		return nil, fmt.Errorf("cylinder dimensions must be positive, got height %v radius %v", h, r)
	}
	segs := 32
	if len(in[2]) > 0 {
		segs, err = ToInt(in[2][0])
		if err != nil {
			return nil, fmt.Errorf("segments: %w", err)
		}
		if segs < 3 {
			return nil, fmt.Errorf("segments must be at least 3, got %d", segs)
		}
	}
	pos, err := firstVec(in[3], "position")
	if err != nil {
		return nil, err
	}

	s := o.k.Cylinder(h, r, segs)
	if pos != (graph.Vec3{}) {
		s = o.k.Translate(s, pos.X, pos.Y, pos.Z)
	}
	return []graph.Bucket{{s}}, nil
}

// NewSolidCylinder builds the cylinder generator node.
func NewSolidCylinder(env *catalog.Env) (*graph.Node, error) {
	if env.Kernel == nil {
		return nil, fmt.Errorf("cylinder node requires a geometry kernel")
	}
	return graph.NewNode(OpSolidCylinder, "Cylinder", &solidCylinderOp{k: env.Kernel},
		[]graph.SocketSpec{
			{Type: graph.TypeNumber, Label: "Height"},
			{Type: graph.TypeNumber, Label: "Radius"},
			{Type: graph.TypeNumber, Label: "Segments"},
			{Type: graph.TypeVector, Label: "Position"},
		},
		[]graph.SocketSpec{
			{Type: graph.TypeShape, Label: "Shape"},
		}), nil
}

var booleanOps = []string{"union", "difference", "intersection"}

type solidBooleanOp struct {
	k kernel.Kernel
}

func (o *solidBooleanOp) Apply(in []graph.Bucket) ([]graph.Bucket, error) {
	if len(in[0]) == 0 {
		return nil, fmt.Errorf("operation input is empty")
	}
	opIdx, err := ToInt(in[0][0])
	if err != nil {
		return nil, fmt.Errorf("operation: %w", err)
	}
	if opIdx < 0 || opIdx >= len(booleanOps) {
		return nil, fmt.Errorf("unknown boolean operation index %d", opIdx)
	}
	a, err := firstSolid(in[1], "a")
	if err != nil {
		return nil, err
	}
	b, err := firstSolid(in[2], "b")
	if err != nil {
		return nil, err
	}

	var s kernel.Solid
	switch booleanOps[opIdx] {
	case "union":
		s = o.k.Union(a, b)
	case "difference":
		s = o.k.Difference(a, b)
	case "intersection":
		s = o.k.Intersection(a, b)
	}
	return []graph.Bucket{{s}}, nil
}

// NewSolidBoolean builds the boolean combiner node.
func NewSolidBoolean(env *catalog.Env) (*graph.Node, error) {
	if env.Kernel == nil {
		return nil, fmt.Errorf("boolean node requires a geometry kernel")
	}
	return graph.NewNode(OpSolidBoolean, "Boolean", &solidBooleanOp{k: env.Kernel},
		[]graph.SocketSpec{
			{Type: graph.TypeString, Label: "Op", Default: graph.Choice{Index: 0, Options: booleanOps}},
			{Type: graph.TypeShape, Label: "A"},
			{Type: graph.TypeShape, Label: "B"},
		},
		[]graph.SocketSpec{
			{Type: graph.TypeShape, Label: "Shape"},
		}), nil
}

type solidTransformOp struct {
	k kernel.Kernel
}

func (o *solidTransformOp) Apply(in []graph.Bucket) ([]graph.Bucket, error) {
	s, err := firstSolid(in[0], "shape")
	if err != nil {
		return nil, err
	}
	rot, err := firstVec(in[1], "rotation")
	if err != nil {
		return nil, err
	}
	move, err := firstVec(in[2], "move")
	if err != nil {
		return nil, err
	}

	// Rotate about the origin first, then move into place.
	if rot != (graph.Vec3{}) {
		s = o.k.Rotate(s, rot.X, rot.Y, rot.Z)
	}
	if move != (graph.Vec3{}) {
		s = o.k.Translate(s, move.X, move.Y, move.Z)
	}
	return []graph.Bucket{{s}}, nil
}

// NewSolidTransform builds the rotate-and-move node. Rotation angles are
// Euler angles in degrees.
func NewSolidTransform(env *catalog.Env) (*graph.Node, error) {
	if env.Kernel == nil {
		return nil, fmt.Errorf("transform node requires a geometry kernel")
	}
	return graph.NewNode(OpSolidTransform, "Transform", &solidTransformOp{k: env.Kernel},
		[]graph.SocketSpec{
			{Type: graph.TypeShape, Label: "Shape"},
			{Type: graph.TypeVector, Label: "Rotation"},
			{Type: graph.TypeVector, Label: "Move"},
		},
		[]graph.SocketSpec{
			{Type: graph.TypeShape, Label: "Shape"},
		}), nil
}
