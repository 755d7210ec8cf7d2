package graph

// NodeID identifies a node instance in a graph.
type NodeID string

// ZeroID is the empty node id.
const ZeroID NodeID = ""

// IsZero reports whether the id is empty.
func (id NodeID) IsZero() bool { return id == ZeroID }

// Short returns a truncated form of the id for error messages.
func (id NodeID) Short() string {
	s := string(id)
	if len(s) > 8 {
		return s[:8]
	}
	return s
}

// Value is a single datum flowing through the graph: a number, a string,
// a Vec3, a kernel solid, or a nested list of values.
type Value = any

// Bucket is the ordered sequence of values produced for one socket in one
// evaluation.
type Bucket []Value

// Socket type tags. The tag is a category/color code only; compatibility
// between sockets is decided by capability tags, not by the type tag.
const (
	TypeNumber = 0
	TypeVector = 1
	TypeString = 3
	TypeShape  = 5
	TypeAny    = 6
)

// CapAny is the wildcard capability tag. A socket carrying it accepts any
// data kind, and is accepted by any socket.
const CapAny = "*"

// capsCompatible reports whether an output socket with caps a may connect
// to an input socket with caps b. Empty capability sets accept everything.
func capsCompatible(a, b []string) bool {
	if len(a) == 0 || len(b) == 0 {
		return true
	}
	for _, x := range a {
		if x == CapAny {
			return true
		}
		for _, y := range b {
			if y == CapAny || x == y {
				return true
			}
		}
	}
	return false
}

// Vec3 is a 3D vector in mm.
type Vec3 struct {
	X float64 `json:"x"`
	Y float64 `json:"y"`
	Z float64 `json:"z"`
}

// Add returns the component-wise sum of two vectors.
func (v Vec3) Add(o Vec3) Vec3 {
	return Vec3{X: v.X + o.X, Y: v.Y + o.Y, Z: v.Z + o.Z}
}

// Scale returns the vector scaled by f.
func (v Vec3) Scale(f float64) Vec3 {
	return Vec3{X: v.X * f, Y: v.Y * f, Z: v.Z * f}
}
