// Package catalog maps stable operation codes to node factories and
// handles saving and loading graphs built from catalogued nodes.
package catalog

import (
	"fmt"
	"sort"

	"github.com/xylemcad/xylem/pkg/bus"
	"github.com/xylemcad/xylem/pkg/graph"
	"github.com/xylemcad/xylem/pkg/kernel"
	"github.com/xylemcad/xylem/pkg/script"
)

// Env carries the shared services a node factory may need. Factories
// receive it at construction time so nodes never reach for globals.
type Env struct {
	Graph  *graph.Graph
	Bus    *bus.Registry
	Kernel kernel.Kernel
	Script *script.Engine
}

// Factory builds a fresh node wired to the given environment.
type Factory func(env *Env) (*graph.Node, error)

// Descriptor describes one catalogued node kind.
type Descriptor struct {
	OpCode   int
	Title    string
	Icon     string
	Category string
	Factory  Factory
}

// Catalog is a registry of node descriptors keyed by operation code.
type Catalog struct {
	byCode map[int]Descriptor
}

// New creates an empty catalog.
func New() *Catalog {
	return &Catalog{byCode: make(map[int]Descriptor)}
}

// Register adds a descriptor. Registering the same op code twice is an
// error so that accidental collisions surface immediately.
func (c *Catalog) Register(d Descriptor) error {
	if d.Factory == nil {
		return fmt.Errorf("catalog: descriptor %d (%s) has no factory", d.OpCode, d.Title)
	}
	if existing, ok := c.byCode[d.OpCode]; ok {
		return fmt.Errorf("catalog: op code %d already registered as %q", d.OpCode, existing.Title)
	}
	c.byCode[d.OpCode] = d
	return nil
}

// MustRegister is Register for static registration tables, panicking on
// collision.
func (c *Catalog) MustRegister(d Descriptor) {
	if err := c.Register(d); err != nil {
		panic(err)
	}
}

// Lookup returns the descriptor for an op code.
func (c *Catalog) Lookup(opCode int) (Descriptor, bool) {
	d, ok := c.byCode[opCode]
	return d, ok
}

// Create instantiates a node by op code and adds it to env.Graph.
func (c *Catalog) Create(opCode int, env *Env) (*graph.Node, error) {
	d, ok := c.byCode[opCode]
	if !ok {
		return nil, fmt.Errorf("catalog: unknown op code %d", opCode)
	}
	n, err := d.Factory(env)
	if err != nil {
		return nil, fmt.Errorf("catalog: create %q: %w", d.Title, err)
	}
	if env.Graph != nil {
		if err := env.Graph.AddNode(n); err != nil {
			return nil, err
		}
	}
	return n, nil
}

// Descriptors returns all registered descriptors sorted by category then
// title, the order a palette would present them in.
func (c *Catalog) Descriptors() []Descriptor {
	out := make([]Descriptor, 0, len(c.byCode))
	for _, d := range c.byCode {
		out = append(out, d)
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].Category != out[j].Category {
			return out[i].Category < out[j].Category
		}
		return out[i].Title < out[j].Title
	})
	return out
}
