package scene

import (
	"fmt"
	"math"

	"github.com/df07/go-sdf-raymarcher/pkg/core"
	"github.com/df07/go-sdf-raymarcher/pkg/geometry"
	"github.com/df07/go-sdf-raymarcher/pkg/material"
)

// Node is a vertex of the composition tree. Sample must be pure: the same point
// always yields the same surface, and no state is touched.
type Node interface {
	Sample(p core.Vec3) geometry.Surface
}

// Pattern selects a position-dependent appearance override for a model
type Pattern uint8

const (
	PatternNone Pattern = iota
	PatternChecker
)

// ParsePattern converts a scene-file name into a Pattern
func ParsePattern(name string) (Pattern, error) {
	switch name {
	case "", "none":
		return PatternNone, nil
	case "checker", "checkerboard":
		return PatternChecker, nil
	default:
		return PatternNone, fmt.Errorf("unknown pattern %q: %w", name, core.ErrInvalidParameter)
	}
}

// Model places a shape in the world. The offset is a pure translation subtracted
// from the query point before the shape is evaluated.
type Model struct {
	Name       string
	Shape      geometry.Shape
	Appearance material.Appearance
	Offset     core.Vec3
	Pattern    Pattern
}

// NewModel creates a model at the given offset
func NewModel(name string, shape geometry.Shape, appearance material.Appearance, offset core.Vec3) *Model {
	return &Model{
		Name:       name,
		Shape:      shape,
		Appearance: appearance,
		Offset:     offset,
	}
}

// Distance evaluates the shape in object space
func (m *Model) Distance(p core.Vec3) float32 {
	return m.Shape.Distance(p.Sub(m.Offset))
}

// Sample implements Node
func (m *Model) Sample(p core.Vec3) geometry.Surface {
	appearance := m.Appearance
	if m.Pattern == PatternChecker {
		// Cells are anchored in world space so moving the model does not move the pattern
		appearance.Material = material.Checkerboard(p)
	}
	return geometry.NewSurface(m.Distance(p), appearance)
}

// Validate checks the shape parameters
func (m *Model) Validate() error {
	if m.Shape == nil {
		return fmt.Errorf("model %q has no shape: %w", m.Name, core.ErrInvalidParameter)
	}
	if v, ok := m.Shape.(geometry.Validator); ok {
		if err := v.Validate(); err != nil {
			return fmt.Errorf("model %q: %w", m.Name, err)
		}
	}
	if !core.IsFinite(m.Offset) {
		return fmt.Errorf("model %q has non-finite offset: %w", m.Name, core.ErrInvalidParameter)
	}
	return nil
}

// Blend combines two subtrees with a composition operator
type Blend struct {
	Op geometry.Op
	K  float32 // Blend radius, smooth operators only
	A  Node
	B  Node
}

// NewBlend creates a new blend node
func NewBlend(op geometry.Op, k float32, a, b Node) *Blend {
	return &Blend{Op: op, K: k, A: a, B: b}
}

// Union is shorthand for a hard union blend
func Union(a, b Node) *Blend {
	return NewBlend(geometry.OpUnion, 0, a, b)
}

// Sample implements Node
func (b *Blend) Sample(p core.Vec3) geometry.Surface {
	return geometry.Combine(b.Op, b.A.Sample(p), b.B.Sample(p), b.K)
}

// Validate rejects missing operands and non-positive smoothness
func (b *Blend) Validate() error {
	if b.A == nil || b.B == nil {
		return fmt.Errorf("%v blend is missing an operand: %w", b.Op, core.ErrInvalidParameter)
	}
	if b.Op.IsSmooth() && !(b.K > 0) {
		return fmt.Errorf("%v smoothness must be > 0, got %g: %w", b.Op, b.K, core.ErrInvalidParameter)
	}
	return nil
}

// Group is the n-ary union of its children, folded left so ties keep the
// earlier child
type Group struct {
	Children []Node
}

// NewGroup creates a new group
func NewGroup(children ...Node) *Group {
	return &Group{Children: children}
}

// Sample implements Node. An empty group is infinitely far away.
func (g *Group) Sample(p core.Vec3) geometry.Surface {
	if len(g.Children) == 0 {
		return geometry.Surface{Distance: math.MaxFloat32}
	}
	result := g.Children[0].Sample(p)
	for _, child := range g.Children[1:] {
		result = geometry.Union(result, child.Sample(p))
	}
	return result
}

// Validate rejects nil children
func (g *Group) Validate() error {
	for i, child := range g.Children {
		if child == nil {
			return fmt.Errorf("group child %d is nil: %w", i, core.ErrInvalidParameter)
		}
	}
	return nil
}

// Walk visits node and every descendant depth first, stopping at the first error
func Walk(node Node, fn func(Node) error) error {
	if node == nil {
		return nil
	}
	if err := fn(node); err != nil {
		return err
	}
	switch n := node.(type) {
	case *Blend:
		if err := Walk(n.A, fn); err != nil {
			return err
		}
		return Walk(n.B, fn)
	case *Group:
		for _, child := range n.Children {
			if err := Walk(child, fn); err != nil {
				return err
			}
		}
	}
	return nil
}
