package arcade

import (
	"fmt"

	"github.com/solarlune/resolv"

	"github.com/vovakirdan/zombie-run/internal/core"
)

// Touching records which sides of a body were in contact with another body
// during the most recent step.
type Touching struct {
	Up, Down, Left, Right bool
}

// Body is a rectangular physics body backed by a resolv object. Positions
// are the top-left corner in world units; velocities are units per second.
// X, Y, W and H are the source of truth and are pushed to the resolv object
// before every collision pass.
type Body struct {
	X, Y     float64
	W, H     float64
	VX, VY   float64
	GravityY float64 // Per-body gravity in units per second squared

	// Static bodies never move and are not integrated.
	Static bool
	// Immovable bodies are integrated but never pushed by separation.
	Immovable bool
	// CollideWorldBounds keeps the body inside the world rectangle.
	CollideWorldBounds bool

	// Touching is reset at the start of every step and filled by colliders.
	Touching Touching
	// Blocked is like Touching but for the world bounds.
	Blocked Touching

	// Data carries the owner's payload (the scene's entity).
	Data any

	id    int
	tag   string
	alive bool
	obj   *resolv.Object
}

func newBody(id int, box core.Box) *Body {
	b := &Body{
		X: box.X, Y: box.Y, W: box.W, H: box.H,
		id:    id,
		tag:   fmt.Sprintf("body:%d", id),
		alive: true,
	}
	b.obj = resolv.NewObject(box.X, box.Y, box.W, box.H, b.tag)
	b.obj.SetShape(resolv.NewRectangle(0, 0, box.W, box.H))
	b.obj.Data = b
	return b
}

// ID returns the body identifier, unique within its world.
func (b *Body) ID() int {
	return b.id
}

// Alive reports whether the body is still part of a world.
func (b *Body) Alive() bool {
	return b.alive
}

// Box returns the current collision box.
func (b *Body) Box() core.Box {
	return core.NewBox(b.X, b.Y, b.W, b.H)
}

// Right returns the x-coordinate of the right edge.
func (b *Body) Right() float64 {
	return b.X + b.W
}

// Bottom returns the y-coordinate of the bottom edge.
func (b *Body) Bottom() float64 {
	return b.Y + b.H
}

// Bodies lets a single body be used wherever a Collidable is expected.
func (b *Body) Bodies() []*Body {
	if !b.alive {
		return nil
	}
	return []*Body{b}
}

func (b *Body) collisionTag() string {
	return b.tag
}

// sync copies the body's box onto its resolv object and re-registers it
// with the space grid.
func (b *Body) sync() {
	if b.obj.W != b.W || b.obj.H != b.H {
		b.obj.W, b.obj.H = b.W, b.H
		b.obj.SetShape(resolv.NewRectangle(0, 0, b.W, b.H))
	}
	b.obj.X, b.obj.Y = b.X, b.Y
	b.obj.Update()
}

// Collidable is anything that can take part in a collider pair: a *Body or a *Group.
type Collidable interface {
	Bodies() []*Body
	collisionTag() string
}
