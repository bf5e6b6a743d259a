// Package arcade is a small arcade-physics world on top of a resolv space:
// axis-aligned bodies with velocity and gravity, collider pairs with
// callbacks, world bounds and a simulated clock for delayed callbacks. Games
// drive it one fixed step at a time, which keeps every simulation
// deterministic.
package arcade

import (
	"math"
	"sort"

	"github.com/solarlune/resolv"

	"github.com/vovakirdan/zombie-run/internal/core"
)

// cellSize is the edge of one resolv grid cell in world units.
const cellSize = 32

// contactEpsilon is how close two edges must be to count as resting contact.
const contactEpsilon = 1e-6

// CollideFunc is invoked once per overlapping pair per step, after separation.
// The first argument always comes from the collider's first operand.
type CollideFunc func(a, b *Body)

type collider struct {
	a, b     Collidable
	callback CollideFunc
	separate bool
}

// World owns bodies and resolves collisions between registered pairs.
type World struct {
	width     float64
	height    float64
	space     *resolv.Space
	bodies    []*Body
	colliders []*collider
	paused    bool
	nextID    int
}

// NewWorld creates a world with the given bounds in world units.
func NewWorld(width, height float64) *World {
	return &World{width: width, height: height, space: newSpace(width, height)}
}

// newSpace builds a grid covering the bounds plus one spare column and row
// for bodies entering from the right or bottom edge.
func newSpace(width, height float64) *resolv.Space {
	cols := int(math.Ceil(math.Max(width, 0)/cellSize)) + 1
	rows := int(math.Ceil(math.Max(height, 0)/cellSize)) + 1
	return resolv.NewSpace(cols*cellSize, rows*cellSize, cellSize, cellSize)
}

// Bounds returns the world rectangle.
func (w *World) Bounds() core.Box {
	return core.NewBox(0, 0, w.width, w.height)
}

// SetBounds resizes the world. Bodies are not repositioned.
func (w *World) SetBounds(width, height float64) {
	w.width = width
	w.height = height

	space := newSpace(width, height)
	for _, b := range w.bodies {
		w.space.Remove(b.obj)
		space.Add(b.obj)
	}
	w.space = space
}

// AddStatic creates a static body occupying the given box.
func (w *World) AddStatic(box core.Box) *Body {
	b := w.add(box)
	b.Static = true
	b.Immovable = true
	return b
}

// AddDynamic creates a dynamic body occupying the given box.
func (w *World) AddDynamic(box core.Box) *Body {
	return w.add(box)
}

func (w *World) add(box core.Box) *Body {
	w.nextID++
	b := newBody(w.nextID, box)
	w.space.Add(b.obj)
	w.bodies = append(w.bodies, b)
	return b
}

// Destroy removes a body from the world. Destroying twice is a no-op.
func (w *World) Destroy(b *Body) {
	if b == nil || !b.alive {
		return
	}
	b.alive = false
	w.space.Remove(b.obj)
	for i, other := range w.bodies {
		if other == b {
			w.bodies = append(w.bodies[:i], w.bodies[i+1:]...)
			break
		}
	}
}

// Bodies returns all live bodies in creation order.
func (w *World) Bodies() []*Body {
	out := make([]*Body, len(w.bodies))
	copy(out, w.bodies)
	return out
}

// Collider registers a pair that is separated and then reported to callback.
// A nil callback gives purely physical contact.
func (w *World) Collider(a, b Collidable, callback CollideFunc) {
	w.colliders = append(w.colliders, &collider{a: a, b: b, callback: callback, separate: true})
}

// Overlap registers a pair that is reported but never separated.
func (w *World) Overlap(a, b Collidable, callback CollideFunc) {
	w.colliders = append(w.colliders, &collider{a: a, b: b, callback: callback})
}

// Pause freezes integration and collision checks.
func (w *World) Pause() {
	w.paused = true
}

// Resume restarts a paused world.
func (w *World) Resume() {
	w.paused = false
}

// Paused reports whether the world is frozen.
func (w *World) Paused() bool {
	return w.paused
}

// Reset destroys every body and collider and resumes the world.
func (w *World) Reset() {
	for _, b := range w.bodies {
		b.alive = false
	}
	w.bodies = w.bodies[:0]
	w.colliders = w.colliders[:0]
	w.space = newSpace(w.width, w.height)
	w.paused = false
}

// Step advances the simulation by dt seconds.
func (w *World) Step(dt float64) {
	if w.paused || dt <= 0 {
		return
	}

	for _, b := range w.bodies {
		b.Touching = Touching{}
		b.Blocked = Touching{}
		if !b.Static {
			b.VY += b.GravityY * dt
			b.X += b.VX * dt
			b.Y += b.VY * dt
			if b.CollideWorldBounds {
				w.clampToBounds(b)
			}
		}
		b.sync()
	}

	// Colliders registered during callbacks run from the next step on.
	colliders := w.colliders
	for _, c := range colliders {
		if w.paused {
			return
		}
		w.runCollider(c)
	}
}

func (w *World) runCollider(c *collider) {
	tag := c.b.collisionTag()
	for _, a := range c.a.Bodies() {
		for _, b := range w.candidates(a, tag) {
			if w.paused {
				return
			}
			if !a.alive || !b.alive || (a.Static && b.Static) {
				continue
			}
			if !a.Box().Intersects(b.Box()) {
				continue
			}
			if c.separate {
				separate(a, b, a.obj.Shape.Intersection(0, 0, b.obj.Shape))
			}
			if c.callback != nil {
				c.callback(a, b)
			}
		}
	}
}

// candidates returns the live bodies carrying tag that share a grid cell
// with a, ordered by ID. The second check, one unit down and right, picks
// up cells a reaches only by a fraction of a unit.
func (w *World) candidates(a *Body, tag string) []*Body {
	if !a.alive {
		return nil
	}
	seen := make(map[*Body]bool)
	var out []*Body
	for _, d := range [...]float64{0, 1} {
		check := a.obj.Check(d, d, tag)
		if check == nil {
			continue
		}
		for _, o := range check.Objects {
			b, ok := o.Data.(*Body)
			if !ok || b == a || !b.alive || seen[b] {
				continue
			}
			seen[b] = true
			out = append(out, b)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].id < out[j].id })
	return out
}

func (w *World) clampToBounds(b *Body) {
	if b.X < 0 {
		b.X = 0
		b.VX = 0
		b.Blocked.Left = true
	} else if b.Right() > w.width {
		b.X = w.width - b.W
		b.VX = 0
		b.Blocked.Right = true
	}
	if b.Y < 0 {
		b.Y = 0
		b.VY = 0
		b.Blocked.Up = true
	} else if b.Bottom() > w.height {
		b.Y = w.height - b.H
		b.VY = 0
		b.Blocked.Down = true
	}
}

// separate pushes overlapping bodies apart along the axis of the contact's
// minimum translation vector, then records which sides now touch.
func separate(a, b *Body, contact *resolv.ContactSet) {
	if a.Immovable && b.Immovable {
		return
	}

	vertical := separationVertical(contact, a, b)
	acx, acy := a.Box().Center()
	bcx, bcy := b.Box().Center()

	// dir is +1 when a sits on the lower coordinate side of b.
	dir := 1.0
	var overlap float64
	if vertical {
		if acy > bcy {
			dir = -1
		}
		overlap = math.Min(a.Bottom(), b.Bottom()) - math.Max(a.Y, b.Y)
	} else {
		if acx > bcx {
			dir = -1
		}
		overlap = math.Min(a.Right(), b.Right()) - math.Max(a.X, b.X)
	}
	if overlap <= 0 {
		return
	}

	// Share of the push each body takes.
	shareA, shareB := 0.5, 0.5
	switch {
	case b.Immovable:
		shareA, shareB = 1, 0
	case a.Immovable:
		shareA, shareB = 0, 1
	}

	if vertical {
		switch {
		case shareB == 0 && dir > 0:
			a.Y = b.Y - a.H
		case shareB == 0:
			a.Y = b.Bottom()
		case shareA == 0 && dir > 0:
			b.Y = a.Bottom()
		case shareA == 0:
			b.Y = a.Y - b.H
		default:
			a.Y -= dir * overlap * shareA
			b.Y += dir * overlap * shareB
		}
		if shareA > 0 && a.VY*dir > 0 {
			a.VY = 0
		}
		if shareB > 0 && b.VY*dir < 0 {
			b.VY = 0
		}
	} else {
		a.X -= dir * overlap * shareA
		b.X += dir * overlap * shareB
		if dir > 0 {
			a.Touching.Right, b.Touching.Left = true, true
		} else {
			a.Touching.Left, b.Touching.Right = true, true
		}
		if shareA > 0 && a.VX*dir > 0 {
			a.VX = 0
		}
		if shareB > 0 && b.VX*dir < 0 {
			b.VX = 0
		}
	}
	a.sync()
	b.sync()

	if vertical {
		upper, lower := a, b
		if dir < 0 {
			upper, lower = b, a
		}
		if restsOn(upper, lower) {
			upper.Touching.Down, lower.Touching.Up = true, true
		}
	}
}

// separationVertical reports whether the contact is resolved on the y axis.
// Without a contact set the smaller box overlap decides.
func separationVertical(contact *resolv.ContactSet, a, b *Body) bool {
	if contact != nil && len(contact.MTV) >= 2 && (contact.MTV[0] != 0 || contact.MTV[1] != 0) {
		return math.Abs(contact.MTV[1]) >= math.Abs(contact.MTV[0])
	}
	overlapX := math.Min(a.Right(), b.Right()) - math.Max(a.X, b.X)
	overlapY := math.Min(a.Bottom(), b.Bottom()) - math.Max(a.Y, b.Y)
	return overlapY <= overlapX
}

// restsOn checks one unit below upper and reports whether lower is directly
// under it with no gap.
func restsOn(upper, lower *Body) bool {
	check := upper.obj.Check(0, 1, lower.tag)
	if check == nil {
		return false
	}
	for _, o := range check.Objects {
		if o != lower.obj {
			continue
		}
		gap := check.ContactWithObject(o)
		return math.Abs(gap[1]) < contactEpsilon &&
			upper.X < lower.Right() && lower.X < upper.Right()
	}
	return false
}
