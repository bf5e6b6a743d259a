package arcade

import "fmt"

// Group is an ordered set of bodies that share collision rules. Members
// carry the group's tag on their resolv objects, so colliders find them
// with a tagged space check. Destroyed bodies are pruned lazily.
type Group struct {
	world   *World
	tag     string
	members []*Body
}

// NewGroup creates an empty group bound to the world.
func (w *World) NewGroup() *Group {
	w.nextID++
	return &Group{world: w, tag: fmt.Sprintf("group:%d", w.nextID)}
}

// Add inserts a body into the group.
func (g *Group) Add(b *Body) {
	b.obj.AddTags(g.tag)
	g.members = append(g.members, b)
}

// Bodies returns the live members in insertion order.
func (g *Group) Bodies() []*Body {
	live := g.members[:0]
	for _, m := range g.members {
		if m.alive {
			live = append(live, m)
		}
	}
	g.members = live

	out := make([]*Body, len(live))
	copy(out, live)
	return out
}

// Len returns the number of live members.
func (g *Group) Len() int {
	n := 0
	for _, m := range g.members {
		if m.alive {
			n++
		}
	}
	return n
}

// Clear destroys every member and empties the group.
func (g *Group) Clear() {
	for _, m := range g.members {
		g.world.Destroy(m)
	}
	g.members = g.members[:0]
}

func (g *Group) collisionTag() string {
	return g.tag
}
