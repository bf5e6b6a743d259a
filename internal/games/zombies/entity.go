package zombies

import (
	"github.com/vovakirdan/zombie-run/internal/arcade"
	"github.com/vovakirdan/zombie-run/internal/core"
)

// Kind tags what an entity is.
type Kind int

const (
	KindPlayer Kind = iota
	KindZombie
	KindStar
	KindPlatform
)

// String returns a human-readable name for the kind.
func (k Kind) String() string {
	switch k {
	case KindPlayer:
		return "player"
	case KindZombie:
		return "zombie"
	case KindStar:
		return "star"
	case KindPlatform:
		return "platform"
	default:
		return "unknown"
	}
}

// IsObstacle reports whether the kind scrolls towards the player.
func (k Kind) IsObstacle() bool {
	return k == KindZombie || k == KindStar
}

// Entity is a scene object backed by a physics body.
// Only position, velocity, extent and tint are exposed to the scene.
type Entity struct {
	Kind   Kind
	Tinted bool

	body *arcade.Body
}

func newEntity(kind Kind, body *arcade.Body) *Entity {
	e := &Entity{Kind: kind, body: body}
	body.Data = e
	return e
}

// entityOf recovers the entity attached to a body.
func entityOf(b *arcade.Body) *Entity {
	e, _ := b.Data.(*Entity)
	return e
}

// Box returns the collision extent in world units.
func (e *Entity) Box() core.Box {
	return e.body.Box()
}

// Velocity returns the current velocity in units per second.
func (e *Entity) Velocity() (vx, vy float64) {
	return e.body.VX, e.body.VY
}

// Grounded reports whether the entity rested on something during the last step.
func (e *Entity) Grounded() bool {
	return e.body.Touching.Down
}

// Alive reports whether the entity is still in the world.
func (e *Entity) Alive() bool {
	return e.body.Alive()
}
