package game

import (
	"math"

	"github.com/vovakirdan/tui-flappy/internal/core"
)

// Entity is the player-controlled falling object. Only its vertical position
// changes; the horizontal slot is fixed by Options.EntityX.
//
// Movement is impulse based: gravity adds a constant each tick and a jump
// subtracts a constant immediately. There is no velocity.
type Entity struct {
	Y    float64
	opts Options
}

// NewEntity creates an entity at the start position.
func NewEntity(opts Options) Entity {
	return Entity{Y: opts.StartY(), opts: opts}
}

// Step applies one tick of gravity. It reports true when the entity reached
// the floor, in which case the position is clamped to the floor.
func (e *Entity) Step() (floor bool) {
	e.Y += e.opts.Gravity
	if e.Y+e.opts.EntitySize >= e.opts.FieldHeight {
		e.Y = e.opts.MaxEntityY()
		return true
	}
	return false
}

// Jump lifts the entity by the jump impulse. The ceiling stops ascent but is not fatal.
func (e *Entity) Jump() {
	e.Y = math.Max(e.Y-e.opts.JumpImpulse, 0)
}

// Reset moves the entity back to the start position.
func (e *Entity) Reset() {
	e.Y = e.opts.StartY()
}

// HSpan returns the entity's horizontal extent.
func (e Entity) HSpan() core.Span {
	return core.NewSpan(e.opts.EntityX, e.opts.EntitySize)
}

// VSpan returns the entity's vertical extent.
func (e Entity) VSpan() core.Span {
	return core.NewSpan(e.Y, e.opts.EntitySize)
}
