package game

import "time"

// Base carries the identity every session shares. Variants embed it.
type Base struct {
	id      string
	created time.Time
}

func NewBase(id string) Base {
	return Base{id: id, created: time.Now().UTC()}
}

func (b Base) ID() string           { return b.id }
func (b Base) CreatedAt() time.Time { return b.created }
