package session

import (
	"errors"

	"guild-games-go/internal/game"
)

var (
	ErrUnknownGuild     = errors.New("unknown guild")
	ErrEmptyGuildID     = errors.New("guild id is required")
	ErrStoreUnavailable = errors.New("guild store unavailable")

	// ErrUnknownVariant is returned when no factory serves the requested variant.
	ErrUnknownVariant = game.ErrUnknownVariant
)
