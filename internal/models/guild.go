package models

import (
	"context"
	"database/sql"
	"errors"
	"time"

	"guild-games-go/internal/tracing"

	"go.opentelemetry.io/otel/attribute"
)

type Guild struct {
	ID        string    `json:"id"`
	CreatedAt time.Time `json:"created_at"`
}

// GuildStore persists guild records in sqlite.
type GuildStore struct {
	db *sql.DB
}

func NewGuildStore(db *sql.DB) *GuildStore {
	return &GuildStore{db: db}
}

func (s *GuildStore) GuildExists(ctx context.Context, guildID string) (bool, error) {
	ctx, span := tracing.StartSpan(ctx, "guilds.exists", attribute.String("guild.id", guildID))
	defer span.End()

	var one int
	err := s.db.QueryRowContext(ctx, `SELECT 1 FROM guilds WHERE id = ?`, guildID).Scan(&one)
	if errors.Is(err, sql.ErrNoRows) {
		return false, nil
	}
	if err != nil {
		tracing.Fail(span, err)
		return false, err
	}
	return true, nil
}

// CreateGuild inserts the guild; an existing row is left untouched.
func (s *GuildStore) CreateGuild(ctx context.Context, guildID string) error {
	ctx, span := tracing.StartSpan(ctx, "guilds.create", attribute.String("guild.id", guildID))
	defer span.End()

	if guildID == "" {
		return ErrInvalidGuildID
	}
	_, err := s.db.ExecContext(ctx, `INSERT INTO guilds(id) VALUES (?) ON CONFLICT(id) DO NOTHING`, guildID)
	tracing.Fail(span, err)
	return err
}

func (s *GuildStore) GetGuild(ctx context.Context, guildID string) (*Guild, error) {
	var g Guild
	err := s.db.QueryRowContext(ctx, `SELECT id, created_at FROM guilds WHERE id = ?`, guildID).Scan(&g.ID, &g.CreatedAt)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return &g, nil
}

// ListGuilds returns persisted guilds, oldest first.
func (s *GuildStore) ListGuilds(ctx context.Context, limit, offset int64) ([]Guild, error) {
	if limit <= 0 {
		limit = 50
	}
	if limit > 200 {
		limit = 200
	}
	if offset < 0 {
		offset = 0
	}
	rows, err := s.db.QueryContext(ctx,
		`SELECT id, created_at FROM guilds ORDER BY created_at, id LIMIT ? OFFSET ?`,
		limit, offset,
	)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := []Guild{}
	for rows.Next() {
		var g Guild
		if err := rows.Scan(&g.ID, &g.CreatedAt); err != nil {
			return nil, err
		}
		out = append(out, g)
	}
	return out, rows.Err()
}
