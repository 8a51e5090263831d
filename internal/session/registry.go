// Package session keeps the in-memory set of active game sessions, bucketed
// by guild, and makes sure each guild is known to the persistent store before
// its first session starts.
package session

import (
	"context"
	"fmt"
	"log"
	"sort"
	"strings"
	"sync"
	"time"

	"guild-games-go/internal/game"
	"guild-games-go/internal/tracing"

	"go.opentelemetry.io/otel/attribute"
)

// GuildStore persists guild records. CreateGuild must be idempotent.
type GuildStore interface {
	GuildExists(ctx context.Context, guildID string) (bool, error)
	CreateGuild(ctx context.Context, guildID string) error
}

// Notifier observes registry changes. Calls happen after the change is visible
// and outside the registry lock.
type Notifier interface {
	SessionCreated(guildID string, s game.Session)
	SessionRemoved(guildID, sessionID string)
}

type Option func(*Registry)

// WithNotifier attaches n to receive create/remove events.
func WithNotifier(n Notifier) Option {
	return func(r *Registry) { r.notifier = n }
}

// WithStoreTimeout bounds each GuildStore call. Zero means no extra deadline.
func WithStoreTimeout(d time.Duration) Option {
	return func(r *Registry) { r.storeTimeout = d }
}

// bucket holds one guild's sessions. ensureMu serializes the store
// check-then-create so concurrent first creates issue a single round trip.
type bucket struct {
	sessions map[string]game.Session

	ensureMu  sync.Mutex
	persisted bool
}

// Registry tracks active sessions per guild. Session IDs come from a single
// counter and are never reused for the life of the Registry.
type Registry struct {
	store     GuildStore
	factories *game.Registry
	notifier  Notifier

	storeTimeout time.Duration

	mu      sync.RWMutex
	guilds  map[string]*bucket
	counter uint64
}

func NewRegistry(store GuildStore, factories *game.Registry, opts ...Option) *Registry {
	r := &Registry{
		store:     store,
		factories: factories,
		guilds:    map[string]*bucket{},
	}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

// FormatID renders a counter value as a session ID.
func FormatID(n uint64) string {
	return fmt.Sprintf("%08d", n)
}

// CreateSession starts a new session of cfg's variant in guildID.
//
// The variant and its config are validated before anything else happens, so
// a rejected request neither creates a bucket nor consumes an ID. The first
// session for a guild creates its bucket and registers the guild with the
// store. When the store call fails the bucket is kept but left unpersisted,
// and the next CreateSession for that guild retries the store.
func (r *Registry) CreateSession(ctx context.Context, guildID string, cfg game.Config) (game.Session, error) {
	if strings.TrimSpace(guildID) == "" {
		return nil, ErrEmptyGuildID
	}

	ctx, span := tracing.StartSpan(ctx, "session.create", attribute.String("guild.id", guildID))
	defer span.End()

	build, err := r.factories.Prepare(cfg)
	if err != nil {
		tracing.Fail(span, err)
		return nil, err
	}

	b := r.bucket(guildID)
	if err := r.ensureGuild(ctx, guildID, b); err != nil {
		tracing.Fail(span, err)
		return nil, err
	}

	r.mu.Lock()
	id := FormatID(r.counter)
	r.counter++
	s := build(id)
	b.sessions[id] = s
	r.mu.Unlock()

	span.SetAttributes(
		attribute.String("session.id", id),
		attribute.String("session.variant", s.Variant().String()),
	)
	log.Printf("session created: guild_id=%s session_id=%s variant=%s", guildID, id, s.Variant())
	if r.notifier != nil {
		r.notifier.SessionCreated(guildID, s)
	}
	return s, nil
}

// GetSession returns the session stored under (guildID, sessionID). A known
// guild without that session is a miss (ok=false), not an error.
func (r *Registry) GetSession(guildID, sessionID string) (game.Session, bool, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	b, ok := r.guilds[guildID]
	if !ok {
		return nil, false, fmt.Errorf("%w: %q", ErrUnknownGuild, guildID)
	}
	s, ok := b.sessions[sessionID]
	return s, ok, nil
}

// RemoveSession drops sessionID from guildID. Removing an absent session is a no-op.
func (r *Registry) RemoveSession(guildID, sessionID string) error {
	r.mu.Lock()
	b, ok := r.guilds[guildID]
	if !ok {
		r.mu.Unlock()
		return fmt.Errorf("%w: %q", ErrUnknownGuild, guildID)
	}
	_, existed := b.sessions[sessionID]
	delete(b.sessions, sessionID)
	r.mu.Unlock()

	if existed {
		log.Printf("session removed: guild_id=%s session_id=%s", guildID, sessionID)
		if r.notifier != nil {
			r.notifier.SessionRemoved(guildID, sessionID)
		}
	}
	return nil
}

// ListSessions returns guildID's sessions ordered by ID.
func (r *Registry) ListSessions(guildID string) ([]game.Session, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	b, ok := r.guilds[guildID]
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrUnknownGuild, guildID)
	}
	out := make([]game.Session, 0, len(b.sessions))
	for _, s := range b.sessions {
		out = append(out, s)
	}
	// Fixed-width IDs sort lexically in creation order.
	sort.Slice(out, func(i, j int) bool { return out[i].ID() < out[j].ID() })
	return out, nil
}

// SessionCount reports how many sessions guildID has; unknown guilds have zero.
func (r *Registry) SessionCount(guildID string) int {
	r.mu.RLock()
	defer r.mu.RUnlock()
	if b, ok := r.guilds[guildID]; ok {
		return len(b.sessions)
	}
	return 0
}

// Guilds returns the IDs of every guild that has a bucket, sorted.
func (r *Registry) Guilds() []string {
	r.mu.RLock()
	defer r.mu.RUnlock()
	out := make([]string, 0, len(r.guilds))
	for id := range r.guilds {
		out = append(out, id)
	}
	sort.Strings(out)
	return out
}

func (r *Registry) bucket(guildID string) *bucket {
	r.mu.RLock()
	b, ok := r.guilds[guildID]
	r.mu.RUnlock()
	if ok {
		return b
	}

	r.mu.Lock()
	defer r.mu.Unlock()
	if b, ok := r.guilds[guildID]; ok {
		return b
	}
	b = &bucket{sessions: map[string]game.Session{}}
	r.guilds[guildID] = b
	return b
}

func (r *Registry) ensureGuild(ctx context.Context, guildID string, b *bucket) error {
	b.ensureMu.Lock()
	defer b.ensureMu.Unlock()
	if b.persisted {
		return nil
	}
	if r.store == nil {
		b.persisted = true
		return nil
	}

	if r.storeTimeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, r.storeTimeout)
		defer cancel()
	}

	exists, err := r.store.GuildExists(ctx, guildID)
	if err != nil {
		log.Printf("guild store exists check failed: guild_id=%s err=%v", guildID, err)
		return fmt.Errorf("%w: check guild %q: %w", ErrStoreUnavailable, guildID, err)
	}
	if !exists {
		if err := r.store.CreateGuild(ctx, guildID); err != nil {
			log.Printf("guild store create failed: guild_id=%s err=%v", guildID, err)
			return fmt.Errorf("%w: create guild %q: %w", ErrStoreUnavailable, guildID, err)
		}
	}
	b.persisted = true
	return nil
}
