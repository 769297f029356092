package conditions

import (
	"log/slog"
	"strings"

	"github.com/KirkDiggler/dungeon-effects/internal/domain/date"
	"github.com/KirkDiggler/dungeon-effects/internal/domain/events"
	"github.com/KirkDiggler/dungeon-effects/internal/domain/shared"
	dngerr "github.com/KirkDiggler/dungeon-effects/internal/errors"
	"github.com/KirkDiggler/dungeon-effects/internal/uuid"
)

// StackPolicy decides what happens when a new condition would exceed the
// stack cap of its effect
type StackPolicy int

const (
	// StackReject drops the new condition and keeps the active ones
	StackReject StackPolicy = iota
	// StackEvictOldest removes the oldest same-effect condition to make room
	StackEvictOldest
)

// ParseStackPolicy parses "reject" or "evict_oldest"
func ParseStackPolicy(s string) (StackPolicy, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", "reject":
		return StackReject, nil
	case "evict_oldest":
		return StackEvictOldest, nil
	default:
		return 0, dngerr.InvalidArgumentf("unknown stack policy %q", s)
	}
}

// UnmarshalText parses the policy name, see ParseStackPolicy
func (p *StackPolicy) UnmarshalText(text []byte) error {
	parsed, err := ParseStackPolicy(string(text))
	if err != nil {
		return err
	}
	*p = parsed
	return nil
}

func (p StackPolicy) String() string {
	if p == StackEvictOldest {
		return "evict_oldest"
	}
	return "reject"
}

// Entry is a condition registered on a holder under an instance ID
type Entry struct {
	ID        string
	Condition Condition
}

// HolderConfig configures a Holder
type HolderConfig struct {
	EntityID      string           // Required
	EventBus      *events.EventBus // Optional
	UUIDGenerator uuid.Generator   // Optional, defaults to google UUIDs
	StackPolicy   StackPolicy
}

// Holder is the set of conditions attached to one creature, kept in
// insertion order so that modifiers fold deterministically.
//
// A Holder is not safe for concurrent use; the goroutine resolving the
// creature's turn owns it.
type Holder struct {
	entityID      string
	entries       []Entry
	policy        StackPolicy
	eventBus      *events.EventBus
	uuidGenerator uuid.Generator
	logger        *slog.Logger
}

// NewHolder creates an empty holder
func NewHolder(cfg *HolderConfig) *Holder {
	if cfg == nil {
		panic("HolderConfig cannot be nil")
	}
	if cfg.EntityID == "" {
		panic("holder entity ID is required")
	}

	gen := cfg.UUIDGenerator
	if gen == nil {
		gen = uuid.NewGoogleUUIDGenerator()
	}

	return &Holder{
		entityID:      cfg.EntityID,
		policy:        cfg.StackPolicy,
		eventBus:      cfg.EventBus,
		uuidGenerator: gen,
		logger:        slog.With("component", "conditions", "entity_id", cfg.EntityID),
	}
}

// Policy returns the stack policy of the holder
func (h *Holder) Policy() StackPolicy {
	return h.policy
}

// Add registers c after pruning conditions expired at now.
//
// The stack cap of an effect is the smallest MaximumStack among the new
// condition and the active conditions of the same effect. When that cap is
// reached the stack policy applies: StackReject leaves the holder untouched
// and returns false, StackEvictOldest removes the oldest same-effect
// conditions first.
// A condition that is already expired at now is never added.
func (h *Holder) Add(c Condition, now date.Date) (Entry, bool) {
	h.Prune(now)

	if !c.IsActive(now) {
		h.logger.Debug("rejected expired condition",
			"effect_id", c.EffectID(), "expires_at", c.ExpiresAt().String(), "now", now.String())
		h.emit(events.NewGameEvent(events.OnConditionRejected, h.entityID).
			WithContext(events.ContextEffectID, c.EffectID()).
			WithContext(events.ContextExpiresAt, c.ExpiresAt()).
			WithContext(events.ContextWorldDate, now))
		return Entry{}, false
	}

	count, limit := stackUsage(h.entries, c.EffectID(), c.MaximumStack())
	if count >= limit {
		if h.policy != StackEvictOldest {
			h.logger.Debug("stack cap reached, condition rejected",
				"effect_id", c.EffectID(), "active", count, "maximum_stack", limit)
			h.emit(events.NewGameEvent(events.OnConditionRejected, h.entityID).
				WithContext(events.ContextEffectID, c.EffectID()).
				WithContext(events.ContextActiveCount, count).
				WithContext(events.ContextMaximumStack, limit).
				WithContext(events.ContextWorldDate, now))
			return Entry{}, false
		}
		// evicting may drop the entry holding the smallest cap
		for count >= limit && count > 0 {
			h.evictOldest(c.EffectID(), now)
			count, limit = stackUsage(h.entries, c.EffectID(), c.MaximumStack())
		}
	}

	entry := Entry{ID: h.uuidGenerator.New(), Condition: c}
	h.entries = append(h.entries, entry)

	h.logger.Debug("condition applied",
		"condition_id", entry.ID,
		"effect_id", c.EffectID(),
		"description", c.Description(),
		"expires_at", c.ExpiresAt().String())
	h.emit(events.NewGameEvent(events.OnConditionApplied, h.entityID).
		WithContext(events.ContextConditionID, entry.ID).
		WithContext(events.ContextEffectID, c.EffectID()).
		WithContext(events.ContextDescription, c.Description()).
		WithContext(events.ContextExpiresAt, c.ExpiresAt()).
		WithContext(events.ContextWorldDate, now))

	return entry, true
}

// Prune removes every condition whose expiration is at or before now and
// returns the removed entries in insertion order
func (h *Holder) Prune(now date.Date) []Entry {
	var expired []Entry
	kept := h.entries[:0]
	for _, entry := range h.entries {
		if entry.Condition.IsActive(now) {
			kept = append(kept, entry)
			continue
		}
		expired = append(expired, entry)
	}
	clear(h.entries[len(kept):])
	h.entries = kept

	for _, entry := range expired {
		h.logger.Debug("condition expired",
			"condition_id", entry.ID, "effect_id", entry.Condition.EffectID(), "now", now.String())
		h.emit(events.NewGameEvent(events.OnConditionExpired, h.entityID).
			WithContext(events.ContextConditionID, entry.ID).
			WithContext(events.ContextEffectID, entry.Condition.EffectID()).
			WithContext(events.ContextExpiresAt, entry.Condition.ExpiresAt()).
			WithContext(events.ContextWorldDate, now))
	}

	return expired
}

// Entries prunes and returns a copy of the active entries
func (h *Holder) Entries(now date.Date) []Entry {
	h.Prune(now)

	entries := make([]Entry, len(h.entries))
	copy(entries, h.entries)
	return entries
}

// Active prunes and returns the active conditions in insertion order
func (h *Holder) Active(now date.Date) []Condition {
	h.Prune(now)

	active := make([]Condition, 0, len(h.entries))
	for _, entry := range h.entries {
		active = append(active, entry.Condition)
	}
	return active
}

// Count returns the number of active conditions derived from effectID
func (h *Holder) Count(effectID string, now date.Date) int {
	h.Prune(now)
	return h.countEffect(effectID)
}

// Len returns the number of stored conditions without pruning
func (h *Holder) Len() int {
	return len(h.entries)
}

// ModifyAttack folds every active condition over base in insertion order
func (h *Holder) ModifyAttack(base int, now date.Date) int {
	attack := base
	for _, c := range h.Active(now) {
		attack = c.ModifyAttack(attack)
	}
	return attack
}

// ModifyHitRate folds every active condition over base in insertion order
func (h *Holder) ModifyHitRate(base shared.Percentage, now date.Date) shared.Percentage {
	rate := base
	for _, c := range h.Active(now) {
		rate = c.ModifyHitRate(rate)
	}
	return rate
}

// Descriptions returns the description of every active condition
func (h *Holder) Descriptions(now date.Date) []string {
	active := h.Active(now)

	descriptions := make([]string, 0, len(active))
	for _, c := range active {
		descriptions = append(descriptions, c.Description())
	}
	return descriptions
}

// Snapshot serializes every stored entry, including ones that have not been
// pruned yet
func (h *Holder) Snapshot() []Data {
	data := make([]Data, 0, len(h.entries))
	for _, entry := range h.entries {
		data = append(data, ToData(entry))
	}
	return data
}

// Restore replaces the holder content with data. Nothing is replaced when
// any element is invalid or when an effect holds more conditions than its
// stack cap allows.
func (h *Holder) Restore(data []Data) error {
	restored := make([]Entry, 0, len(data))
	seen := make(map[string]bool, len(data))
	for i, d := range data {
		entry, err := FromData(d)
		if err != nil {
			return dngerr.Wrapf(err, "restore condition %d of entity %s", i, h.entityID)
		}
		if seen[entry.ID] {
			return dngerr.InvalidArgumentf("duplicate condition ID %q", entry.ID).
				WithMeta("entity_id", h.entityID)
		}
		seen[entry.ID] = true
		restored = append(restored, entry)
	}

	checked := make(map[string]bool)
	for _, entry := range restored {
		effectID := entry.Condition.EffectID()
		if checked[effectID] {
			continue
		}
		checked[effectID] = true

		count, limit := stackUsage(restored, effectID, UnboundedStack)
		if count > limit {
			return dngerr.InvalidArgumentf("%d conditions of %s exceed its stack cap of %d", count, effectID, limit).
				WithMeta("entity_id", h.entityID).
				WithMeta("effect_id", effectID)
		}
	}

	h.entries = restored
	h.logger.Debug("conditions restored", "count", len(restored))
	return nil
}

// stackUsage counts the entries derived from effectID and returns the
// smallest stack cap among them and maximumStack
func stackUsage(entries []Entry, effectID string, maximumStack int) (count, limit int) {
	limit = maximumStack
	for _, entry := range entries {
		if entry.Condition.EffectID() != effectID {
			continue
		}
		count++
		limit = min(limit, entry.Condition.MaximumStack())
	}
	return count, limit
}

func (h *Holder) countEffect(effectID string) int {
	count := 0
	for _, entry := range h.entries {
		if entry.Condition.EffectID() == effectID {
			count++
		}
	}
	return count
}

func (h *Holder) evictOldest(effectID string, now date.Date) {
	for i, entry := range h.entries {
		if entry.Condition.EffectID() != effectID {
			continue
		}
		h.entries = append(h.entries[:i], h.entries[i+1:]...)

		h.logger.Debug("condition evicted", "condition_id", entry.ID, "effect_id", effectID)
		h.emit(events.NewGameEvent(events.OnConditionEvicted, h.entityID).
			WithContext(events.ContextConditionID, entry.ID).
			WithContext(events.ContextEffectID, effectID).
			WithContext(events.ContextWorldDate, now))
		return
	}
}

func (h *Holder) emit(event *events.GameEvent) {
	if h.eventBus == nil {
		return
	}
	if err := h.eventBus.Emit(event); err != nil {
		h.logger.Warn("failed to emit condition event", "event", event.Type.String(), "error", err)
	}
}
