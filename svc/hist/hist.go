package hist

import (
	"context"
	"encoding/json"
	"sort"
	"time"

	"github.com/pkg/errors"

	"passmint/pkg/domain"
	"passmint/svc/db"
	"passmint/svc/util"
)

// StorageKey is the single fixed key under which the whole history
// collection is persisted. Writes always overwrite the full collection.
const StorageKey = "history"

// History implements the prune-and-sort bookkeeping over the persisted
// entry collection. The in-memory slice is owned by the caller (the UI
// loop); History never retains it between operations.
type History struct {
	store db.Store
	now   func() time.Time
}

func New(store db.Store) *History {
	return &History{store: store, now: time.Now}
}

// Load reads the persisted collection. A missing key or a malformed blob
// reads as empty history; both are swallowed deliberately and noted only
// at debug level. Expired entries are pruned and the survivors returned
// newest-first.
func (h *History) Load(ctx context.Context) []domain.Entry {
	raw, ok, err := h.store.Get(ctx, StorageKey)
	if err != nil {
		util.Debug().Err(err).Msg("history read failed, starting empty")
		return nil
	}
	if !ok {
		return nil
	}
	var entries []domain.Entry
	if err := json.Unmarshal([]byte(raw), &entries); err != nil {
		util.Debug().Err(err).Msg("history blob malformed, starting empty")
		return nil
	}
	return prune(entries, h.now())
}

// Append creates a new entry for value and returns the collection with it
// included, pruned and sorted. Persisting the result is the caller's
// explicit next step.
func (h *History) Append(entries []domain.Entry, value string) ([]domain.Entry, error) {
	now := h.now()
	id, err := util.NewEntryID(now)
	if err != nil {
		util.Error().Err(err).Msg("entry id generation failed")
		return entries, domain.ErrIDGenerationFailed
	}
	entry := domain.Entry{
		ID:        id,
		Value:     value,
		CreatedAt: now.Format(time.RFC3339Nano),
	}
	next := append([]domain.Entry{entry}, entries...)
	return prune(next, now), nil
}

// Remove excludes the entry with the given id. An absent id is a no-op,
// not an error.
func (h *History) Remove(entries []domain.Entry, id string) []domain.Entry {
	out := make([]domain.Entry, 0, len(entries))
	for _, e := range entries {
		if e.ID != id {
			out = append(out, e)
		}
	}
	return out
}

// Persist overwrites the stored collection with entries. Single attempt,
// no retry; the failure is the caller's to report.
func (h *History) Persist(ctx context.Context, entries []domain.Entry) error {
	if entries == nil {
		entries = []domain.Entry{}
	}
	raw, err := json.Marshal(entries)
	if err != nil {
		return errors.Wrap(err, "marshal history")
	}
	if err := h.store.Set(ctx, StorageKey, string(raw)); err != nil {
		return errors.Wrap(err, "persist history")
	}
	return nil
}

// prune drops expired entries and orders the survivors newest-first.
// Identical timestamps fall back to id order so repeated runs agree.
func prune(entries []domain.Entry, now time.Time) []domain.Entry {
	kept := make([]domain.Entry, 0, len(entries))
	for _, e := range entries {
		if !e.Expired(now) {
			kept = append(kept, e)
		}
	}
	sort.SliceStable(kept, func(i, j int) bool {
		ti, _ := kept[i].Created()
		tj, _ := kept[j].Created()
		if ti.Equal(tj) {
			return kept[i].ID > kept[j].ID
		}
		return ti.After(tj)
	})
	return kept
}
