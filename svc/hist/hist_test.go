package hist

import (
	"context"
	"testing"
	"time"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"passmint/pkg/domain"
	"passmint/svc/gen"
)

type memStore struct {
	m      map[string]string
	getErr error
	setErr error
}

func newMemStore() *memStore {
	return &memStore{m: map[string]string{}}
}

func (s *memStore) Get(_ context.Context, key string) (string, bool, error) {
	if s.getErr != nil {
		return "", false, s.getErr
	}
	v, ok := s.m[key]
	return v, ok, nil
}

func (s *memStore) Set(_ context.Context, key, value string) error {
	if s.setErr != nil {
		return s.setErr
	}
	s.m[key] = value
	return nil
}

func (s *memStore) Close() error { return nil }

var fixedNow = time.Date(2026, 8, 24, 12, 0, 0, 0, time.UTC)

func newTestHistory(store *memStore) *History {
	h := New(store)
	h.now = func() time.Time { return fixedNow }
	return h
}

func entryAt(id, value string, created time.Time) domain.Entry {
	return domain.Entry{
		ID:        id,
		Value:     value,
		CreatedAt: created.Format(time.RFC3339Nano),
	}
}

func TestLoadAbsentKey(t *testing.T) {
	h := newTestHistory(newMemStore())
	assert.Empty(t, h.Load(context.Background()))
}

func TestLoadMalformedBlob(t *testing.T) {
	store := newMemStore()
	store.m[StorageKey] = "{not json"
	h := newTestHistory(store)
	assert.Empty(t, h.Load(context.Background()))
}

func TestLoadReadFailure(t *testing.T) {
	store := newMemStore()
	store.getErr = errors.New("disk on fire")
	h := newTestHistory(store)
	assert.Empty(t, h.Load(context.Background()))
}

func TestLoadDropsInvalidTimestamps(t *testing.T) {
	store := newMemStore()
	h := newTestHistory(store)
	entries := []domain.Entry{
		entryAt("a", "pw1", fixedNow.Add(-time.Hour)),
		{ID: "b", Value: "pw2", CreatedAt: "garbage"},
	}
	require.NoError(t, h.Persist(context.Background(), entries))

	got := h.Load(context.Background())
	require.Len(t, got, 1)
	assert.Equal(t, "a", got[0].ID)
}

func TestRoundTrip(t *testing.T) {
	store := newMemStore()
	h := newTestHistory(store)
	entries := []domain.Entry{
		entryAt("new", "pw-new", fixedNow.Add(-time.Minute)),
		entryAt("older", "pw-older", fixedNow.Add(-10*24*time.Hour)),
		entryAt("ancient", "pw-ancient", fixedNow.Add(-40*24*time.Hour)),
	}
	require.NoError(t, h.Persist(context.Background(), entries))

	got := h.Load(context.Background())
	require.Len(t, got, 2)
	assert.Equal(t, []string{"new", "older"}, []string{got[0].ID, got[1].ID})
	assert.Equal(t, "pw-new", got[0].Value)
}

func TestAppendPrunesAndSorts(t *testing.T) {
	h := newTestHistory(newMemStore())
	seed := []domain.Entry{
		entryAt("older", "pw-older", fixedNow.Add(-10*24*time.Hour)),
		entryAt("ancient", "pw-ancient", fixedNow.Add(-40*24*time.Hour)),
	}
	got, err := h.Append(seed, "pw-new")
	require.NoError(t, err)
	require.Len(t, got, 2)
	assert.Equal(t, "pw-new", got[0].Value)
	assert.Equal(t, "older", got[1].ID)
	assert.Equal(t, fixedNow.Format(time.RFC3339Nano), got[0].CreatedAt)
	assert.NotEmpty(t, got[0].ID)
}

func TestAppendIDsUnique(t *testing.T) {
	h := newTestHistory(newMemStore())
	entries, err := h.Append(nil, "one")
	require.NoError(t, err)
	entries, err = h.Append(entries, "two")
	require.NoError(t, err)
	// Same frozen clock for both, ids must still differ.
	require.Len(t, entries, 2)
	assert.NotEqual(t, entries[0].ID, entries[1].ID)
}

func TestPruneIdempotent(t *testing.T) {
	entries := []domain.Entry{
		entryAt("a", "pw1", fixedNow.Add(-time.Hour)),
		entryAt("b", "pw2", fixedNow.Add(-20*24*time.Hour)),
		entryAt("c", "pw3", fixedNow.Add(-45*24*time.Hour)),
	}
	once := prune(entries, fixedNow)
	twice := prune(once, fixedNow)
	assert.Equal(t, once, twice)
}

func TestSortNewestFirst(t *testing.T) {
	entries := []domain.Entry{
		entryAt("a", "pw1", fixedNow.Add(-3*time.Hour)),
		entryAt("b", "pw2", fixedNow.Add(-time.Hour)),
		entryAt("c", "pw3", fixedNow.Add(-2*time.Hour)),
	}
	got := prune(entries, fixedNow)
	require.Len(t, got, 3)
	assert.Equal(t, []string{"b", "c", "a"}, []string{got[0].ID, got[1].ID, got[2].ID})
}

func TestSortTieBreakDeterministic(t *testing.T) {
	same := fixedNow.Add(-time.Hour)
	a := []domain.Entry{entryAt("x", "pw1", same), entryAt("y", "pw2", same)}
	b := []domain.Entry{entryAt("y", "pw2", same), entryAt("x", "pw1", same)}
	assert.Equal(t, prune(a, fixedNow), prune(b, fixedNow))
}

func TestRemove(t *testing.T) {
	h := newTestHistory(newMemStore())
	entries := []domain.Entry{
		entryAt("a", "pw1", fixedNow.Add(-time.Hour)),
		entryAt("b", "pw2", fixedNow.Add(-2*time.Hour)),
	}

	got := h.Remove(entries, "a")
	require.Len(t, got, 1)
	assert.Equal(t, "b", got[0].ID)

	// Absent id is a no-op, not an error.
	assert.Equal(t, entries, h.Remove(entries, "nope"))
}

func TestPersistFailureSurfaces(t *testing.T) {
	store := newMemStore()
	store.setErr = errors.New("read-only filesystem")
	h := newTestHistory(store)
	err := h.Persist(context.Background(), nil)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "persist history")
}

func TestEndToEndUppercaseOnly(t *testing.T) {
	store := newMemStore()
	h := newTestHistory(store)
	ctx := context.Background()

	// Empty storage to start.
	require.Empty(t, h.Load(ctx))

	value, err := gen.Generate(domain.Options{Upper: true, Length: 8})
	require.NoError(t, err)
	require.Len(t, value, 8)
	for _, r := range value {
		require.True(t, r >= 'A' && r <= 'Z')
	}

	entries, err := h.Append(h.Load(ctx), value)
	require.NoError(t, err)
	require.NoError(t, h.Persist(ctx, entries))

	got := h.Load(ctx)
	require.Len(t, got, 1)
	assert.Equal(t, value, got[0].Value)
}
