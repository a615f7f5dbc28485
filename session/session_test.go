package session

import (
	"sort"
	"sync"
	"testing"

	"github.com/jsphweid/fretdex/interval"
	"github.com/jsphweid/fretdex/model"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTapUpdatesOnlyItsSession(t *testing.T) {
	store := NewStore()
	one, err := store.Create(model.ViewInterval)
	require.NoError(t, err)
	two, err := store.Create(model.ViewInterval)
	require.NoError(t, err)
	assert.NotEqual(t, one.Id, two.Id)

	_, err = store.Tap(one.Id, 60)
	require.NoError(t, err)
	got, err := store.Tap(one.Id, 64)
	require.NoError(t, err)
	assert.Equal(t, []model.Interval{0, 4}, got.Selection.Intervals)

	other, err := store.Get(two.Id)
	require.NoError(t, err)
	assert.True(t, other.Selection.IsEmpty())
}

func TestLeavingIntervalModeResets(t *testing.T) {
	store := NewStore()
	sess, _ := store.Create(model.ViewInterval)
	store.Tap(sess.Id, 60)

	got, err := store.SetMode(sess.Id, model.ViewChord)
	require.NoError(t, err)
	assert.True(t, got.Selection.IsEmpty())
	assert.Equal(t, model.ViewChord, got.Mode)

	_, err = store.Tap(sess.Id, 60)
	assert.True(t, errors.Is(err, ErrWrongMode))

	got, err = store.SetMode(sess.Id, model.ViewInterval)
	require.NoError(t, err)
	assert.True(t, got.Selection.IsEmpty())
}

func TestStayingInIntervalModeKeepsSelection(t *testing.T) {
	store := NewStore()
	sess, _ := store.Create(model.ViewInterval)
	store.Tap(sess.Id, 60)

	got, err := store.SetMode(sess.Id, model.ViewInterval)
	require.NoError(t, err)
	assert.Equal(t, []model.Interval{0}, got.Selection.Intervals)
}

func TestUnknownSessionAndMode(t *testing.T) {
	store := NewStore()
	_, err := store.Get("missing")
	assert.True(t, errors.Is(err, ErrNotFound))
	_, err = store.Tap("missing", 60)
	assert.True(t, errors.Is(err, ErrNotFound))
	assert.True(t, errors.Is(store.Delete("missing"), ErrNotFound))

	_, err = store.Create("fretless")
	assert.Error(t, err)
}

func TestResetAndDelete(t *testing.T) {
	store := NewStore()
	sess, _ := store.Create(model.ViewInterval)
	store.Tap(sess.Id, 60)

	got, err := store.Reset(sess.Id)
	require.NoError(t, err)
	assert.True(t, got.Selection.IsEmpty())

	require.NoError(t, store.Delete(sess.Id))
	assert.Empty(t, store.List())
}

func TestListIsSortedById(t *testing.T) {
	store := NewStore()
	assert.Empty(t, store.List())

	var ids []string
	for i := 0; i < 5; i++ {
		sess, err := store.Create(model.ViewInterval)
		require.NoError(t, err)
		ids = append(ids, sess.Id)
	}
	store.Tap(ids[2], 60)

	listed := store.List()
	require.Len(t, listed, 5)
	got := make([]string, 0, len(listed))
	for _, sess := range listed {
		got = append(got, sess.Id)
		if sess.Id == ids[2] {
			assert.Equal(t, []model.Interval{0}, sess.Selection.Intervals)
		}
	}
	sort.Strings(ids)
	assert.Equal(t, ids, got)
}

func TestConcurrentTapsOnSeparateSessions(t *testing.T) {
	store := NewStore()
	var ids []string
	for i := 0; i < 8; i++ {
		sess, _ := store.Create(model.ViewInterval)
		ids = append(ids, sess.Id)
	}

	var wg sync.WaitGroup
	for _, id := range ids {
		wg.Add(1)
		go func(id string) {
			defer wg.Done()
			for _, p := range []model.Pitch{60, 64, 67, 57} {
				store.Tap(id, p)
			}
		}(id)
	}
	wg.Wait()

	want := interval.ApplyTaps(model.Selection{}, 60, 64, 67, 57)
	for _, id := range ids {
		sess, err := store.Get(id)
		require.NoError(t, err)
		assert.Equal(t, want, sess.Selection)
	}
}
