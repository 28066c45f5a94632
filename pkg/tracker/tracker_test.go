package tracker

import (
	"sync"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type postType struct {
	Base
	Label string
}

func TestNewBase(t *testing.T) {
	b := NewBase("metabox")
	assert.Equal(t, "metabox", b.TrackableType())
	_, err := uuid.Parse(b.TrackableID())
	assert.NoError(t, err)
	assert.NotEqual(t, b.TrackableID(), NewBase("metabox").TrackableID())
}

func TestTracker_TrackAndGet(t *testing.T) {
	tr := New()
	books := &postType{Base: NewBaseWithID("post_type", "book"), Label: "Books"}
	movies := &postType{Base: NewBaseWithID("post_type", "movie"), Label: "Movies"}

	require.NoError(t, tr.Track(books))
	require.NoError(t, tr.Track(movies))

	got, err := tr.Get("post_type", "book")
	require.NoError(t, err)
	assert.Same(t, books, got)

	got, err = tr.Get("post_type", "missing")
	require.NoError(t, err)
	assert.Nil(t, got)

	got, err = tr.Get("taxonomy", "book")
	require.NoError(t, err)
	assert.Nil(t, got)

	assert.Equal(t, 2, tr.Count("post_type"))
	assert.Equal(t, 0, tr.Count("taxonomy"))
	assert.Equal(t, []string{"post_type"}, tr.Types())
}

func TestTracker_DottedIDsAreFlat(t *testing.T) {
	tr := New()
	obj := &postType{Base: NewBaseWithID("option.page", "settings.general")}
	require.NoError(t, tr.Track(obj))

	got, err := tr.Get("option.page", "settings.general")
	require.NoError(t, err)
	assert.Same(t, obj, got)
}

func TestTracker_InvalidArguments(t *testing.T) {
	tr := New()

	tests := []struct {
		name string
		obj  Trackable
	}{
		{name: "nil object", obj: nil},
		{name: "empty type", obj: NewBaseWithID("", "id")},
		{name: "empty id", obj: NewBaseWithID("type", "")},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.ErrorIs(t, tr.Track(tt.obj), ErrInvalidArgument)
		})
	}

	_, err := tr.Get("", "id")
	assert.ErrorIs(t, err, ErrInvalidArgument)
	_, err = tr.Get("type", "")
	assert.ErrorIs(t, err, ErrInvalidArgument)
	assert.Empty(t, tr.Types())
}

func TestTracker_Untrack(t *testing.T) {
	tr := New()
	obj := NewBaseWithID("widget", "w1")
	require.NoError(t, tr.Track(obj))

	tr.Untrack("widget", "w1")
	tr.Untrack("unknown", "w1")

	got, err := tr.Get("widget", "w1")
	require.NoError(t, err)
	assert.Nil(t, got)
}

func TestTracker_Concurrent(t *testing.T) {
	tr := New()
	var wg sync.WaitGroup
	for i := 0; i < 32; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			_ = tr.Track(NewBase("concurrent"))
		}()
	}
	wg.Wait()
	assert.Equal(t, 32, tr.Count("concurrent"))
}
