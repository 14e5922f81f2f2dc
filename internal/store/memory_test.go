package store

import (
	"context"
	"errors"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/robalobadob/make10/internal/board"
	"github.com/robalobadob/make10/internal/game"
)

func TestSaveGet(t *testing.T) {
	ctx := context.Background()
	st := NewMemoryStore()
	g := game.New(board.NewSequence(5))

	require.NoError(t, st.Save(ctx, g))
	got, err := st.Get(ctx, g.ID)
	require.NoError(t, err)
	assert.Same(t, g, got)
	assert.Equal(t, 1, st.Len())

	_, err = st.Get(ctx, "missing")
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestUpdate(t *testing.T) {
	ctx := context.Background()
	st := NewMemoryStore()
	g := game.New(board.NewSequence(1, 2, 3, 4))
	require.NoError(t, st.Save(ctx, g))

	err := st.Update(ctx, g.ID, func(g *game.Game) error {
		_, err := g.Submit("1+2+3+4")
		return err
	})
	require.NoError(t, err)
	assert.Equal(t, 1, g.Score)

	boom := errors.New("boom")
	err = st.Update(ctx, g.ID, func(*game.Game) error { return boom })
	assert.ErrorIs(t, err, boom)

	err = st.Update(ctx, "missing", func(*game.Game) error { return nil })
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestCanceledContext(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	st := NewMemoryStore()
	assert.ErrorIs(t, st.Save(ctx, game.New(nil)), context.Canceled)
	_, err := st.Get(ctx, "x")
	assert.ErrorIs(t, err, context.Canceled)
	assert.Equal(t, 0, st.Len())
}

func TestUpdateSerializes(t *testing.T) {
	ctx := context.Background()
	st := NewMemoryStore()
	g := game.New(nil)
	require.NoError(t, st.Save(ctx, g))

	var wg sync.WaitGroup
	for i := 0; i < 50; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			_ = st.Update(ctx, g.ID, func(g *game.Game) error {
				_, err := g.Submit("(9+1)*(2+8)")
				return err
			})
		}()
	}
	wg.Wait()
	assert.Equal(t, 50, g.Snapshot().Submissions)
}
