//go:build unit

package asserttest

import (
	"context"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	tgassert "github.com/LerianStudio/lib-typeguard/typeguard/assert"
	"github.com/LerianStudio/lib-typeguard/typeguard/log"
	"github.com/LerianStudio/lib-typeguard/typeguard/token"
)

func TestRecorder_Empty(t *testing.T) {
	t.Parallel()

	recorder := NewRecorder()

	_, ok := recorder.Last()
	assert.False(t, ok)
	assert.Equal(t, token.Unknown, recorder.LastToken())
	assert.Zero(t, recorder.Count())
}

func TestRecorder_RecordsSuccesses(t *testing.T) {
	t.Parallel()

	recorder := NewRecorder()
	asserter := tgassert.New(context.Background(), log.Discard, "test", "recorder", recorder.Options()...)

	_, err := asserter.Type(context.Background(), []int{1, 2, 3}, token.Array, "")
	require.NoError(t, err)
	assert.Equal(t, token.Array, recorder.LastToken())

	require.NoError(t, asserter.Relation(context.Background(), 1, token.Less, 2, ""))

	last, ok := recorder.Last()
	require.True(t, ok)
	assert.Equal(t, tgassert.Observation{Assertion: "Relation", Operator: token.Less}, last)

	_, err = asserter.Type(context.Background(), "x", token.Number, "")
	require.Error(t, err)
	assert.Equal(t, int64(2), recorder.Count())

	recorder.Reset()
	assert.Zero(t, recorder.Count())
	assert.Equal(t, token.Unknown, recorder.LastToken())
}

func TestRecorder_ConcurrentLastWriteWins(t *testing.T) {
	t.Parallel()

	recorder := NewRecorder()
	asserter := tgassert.New(context.Background(), log.Discard, "test", "recorder", recorder.Options()...)

	values := []any{1, "s", true, []int{}}

	var wg sync.WaitGroup

	for _, value := range values {
		wg.Add(1)

		go func() {
			defer wg.Done()

			_, err := asserter.Type(context.Background(), value, token.Classify(value), "")
			assert.NoError(t, err)
		}()
	}

	wg.Wait()

	assert.Equal(t, int64(len(values)), recorder.Count())
	assert.Contains(t, []token.Token{token.Number, token.String, token.Boolean, token.Array}, recorder.LastToken())
}
