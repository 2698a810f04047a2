package quickfn

import (
	"sync"
	"sync/atomic"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestThunkMemoizes(t *testing.T) {
	var calls atomic.Int32

	th := NewThunk(func() int {
		calls.Add(1)
		return 42
	})

	require.Equal(t, int32(0), calls.Load())
	require.Equal(t, 42, th.Force())
	require.Equal(t, 42, th.Force())
	require.Equal(t, int32(1), calls.Load())
}

func TestThunkConcurrentForce(t *testing.T) {
	var calls atomic.Int32

	th := NewThunk(func() int {
		calls.Add(1)
		return 7
	})

	var wg sync.WaitGroup
	for i := 0; i < 16; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			require.Equal(t, 7, th.Force())
		}()
	}
	wg.Wait()

	require.Equal(t, int32(1), calls.Load())
}

func TestThunkOf(t *testing.T) {
	require.Equal(t, 1, ThunkOf(1).Force())
}

func TestMapThunkIsLazy(t *testing.T) {
	var calls atomic.Int32

	th := NewThunk(func() int {
		calls.Add(1)
		return 20
	})
	mapped := MapThunk(func(i int) int { return i + 1 }, th)

	require.Equal(t, int32(0), calls.Load())
	require.Equal(t, 21, mapped.Force())
	require.Equal(t, int32(1), calls.Load())
}
