package idgen

import (
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSnowflakeGenerator_Next(t *testing.T) {
	g, err := NewSnowflakeGenerator()
	require.NoError(t, err)

	t.Run("단조 증가", func(t *testing.T) {
		prev := g.Next()
		for i := 0; i < 1000; i++ {
			next := g.Next()
			assert.Greater(t, next, prev, "새로 생성된 ID는 이전 ID보다 커야 함")
			prev = next
		}
	})

	t.Run("동시 호출 시 고유성 보장", func(t *testing.T) {
		const (
			goroutines  = 10
			perGoroutine = 500
		)

		var (
			mu  sync.Mutex
			ids = make(map[int64]struct{}, goroutines*perGoroutine)
			wg  sync.WaitGroup
		)

		for i := 0; i < goroutines; i++ {
			wg.Add(1)
			go func() {
				defer wg.Done()
				local := make([]int64, 0, perGoroutine)
				for j := 0; j < perGoroutine; j++ {
					local = append(local, g.Next())
				}

				mu.Lock()
				defer mu.Unlock()
				for _, id := range local {
					ids[id] = struct{}{}
				}
			}()
		}
		wg.Wait()

		assert.Len(t, ids, goroutines*perGoroutine, "모든 ID는 고유해야 함")
	})
}
