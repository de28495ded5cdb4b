package startup

import (
	"context"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"github.com/heorconnect/heor-connect/internal/model"

	"github.com/stretchr/testify/assert"
	"go.uber.org/goleak"
)

func TestMain(m *testing.M) {
	goleak.VerifyTestMain(m)
}

func TestNew_DefaultDelay(t *testing.T) {
	assert.Equal(t, model.DefaultStartupDelay, New(0).Delay())
	assert.Equal(t, model.DefaultStartupDelay, New(-time.Second).Delay())
	assert.Equal(t, 5*time.Millisecond, New(5*time.Millisecond).Delay())
}

func TestWait_Elapses(t *testing.T) {
	g := New(5 * time.Millisecond)
	assert.True(t, g.Wait(context.Background()))
	assert.False(t, g.Ready(), "Wait must not open the gate")
}

func TestWait_Canceled(t *testing.T) {
	g := New(time.Hour)
	ctx, cancel := context.WithCancel(context.Background())

	done := make(chan bool, 1)
	go func() { done <- g.Wait(ctx) }()
	cancel()

	select {
	case elapsed := <-done:
		assert.False(t, elapsed)
	case <-time.After(time.Second):
		t.Fatal("Wait did not return after cancel")
	}
	assert.False(t, g.Ready())
}

func TestFire_Once(t *testing.T) {
	g := New(time.Millisecond)
	assert.False(t, g.Ready())
	assert.True(t, g.Fire())
	assert.True(t, g.Ready())
	assert.False(t, g.Fire())
	assert.True(t, g.Ready())
}

func TestFire_ConcurrentOpensOnce(t *testing.T) {
	g := New(time.Millisecond)

	var wins atomic.Int32
	var wg sync.WaitGroup
	for range 32 {
		wg.Add(1)
		go func() {
			defer wg.Done()
			if g.Fire() {
				wins.Add(1)
			}
		}()
	}
	wg.Wait()

	assert.Equal(t, int32(1), wins.Load())
	assert.True(t, g.Ready())
}
