// interfaces/websocket/hub_test.go
package websocket

import (
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestLivenessWindow(t *testing.T) {
	c := &Client{}
	c.markAlive()

	// A client that just pinged survives the sweep, and the sweep arms the
	// next window by clearing the flag.
	assert.False(t, c.expireLiveness(90*time.Second))

	// No ping since: stale only once the grace window has also elapsed.
	assert.False(t, c.expireLiveness(90*time.Second))
	assert.True(t, c.expireLiveness(0))

	// A ping at any point resets the window.
	c.markAlive()
	assert.False(t, c.expireLiveness(0))
}

func TestLivenessUpdatesAreSafeUnderConcurrentSweep(t *testing.T) {
	c := &Client{}
	c.markAlive()

	// Pings from the connection goroutine race the hub's sweep; both paths
	// go through the client mutex.
	var wg sync.WaitGroup
	for i := 0; i < 4; i++ {
		wg.Add(2)
		go func() {
			defer wg.Done()
			for j := 0; j < 500; j++ {
				c.markAlive()
			}
		}()
		go func() {
			defer wg.Done()
			for j := 0; j < 500; j++ {
				c.expireLiveness(90 * time.Second)
			}
		}()
	}
	wg.Wait()

	c.markAlive()
	assert.False(t, c.expireLiveness(90*time.Second))
}
