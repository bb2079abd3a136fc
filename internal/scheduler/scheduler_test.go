package scheduler

import (
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func TestCountryPoolRunsAllJobs(t *testing.T) {
	var p CountryPool
	var mu sync.Mutex
	var ran int

	for i := 0; i < 8; i++ {
		p.Submit(func() {
			mu.Lock()
			ran++
			mu.Unlock()
		})
	}
	p.Wait()

	require.Equal(t, 8, ran)
}

func TestChunkPoolRespectsInFlightCap(t *testing.T) {
	p := NewChunkPool(2, 10)

	release := make(chan struct{})
	var running sync.WaitGroup
	var mu sync.Mutex
	maxSeen := 0
	cur := 0

	track := func() {
		mu.Lock()
		cur++
		if cur > maxSeen {
			maxSeen = cur
		}
		mu.Unlock()
		<-release
		mu.Lock()
		cur--
		mu.Unlock()
		running.Done()
	}

	for i := 0; i < 5; i++ {
		running.Add(1)
		p.Enqueue(ChunkJob{Priority: i, Run: track})
	}

	p.Submit()
	time.Sleep(20 * time.Millisecond)

	mu.Lock()
	seenAtCap := maxSeen
	mu.Unlock()
	require.LessOrEqual(t, seenAtCap, 2, "in-flight jobs exceeded Cap")

	close(release)
	running.Wait()
}

func TestChunkPoolDrainsAscendingByPriority(t *testing.T) {
	// Dispatched jobs run concurrently, so their execution order is not
	// defined; with PerTick = 1 each Submit dispatches exactly one job,
	// which makes the drain order observable.
	p := NewChunkPool(10, 1)

	ran := make(chan int)
	for _, prio := range []int{5, 1, 3, 2, 4} {
		prio := prio
		p.Enqueue(ChunkJob{Priority: prio, Run: func() {
			ran <- prio
		}})
	}

	var order []int
	for i := 0; i < 5; i++ {
		p.Submit()
		order = append(order, <-ran)
	}

	require.Equal(t, []int{1, 2, 3, 4, 5}, order)
}

func TestChunkPoolSubmitCapsPerTick(t *testing.T) {
	p := NewChunkPool(100, 2)

	release := make(chan struct{})
	var wg sync.WaitGroup
	for i := 0; i < 5; i++ {
		wg.Add(1)
		p.Enqueue(ChunkJob{Priority: i, Run: func() {
			<-release
			wg.Done()
		}})
	}

	p.Submit()
	time.Sleep(10 * time.Millisecond)
	require.Equal(t, 2, p.InFlight())
	require.Equal(t, 3, p.Pending())

	close(release)
	wg.Wait()
}
