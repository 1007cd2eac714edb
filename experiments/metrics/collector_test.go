package metrics

import (
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func TestCollectorCounts(t *testing.T) {
	c := NewCollector()
	c.Start(4, 1, true)

	for i := 0; i < 5; i++ {
		c.AddNode()
	}
	c.AddLeaf()
	c.AddLeaf()
	c.AddCutoff()
	c.SetDepth(3)

	require.Equal(t, 5, c.Nodes())

	metric := c.Complete()
	require.Equal(t, 4, metric.MaxDepth)
	require.Equal(t, 3, metric.Depth)
	require.Equal(t, 5, metric.Nodes)
	require.Equal(t, 2, metric.Leaves)
	require.Equal(t, 1, metric.Cutoffs)
	require.Equal(t, 1, metric.Goroutines)
	require.True(t, metric.Pruning)
	require.GreaterOrEqual(t, metric.Duration, time.Duration(0))
}

func TestCollectorStartResets(t *testing.T) {
	c := NewCollector()
	c.Start(2, 1, true)
	c.AddNode()
	c.AddLeaf()
	c.SetDepth(2)

	c.Start(3, 2, false)
	metric := c.Complete()
	require.Zero(t, metric.Nodes)
	require.Zero(t, metric.Leaves)
	require.Zero(t, metric.Depth)
	require.Equal(t, 3, metric.MaxDepth)
	require.Equal(t, 2, metric.Goroutines)
	require.False(t, metric.Pruning)
}

func TestCollectorConcurrent(t *testing.T) {
	c := NewCollector()
	c.Start(4, 8, true)

	var wg sync.WaitGroup
	for i := 0; i < 8; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for j := 0; j < 1000; j++ {
				c.AddNode()
			}
		}()
	}
	wg.Wait()

	require.Equal(t, 8000, c.Nodes())
}

func TestDummyCollector(t *testing.T) {
	c := NewDummyCollector()
	c.Start(4, 1, true)
	c.AddNode()
	c.AddLeaf()
	c.AddCutoff()

	require.Zero(t, c.Nodes())
	require.Equal(t, SearchMetric{}, c.Complete())
}
