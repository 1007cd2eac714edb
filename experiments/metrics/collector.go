package metrics

import (
	"sync/atomic"
	"time"
)

// SearchMetric captures what a single top-level search did: how deep it got,
// how many nodes it touched, and how much alpha-beta pruning cut off.
type SearchMetric struct {
	MaxDepth   int
	Depth      int // deepest fully completed iteration
	Nodes      int
	Leaves     int
	Cutoffs    int
	Goroutines int
	Pruning    bool
	Duration   time.Duration
}

// MoveMetric ties a search metric to a move within a game.
type MoveMetric struct {
	Step int
	Role string
	Move string
	SearchMetric
}

// GameMetric summarizes one complete game.
type GameMetric struct {
	Outcome    string
	TotalMoves int
	StartTime  time.Time
	EndTime    time.Time
	Duration   time.Duration
}

// Collector accumulates search counters. Implementations must be safe for
// concurrent use: parallel root workers report into one shared collector.
type Collector interface {
	Start(maxDepth, goroutines int, pruning bool)
	AddNode()
	AddLeaf()
	AddCutoff()
	SetDepth(depth int)
	// Nodes returns the count so far, for node-budget checks.
	Nodes() int
	Complete() SearchMetric
}

type collector struct {
	maxDepth   int
	goroutines int
	pruning    bool
	startTime  time.Time
	depth      atomic.Int32
	nodes      atomic.Int64
	leaves     atomic.Int64
	cutoffs    atomic.Int64
}

func NewCollector() Collector {
	return &collector{}
}

func (c *collector) Start(maxDepth, goroutines int, pruning bool) {
	c.startTime = time.Now()
	c.maxDepth = maxDepth
	c.goroutines = goroutines
	c.pruning = pruning
	c.depth.Store(0)
	c.nodes.Store(0)
	c.leaves.Store(0)
	c.cutoffs.Store(0)
}

func (c *collector) AddNode() {
	c.nodes.Add(1)
}

func (c *collector) AddLeaf() {
	c.leaves.Add(1)
}

func (c *collector) AddCutoff() {
	c.cutoffs.Add(1)
}

func (c *collector) SetDepth(depth int) {
	c.depth.Store(int32(depth))
}

func (c *collector) Nodes() int {
	return int(c.nodes.Load())
}

func (c *collector) Complete() SearchMetric {
	return SearchMetric{
		MaxDepth:   c.maxDepth,
		Depth:      int(c.depth.Load()),
		Nodes:      int(c.nodes.Load()),
		Leaves:     int(c.leaves.Load()),
		Cutoffs:    int(c.cutoffs.Load()),
		Goroutines: c.goroutines,
		Pruning:    c.pruning,
		Duration:   time.Since(c.startTime),
	}
}

type dummyCollector struct{}

// NewDummyCollector returns a no-op collector for searches that do not
// report metrics.
func NewDummyCollector() Collector {
	return &dummyCollector{}
}

func (m *dummyCollector) Start(maxDepth, goroutines int, pruning bool) {}
func (m *dummyCollector) AddNode()                                     {}
func (m *dummyCollector) AddLeaf()                                     {}
func (m *dummyCollector) AddCutoff()                                   {}
func (m *dummyCollector) SetDepth(depth int)                           {}
func (m *dummyCollector) Nodes() int                                   { return 0 }
func (m *dummyCollector) Complete() SearchMetric                       { return SearchMetric{} }
