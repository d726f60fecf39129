package metrics

import (
	"sync/atomic"
	"time"

	"reversi/game"
)

type SearchMetric struct {
	Goroutines int
	Depth      int
	Duration   time.Duration
	Nodes      int // Positions visited, root included
	Leaves     int // Static evaluations
	Cutoffs    int // Alpha-beta cutoffs
	Value      int // Value of the chosen move
}

type MoveMetric struct {
	Step   int
	Player game.Color
	Move   game.Coord
	Passed bool // The opponent had to pass after this move
	SearchMetric
}

type GameMetric struct {
	Black      string // Agent name
	White      string // Agent name
	Outcome    game.Outcome
	BlackDiscs int
	WhiteDiscs int
	StartTime  time.Time
	EndTime    time.Time
	Duration   time.Duration
	TotalMoves int
}

type Collector interface {
	Start(goroutines, depth int)
	AddNode()
	AddLeaf()
	AddCutoff()
	Complete(value int) SearchMetric
}

type collector struct {
	goroutines int
	depth      int
	startTime  time.Time
	nodes      atomic.Int64
	leaves     atomic.Int64
	cutoffs    atomic.Int64
}

func NewCollector() Collector {
	return &collector{}
}

func (m *collector) Start(goroutines, depth int) {
	m.startTime = time.Now()
	m.goroutines = goroutines
	m.depth = depth
	m.nodes.Store(0)
	m.leaves.Store(0)
	m.cutoffs.Store(0)
}

func (m *collector) AddNode() {
	m.nodes.Add(1)
}

func (m *collector) AddLeaf() {
	m.leaves.Add(1)
}

func (m *collector) AddCutoff() {
	m.cutoffs.Add(1)
}

func (m *collector) Complete(value int) SearchMetric {
	return SearchMetric{
		Goroutines: m.goroutines,
		Depth:      m.depth,
		Duration:   time.Since(m.startTime),
		Nodes:      int(m.nodes.Load()),
		Leaves:     int(m.leaves.Load()),
		Cutoffs:    int(m.cutoffs.Load()),
		Value:      value,
	}
}

type dummyCollector struct{}

func NewDummyCollector() Collector {
	return &dummyCollector{}
}

func (m *dummyCollector) Start(goroutines, depth int)     {}
func (m *dummyCollector) AddNode()                        {}
func (m *dummyCollector) AddLeaf()                        {}
func (m *dummyCollector) AddCutoff()                      {}
func (m *dummyCollector) Complete(value int) SearchMetric { return SearchMetric{Value: value} }
