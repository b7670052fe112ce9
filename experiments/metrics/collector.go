package metrics

import (
	"time"
)

type SearchMetric struct {
	Duration     time.Duration
	Episodes     int
	FullPlayouts int
	Verdict      string
	Depth        int
}

type MoveMetric struct {
	Step   int
	Player string
	Move   string
	SearchMetric
}

type GameMetric struct {
	ID             string // uuid
	Size           int
	Blocks         int
	StartingPlayer string
	Winner         string // "" for a draw
	StartTime      time.Time
	EndTime        time.Time
	Duration       time.Duration
	TotalMoves     int
}

// Collector records one search call at a time. Searches are single threaded.
type Collector interface {
	Start()
	AddEpisode()
	AddFullPlayout()
	Complete() SearchMetric
}

type collector struct {
	startTime    time.Time
	episodes     int
	fullPlayouts int
}

func NewCollector() Collector {
	return &collector{}
}

func (m *collector) Start() {
	m.startTime = time.Now()
	m.episodes = 0
	m.fullPlayouts = 0
}

func (m *collector) AddEpisode() {
	m.episodes++
}

func (m *collector) AddFullPlayout() {
	m.fullPlayouts++
}

func (m *collector) Complete() SearchMetric {
	return SearchMetric{
		Duration:     time.Since(m.startTime),
		Episodes:     m.episodes,
		FullPlayouts: m.fullPlayouts,
	}
}

type dummyCollector struct{}

func NewDummyCollector() Collector {
	return &dummyCollector{}
}

func (m *dummyCollector) Start()                 {}
func (m *dummyCollector) AddEpisode()            {}
func (m *dummyCollector) AddFullPlayout()        {}
func (m *dummyCollector) Complete() SearchMetric { return SearchMetric{} }
