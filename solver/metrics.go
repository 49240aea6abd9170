package solver

import (
	"sync/atomic"
	"time"
)

// SearchMetric summarizes the work done since the collector was started.
type SearchMetric struct {
	Duration   time.Duration
	Expansions int // Distinct recursive expansions (cache misses)
	CacheHits  int
}

type Collector interface {
	Start()
	AddExpansion()
	AddCacheHit()
	Complete() SearchMetric
}

type collector struct {
	startTime  time.Time
	expansions atomic.Int64
	cacheHits  atomic.Int64
}

func NewCollector() Collector {
	return &collector{}
}

func (c *collector) Start() {
	c.startTime = time.Now()
}

func (c *collector) AddExpansion() {
	c.expansions.Add(1)
}

func (c *collector) AddCacheHit() {
	c.cacheHits.Add(1)
}

func (c *collector) Complete() SearchMetric {
	return SearchMetric{
		Duration:   time.Since(c.startTime),
		Expansions: int(c.expansions.Load()),
		CacheHits:  int(c.cacheHits.Load()),
	}
}

type dummyCollector struct{}

func NewDummyCollector() Collector {
	return &dummyCollector{}
}

func (dummyCollector) Start()                 {}
func (dummyCollector) AddExpansion()          {}
func (dummyCollector) AddCacheHit()           {}
func (dummyCollector) Complete() SearchMetric { return SearchMetric{} }
