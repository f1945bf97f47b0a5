// v0
// internal/history/store.go

// Package history keeps the ordered record of assessments performed during a
// session. The store is in-memory only: growth is bounded by process lifetime
// and entries leave only through an explicit Clear.
package history

import (
	"sync"

	"github.com/Takshi07/heat-stress-awareness/internal/risk"
)

// Store is an append-only, insertion-ordered record of assessments.
// It is safe for concurrent use.
type Store struct {
	mu      sync.RWMutex
	records []risk.Assessment
}

// NewStore returns an empty history store.
func NewStore() *Store {
	return &Store{}
}

// Record appends an assessment to the end of the history. Existing entries
// are never mutated or removed.
func (s *Store) Record(a risk.Assessment) {
	s.mu.Lock()
	s.records = append(s.records, a)
	s.mu.Unlock()
}

// All returns the history oldest-first. The returned slice is a copy.
func (s *Store) All() []risk.Assessment {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]risk.Assessment, len(s.records))
	copy(out, s.records)
	return out
}

// FilterByTier returns the subsequence of assessments with the given tier,
// preserving relative order.
func (s *Store) FilterByTier(tier risk.Tier) []risk.Assessment {
	s.mu.RLock()
	defer s.mu.RUnlock()
	var out []risk.Assessment
	for _, a := range s.records {
		if a.Tier == tier {
			out = append(out, a)
		}
	}
	return out
}

// Len reports the number of recorded assessments.
func (s *Store) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.records)
}

// Clear empties the history. This is the only way entries are removed.
func (s *Store) Clear() {
	s.mu.Lock()
	s.records = nil
	s.mu.Unlock()
}

// Summary aggregates the session history the way the dashboard's tracking
// view reports it.
type Summary struct {
	Total     int     `json:"total"`
	High      int     `json:"high"`
	Moderate  int     `json:"moderate"`
	Low       int     `json:"low"`
	MeanScore float64 `json:"meanScore"`
}

// Summarize returns counts per tier and the mean score over the whole
// history. An empty history yields a zero Summary.
func (s *Store) Summarize() Summary {
	s.mu.RLock()
	defer s.mu.RUnlock()

	var sum Summary
	var scoreTotal int
	for _, a := range s.records {
		switch a.Tier {
		case risk.TierHigh:
			sum.High++
		case risk.TierModerate:
			sum.Moderate++
		case risk.TierLow:
			sum.Low++
		}
		scoreTotal += a.Score
	}
	sum.Total = len(s.records)
	if sum.Total > 0 {
		sum.MeanScore = float64(scoreTotal) / float64(sum.Total)
	}
	return sum
}
