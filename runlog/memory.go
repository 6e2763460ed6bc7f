package runlog

import (
	"context"
	"sync"
)

// Memory is an in-process Recorder.
type Memory struct {
	mu     sync.Mutex
	rounds []RoundSummary
	bests  []BestEvent
}

// NewMemory returns an empty Memory recorder.
func NewMemory() *Memory { return &Memory{} }

// RecordRound appends s.
func (m *Memory) RecordRound(_ context.Context, s RoundSummary) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.rounds = append(m.rounds, s)
	return nil
}

// RecordBest appends e.
func (m *Memory) RecordBest(_ context.Context, e BestEvent) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.bests = append(m.bests, e)
	return nil
}

// Rounds returns a copy of the recorded summaries.
func (m *Memory) Rounds() []RoundSummary {
	m.mu.Lock()
	defer m.mu.Unlock()
	return append([]RoundSummary(nil), m.rounds...)
}

// Bests returns a copy of the recorded events.
func (m *Memory) Bests() []BestEvent {
	m.mu.Lock()
	defer m.mu.Unlock()
	return append([]BestEvent(nil), m.bests...)
}
