package game

import "time"

// Phase identifies a timed section of the frame loop.
type Phase int

const (
	PhaseUpdate Phase = iota
	PhaseDraw
	numPhases
)

func (p Phase) String() string {
	switch p {
	case PhaseUpdate:
		return "update"
	case PhaseDraw:
		return "draw"
	}
	return "unknown"
}

// PhaseStats provides timing statistics for a single frame phase.
type PhaseStats struct {
	Name        string
	Count       int64
	MinDuration time.Duration
	MaxDuration time.Duration
	AvgDuration time.Duration
	LastDuration time.Duration
}

type phaseStatsInternal struct {
	count         int64
	minDuration   time.Duration
	maxDuration   time.Duration
	totalDuration time.Duration
	lastDuration  time.Duration
}

// FrameStats collects per-phase timing for the shell's frame loop. The
// debug overlay reads it through Snapshot.
type FrameStats struct {
	phases [numPhases]phaseStatsInternal
}

// NewFrameStats creates an empty collector.
func NewFrameStats() *FrameStats {
	s := &FrameStats{}
	for i := range s.phases {
		s.phases[i].minDuration = time.Duration(1<<63 - 1)
	}
	return s
}

// Observe records one phase execution.
func (s *FrameStats) Observe(phase Phase, duration time.Duration) {
	p := &s.phases[phase]
	p.count++
	p.lastDuration = duration
	p.totalDuration += duration

	if duration < p.minDuration {
		p.minDuration = duration
	}
	if duration > p.maxDuration {
		p.maxDuration = duration
	}
}

// Snapshot returns statistics for every phase, in phase order.
func (s *FrameStats) Snapshot() []PhaseStats {
	out := make([]PhaseStats, numPhases)
	for i := range s.phases {
		p := &s.phases[i]

		avg := time.Duration(0)
		min := p.minDuration
		if p.count > 0 {
			avg = p.totalDuration / time.Duration(p.count)
		} else {
			min = 0
		}

		out[i] = PhaseStats{
			Name:         Phase(i).String(),
			Count:        p.count,
			MinDuration:  min,
			MaxDuration:  p.maxDuration,
			AvgDuration:  avg,
			LastDuration: p.lastDuration,
		}
	}
	return out
}
