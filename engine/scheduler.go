package engine

import (
	"context"
	"reflect"
	"time"
)

// Stats provides statistics about scheduler execution.
type Stats struct {
	SystemCount int
	Frames      int64
	Systems     []SystemStats
}

// SystemStats provides execution statistics for a single system.
type SystemStats struct {
	Name           string
	ExecutionCount int64
	MinDuration    time.Duration
	MaxDuration    time.Duration
	AvgDuration    time.Duration
	LastDuration   time.Duration
	TotalDuration  time.Duration
}

type systemStatsInternal struct {
	name           string
	executionCount int64
	minDuration    time.Duration
	maxDuration    time.Duration
	totalDuration  time.Duration
	lastDuration   time.Duration
}

// Named can be implemented by a system to override the name reported in stats.
type Named interface {
	Name() string
}

// Scheduler executes registered systems in order against a single world.
type Scheduler[W any] struct {
	world       W
	commands    *Commands
	systems     []System[W]
	systemStats []*systemStatsInternal
	frames      int64

	// MaxDelta caps the delta passed to systems by Run. A stalled process
	// (debugger, suspended terminal) would otherwise hand the simulation one
	// huge step. Zero disables the cap.
	MaxDelta float64
}

// NewScheduler creates a scheduler bound to world.
func NewScheduler[W any](world W) *Scheduler[W] {
	return &Scheduler[W]{
		world:    world,
		commands: newCommands(),
		systems:  make([]System[W], 0),
	}
}

// World returns the world the scheduler drives.
func (s *Scheduler[W]) World() W {
	return s.world
}

// Register appends a system to the execution order.
func (s *Scheduler[W]) Register(system System[W]) {
	s.systems = append(s.systems, system)
	s.systemStats = append(s.systemStats, &systemStatsInternal{
		name:        systemName(system),
		minDuration: time.Duration(1<<63 - 1),
	})
}

func systemName(system any) string {
	if n, ok := system.(Named); ok {
		return n.Name()
	}

	systemType := reflect.TypeOf(system)
	if systemType.Kind() == reflect.Ptr {
		systemType = systemType.Elem()
	}
	return systemType.Name()
}

// Once executes all registered systems once with the given delta time, then
// flushes any deferred commands.
func (s *Scheduler[W]) Once(dt float64) {
	frame := newFrame(dt, s.world, s.commands)

	for i, system := range s.systems {
		start := time.Now()
		system.Execute(frame)
		duration := time.Since(start)

		stats := s.systemStats[i]
		stats.executionCount++
		stats.lastDuration = duration
		stats.totalDuration += duration

		if duration < stats.minDuration {
			stats.minDuration = duration
		}
		if duration > stats.maxDuration {
			stats.maxDuration = duration
		}
	}

	s.commands.Flush()
	s.frames++
}

// Run executes all systems repeatedly at the given interval until the context
// is cancelled.
func (s *Scheduler[W]) Run(ctx context.Context, interval time.Duration) {
	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	lastTime := time.Now()

	for {
		select {
		case <-ctx.Done():
			return
		case now := <-ticker.C:
			dt := now.Sub(lastTime).Seconds()
			lastTime = now
			if s.MaxDelta > 0 && dt > s.MaxDelta {
				dt = s.MaxDelta
			}
			s.Once(dt)
		}
	}
}

// Stats returns statistics about system execution.
func (s *Scheduler[W]) Stats() *Stats {
	stats := &Stats{
		SystemCount: len(s.systems),
		Frames:      s.frames,
		Systems:     make([]SystemStats, len(s.systemStats)),
	}

	for i, internal := range s.systemStats {
		avgDuration := time.Duration(0)
		minDuration := time.Duration(0)
		if internal.executionCount > 0 {
			avgDuration = internal.totalDuration / time.Duration(internal.executionCount)
			minDuration = internal.minDuration
		}

		stats.Systems[i] = SystemStats{
			Name:           internal.name,
			ExecutionCount: internal.executionCount,
			MinDuration:    minDuration,
			MaxDuration:    internal.maxDuration,
			AvgDuration:    avgDuration,
			LastDuration:   internal.lastDuration,
			TotalDuration:  internal.totalDuration,
		}
	}

	return stats
}
