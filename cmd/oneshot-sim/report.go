package main

import (
	"io"
	"runtime"
	"text/template"
	"time"

	"github.com/plus3/oneshot/engine"
	"github.com/plus3/oneshot/sim"
)

type Report struct {
	// Configuration
	Frames         int
	Seed           uint64
	Dt             time.Duration
	GCPauseMetrics bool

	// Results
	Results       []*sim.Result
	Systems       []engine.SystemStats
	TotalFrames   int64
	TotalTime     time.Duration
	Clears        int
	Fails         int
	MemStatsStart runtime.MemStats
	MemStatsEnd   runtime.MemStats
}

// Finalize totals the runs and merges per-system timings across them.
func (r *Report) Finalize() {
	r.TotalFrames, r.Clears, r.Fails = 0, 0, 0
	r.Systems = nil

	for _, res := range r.Results {
		r.TotalFrames += res.Frames
		r.Clears += res.Clears
		r.Fails += res.Fails

		for i, s := range res.Systems {
			if i == len(r.Systems) {
				r.Systems = append(r.Systems, engine.SystemStats{Name: s.Name, MinDuration: s.MinDuration})
			}
			merged := &r.Systems[i]
			merged.ExecutionCount += s.ExecutionCount
			merged.TotalDuration += s.TotalDuration
			merged.MinDuration = min(merged.MinDuration, s.MinDuration)
			merged.MaxDuration = max(merged.MaxDuration, s.MaxDuration)
		}
	}

	for i := range r.Systems {
		if n := r.Systems[i].ExecutionCount; n > 0 {
			r.Systems[i].AvgDuration = r.Systems[i].TotalDuration / time.Duration(n)
		}
	}
}

func (r *Report) Generate(w io.Writer) error {
	const reportTemplate = `
# Simulation Report

## Configuration
- **Runs:** {{len .Results}}
- **Frames per Run:** {{.Frames}}
- **Frame Step:** {{.Dt}}
- **First Seed:** {{.Seed}}

## Outcomes
- **Total Frames:** {{.TotalFrames}}
- **Total Time:** {{.TotalTime}}
- **Levels Cleared:** {{.Clears}}
- **Levels Failed:** {{.Fails}}

| Run | Seed | Screen | Level | Clears | Fails | Kills | Gold | Ammo |
|-----|------|--------|-------|--------|-------|-------|------|------|
{{- range .Results}}
| {{short .ID}} | {{.Seed}} | {{.Summary.Screen}} | {{.Summary.Level}} | {{.Clears}} | {{.Fails}} | {{.Summary.Kills}} | {{.Summary.Gold}} | {{.Summary.Ammo}} |
{{- end}}

## Pools
{{- range .Results}}
### Run {{short .ID}}
| Pool | Capacity | High Water | Acquires | Drops |
|------|----------|------------|----------|-------|
{{- range .Pools}}
| {{.Name}} | {{.Capacity}} | {{.HighWater}} | {{.Acquires}} | {{.Drops}} |
{{- end}}
{{end}}
## System Timings
| System | Executions | Avg | Min | Max |
|--------|------------|-----|-----|-----|
{{- range .Systems}}
| {{.Name}} | {{.ExecutionCount}} | {{.AvgDuration}} | {{.MinDuration}} | {{.MaxDuration}} |
{{- end}}

## Memory Usage (Raw Bytes)
- Heap Alloc:     {{.MemStatsStart.HeapAlloc}} (start) -> {{.MemStatsEnd.HeapAlloc}} (end) -> delta: {{bsub .MemStatsEnd.HeapAlloc .MemStatsStart.HeapAlloc}}
- Total Alloc:    {{.MemStatsStart.TotalAlloc}} (start) -> {{.MemStatsEnd.TotalAlloc}} (end) -> delta: {{bsub .MemStatsEnd.TotalAlloc .MemStatsStart.TotalAlloc}}
- Num GC:         {{.MemStatsStart.NumGC}} (start) -> {{.MemStatsEnd.NumGC}} (end) -> delta: {{usub .MemStatsEnd.NumGC .MemStatsStart.NumGC}}
{{if .GCPauseMetrics}}
## GC Pause Durations
- **Total GC Pause:** {{.MemStatsEnd.PauseTotalNs | ns}}
- **Num GC Cycles:** {{usub .MemStatsEnd.NumGC .MemStatsStart.NumGC}}
{{end}}`

	fm := template.FuncMap{
		"bsub": func(a, b uint64) int64 {
			return int64(a) - int64(b)
		},
		"usub": func(a, b uint32) uint32 {
			return a - b
		},
		"ns": func(ns uint64) string {
			return time.Duration(ns).String()
		},
		"short": func(id interface{ String() string }) string {
			return id.String()[:8]
		},
	}

	tmpl, err := template.New("report").Funcs(fm).Parse(reportTemplate)
	if err != nil {
		return err
	}

	return tmpl.Execute(w, r)
}
