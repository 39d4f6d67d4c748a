package main

import (
	"flag"
	"fmt"

	"github.com/google/uuid"

	"github.com/Garsondee/Shooter-Mode/internal/game"
)

type runStats struct {
	runIndex int
	seed     int64
	frames   int

	firstHitFrame   int
	firstResetFrame int

	shots      int
	hits       int
	wallExits  int
	evictions  int
	resets     int
	peakScore  int
	finalScore int
}

type aggregateStats struct {
	runs         int
	shots        int
	hits         int
	wallExits    int
	evictions    int
	resets       int
	bestPeak     int
	meanPeak     float64
	meanFirstHit float64 // mean first-hit frame over runs that hit at all
	hitless      int
}

func main() {
	var runs int
	var frames int
	var seedBase int64
	var seedStep int64
	var dt float64

	flag.IntVar(&runs, "runs", 5, "number of headless simulation runs")
	flag.IntVar(&frames, "frames", 3600, "frames per run")
	flag.Int64Var(&seedBase, "seed-base", 42, "base RNG seed for run 1")
	flag.Int64Var(&seedStep, "seed-step", 1, "seed increment between runs")
	flag.Float64Var(&dt, "dt", 1.0/60, "seconds per frame")
	flag.Parse()

	if runs <= 0 {
		fmt.Println("error: -runs must be > 0")
		return
	}
	if frames <= 0 {
		fmt.Println("error: -frames must be > 0")
		return
	}
	if dt < 0 {
		fmt.Println("error: -dt must be >= 0")
		return
	}

	fmt.Printf("=== Headless Shooter Report ===\n")
	fmt.Printf("report=%s runs=%d frames=%d dt=%.4f seed_base=%d seed_step=%d\n\n",
		uuid.NewString(), runs, frames, dt, seedBase, seedStep)

	all := make([]runStats, 0, runs)
	for i := 0; i < runs; i++ {
		seed := seedBase + int64(i)*seedStep
		stats := runAutopilot(i+1, seed, frames, dt)
		all = append(all, stats)
		printRun(stats)
	}

	printAggregate(aggregate(all))
}

func runAutopilot(runIndex int, seed int64, frames int, dt float64) runStats {
	ts := game.NewTestSim(
		game.WithSeed(seed),
		game.WithAutopilot(game.NewAutopilot()),
	)

	peak := 0
	for i := 0; i < frames; i++ {
		ts.Step(dt)
		if s := ts.World().Score; s > peak {
			peak = s
		}
	}

	shots, hits, exits, resets := ts.Totals()
	entries := ts.SimLog.Entries()
	return runStats{
		runIndex:        runIndex,
		seed:            seed,
		frames:          frames,
		firstHitFrame:   firstFrame(entries, "target", "hit"),
		firstResetFrame: firstFrame(entries, "round", "reset"),
		shots:           shots,
		hits:            hits,
		wallExits:       exits,
		evictions:       ts.SimLog.CountCategory("fire", "evict"),
		resets:          resets,
		peakScore:       peak,
		finalScore:      ts.World().Score,
	}
}

func firstFrame(entries []game.SimLogEntry, category, key string) int {
	for _, e := range entries {
		if e.Category == category && e.Key == key {
			return e.Frame
		}
	}
	return -1
}

func accuracy(shots, hits int) float64 {
	if shots == 0 {
		return 0
	}
	return float64(hits) / float64(shots)
}

func aggregate(all []runStats) aggregateStats {
	var a aggregateStats
	a.runs = len(all)
	peakSum := 0
	firstSum, firstN := 0, 0
	for _, rs := range all {
		a.shots += rs.shots
		a.hits += rs.hits
		a.wallExits += rs.wallExits
		a.evictions += rs.evictions
		a.resets += rs.resets
		peakSum += rs.peakScore
		if rs.peakScore > a.bestPeak {
			a.bestPeak = rs.peakScore
		}
		if rs.firstHitFrame >= 0 {
			firstSum += rs.firstHitFrame
			firstN++
		} else {
			a.hitless++
		}
	}
	if a.runs > 0 {
		a.meanPeak = float64(peakSum) / float64(a.runs)
	}
	if firstN > 0 {
		a.meanFirstHit = float64(firstSum) / float64(firstN)
	}
	return a
}

func printRun(rs runStats) {
	fmt.Printf("--- Run %d (seed=%d) ---\n", rs.runIndex, rs.seed)
	fmt.Printf("phase_markers: first_hit=%d first_reset=%d\n", rs.firstHitFrame, rs.firstResetFrame)
	fmt.Printf("event_totals: shots=%d hits=%d wall_exits=%d evictions=%d round_resets=%d\n",
		rs.shots, rs.hits, rs.wallExits, rs.evictions, rs.resets)
	fmt.Printf("score: peak=%d final=%d accuracy=%.1f%%\n\n",
		rs.peakScore, rs.finalScore, accuracy(rs.shots, rs.hits)*100)
}

func printAggregate(a aggregateStats) {
	fmt.Printf("=== Aggregate (%d runs) ===\n", a.runs)
	fmt.Printf("totals: shots=%d hits=%d wall_exits=%d evictions=%d round_resets=%d\n",
		a.shots, a.hits, a.wallExits, a.evictions, a.resets)
	fmt.Printf("score: best_peak=%d mean_peak=%.2f accuracy=%.1f%%\n",
		a.bestPeak, a.meanPeak, accuracy(a.shots, a.hits)*100)
	fmt.Printf("first_hit: mean_frame=%.1f hitless_runs=%d\n", a.meanFirstHit, a.hitless)
}
