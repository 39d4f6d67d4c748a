package game

import (
	"fmt"
	"strings"
)

// SimLogEntry is one recorded event during a headless run.
type SimLogEntry struct {
	Frame    int
	Category string  // fire, projectile, target, round, move
	Key      string  // specific event name within the category
	Value    string  // human-readable detail
	NumVal   float64 // optional numeric value for threshold checks
}

// String formats the entry as a fixed-width log line.
//
//	[F=0042] target     hit              score 3
func (e SimLogEntry) String() string {
	return fmt.Sprintf("[F=%04d] %-10s %-16s %s", e.Frame, e.Category, e.Key, e.Value)
}

// SimLog collects structured events from headless runs. It is unbounded and
// machine-readable; the desktop event feed is the on-screen counterpart.
type SimLog struct {
	entries []SimLogEntry
	verbose bool
}

// NewSimLog creates a SimLog. If verbose is true, per-frame position entries
// are recorded too.
func NewSimLog(verbose bool) *SimLog {
	return &SimLog{verbose: verbose}
}

// Add records a new entry.
func (sl *SimLog) Add(frame int, category, key, value string, numVal float64) {
	sl.entries = append(sl.entries, SimLogEntry{
		Frame:    frame,
		Category: category,
		Key:      key,
		Value:    value,
		NumVal:   numVal,
	})
}

// AddVerbose records an entry only when verbose mode is on.
func (sl *SimLog) AddVerbose(frame int, category, key, value string, numVal float64) {
	if !sl.verbose {
		return
	}
	sl.Add(frame, category, key, value, numVal)
}

// RecordStep logs the events in rep against the world after the step.
func (sl *SimLog) RecordStep(frame int, rep StepReport, w World) {
	if rep.Fired {
		sl.Add(frame, "fire", "spawn",
			fmt.Sprintf("from (%.2f,%.2f) at (%.2f,%.2f)", w.Player.X, w.Player.Y, w.Aim.X, w.Aim.Y), 0)
	}
	if rep.Evicted {
		sl.Add(frame, "fire", "evict", "oldest projectile dropped", 0)
	}
	if rep.WallExits > 0 {
		sl.Add(frame, "projectile", "wall_exit", fmt.Sprintf("%d left the court", rep.WallExits), float64(rep.WallExits))
	}
	if rep.Hits > 0 {
		sl.Add(frame, "target", "hit",
			fmt.Sprintf("score %d, target moved to (%.2f,%.2f)", w.Score, w.Target.X, w.Target.Y), float64(rep.Hits))
	}
	if rep.RoundReset {
		sl.Add(frame, "round", "reset", "timer expired, score cleared", 0)
	}
	sl.AddVerbose(frame, "move", "position",
		fmt.Sprintf("(%.3f,%.3f)", w.Player.X, w.Player.Y), 0)
}

// Entries returns all recorded entries.
func (sl *SimLog) Entries() []SimLogEntry {
	return sl.entries
}

// Filter returns entries matching the given category and/or key.
// Pass empty string to match any value for that field.
func (sl *SimLog) Filter(category, key string) []SimLogEntry {
	var out []SimLogEntry
	for _, e := range sl.entries {
		if category != "" && e.Category != category {
			continue
		}
		if key != "" && e.Key != key {
			continue
		}
		out = append(out, e)
	}
	return out
}

// CountCategory returns how many entries match the given category and key.
func (sl *SimLog) CountCategory(category, key string) int {
	return len(sl.Filter(category, key))
}

// SumCategory adds up NumVal over entries matching category and key.
func (sl *SimLog) SumCategory(category, key string) float64 {
	total := 0.0
	for _, e := range sl.Filter(category, key) {
		total += e.NumVal
	}
	return total
}

// LastOf returns the most recent entry matching category+key, or false if none.
func (sl *SimLog) LastOf(category, key string) (SimLogEntry, bool) {
	entries := sl.Filter(category, key)
	if len(entries) == 0 {
		return SimLogEntry{}, false
	}
	return entries[len(entries)-1], true
}

// HasEntry returns true if at least one entry matches category, key, and value substring.
func (sl *SimLog) HasEntry(category, key, valueSubstr string) bool {
	for _, e := range sl.entries {
		if category != "" && e.Category != category {
			continue
		}
		if key != "" && e.Key != key {
			continue
		}
		if valueSubstr != "" && !strings.Contains(e.Value, valueSubstr) {
			continue
		}
		return true
	}
	return false
}

// Format returns the full log as a single string for t.Log output.
func (sl *SimLog) Format() string {
	var sb strings.Builder
	for _, e := range sl.entries {
		sb.WriteString(e.String())
		sb.WriteByte('\n')
	}
	return sb.String()
}
