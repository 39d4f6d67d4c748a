package desktop

import (
	"fmt"
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"

	"github.com/Garsondee/Shooter-Mode/internal/game"
)

const (
	feedMaxEntries = 8
	feedLineHeight = 15
	feedPanelWidth = 300
)

// FeedKind tags an entry so the panel can colour it.
type FeedKind int

const (
	FeedInfo FeedKind = iota
	FeedHit
	FeedRound
)

// FeedEntry is a single line in the event feed.
type FeedEntry struct {
	Frame   int
	Kind    FeedKind
	Message string
}

// Feed is a ring buffer of recent gameplay events rendered on-screen.
type Feed struct {
	entries [feedMaxEntries]FeedEntry
	head    int
	count   int
}

// Add appends an entry, dropping the oldest once full.
func (f *Feed) Add(frame int, kind FeedKind, msg string) {
	f.entries[f.head] = FeedEntry{Frame: frame, Kind: kind, Message: msg}
	f.head = (f.head + 1) % feedMaxEntries
	if f.count < feedMaxEntries {
		f.count++
	}
}

// Recent returns entries in chronological order (oldest first).
func (f *Feed) Recent() []FeedEntry {
	result := make([]FeedEntry, f.count)
	for i := 0; i < f.count; i++ {
		idx := (f.head - f.count + i + feedMaxEntries) % feedMaxEntries
		result[i] = f.entries[idx]
	}
	return result
}

// Record adds entries for the interesting parts of one step.
func (f *Feed) Record(frame int, rep game.StepReport, w game.World) {
	if rep.Hits > 0 {
		f.Add(frame, FeedHit, fmt.Sprintf("hit! score %d", w.Score))
	}
	if rep.Evicted {
		f.Add(frame, FeedInfo, "oldest shot recycled")
	}
	if rep.RoundReset {
		f.Add(frame, FeedRound, "time up, new round")
	}
}

func (k FeedKind) color() color.Color {
	switch k {
	case FeedHit:
		return game.ForegroundColor
	case FeedRound:
		return game.ShadowColor
	default:
		return color.NRGBA{R: 160, G: 170, B: 180, A: 255}
	}
}

// Draw renders the feed panel with its top-left corner at (x, y).
func (f *Feed) Draw(screen *ebiten.Image, face text.Face, x, y int) {
	entries := f.Recent()
	if len(entries) == 0 {
		return
	}
	h := float32(len(entries)*feedLineHeight + 6)
	vector.FillRect(screen, float32(x), float32(y), feedPanelWidth, h, color.NRGBA{R: 8, G: 24, B: 40, A: 200}, false)

	for i, e := range entries {
		op := &text.DrawOptions{}
		op.GeoM.Translate(float64(x+6), float64(y+3+i*feedLineHeight))
		op.ColorScale.ScaleWithColor(e.Kind.color())
		text.Draw(screen, fmt.Sprintf("%5d %s", e.Frame, e.Message), face, op)
	}
}
