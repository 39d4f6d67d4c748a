package terminal

import (
	"time"

	"github.com/Garsondee/Shooter-Mode/internal/game"
)

// keyHoldDuration is how long a key is considered held after its last press
// event. Terminals report key repeats but never releases.
const keyHoldDuration = 250 * time.Millisecond

var latchKeys = [...]game.Key{game.KeyUp, game.KeyLeft, game.KeyDown, game.KeyRight}

// KeyLatch turns a stream of key presses into press and release edges.
type KeyLatch struct {
	last [game.KeyRight + 1]time.Time
	held [game.KeyRight + 1]bool
}

// Press records a press (or repeat) of k at now.
func (l *KeyLatch) Press(k game.Key, now time.Time) {
	if k <= game.KeyNone || k > game.KeyRight {
		return
	}
	l.last[k] = now
}

// Update emits an edge for every key whose held state changed as of now.
func (l *KeyLatch) Update(now time.Time, emit func(game.Key, bool)) {
	for _, k := range latchKeys {
		held := !l.last[k].IsZero() && now.Sub(l.last[k]) < keyHoldDuration
		if held != l.held[k] {
			l.held[k] = held
			emit(k, held)
		}
	}
}

// Held reports whether k is currently latched down.
func (l *KeyLatch) Held(k game.Key) bool {
	if k <= game.KeyNone || k > game.KeyRight {
		return false
	}
	return l.held[k]
}
