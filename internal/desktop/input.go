package desktop

import (
	"github.com/hajimehoshi/ebiten/v2"

	"github.com/Garsondee/Shooter-Mode/internal/game"
)

// keyBindings maps each movement key to the physical keys that drive it.
var keyBindings = [...]struct {
	key  game.Key
	phys []ebiten.Key
}{
	{game.KeyUp, []ebiten.Key{ebiten.KeyW, ebiten.KeyArrowUp}},
	{game.KeyLeft, []ebiten.Key{ebiten.KeyA, ebiten.KeyArrowLeft}},
	{game.KeyDown, []ebiten.Key{ebiten.KeyS, ebiten.KeyArrowDown}},
	{game.KeyRight, []ebiten.Key{ebiten.KeyD, ebiten.KeyArrowRight}},
}

// heldKeys is indexed by game.Key.
type heldKeys [game.KeyRight + 1]bool

// pollHeld reports which movement keys are down according to pressed.
func pollHeld(pressed func(ebiten.Key) bool) heldKeys {
	var h heldKeys
	for _, b := range keyBindings {
		for _, k := range b.phys {
			if pressed(k) {
				h[b.key] = true
				break
			}
		}
	}
	return h
}

// keyChanges calls emit for every movement key whose state differs between
// prev and cur.
func keyChanges(prev, cur heldKeys, emit func(game.Key, bool)) {
	for _, b := range keyBindings {
		if prev[b.key] != cur[b.key] {
			emit(b.key, cur[b.key])
		}
	}
}
