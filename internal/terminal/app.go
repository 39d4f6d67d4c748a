package terminal

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/gdamore/tcell/v2"

	"github.com/Garsondee/Shooter-Mode/internal/game"
)

// ErrNotTerminal is returned when the output is not an interactive terminal.
var ErrNotTerminal = errors.New("stdout is not a terminal")

// hudRows is the number of text rows kept below the raster.
const hudRows = 1

// App runs a Session on a tcell screen.
type App struct {
	screen  tcell.Screen
	session *game.Session
	raster  *Raster
	latch   KeyLatch
	log     *slog.Logger
	step    time.Duration

	mouseFire bool
	spaceAt   time.Time
	fire      bool
	paused    bool
	quit      bool
}

// NewApp wires session to an initialised screen. step is the fixed
// simulation step, also used as the redraw interval.
func NewApp(screen tcell.Screen, session *game.Session, step time.Duration, log *slog.Logger) *App {
	a := &App{
		screen:  screen,
		session: session,
		raster:  NewRaster(0, 0),
		log:     log,
		step:    step,
	}
	a.resize()
	return a
}

func (a *App) resize() {
	cols, rows := a.screen.Size()
	a.raster.Resize(cols, max(rows-hudRows, 0))
}

// Run polls events and ticks until ctx is done or the player quits.
func (a *App) Run(ctx context.Context) error {
	done := make(chan struct{})
	defer close(done)

	events := make(chan tcell.Event, 100)
	go func() {
		for {
			ev := a.screen.PollEvent()
			if ev == nil {
				return
			}
			select {
			case events <- ev:
			case <-done:
				return
			}
		}
	}()

	ticker := time.NewTicker(a.step)
	defer ticker.Stop()

	a.log.Info("terminal session started", "session_id", a.session.ID, "viewport", a.raster.Viewport())
	for {
		select {
		case <-ctx.Done():
			return nil
		case ev := <-events:
			a.HandleEvent(ev, time.Now())
			if a.quit {
				a.log.Info("terminal session ended", "session_id", a.session.ID, "frames", a.session.Frames())
				return nil
			}
		case now := <-ticker.C:
			if err := a.Tick(now); err != nil {
				return err
			}
		}
	}
}

// HandleEvent applies one tcell event.
func (a *App) HandleEvent(ev tcell.Event, now time.Time) {
	switch ev := ev.(type) {
	case *tcell.EventKey:
		a.handleKey(ev, now)
	case *tcell.EventMouse:
		x, y := ev.Position()
		// Cell (x, y) covers pixels 2y and 2y+1; aim at the boundary
		// between them.
		a.session.PointerMove(float64(x), float64(2*y)+0.5, a.raster.Viewport())
		a.mouseFire = ev.Buttons()&tcell.Button1 != 0
	case *tcell.EventResize:
		a.resize()
		a.screen.Sync()
	}
}

func (a *App) handleKey(ev *tcell.EventKey, now time.Time) {
	switch ev.Key() {
	case tcell.KeyEscape, tcell.KeyCtrlC:
		a.quit = true
	case tcell.KeyUp:
		a.latch.Press(game.KeyUp, now)
	case tcell.KeyLeft:
		a.latch.Press(game.KeyLeft, now)
	case tcell.KeyDown:
		a.latch.Press(game.KeyDown, now)
	case tcell.KeyRight:
		a.latch.Press(game.KeyRight, now)
	case tcell.KeyRune:
		switch ev.Rune() {
		case 'q', 'Q':
			a.quit = true
		case 'w', 'W':
			a.latch.Press(game.KeyUp, now)
		case 'a', 'A':
			a.latch.Press(game.KeyLeft, now)
		case 's', 'S':
			a.latch.Press(game.KeyDown, now)
		case 'd', 'D':
			a.latch.Press(game.KeyRight, now)
		case ' ':
			a.spaceAt = now
		case 'p', 'P':
			a.paused = !a.paused
		}
	}
}

// Tick releases expired keys, steps the session into the raster and
// redraws the screen.
func (a *App) Tick(now time.Time) error {
	a.latch.Update(now, a.session.Key)
	fire := a.mouseFire || (!a.spaceAt.IsZero() && now.Sub(a.spaceAt) < keyHoldDuration)
	if fire != a.fire {
		a.session.FireButton(fire)
		a.fire = fire
	}

	elapsed := a.step.Seconds()
	if a.paused {
		elapsed = 0
	}
	rep, err := a.session.Pump(a.raster, elapsed, a.raster.Viewport())
	if err != nil {
		return err
	}
	if rep.RoundReset {
		a.log.Info("round reset", "session_id", a.session.ID, "frame", a.session.Frames())
	}

	a.raster.Flush(a.screen)
	a.drawHUD()
	a.screen.Show()
	return nil
}

func (a *App) drawHUD() {
	cols, rows := a.screen.Size()
	if rows < 1 {
		return
	}
	w := a.session.Sim().World()
	status := ""
	if a.paused {
		status = " PAUSED"
	}
	line := fmt.Sprintf(" score %d  time %4.1fs%s  wasd move  mouse/space fire  p pause  q quit", w.Score, w.RoundTimer, status)
	style := tcell.StyleDefault.
		Foreground(tcellColor(game.ForegroundColor)).
		Background(tcellColor(game.BackgroundColor))
	y := rows - 1
	x := 0
	for _, r := range line {
		if x >= cols {
			break
		}
		a.screen.SetContent(x, y, r, nil, style)
		x++
	}
	for ; x < cols; x++ {
		a.screen.SetContent(x, y, ' ', nil, style)
	}
}
