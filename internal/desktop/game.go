// Package desktop hosts a Session in an ebiten window.
package desktop

import (
	"fmt"
	"log/slog"

	"github.com/atotto/clipboard"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/hajimehoshi/ebiten/v2/text/v2"
	"golang.org/x/image/font/basicfont"

	"github.com/Garsondee/Shooter-Mode/internal/game"
)

const hudLineHeight = 15

// Game implements ebiten.Game around a game.Session. Update forwards input
// and steps the session; Draw submits the last built frame.
type Game struct {
	session *game.Session
	log     *slog.Logger
	tps     int

	vp        game.Viewport
	frame     game.Frame
	prevHeld  heldKeys
	prevFire  bool
	prevMouse [2]int
	paused    bool
	showHUD   bool

	feed    Feed
	face    text.Face
	white   *ebiten.Image
	device  []game.Vertex
	verts   []ebiten.Vertex
	indices []uint16
}

// New creates a desktop host stepping s at tps frames per second.
func New(s *game.Session, tps int, log *slog.Logger) *Game {
	return &Game{
		session:   s,
		log:       log,
		tps:       tps,
		showHUD:   true,
		prevMouse: [2]int{-1, -1},
		face:      text.NewGoXFace(basicfont.Face7x13),
	}
}

// Update implements ebiten.Game.
func (g *Game) Update() error {
	if err := g.handleInput(); err != nil {
		return err
	}
	if g.vp.W <= 0 || g.vp.H <= 0 {
		return nil
	}

	elapsed := 1 / float64(g.tps)
	if g.paused {
		elapsed = 0
	}
	f, rep := g.session.Frame(elapsed, g.vp)
	g.frame = f

	w := g.session.Sim().World()
	g.feed.Record(g.session.Frames(), rep, w)
	if rep.RoundReset {
		g.log.Info("round reset", "session_id", g.session.ID, "frame", g.session.Frames())
	}
	if rep.Hits > 0 {
		g.log.Debug("target hit", "session_id", g.session.ID, "score", w.Score)
	}
	return nil
}

// handleInput forwards movement, pointer and fire state to the session and
// processes the host toggles (edge-triggered).
func (g *Game) handleInput() error {
	held := pollHeld(ebiten.IsKeyPressed)
	keyChanges(g.prevHeld, held, g.session.Key)
	g.prevHeld = held

	mx, my := ebiten.CursorPosition()
	if mx != g.prevMouse[0] || my != g.prevMouse[1] {
		g.session.PointerMove(float64(mx), float64(my), g.vp)
		g.prevMouse = [2]int{mx, my}
	}

	fire := ebiten.IsMouseButtonPressed(ebiten.MouseButtonLeft)
	if fire != g.prevFire {
		g.session.FireButton(fire)
		g.prevFire = fire
	}

	// P: pause. Frames are still built so the window keeps redrawing.
	if inpututil.IsKeyJustPressed(ebiten.KeyP) {
		g.paused = !g.paused
		g.log.Debug("pause toggled", "paused", g.paused)
	}
	// H: toggle HUD.
	if inpututil.IsKeyJustPressed(ebiten.KeyH) {
		g.showHUD = !g.showHUD
	}
	// C: copy the session report.
	if inpututil.IsKeyJustPressed(ebiten.KeyC) {
		if err := clipboard.WriteAll(g.session.Report()); err != nil {
			g.log.Warn("copy report failed", "err", err)
			g.feed.Add(g.session.Frames(), FeedInfo, "clipboard unavailable")
		} else {
			g.feed.Add(g.session.Frames(), FeedInfo, "report copied")
		}
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyEscape) {
		return ebiten.Termination
	}
	return nil
}

// Draw implements ebiten.Game.
func (g *Game) Draw(screen *ebiten.Image) {
	screen.Fill(game.BackgroundColor)
	if len(g.frame.Vertices) == 0 {
		return
	}
	if g.white == nil {
		g.white = newWhiteImage()
	}

	b := screen.Bounds()
	g.device = toDevice(g.device, g.frame.Vertices, g.frame.Transform)
	g.verts = toScreenVertices(g.verts[:0], g.device, b.Dx(), b.Dy())
	g.indices = sequentialIndices(g.indices, len(g.verts))
	screen.DrawTriangles(g.verts, g.indices, g.white, &ebiten.DrawTrianglesOptions{})

	if g.showHUD {
		g.drawHUD(screen)
	}
	g.feed.Draw(screen, g.face, 8, b.Dy()-feedMaxEntries*feedLineHeight-14)
}

// drawHUD renders score, time and controls in the top-left corner.
func (g *Game) drawHUD(screen *ebiten.Image) {
	w := g.session.Sim().World()
	rs := g.session.Round()
	status := ""
	if g.paused {
		status = "  PAUSED"
	}
	lines := []string{
		fmt.Sprintf("score %d  time %.1fs%s", w.Score, w.RoundTimer, status),
		fmt.Sprintf("shots %d  hits %d  acc %.0f%%  tps %.0f", rs.Shots, rs.Hits, rs.Accuracy()*100, ebiten.ActualTPS()),
		"WASD/arrows move  mouse aim+fire  P pause  C copy  H hud  Esc quit",
	}
	for i, line := range lines {
		op := &text.DrawOptions{}
		op.GeoM.Translate(8, float64(4+i*hudLineHeight))
		op.ColorScale.ScaleWithColor(game.ForegroundColor)
		text.Draw(screen, line, g.face, op)
	}
}

// Layout implements ebiten.Game. The screen follows the window so the
// projection always sees the real aspect ratio.
func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	g.vp = game.Viewport{W: outsideWidth, H: outsideHeight}
	return outsideWidth, outsideHeight
}

// Session returns the hosted session.
func (g *Game) Session() *game.Session {
	return g.session
}
