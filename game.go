package spiraltree

import (
	"errors"
	"fmt"
	"image"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
)

// ErrScriptDone is returned from Game.Update once an attached test script has
// finished and RunConfig.ExitWhenDone is set. Run treats it as a clean exit.
var ErrScriptDone = errors.New("test script done")

// RunConfig holds window and host options for Run.
type RunConfig struct {
	// Title is the window title.
	Title string
	// Width and Height are the initial window size in pixels.
	Width, Height int
	// TPS is the tick rate. Zero uses ebiten's default of 60.
	TPS int
	// ShowFPS draws an FPS/TPS overlay in the top-left corner.
	ShowFPS bool
	// ScreenshotDir is where screenshots are written. Default "screenshots".
	ScreenshotDir string
	// Runner, when set, drives the show from a scripted sequence of steps.
	Runner *TestRunner
	// ExitWhenDone stops Run after Runner finishes.
	ExitWhenDone bool
}

// Game adapts a Show to ebiten.Game. It polls ebiten's input each tick,
// translates it into Input calls, then runs one Show tick.
type Game struct {
	show     *Show
	renderer *Renderer
	cfg      RunConfig

	width, height int
	dt            float64

	cursor    image.Point
	hasCursor bool
	touchIDs  []ebiten.TouchID
	pressed   []ebiten.TouchID

	injectQueue     []syntheticEvent
	screenshotQueue []string
	fps             *fpsOverlay
}

// NewGame builds the renderer for show and applies cfg defaults.
func NewGame(show *Show, cfg RunConfig) (*Game, error) {
	r, err := NewRenderer(show)
	if err != nil {
		return nil, fmt.Errorf("new renderer: %w", err)
	}
	if cfg.Width <= 0 {
		cfg.Width = 1280
	}
	if cfg.Height <= 0 {
		cfg.Height = 720
	}
	if cfg.TPS <= 0 {
		cfg.TPS = ebiten.DefaultTPS
	}
	if cfg.ScreenshotDir == "" {
		cfg.ScreenshotDir = "screenshots"
	}
	g := &Game{
		show:     show,
		renderer: r,
		cfg:      cfg,
		width:    cfg.Width,
		height:   cfg.Height,
		dt:       1 / float64(cfg.TPS),
	}
	if cfg.ShowFPS {
		g.fps = &fpsOverlay{}
	}
	show.Resize(float64(g.width), float64(g.height))
	return g, nil
}

// Show returns the driven show.
func (g *Game) Show() *Show {
	return g.show
}

// Update implements ebiten.Game.
func (g *Game) Update() error {
	if r := g.cfg.Runner; r != nil {
		r.step(g)
		if r.Done() && g.cfg.ExitWhenDone && len(g.screenshotQueue) == 0 {
			return ErrScriptDone
		}
	}
	if !g.processInjectedInput() {
		g.pollInput()
	}
	g.pollTilt()
	g.show.Update(g.dt)
	if g.fps != nil {
		g.fps.update(g.dt)
	}
	return nil
}

// Draw implements ebiten.Game.
func (g *Game) Draw(screen *ebiten.Image) {
	g.renderer.Draw(screen, g.show)
	if g.fps != nil {
		g.fps.draw(screen)
	}
	g.flushScreenshots(screen)
}

// Layout implements ebiten.Game. The viewport tracks the window size.
func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	if outsideWidth != g.width || outsideHeight != g.height {
		g.width, g.height = outsideWidth, outsideHeight
		g.show.Resize(float64(g.width), float64(g.height))
	}
	return outsideWidth, outsideHeight
}

// pollInput reads the cursor, touches and click state. The first cursor
// reading is only a baseline; ebiten reports (0, 0) before the mouse enters
// the window.
func (g *Game) pollInput() {
	in := g.show.Input()
	w, h := float64(g.width), float64(g.height)

	x, y := ebiten.CursorPosition()
	p := image.Pt(x, y)
	switch {
	case !g.hasCursor:
		g.cursor = p
		g.hasCursor = true
	case p != g.cursor:
		g.cursor = p
		in.PointerMoved(float64(x), float64(y), w, h, false)
	}

	g.touchIDs = ebiten.AppendTouchIDs(g.touchIDs[:0])
	if len(g.touchIDs) > 0 {
		tx, ty := ebiten.TouchPosition(g.touchIDs[0])
		in.PointerMoved(float64(tx), float64(ty), w, h, true)
	}

	g.pressed = inpututil.AppendJustPressedTouchIDs(g.pressed[:0])
	if inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonLeft) || len(g.pressed) > 0 {
		in.Triggered()
	}
}

// pollTilt forwards the orientation source once tilt is wired.
func (g *Game) pollTilt() {
	in := g.show.Input()
	src := g.show.TiltSource()
	if src == nil || !in.TiltWired() {
		return
	}
	if gamma, beta, ok := src.Orientation(); ok {
		in.Oriented(gamma, beta)
	}
}

// Run opens a window and drives show until the window closes or an attached
// script finishes with ExitWhenDone set.
func Run(show *Show, cfg RunConfig) error {
	g, err := NewGame(show, cfg)
	if err != nil {
		return err
	}
	ebiten.SetWindowTitle(cfg.Title)
	ebiten.SetWindowSize(g.width, g.height)
	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)
	ebiten.SetTPS(g.cfg.TPS)

	if err := ebiten.RunGame(g); err != nil && !errors.Is(err, ErrScriptDone) {
		return err
	}
	return nil
}
