// Package game runs one inventory sandbox on a tcell screen: it owns the
// screen, the session, the renderer and the hold-repeat timer, and turns
// terminal events into session intents.
package game

import (
	"fmt"
	"log/slog"
	"math/rand"
	"time"

	"github.com/gdamore/tcell/v2"

	"satchel/assets"
	"satchel/internal/item"
	"satchel/internal/render"
	"satchel/internal/repeat"
	"satchel/internal/session"
	"satchel/internal/world"
)

// Config describes a sandbox.
type Config struct {
	Catalog *item.Catalog
	Session session.Options

	RepeatDelay    time.Duration
	RepeatInterval time.Duration

	// Kit is added to the inventory at start; Scatter is spread over the
	// ground. Unknown IDs are logged and skipped.
	Kit     []assets.Grant
	Scatter []assets.Grant

	Seed int64
}

// DefaultConfig is a 27 + 9 slot sandbox on a 20×10 field with the built-in
// catalog.
func DefaultConfig() Config {
	opts := session.DefaultOptions()
	opts.Width, opts.Height = 20, 10
	return Config{
		Catalog:        assets.DefaultCatalog(),
		Session:        opts,
		RepeatDelay:    repeat.DefaultDelay,
		RepeatInterval: repeat.DefaultInterval,
		Kit:            assets.StartingKit,
		Scatter:        assets.GroundItems,
		Seed:           time.Now().UnixNano(),
	}
}

// Interrupt payloads posted to the event loop from other goroutines.
type (
	holdTick    struct{}
	quitRequest struct{}
)

// Game is the top-level orchestrator of one sandbox.
type Game struct {
	screen   tcell.Screen
	cfg      Config
	log      *slog.Logger
	rng      *rand.Rand
	sess     *session.Session
	renderer *render.Renderer
	repeater *repeat.Repeater

	buttons tcell.ButtonMask
	vitals  vitals
	quit    bool
}

// New creates a Game on the local terminal.
func New(cfg Config, logger *slog.Logger) (*Game, error) {
	screen, err := tcell.NewScreen()
	if err != nil {
		return nil, fmt.Errorf("create screen: %w", err)
	}
	if err := screen.Init(); err != nil {
		return nil, fmt.Errorf("init screen: %w", err)
	}
	return NewWithScreen(screen, cfg, logger), nil
}

// NewWithScreen creates a Game on an already-initialized screen. The game
// takes ownership of the screen and finalizes it when Run returns.
func NewWithScreen(screen tcell.Screen, cfg Config, logger *slog.Logger) *Game {
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}
	if cfg.Catalog == nil {
		cfg.Catalog = assets.DefaultCatalog()
	}
	screen.EnableMouse()

	g := &Game{
		screen:   screen,
		cfg:      cfg,
		log:      logger,
		rng:      rand.New(rand.NewSource(cfg.Seed)),
		repeater: repeat.New(cfg.RepeatDelay, cfg.RepeatInterval),
		vitals:   vitals{health: 10, maxHealth: 20, food: 10, maxFood: 20},
	}
	g.renderer = render.NewRenderer(screen, cfg.Session.MainSize, cfg.Session.HotbarSize)
	g.sess = session.New(cfg.Session, g.renderer, g, world.NewGround(), logger)
	g.setup()
	return g
}

// Session exposes the sandbox state.
func (g *Game) Session() *session.Session { return g.sess }

// setup hands out the starting kit and scatters ground items.
func (g *Game) setup() {
	for _, gr := range g.cfg.Kit {
		def, err := g.cfg.Catalog.Lookup(gr.ID)
		if err != nil {
			g.log.Warn("starting kit", "error", err)
			continue
		}
		if left := g.sess.Pickup(def, gr.Qty); left > 0 {
			g.sess.Ground().SpawnWorldItem(def, left, g.sess.Position())
		}
	}
	w, h := max(g.cfg.Session.Width, 1), max(g.cfg.Session.Height, 1)
	for _, gr := range g.cfg.Scatter {
		def, err := g.cfg.Catalog.Lookup(gr.ID)
		if err != nil {
			g.log.Warn("ground items", "error", err)
			continue
		}
		at := world.Position{X: g.rng.Intn(w), Y: g.rng.Intn(h)}
		g.sess.Ground().SpawnWorldItem(def, gr.Qty, at)
	}

	if len(assets.Greetings) > 0 {
		g.renderer.Log("%s", assets.Greetings[g.rng.Intn(len(assets.Greetings))])
	}
	for _, line := range assets.Help {
		g.renderer.Log("%s", line)
	}
}

// Run is the main loop. It returns when the player quits or the screen
// stops delivering events.
func (g *Game) Run() {
	defer g.screen.Fini()
	defer g.repeater.Stop()

	for !g.quit {
		g.draw()
		ev := g.screen.PollEvent()
		if ev == nil {
			return
		}
		g.handle(ev)
	}
}

// Quit asks the loop to stop. It is safe to call from any goroutine.
func (g *Game) Quit() {
	_ = g.screen.PostEvent(tcell.NewEventInterrupt(quitRequest{}))
}

func (g *Game) draw() {
	view := render.View{
		Player: g.sess.Position(),
		Drops:  g.sess.Ground().All(),
		Width:  g.cfg.Session.Width,
		Height: g.cfg.Session.Height,
	}
	if ref, ok := g.sess.Dragging(); ok {
		if grid := g.sess.Grid(ref.Grid); grid != nil {
			view.Drag, _ = grid.Get(ref.Index)
		}
	}
	g.renderer.Draw(view)
}

func (g *Game) handle(ev tcell.Event) {
	switch ev := ev.(type) {
	case *tcell.EventResize:
		g.screen.Sync()
		g.renderer.Resize()
	case *tcell.EventKey:
		g.handleKey(ev)
	case *tcell.EventMouse:
		g.handleMouse(ev)
	case *tcell.EventInterrupt:
		switch ev.Data().(type) {
		case holdTick:
			g.sess.HoldTick()
		case quitRequest:
			g.quit = true
		}
	}
}
