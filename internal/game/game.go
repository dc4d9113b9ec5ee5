// Package game runs the farm in the terminal: the fixed-rate loop, input
// mapping and the status line.
package game

import (
	"context"
	"fmt"
	"log/slog"
	"math/rand"
	"time"

	"github.com/gdamore/tcell/v2"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/trace"

	"github.com/samdwyer/farmsim/internal/entity"
	"github.com/samdwyer/farmsim/internal/farm"
	"github.com/samdwyer/farmsim/internal/save"
	"github.com/samdwyer/farmsim/internal/telemetry"
	"github.com/samdwyer/farmsim/internal/ui"
	"github.com/samdwyer/farmsim/internal/world"
)

// Game holds the running session.
type Game struct {
	cfg      Config
	screen   *ui.Screen
	renderer *ui.Renderer
	store    *save.Store // nil disables saving
	tracer   trace.Tracer

	state   *farm.State
	keys    heldKeys
	status  string
	running bool
}

// New opens the terminal and creates a game. store may be nil.
func New(cfg Config, store *save.Store) (*Game, error) {
	screen, err := ui.NewScreen()
	if err != nil {
		return nil, err
	}
	g, err := NewWithScreen(cfg, screen, store)
	if err != nil {
		screen.Close()
		return nil, err
	}
	return g, nil
}

// NewWithScreen creates a game drawing to an existing screen.
func NewWithScreen(cfg Config, screen *ui.Screen, store *save.Store) (*Game, error) {
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config: %w", err)
	}
	theme, err := ui.LoadTheme()
	if err != nil {
		return nil, err
	}

	return &Game{
		cfg:      cfg,
		screen:   screen,
		renderer: ui.NewRenderer(screen, theme),
		store:    store,
		tracer:   telemetry.Tracer("game"),
		keys:     heldKeys{holdTicks: cfg.HoldTicks},
		running:  true,
	}, nil
}

// State returns the current game state, nil before Run or start.
func (g *Game) State() *farm.State {
	return g.state
}

// Status returns the status line text.
func (g *Game) Status() string {
	return g.status
}

// Running reports whether the loop should keep going.
func (g *Game) Running() bool {
	return g.running
}

// Run executes the main game loop until the player quits or ctx is done.
func (g *Game) Run(ctx context.Context) error {
	g.start(ctx)

	quit := make(chan struct{})
	defer close(quit)
	events := g.screen.Events(quit)

	ticker := time.NewTicker(time.Second / time.Duration(g.cfg.TickRate))
	defer ticker.Stop()

	g.draw()
	for g.running {
		select {
		case <-ctx.Done():
			g.running = false
		case ev, ok := <-events:
			if !ok {
				g.running = false
				break
			}
			g.handleEvent(ctx, ev)
		case <-ticker.C:
			g.update(ctx)
			g.draw()
		}
	}

	g.saveSession(context.WithoutCancel(ctx))
	g.screen.Close()
	return nil
}

// start creates the state, resuming the save slot when configured.
func (g *Game) start(ctx context.Context) {
	ctx, span := g.tracer.Start(ctx, "game.init")
	defer span.End()

	seed := g.cfg.Seed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	rng := rand.New(rand.NewSource(seed))

	resumed := false
	if g.cfg.Resume && g.store != nil {
		resumed = g.resume(ctx, rng)
	}
	if !resumed {
		g.state = farm.New(g.cfg.Rules, rng)
	}

	crops := 0
	for _, kind := range world.Crops {
		crops += g.state.Field.Count(kind)
	}
	span.SetAttributes(
		attribute.Int64("game.seed", seed),
		attribute.Bool("game.resumed", resumed),
		attribute.Int("field.crops", crops),
	)
	slog.Info("game started", "seed", seed, "resumed", resumed, "crops", crops)
}

func (g *Game) resume(ctx context.Context, rng *rand.Rand) bool {
	snap, ok, err := g.store.Load(ctx)
	if err != nil {
		slog.Warn("failed to load save, starting a new field", "slot", g.store.Slot(), "error", err)
		return false
	}
	if !ok {
		return false
	}
	state, err := save.Restore(snap, g.cfg.Rules, rng)
	if err != nil {
		slog.Warn("save is unusable, starting a new field", "slot", g.store.Slot(), "error", err)
		return false
	}
	g.state = state
	g.status = "Welcome back"
	return true
}

func (g *Game) saveSession(ctx context.Context) {
	if g.store == nil || g.state == nil {
		return
	}
	if err := g.store.Save(ctx, save.Capture(g.state, time.Now())); err != nil {
		slog.Error("failed to save session", "slot", g.store.Slot(), "error", err)
	}
}

// handleEvent processes a single terminal event.
func (g *Game) handleEvent(ctx context.Context, ev tcell.Event) {
	switch ev := ev.(type) {
	case *tcell.EventKey:
		g.handleKey(ctx, ev.Key(), ev.Rune())
	case *tcell.EventMouse:
		x, y := ev.Position()
		g.handleMouse(ctx, x, y, ev.Buttons())
	case *tcell.EventResize:
		g.screen.Sync()
	}
}

func (g *Game) handleKey(ctx context.Context, key tcell.Key, r rune) {
	act := mapKey(key, r)
	switch {
	case act.quit:
		g.running = false
	case act.move != entity.DirNone:
		g.keys.press(act.move)
	case act.cmd != farm.CmdNone:
		out := g.state.Press(act.cmd)
		if out.Quit {
			g.running = false
			return
		}
		g.report(ctx, out)
	}
}

func (g *Game) handleMouse(ctx context.Context, x, y int, buttons tcell.ButtonMask) {
	if !g.keys.clicked(buttons) {
		return
	}
	p, ok := ui.ScreenToGrid(x, y)
	if !ok {
		return
	}
	res := g.state.Click(p)
	if res.Action == farm.ClickNone {
		return
	}

	name := "farm.plant"
	if res.Action == farm.ClickHarvested {
		name = "farm.harvest"
	}
	telemetry.Event(ctx, g.tracer, name,
		attribute.String("crop", res.Kind.String()),
		attribute.Int("cell.x", res.At.X),
		attribute.Int("cell.y", res.At.Y),
	)

	g.status = clickMessage(res)
	slog.Debug(g.status, "x", res.At.X, "y", res.At.Y)
}

// update advances the simulation by one tick.
func (g *Game) update(ctx context.Context) {
	res := g.state.Tick(farm.Input{Move: g.keys.tick()})
	if res.Moved {
		g.keys.consume()
	}

	if res.Opened != farm.ModePlaying {
		g.status = ""
		slog.Debug("menu opened", "mode", res.Opened.String())
	}
	if res.Helper.Action == farm.HelperHarvested {
		telemetry.Event(ctx, g.tracer, "helper.harvest",
			attribute.String("crop", res.Helper.Kind.String()),
			attribute.Int("cell.x", res.Helper.Target.X),
			attribute.Int("cell.y", res.Helper.Target.Y),
			attribute.Int("shed.total", g.state.Shed.Total()),
		)
		g.status = helperMessage(res.Helper)
	}
}

// report records a menu transaction on the status line and as a span.
func (g *Game) report(ctx context.Context, out farm.Outcome) {
	var name string
	switch out.Effect {
	case farm.EffectSold:
		name = "merchant.sell"
	case farm.EffectBought:
		name = "merchant.buy"
	case farm.EffectWithdrew:
		name = "shed.withdraw"
	default:
		return
	}

	attrs := []attribute.KeyValue{
		attribute.Int("amount", out.Amount),
		attribute.Int("gold.delta", out.Gold),
		attribute.Int("gold.total", g.state.Gold),
	}
	if out.Kind.IsCrop() {
		attrs = append(attrs, attribute.String("crop", out.Kind.String()))
	}
	telemetry.Event(ctx, g.tracer, name, attrs...)

	g.status = outcomeMessage(out)
	slog.Info(g.status, "gold", g.state.Gold)
}

func (g *Game) draw() {
	g.renderer.Render(g.state, g.status)
}
