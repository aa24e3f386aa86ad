// Package exhibit runs the interactive piece: it owns the frame loop, turns
// terminal input into sentence edits and wires the sentence notifications
// to the sphere, the permutation list and the chimes.
package exhibit

import (
	"context"
	"fmt"
	"log/slog"
	"logosphere/assets"
	"logosphere/internal/config"
	"logosphere/internal/event"
	"logosphere/internal/layout"
	"logosphere/internal/lexicon"
	"logosphere/internal/permute"
	"logosphere/internal/render"
	"logosphere/internal/sentence"
	"logosphere/internal/sphere"
	"logosphere/internal/token"
	"math/rand"
	"os"
	"path/filepath"
	"time"

	"github.com/gdamore/tcell/v2"
)

// Content is the data the exhibit is built from.
type Content struct {
	Store   *lexicon.Store
	Catalog *sphere.Catalog
}

// LoadContent reads the lexicon and model catalog named in cfg, falling
// back to the embedded defaults for empty paths.
func LoadContent(cfg config.Config) (Content, error) {
	var (
		entries []lexicon.Entry
		err     error
	)
	if cfg.Lexicon != "" {
		entries, err = lexicon.LoadFile(cfg.Lexicon)
	} else {
		entries, err = loadEmbeddedLexicon()
	}
	if err != nil {
		return Content{}, err
	}

	var catalog *sphere.Catalog
	if cfg.Models != "" {
		catalog, err = sphere.LoadCatalog(os.DirFS(filepath.Dir(cfg.Models)), filepath.Base(cfg.Models))
	} else {
		catalog, err = sphere.LoadCatalog(assets.FS, assets.ModelsFile)
	}
	if err != nil {
		return Content{}, err
	}
	return Content{Store: lexicon.NewStore(entries), Catalog: catalog}, nil
}

func loadEmbeddedLexicon() ([]lexicon.Entry, error) {
	f, err := assets.FS.Open(assets.VocabularyFile)
	if err != nil {
		return nil, fmt.Errorf("open lexicon: %w", err)
	}
	defer f.Close()
	entries, err := lexicon.Load(f)
	if err != nil {
		return nil, fmt.Errorf("load embedded lexicon: %w", err)
	}
	return entries, nil
}

// Exhibit is the top-level orchestrator.
type Exhibit struct {
	screen   tcell.Screen
	renderer *render.Renderer
	log      *slog.Logger
	interval time.Duration

	bus      *event.Bus
	engine   *layout.Engine
	sentence *sentence.Controller
	scene    *sphere.Scene
	perms    *permute.Panel

	selected *token.Token
	rule     int
	tick     int
	buttons  tcell.ButtonMask

	// view is the sphere orbit. While dragging, drag holds the last
	// pointer cell of a Button1 drag that began on the sphere.
	view     sphere.Orbit
	dragging bool
	drag     [2]int
}

// New builds the exhibit on an initialised screen and places the words.
func New(screen tcell.Screen, cfg config.Config, content Content, log *slog.Logger) *Exhibit {
	if log == nil {
		log = slog.Default()
	}
	seed := cfg.Seed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	rng := rand.New(rand.NewSource(seed))

	x := &Exhibit{
		screen:   screen,
		renderer: render.NewRenderer(screen, cfg.CellWidth, cfg.CellHeight),
		log:      log,
		interval: cfg.FrameInterval(),
		bus:      event.NewBus(),
		scene:    sphere.NewScene(content.Catalog, rng, log),
		perms:    permute.NewPanel(content.Store),
	}
	metrics := layout.CellMetrics{CellW: cfg.CellWidth, CellH: cfg.CellHeight}
	x.engine = layout.New(cfg.Layout, metrics, rng)
	x.sentence = sentence.New(x.engine, x.bus, log)

	x.bus.SubscribeAll(x.scene.Handle)
	x.bus.Subscribe(event.KindSentenceChanged, x.perms.Handle)

	var tokens []*token.Token
	if len(cfg.Words) > 0 {
		tokens = token.FromWords(cfg.Words, content.Store)
	} else {
		tokens = token.FromStore(content.Store)
	}
	for _, t := range tokens {
		if t.Inert() {
			log.Debug("word has no roles", "word", t.Text)
		}
	}
	x.engine.Resize(x.renderer.Panels().Words.Canvas())
	rep := x.engine.Place(tokens)
	log.Info("words placed", "seed", seed, "words", len(tokens), "placed", rep.Placed, "fallbacks", rep.Fallbacks)
	return x
}

// Subscribe adds a handler for every sentence notification.
func (x *Exhibit) Subscribe(h event.Handler) { x.bus.SubscribeAll(h) }

// Run drives the frame loop until the visitor quits, the screen closes or
// ctx is cancelled.
func (x *Exhibit) Run(ctx context.Context) error {
	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	// Start an async input reader goroutine.
	eventCh := make(chan tcell.Event, 32)
	go x.poll(ctx, eventCh)

	ticker := time.NewTicker(x.interval)
	defer ticker.Stop()

	x.Step()
	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case ev, ok := <-eventCh:
			if !ok {
				return nil // screen closed
			}
			if !x.HandleEvent(ev) {
				x.log.Info("quit")
				return nil
			}
		case <-ticker.C:
			x.Step()
		}
	}
}

// poll forwards screen events to out until the screen closes, which closes
// out, or ctx is done.
func (x *Exhibit) poll(ctx context.Context, out chan<- tcell.Event) {
	for {
		ev := x.screen.PollEvent()
		if ev == nil {
			close(out)
			return
		}
		select {
		case out <- ev:
		case <-ctx.Done():
			return
		}
	}
}

// Step runs one frame: deliver queued notifications, move the words, draw.
func (x *Exhibit) Step() {
	x.bus.Flush()
	x.engine.Step(x.interval)
	x.tick++
	x.renderer.Draw(render.Frame{
		Layout:   x.engine,
		Sentence: x.sentence,
		Selected: x.selected,
		Sphere:   x.scene,
		Perms:    x.perms,
		Rule:     x.rule,
		Tick:     x.tick,
		View:     x.view,
	})
}

// HandleEvent applies one input event. It returns false when the visitor
// asked to quit.
func (x *Exhibit) HandleEvent(ev tcell.Event) bool {
	switch ev := ev.(type) {
	case *tcell.EventResize:
		x.screen.Sync()
		x.resize()
	case *tcell.EventMouse:
		x.mouse(ev)
	case *tcell.EventKey:
		return x.key(keyToAction(ev))
	}
	return true
}

func (x *Exhibit) resize() {
	panels := x.renderer.Resize()
	w, h := panels.Words.Canvas()
	x.engine.Resize(w, h)
	x.sentence.Relayout()
	x.perms.Scroll(0, x.renderer.PermutationRows())
	x.log.Debug("resize", "w", w, "h", h)
}

func (x *Exhibit) key(a Action) bool {
	rows := x.renderer.PermutationRows()
	switch a {
	case ActionQuit:
		return false
	case ActionScrollUp:
		x.perms.Scroll(-1, rows)
	case ActionScrollDown:
		x.perms.Scroll(1, rows)
	case ActionPageUp:
		x.perms.Scroll(-max(rows, 1), rows)
	case ActionPageDown:
		x.perms.Scroll(max(rows, 1), rows)
	case ActionReset:
		x.selected = nil
		x.sentence.Reset()
	case ActionDeselect:
		x.selected = nil
	case ActionRule1, ActionRule2, ActionRule3, ActionRule4:
		x.rule = int(a - ActionRule1)
	}
	return true
}

func (x *Exhibit) mouse(ev *tcell.EventMouse) {
	btn := ev.Buttons()
	pressed := btn&tcell.Button1 != 0 && x.buttons&tcell.Button1 == 0
	x.buttons = btn

	sx, sy := ev.Position()
	if btn&tcell.Button1 == 0 {
		x.dragging = false
	}

	rows := x.renderer.PermutationRows()
	switch {
	case btn&tcell.WheelUp != 0:
		x.perms.Scroll(-1, rows)
	case btn&tcell.WheelDown != 0:
		x.perms.Scroll(1, rows)
	case pressed && x.renderer.Panels().Sphere.Contains(sx, sy):
		x.dragging = true
		x.drag = [2]int{sx, sy}
	case pressed:
		x.click(sx, sy)
	case x.dragging:
		x.view.Drag(sx-x.drag[0], sy-x.drag[1])
		x.drag = [2]int{sx, sy}
	}
}

// click handles a press at screen cell (sx, sy). Role labels win over
// words: first those of the selected word, then those of sentence words.
// A press on a word toggles it in or out of the sentence and selects it; a
// press on empty canvas clears the selection.
func (x *Exhibit) click(sx, sy int) {
	if i, ok := x.renderer.RuleTabAt(sx, sy); ok {
		x.rule = i
		return
	}
	p, ok := x.renderer.Panels().Words.ScreenToCanvas(sx, sy)
	if !ok {
		return
	}

	owners := make([]*token.Token, 0, x.sentence.Len()+1)
	if x.selected != nil {
		owners = append(owners, x.selected)
	}
	owners = append(owners, x.sentence.Sentence()...)
	for _, t := range owners {
		if r, ok := x.engine.OptionHit(t, p); ok {
			x.pickRole(t, r)
			return
		}
	}

	t := x.engine.TokenAt(p)
	if t == nil {
		x.selected = nil
		return
	}
	x.selected = t
	x.sentence.Toggle(t)
}

// pickRole toggles role r on t. A free word joins the sentence first; if
// joining already gave it r, the click is done.
func (x *Exhibit) pickRole(t *token.Token, r lexicon.Role) {
	x.selected = t
	if !t.InSentence() {
		if !x.sentence.Toggle(t) || t.Role() == r {
			return
		}
	}
	if t.Role() == r {
		x.sentence.AssignRole(t, lexicon.RoleNone)
		return
	}
	x.sentence.AssignRole(t, r)
}
