package game

import (
	"context"
	"fmt"

	"github.com/gdamore/tcell/v2"
	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/trace"

	"github.com/samdwyer/dungeonpuzzle/internal/brush"
	"github.com/samdwyer/dungeonpuzzle/internal/codec"
	"github.com/samdwyer/dungeonpuzzle/internal/gamedata"
	"github.com/samdwyer/dungeonpuzzle/internal/telemetry"
	"github.com/samdwyer/dungeonpuzzle/internal/ui"
	"github.com/samdwyer/dungeonpuzzle/internal/world"
)

// Options configures a session.
type Options struct {
	Grid    *world.Grid // Board to solve, or the answer to design
	Design  bool        // Edit the answer instead of solving
	Monster world.Tile  // Painted by the design and monster brushes
	Style   world.Style // Tile alphabet on screen
}

// Session holds the state of one interactive puzzle.
type Session struct {
	ID uuid.UUID

	screen   *ui.Screen
	renderer *ui.Renderer
	grid     *world.Grid
	state    State
	cursor   world.Coord
	brushes  []*brush.Brush
	brush    int
	running  bool
	dirty    bool
	stroking bool
	last     world.Coord
	edits    int
	status   string
	span     trace.Span
	log      *logrus.Entry

	unsubscribe func()
}

// New opens the terminal and prepares a session.
func New(opts Options) (*Session, error) {
	screen, err := ui.NewScreen()
	if err != nil {
		return nil, err
	}
	s := newSession(opts, screen)
	s.screen = screen
	return s, nil
}

// newSession builds a session drawing onto canvas.
func newSession(opts Options, canvas ui.Canvas) *Session {
	if !opts.Monster.Kind.IsMonster() {
		opts.Monster = world.NewTile(world.KindMonster)
	}
	if opts.Grid == nil {
		opts.Grid = world.NewEditableGrid("Untitled", world.DefaultRows, world.DefaultCols, world.NewTile(world.KindWall))
	}

	s := &Session{
		ID:      uuid.New(),
		running: true,
		dirty:   true,
		span:    trace.SpanFromContext(context.Background()),
	}
	s.renderer = ui.NewRenderer(canvas, gamedata.MustLoadTileRegistry().Palette(), opts.Style)

	if opts.Design {
		s.state = StateDesign
		s.grid = opts.Grid.EditableCopy()
		s.grid.SetAutoTargets(false)
		s.brushes = []*brush.Brush{
			brush.NewDesignBrush(opts.Monster, true, true),
			brush.NewMonsterBrush(opts.Monster.Text(world.StylePictographic)),
			brush.NewTreasureBrush(""),
			brush.NewEraseBrush(),
		}
	} else {
		s.state = StateSolving
		s.grid = opts.Grid.SolvableCopy()
		s.brushes = []*brush.Brush{brush.NewSolveBrush()}
	}
	s.log = logrus.WithFields(logrus.Fields{
		"session": s.ID.String(),
		"puzzle":  s.grid.Name,
		"state":   s.state.String(),
	})
	s.unsubscribe = s.grid.Subscribe(func(world.Change) {
		s.dirty = true
	})
	s.refreshSolved()
	return s
}

// Grid returns the board being played.
func (s *Session) Grid() *world.Grid {
	return s.grid
}

// State returns the session state.
func (s *Session) State() State {
	return s.state
}

// Run executes the main loop until the player quits.
func (s *Session) Run(ctx context.Context) error {
	tracer := telemetry.Tracer("game")
	ctx, s.span = tracer.Start(ctx, "game.session")
	defer s.span.End()

	s.span.SetAttributes(
		attribute.String("session.id", s.ID.String()),
		attribute.String("puzzle.name", s.grid.Name),
		attribute.String("session.state", s.state.String()),
		attribute.Int("puzzle.rows", s.grid.Rows()),
		attribute.Int("puzzle.cols", s.grid.Cols()),
	)
	s.log.Info("session started")

	for s.running {
		if ctx.Err() != nil {
			break
		}
		if s.dirty {
			s.render()
		}
		s.handleEvent(s.screen.PollEvent())
	}

	s.span.SetAttributes(
		attribute.Int("session.edits", s.edits),
		attribute.Bool("puzzle.solved", s.state == StateSolved),
	)
	s.log.WithField("edits", s.edits).Info("session ended")
	s.Close()
	return nil
}

// Close releases the terminal and the grid subscription.
func (s *Session) Close() {
	if s.unsubscribe != nil {
		s.unsubscribe()
		s.unsubscribe = nil
	}
	if s.screen != nil {
		s.screen.Close()
		s.screen = nil
	}
}

func (s *Session) render() {
	help := solvingHelp
	if s.state == StateDesign {
		help = designHelp
	}
	s.renderer.Render(ui.View{
		Grid:       s.grid,
		Cursor:     s.cursor,
		ShowCursor: true,
		Status:     s.statusLine(),
		Help:       help,
	})
	s.dirty = false
}

func (s *Session) statusLine() string {
	line := fmt.Sprintf("[%s] brush: %s", s.state, s.activeBrush().Name())
	if s.status != "" {
		line += "  " + s.status
	}
	return line
}

func (s *Session) activeBrush() *brush.Brush {
	return s.brushes[s.brush]
}

// handleEvent processes a single terminal event.
func (s *Session) handleEvent(ev tcell.Event) {
	switch ev := ev.(type) {
	case *tcell.EventKey:
		s.handleAction(actionForKey(ev.Key(), ev.Rune()))
	case *tcell.EventMouse:
		x, y := ev.Position()
		s.handlePointer(ev.Buttons(), x, y)
	case *tcell.EventResize:
		if s.screen != nil {
			s.screen.Sync()
		}
		s.dirty = true
	}
}

// handleAction applies a player command.
func (s *Session) handleAction(a Action) {
	switch a {
	case ActionQuit:
		s.running = false
	case ActionUp:
		s.moveCursor(-1, 0)
	case ActionDown:
		s.moveCursor(1, 0)
	case ActionLeft:
		s.moveCursor(0, -1)
	case ActionRight:
		s.moveCursor(0, 1)
	case ActionPaint:
		s.tap(brush.EventPrimary)
	case ActionMark:
		s.tap(brush.EventSecondary)
	case ActionCycleBrush:
		s.brush = (s.brush + 1) % len(s.brushes)
		s.status = ""
		s.dirty = true
	case ActionReset:
		if s.state != StateDesign {
			s.grid.Unsolve()
			s.refreshSolved()
			s.status = "Board reset."
		}
	case ActionCheck:
		s.status = s.grid.IsSolved().Reason
		s.dirty = true
	case ActionShare:
		s.status = codec.ShareQuery(s.grid, s.state != StateDesign)
		s.dirty = true
	}
}

func (s *Session) moveCursor(dr, dc int) {
	next := s.cursor.Translate(dr, dc)
	if s.grid.IsInBounds(next.Row, next.Col) {
		s.cursor = next
		s.dirty = true
	}
}

// tap paints the cell under the cursor as a one-cell stroke.
func (s *Session) tap(ev brush.Event) {
	b := s.activeBrush()
	if b.StrokeStart(s.grid, s.cursor.Row, s.cursor.Col, ev) {
		s.edits++
	}
	b.StrokeEnd(s.grid)
	s.refreshSolved()
}

// handlePointer turns mouse presses, drags and releases into brush strokes.
func (s *Session) handlePointer(buttons tcell.ButtonMask, x, y int) {
	cell, onBoard := ui.CellAt(x, y)
	onBoard = onBoard && s.grid.IsInBounds(cell.Row, cell.Col)

	pressed := buttons&(tcell.ButtonPrimary|tcell.ButtonSecondary) != 0
	switch {
	case pressed && !s.stroking:
		if !onBoard {
			return
		}
		ev := brush.EventPrimary
		if buttons&tcell.ButtonSecondary != 0 {
			ev = brush.EventSecondary
		}
		s.stroking = true
		s.cursor, s.last = cell, cell
		if s.activeBrush().StrokeStart(s.grid, cell.Row, cell.Col, ev) {
			s.edits++
		}
		s.dirty = true
	case pressed && s.stroking:
		if !onBoard || cell == s.last {
			return
		}
		s.cursor, s.last = cell, cell
		if s.activeBrush().StrokeMove(s.grid, cell.Row, cell.Col) {
			s.edits++
		}
		s.dirty = true
	case !pressed && s.stroking:
		s.stroking = false
		s.activeBrush().StrokeEnd(s.grid)
		s.refreshSolved()
	}
}

// refreshSolved moves between solving and solved as the board changes.
func (s *Session) refreshSolved() {
	if s.state == StateDesign {
		return
	}
	result := s.grid.IsSolved()
	switch {
	case result.Solved && s.state != StateSolved:
		s.state = StateSolved
		s.status = "Solved!"
		s.span.AddEvent("puzzle.solved", trace.WithAttributes(attribute.Int("session.edits", s.edits)))
		s.log.WithField("edits", s.edits).Info("puzzle solved")
	case !result.Solved && s.state == StateSolved:
		s.state = StateSolving
		s.status = ""
	}
	s.dirty = true
}
