package tetris

import (
	"errors"
	"fmt"
	"io"
	"math/rand"
	"time"

	"github.com/charmbracelet/log"
)

// Gravity and scoring defaults. A driver tick is nominally 50ms, so the
// initial speed is one gravity step per second and the floor two per second.
const (
	DefaultInitialSpeed     = 20
	DefaultMinSpeed         = 10
	DefaultPiecesPerSpeedUp = 10
	DefaultLineBonusBase    = 100
)

// ErrInvalidSpeed is returned for speed settings that cannot drive gravity.
var ErrInvalidSpeed = errors.New("tetris: invalid speed settings")

// State is the externally visible phase of the engine.
type State int

const (
	// StateFalling means a piece is in play and commands are accepted.
	StateFalling State = iota
	// StateGameOver is terminal; only Reset leaves it.
	StateGameOver
)

func (s State) String() string {
	switch s {
	case StateFalling:
		return "falling"
	case StateGameOver:
		return "game_over"
	default:
		return "unknown"
	}
}

// Options configures an Engine. Zero fields take the package defaults.
type Options struct {
	Width  int
	Height int

	// InitialSpeed is the number of driver ticks per gravity step at the start.
	InitialSpeed int
	// MinSpeed is the fastest gravity the progression reaches.
	MinSpeed int
	// PiecesPerSpeedUp is how many locked pieces earn one tick of speed-up.
	PiecesPerSpeedUp int
	// FixedSpeed disables speed progression entirely.
	FixedSpeed bool

	// LineBonusBase scales the line clear bonus: clearing k rows scores (1<<k)*LineBonusBase.
	LineBonusBase uint64

	// Shapes overrides the piece patterns. Zero means DefaultShapes.
	Shapes Shapes

	// Source feeds piece selection. Nil seeds from the clock.
	Source rand.Source

	// Logger receives debug events. Nil discards them.
	Logger *log.Logger
}

// withDefaults fills unset fields.
func (o Options) withDefaults() Options {
	if o.Width == 0 {
		o.Width = DefaultWidth
	}
	if o.Height == 0 {
		o.Height = DefaultHeight
	}
	if o.InitialSpeed == 0 {
		o.InitialSpeed = DefaultInitialSpeed
	}
	if o.MinSpeed == 0 {
		o.MinSpeed = DefaultMinSpeed
	}
	if o.PiecesPerSpeedUp == 0 {
		o.PiecesPerSpeedUp = DefaultPiecesPerSpeedUp
	}
	if o.LineBonusBase == 0 {
		o.LineBonusBase = DefaultLineBonusBase
	}
	if o.Shapes.IsZero() {
		o.Shapes = DefaultShapes
	}
	if o.Source == nil {
		o.Source = rand.NewSource(time.Now().UnixNano())
	}
	if o.Logger == nil {
		o.Logger = log.New(io.Discard)
	}
	return o
}

// validate rejects settings that would make gravity stall or run backwards.
func (o Options) validate() error {
	if o.InitialSpeed < 1 || o.MinSpeed < 1 {
		return fmt.Errorf("%w: speeds must be positive (initial %d, min %d)", ErrInvalidSpeed, o.InitialSpeed, o.MinSpeed)
	}
	if o.MinSpeed > o.InitialSpeed {
		return fmt.Errorf("%w: min %d is slower than initial %d", ErrInvalidSpeed, o.MinSpeed, o.InitialSpeed)
	}
	if o.PiecesPerSpeedUp < 1 {
		return fmt.Errorf("%w: pieces per speed-up must be positive, got %d", ErrInvalidSpeed, o.PiecesPerSpeedUp)
	}
	return nil
}

// StepReport describes what a Step or Tick did.
type StepReport struct {
	// Stepped is true when a gravity step ran.
	Stepped bool
	// Fell is true when the piece moved down one row.
	Fell bool
	// Locked is true when the piece was committed to the board.
	Locked bool
	// LinesCleared is the number of rows removed by the lock.
	LinesCleared int
	// ScoreGained is the bonus earned by the lock.
	ScoreGained uint64
	// SpeedChanged is true when gravity accelerated.
	SpeedChanged bool
	// GameOver is true when the lock's respawn ended the game.
	GameOver bool
}

// Engine owns one game session: board, falling piece, score and speed.
//
// Engine is not safe for concurrent use. Hosts serialise calls, for example
// through Bubble Tea's update loop or a Runner.
type Engine struct {
	opts   Options
	rng    *rand.Rand
	logger *log.Logger

	board  *Board
	active ActivePiece

	score              uint64
	speedTicksPerStep  int
	ticksSinceLastStep int
	piecesLocked       uint64
	linesCleared       uint64
	gameOver           bool
}

// New validates the options and starts a session with the first piece spawned.
func New(opts Options) (*Engine, error) {
	opts = opts.withDefaults()
	if err := opts.validate(); err != nil {
		return nil, err
	}
	// Construct once up front so bad dimensions and patterns fail here.
	if _, err := NewBoardWithShapes(opts.Width, opts.Height, opts.Shapes); err != nil {
		return nil, err
	}

	e := &Engine{
		opts:   opts,
		rng:    rand.New(opts.Source),
		logger: opts.Logger,
	}
	e.Reset()
	return e, nil
}

// Reset discards the session and starts a new one on an empty board.
// The random source carries on, so successive games see different pieces.
func (e *Engine) Reset() {
	// Options were validated in New, so this cannot fail.
	board, _ := NewBoardWithShapes(e.opts.Width, e.opts.Height, e.opts.Shapes)
	e.board = board
	e.score = 0
	e.speedTicksPerStep = e.opts.InitialSpeed
	e.ticksSinceLastStep = 0
	e.piecesLocked = 0
	e.linesCleared = 0
	e.gameOver = false
	e.spawn()
}

// SpawnX is the column of the spawn box's left edge: the 4x4 box centred
// over the playfield.
func (e *Engine) SpawnX() int {
	return e.board.Width()/2 - 2
}

// spawn places a new random piece at the top. If it does not fit the game is
// over, and the blocked piece stays recorded as the active piece.
func (e *Engine) spawn() {
	e.spawnKind(PieceKind(e.rng.Intn(PieceCount)))
}

func (e *Engine) spawnKind(kind PieceKind) {
	e.active = ActivePiece{
		Kind:     kind,
		Rotation: 0,
		X:        e.SpawnX(),
		Y:        0,
	}
	e.ticksSinceLastStep = 0

	if !e.board.FitsPiece(e.active) {
		e.gameOver = true
		e.logger.Debug("game over", "piece", e.active, "score", e.score)
	}
}

// try commits next if it fits and the game is still running.
func (e *Engine) try(next ActivePiece) bool {
	if e.gameOver || !e.board.FitsPiece(next) {
		return false
	}
	e.active = next
	return true
}

// MoveLeft shifts the piece one column left. It reports whether the move applied.
func (e *Engine) MoveLeft() bool {
	return e.try(e.active.Moved(-1, 0))
}

// MoveRight shifts the piece one column right. It reports whether the move applied.
func (e *Engine) MoveRight() bool {
	return e.try(e.active.Moved(1, 0))
}

// SoftDrop moves the piece down one row and restarts the gravity countdown.
// A blocked soft drop does nothing; it never locks the piece.
func (e *Engine) SoftDrop() bool {
	if !e.try(e.active.Moved(0, 1)) {
		return false
	}
	e.ticksSinceLastStep = 0
	return true
}

// RotateCW turns the piece a quarter clockwise in place. There are no wall
// kicks: a rotation that does not fit is rejected.
func (e *Engine) RotateCW() bool {
	return e.try(e.active.Rotated())
}

// Tick advances the driver clock by one tick and runs a gravity step once
// speedTicksPerStep ticks have accumulated.
func (e *Engine) Tick() StepReport {
	if e.gameOver {
		return StepReport{}
	}
	e.ticksSinceLastStep++
	if e.ticksSinceLastStep < e.speedTicksPerStep {
		return StepReport{}
	}
	e.ticksSinceLastStep = 0
	return e.Step()
}

// Step performs one gravity step: the piece falls a row, or it locks, full
// rows clear, the score and speed update and the next piece spawns.
func (e *Engine) Step() StepReport {
	if e.gameOver {
		return StepReport{}
	}

	report := StepReport{Stepped: true}
	if e.try(e.active.Moved(0, 1)) {
		report.Fell = true
		return report
	}

	e.board.Lock(e.active)
	report.Locked = true
	e.logger.Debug("piece locked", "piece", e.active)

	cleared := e.board.ClearFullLines()
	report.LinesCleared = cleared
	if cleared > 0 {
		report.ScoreGained = LineBonus(cleared, e.opts.LineBonusBase)
		e.score += report.ScoreGained
		e.linesCleared += uint64(cleared)
		e.logger.Debug("lines cleared", "count", cleared, "bonus", report.ScoreGained, "score", e.score)
	}

	e.spawn()
	report.GameOver = e.gameOver

	e.piecesLocked++
	if e.speedUpDue() {
		e.speedTicksPerStep--
		report.SpeedChanged = true
		e.logger.Debug("speed up", "ticks_per_step", e.speedTicksPerStep, "pieces", e.piecesLocked)
	}

	return report
}

// speedUpDue reports whether the lock just counted earns a speed increase.
func (e *Engine) speedUpDue() bool {
	if e.opts.FixedSpeed {
		return false
	}
	return e.piecesLocked%uint64(e.opts.PiecesPerSpeedUp) == 0 &&
		e.speedTicksPerStep > e.opts.MinSpeed
}

// LineBonus returns the score for clearing lines rows at once: an
// exponential (1<<lines)*base, and nothing for zero rows.
func LineBonus(lines int, base uint64) uint64 {
	if lines <= 0 {
		return 0
	}
	return (uint64(1) << uint(lines)) * base
}

// Cell returns the locked board content at (x, y), ignoring the active piece.
func (e *Engine) Cell(x, y int) Cell {
	return e.board.Cell(x, y)
}

// DisplayCell returns what a renderer should show at (x, y): the active
// piece where it covers the square, otherwise the board.
func (e *Engine) DisplayCell(x, y int) Cell {
	lx, ly := x-e.active.X, y-e.active.Y
	if e.opts.Shapes.Occupies(e.active.Kind, e.active.Rotation, lx, ly) {
		return Filled(e.active.Kind)
	}
	return e.board.Cell(x, y)
}

// Active returns the falling piece.
func (e *Engine) Active() ActivePiece {
	return e.active
}

// ActiveCells returns the board squares covered by the falling piece.
func (e *Engine) ActiveCells() []Point {
	return e.active.Cells(e.opts.Shapes)
}

// Score returns the accumulated line clear bonus.
func (e *Engine) Score() uint64 {
	return e.score
}

// IsGameOver reports whether the session has ended.
func (e *Engine) IsGameOver() bool {
	return e.gameOver
}

// State returns the current phase.
func (e *Engine) State() State {
	if e.gameOver {
		return StateGameOver
	}
	return StateFalling
}

// Width returns the board width including walls.
func (e *Engine) Width() int {
	return e.board.Width()
}

// Height returns the board height including the floor.
func (e *Engine) Height() int {
	return e.board.Height()
}

// Speed returns the current number of driver ticks per gravity step.
func (e *Engine) Speed() int {
	return e.speedTicksPerStep
}

// TicksSinceLastStep returns the gravity accumulator.
func (e *Engine) TicksSinceLastStep() int {
	return e.ticksSinceLastStep
}

// PiecesLocked returns how many pieces have been committed this session.
func (e *Engine) PiecesLocked() uint64 {
	return e.piecesLocked
}

// LinesCleared returns how many rows have been removed this session.
func (e *Engine) LinesCleared() uint64 {
	return e.linesCleared
}

// Board returns a copy of the locked grid.
func (e *Engine) Board() *Board {
	return e.board.Clone()
}

// Options returns the effective options, defaults applied.
func (e *Engine) Options() Options {
	return e.opts
}
