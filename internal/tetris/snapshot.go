package tetris

// Snapshot captures the complete engine state for determinism testing and display.
type Snapshot struct {
	State              State
	Active             ActivePiece
	Score              uint64
	Speed              int
	TicksSinceLastStep int
	PiecesLocked       uint64
	LinesCleared       uint64
	Width              int
	Height             int
	// Rows is the locked grid, top row first.
	Rows [][]Cell
}

// Snapshot returns a copy of the current state. It shares no memory with the engine.
func (e *Engine) Snapshot() Snapshot {
	return Snapshot{
		State:              e.State(),
		Active:             e.active,
		Score:              e.score,
		Speed:              e.speedTicksPerStep,
		TicksSinceLastStep: e.ticksSinceLastStep,
		PiecesLocked:       e.piecesLocked,
		LinesCleared:       e.linesCleared,
		Width:              e.board.Width(),
		Height:             e.board.Height(),
		Rows:               e.board.Rows(),
	}
}

// GameOver reports whether the snapshot was taken after the game ended.
func (s Snapshot) GameOver() bool {
	return s.State == StateGameOver
}

// Display returns the grid with the active piece drawn over it.
func (s Snapshot) Display(shapes Shapes) [][]Cell {
	rows := make([][]Cell, len(s.Rows))
	for y := range s.Rows {
		rows[y] = append([]Cell(nil), s.Rows[y]...)
	}
	cell := Filled(s.Active.Kind)
	for _, p := range s.Active.Cells(shapes) {
		if p.Y >= 0 && p.Y < len(rows) && p.X >= 0 && p.X < len(rows[p.Y]) {
			rows[p.Y][p.X] = cell
		}
	}
	return rows
}
