package tetris

import (
	"errors"
	"fmt"

	"github.com/vovakirdan/tui-tetris/internal/core"
)

// Default board dimensions, border included: a 10x16 playfield framed by
// one border column on each side and a border row at the bottom.
const (
	DefaultWidth  = 12
	DefaultHeight = 18
)

// Smallest board that can hold a 4x4 box above the floor between the walls.
const (
	MinWidth  = PatternSize + 2
	MinHeight = PatternSize + 1
)

// ErrInvalidDimensions is returned for boards too small to play on.
var ErrInvalidDimensions = errors.New("tetris: invalid board dimensions")

// Cell is the content of one board square.
// The zero value is an empty cell.
type Cell uint8

const (
	CellEmpty  Cell = 0
	CellBorder Cell = 9
)

// Filled returns the cell value for a square occupied by a locked piece of kind k.
func Filled(k PieceKind) Cell {
	return Cell(k + 1)
}

// IsEmpty reports whether nothing occupies the cell.
func (c Cell) IsEmpty() bool {
	return c == CellEmpty
}

// IsBorder reports whether the cell is part of the fixed frame.
func (c Cell) IsBorder() bool {
	return c == CellBorder
}

// Kind returns the piece kind of a filled cell. ok is false for empty and border cells.
func (c Cell) Kind() (kind PieceKind, ok bool) {
	k := PieceKind(int(c) - 1)
	if !k.Valid() {
		return 0, false
	}
	return k, true
}

// Color returns the display color of the cell.
func (c Cell) Color() core.Color {
	switch {
	case c.IsEmpty():
		return ColorEmpty
	case c.IsBorder():
		return ColorBorder
	}
	if k, ok := c.Kind(); ok {
		return k.Color()
	}
	return core.ColorDefault
}

func (c Cell) String() string {
	switch {
	case c.IsEmpty():
		return "."
	case c.IsBorder():
		return "#"
	}
	if k, ok := c.Kind(); ok {
		return k.String()
	}
	return "?"
}

// Board is the playfield grid, border included. Rows are indexed top to bottom.
type Board struct {
	width  int
	height int
	cells  [][]Cell
	shapes Shapes
}

// NewBoard creates a w×h board using the default piece shapes.
func NewBoard(w, h int) (*Board, error) {
	return NewBoardWithShapes(w, h, DefaultShapes)
}

// NewBoardWithShapes creates a w×h board whose collision checks use the given shapes.
func NewBoardWithShapes(w, h int, shapes Shapes) (*Board, error) {
	if w < MinWidth || h < MinHeight {
		return nil, fmt.Errorf("%w: %dx%d, need at least %dx%d", ErrInvalidDimensions, w, h, MinWidth, MinHeight)
	}
	if err := shapes.Validate(); err != nil {
		return nil, err
	}

	b := &Board{
		width:  w,
		height: h,
		cells:  make([][]Cell, h),
		shapes: shapes,
	}
	for y := 0; y < h-1; y++ {
		b.cells[y] = b.newRow()
	}
	floor := make([]Cell, w)
	for x := range floor {
		floor[x] = CellBorder
	}
	b.cells[h-1] = floor
	return b, nil
}

// newRow returns an empty interior row framed by the side walls.
func (b *Board) newRow() []Cell {
	row := make([]Cell, b.width)
	row[0] = CellBorder
	row[b.width-1] = CellBorder
	return row
}

// Width returns the board width including both side walls.
func (b *Board) Width() int {
	return b.width
}

// Height returns the board height including the floor.
func (b *Board) Height() int {
	return b.height
}

// InteriorWidth returns the number of playable columns.
func (b *Board) InteriorWidth() int {
	return b.width - 2
}

// Shapes returns the pattern set used for collision checks.
func (b *Board) Shapes() Shapes {
	return b.shapes
}

// Cell returns the content at (x, y). Coordinates off the grid read as border.
func (b *Board) Cell(x, y int) Cell {
	if x < 0 || x >= b.width || y < 0 || y >= b.height {
		return CellBorder
	}
	return b.cells[y][x]
}

// Fits reports whether a piece of the given kind and rotation can sit with its
// box's top-left corner at (originX, originY). Every filled sub-cell must land
// on the grid and on an empty square.
func (b *Board) Fits(kind PieceKind, rotation, originX, originY int) bool {
	for ly := range PatternSize {
		for lx := range PatternSize {
			if !b.shapes.Occupies(kind, rotation, lx, ly) {
				continue
			}
			x, y := originX+lx, originY+ly
			if x < 0 || x >= b.width || y < 0 || y >= b.height {
				return false
			}
			if !b.cells[y][x].IsEmpty() {
				return false
			}
		}
	}
	return true
}

// FitsPiece is Fits for an ActivePiece.
func (b *Board) FitsPiece(p ActivePiece) bool {
	return b.Fits(p.Kind, p.Rotation, p.X, p.Y)
}

// Lock writes the piece into the grid. The caller must have checked Fits at
// the piece's position; Lock does not. Sub-cells that fall off the grid are
// dropped so a bad call can never corrupt memory.
func (b *Board) Lock(p ActivePiece) {
	cell := Filled(p.Kind)
	for _, c := range b.shapes.Cells(p.Kind, p.Rotation) {
		x, y := p.X+c.X, p.Y+c.Y
		if x < 0 || x >= b.width || y < 0 || y >= b.height {
			continue
		}
		b.cells[y][x] = cell
	}
}

// isFullRow reports whether every interior cell of row y is occupied.
func (b *Board) isFullRow(y int) bool {
	for x := 1; x < b.width-1; x++ {
		if b.cells[y][x].IsEmpty() {
			return false
		}
	}
	return true
}

// FullRows returns the indices of complete rows, bottom-most first.
// The floor row is never reported.
func (b *Board) FullRows() []int {
	var rows []int
	for y := b.height - 2; y >= 0; y-- {
		if b.isFullRow(y) {
			rows = append(rows, y)
		}
	}
	return rows
}

// ClearFullLines removes every complete row, drops the rows above it and
// refills the top with fresh empty rows. It returns the number of rows removed.
func (b *Board) ClearFullLines() int {
	full := b.FullRows()
	if len(full) == 0 {
		return 0
	}

	remove := make(map[int]bool, len(full))
	for _, y := range full {
		remove[y] = true
	}

	cells := make([][]Cell, 0, b.height)
	for range full {
		cells = append(cells, b.newRow())
	}
	for y := 0; y < b.height-1; y++ {
		if !remove[y] {
			cells = append(cells, b.cells[y])
		}
	}
	cells = append(cells, b.cells[b.height-1])
	b.cells = cells

	return len(full)
}

// Clone returns a deep copy of the board.
func (b *Board) Clone() *Board {
	c := &Board{
		width:  b.width,
		height: b.height,
		cells:  make([][]Cell, b.height),
		shapes: b.shapes,
	}
	for y := range b.cells {
		c.cells[y] = append([]Cell(nil), b.cells[y]...)
	}
	return c
}

// Rows returns a copy of the grid, one slice per row.
func (b *Board) Rows() [][]Cell {
	return b.Clone().cells
}

// String renders the board as text, one line per row, for debugging and tests.
func (b *Board) String() string {
	buf := make([]byte, 0, (b.width+1)*b.height)
	for y, row := range b.cells {
		if y > 0 {
			buf = append(buf, '\n')
		}
		for _, c := range row {
			buf = append(buf, c.String()...)
		}
	}
	return string(buf)
}
