// Package tetris implements a deterministic falling-block puzzle engine.
//
// The package has no knowledge of terminals, timers or input devices. A host
// owns an Engine, calls its command methods in response to input, calls Tick
// (or Step) at a fixed cadence and reads the board back for rendering.
package tetris

import (
	"errors"
	"fmt"
	"strings"

	"github.com/vovakirdan/tui-tetris/internal/core"
)

// PieceKind identifies one of the seven tetrominoes.
type PieceKind int

const (
	PieceI PieceKind = iota
	PieceZ
	PieceS
	PieceO
	PieceL
	PieceJ
	PieceT
)

// PieceCount is the number of distinct tetrominoes.
const PieceCount = 7

// PatternSize is the side of the square box every pattern is drawn in.
const PatternSize = 4

// ErrInvalidPattern is returned for shape patterns that are not a 4x4
// grid of 'X' and '.' with exactly four filled cells.
var ErrInvalidPattern = errors.New("tetris: invalid piece pattern")

// Shapes holds one 16-character row-major pattern per piece kind.
// 'X' marks a filled cell, '.' an empty one.
type Shapes [PieceCount]string

// DefaultShapes are the classic tetromino patterns, indexed by PieceKind.
var DefaultShapes = Shapes{
	PieceI: "..X...X...X...X.",
	PieceZ: "..X..XX..X......",
	PieceS: ".X...XX...X.....",
	PieceO: ".....XX..XX.....",
	PieceL: ".X...X...XX.....",
	PieceJ: "..X...X..XX.....",
	PieceT: ".X...XX...X.....",
}

// pieceColors is presentation metadata. The engine never interprets it.
var pieceColors = [PieceCount]core.Color{
	PieceI: core.ColorCyan,
	PieceZ: core.ColorRed,
	PieceS: core.ColorGreen,
	PieceO: core.ColorYellow,
	PieceL: core.ColorOrange,
	PieceJ: core.ColorBlue,
	PieceT: core.ColorPurple,
}

// Neutral colors for cells that hold no piece.
const (
	ColorEmpty  = core.ColorDarkGray
	ColorBorder = core.ColorGray
)

var pieceNames = [PieceCount]string{"I", "Z", "S", "O", "L", "J", "T"}

// Valid reports whether k names one of the seven tetrominoes.
func (k PieceKind) Valid() bool {
	return k >= 0 && k < PieceCount
}

// String returns the single-letter name of the piece.
func (k PieceKind) String() string {
	if !k.Valid() {
		return fmt.Sprintf("PieceKind(%d)", int(k))
	}
	return pieceNames[k]
}

// Color returns the display color associated with the piece.
func (k PieceKind) Color() core.Color {
	if !k.Valid() {
		return core.ColorDefault
	}
	return pieceColors[k]
}

// Point is a cell coordinate, either local to a 4x4 pattern or absolute on a board.
type Point struct {
	X, Y int
}

// RotatedIndex maps a local (x, y) cell of the 4x4 box to the index of the
// pattern character that occupies it when the piece is turned rotation
// quarter-turns clockwise.
func RotatedIndex(localX, localY, rotation int) int {
	switch normalizeRotation(rotation) {
	case 0:
		return localY*4 + localX
	case 1:
		return 12 + localY - localX*4
	case 2:
		return 15 - localY*4 - localX
	default:
		return 3 - localY + localX*4
	}
}

func normalizeRotation(rotation int) int {
	r := rotation % 4
	if r < 0 {
		r += 4
	}
	return r
}

// Validate checks every pattern in the set.
func (s Shapes) Validate() error {
	for k, p := range s {
		if err := ValidatePattern(p); err != nil {
			return fmt.Errorf("piece %s: %w", PieceKind(k), err)
		}
	}
	return nil
}

// IsZero reports whether no patterns were supplied.
func (s Shapes) IsZero() bool {
	return s == Shapes{}
}

// Occupies reports whether the local cell (localX, localY) is filled for the
// given kind and rotation. Coordinates outside [0,4) are never filled.
func (s Shapes) Occupies(kind PieceKind, rotation, localX, localY int) bool {
	if !kind.Valid() || localX < 0 || localX >= PatternSize || localY < 0 || localY >= PatternSize {
		return false
	}
	return s[kind][RotatedIndex(localX, localY, rotation)] == 'X'
}

// Cells lists the filled local cells for the given kind and rotation,
// scanning rows top to bottom.
func (s Shapes) Cells(kind PieceKind, rotation int) []Point {
	cells := make([]Point, 0, 4)
	for y := range PatternSize {
		for x := range PatternSize {
			if s.Occupies(kind, rotation, x, y) {
				cells = append(cells, Point{X: x, Y: y})
			}
		}
	}
	return cells
}

// OccupiesCell is Occupies on the default shape set.
func OccupiesCell(kind PieceKind, rotation, localX, localY int) bool {
	return DefaultShapes.Occupies(kind, rotation, localX, localY)
}

// Cells is Shapes.Cells on the default shape set.
func Cells(kind PieceKind, rotation int) []Point {
	return DefaultShapes.Cells(kind, rotation)
}

// ValidatePattern checks a single 16-character pattern.
func ValidatePattern(p string) error {
	if len(p) != PatternSize*PatternSize {
		return fmt.Errorf("%w: length %d, want %d", ErrInvalidPattern, len(p), PatternSize*PatternSize)
	}
	if strings.Trim(p, "X.") != "" {
		return fmt.Errorf("%w: %q contains characters other than 'X' and '.'", ErrInvalidPattern, p)
	}
	if n := strings.Count(p, "X"); n != 4 {
		return fmt.Errorf("%w: %q has %d filled cells, want 4", ErrInvalidPattern, p, n)
	}
	return nil
}
