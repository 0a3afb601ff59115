package tetris

import "fmt"

// ActivePiece is the falling piece. X and Y locate the top-left corner of
// its 4x4 box in board coordinates. Rotation is used modulo 4.
type ActivePiece struct {
	Kind     PieceKind
	Rotation int
	X        int
	Y        int
}

// Moved returns a copy of the piece shifted by (dx, dy).
func (p ActivePiece) Moved(dx, dy int) ActivePiece {
	p.X += dx
	p.Y += dy
	return p
}

// Rotated returns a copy of the piece turned one quarter clockwise.
func (p ActivePiece) Rotated() ActivePiece {
	p.Rotation = normalizeRotation(p.Rotation + 1)
	return p
}

// Orientation returns the rotation reduced to [0, 4).
func (p ActivePiece) Orientation() int {
	return normalizeRotation(p.Rotation)
}

// Cells returns the absolute board cells covered by the piece.
func (p ActivePiece) Cells(shapes Shapes) []Point {
	local := shapes.Cells(p.Kind, p.Rotation)
	for i := range local {
		local[i].X += p.X
		local[i].Y += p.Y
	}
	return local
}

func (p ActivePiece) String() string {
	return fmt.Sprintf("%s r%d @(%d,%d)", p.Kind, p.Orientation(), p.X, p.Y)
}
