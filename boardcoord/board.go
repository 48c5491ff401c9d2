package boardcoord

import (
	"github.com/cttdev/mags/geom"
)

// Board holds the physical dimensions (in millimetres) of a chessboard,
// used to map algebraic squares onto the world plane. The origin sits at
// the a1 corner; x runs a->h, y runs 1->8.
type Board struct {
	Length float64 // extent along y (rank direction)
	Width  float64 // extent along x (file direction)
}

// New returns a Board with the given length (rank direction) and width
// (file direction), both in millimetres. Panics if either is <= 0.
func New(length, width float64) Board {
	if length <= 0 || width <= 0 {
		panic("boardcoord: length and width must be positive")
	}

	return Board{Length: length, Width: width}
}

// Square returns the centre of the square named by file ('a'-'h') and rank
// ('1'-'8'), in the same millimetre units as b's dimensions. Each square's
// centre sits at (index+0.5) square-widths from the origin along its axis,
// matching board.py's square_positions construction.
func (b Board) Square(file, rank byte) (geom.Point, error) {
	fi, ri, ok := indices(file, rank)
	if !ok {
		return geom.Point{}, ErrInvalidSquare
	}

	squareWidth := b.Width / 8.0
	squareLength := b.Length / 8.0

	return geom.Point{
		X: (float64(fi) + 0.5) * squareWidth,
		Y: (float64(ri) + 0.5) * squareLength,
	}, nil
}

// FromPoint is Square's inverse: it returns the algebraic square whose
// centre lies within tol millimetres of p, or ErrOffBoard if none does.
func (b Board) FromPoint(p geom.Point, tol float64) (file, rank byte, err error) {
	squareWidth := b.Width / 8.0
	squareLength := b.Length / 8.0

	for fi := 0; fi < 8; fi++ {
		for ri := 0; ri < 8; ri++ {
			centre := geom.Point{
				X: (float64(fi) + 0.5) * squareWidth,
				Y: (float64(ri) + 0.5) * squareLength,
			}
			if geom.Dist(p, centre) <= tol {
				return 'a' + byte(fi), '1' + byte(ri), nil
			}
		}
	}

	return 0, 0, ErrOffBoard
}

// indices converts an algebraic file/rank pair into zero-based board
// indices, reporting false if either byte is out of range.
func indices(file, rank byte) (fi, ri int, ok bool) {
	if file < 'a' || file > 'h' {
		return 0, 0, false
	}
	if rank < '1' || rank > '8' {
		return 0, 0, false
	}

	return int(file - 'a'), int(rank - '1'), true
}
