package chess

import (
	"fmt"

	"github.com/notnil/chess"
)

// Color is the side a piece belongs to.
type Color int

const (
	White Color = iota
	Black
)

func (c Color) String() string {
	if c == Black {
		return "black"
	}
	return "white"
}

// Kind is the type of a piece, independent of its colour.
type Kind int

const (
	NoKind Kind = iota
	King
	Queen
	Rook
	Bishop
	Knight
	Pawn
)

// Piece identifies what stands on a square. The zero value is an empty square.
type Piece struct {
	Color Color
	Kind  Kind
}

// NoPiece is an empty square.
var NoPiece = Piece{}

// Empty reports whether the square holds no piece.
func (p Piece) Empty() bool {
	return p.Kind == NoKind
}

// Square is a board position in screen coordinates.
// Row 0 = rank 8 (top of board), col 0 = file a (left).
type Square struct {
	Row, Col int
}

// Valid reports whether the square lies on the 8x8 board.
func (s Square) Valid() bool {
	return s.Row >= 0 && s.Row < 8 && s.Col >= 0 && s.Col < 8
}

// String returns the algebraic name of the square, e.g. "e2" for (6, 4).
func (s Square) String() string {
	if !s.Valid() {
		return fmt.Sprintf("(%d,%d)", s.Row, s.Col)
	}
	return SquareFromRowCol(s.Row, s.Col).String()
}

// ParseSquare parses an algebraic square name such as "e2".
func ParseSquare(name string) (Square, error) {
	if len(name) != 2 {
		return Square{}, fmt.Errorf("invalid square %q", name)
	}
	file := int(name[0] - 'a')
	rank := int(name[1] - '1')
	if file < 0 || file > 7 || rank < 0 || rank > 7 {
		return Square{}, fmt.Errorf("invalid square %q", name)
	}
	return Square{Row: 7 - rank, Col: file}, nil
}

// SquareFromRowCol converts screen grid coordinates to a chess.Square.
func SquareFromRowCol(row, col int) chess.Square {
	rank := 7 - row // row 0 → rank 7 (8th rank)
	file := col     // col 0 → file 0 (a-file)
	return chess.NewSquare(chess.File(file), chess.Rank(rank))
}

// RowColFromSquare converts a chess.Square back to screen grid coordinates.
func RowColFromSquare(sq chess.Square) (row, col int) {
	row = 7 - int(sq.Rank())
	col = int(sq.File())
	return
}

func toSquare(sq chess.Square) Square {
	row, col := RowColFromSquare(sq)
	return Square{Row: row, Col: col}
}

func fromSquare(s Square) chess.Square {
	return SquareFromRowCol(s.Row, s.Col)
}

var kinds = map[chess.PieceType]Kind{
	chess.King:   King,
	chess.Queen:  Queen,
	chess.Rook:   Rook,
	chess.Bishop: Bishop,
	chess.Knight: Knight,
	chess.Pawn:   Pawn,
}

func toPiece(p chess.Piece) Piece {
	if p == chess.NoPiece {
		return NoPiece
	}
	c := White
	if p.Color() == chess.Black {
		c = Black
	}
	return Piece{Color: c, Kind: kinds[p.Type()]}
}

func toColor(c chess.Color) Color {
	if c == chess.Black {
		return Black
	}
	return White
}
