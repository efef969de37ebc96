package ui

import (
	"image/color"

	"github.com/intothevoid/legendchess/pkg/chess"
	"github.com/intothevoid/legendchess/pkg/controller"
)

var (
	lightSquare    = color.NRGBA{R: 0xd3, G: 0xd3, B: 0xd3, A: 0xff} // light grey
	darkSquare     = color.NRGBA{R: 0x60, G: 0x60, B: 0x60, A: 0xff} // dark grey
	selectedSquare = color.NRGBA{R: 0x00, G: 0x64, B: 0x00, A: 0xff} // dark green
	targetSquare   = color.NRGBA{R: 0x90, G: 0xee, B: 0x90, A: 0xff} // light green
)

// palette colours the pieces of each side.
type palette struct {
	white, black color.Color
}

var (
	regularPalette = palette{
		white: color.NRGBA{R: 0xff, G: 0xff, B: 0xff, A: 0xff},
		black: color.NRGBA{R: 0x10, G: 0x10, B: 0x10, A: 0xff},
	}
	flavorPalette = palette{
		white: color.NRGBA{R: 0x8b, G: 0x00, B: 0x00, A: 0xff}, // dark red
		black: color.NRGBA{R: 0xff, G: 0xd7, B: 0x00, A: 0xff}, // yellow
	}
)

// glyphs are the solid unicode chess symbols; colour comes from the palette.
var glyphs = map[chess.Kind]string{
	chess.King:   "♚",
	chess.Queen:  "♛",
	chess.Rook:   "♜",
	chess.Bishop: "♝",
	chess.Knight: "♞",
	chess.Pawn:   "♟",
}

// Assets supplies the look of squares and pieces.
type Assets struct {
	flavor  bool
	palette palette
}

// NewAssets returns the regular piece set, or the alternate one when the
// flavor is active.
func NewAssets(flavor bool) *Assets {
	if flavor {
		return &Assets{flavor: true, palette: flavorPalette}
	}
	return &Assets{palette: regularPalette}
}

// Glyph returns the symbol drawn for p. Empty squares have none.
func (a *Assets) Glyph(p chess.Piece) string {
	return glyphs[p.Kind]
}

// PieceColor returns the colour p is drawn in.
func (a *Assets) PieceColor(p chess.Piece) color.Color {
	if p.Color == chess.Black {
		return a.palette.black
	}
	return a.palette.white
}

// TurnColor is the colour of the turn label for side c.
func (a *Assets) TurnColor(c chess.Color) color.Color {
	if c == chess.Black && !a.flavor {
		return darkSquare
	}
	return a.PieceColor(chess.Piece{Color: c, Kind: chess.King})
}

// SquareColor returns the fill for a square decoration.
func (a *Assets) SquareColor(d controller.Decoration) color.Color {
	switch d {
	case controller.Selected:
		return selectedSquare
	case controller.LegalDestination:
		return targetSquare
	case controller.NeutralDark:
		return darkSquare
	default:
		return lightSquare
	}
}
