// Package term is a text front-end for the board controller.
package term

import (
	"fmt"
	"io"

	"github.com/fatih/color"

	"github.com/intothevoid/legendchess/pkg/chess"
	"github.com/intothevoid/legendchess/pkg/controller"
	"github.com/intothevoid/legendchess/pkg/locale"
)

// Unicode chess pieces
var unicodePieces = map[chess.Piece]rune{
	{Color: chess.White, Kind: chess.King}:   '♔',
	{Color: chess.White, Kind: chess.Queen}:  '♕',
	{Color: chess.White, Kind: chess.Rook}:   '♖',
	{Color: chess.White, Kind: chess.Bishop}: '♗',
	{Color: chess.White, Kind: chess.Knight}: '♘',
	{Color: chess.White, Kind: chess.Pawn}:   '♙',
	{Color: chess.Black, Kind: chess.King}:   '♚',
	{Color: chess.Black, Kind: chess.Queen}:  '♛',
	{Color: chess.Black, Kind: chess.Rook}:   '♜',
	{Color: chess.Black, Kind: chess.Bishop}: '♝',
	{Color: chess.Black, Kind: chess.Knight}: '♞',
	{Color: chess.Black, Kind: chess.Pawn}:   '♟',
}

var squareStyles = map[controller.Decoration]*color.Color{
	controller.NeutralLight:     color.New(color.BgWhite, color.FgBlack),
	controller.NeutralDark:      color.New(color.BgHiBlack, color.FgBlack),
	controller.Selected:         color.New(color.BgGreen, color.FgBlack),
	controller.LegalDestination: color.New(color.BgHiGreen, color.FgBlack),
}

// plainMarks stand in for the background colours when colour is off.
var plainMarks = map[controller.Decoration][2]rune{
	controller.NeutralLight:     {' ', ' '},
	controller.NeutralDark:      {' ', ' '},
	controller.Selected:         {'[', ']'},
	controller.LegalDestination: {'(', ')'},
}

var (
	headingStyle = color.New(color.Bold)
	flavorWhite  = color.New(color.FgRed, color.Bold)
	flavorBlack  = color.New(color.FgYellow, color.Bold)
)

// RenderBoard writes the board with the decorations of one render pass.
func RenderBoard(w io.Writer, ctrl *controller.Controller) {
	decorations := ctrl.Decorations()
	game := ctrl.Game()

	for row := 0; row < 8; row++ {
		fmt.Fprintf(w, "%d ", 8-row)
		for col := 0; col < 8; col++ {
			d := decorations[row][col]
			p := game.PieceAt(chess.Square{Row: row, Col: col})
			glyph := '·'
			if !p.Empty() {
				glyph = unicodePieces[p]
			}
			if color.NoColor {
				marks := plainMarks[d]
				fmt.Fprintf(w, "%c%c%c", marks[0], glyph, marks[1])
				continue
			}
			squareStyles[d].Fprintf(w, " %c ", glyph)
		}
		fmt.Fprintln(w)
	}
	fmt.Fprintln(w, "   a  b  c  d  e  f  g  h")
}

// Render writes the whole screen for the controller's current mode.
func Render(w io.Writer, ctrl *controller.Controller) {
	status := ctrl.CheckStatus()
	display := ctrl.Display()
	tr := display.Translator()

	switch ctrl.Mode() {
	case controller.LanguageSelect:
		headingStyle.Fprintln(w, locale.Bilingual(locale.Welcome))
		fmt.Fprintln(w, locale.Bilingual(locale.ChooseLanguage))
		for _, l := range locale.Locales {
			fmt.Fprintf(w, "  %s: %s\n", l, l.Name())
		}

	case controller.ModePrompt:
		headingStyle.Fprintln(w, tr.T(locale.ModePrompt))
		fmt.Fprintf(w, "  y: %s\n  n: %s\n", tr.T(locale.Yes), tr.T(locale.No))

	case controller.Playing:
		RenderBoard(w, ctrl)
		turn := ctrl.Game().Turn()
		msg := locale.TurnMessage(turn)
		style := flavorWhite
		if turn == chess.Black {
			style = flavorBlack
		}
		if display.FlavorActive() {
			style.Fprintln(w, tr.T(msg))
		} else {
			fmt.Fprintln(w, tr.T(msg))
		}
		if status == chess.Check {
			fmt.Fprintln(w, tr.T(locale.StatusCheck))
		} else {
			fmt.Fprintln(w, tr.T(locale.StatusInProgress))
		}
		fmt.Fprintf(w, "q: %s  r: %s\n", tr.T(locale.Quit), tr.T(locale.Restart))

	case controller.GameOver:
		RenderBoard(w, ctrl)
		headingStyle.Fprintln(w, tr.T(locale.GameOver))
		fmt.Fprintln(w, tr.T(locale.ResultMessage(ctrl.Game().Result())))
		fmt.Fprintf(w, "q: %s  r: %s\n", tr.T(locale.Quit), tr.T(locale.Restart))
	}
}
