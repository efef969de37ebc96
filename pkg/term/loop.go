package term

import (
	"bufio"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/intothevoid/legendchess/pkg/chess"
	"github.com/intothevoid/legendchess/pkg/controller"
	"github.com/intothevoid/legendchess/pkg/locale"
)

// Run reads one command per line from in and renders to out after each
// one, until in is exhausted. Unrecognised input is ignored like a misclick.
func Run(in io.Reader, out io.Writer, ctrl *controller.Controller) error {
	Render(out, ctrl)
	scanner := bufio.NewScanner(in)
	for scanner.Scan() {
		Handle(ctrl, scanner.Text())
		Render(out, ctrl)
	}
	if err := scanner.Err(); err != nil {
		return fmt.Errorf("read input: %w", err)
	}
	return nil
}

// Handle applies one command line to the controller.
//
//	en, tr       choose the language
//	y, n         answer the flavor prompt
//	e2 or "6 4"  click a square (algebraic or row and column)
//	r            restart
//	q            quit
func Handle(ctrl *controller.Controller, line string) {
	line = strings.TrimSpace(strings.ToLower(line))
	if line == "" {
		return
	}

	switch ctrl.Mode() {
	case controller.LanguageSelect:
		if l, err := locale.Parse(line); err == nil {
			ctrl.ChooseLocale(l)
		}
		return
	case controller.ModePrompt:
		switch line {
		case "y":
			ctrl.ChooseFlavor(true)
		case "n":
			ctrl.ChooseFlavor(false)
		}
		return
	}

	switch line {
	case "q":
		ctrl.Exit()
	case "r":
		ctrl.Restart()
	default:
		if sq, ok := parseClick(line); ok {
			ctrl.HandleSquareClick(sq)
		}
	}
}

func parseClick(line string) (chess.Square, bool) {
	if sq, err := chess.ParseSquare(line); err == nil {
		return sq, true
	}
	fields := strings.Fields(line)
	if len(fields) != 2 {
		return chess.Square{}, false
	}
	row, err := strconv.Atoi(fields[0])
	if err != nil {
		return chess.Square{}, false
	}
	col, err := strconv.Atoi(fields[1])
	if err != nil {
		return chess.Square{}, false
	}
	sq := chess.Square{Row: row, Col: col}
	return sq, sq.Valid()
}
