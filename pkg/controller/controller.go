// Package controller tracks what the player sees and has selected, and
// forwards clicks on the board to the rules engine as moves.
//
// A Controller is not safe for concurrent use; all calls are expected from
// the UI thread.
package controller

import (
	"log"
	"slices"

	"github.com/intothevoid/legendchess/pkg/chess"
	"github.com/intothevoid/legendchess/pkg/locale"
)

// Controller drives the selection/move state machine of one board.
type Controller struct {
	engine chess.Engine
	game   chess.Game
	exit   func()

	mode      Mode
	display   DisplayConfig
	selection *chess.Square
}

// New creates a controller on the language selection screen with a fresh
// game. exit is called by Exit and is expected not to return.
func New(engine chess.Engine, exit func()) *Controller {
	return &Controller{
		engine: engine,
		game:   engine.NewGame(),
		exit:   exit,
		mode:   LanguageSelect,
	}
}

// Mode returns the active screen.
func (c *Controller) Mode() Mode {
	return c.mode
}

// Display returns the onboarding choices.
func (c *Controller) Display() DisplayConfig {
	return c.display
}

// Game returns the current session for read-only queries while rendering.
func (c *Controller) Game() chess.Game {
	return c.game
}

// Selection returns the selected square, if any.
func (c *Controller) Selection() (chess.Square, bool) {
	if c.selection == nil {
		return chess.Square{}, false
	}
	return *c.selection, true
}

func (c *Controller) setMode(m Mode) {
	log.Printf("screen %s -> %s", c.mode, m)
	c.mode = m
}

// ChooseLocale handles the language buttons. The default locale starts the
// game, the alternate one asks for the flavor first. It reports whether the
// choice was accepted.
func (c *Controller) ChooseLocale(l locale.Locale) bool {
	if c.mode != LanguageSelect {
		return false
	}
	c.display = DisplayConfig{Locale: l}
	if l == locale.English {
		c.setMode(Playing)
	} else {
		c.setMode(ModePrompt)
	}
	return true
}

// ChooseFlavor handles the answer to the flavor prompt.
func (c *Controller) ChooseFlavor(on bool) bool {
	if c.mode != ModePrompt {
		return false
	}
	c.display.Flavor = on
	c.setMode(Playing)
	return true
}

// HandleSquareClick selects a piece of the side to move, or moves the
// selected piece when sq is one of its legal destinations. Any other click
// is ignored.
func (c *Controller) HandleSquareClick(sq chess.Square) {
	if c.mode != Playing || !sq.Valid() {
		return
	}

	if sel, ok := c.Selection(); ok {
		if slices.Contains(c.game.LegalDestinations(sel, true), sq) {
			if err := c.game.Move(sel, sq); err != nil {
				log.Printf("move %s%s rejected: %v", sel, sq, err)
				return
			}
			log.Printf("move %s%s, position %s", sel, sq, c.position())
			c.selection = nil
			return
		}
	}

	if c.ownsSquare(sq) {
		c.selection = &sq
	}
}

// ownsSquare reports whether sq holds a piece of the side to move.
func (c *Controller) ownsSquare(sq chess.Square) bool {
	p := c.game.PieceAt(sq)
	return !p.Empty() && p.Color == c.game.Turn()
}

// position is the game's FEN when the engine can provide one.
func (c *Controller) position() string {
	if r, ok := c.game.(chess.Recorder); ok {
		return r.FEN()
	}
	return "-"
}

// Decoration returns how sq is highlighted: the selection first, then the
// selection's legal destinations, otherwise the square's own colour.
func (c *Controller) Decoration(sq chess.Square) Decoration {
	var targets []chess.Square
	if sel, ok := c.Selection(); ok {
		targets = c.game.LegalDestinations(sel, true)
	}
	return c.decorate(sq, targets)
}

// Decorations evaluates every square of the board for one render pass.
func (c *Controller) Decorations() [8][8]Decoration {
	var targets []chess.Square
	if sel, ok := c.Selection(); ok {
		targets = c.game.LegalDestinations(sel, true)
	}
	var out [8][8]Decoration
	for row := 0; row < 8; row++ {
		for col := 0; col < 8; col++ {
			out[row][col] = c.decorate(chess.Square{Row: row, Col: col}, targets)
		}
	}
	return out
}

func (c *Controller) decorate(sq chess.Square, targets []chess.Square) Decoration {
	if sel, ok := c.Selection(); ok {
		if sel == sq {
			return Selected
		}
		if slices.Contains(targets, sq) {
			return LegalDestination
		}
	}
	if (sq.Row+sq.Col)%2 == 0 {
		return NeutralLight
	}
	return NeutralDark
}

// CheckStatus queries the game status for a render pass and moves to the
// game over screen once the engine reports the game finished.
func (c *Controller) CheckStatus() chess.Status {
	status := c.game.Status()
	if status == chess.GameOver && c.mode == Playing {
		if r, ok := c.game.(chess.Recorder); ok {
			log.Printf("game over: %s", r.Outcome())
		}
		c.setMode(GameOver)
	}
	return status
}

// Restart replaces the game with a fresh one and clears the selection. The
// onboarding choices are kept.
func (c *Controller) Restart() {
	c.game = c.engine.NewGame()
	c.selection = nil
	log.Printf("restart, position %s", c.position())
	if c.mode == GameOver {
		c.setMode(Playing)
	}
}

// Exit ends the program from the game or game over screen.
func (c *Controller) Exit() {
	if c.mode != Playing && c.mode != GameOver {
		return
	}
	log.Printf("exit")
	if c.exit != nil {
		c.exit()
	}
}
