package controller

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/intothevoid/legendchess/pkg/chess"
	"github.com/intothevoid/legendchess/pkg/locale"
)

type move struct{ from, to chess.Square }

// fakeGame answers from fixed tables and records moves.
type fakeGame struct {
	pieces map[chess.Square]chess.Piece
	dests  map[chess.Square][]chess.Square
	turn   chess.Color
	status chess.Status
	moves  []move
}

func (g *fakeGame) LegalDestinations(from chess.Square, filterSelfCheck bool) []chess.Square {
	return g.dests[from]
}

func (g *fakeGame) Move(from, to chess.Square) error {
	g.moves = append(g.moves, move{from, to})
	return nil
}

func (g *fakeGame) PieceAt(sq chess.Square) chess.Piece { return g.pieces[sq] }
func (g *fakeGame) Turn() chess.Color                  { return g.turn }
func (g *fakeGame) Status() chess.Status               { return g.status }
func (g *fakeGame) Result() chess.Result               { return chess.NoResult }

type fakeEngine struct {
	games []*fakeGame
}

var (
	e2 = chess.Square{Row: 6, Col: 4}
	e3 = chess.Square{Row: 5, Col: 4}
	e4 = chess.Square{Row: 4, Col: 4}
	d2 = chess.Square{Row: 6, Col: 3}
	e7 = chess.Square{Row: 1, Col: 4}
	h5 = chess.Square{Row: 3, Col: 7}
)

func (e *fakeEngine) NewGame() chess.Game {
	g := &fakeGame{
		pieces: map[chess.Square]chess.Piece{
			e2: {Color: chess.White, Kind: chess.Pawn},
			d2: {Color: chess.White, Kind: chess.Pawn},
			e7: {Color: chess.Black, Kind: chess.Pawn},
		},
		dests: map[chess.Square][]chess.Square{
			e2: {e3, e4},
			d2: {{Row: 5, Col: 3}, {Row: 4, Col: 3}},
		},
		turn: chess.White,
	}
	e.games = append(e.games, g)
	return g
}

func (e *fakeEngine) current() *fakeGame {
	return e.games[len(e.games)-1]
}

func newPlaying(t *testing.T) (*Controller, *fakeEngine) {
	t.Helper()
	eng := &fakeEngine{}
	c := New(eng, nil)
	require.True(t, c.ChooseLocale(locale.English))
	require.Equal(t, Playing, c.Mode())
	return c, eng
}

func TestNewController(t *testing.T) {
	c := New(&fakeEngine{}, nil)
	assert.Equal(t, LanguageSelect, c.Mode())
	_, ok := c.Selection()
	assert.False(t, ok)
	assert.NotNil(t, c.Game())
}

func TestDecorationWithoutSelectionIsParity(t *testing.T) {
	c, _ := newPlaying(t)
	for row := 0; row < 8; row++ {
		for col := 0; col < 8; col++ {
			want := NeutralDark
			if (row+col)%2 == 0 {
				want = NeutralLight
			}
			sq := chess.Square{Row: row, Col: col}
			if got := c.Decoration(sq); got != want {
				t.Errorf("Decoration(%s) = %s, want %s", sq, got, want)
			}
		}
	}
}

func TestDecorationWithSelection(t *testing.T) {
	c, _ := newPlaying(t)
	c.HandleSquareClick(e2)

	assert.Equal(t, Selected, c.Decoration(e2))
	assert.Equal(t, LegalDestination, c.Decoration(e3))
	assert.Equal(t, LegalDestination, c.Decoration(e4))
	assert.Equal(t, NeutralLight, c.Decoration(chess.Square{Row: 0, Col: 0}))

	all := c.Decorations()
	for row := 0; row < 8; row++ {
		for col := 0; col < 8; col++ {
			sq := chess.Square{Row: row, Col: col}
			assert.Equal(t, c.Decoration(sq), all[row][col], "square %s", sq)
		}
	}
}

func TestClickSelectsOwnPiece(t *testing.T) {
	c, _ := newPlaying(t)
	c.HandleSquareClick(e2)

	sel, ok := c.Selection()
	require.True(t, ok)
	assert.Equal(t, e2, sel)
}

func TestClickEmptySquareWithoutSelection(t *testing.T) {
	c, eng := newPlaying(t)
	c.HandleSquareClick(h5)

	_, ok := c.Selection()
	assert.False(t, ok)
	assert.Equal(t, Playing, c.Mode())
	assert.Empty(t, eng.current().moves)
}

func TestClickOpponentPieceWithoutSelection(t *testing.T) {
	c, _ := newPlaying(t)
	c.HandleSquareClick(e7)

	_, ok := c.Selection()
	assert.False(t, ok)
}

func TestClickIllegalSquareKeepsSelection(t *testing.T) {
	c, eng := newPlaying(t)
	c.HandleSquareClick(e2)
	c.HandleSquareClick(h5) // empty, not a destination
	c.HandleSquareClick(e7) // opponent, not a destination

	sel, ok := c.Selection()
	require.True(t, ok)
	assert.Equal(t, e2, sel)
	assert.Empty(t, eng.current().moves)
}

func TestClickOtherOwnPieceReplacesSelection(t *testing.T) {
	c, _ := newPlaying(t)
	c.HandleSquareClick(e2)
	c.HandleSquareClick(d2)

	sel, ok := c.Selection()
	require.True(t, ok)
	assert.Equal(t, d2, sel)
}

func TestClickDestinationMoves(t *testing.T) {
	c, eng := newPlaying(t)
	c.HandleSquareClick(e2)
	c.HandleSquareClick(e4)

	_, ok := c.Selection()
	assert.False(t, ok)
	assert.Equal(t, []move{{e2, e4}}, eng.current().moves)
}

func TestClickIgnoredOutsidePlaying(t *testing.T) {
	eng := &fakeEngine{}
	c := New(eng, nil)
	c.HandleSquareClick(e2)

	_, ok := c.Selection()
	assert.False(t, ok)

	c.HandleSquareClick(chess.Square{Row: 8, Col: 0})
	assert.Equal(t, LanguageSelect, c.Mode())
}

func TestOnboardingEnglish(t *testing.T) {
	c := New(&fakeEngine{}, nil)
	require.True(t, c.ChooseLocale(locale.English))

	assert.Equal(t, Playing, c.Mode())
	assert.Equal(t, DisplayConfig{Locale: locale.English}, c.Display())
	assert.False(t, c.ChooseFlavor(true), "no flavor prompt for the default locale")
	assert.False(t, c.ChooseLocale(locale.Turkish), "locale is fixed after onboarding")
	assert.Equal(t, locale.English, c.Display().Locale)
}

func TestOnboardingTurkish(t *testing.T) {
	for _, flavor := range []bool{true, false} {
		c := New(&fakeEngine{}, nil)
		require.True(t, c.ChooseLocale(locale.Turkish))
		assert.Equal(t, ModePrompt, c.Mode())

		require.True(t, c.ChooseFlavor(flavor))
		assert.Equal(t, Playing, c.Mode())
		assert.Equal(t, DisplayConfig{Locale: locale.Turkish, Flavor: flavor}, c.Display())
		assert.Equal(t, flavor, c.Display().FlavorActive())
	}
}

func TestGameOverAfterStatusCheck(t *testing.T) {
	c, eng := newPlaying(t)
	assert.Equal(t, chess.InProgress, c.CheckStatus())
	assert.Equal(t, Playing, c.Mode())

	eng.current().status = chess.Check
	assert.Equal(t, chess.Check, c.CheckStatus())
	assert.Equal(t, Playing, c.Mode())

	eng.current().status = chess.GameOver
	assert.Equal(t, chess.GameOver, c.CheckStatus())
	assert.Equal(t, GameOver, c.Mode())

	// the board is frozen once the game ended
	c.HandleSquareClick(e2)
	_, ok := c.Selection()
	assert.False(t, ok)
}

func TestStatusCheckDuringOnboarding(t *testing.T) {
	eng := &fakeEngine{}
	c := New(eng, nil)
	eng.current().status = chess.GameOver
	c.CheckStatus()
	assert.Equal(t, LanguageSelect, c.Mode())
}

func TestRestart(t *testing.T) {
	c, eng := newPlaying(t)
	first := c.Game()
	c.HandleSquareClick(e2)
	c.Restart()

	_, ok := c.Selection()
	assert.False(t, ok)
	assert.NotSame(t, first, c.Game())
	assert.Len(t, eng.games, 2)
	assert.Equal(t, Playing, c.Mode())
}

func TestRestartFromGameOver(t *testing.T) {
	c, eng := newPlaying(t)
	c.Restart()
	eng.current().status = chess.GameOver
	c.CheckStatus()
	require.Equal(t, GameOver, c.Mode())

	c.Restart()
	assert.Equal(t, Playing, c.Mode())
	assert.Equal(t, chess.InProgress, c.Game().Status())
	assert.Equal(t, DisplayConfig{Locale: locale.English}, c.Display())
}

func TestRestartKeepsFlavor(t *testing.T) {
	c := New(&fakeEngine{}, nil)
	c.ChooseLocale(locale.Turkish)
	c.ChooseFlavor(true)
	c.Restart()
	assert.Equal(t, DisplayConfig{Locale: locale.Turkish, Flavor: true}, c.Display())
}

func TestExit(t *testing.T) {
	exits := 0
	c := New(&fakeEngine{}, func() { exits++ })

	c.Exit()
	assert.Equal(t, 0, exits, "no exit button during onboarding")

	c.ChooseLocale(locale.English)
	c.Exit()
	assert.Equal(t, 1, exits)
}

// Only the documented edges are reachable from any mode.
func TestModeTransitions(t *testing.T) {
	allowed := map[Mode]map[Mode]bool{
		LanguageSelect: {LanguageSelect: true, Playing: true, ModePrompt: true},
		ModePrompt:     {ModePrompt: true, Playing: true},
		Playing:        {Playing: true, GameOver: true},
		GameOver:       {GameOver: true, Playing: true},
	}
	actions := []func(c *Controller, eng *fakeEngine){
		func(c *Controller, _ *fakeEngine) { c.ChooseLocale(locale.English) },
		func(c *Controller, _ *fakeEngine) { c.ChooseLocale(locale.Turkish) },
		func(c *Controller, _ *fakeEngine) { c.ChooseFlavor(true) },
		func(c *Controller, _ *fakeEngine) { c.ChooseFlavor(false) },
		func(c *Controller, _ *fakeEngine) { c.HandleSquareClick(e2) },
		func(c *Controller, _ *fakeEngine) { c.HandleSquareClick(e4) },
		func(c *Controller, _ *fakeEngine) { c.Restart() },
		func(c *Controller, _ *fakeEngine) { c.Exit() },
		func(c *Controller, _ *fakeEngine) { c.CheckStatus() },
		func(c *Controller, eng *fakeEngine) {
			eng.current().status = chess.GameOver
			c.CheckStatus()
		},
	}

	// reach every mode, then apply every action once
	setups := map[Mode]func() (*Controller, *fakeEngine){
		LanguageSelect: func() (*Controller, *fakeEngine) {
			eng := &fakeEngine{}
			return New(eng, nil), eng
		},
		ModePrompt: func() (*Controller, *fakeEngine) {
			eng := &fakeEngine{}
			c := New(eng, nil)
			c.ChooseLocale(locale.Turkish)
			return c, eng
		},
		Playing: func() (*Controller, *fakeEngine) {
			eng := &fakeEngine{}
			c := New(eng, nil)
			c.ChooseLocale(locale.English)
			return c, eng
		},
		GameOver: func() (*Controller, *fakeEngine) {
			eng := &fakeEngine{}
			c := New(eng, nil)
			c.ChooseLocale(locale.English)
			eng.current().status = chess.GameOver
			c.CheckStatus()
			return c, eng
		},
	}

	for from, setup := range setups {
		for i, action := range actions {
			c, eng := setup()
			require.Equal(t, from, c.Mode())
			action(c, eng)
			if !allowed[from][c.Mode()] {
				t.Errorf("action %d moved %s -> %s", i, from, c.Mode())
			}
		}
	}
}
