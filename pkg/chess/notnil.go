package chess

import (
	"fmt"

	"github.com/notnil/chess"
)

// NotnilEngine is a rules engine backed by github.com/notnil/chess.
type NotnilEngine struct {
	fen string
}

// NewEngine creates an engine whose games start from fen. An empty fen
// means the standard starting position. Every game must open with White to
// move in an unfinished position, so any other fen is rejected.
func NewEngine(fen string) (*NotnilEngine, error) {
	if fen == "" {
		return &NotnilEngine{}, nil
	}
	opt, err := chess.FEN(fen)
	if err != nil {
		return nil, fmt.Errorf("invalid start position: %w", err)
	}
	g := chess.NewGame(opt)
	if g.Position().Turn() != chess.White {
		return nil, fmt.Errorf("start position %q: white must be to move", fen)
	}
	if g.Outcome() != chess.NoOutcome {
		return nil, fmt.Errorf("start position %q: game already decided by %s", fen, g.Method())
	}
	return &NotnilEngine{fen: fen}, nil
}

// NewGame starts a fresh game session.
func (e *NotnilEngine) NewGame() Game {
	if e.fen == "" {
		return &GameState{game: chess.NewGame()}
	}
	// validated in NewEngine
	opt, _ := chess.FEN(e.fen)
	return &GameState{game: chess.NewGame(opt)}
}

// GameState tracks one chess game.
type GameState struct {
	game *chess.Game
}

// FEN encodes the current position.
func (gs *GameState) FEN() string {
	return gs.game.FEN()
}

// LegalDestinations lists the target squares of the valid moves starting on
// from. notnil/chess only generates fully legal moves, so the result is
// always filtered for self-check.
func (gs *GameState) LegalDestinations(from Square, filterSelfCheck bool) []Square {
	if !from.Valid() {
		return nil
	}
	origin := fromSquare(from)
	seen := make(map[chess.Square]bool)
	var targets []Square
	for _, m := range gs.game.ValidMoves() {
		if m.S1() != origin || seen[m.S2()] {
			continue
		}
		// promotions produce one move per piece type on the same square
		seen[m.S2()] = true
		targets = append(targets, toSquare(m.S2()))
	}
	return targets
}

// Move applies the valid move from→to. Promotions default to a queen.
func (gs *GameState) Move(from, to Square) error {
	if !from.Valid() || !to.Valid() {
		return fmt.Errorf("move %s%s: square off the board", from, to)
	}
	s1, s2 := fromSquare(from), fromSquare(to)

	var match *chess.Move
	for _, m := range gs.game.ValidMoves() {
		if m.S1() != s1 || m.S2() != s2 {
			continue
		}
		if match == nil || m.Promo() == chess.Queen {
			match = m
		}
	}
	if match == nil {
		return fmt.Errorf("move %s%s: not a legal move", from, to)
	}
	return gs.game.Move(match)
}

// PieceAt returns the piece standing on sq.
func (gs *GameState) PieceAt(sq Square) Piece {
	if !sq.Valid() {
		return NoPiece
	}
	return toPiece(gs.game.Position().Board().Piece(fromSquare(sq)))
}

// Turn returns the side to move.
func (gs *GameState) Turn() Color {
	return toColor(gs.game.Position().Turn())
}

// Status reports whether the game is over, the side to move is in check,
// or play simply continues.
func (gs *GameState) Status() Status {
	if gs.game.Outcome() != chess.NoOutcome {
		return GameOver
	}
	moves := gs.game.Moves()
	if len(moves) > 0 && moves[len(moves)-1].HasTag(chess.Check) {
		return Check
	}
	return InProgress
}

// Result maps the game outcome.
func (gs *GameState) Result() Result {
	switch gs.game.Outcome() {
	case chess.WhiteWon:
		return WhiteWon
	case chess.BlackWon:
		return BlackWon
	case chess.Draw:
		return Draw
	default:
		return NoResult
	}
}

// Outcome describes the result and how it came about, e.g.
// "black won by Checkmate".
func (gs *GameState) Outcome() string {
	r := gs.Result()
	if r == NoResult {
		return r.String()
	}
	return fmt.Sprintf("%s by %s", r, gs.game.Method())
}
