package chess

// Status is the coarse state of a game as shown to the player.
type Status int

const (
	InProgress Status = iota
	Check
	GameOver
)

func (s Status) String() string {
	switch s {
	case Check:
		return "check"
	case GameOver:
		return "game over"
	default:
		return "in progress"
	}
}

// Result is the outcome of a finished game.
type Result int

const (
	NoResult Result = iota
	WhiteWon
	BlackWon
	Draw
)

func (r Result) String() string {
	switch r {
	case WhiteWon:
		return "white won"
	case BlackWon:
		return "black won"
	case Draw:
		return "draw"
	default:
		return "in progress"
	}
}

// Engine creates game sessions. Any rules implementation satisfying Game
// can be plugged into the board controller.
type Engine interface {
	NewGame() Game
}

// Game is a single mutable game session owned by the rules engine.
type Game interface {
	// LegalDestinations returns the squares the piece on from may move to.
	// With filterSelfCheck set, moves leaving the own king in check are excluded.
	LegalDestinations(from Square, filterSelfCheck bool) []Square
	// Move plays from→to. Callers check LegalDestinations first.
	Move(from, to Square) error
	PieceAt(sq Square) Piece
	Turn() Color
	Status() Status
	Result() Result
}

// Recorder is implemented by sessions that can describe themselves for the
// log.
type Recorder interface {
	// FEN encodes the current position.
	FEN() string
	// Outcome describes how the game ended.
	Outcome() string
}
