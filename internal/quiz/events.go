package quiz

// Event reports something that happened during a tick.
// The platform logs events; the quiz never does I/O itself.
type Event interface {
	quizEvent()
}

// GameStartedEvent is emitted when a game (re)starts.
type GameStartedEvent struct {
	Game      int // 1 for the first game of the session
	Countdown int
}

func (GameStartedEvent) quizEvent() {}

// RoundStartedEvent is emitted whenever a new challenge is shown.
type RoundStartedEvent struct {
	Round int
	Clue  string
}

func (RoundStartedEvent) quizEvent() {}

// AnsweredEvent is emitted when a click hits a shape.
type AnsweredEvent struct {
	Round   int
	Outcome Outcome
	Clicked Shape
	Score   int
}

func (AnsweredEvent) quizEvent() {}

// GameOverEvent is emitted when the game reaches a terminal status.
type GameOverEvent struct {
	Status Status
	Reason EndReason
	Score  int
}

func (GameOverEvent) quizEvent() {}

// EndReason describes why a game ended.
type EndReason int

const (
	EndReasonTimeUp      EndReason = iota // Countdown reached zero
	EndReasonWrongAnswer                  // Pause after a wrong answer ran out
)

func (r EndReason) String() string {
	switch r {
	case EndReasonTimeUp:
		return "time up"
	case EndReasonWrongAnswer:
		return "wrong answer"
	default:
		return "unknown"
	}
}
