// Package quiz implements the shape quiz: round generation, click
// resolution and the tick-driven session state machine. It has no
// terminal dependencies; rendering and text metrics are injected.
package quiz

import (
	"fmt"

	"github.com/google/uuid"

	"github.com/vovakirdan/shapeclick/internal/config"
	"github.com/vovakirdan/shapeclick/internal/core"
	"github.com/vovakirdan/shapeclick/internal/palette"
)

// Status is the session's top-level state.
type Status int

const (
	StatusUninitialized Status = iota
	StatusInProgress
	StatusRoundWon
	StatusRoundLost
	StatusGameWon
	StatusGameLost
)

// String implements fmt.Stringer.
func (s Status) String() string {
	switch s {
	case StatusUninitialized:
		return "uninitialized"
	case StatusInProgress:
		return "in_progress"
	case StatusRoundWon:
		return "round_won"
	case StatusRoundLost:
		return "round_lost"
	case StatusGameWon:
		return "game_won"
	case StatusGameLost:
		return "game_lost"
	default:
		return "unknown"
	}
}

// Terminal reports whether gameplay has ended.
func (s Status) Terminal() bool {
	return s == StatusGameWon || s == StatusGameLost
}

// StepResult is returned by Advance after each tick.
type StepResult struct {
	Status Status
	Score  int
	Events []Event
}

// Session owns one player's game: score, countdown, pause and the
// current round. It is not safe for concurrent use; the host loop calls
// Advance once per tick.
type Session struct {
	id      uuid.UUID
	cfg     config.QuizConfig
	gen     *Generator
	measure TextMeasurer

	status    Status
	score     int
	countdown int
	pause     int
	round     *Round
	roundNo   int
	games     int
	tick      uint64

	events []Event
}

// NewSession creates an uninitialized session over the standard colour
// catalog and shape kinds.
func NewSession(cfg config.QuizConfig, measure TextMeasurer, rng Shuffler) (*Session, error) {
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("quiz: %w", err)
	}
	gen, err := NewGenerator(cfg, palette.Catalog(), AllKinds(), measure, rng)
	if err != nil {
		return nil, err
	}
	return &Session{
		id:      uuid.New(),
		cfg:     cfg,
		gen:     gen,
		measure: measure,
	}, nil
}

// ID returns the session identifier used in logs.
func (s *Session) ID() uuid.UUID { return s.id }

// Status returns the current status.
func (s *Session) Status() Status { return s.status }

// Score returns the current score.
func (s *Session) Score() int { return s.score }

// Countdown returns the ticks left on the game clock.
func (s *Session) Countdown() int { return s.countdown }

// Pause returns the ticks left in the post-answer pause.
func (s *Session) Pause() int { return s.pause }

// Round returns a copy of the current round, or nil before the first start.
func (s *Session) Round() *Round { return s.round.Clone() }

// Config returns the configuration the session runs with.
func (s *Session) Config() config.QuizConfig { return s.cfg }

// Start resets score and clock and deals the first round. Its events are
// reported by the next Advance.
func (s *Session) Start() error {
	round, err := s.gen.Generate()
	if err != nil {
		return err
	}
	s.games++
	s.score = 0
	s.countdown = s.cfg.MaxTicks()
	s.roundNo = 0
	s.status = StatusInProgress
	s.emit(GameStartedEvent{Game: s.games, Countdown: s.countdown})
	s.setRound(round)
	return nil
}

// Advance runs one tick. Any click in the frame is applied first, then the
// clock. Errors come only from text measurement and leave the session in
// its previous status.
func (s *Session) Advance(in core.InputFrame) (StepResult, error) {
	s.tick++

	var err error
	switch s.status {
	case StatusUninitialized:
		err = s.Start()

	case StatusInProgress:
		if in.HasClick() {
			err = s.answer(*in.Click)
		}
		if err == nil {
			s.countDown()
		}

	case StatusRoundWon:
		if s.countDown() {
			break
		}
		s.pause--
		if s.pause <= 0 {
			var round *Round
			round, err = s.gen.Generate()
			if err == nil {
				s.status = StatusInProgress
				s.setRound(round)
			}
		}

	case StatusRoundLost:
		if s.countDown() {
			break
		}
		s.pause--
		if s.pause <= 0 {
			s.finish(StatusGameLost, EndReasonWrongAnswer)
		}

	case StatusGameWon, StatusGameLost:
		if in.HasClick() || in.Has(core.ActionRestart) {
			err = s.Start()
		}
	}

	events := s.events
	s.events = nil
	return StepResult{Status: s.status, Score: s.score, Events: events}, err
}

// setRound installs a freshly generated round and resets the pause.
func (s *Session) setRound(r *Round) {
	s.round = r
	s.roundNo++
	s.pause = s.cfg.Gameplay.PauseTicks
	s.emit(RoundStartedEvent{Round: s.roundNo, Clue: r.Clue})
}

// answer applies a click during an active round.
func (s *Session) answer(click core.Point) error {
	hit := Resolve(click, s.round)
	if hit.Outcome == NoHit {
		return nil
	}

	text := "Oh No!"
	offset := -s.cfg.Layout.FeedbackOffsetX
	if hit.Outcome == Correct {
		text = "Yeah!"
		offset = s.cfg.Layout.FeedbackOffsetX
	}
	size := s.cfg.Layout.FeedbackSize
	w, err := s.measure.MeasureText(text, size)
	if err != nil {
		return fmt.Errorf("quiz: measure feedback %q: %w", text, err)
	}

	s.round.Labels = append(s.round.Labels, Label{
		Text:  text,
		Pos:   core.Point{X: hit.Shape.Bounds.X + offset + w/2, Y: s.cfg.Layout.FeedbackY},
		Color: palette.HighContrast(hit.Shape.Color.RGB),
		Size:  size,
	})

	if hit.Outcome == Correct {
		s.score++
		s.status = StatusRoundWon
	} else {
		s.status = StatusRoundLost
	}
	s.emit(AnsweredEvent{Round: s.roundNo, Outcome: hit.Outcome, Clicked: hit.Shape, Score: s.score})
	return nil
}

// countDown ticks the game clock and reports whether it just expired.
// Expiry decides the game by score and wins over any pending pause.
func (s *Session) countDown() bool {
	s.countdown--
	if s.countdown > 0 {
		return false
	}
	s.countdown = 0
	if s.score >= s.cfg.Gameplay.WinScore {
		s.finish(StatusGameWon, EndReasonTimeUp)
	} else {
		s.finish(StatusGameLost, EndReasonTimeUp)
	}
	return true
}

func (s *Session) finish(status Status, reason EndReason) {
	s.status = status
	s.emit(GameOverEvent{Status: status, Reason: reason, Score: s.score})
}

func (s *Session) emit(e Event) {
	s.events = append(s.events, e)
}
