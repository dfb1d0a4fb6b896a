package quiz

import (
	"errors"
	"math/rand"
	"testing"

	"github.com/vovakirdan/shapeclick/internal/config"
	"github.com/vovakirdan/shapeclick/internal/core"
)

func TestNewSessionRejectsInvalidConfig(t *testing.T) {
	cfg := config.DefaultQuizConfig()
	cfg.Gameplay.TickRate = 0

	if _, err := NewSession(cfg, fixedWidth, identityShuffler{}); !errors.Is(err, config.ErrInvalid) {
		t.Errorf("NewSession() error = %v, expected config.ErrInvalid", err)
	}
	if _, err := NewSession(config.DefaultQuizConfig(), nil, identityShuffler{}); !errors.Is(err, ErrConfig) {
		t.Errorf("NewSession() without measurer error = %v, expected ErrConfig", err)
	}
}

func TestFirstAdvanceStartsGame(t *testing.T) {
	s, err := NewSession(config.DefaultQuizConfig(), fixedWidth, identityShuffler{})
	if err != nil {
		t.Fatalf("NewSession() failed: %v", err)
	}
	if s.Status() != StatusUninitialized {
		t.Fatalf("new session should be uninitialized, got %s", s.Status())
	}
	if s.Round() != nil {
		t.Fatal("no round before start")
	}

	res := advance(t, s, emptyFrame)
	if res.Status != StatusInProgress {
		t.Fatalf("expected in_progress, got %s", res.Status)
	}
	if s.Countdown() != 1200 || s.Score() != 0 || s.Pause() != 30 {
		t.Errorf("start state: countdown=%d score=%d pause=%d", s.Countdown(), s.Score(), s.Pause())
	}

	var started, dealt bool
	for _, e := range res.Events {
		switch ev := e.(type) {
		case GameStartedEvent:
			started = ev.Game == 1 && ev.Countdown == 1200
		case RoundStartedEvent:
			dealt = ev.Round == 1 && ev.Clue == "black square"
		}
	}
	if !started || !dealt {
		t.Errorf("expected game and round start events, got %#v", res.Events)
	}
}

func TestIdleGameIsLost(t *testing.T) {
	s := newTestSession(t, nil)

	for i := 1; i < 1200; i++ {
		advance(t, s, emptyFrame)
		if s.Countdown() != 1200-i {
			t.Fatalf("after %d ticks countdown = %d", i, s.Countdown())
		}
		if s.Status() != StatusInProgress {
			t.Fatalf("after %d ticks status = %s", i, s.Status())
		}
	}

	res := advance(t, s, emptyFrame)
	if res.Status != StatusGameLost || s.Countdown() != 0 {
		t.Fatalf("expected game_lost at 0, got %s at %d", res.Status, s.Countdown())
	}
	if len(res.Events) != 1 {
		t.Fatalf("expected one event, got %#v", res.Events)
	}
	over := firstEvent[GameOverEvent](t, res)
	if over.Reason != EndReasonTimeUp || over.Status != StatusGameLost {
		t.Errorf("unexpected event %#v", over)
	}
}

func TestCorrectClickThenPause(t *testing.T) {
	s := newTestSession(t, nil)

	res := advance(t, s, clickFrameFor(clickCorrect))
	if res.Status != StatusRoundWon || s.Score() != 1 {
		t.Fatalf("expected round_won with score 1, got %s/%d", res.Status, s.Score())
	}

	labels := s.Round().Labels
	if len(labels) != 3 {
		t.Fatalf("expected feedback label, got %d labels", len(labels))
	}
	feedback := labels[2]
	want := Label{Text: "Yeah!", Pos: core.Point{X: 240 + 10 + 25, Y: 220}, Color: core.White, Size: 10}
	if feedback != want {
		t.Errorf("feedback = %+v, expected %+v", feedback, want)
	}

	idle(t, s, 29)
	if s.Status() != StatusRoundWon || s.Pause() != 1 {
		t.Fatalf("pause should still run: %s pause=%d", s.Status(), s.Pause())
	}

	res = advance(t, s, emptyFrame)
	if res.Status != StatusInProgress {
		t.Fatalf("expected in_progress after 30 ticks, got %s", res.Status)
	}
	if s.Score() != 1 {
		t.Errorf("score should stay 1, got %d", s.Score())
	}
	if snap := s.Snapshot(); snap.Round != 2 || snap.Pause != 30 {
		t.Errorf("expected round 2 with pause reset, got %+v", snap)
	}
	if n := len(s.Round().Labels); n != 2 {
		t.Errorf("new round should drop feedback, got %d labels", n)
	}
	if s.Countdown() != 1200-31 {
		t.Errorf("clock should keep running through the pause, countdown = %d", s.Countdown())
	}
}

func TestClicksIgnoredDuringPause(t *testing.T) {
	s := newTestSession(t, nil)
	advance(t, s, clickFrameFor(clickCorrect))
	advance(t, s, clickFrameFor(clickCorrect))
	advance(t, s, clickFrameFor(clickWrong))

	if s.Status() != StatusRoundWon || s.Score() != 1 {
		t.Errorf("clicks during the pause must not count: %s score=%d", s.Status(), s.Score())
	}
}

func TestWrongAnswerEndsGameRegardlessOfScore(t *testing.T) {
	s := newTestSession(t, nil)

	for i := 0; i < 10; i++ {
		advance(t, s, clickFrameFor(clickCorrect))
		idle(t, s, 30)
	}
	if s.Score() != 10 || s.Status() != StatusInProgress {
		t.Fatalf("setup: score=%d status=%s", s.Score(), s.Status())
	}

	res := advance(t, s, clickFrameFor(clickWrong))
	if res.Status != StatusRoundLost || s.Score() != 10 {
		t.Fatalf("expected round_lost keeping score, got %s/%d", res.Status, s.Score())
	}
	feedback := s.Round().Labels[2]
	if feedback.Text != "Oh No!" || feedback.Pos.X != 540-10+30 {
		t.Errorf("unexpected feedback %+v", feedback)
	}

	idle(t, s, 29)
	if s.Status() != StatusRoundLost {
		t.Fatalf("still pausing, got %s", s.Status())
	}
	res = advance(t, s, emptyFrame)
	if res.Status != StatusGameLost || s.Score() != 10 {
		t.Errorf("expected game_lost with score 10, got %s/%d", res.Status, s.Score())
	}
	over := firstEvent[GameOverEvent](t, res)
	if over.Reason != EndReasonWrongAnswer {
		t.Errorf("expected wrong-answer game over, got %#v", res.Events)
	}
}

func TestDecoyClickIsIncorrect(t *testing.T) {
	s := newTestSession(t, nil)

	res := advance(t, s, clickFrameFor(clickDecoy))
	if res.Status != StatusRoundLost {
		t.Fatalf("decoy click should lose the round, got %s", res.Status)
	}
	if len(res.Events) != 1 {
		t.Fatalf("expected only the answer event, got %#v", res.Events)
	}
	ans := firstEvent[AnsweredEvent](t, res)
	if !ans.Clicked.Decoy || ans.Outcome != Incorrect {
		t.Errorf("unexpected event %#v", res.Events)
	}
}

func TestStartEventsReportedOnce(t *testing.T) {
	s, err := NewSession(defaultsConfig(), fixedWidth, identityShuffler{})
	if err != nil {
		t.Fatalf("NewSession() failed: %v", err)
	}
	if err := s.Start(); err != nil {
		t.Fatalf("Start() failed: %v", err)
	}

	res := advance(t, s, clickFrameFor(clickCorrect))
	if len(res.Events) != 3 {
		t.Fatalf("expected start, deal and answer events, got %#v", res.Events)
	}
	firstEvent[GameStartedEvent](t, res)
	if _, ok := res.Events[1].(RoundStartedEvent); !ok {
		t.Errorf("second event = %#v, expected RoundStartedEvent", res.Events[1])
	}
	if _, ok := res.Events[2].(AnsweredEvent); !ok {
		t.Errorf("third event = %#v, expected AnsweredEvent", res.Events[2])
	}

	res = advance(t, s, emptyFrame)
	if len(res.Events) != 0 {
		t.Errorf("start events should not repeat, got %#v", res.Events)
	}
}

func TestMissedClickIsIgnored(t *testing.T) {
	s := newTestSession(t, nil)

	res := advance(t, s, clickFrameFor(clickNothing))
	if res.Status != StatusInProgress || len(res.Events) != 0 {
		t.Errorf("miss should be silent, got %s %#v", res.Status, res.Events)
	}
	if s.Countdown() != 1199 {
		t.Errorf("clock should still tick, countdown = %d", s.Countdown())
	}
}

func shortClock(ticks int) func(*config.QuizConfig) {
	return func(c *config.QuizConfig) {
		c.Gameplay.TickRate = 1
		c.Gameplay.MaxTimeSeconds = ticks
	}
}

func TestExpiryWinsByScore(t *testing.T) {
	s := newTestSession(t, func(c *config.QuizConfig) {
		shortClock(10)(c)
		c.Gameplay.WinScore = 1
	})

	advance(t, s, clickFrameFor(clickCorrect))
	idle(t, s, 8)
	if s.Status() != StatusRoundWon {
		t.Fatalf("expected round_won while paused, got %s", s.Status())
	}

	res := advance(t, s, emptyFrame)
	if res.Status != StatusGameWon {
		t.Errorf("expected game_won on expiry during pause, got %s", res.Status)
	}
}

func TestExpiryOnAnswerTick(t *testing.T) {
	s := newTestSession(t, func(c *config.QuizConfig) {
		shortClock(1)(c)
		c.Gameplay.WinScore = 1
	})

	res := advance(t, s, clickFrameFor(clickCorrect))
	if res.Status != StatusGameWon || s.Score() != 1 {
		t.Errorf("answer and expiry on the same tick should win, got %s/%d", res.Status, s.Score())
	}
}

func TestExpiryBeatsPauseOnSameTick(t *testing.T) {
	// Clock and pause both run out on tick 31
	s := newTestSession(t, shortClock(31))

	advance(t, s, clickFrameFor(clickCorrect))
	idle(t, s, 29)
	if s.Countdown() != 1 || s.Pause() != 1 {
		t.Fatalf("setup: countdown=%d pause=%d", s.Countdown(), s.Pause())
	}

	res := advance(t, s, emptyFrame)
	if res.Status != StatusGameLost {
		t.Errorf("expiry should win over the pending round, got %s", res.Status)
	}
	for _, e := range res.Events {
		if _, ok := e.(RoundStartedEvent); ok {
			t.Error("no new round should be dealt after expiry")
		}
	}
}

func TestExpiryDuringRoundLost(t *testing.T) {
	s := newTestSession(t, func(c *config.QuizConfig) {
		shortClock(5)(c)
	})

	advance(t, s, clickFrameFor(clickWrong))
	idle(t, s, 3)
	res := advance(t, s, emptyFrame)
	if res.Status != StatusGameLost {
		t.Fatalf("expected game_lost, got %s", res.Status)
	}
	over := firstEvent[GameOverEvent](t, res)
	if over.Reason != EndReasonTimeUp {
		t.Errorf("expected time-up reason, got %s", over.Reason)
	}
}

func TestRestartFromTerminal(t *testing.T) {
	tests := []struct {
		name  string
		input core.InputFrame
	}{
		{"click", clickFrameFor(clickNothing)},
		{"restart key", func() core.InputFrame {
			f := core.NewInputFrame()
			f.Set(core.ActionRestart)
			return f
		}()},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			s := newTestSession(t, nil)
			advance(t, s, clickFrameFor(clickCorrect))
			idle(t, s, 30)
			advance(t, s, clickFrameFor(clickWrong))
			idle(t, s, 30)
			if s.Status() != StatusGameLost {
				t.Fatalf("setup: expected game_lost, got %s", s.Status())
			}

			idle(t, s, 5)
			if s.Status() != StatusGameLost {
				t.Fatal("terminal state should hold without input")
			}

			res := advance(t, s, tc.input)
			if res.Status != StatusInProgress {
				t.Fatalf("expected restart, got %s", res.Status)
			}
			if s.Score() != 0 || s.Countdown() != 1200 || s.Snapshot().Game != 2 {
				t.Errorf("restart should reset: %+v", s.Snapshot())
			}
		})
	}
}

func TestCountdownInvariantUnderRandomPlay(t *testing.T) {
	rng := rand.New(rand.NewSource(99))
	s, err := NewSession(config.DefaultQuizConfig(), fixedWidth, rand.New(rand.NewSource(3)))
	if err != nil {
		t.Fatalf("NewSession() failed: %v", err)
	}
	maxTicks := s.Config().MaxTicks()

	prev := maxTicks
	for i := 0; i < 20000; i++ {
		in := core.NewInputFrame()
		if rng.Intn(20) == 0 {
			in.SetClick(core.Point{X: rng.Intn(1280), Y: rng.Intn(720)})
		}
		before := s.Status()
		score := s.Score()
		res := advance(t, s, in)

		if s.Countdown() > maxTicks || s.Countdown() < 0 {
			t.Fatalf("countdown %d out of range", s.Countdown())
		}
		if before == StatusInProgress || before == StatusRoundWon || before == StatusRoundLost {
			if s.Countdown() != prev-1 {
				t.Fatalf("tick %d: countdown %d -> %d", i, prev, s.Countdown())
			}
		}
		if res.Score < 0 || (res.Score > score+1 && !before.Terminal()) {
			t.Fatalf("tick %d: score jumped %d -> %d", i, score, res.Score)
		}
		if r := s.Round(); r != nil && r.CorrectIndex() != 0 {
			t.Fatalf("tick %d: correct shape should be first", i)
		}
		prev = s.Countdown()
	}
}

func TestDeterminism(t *testing.T) {
	run := func() []Snapshot {
		s, err := NewSession(config.DefaultQuizConfig(), fixedWidth, rand.New(rand.NewSource(12345)))
		if err != nil {
			t.Fatalf("NewSession() failed: %v", err)
		}
		var snaps []Snapshot
		for i := 0; i < 400; i++ {
			in := core.NewInputFrame()
			if i%37 == 5 {
				if r := s.Round(); r != nil {
					c := r.Shapes[0].Bounds.Center()
					in.SetClick(c)
				}
			}
			advance(t, s, in)
			snaps = append(snaps, s.Snapshot())
		}
		return snaps
	}

	a, b := run(), run()
	for i := range a {
		if a[i] != b[i] {
			t.Fatalf("tick %d diverged: %+v vs %+v", i, a[i], b[i])
		}
	}
	if a[len(a)-1].Score == 0 {
		t.Error("scripted clicks should have scored")
	}
}

func TestMeasureErrorKeepsState(t *testing.T) {
	s, err := NewSession(config.DefaultQuizConfig(), failOn("Yeah!"), identityShuffler{})
	if err != nil {
		t.Fatalf("NewSession() failed: %v", err)
	}
	if err := s.Start(); err != nil {
		t.Fatalf("Start() failed: %v", err)
	}

	_, err = s.Advance(clickFrameFor(clickCorrect))
	if !errors.Is(err, errNoFont) {
		t.Fatalf("Advance() error = %v, expected errNoFont", err)
	}
	if s.Status() != StatusInProgress || s.Score() != 0 {
		t.Errorf("failed tick should not change state: %s/%d", s.Status(), s.Score())
	}
}

func TestStatusString(t *testing.T) {
	tests := map[Status]string{
		StatusUninitialized: "uninitialized",
		StatusInProgress:    "in_progress",
		StatusRoundWon:      "round_won",
		StatusRoundLost:     "round_lost",
		StatusGameWon:       "game_won",
		StatusGameLost:      "game_lost",
		Status(42):          "unknown",
	}
	for st, want := range tests {
		if st.String() != want {
			t.Errorf("Status(%d).String() = %q, expected %q", int(st), st.String(), want)
		}
	}
	if !StatusGameWon.Terminal() || StatusRoundLost.Terminal() {
		t.Error("Terminal() misclassifies statuses")
	}
}
