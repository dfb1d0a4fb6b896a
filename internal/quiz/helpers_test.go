package quiz

import (
	"errors"
	"testing"
	"unicode/utf8"

	"github.com/vovakirdan/shapeclick/internal/config"
	"github.com/vovakirdan/shapeclick/internal/core"
)

// identityShuffler leaves every slice in its original order.
type identityShuffler struct{}

func (identityShuffler) Shuffle(int, func(i, j int)) {}

// reverseShuffler reverses every slice.
type reverseShuffler struct{}

func (reverseShuffler) Shuffle(n int, swap func(i, j int)) {
	for i := 0; i < n/2; i++ {
		swap(i, n-1-i)
	}
}

// fixedWidth measures 10 units per rune regardless of size.
var fixedWidth = MeasureFunc(func(text string, _ int) (int, error) {
	return utf8.RuneCountInString(text) * 10, nil
})

var errNoFont = errors.New("no font")

// failOn fails measurement for one exact string.
func failOn(bad string) TextMeasurer {
	return MeasureFunc(func(text string, size int) (int, error) {
		if text == bad {
			return 0, errNoFont
		}
		return fixedWidth(text, size)
	})
}

// Click points for the identity layout: black square, red circle,
// green hexagon, red circle decoy.
var (
	clickCorrect   = core.Point{X: 300, Y: 150}
	clickWrong     = core.Point{X: 600, Y: 150}
	clickDecoy     = core.Point{X: 640, Y: 500}
	clickNothing   = core.Point{X: 10, Y: 10}
	emptyFrame     = core.NewInputFrame()
	clickFrameFor  = func(p core.Point) core.InputFrame { return core.ClickAt(p.X, p.Y) }
	defaultsConfig = config.DefaultQuizConfig
)

func newTestSession(t *testing.T, mutate func(*config.QuizConfig)) *Session {
	t.Helper()
	cfg := defaultsConfig()
	if mutate != nil {
		mutate(&cfg)
	}
	s, err := NewSession(cfg, fixedWidth, identityShuffler{})
	if err != nil {
		t.Fatalf("NewSession() failed: %v", err)
	}
	if err := s.Start(); err != nil {
		t.Fatalf("Start() failed: %v", err)
	}
	drainEvents(s)
	return s
}

// drainEvents discards queued events so the next Advance reports only its own.
func drainEvents(s *Session) []Event {
	events := s.events
	s.events = nil
	return events
}

// firstEvent returns res.Events[0] as a T, failing the test when there is
// no event or it has another type.
func firstEvent[T Event](t *testing.T, res StepResult) T {
	t.Helper()
	if len(res.Events) == 0 {
		t.Fatalf("expected an event, got none (status %s)", res.Status)
	}
	ev, ok := res.Events[0].(T)
	if !ok {
		t.Fatalf("first event = %#v, expected %T", res.Events[0], *new(T))
	}
	return ev
}

func advance(t *testing.T, s *Session, in core.InputFrame) StepResult {
	t.Helper()
	res, err := s.Advance(in)
	if err != nil {
		t.Fatalf("Advance() failed: %v", err)
	}
	return res
}

func idle(t *testing.T, s *Session, ticks int) {
	t.Helper()
	for range ticks {
		advance(t, s, emptyFrame)
	}
}
