package settings

import (
	"errors"
	"testing"
)

func TestOverrideBlockForm(t *testing.T) {
	s := New()
	if err := s.Configure(Values{"hello": "World", "debug": false}); err != nil {
		t.Fatalf("configure: %v", err)
	}

	guard := s.Override(Values{"debug": true})
	restore := guard.Enter()
	if got := s.MustGet("debug"); got != true {
		t.Fatalf("expected override inside scope, got %v", got)
	}
	if got := s.MustGet("hello"); got != "World" {
		t.Fatalf("expected untouched key to fall through, got %v", got)
	}
	restore()
	if got := s.MustGet("debug"); got != false {
		t.Fatalf("expected pre-scope value after exit, got %v", got)
	}
}

func TestOverrideRestoresOnError(t *testing.T) {
	s := New()
	if err := s.Configure(Values{"debug": false}); err != nil {
		t.Fatalf("configure: %v", err)
	}
	depth := s.Depth()

	boom := errors.New("boom")
	err := s.Override(Values{"debug": true}).Run(func() error {
		if got := s.MustGet("debug"); got != true {
			t.Fatalf("expected override inside scope, got %v", got)
		}
		return boom
	})
	if !errors.Is(err, boom) {
		t.Fatalf("expected error to propagate, got %v", err)
	}
	if got := s.MustGet("debug"); got != false {
		t.Fatalf("expected restoration after failing scope, got %v", got)
	}
	if s.Depth() != depth {
		t.Fatalf("expected depth %d after failing scope, got %d", depth, s.Depth())
	}
}

func TestOverrideRestoresOnPanic(t *testing.T) {
	s := New()
	if err := s.Configure(Values{"debug": false}); err != nil {
		t.Fatalf("configure: %v", err)
	}
	depth := s.Depth()

	func() {
		defer func() {
			if recovered := recover(); recovered != "boom" {
				t.Fatalf("expected panic to propagate, got %v", recovered)
			}
		}()
		_ = s.Override(Values{"debug": true}).Run(func() error {
			panic("boom")
		})
	}()

	if got := s.MustGet("debug"); got != false {
		t.Fatalf("expected restoration after panicking scope, got %v", got)
	}
	if s.Depth() != depth {
		t.Fatalf("expected depth %d after panic, got %d", depth, s.Depth())
	}
}

func TestNestedOverridesCompose(t *testing.T) {
	s := New()
	if err := s.Configure(Values{"k": 0}); err != nil {
		t.Fatalf("configure: %v", err)
	}

	outer := s.Override(Values{"k": 1}).Enter()
	if got := s.MustGet("k"); got != 1 {
		t.Fatalf("expected outer override, got %v", got)
	}

	inner := s.Override(Values{"k": 2}).Enter()
	if got := s.MustGet("k"); got != 2 {
		t.Fatalf("expected inner override, got %v", got)
	}
	inner()

	if got := s.MustGet("k"); got != 1 {
		t.Fatalf("expected outer override after inner exit, got %v", got)
	}
	outer()

	if got := s.MustGet("k"); got != 0 {
		t.Fatalf("expected pre-scope value after outer exit, got %v", got)
	}
}

func TestWrappedFunctionReentrancy(t *testing.T) {
	s := New()
	if err := s.Configure(Values{"depth_flag": "off"}); err != nil {
		t.Fatalf("configure: %v", err)
	}
	depth := s.Depth()

	guard := s.Override(Values{"depth_flag": "on"})
	remaining := 3
	var wrapped func() error
	wrapped = guard.Wrap(func() error {
		if got := s.MustGet("depth_flag"); got != "on" {
			t.Fatalf("expected override at recursion depth %d, got %v", remaining, got)
		}
		if remaining == 0 {
			return nil
		}
		remaining--
		return wrapped()
	})

	if err := wrapped(); err != nil {
		t.Fatalf("wrapped: %v", err)
	}
	if s.Depth() != depth {
		t.Fatalf("expected depth %d after outermost return, got %d", depth, s.Depth())
	}
	if got := s.MustGet("depth_flag"); got != "off" {
		t.Fatalf("expected restoration after outermost return, got %v", got)
	}
}

func TestGuardReusableAcrossEntries(t *testing.T) {
	s := New()
	if err := s.Configure(Values{"mode": "normal"}); err != nil {
		t.Fatalf("configure: %v", err)
	}

	guard := s.Override(Values{"mode": "scoped"})
	for i := 0; i < 3; i++ {
		restore := guard.Enter()
		if got := s.MustGet("mode"); got != "scoped" {
			t.Fatalf("entry %d: expected override, got %v", i, got)
		}
		restore()
		if got := s.MustGet("mode"); got != "normal" {
			t.Fatalf("entry %d: expected restoration, got %v", i, got)
		}
	}
}

func TestRestoreIsIdempotentPerEntry(t *testing.T) {
	s := New()
	if err := s.Configure(Values{"k": "base"}); err != nil {
		t.Fatalf("configure: %v", err)
	}

	guard := s.Override(Values{"k": "override"})
	first := guard.Enter()
	second := guard.Enter()
	if s.Depth() != 3 {
		t.Fatalf("expected two independent layers, depth %d", s.Depth())
	}

	second()
	second() // repeated restore pops nothing extra
	if s.Depth() != 2 {
		t.Fatalf("expected one layer left after inner restore, depth %d", s.Depth())
	}
	if got := s.MustGet("k"); got != "override" {
		t.Fatalf("expected first entry still active, got %v", got)
	}
	first()
	if got := s.MustGet("k"); got != "base" {
		t.Fatalf("expected restoration, got %v", got)
	}
}

func TestOutOfOrderExitsRemoveTheRightLayer(t *testing.T) {
	s := New()
	if err := s.Configure(Values{"k": "base"}); err != nil {
		t.Fatalf("configure: %v", err)
	}

	first := s.Override(Values{"k": "first"}).Enter()
	second := s.Override(Values{"k": "second"}).Enter()

	// Exiting the older entry first leaves the newer one in effect.
	first()
	if got := s.MustGet("k"); got != "second" {
		t.Fatalf("expected newer layer to survive, got %v", got)
	}
	second()
	if got := s.MustGet("k"); got != "base" {
		t.Fatalf("expected restoration, got %v", got)
	}
}

func TestGuardValuesDetachedFromCaller(t *testing.T) {
	s := New()
	if err := s.Configure(Values{"k": "base"}); err != nil {
		t.Fatalf("configure: %v", err)
	}

	values := Values{"k": "override"}
	guard := s.Override(values)
	values["k"] = "mutated"

	restore := guard.Enter()
	defer restore()
	if got := s.MustGet("k"); got != "override" {
		t.Fatalf("expected guard values captured at creation, got %v", got)
	}
}
