package core

import (
	"testing"
	"time"
)

func TestPacerDueAccumulatesSteps(t *testing.T) {
	clock := time.Unix(0, 0)
	p := NewPacer(10)
	p.now = func() time.Time { return clock }

	if got := p.Due(8); got != 1 {
		t.Fatalf("primed pacer should owe one step, got %d", got)
	}
	clock = clock.Add(250 * time.Millisecond)
	if got := p.Due(8); got != 2 {
		t.Fatalf("250ms at 10 tps should owe 2 steps, got %d", got)
	}
	clock = clock.Add(50 * time.Millisecond)
	if got := p.Due(8); got != 1 {
		t.Fatalf("carried 50ms plus 50ms should owe 1 step, got %d", got)
	}
}

func TestPacerDueCapsCatchup(t *testing.T) {
	clock := time.Unix(0, 0)
	p := NewPacer(100)
	p.now = func() time.Time { return clock }

	p.Due(1)
	clock = clock.Add(5 * time.Second)
	if got := p.Due(4); got != 4 {
		t.Fatalf("catchup must cap at 4 steps, got %d", got)
	}
	clock = clock.Add(10 * time.Millisecond)
	if got := p.Due(4); got != 1 {
		t.Fatalf("backlog is dropped after a cap; 10ms owes 1 step, got %d", got)
	}
}

func TestPacerClampsBadRates(t *testing.T) {
	p := NewPacer(0)
	if p.step != time.Second/60 {
		t.Fatalf("zero tps must clamp to 60, got step %v", p.step)
	}
	p.SetTPS(-5)
	if p.step != time.Second/60 {
		t.Fatalf("negative tps must clamp to 60, got step %v", p.step)
	}
}
