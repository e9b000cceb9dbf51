package core

import "time"

// Pacer converts wall-clock time into a number of due simulation steps, so a
// draw loop can advance state at a fixed rate independent of its frame rate.
type Pacer struct {
	step time.Duration
	acc  time.Duration
	last time.Time
	now  func() time.Time
}

// NewPacer constructs a pacer targeting the given steps per second. The first
// Due call always owes at least one step.
func NewPacer(tps int) *Pacer {
	p := &Pacer{now: time.Now}
	p.SetTPS(tps)
	p.acc = p.step
	return p
}

// SetTPS changes the step rate. Safe to call between Due calls.
func (p *Pacer) SetTPS(tps int) {
	if tps <= 0 {
		tps = 60
	}
	p.step = time.Second / time.Duration(tps)
}

// Due returns how many steps should run now, at most max. Backlog beyond the
// cap is dropped so a stalled loop does not burst to catch up.
func (p *Pacer) Due(max int) int {
	if max < 1 {
		max = 1
	}
	t := p.now()
	if p.last.IsZero() {
		p.last = t
	}
	p.acc += t.Sub(p.last)
	p.last = t
	due := int(p.acc / p.step)
	if due > max {
		p.acc = 0
		return max
	}
	p.acc -= time.Duration(due) * p.step
	return due
}
