// Package typewriter reveals text one character at a time on a fixed
// interval.
package typewriter

import "time"

// Typewriter reveals a single target string.
type Typewriter struct {
	target   []rune
	shown    int
	interval time.Duration
	acc      time.Duration
}

// New creates an empty typewriter that reveals one rune per interval.
func New(interval time.Duration) *Typewriter {
	if interval <= 0 {
		interval = time.Millisecond
	}
	return &Typewriter{interval: interval}
}

// Reset replaces the target and hides all of it.
func (t *Typewriter) Reset(s string) {
	t.target = []rune(s)
	t.shown = 0
	t.acc = 0
}

// Tick reveals one more rune. It returns false, changing nothing, once the
// whole target is visible.
func (t *Typewriter) Tick() bool {
	if t.shown >= len(t.target) {
		return false
	}
	t.shown++
	return true
}

// Advance feeds elapsed time and returns how many runes were revealed.
func (t *Typewriter) Advance(d time.Duration) int {
	if t.Done() {
		return 0
	}
	t.acc += d
	n := 0
	for t.acc >= t.interval && t.Tick() {
		t.acc -= t.interval
		n++
	}
	if t.Done() {
		t.acc = 0
	}
	return n
}

// Text returns the revealed prefix.
func (t *Typewriter) Text() string {
	return string(t.target[:t.shown])
}

// Target returns the full string being typed.
func (t *Typewriter) Target() string {
	return string(t.target)
}

// Done reports whether the whole target is visible.
func (t *Typewriter) Done() bool {
	return t.shown >= len(t.target)
}

// Len is the number of runes in the target.
func (t *Typewriter) Len() int {
	return len(t.target)
}
