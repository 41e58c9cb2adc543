package typewriter

import "time"

// Lines types several lines one after another, pauses, clears everything
// and starts over.
type Lines struct {
	lines   [][]rune
	display [][]rune

	line, char int
	acc        time.Duration

	CharDelay  time.Duration
	LinePause  time.Duration
	ResetPause time.Duration
}

// NewLines creates a looping multi-line typewriter. Non-positive delays
// fall back to one millisecond.
func NewLines(lines []string, charDelay, linePause, resetPause time.Duration) *Lines {
	l := &Lines{
		CharDelay:  positive(charDelay),
		LinePause:  positive(linePause),
		ResetPause: positive(resetPause),
	}
	for _, s := range lines {
		l.lines = append(l.lines, []rune(s))
	}
	l.display = make([][]rune, len(l.lines))
	return l
}

func positive(d time.Duration) time.Duration {
	if d <= 0 {
		return time.Millisecond
	}
	return d
}

func (l *Lines) nextDelay() time.Duration {
	switch {
	case l.char < len(l.lines[l.line]):
		return l.CharDelay
	case l.line < len(l.lines)-1:
		return l.LinePause
	default:
		return l.ResetPause
	}
}

func (l *Lines) step() {
	cur := l.lines[l.line]
	switch {
	case l.char < len(cur):
		l.display[l.line] = append(l.display[l.line], cur[l.char])
		l.char++
	case l.line < len(l.lines)-1:
		l.line++
		l.char = 0
	default:
		for i := range l.display {
			l.display[i] = l.display[i][:0]
		}
		l.line = 0
		l.char = 0
	}
}

// Advance feeds elapsed time into the loop.
func (l *Lines) Advance(d time.Duration) {
	if len(l.lines) == 0 {
		return
	}
	l.acc += d
	for {
		next := l.nextDelay()
		if l.acc < next {
			return
		}
		l.acc -= next
		l.step()
	}
}

// Display returns the currently visible text of every line.
func (l *Lines) Display() []string {
	out := make([]string, len(l.display))
	for i, r := range l.display {
		out[i] = string(r)
	}
	return out
}

// Cursor is the index of the line being typed.
func (l *Lines) Cursor() int {
	return l.line
}
