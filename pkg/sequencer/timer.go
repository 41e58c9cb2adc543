package sequencer

import "time"

// interval fires every period while running.
type interval struct {
	period  time.Duration
	acc     time.Duration
	running bool
}

func newInterval(period time.Duration) interval {
	if period <= 0 {
		period = time.Millisecond
	}
	return interval{period: period}
}

func (iv *interval) start() {
	iv.acc = 0
	iv.running = true
}

// stop keeps the accumulated remainder so advance can hand it back.
func (iv *interval) stop() {
	iv.running = false
}

// advance adds d and calls fire once per elapsed period. fire may stop the
// interval, in which case the time left over is returned.
func (iv *interval) advance(d time.Duration, fire func()) (spare time.Duration) {
	if !iv.running {
		return 0
	}
	iv.acc += d
	for iv.running && iv.acc >= iv.period {
		iv.acc -= iv.period
		fire()
	}
	if !iv.running {
		spare = iv.acc
		iv.acc = 0
	}
	return spare
}

// delay fires once after wait.
type delay struct {
	wait    time.Duration
	left    time.Duration
	pending bool
}

func newDelay(wait time.Duration) delay {
	return delay{wait: wait}
}

func (dl *delay) arm() {
	dl.left = dl.wait
	dl.pending = true
}

func (dl *delay) cancel() {
	dl.pending = false
	dl.left = 0
}

// advance reports whether the delay expired during d.
func (dl *delay) advance(d time.Duration) bool {
	if !dl.pending {
		return false
	}
	dl.left -= d
	if dl.left > 0 {
		return false
	}
	dl.pending = false
	dl.left = 0
	return true
}
