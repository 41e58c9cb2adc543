package sequencer

import (
	"log"
	"time"

	"github.com/decker502/folio/pkg/config"
	"github.com/decker502/folio/pkg/typewriter"
)

// EventKind identifies a loader notification.
type EventKind int

const (
	// EventPhase is sent on every phase entry.
	EventPhase EventKind = iota
	// EventTheme is sent once, when the loader switches to the light theme.
	EventTheme
	// EventMarkersHidden is sent when the markers have left the screen.
	EventMarkersHidden
	// EventNavigate is sent once, when the host should leave the loader.
	EventNavigate
)

func (k EventKind) String() string {
	switch k {
	case EventPhase:
		return "phase"
	case EventTheme:
		return "theme"
	case EventMarkersHidden:
		return "markers-hidden"
	case EventNavigate:
		return "navigate"
	default:
		return "unknown"
	}
}

// Event is delivered synchronously to subscribers from Start and Advance.
// Phase is the loader phase after the change.
type Event struct {
	Kind  EventKind
	Phase Phase
}

// Cue is the loader sound. Start plays from the beginning, restarting it if
// it is already playing.
type Cue interface {
	Start()
	Stop()
}

// Timings are the loader's timer periods.
type Timings struct {
	Tick           time.Duration
	PostCountDelay time.Duration
	CharInterval   time.Duration
	NavigatePause  time.Duration
}

// DefaultTimings returns the loader timings.
func DefaultTimings() Timings {
	return Timings{
		Tick:           config.LoaderCountTick,
		PostCountDelay: config.LoaderPostCountDelay,
		CharInterval:   config.LoaderCharInterval,
		NavigatePause:  config.LoaderNavigatePause,
	}
}

// Options configures a Loader.
type Options struct {
	Timings       Timings
	Target        string
	Width, Height float64 // device pixels
	DPR           float64
	Markers       MarkerConfig
	Cue           Cue // may be nil
}

// DefaultOptions returns the loader configuration for a surface.
func DefaultOptions(w, h, dpr float64) Options {
	return Options{
		Timings: DefaultTimings(),
		Target:  config.LoaderTarget,
		Width:   w,
		Height:  h,
		DPR:     dpr,
		Markers: DefaultMarkerConfig(),
	}
}

// Loader is the loader phase machine. It owns every timer it uses and has no
// goroutines: the host calls Advance once per frame.
type Loader struct {
	opts Options

	phase       Phase
	count       int
	light       bool
	markVisible bool
	markers     *Markers
	typer       *typewriter.Typewriter

	counter   interval
	postCount delay
	navPause  delay

	subs    []func(Event)
	stopped bool
}

// New creates an idle loader.
func New(opts Options) *Loader {
	if opts.DPR <= 0 {
		opts.DPR = 1
	}
	return &Loader{
		opts:      opts,
		typer:     typewriter.New(opts.Timings.CharInterval),
		counter:   newInterval(opts.Timings.Tick),
		postCount: newDelay(opts.Timings.PostCountDelay),
		navPause:  newDelay(opts.Timings.NavigatePause),
	}
}

// Subscribe registers fn for every later event.
func (l *Loader) Subscribe(fn func(Event)) {
	if fn != nil {
		l.subs = append(l.subs, fn)
	}
}

func (l *Loader) emit(kind EventKind) {
	ev := Event{Kind: kind, Phase: l.phase}
	for _, fn := range l.subs {
		fn(ev)
	}
}

// Start leaves Idle. It returns false if the loader was already started or
// has been stopped.
func (l *Loader) Start() bool {
	if l.stopped || l.phase != PhaseIdle {
		return false
	}
	l.counter.start()
	l.enter(PhaseProgress)
	return true
}

func (l *Loader) enter(p Phase) {
	prev := l.phase
	l.phase = p
	log.Printf("[Loader] Phase %s -> %s", prev, p)

	if cue := l.opts.Cue; cue != nil && prev.Screen() != p.Screen() {
		if p.Audible() {
			cue.Start()
		} else if prev.Audible() {
			cue.Stop()
		}
	}
	l.emit(EventPhase)
}

// Update advances by deltaTime seconds.
func (l *Loader) Update(deltaTime float64) {
	l.Advance(time.Duration(deltaTime * float64(time.Second)))
}

// Advance feeds elapsed time to the active timers and runs one marker
// frame. It does nothing once the loader is stopped or has navigated.
func (l *Loader) Advance(d time.Duration) {
	if l.stopped || d < 0 {
		return
	}

	switch l.phase {
	case PhaseProgress:
		counting := l.counter.running
		spare := l.counter.advance(d, l.tick)
		if !counting {
			spare = d
		}
		if l.postCount.advance(spare) {
			l.showMark()
		}
	case PhaseTyping:
		if !l.navPause.pending {
			l.typer.Advance(d)
			if l.typer.Done() {
				l.navPause.arm()
			}
		} else if l.navPause.advance(d) {
			l.navigate()
			return
		}
	}

	if l.phase >= PhaseMark && l.phase <= PhaseTyping && l.markers != nil {
		l.stepMarkers()
	}
}

func (l *Loader) tick() {
	if l.count >= config.LoaderCountMax {
		return
	}
	l.count++
	if l.count >= config.LoaderCountMax {
		l.counter.stop()
		l.postCount.arm()
	}
}

func (l *Loader) showMark() {
	l.light = true
	log.Printf("[Loader] Switching to light theme")
	l.emit(EventTheme)

	l.markVisible = true
	l.markers = NewMarkers(l.opts.Markers, l.opts.Width, l.opts.Height, l.opts.DPR)
	l.enter(PhaseMark)
}

func (l *Loader) stepMarkers() {
	switch l.markers.Step() {
	case MarkerArrived:
		if l.phase == PhaseMark {
			l.enter(PhaseConverge)
		}
	case MarkerCollided:
		l.enter(PhaseCollision)
		l.markVisible = false
		l.typer.Reset(l.opts.Target)
		l.enter(PhaseTyping)
	case MarkerGone:
		log.Printf("[Loader] Markers hidden")
		l.emit(EventMarkersHidden)
	}
}

func (l *Loader) navigate() {
	l.enter(PhaseNavigate)
	log.Printf("[Loader] Navigating away")
	l.emit(EventNavigate)
}

// Stop cancels every timer and silences the cue. It is safe to call more
// than once.
func (l *Loader) Stop() {
	if l.stopped {
		return
	}
	l.stopped = true
	l.counter.stop()
	l.postCount.cancel()
	l.navPause.cancel()
	if l.opts.Cue != nil {
		l.opts.Cue.Stop()
	}
}

// Resize records the surface size used when the markers are created.
// Markers already on screen keep their target.
func (l *Loader) Resize(w, h float64) {
	l.opts.Width = w
	l.opts.Height = h
}

// Phase returns the current phase.
func (l *Loader) Phase() Phase { return l.phase }

// Count returns the progress counter, 0 to 100.
func (l *Loader) Count() int { return l.count }

// Light reports whether the light theme is active.
func (l *Loader) Light() bool { return l.light }

// MarkVisible reports whether the two-letter mark is shown.
func (l *Loader) MarkVisible() bool { return l.markVisible }

// Markers returns the marker simulation, nil before the mark phase.
func (l *Loader) Markers() *Markers { return l.markers }

// MarkersVisible reports whether the markers should be drawn.
func (l *Loader) MarkersVisible() bool {
	return l.markers != nil && l.markers.Visible() && l.phase < PhaseNavigate
}

// Typed returns the revealed part of the target.
func (l *Loader) Typed() string { return l.typer.Text() }

// Target is the full string typed in the typing phase.
func (l *Loader) Target() string { return l.opts.Target }

// Stopped reports whether Stop was called.
func (l *Loader) Stopped() bool { return l.stopped }
