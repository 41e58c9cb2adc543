package game

import (
	"encoding/binary"
	"fmt"
	"math"
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/effects"
	"github.com/gopxl/beep/generators"
)

// Loader cue voicing: a soft A minor pad.
var cueChord = []float64{220.00, 261.63, 329.63, 440.00}

const (
	// CueDuration is the length of one loop of the loader cue.
	CueDuration = 4 * time.Second
	cueAttack   = 600 * time.Millisecond
	cueRelease  = 600 * time.Millisecond
	cueVolume   = 0.35
)

// SynthesizeCue renders the loader cue as 16-bit little-endian stereo PCM,
// the format ebiten's audio players expect.
func SynthesizeCue(sampleRate int, duration time.Duration) ([]byte, error) {
	if sampleRate <= 0 {
		return nil, fmt.Errorf("sample rate must be positive, got %d", sampleRate)
	}
	if duration <= 0 {
		return nil, fmt.Errorf("duration must be positive, got %v", duration)
	}
	sr := beep.SampleRate(sampleRate)

	tones := make([]beep.Streamer, 0, len(cueChord))
	for _, freq := range cueChord {
		tone, err := generators.SineTone(sr, freq)
		if err != nil {
			return nil, fmt.Errorf("failed to create %.2f Hz tone: %w", freq, err)
		}
		tones = append(tones, tone)
	}

	// Mix sums its inputs, so scale by the voice count before the volume.
	pad := &effects.Volume{
		Streamer: beep.Mix(tones...),
		Base:     2,
		Volume:   math.Log2(cueVolume / float64(len(tones))),
	}
	n := sr.N(duration)
	shaped := newEnvelope(beep.Take(n, pad), n, sr.N(cueAttack), sr.N(cueRelease))
	return renderPCM(shaped, n), nil
}

// renderPCM drains s into at most n interleaved int16 stereo frames.
func renderPCM(s beep.Streamer, n int) []byte {
	out := make([]byte, 0, n*4)
	buf := make([][2]float64, 512)
	for len(out) < n*4 {
		got, ok := s.Stream(buf)
		for _, frame := range buf[:got] {
			out = binary.LittleEndian.AppendUint16(out, uint16(toInt16(frame[0])))
			out = binary.LittleEndian.AppendUint16(out, uint16(toInt16(frame[1])))
		}
		if !ok || got == 0 {
			break
		}
	}
	return out
}

func toInt16(v float64) int16 {
	v = math.Max(-1, math.Min(1, v))
	return int16(math.Round(v * math.MaxInt16))
}

// envelope fades a stream in and out so the loop seam is silent.
type envelope struct {
	streamer beep.Streamer
	pos      int
	total    int
	attack   int
	release  int
}

func newEnvelope(s beep.Streamer, total, attack, release int) beep.Streamer {
	return &envelope{streamer: s, total: total, attack: attack, release: release}
}

func (e *envelope) Stream(samples [][2]float64) (n int, ok bool) {
	n, ok = e.streamer.Stream(samples)
	for i := 0; i < n; i++ {
		vol := 1.0
		if e.attack > 0 && e.pos < e.attack {
			vol = float64(e.pos) / float64(e.attack)
		}
		if left := e.total - e.pos; e.release > 0 && left < e.release {
			vol = math.Min(vol, float64(left)/float64(e.release))
		}
		samples[i][0] *= vol
		samples[i][1] *= vol
		e.pos++
	}
	return n, ok
}

func (e *envelope) Err() error { return e.streamer.Err() }
