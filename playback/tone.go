package playback

import (
	"encoding/binary"
	"fmt"
	"math"

	"github.com/hajimehoshi/ebiten/v2/audio"
)

const (
	SampleRate = 44100

	// bytes per frame: 2 channels of signed 16-bit PCM
	frameSize = 4
	toneGain  = 0.2
)

// ToneStream is an endless sine wave in ebiten's 16-bit stereo format.
type ToneStream struct {
	freq     float64
	position int64
	rem      []byte
}

func NewToneStream(freq float64) *ToneStream {
	return &ToneStream{freq: freq}
}

func (s *ToneStream) Read(buf []byte) (int, error) {
	if len(s.rem) > 0 {
		n := copy(buf, s.rem)
		s.rem = s.rem[n:]
		return n, nil
	}

	frames := (len(buf) + frameSize - 1) / frameSize
	out := make([]byte, frames*frameSize)
	for i := 0; i < frames; i++ {
		phase := 2 * math.Pi * s.freq * float64(s.position) / SampleRate
		sample := uint16(int16(math.Sin(phase) * toneGain * math.MaxInt16))
		binary.LittleEndian.PutUint16(out[i*frameSize:], sample)
		binary.LittleEndian.PutUint16(out[i*frameSize+2:], sample)
		s.position++
	}

	n := copy(buf, out)
	s.rem = out[n:]
	return n, nil
}

// NewTonePlayer starts a looping test tone on ctx. The returned player is
// paused; the caller decides when to Play.
func NewTonePlayer(ctx *audio.Context, freq float64) (*audio.Player, error) {
	if ctx == nil {
		return nil, fmt.Errorf("playback: audio context is nil")
	}
	if freq <= 0 {
		return nil, fmt.Errorf("playback: tone frequency must be positive, got %v", freq)
	}
	return ctx.NewPlayer(NewToneStream(freq))
}
