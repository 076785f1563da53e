package playback

import (
	"encoding/binary"
	"io"
	"testing"
)

func readFrames(t *testing.T, r io.Reader, n int) []int16 {
	t.Helper()
	buf := make([]byte, n*frameSize)
	if _, err := io.ReadFull(r, buf); err != nil {
		t.Fatalf("read: %v", err)
	}
	out := make([]int16, 0, n*2)
	for i := 0; i < len(buf); i += 2 {
		out = append(out, int16(binary.LittleEndian.Uint16(buf[i:])))
	}
	return out
}

func TestToneStreamStereoSine(t *testing.T) {
	samples := readFrames(t, NewToneStream(441), 200)

	if samples[0] != 0 || samples[1] != 0 {
		t.Fatalf("expected silence at phase 0, got %d %d", samples[0], samples[1])
	}
	peak := int16(0)
	for i := 0; i < len(samples); i += 2 {
		if samples[i] != samples[i+1] {
			t.Fatalf("frame %d: channels differ", i/2)
		}
		if samples[i] > peak {
			peak = samples[i]
		}
	}
	// 441 Hz at 44100 Hz repeats every 100 frames
	if samples[0] != samples[200] || samples[50] != samples[250] {
		t.Fatalf("expected period of 100 frames")
	}
	if peak <= 0 || peak > 6554 {
		t.Fatalf("unexpected peak %d", peak)
	}
}

func TestToneStreamOddReads(t *testing.T) {
	whole := readFrames(t, NewToneStream(300), 64)

	s := NewToneStream(300)
	var buf []byte
	chunk := make([]byte, 3)
	for len(buf) < 64*frameSize {
		n, err := s.Read(chunk)
		if err != nil {
			t.Fatalf("read: %v", err)
		}
		buf = append(buf, chunk[:n]...)
	}
	for i := 0; i < len(whole); i++ {
		got := int16(binary.LittleEndian.Uint16(buf[i*2:]))
		if got != whole[i] {
			t.Fatalf("sample %d: chunked read %d differs from %d", i, got, whole[i])
		}
	}
}

func TestNewTonePlayerValidates(t *testing.T) {
	if _, err := NewTonePlayer(nil, 440); err == nil {
		t.Fatalf("expected error for nil context")
	}
}
