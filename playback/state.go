package playback

import (
	"log/slog"

	"github.com/milk9111/replaycontrols/common"
	"github.com/milk9111/replaycontrols/controls"
)

// State is what the volume control displays and edits.
type State struct {
	Volume  float64
	IsMuted bool
}

// EffectiveVolume is the level actually sent to audio output.
func (s State) EffectiveVolume() float64 {
	if s.IsMuted {
		return 0
	}
	return s.Volume
}

// Apply merges p into s shallowly. Absent fields keep their value.
func (s State) Apply(p controls.Patch) State {
	if p.Volume != nil {
		s.Volume = *p.Volume
	}
	if p.IsMuted != nil {
		s.IsMuted = *p.IsMuted
	}
	return s
}

// Sink receives the effective volume. *audio.Player satisfies it.
type Sink interface {
	SetVolume(volume float64)
}

// Owner holds the playback state and is the target of SetProperties.
type Owner struct {
	state     State
	sink      Sink
	listeners []func(State)
}

func NewOwner(initial State, sink Sink) *Owner {
	o := &Owner{state: initial.normalized(), sink: sink}
	o.applySink()
	return o
}

func (o *Owner) State() State {
	return o.state
}

// Subscribe registers fn to run after every state change.
func (o *Owner) Subscribe(fn func(State)) {
	if fn == nil {
		return
	}
	o.listeners = append(o.listeners, fn)
}

// SetSink swaps the audio output and pushes the current level to it.
func (o *Owner) SetSink(sink Sink) {
	o.sink = sink
	o.applySink()
}

// SetProperties is a controls.SetPropertiesFunc.
func (o *Owner) SetProperties(p controls.Patch) {
	if p.IsEmpty() {
		return
	}

	next := o.state.Apply(p)
	if normalized := next.normalized(); normalized != next {
		slog.Debug("playback: volume clamped", "volume", next.Volume, "clamped", normalized.Volume)
		next = normalized
	}
	if next == o.state {
		return
	}

	slog.Debug("playback: set properties", "patch", p.String(), "volume", next.Volume, "muted", next.IsMuted)
	o.state = next
	o.applySink()
	for _, fn := range o.listeners {
		fn(next)
	}
}

func (o *Owner) applySink() {
	if o.sink == nil {
		return
	}
	o.sink.SetVolume(o.state.EffectiveVolume())
}

func (s State) normalized() State {
	s.Volume = common.Clamp(s.Volume, 0, 1)
	return s
}
