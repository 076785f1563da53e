package controls

import (
	"github.com/milk9111/replaycontrols/common"
)

// Rect is a bounding box in the same coordinate space as PointerEvent.
type Rect struct {
	Left   float64
	Top    float64
	Width  float64
	Height float64
}

// PointerEvent is a pointer position in absolute (page) coordinates.
type PointerEvent struct {
	PageX float64
	PageY float64
}

// TrackGeometry reports where a slider track currently sits on screen.
type TrackGeometry interface {
	BoundingClientRect() Rect
}

type SliderProps struct {
	Label           string
	ClassNamePrefix string
	ClassName       string
	TrackClassName  string
	HandleClassName string
	MaxValue        float64
	Value           float64
	HandleContent   string
	TrackContent    string
	OnChange        func(value float64)
}

// Slider maps pointer positions on its track to values in [0, MaxValue].
// The track reference is the only thing it keeps between calls.
type Slider struct {
	props SliderProps
	track TrackGeometry
}

func NewSlider(props SliderProps) *Slider {
	return &Slider{props: props}
}

func (s *Slider) Props() SliderProps {
	return s.props
}

func (s *Slider) Label() string {
	return s.props.Label
}

func (s *Slider) ClassNames() string {
	return prefixed(s.props.ClassNamePrefix, s.props.ClassName)
}

func (s *Slider) TrackClassNames() string {
	return prefixed(s.props.ClassNamePrefix, s.props.TrackClassName)
}

func (s *Slider) HandleClassNames() string {
	return prefixed(s.props.ClassNamePrefix, s.props.HandleClassName)
}

// SetTrack records the rendered track so pointer events can be mapped.
func (s *Slider) SetTrack(track TrackGeometry) {
	s.track = track
}

// Fraction is the handle position along the track in [0, 1].
func (s *Slider) Fraction() float64 {
	if s.props.MaxValue <= 0 {
		return 0
	}
	return common.Clamp(s.props.Value/s.props.MaxValue, 0, 1)
}

// HandleHandleOrTrackClick converts a click on the track, or a drag step of
// the handle, into an OnChange call.
func (s *Slider) HandleHandleOrTrackClick(ev PointerEvent) {
	if s.track == nil {
		return
	}
	s.emit(ValueFromPointer(s.track.BoundingClientRect(), ev.PageX, s.props.MaxValue))
}

// Step moves the value by delta, rounded and clamped like a pointer change.
func (s *Slider) Step(delta float64) {
	s.emit(normalizeValue(s.props.Value+delta, s.props.MaxValue))
}

func (s *Slider) emit(value float64) {
	if s.props.OnChange == nil {
		return
	}
	s.props.OnChange(value)
}

// ValueFromPointer maps pageX on track linearly onto [0, maxValue], rounded
// to hundredths. A track without width maps everything to 0.
func ValueFromPointer(track Rect, pageX, maxValue float64) float64 {
	if track.Width <= 0 {
		return 0
	}
	offset := common.Clamp(pageX-track.Left, 0, track.Width)
	return normalizeValue(offset/track.Width*maxValue, maxValue)
}

func normalizeValue(value, maxValue float64) float64 {
	if maxValue <= 0 {
		return 0
	}
	return common.Clamp(common.RoundHundredths(value), 0, maxValue)
}
