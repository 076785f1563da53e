package ui

import (
	"image"
	"math"

	"github.com/ebitenui/ebitenui/widget"
	"github.com/milk9111/replaycontrols/common"
	"github.com/milk9111/replaycontrols/controls"
)

const (
	barResolution = 100
	wheelStep     = 0.05
)

// widgetTrack exposes a laid out ebitenui widget as slider track geometry.
// The rect is read on every call, so it follows relayouts.
type widgetTrack struct {
	w *widget.Widget
}

func (t widgetTrack) BoundingClientRect() controls.Rect {
	if t.w == nil {
		return controls.Rect{}
	}
	return rectFromImage(t.w.Rect)
}

func rectFromImage(r image.Rectangle) controls.Rect {
	return controls.Rect{
		Left:   float64(r.Min.X),
		Top:    float64(r.Min.Y),
		Width:  float64(r.Dx()),
		Height: float64(r.Dy()),
	}
}

// pointerFromOffset turns a widget relative event offset into page coordinates.
func pointerFromOffset(r image.Rectangle, offsetX, offsetY int) controls.PointerEvent {
	return controls.PointerEvent{
		PageX: float64(r.Min.X + offsetX),
		PageY: float64(r.Min.Y + offsetY),
	}
}

// handleX is the page x of the handle centre for a slider fraction.
func handleX(track controls.Rect, fraction float64) float64 {
	return common.Lerp(track.Left, track.Left+track.Width, fraction)
}

// barValue maps a slider fraction onto the progress bar's integer range.
func barValue(fraction float64) int {
	return int(math.Round(fraction * barResolution))
}

// stepForWheel converts a vertical wheel delta into a volume step.
func stepForWheel(dy float64) float64 {
	switch {
	case dy > 0:
		return wheelStep
	case dy < 0:
		return -wheelStep
	}
	return 0
}

// stepForKeys converts arrow key presses into a volume step.
func stepForKeys(left, right bool) float64 {
	switch {
	case right && !left:
		return wheelStep
	case left && !right:
		return -wheelStep
	}
	return 0
}

// dragState follows the handle while the mouse button is held after a press
// on the track. Moves are reported only when the cursor changed column.
type dragState struct {
	active bool
	lastX  int
}

func (d *dragState) begin(x int) {
	d.active = true
	d.lastX = x
}

// move reports whether a drag step at x should be emitted. Releasing the
// button ends the drag.
func (d *dragState) move(x int, pressed bool) bool {
	if !d.active {
		return false
	}
	if !pressed {
		d.active = false
		return false
	}
	if x == d.lastX {
		return false
	}
	d.lastX = x
	return true
}
