package ui

import (
	"image/color"
	"math"
	"strings"

	"github.com/ebitenui/ebitenui/widget"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/hajimehoshi/ebiten/v2/text/v2"
	"github.com/milk9111/replaycontrols/controls"
)

const (
	trackWidth   = 240
	trackHeight  = 24
	toggleSize   = 40
	controlSpace = 12
)

// VolumeView renders a controls.Volume with ebitenui widgets and feeds
// pointer input back into it. Call SetProps every frame before the UI
// updates so handlers act on the current props.
type VolumeView struct {
	Container *widget.Container

	// KeyboardEnabled lets arrow keys step the volume and M toggle mute.
	KeyboardEnabled bool

	face    *text.Face
	volume  *controls.Volume
	bar     *widget.ProgressBar
	muteBtn *widget.Button
	drag    dragState
}

func NewVolumeView(props controls.VolumeProps, face *text.Face) *VolumeView {
	v := &VolumeView{face: face}
	initial := controls.NewVolume(props)
	theme := newTheme(face)

	v.bar = widget.NewProgressBar(
		widget.ProgressBarOpts.WidgetOpts(
			widget.WidgetOpts.MinSize(trackWidth, trackHeight),
			widget.WidgetOpts.LayoutData(widget.RowLayoutData{Position: widget.RowLayoutPositionCenter}),
			widget.WidgetOpts.CustomData(initial.Slider().TrackClassNames()),
			widget.WidgetOpts.ToolTip(v.toolTip(initial.Slider().Label())),
			widget.WidgetOpts.MouseButtonPressedHandler(v.handleTrackPressed),
			widget.WidgetOpts.ScrolledHandler(v.handleTrackScrolled),
		),
		widget.ProgressBarOpts.Images(theme.ProgressBarTheme.TrackImage, theme.ProgressBarTheme.FillImage),
		widget.ProgressBarOpts.Values(0, barResolution, 0),
	)

	v.muteBtn = widget.NewButton(
		widget.ButtonOpts.Image(theme.ButtonTheme.Image),
		widget.ButtonOpts.Text(initial.MuteToggle().Content(), face, theme.ButtonTheme.TextColor),
		widget.ButtonOpts.WidgetOpts(
			widget.WidgetOpts.MinSize(toggleSize, toggleSize),
			widget.WidgetOpts.LayoutData(widget.RowLayoutData{Position: widget.RowLayoutPositionCenter}),
			widget.WidgetOpts.CustomData(initial.MuteToggle().ClassNames()),
			widget.WidgetOpts.ToolTip(v.toolTip(initial.MuteToggle().Label())),
		),
		widget.ButtonOpts.ClickedHandler(func(args *widget.ButtonClickedEventArgs) {
			v.volume.MuteToggle().Click()
		}),
	)

	v.Container = widget.NewContainer(
		widget.ContainerOpts.BackgroundImage(theme.PanelTheme.BackgroundImage),
		widget.ContainerOpts.Layout(widget.NewRowLayout(
			widget.RowLayoutOpts.Direction(widget.DirectionHorizontal),
			widget.RowLayoutOpts.Spacing(controlSpace),
			widget.RowLayoutOpts.Padding(&widget.Insets{Top: 8, Bottom: 8, Left: 12, Right: 12}),
		)),
		widget.ContainerOpts.WidgetOpts(
			widget.WidgetOpts.CustomData(initial.ClassName()),
			widget.WidgetOpts.ToolTip(v.toolTip(initial.Title())),
			widget.WidgetOpts.LayoutData(widget.RowLayoutData{Position: widget.RowLayoutPositionCenter}),
		),
	)
	// same order as Volume.Children: slider first, then the toggle
	v.Container.AddChild(v.bar)
	v.Container.AddChild(v.muteBtn)

	v.SetProps(props)
	return v
}

// SetProps re-derives the control from new props and syncs the widgets.
func (v *VolumeView) SetProps(props controls.VolumeProps) {
	v.volume = controls.NewVolume(props)
	v.volume.Slider().SetTrack(widgetTrack{w: v.bar.GetWidget()})

	v.bar.SetCurrent(barValue(v.volume.Slider().Fraction()))
	v.bar.GetWidget().CustomData = v.volume.Slider().TrackClassNames()
	v.muteBtn.SetText(v.volume.MuteToggle().Content())
	v.muteBtn.GetWidget().CustomData = v.volume.MuteToggle().ClassNames()
	v.Container.GetWidget().CustomData = v.volume.ClassName()
}

// Update continues handle drags and handles keyboard shortcuts. Run it after
// the ebitenui update of the same frame.
func (v *VolumeView) Update() {
	x, y := ebiten.CursorPosition()
	if v.drag.move(x, ebiten.IsMouseButtonPressed(ebiten.MouseButtonLeft)) {
		v.volume.Slider().HandleHandleOrTrackClick(controls.PointerEvent{PageX: float64(x), PageY: float64(y)})
	}

	if !v.KeyboardEnabled {
		return
	}
	left := inpututil.IsKeyJustPressed(ebiten.KeyArrowLeft)
	right := inpututil.IsKeyJustPressed(ebiten.KeyArrowRight)
	if step := stepForKeys(left, right); step != 0 {
		v.volume.Slider().Step(step)
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyM) {
		v.volume.MuteToggle().Click()
	}
}

// Draw paints the track and handle glyphs over the progress bar.
func (v *VolumeView) Draw(screen *ebiten.Image) {
	if v.face == nil || v.volume == nil {
		return
	}
	slider := v.volume.Slider()
	track := rectFromImage(v.bar.GetWidget().Rect)
	if track.Width <= 0 {
		return
	}
	centerY := track.Top + track.Height/2

	if glyph := slider.Props().TrackContent; glyph != "" {
		if adv := text.Advance(glyph, *v.face); adv > 0 {
			line := strings.Repeat(glyph, int(math.Floor(track.Width/adv)))
			v.drawGlyph(screen, line, track.Left+track.Width/2, centerY, trackHoverColor)
		}
	}

	if glyph := slider.Props().HandleContent; glyph != "" {
		v.drawGlyph(screen, glyph, handleX(track, slider.Fraction()), centerY, handleColor)
	}
}

func (v *VolumeView) drawGlyph(screen *ebiten.Image, s string, x, y float64, c color.Color) {
	op := &text.DrawOptions{}
	op.GeoM.Translate(x, y)
	op.ColorScale.ScaleWithColor(c)
	op.PrimaryAlign = text.AlignCenter
	op.SecondaryAlign = text.AlignCenter
	text.Draw(screen, s, *v.face, op)
}

func (v *VolumeView) handleTrackPressed(args *widget.WidgetMouseButtonPressedEventArgs) {
	if args.Button != ebiten.MouseButtonLeft {
		return
	}
	ev := pointerFromOffset(args.Widget.Rect, args.OffsetX, args.OffsetY)
	v.drag.begin(int(ev.PageX))
	v.volume.Slider().HandleHandleOrTrackClick(ev)
}

func (v *VolumeView) handleTrackScrolled(args *widget.WidgetScrolledEventArgs) {
	if step := stepForWheel(args.Y); step != 0 {
		v.volume.Slider().Step(step)
	}
}

func (v *VolumeView) toolTip(label string) *widget.ToolTip {
	if label == "" || v.face == nil {
		return nil
	}
	return widget.NewTextToolTip(label, v.face, textColor, solidNineSlice(tooltipColor))
}
