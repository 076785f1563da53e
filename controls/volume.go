package controls

const (
	volumeClassName             = "volume"
	volumeSliderClassName       = "volume-slider"
	volumeSliderTrackClassName  = "volume-slider-track"
	volumeSliderHandleClassName = "volume-slider-handle"
	muteToggleClassName         = "mute-toggle"

	volumeMaxValue = 1
)

// Captions are the caller supplied strings of a volume control.
type Captions struct {
	Label                     string `yaml:"label"`
	MuteToggleLabel           string `yaml:"mute_toggle_label"`
	VolumeSliderLabel         string `yaml:"volume_slider_label"`
	MutedContent              string `yaml:"muted_content"`
	UnmutedContent            string `yaml:"unmuted_content"`
	VolumeSliderHandleContent string `yaml:"volume_slider_handle_content"`
	VolumeSliderTrackContent  string `yaml:"volume_slider_track_content"`
	ClassNamePrefix           string `yaml:"class_name_prefix"`
}

type VolumeProps struct {
	Captions

	// Volume is the stored level in [0, 1]. It is kept while muted.
	Volume  float64
	IsMuted bool

	SetProperties SetPropertiesFunc
}

// Node is a rendered child of a control.
type Node interface {
	Label() string
	ClassNames() string
}

// Volume is a mute toggle next to a volume slider. It derives everything it
// shows from VolumeProps and reports changes through SetProperties.
type Volume struct {
	props      VolumeProps
	slider     *Slider
	muteToggle *ToggleButton
}

func NewVolume(props VolumeProps) *Volume {
	v := &Volume{props: props}

	displayed := props.Volume
	if props.IsMuted {
		displayed = 0
	}

	v.slider = NewSlider(SliderProps{
		Label:           props.VolumeSliderLabel,
		ClassNamePrefix: props.ClassNamePrefix,
		ClassName:       volumeSliderClassName,
		TrackClassName:  volumeSliderTrackClassName,
		HandleClassName: volumeSliderHandleClassName,
		MaxValue:        volumeMaxValue,
		Value:           displayed,
		HandleContent:   props.VolumeSliderHandleContent,
		TrackContent:    props.VolumeSliderTrackContent,
		OnChange:        v.handleVolumeChange,
	})

	v.muteToggle = NewToggleButton(ToggleButtonProps{
		Label:             props.MuteToggleLabel,
		ClassNamePrefix:   props.ClassNamePrefix,
		ClassName:         muteToggleClassName,
		IsOn:              props.IsMuted,
		ToggledOffContent: props.UnmutedContent,
		ToggledOnContent:  props.MutedContent,
		OnClick:           v.handleMuteToggleClick,
	})

	return v
}

func (v *Volume) Props() VolumeProps {
	return v.props
}

// Title is the accessible title of the container.
func (v *Volume) Title() string {
	return v.props.Label
}

func (v *Volume) ClassName() string {
	return v.props.ClassNamePrefix + volumeClassName
}

func (v *Volume) Slider() *Slider {
	return v.slider
}

func (v *Volume) MuteToggle() *ToggleButton {
	return v.muteToggle
}

// Children returns the slider and the mute toggle in render order.
func (v *Volume) Children() []Node {
	return []Node{v.slider, v.muteToggle}
}

func (v *Volume) handleMuteToggleClick() {
	v.setProperties(MutePatch(!v.props.IsMuted))
}

func (v *Volume) handleVolumeChange(volume float64) {
	v.setProperties(VolumePatch(volume))
}

func (v *Volume) setProperties(patch Patch) {
	if v.props.SetProperties == nil {
		return
	}
	v.props.SetProperties(patch)
}
