package controls

type ToggleButtonProps struct {
	Label             string
	ClassNamePrefix   string
	ClassName         string
	IsOn              bool
	ToggledOffContent string
	ToggledOnContent  string
	OnClick           func()
}

// ToggleButton shows one of two contents depending on IsOn. Clicking it does
// not flip anything itself; the owner of IsOn decides.
type ToggleButton struct {
	props ToggleButtonProps
}

func NewToggleButton(props ToggleButtonProps) *ToggleButton {
	return &ToggleButton{props: props}
}

func (b *ToggleButton) Props() ToggleButtonProps {
	return b.props
}

func (b *ToggleButton) Label() string {
	return b.props.Label
}

func (b *ToggleButton) IsOn() bool {
	return b.props.IsOn
}

func (b *ToggleButton) Content() string {
	if b.props.IsOn {
		return b.props.ToggledOnContent
	}
	return b.props.ToggledOffContent
}

// ClassNames returns the prefixed class name followed by the state class.
func (b *ToggleButton) ClassNames() string {
	state := toggledOffClassName
	if b.props.IsOn {
		state = toggledOnClassName
	}
	return prefixed(b.props.ClassNamePrefix, b.props.ClassName, state)
}

func (b *ToggleButton) Click() {
	if b.props.OnClick == nil {
		return
	}
	b.props.OnClick()
}
