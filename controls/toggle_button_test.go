package controls

import "testing"

func TestToggleButton(t *testing.T) {
	cases := []struct {
		name       string
		on         bool
		content    string
		classNames string
	}{
		{"off", false, "play", "t-btn t-toggled-off"},
		{"on", true, "pause", "t-btn t-toggled-on"},
	}

	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			clicks := 0
			b := NewToggleButton(ToggleButtonProps{
				Label:             "Play",
				ClassNamePrefix:   "t-",
				ClassName:         "btn",
				IsOn:              c.on,
				ToggledOffContent: "play",
				ToggledOnContent:  "pause",
				OnClick:           func() { clicks++ },
			})

			if b.Content() != c.content {
				t.Fatalf("expected content %q, got %q", c.content, b.Content())
			}
			if b.ClassNames() != c.classNames {
				t.Fatalf("expected class names %q, got %q", c.classNames, b.ClassNames())
			}

			b.Click()
			if clicks != 1 {
				t.Fatalf("expected 1 click, got %d", clicks)
			}
			if b.IsOn() != c.on {
				t.Fatalf("click must not change IsOn")
			}
		})
	}
}

func TestToggleButtonNilClick(t *testing.T) {
	b := NewToggleButton(ToggleButtonProps{Label: "x"})
	b.Click()
}
