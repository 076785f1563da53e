package controls

import "testing"

func TestPatchConstructors(t *testing.T) {
	m := MutePatch(true)
	if m.Volume != nil || m.IsMuted == nil || !*m.IsMuted {
		t.Fatalf("unexpected mute patch %s", m)
	}

	v := VolumePatch(0.25)
	if v.Volume == nil || *v.Volume != 0.25 || v.IsMuted == nil || *v.IsMuted {
		t.Fatalf("unexpected volume patch %s", v)
	}

	if !(Patch{}).IsEmpty() || m.IsEmpty() {
		t.Fatalf("IsEmpty mismatch")
	}
}

func TestPatchString(t *testing.T) {
	cases := []struct {
		p    Patch
		want string
	}{
		{Patch{}, "{}"},
		{MutePatch(false), "{isMuted: false}"},
		{VolumePatch(0.7), "{volume: 0.7, isMuted: false}"},
	}
	for _, c := range cases {
		if got := c.p.String(); got != c.want {
			t.Fatalf("expected %q, got %q", c.want, got)
		}
	}
}
