package controls

import (
	"fmt"
	"strings"
)

// Patch is a partial update for the owner of the playback properties.
// A nil field means "leave unchanged".
type Patch struct {
	Volume  *float64
	IsMuted *bool
}

// SetPropertiesFunc receives patches from a control.
type SetPropertiesFunc func(patch Patch)

func MutePatch(muted bool) Patch {
	return Patch{IsMuted: &muted}
}

// VolumePatch sets a new level and always unmutes.
func VolumePatch(volume float64) Patch {
	muted := false
	return Patch{Volume: &volume, IsMuted: &muted}
}

func (p Patch) IsEmpty() bool {
	return p.Volume == nil && p.IsMuted == nil
}

func (p Patch) String() string {
	parts := make([]string, 0, 2)
	if p.Volume != nil {
		parts = append(parts, fmt.Sprintf("volume: %v", *p.Volume))
	}
	if p.IsMuted != nil {
		parts = append(parts, fmt.Sprintf("isMuted: %v", *p.IsMuted))
	}
	return "{" + strings.Join(parts, ", ") + "}"
}
