package captions

import (
	"bytes"
	"embed"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/milk9111/replaycontrols/controls"
	"gopkg.in/yaml.v3"
)

const DefaultFile = "default.yaml"

//go:embed *.yaml
var CaptionsFS embed.FS

// Dir is where caption files on disk take precedence over the embedded ones.
var Dir = "captions"

// Load reads a caption file, preferring a copy under Dir. The embedded copy
// is used only when no file exists on disk.
func Load(name string) ([]byte, error) {
	clean := cleanCaptionPath(name)
	data, err := os.ReadFile(diskCaptionPath(clean))
	if err == nil {
		return data, nil
	}
	if !errors.Is(err, fs.ErrNotExist) {
		return nil, err
	}
	return CaptionsFS.ReadFile(clean)
}

func ModTime(name string) (time.Time, bool) {
	info, err := os.Stat(diskCaptionPath(cleanCaptionPath(name)))
	if err != nil {
		return time.Time{}, false
	}
	return info.ModTime(), true
}

// Default returns the embedded caption set.
func Default() controls.Captions {
	data, err := CaptionsFS.ReadFile(DefaultFile)
	if err != nil {
		panic("captions: embedded default missing: " + err.Error())
	}
	var c controls.Captions
	if err := yaml.Unmarshal(data, &c); err != nil {
		panic("captions: embedded default invalid: " + err.Error())
	}
	return c
}

// LoadCaptions loads and decodes a caption file. Fields the file leaves out
// are taken from the embedded default.
func LoadCaptions(name string) (controls.Captions, error) {
	data, err := Load(name)
	if err != nil {
		return controls.Captions{}, fmt.Errorf("captions: load %s: %w", name, err)
	}
	c, err := Parse(data)
	if err != nil {
		return controls.Captions{}, fmt.Errorf("captions: unmarshal %s: %w", name, err)
	}
	return c, nil
}

func Parse(data []byte) (controls.Captions, error) {
	var c controls.Captions
	if err := yaml.Unmarshal(data, &c); err != nil {
		return controls.Captions{}, err
	}
	return WithDefaults(c, Default()), nil
}

// WithDefaults fills every empty field of c from def.
func WithDefaults(c, def controls.Captions) controls.Captions {
	fill := func(dst *string, src string) {
		if *dst == "" {
			*dst = src
		}
	}
	fill(&c.Label, def.Label)
	fill(&c.MuteToggleLabel, def.MuteToggleLabel)
	fill(&c.VolumeSliderLabel, def.VolumeSliderLabel)
	fill(&c.MutedContent, def.MutedContent)
	fill(&c.UnmutedContent, def.UnmutedContent)
	fill(&c.VolumeSliderHandleContent, def.VolumeSliderHandleContent)
	fill(&c.VolumeSliderTrackContent, def.VolumeSliderTrackContent)
	fill(&c.ClassNamePrefix, def.ClassNamePrefix)
	return c
}

func cleanCaptionPath(path string) string {
	if path == "" {
		return DefaultFile
	}
	s := filepath.ToSlash(path)
	if after, ok := strings.CutPrefix(s, Dir+"/"); ok {
		s = after
	}
	if filepath.Ext(s) == "" {
		s += ".yaml"
	}
	return s
}

func diskCaptionPath(clean string) string {
	return filepath.Join(Dir, filepath.FromSlash(clean))
}

// Check strictly decodes a caption file and lists the yaml keys it leaves
// empty. Unknown keys are an error.
func Check(data []byte) ([]string, error) {
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)

	var c controls.Captions
	if err := dec.Decode(&c); err != nil {
		return nil, err
	}
	return MissingFields(c), nil
}

// MissingFields returns the yaml keys of c that are empty.
func MissingFields(c controls.Captions) []string {
	fields := []struct {
		key   string
		value string
	}{
		{"label", c.Label},
		{"mute_toggle_label", c.MuteToggleLabel},
		{"volume_slider_label", c.VolumeSliderLabel},
		{"muted_content", c.MutedContent},
		{"unmuted_content", c.UnmutedContent},
		{"volume_slider_handle_content", c.VolumeSliderHandleContent},
		{"volume_slider_track_content", c.VolumeSliderTrackContent},
		{"class_name_prefix", c.ClassNamePrefix},
	}

	var missing []string
	for _, f := range fields {
		if f.value == "" {
			missing = append(missing, f.key)
		}
	}
	return missing
}
