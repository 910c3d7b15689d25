package config

import (
	"fmt"
	"image/color"
	"os"
	"strconv"
	"strings"

	"github.com/hajimehoshi/ebiten/v2"
	"gopkg.in/yaml.v3"
)

// File is the optional YAML override file. Every field is optional; absent
// fields keep the compiled-in defaults.
type File struct {
	Overlay  *OverlayFile        `yaml:"overlay"`
	Host     *HostFile           `yaml:"host"`
	Warp     *WarpFile           `yaml:"warp"`
	Cheats   *CheatsFile         `yaml:"cheats"`
	Bindings map[string][]string `yaml:"bindings"` // action name -> key names
}

type OverlayFile struct {
	DimColor          *YAMLColor `yaml:"dim_color"`
	GuideColor        *YAMLColor `yaml:"guide_color"`
	TextColorNormal   *YAMLColor `yaml:"text_color"`
	TextColorSelected *YAMLColor `yaml:"text_color_selected"`
	BlinkPeriod       *float32   `yaml:"blink_period"`
}

type HostFile struct {
	RunAccel        *float32 `yaml:"run_accel"`
	DefaultMaxSpeed *float32 `yaml:"max_speed"`
	Friction        *float32 `yaml:"friction"`
	JumpSpeed       *float32 `yaml:"jump_speed"`
	Gravity         *float32 `yaml:"gravity"`
}

type WarpFile struct {
	HereRadius *float32 `yaml:"here_radius"`
}

type CheatsFile struct {
	MoonJumpSpeed   *float32 `yaml:"moon_jump_speed"`
	FastRunMaxSpeed *float32 `yaml:"fast_run_max_speed"`
}

// YAMLColor parses "#RRGGBB" or "#RRGGBBAA".
type YAMLColor struct {
	color.RGBA
}

func (c *YAMLColor) UnmarshalYAML(value *yaml.Node) error {
	if value.Kind != yaml.ScalarNode {
		return fmt.Errorf("color must be a string")
	}

	s := strings.TrimPrefix(value.Value, "#")
	if len(s) != 6 && len(s) != 8 {
		return fmt.Errorf("invalid color format: %s", value.Value)
	}

	var parts [4]uint8
	parts[3] = 255
	for i := 0; i*2 < len(s); i++ {
		v, err := strconv.ParseUint(s[i*2:i*2+2], 16, 8)
		if err != nil {
			return fmt.Errorf("invalid color format: %s", value.Value)
		}
		parts[i] = uint8(v)
	}

	c.RGBA = color.RGBA{R: parts[0], G: parts[1], B: parts[2], A: parts[3]}
	return nil
}

// LoadFile reads and parses an override file.
func LoadFile(path string) (*File, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("config: load %s: %w", path, err)
	}
	f, err := ParseFile(data)
	if err != nil {
		return nil, fmt.Errorf("config: %s: %w", path, err)
	}
	return f, nil
}

// ParseFile parses override file contents.
func ParseFile(data []byte) (*File, error) {
	var f File
	if err := yaml.Unmarshal(data, &f); err != nil {
		return nil, fmt.Errorf("unmarshal: %w", err)
	}
	return &f, nil
}

// Apply copies the overrides into the global configuration. Bindings are
// validated before anything is changed, so a bad file leaves the globals
// untouched.
func (f *File) Apply() error {
	bindings, err := f.parseBindings()
	if err != nil {
		return err
	}

	if o := f.Overlay; o != nil {
		setColor(&Overlay.DimColor, o.DimColor)
		setColor(&Overlay.GuideColor, o.GuideColor)
		setColor(&Overlay.TextColorNormal, o.TextColorNormal)
		setColor(&Overlay.TextColorSelected, o.TextColorSelected)
		setFloat(&Overlay.BlinkPeriod, o.BlinkPeriod)
	}
	if h := f.Host; h != nil {
		setFloat(&Host.RunAccel, h.RunAccel)
		setFloat(&Host.DefaultMaxSpeed, h.DefaultMaxSpeed)
		setFloat(&Host.Friction, h.Friction)
		setFloat(&Host.JumpSpeed, h.JumpSpeed)
		setFloat(&Host.Gravity, h.Gravity)
	}
	if w := f.Warp; w != nil {
		setFloat(&Warp.HereRadius, w.HereRadius)
	}
	if c := f.Cheats; c != nil {
		setFloat(&Cheats.MoonJumpSpeed, c.MoonJumpSpeed)
		setFloat(&Cheats.FastRunMaxSpeed, c.FastRunMaxSpeed)
	}

	for id, keys := range bindings {
		b := Input.Bindings[id]
		b.Keys = keys
		Input.Bindings[id] = b
	}
	return nil
}

func (f *File) parseBindings() (map[ActionID][]ebiten.Key, error) {
	out := make(map[ActionID][]ebiten.Key, len(f.Bindings))
	for name, keyNames := range f.Bindings {
		id, ok := ActionNames[name]
		if !ok {
			return nil, fmt.Errorf("config: unknown action %q", name)
		}
		keys := make([]ebiten.Key, 0, len(keyNames))
		for _, kn := range keyNames {
			var k ebiten.Key
			if err := k.UnmarshalText([]byte(kn)); err != nil {
				return nil, fmt.Errorf("config: action %q: unknown key %q", name, kn)
			}
			keys = append(keys, k)
		}
		out[id] = keys
	}
	return out, nil
}

func setColor(dst *color.RGBA, src *YAMLColor) {
	if src != nil {
		*dst = src.RGBA
	}
}

func setFloat(dst *float32, src *float32) {
	if src != nil {
		*dst = *src
	}
}

// ApplyFile loads path and applies it.
func ApplyFile(path string) error {
	f, err := LoadFile(path)
	if err != nil {
		return err
	}
	if err := f.Apply(); err != nil {
		return fmt.Errorf("config: %s: %w", path, err)
	}
	return nil
}
