package prefabs

import (
	"fmt"

	"gopkg.in/yaml.v3"
)

// SpriteSetSpec describes the animations and sounds of one entity skin.
// Sprite sets ship as YAML files embedded next to this package.
type SpriteSetSpec struct {
	Name       string                   `yaml:"name"`
	Animations map[string]AnimationSpec `yaml:"animations"`
	Sounds     map[string]string        `yaml:"sounds"`
}

// AnimationSpec is one frame strip: the image it reads and how it plays.
type AnimationSpec struct {
	File      string  `yaml:"file"`
	FrameTime float64 `yaml:"frame_time"`
	Looping   bool    `yaml:"looping"`
}

// LoadSpec loads and decodes an embedded YAML spec file.
func LoadSpec[T any](filename string) (T, error) {
	var zero T
	data, err := Load(filename)
	if err != nil {
		return zero, fmt.Errorf("prefabs: load %s: %w", filename, err)
	}

	var spec T
	if err := yaml.Unmarshal(data, &spec); err != nil {
		return zero, fmt.Errorf("prefabs: unmarshal %s: %w", filename, err)
	}
	return spec, nil
}

// LoadSpriteSet loads the sprite set named name from name.yaml.
func LoadSpriteSet(name string) (*SpriteSetSpec, error) {
	spec, err := LoadSpec[SpriteSetSpec](name + ".yaml")
	if err != nil {
		return nil, err
	}
	if spec.Name == "" {
		spec.Name = name
	}
	if len(spec.Animations) == 0 {
		return nil, fmt.Errorf("prefabs: sprite set %q declares no animations", name)
	}
	for animName, anim := range spec.Animations {
		if anim.File == "" {
			return nil, fmt.Errorf("prefabs: sprite set %q animation %q has no file", name, animName)
		}
		if anim.FrameTime <= 0 {
			return nil, fmt.Errorf("prefabs: sprite set %q animation %q has non-positive frame time", name, animName)
		}
	}
	return &spec, nil
}
