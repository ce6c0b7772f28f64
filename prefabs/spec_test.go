package prefabs

import (
	"os"
	"path/filepath"
	"testing"
)

func TestLoadSpriteSetPlayer(t *testing.T) {
	set, err := LoadSpriteSet("player")
	if err != nil {
		t.Fatalf("LoadSpriteSet: %v", err)
	}

	if set.Name != "player" {
		t.Fatalf("expected name player, got %q", set.Name)
	}
	for _, name := range []string{"idle", "run", "jump", "celebrate", "die"} {
		anim, ok := set.Animations[name]
		if !ok {
			t.Fatalf("missing animation %q", name)
		}
		if anim.File == "" || anim.FrameTime <= 0 {
			t.Fatalf("animation %q not fully specified: %+v", name, anim)
		}
	}
	if !set.Animations["run"].Looping {
		t.Fatal("expected run animation to loop")
	}
	if set.Animations["die"].Looping {
		t.Fatal("expected die animation not to loop")
	}
	for _, name := range []string{"jump", "killed", "fall"} {
		if set.Sounds[name] == "" {
			t.Fatalf("missing sound %q", name)
		}
	}
}

func TestLoadSpriteSetMonsters(t *testing.T) {
	for _, name := range []string{"monster_a", "monster_b", "monster_c", "monster_d"} {
		set, err := LoadSpriteSet(name)
		if err != nil {
			t.Fatalf("LoadSpriteSet(%s): %v", name, err)
		}
		for _, anim := range []string{"run", "idle"} {
			if _, ok := set.Animations[anim]; !ok {
				t.Fatalf("sprite set %q missing animation %q", name, anim)
			}
		}
	}
}

func TestLoadSpriteSetUnknown(t *testing.T) {
	if _, err := LoadSpriteSet("dragon"); err == nil {
		t.Fatal("expected error for unknown sprite set")
	}
}

func TestLoadSpriteSetValidation(t *testing.T) {
	cases := []struct {
		name string
		yaml string
	}{
		{"no_animations", "name: bad\nanimations: {}\n"},
		{"missing_file", "animations:\n  run:\n    frame_time: 0.1\n"},
		{"zero_frame_time", "animations:\n  run:\n    file: sprites/bad/run.png\n    frame_time: 0\n"},
		{"negative_frame_time", "animations:\n  run:\n    file: sprites/bad/run.png\n    frame_time: -0.1\n"},
	}

	dir := t.TempDir()
	Dir = dir
	defer func() { Dir = "" }()

	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			path := filepath.Join(dir, "bad.yaml")
			if err := os.WriteFile(path, []byte(c.yaml), 0o644); err != nil {
				t.Fatalf("write spec: %v", err)
			}
			if _, err := LoadSpriteSet("bad"); err == nil {
				t.Fatal("expected validation error")
			}
		})
	}
}

func TestDirOverridesEmbedded(t *testing.T) {
	dir := t.TempDir()
	override := "name: override\nanimations:\n  idle:\n    file: sprites/override/idle.png\n    frame_time: 0.5\n"
	if err := os.WriteFile(filepath.Join(dir, "player.yaml"), []byte(override), 0o644); err != nil {
		t.Fatalf("write override: %v", err)
	}

	Dir = dir
	defer func() { Dir = "" }()

	set, err := LoadSpriteSet("player")
	if err != nil {
		t.Fatalf("LoadSpriteSet: %v", err)
	}
	if set.Name != "override" {
		t.Fatalf("expected override spec, got name %q", set.Name)
	}
}
