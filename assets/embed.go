package assets

import (
	"bytes"
	"embed"
	"fmt"
	"image"
	_ "image/png"
	"io"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/audio"
	"github.com/hajimehoshi/ebiten/v2/audio/wav"

	"github.com/milk9111/platformer/game"
	"github.com/milk9111/platformer/prefabs"
)

//go:embed tiles sprites backgrounds overlays sounds
var assetsFS embed.FS

const sampleRate = 44100

var audioContext = audio.NewContext(sampleRate)

var (
	imageCache = map[string]*ebiten.Image{}
	soundCache = map[string]*sound{}
)

// Store loads embedded assets. It satisfies game.Content; the zero value
// is ready to use and all Stores share one cache.
type Store struct{}

// Default is the content source the shell hands to levels.
var Default = &Store{}

// LoadImage decodes an embedded PNG by assets-relative path.
func (*Store) LoadImage(path string) (*ebiten.Image, error) {
	if img, ok := imageCache[path]; ok {
		return img, nil
	}
	b, err := assetsFS.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("assets: read %s: %w", path, err)
	}
	decoded, _, err := image.Decode(bytes.NewReader(b))
	if err != nil {
		return nil, fmt.Errorf("assets: decode %s: %w", path, err)
	}
	img := ebiten.NewImageFromImage(decoded)
	imageCache[path] = img
	return img, nil
}

// LoadSound decodes an embedded WAV into a fire-and-forget handle.
// Each Play spawns a fresh player, so overlapping plays are allowed.
func (*Store) LoadSound(path string) (game.Sound, error) {
	if s, ok := soundCache[path]; ok {
		return s, nil
	}
	pcm, err := decodeWAV(path)
	if err != nil {
		return nil, err
	}
	s := &sound{pcm: pcm}
	soundCache[path] = s
	return s, nil
}

// LoadSpriteSet resolves a sprite set through the prefabs package.
func (*Store) LoadSpriteSet(name string) (*prefabs.SpriteSetSpec, error) {
	return prefabs.LoadSpriteSet(name)
}

// LoadMusicPlayer decodes an embedded WAV into a looping player.
func LoadMusicPlayer(path string) (*audio.Player, error) {
	b, err := assetsFS.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("assets: read %s: %w", path, err)
	}
	stream, err := wav.DecodeWithSampleRate(sampleRate, bytes.NewReader(b))
	if err != nil {
		return nil, fmt.Errorf("assets: decode wav %s: %w", path, err)
	}
	loop := audio.NewInfiniteLoop(stream, stream.Length())
	player, err := audioContext.NewPlayer(loop)
	if err != nil {
		return nil, fmt.Errorf("assets: music player %s: %w", path, err)
	}
	return player, nil
}

func decodeWAV(path string) ([]byte, error) {
	b, err := assetsFS.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("assets: read %s: %w", path, err)
	}
	stream, err := wav.DecodeWithSampleRate(sampleRate, bytes.NewReader(b))
	if err != nil {
		return nil, fmt.Errorf("assets: decode wav %s: %w", path, err)
	}
	pcm, err := io.ReadAll(stream)
	if err != nil {
		return nil, fmt.Errorf("assets: read pcm %s: %w", path, err)
	}
	return pcm, nil
}

type sound struct {
	pcm []byte
}

func (s *sound) Play() {
	player := audioContext.NewPlayerFromBytes(s.pcm)
	player.Play()
}
