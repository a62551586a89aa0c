package game

import (
	"bytes"
	"fmt"
	"io"
	"log"
	"path/filepath"
	"strings"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/audio"
	"github.com/hajimehoshi/ebiten/v2/audio/mp3"
	"github.com/hajimehoshi/ebiten/v2/audio/vorbis"
	"github.com/hajimehoshi/ebiten/v2/audio/wav"
	"github.com/hajimehoshi/ebiten/v2/text/v2"
	"golang.org/x/image/font/gofont/gomono"

	auaudio "github.com/decker502/bdaygreet/internal/audio"
	"github.com/decker502/bdaygreet/pkg/embedded"
	"github.com/decker502/bdaygreet/pkg/utils"
)

// ResourceManager is responsible for centralized management of greeting resources.
// It decodes audio tracks, builds text faces from the embedded Go Mono font and
// caches rasterised rounded panels, so each resource is created only once.
//
// Thread Safety Note:
// This implementation is NOT thread-safe. The internal caches use standard Go maps.
// All loading happens on the game loop goroutine.
//
// Usage:
//
//	audioContext := audio.NewContext(48000)
//	rm := NewResourceManager(audioContext)
//	track := rm.LoadTrackOrSilent("assets/audio/song1.au", 0.8, false)
type ResourceManager struct {
	audioContext  *audio.Context                     // Global audio context, nil means no audio device
	trackCache    map[trackKey]Track                 // Cache for decoded tracks
	fontSource    *text.GoTextFaceSource             // Parsed Go Mono font
	fontFaceCache map[float64]*text.GoTextFace       // Cache for text faces: size -> face
	panelCache    map[utils.PanelStyle]*ebiten.Image // Cache for rasterised panels
}

// NewResourceManager creates a ResourceManager.
//
// Parameters:
//   - audioContext: The audio context used for playback. May be nil, in which
//     case every track loads as a silent track.
func NewResourceManager(audioContext *audio.Context) *ResourceManager {
	return &ResourceManager{
		audioContext:  audioContext,
		trackCache:    make(map[trackKey]Track),
		fontFaceCache: make(map[float64]*text.GoTextFace),
		panelCache:    make(map[utils.PanelStyle]*ebiten.Image),
	}
}

// trackKey 同一文件的循环与单次播放器分别缓存
type trackKey struct {
	path string
	loop bool
}

// LoadTrack decodes an audio file and wraps it in a player.
// Background music loops; songs picked from the song list play once.
// Supported formats: MP3 (.mp3), OGG Vorbis (.ogg), WAV (.wav) and Sun audio (.au).
//
// The file is looked up in the embedded assets first, then on disk.
//
// Parameters:
//   - path: The track path (e.g., "assets/audio/song1.au").
//   - volume: Player volume, 0.0 ~ 1.0.
//   - loop: Restart from the beginning when the track ends.
//
// Returns:
//   - Track ready to play (not started).
//   - An error if the file is missing, the format is unsupported or decoding fails.
func (rm *ResourceManager) LoadTrack(path string, volume float64, loop bool) (Track, error) {
	key := trackKey{path: path, loop: loop}
	if cached, exists := rm.trackCache[key]; exists {
		return cached, nil
	}
	if rm.audioContext == nil {
		return nil, fmt.Errorf("no audio context for %s", path)
	}

	data, err := embedded.ReadFileOrDisk(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read audio file %s: %w", path, err)
	}

	stream, err := rm.decode(path, bytes.NewReader(data))
	if err != nil {
		return nil, err
	}

	var src io.Reader = stream
	if loop {
		src = audio.NewInfiniteLoop(stream, stream.Length())
	}

	player, err := rm.audioContext.NewPlayer(src)
	if err != nil {
		return nil, fmt.Errorf("failed to create audio player for %s: %w", path, err)
	}
	player.SetVolume(volume)

	track := &playerTrack{name: path, player: player, loop: loop}
	rm.trackCache[key] = track
	return track, nil
}

// LoadTrackOrSilent loads a track and falls back to a silent track on any error.
// Missing audio never stops the greeting from running.
func (rm *ResourceManager) LoadTrackOrSilent(path string, volume float64, loop bool) Track {
	track, err := rm.LoadTrack(path, volume, loop)
	if err != nil {
		log.Printf("[ResourceManager] Warning: using silent track for %s: %v", path, err)
		return NewSilentTrack()
	}
	return track
}

// decode 根据扩展名选择解码器，统一重采样到音频上下文的采样率
func (rm *ResourceManager) decode(path string, r io.ReadSeeker) (interface {
	io.ReadSeeker
	Length() int64
}, error) {
	rate := rm.audioContext.SampleRate()
	ext := strings.ToLower(filepath.Ext(path))

	switch ext {
	case ".mp3":
		s, err := mp3.DecodeWithSampleRate(rate, r)
		if err != nil {
			return nil, fmt.Errorf("failed to decode MP3 audio %s: %w", path, err)
		}
		return s, nil
	case ".ogg":
		s, err := vorbis.DecodeWithSampleRate(rate, r)
		if err != nil {
			return nil, fmt.Errorf("failed to decode OGG audio %s: %w", path, err)
		}
		return s, nil
	case ".wav":
		s, err := wav.DecodeWithSampleRate(rate, r)
		if err != nil {
			return nil, fmt.Errorf("failed to decode WAV audio %s: %w", path, err)
		}
		return s, nil
	case ".au":
		s, err := auaudio.DecodeAU(r, rate)
		if err != nil {
			return nil, fmt.Errorf("failed to decode AU audio %s: %w", path, err)
		}
		return s, nil
	}
	return nil, fmt.Errorf("unsupported audio format: %s (supported: .mp3, .ogg, .wav, .au)", ext)
}

// FontFace returns a Go Mono text face of the given size.
// Faces are cached by size; the font source is parsed once.
func (rm *ResourceManager) FontFace(size float64) (*text.GoTextFace, error) {
	if face, exists := rm.fontFaceCache[size]; exists {
		return face, nil
	}
	if rm.fontSource == nil {
		src, err := text.NewGoTextFaceSource(bytes.NewReader(gomono.TTF))
		if err != nil {
			return nil, fmt.Errorf("failed to parse Go Mono font: %w", err)
		}
		rm.fontSource = src
	}
	face := &text.GoTextFace{Source: rm.fontSource, Size: size}
	rm.fontFaceCache[size] = face
	return face, nil
}

// Panel returns the rasterised image of a rounded panel, rendering it on first use.
func (rm *ResourceManager) Panel(style utils.PanelStyle) (*ebiten.Image, error) {
	if img, exists := rm.panelCache[style]; exists {
		return img, nil
	}
	rendered, err := utils.RenderPanel(style)
	if err != nil {
		return nil, fmt.Errorf("failed to render panel %dx%d: %w", style.W, style.H, err)
	}
	img := ebiten.NewImageFromImage(rendered)
	rm.panelCache[style] = img
	return img, nil
}
