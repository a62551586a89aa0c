package game

import (
	"bytes"
	"encoding/binary"
	"image/color"
	"os"
	"testing"
	"testing/fstest"

	"github.com/hajimehoshi/ebiten/v2/audio"

	"github.com/decker502/bdaygreet/pkg/embedded"
	"github.com/decker502/bdaygreet/pkg/utils"
)

// Global audio context shared by all tests
// Ebitengine only allows one audio context to be created
var testAudioContext *audio.Context

// TestMain sets up the shared audio context and a small embedded asset tree
func TestMain(m *testing.M) {
	testAudioContext = audio.NewContext(48000)

	embedded.Init(fstest.MapFS{
		"assets/audio/tone.au":    &fstest.MapFile{Data: buildTestAU(8000, 800)},
		"assets/audio/broken.au":  &fstest.MapFile{Data: []byte("not an au file at all....")},
		"assets/audio/notes.midi": &fstest.MapFile{Data: []byte("MThd")},
	}, fstest.MapFS{})

	os.Exit(m.Run())
}

// buildTestAU creates a mono 16-bit PCM .au file
func buildTestAU(rate, frames int) []byte {
	var buf bytes.Buffer
	header := []uint32{0x2e736e64, 24, uint32(frames * 2), 3, uint32(rate), 1}
	for _, v := range header {
		binary.Write(&buf, binary.BigEndian, v)
	}
	for i := 0; i < frames; i++ {
		binary.Write(&buf, binary.BigEndian, int16((i%40)*500-10000))
	}
	return buf.Bytes()
}

func TestLoadTrack(t *testing.T) {
	rm := NewResourceManager(testAudioContext)

	track, err := rm.LoadTrack("assets/audio/tone.au", 0.5, true)
	if err != nil {
		t.Fatalf("LoadTrack failed: %v", err)
	}
	if track.IsPlaying() {
		t.Error("a freshly loaded track should not be playing")
	}

	again, err := rm.LoadTrack("assets/audio/tone.au", 0.5, true)
	if err != nil {
		t.Fatalf("second LoadTrack failed: %v", err)
	}
	if again != track {
		t.Error("expected cached track on second load")
	}
}

// TestLoadTrackLoopMode 只有背景音乐循环，歌曲播放一次后结束
func TestLoadTrackLoopMode(t *testing.T) {
	rm := NewResourceManager(testAudioContext)

	looped, err := rm.LoadTrack("assets/audio/tone.au", 1, true)
	if err != nil {
		t.Fatalf("LoadTrack(loop) failed: %v", err)
	}
	once, err := rm.LoadTrack("assets/audio/tone.au", 1, false)
	if err != nil {
		t.Fatalf("LoadTrack(once) failed: %v", err)
	}

	if looped == once {
		t.Fatal("looping and one-shot players of the same file must be cached separately")
	}
	if !looped.(*playerTrack).loop {
		t.Error("expected the background player to loop")
	}
	if once.(*playerTrack).loop {
		t.Error("expected the song player to play once")
	}
}

func TestLoadTrackErrors(t *testing.T) {
	rm := NewResourceManager(testAudioContext)

	tests := []struct {
		name string
		path string
	}{
		{"missing file", "assets/audio/missing.mp3"},
		{"corrupt au", "assets/audio/broken.au"},
		{"unsupported extension", "assets/audio/notes.midi"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := rm.LoadTrack(tt.path, 1, false); err == nil {
				t.Errorf("expected error for %s", tt.path)
			}
		})
	}
}

func TestLoadTrackOrSilentFallsBack(t *testing.T) {
	rm := NewResourceManager(testAudioContext)

	track := rm.LoadTrackOrSilent("assets/audio/missing.ogg", 1, false)
	if track == nil {
		t.Fatal("expected a silent track, got nil")
	}
	if _, ok := track.(*silentTrack); !ok {
		t.Errorf("expected *silentTrack, got %T", track)
	}

	noAudio := NewResourceManager(nil)
	if _, ok := noAudio.LoadTrackOrSilent("assets/audio/tone.au", 1, true).(*silentTrack); !ok {
		t.Error("without an audio context every track should be silent")
	}
}

func TestFontFaceCache(t *testing.T) {
	rm := NewResourceManager(nil)

	face, err := rm.FontFace(25)
	if err != nil {
		t.Fatalf("FontFace failed: %v", err)
	}
	if face.Size != 25 {
		t.Errorf("expected size 25, got %v", face.Size)
	}

	again, _ := rm.FontFace(25)
	if again != face {
		t.Error("expected cached face for the same size")
	}
	other, _ := rm.FontFace(34)
	if other == face || other.Source != face.Source {
		t.Error("faces of different sizes should share the font source only")
	}
}

func TestPanelCache(t *testing.T) {
	rm := NewResourceManager(nil)
	style := utils.PanelStyle{
		W: 112, H: 47, Radius: 11,
		Fill:       color.NRGBA{R: 0x2b, G: 0x9e, B: 0x4b, A: 255},
		Label:      "Replay",
		LabelColor: color.NRGBA{R: 255, G: 255, B: 255, A: 255},
		LabelSize:  19,
	}

	img, err := rm.Panel(style)
	if err != nil {
		t.Fatalf("Panel failed: %v", err)
	}
	if w, h := img.Bounds().Dx(), img.Bounds().Dy(); w != 112 || h != 47 {
		t.Errorf("expected 112x47 panel, got %dx%d", w, h)
	}
	if again, _ := rm.Panel(style); again != img {
		t.Error("expected cached panel image")
	}

	if _, err := rm.Panel(utils.PanelStyle{}); err == nil {
		t.Error("expected error for zero-size panel")
	}
}
