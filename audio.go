package spiraltree

import (
	"bytes"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/hajimehoshi/ebiten/v2/audio"
	"github.com/hajimehoshi/ebiten/v2/audio/mp3"
	"github.com/hajimehoshi/ebiten/v2/audio/vorbis"
	"github.com/hajimehoshi/ebiten/v2/audio/wav"
)

// AudioPlayer is a play-once background track. Play failures are reported
// but never fatal to the show.
type AudioPlayer interface {
	Play() error
}

// MusicSampleRate is the audio context rate used by LoadMusic.
const MusicSampleRate = 44100

// MusicPlayer plays a decoded track once through an ebiten audio context.
type MusicPlayer struct {
	player *audio.Player
	played bool
}

// LoadMusic decodes an .mp3, .ogg or .wav file into a player at the given
// volume. ctx may be nil, in which case the process-wide context is created
// (or reused) at MusicSampleRate.
func LoadMusic(ctx *audio.Context, path string, volume float64) (*MusicPlayer, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("load music %s: %w", path, err)
	}
	if ctx == nil {
		ctx = audio.CurrentContext()
		if ctx == nil {
			ctx = audio.NewContext(MusicSampleRate)
		}
	}
	stream, err := decodeTrack(ctx.SampleRate(), filepath.Ext(path), bytes.NewReader(data))
	if err != nil {
		return nil, fmt.Errorf("load music %s: %w", path, err)
	}
	p, err := ctx.NewPlayer(stream)
	if err != nil {
		return nil, fmt.Errorf("load music %s: %w", path, err)
	}
	p.SetVolume(volume)
	return &MusicPlayer{player: p}, nil
}

// decodeTrack picks a decoder by file extension.
func decodeTrack(sampleRate int, ext string, r io.ReadSeeker) (io.Reader, error) {
	switch strings.ToLower(ext) {
	case ".mp3":
		return mp3.DecodeWithSampleRate(sampleRate, r)
	case ".ogg":
		return vorbis.DecodeWithSampleRate(sampleRate, r)
	case ".wav":
		return wav.DecodeWithSampleRate(sampleRate, r)
	default:
		return nil, fmt.Errorf("unsupported audio format %q", ext)
	}
}

// Play starts the track. Later calls are no-ops; the track never loops.
func (m *MusicPlayer) Play() error {
	if m.played {
		return nil
	}
	m.played = true
	m.player.Play()
	return nil
}
