// Package audio plays the optional tap sound.
package audio

import (
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/faiface/beep"
	"github.com/faiface/beep/flac"
	"github.com/faiface/beep/mp3"
	"github.com/faiface/beep/speaker"
	"github.com/faiface/beep/wav"
)

// ErrUnsupported is returned for files that are not wav, mp3 or flac.
var ErrUnsupported = errors.New("unsupported audio file type")

// Click is a short sound decoded fully into memory so it can be replayed
// on every tap.
type Click struct {
	buffer *beep.Buffer
	format beep.Format
}

// Load decodes the sound at path.
func Load(path string) (*Click, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	c, err := Decode(f, filepath.Ext(path))
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return c, nil
}

// Decode buffers the whole stream from rc, choosing the decoder by file
// extension. rc is closed before Decode returns.
func Decode(rc io.ReadCloser, ext string) (*Click, error) {
	var (
		streamer beep.StreamSeekCloser
		format   beep.Format
		err      error
	)
	switch strings.ToLower(ext) {
	case ".wav":
		streamer, format, err = wav.Decode(rc)
	case ".mp3":
		streamer, format, err = mp3.Decode(rc)
	case ".flac":
		streamer, format, err = flac.Decode(rc)
	default:
		_ = rc.Close()
		return nil, fmt.Errorf("%w: %q", ErrUnsupported, ext)
	}
	if err != nil {
		_ = rc.Close()
		return nil, fmt.Errorf("decode audio: %w", err)
	}
	defer streamer.Close()

	buf := beep.NewBuffer(format)
	buf.Append(streamer)
	if err := streamer.Err(); err != nil {
		return nil, fmt.Errorf("read audio: %w", err)
	}
	return &Click{buffer: buf, format: format}, nil
}

// Len is the number of buffered samples.
func (c *Click) Len() int { return c.buffer.Len() }

func (c *Click) Format() beep.Format { return c.format }

// Duration is the playback length of the sound.
func (c *Click) Duration() time.Duration {
	return c.format.SampleRate.D(c.buffer.Len())
}

// Player owns the speaker. The speaker is initialized lazily on the first
// Play with the sample rate of that sound; later sounds are resampled to it.
type Player struct {
	rate     beep.SampleRate
	initDone bool
}

// Play starts c from the beginning, mixing with anything already playing.
func (p *Player) Play(c *Click) error {
	if c == nil {
		return nil
	}
	if !p.initDone {
		if err := speaker.Init(c.format.SampleRate, c.format.SampleRate.N(time.Second/20)); err != nil {
			return fmt.Errorf("init speaker: %w", err)
		}
		p.rate = c.format.SampleRate
		p.initDone = true
	}

	var s beep.Streamer = c.buffer.Streamer(0, c.buffer.Len())
	if c.format.SampleRate != p.rate {
		s = beep.Resample(4, c.format.SampleRate, p.rate, s)
	}
	speaker.Play(s)
	return nil
}

// Close stops everything the player started.
func (p *Player) Close() {
	if !p.initDone {
		return
	}
	speaker.Lock()
	speaker.Clear()
	speaker.Unlock()
}
