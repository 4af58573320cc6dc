package tracker

import (
	"bytes"
	"context"
	"io"
	"math"
	"os"
	"path/filepath"
	"strings"
	"sync"
	"time"

	"github.com/gopxl/beep/v2"
	"github.com/gopxl/beep/v2/flac"
	"github.com/gopxl/beep/v2/mp3"
	"github.com/gopxl/beep/v2/speaker"
	"github.com/gopxl/beep/v2/vorbis"
	"github.com/gopxl/beep/v2/wav"

	"github.com/ayoisaiah/vntracker/internal/apperr"
)

// SoundRate is the sample rate every sound is resampled to before playback.
const SoundRate = beep.SampleRate(44100)

const (
	chimeVolume = 0.3
	chimeDecay  = 6.0
	// resampling quality passed to beep.Resample
	resampleQuality = 4
)

var (
	errInvalidSoundFormat = &apperr.Error{
		Message: "unsupported sound format %q: use wav, mp3, ogg or flac",
	}

	errReadSound = &apperr.Error{
		Message: "unable to read sound file",
	}
)

// Player plays a stream sampled at SoundRate and blocks until it ends.
type Player interface {
	Play(ctx context.Context, s beep.Streamer) error
}

// SoundHook plays a short sound for each recorded session. File selects an
// audio file; when it is empty a built-in two-note chime is used.
type SoundHook struct {
	// Player defaults to the system speaker
	Player Player
	File   string
}

func (h SoundHook) AfterSession(ctx context.Context, _ Result) error {
	s, err := h.stream()
	if err != nil {
		return err
	}

	p := h.Player
	if p == nil {
		p = speakerPlayer{}
	}

	return p.Play(ctx, s)
}

func (h SoundHook) stream() (beep.Streamer, error) {
	if h.File == "" {
		return Chime(), nil
	}

	data, err := os.ReadFile(h.File)
	if err != nil {
		return nil, errReadSound.Wrap(err)
	}

	var (
		stream beep.StreamSeekCloser
		format beep.Format
	)

	switch ext := strings.ToLower(filepath.Ext(h.File)); ext {
	case ".wav":
		stream, format, err = wav.Decode(bytes.NewReader(data))
	case ".mp3":
		stream, format, err = mp3.Decode(io.NopCloser(bytes.NewReader(data)))
	case ".ogg":
		stream, format, err = vorbis.Decode(io.NopCloser(bytes.NewReader(data)))
	case ".flac":
		stream, format, err = flac.Decode(bytes.NewReader(data))
	default:
		return nil, errInvalidSoundFormat.Fmt(ext)
	}

	if err != nil {
		return nil, errReadSound.Wrap(err)
	}

	return beep.Resample(resampleQuality, format.SampleRate, SoundRate, stream), nil
}

// Chime returns the default session sound sampled at SoundRate.
func Chime() beep.Streamer {
	return beep.Seq(
		tone(880, 150*time.Millisecond),
		tone(1320, 250*time.Millisecond),
	)
}

// tone is a decaying sine wave of the given frequency.
func tone(freq float64, d time.Duration) beep.Streamer {
	total := SoundRate.N(d)
	pos := 0

	return beep.StreamerFunc(func(samples [][2]float64) (int, bool) {
		if pos >= total {
			return 0, false
		}

		n := min(len(samples), total-pos)

		for i := range n {
			t := float64(pos+i) / float64(SoundRate)
			v := chimeVolume * math.Sin(2*math.Pi*freq*t) * math.Exp(-chimeDecay*t)
			samples[i] = [2]float64{v, v}
		}

		pos += n

		return n, true
	})
}

var (
	speakerOnce sync.Once
	speakerErr  error
)

type speakerPlayer struct{}

func (speakerPlayer) Play(ctx context.Context, s beep.Streamer) error {
	speakerOnce.Do(func() {
		speakerErr = speaker.Init(SoundRate, SoundRate.N(time.Second/10))
	})

	if speakerErr != nil {
		return speakerErr
	}

	done := make(chan struct{})

	speaker.Play(beep.Seq(s, beep.Callback(func() {
		close(done)
	})))

	select {
	case <-done:
		return nil
	case <-ctx.Done():
		speaker.Clear()
		return ctx.Err()
	}
}
