package audio

import (
	"errors"
	"fmt"
	"log"
	"math"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/faiface/beep"
	"github.com/faiface/beep/effects"
	"github.com/faiface/beep/flac"
	"github.com/faiface/beep/mp3"
	"github.com/faiface/beep/speaker"
	"github.com/faiface/beep/wav"

	"github.com/iburimskiy/portfolio-backdrop/internal/config"
)

const snapshotSize = 1024

// Player plays the confirmation chime and exposes how loud it currently is.
type Player struct {
	rate   beep.SampleRate
	volume float64
	sound  *beep.Buffer
	tap    *Tap
	meter  Meter
}

// NewPlayer initializes the speaker. chimeFile may name a wav, mp3 or flac file
// to use instead of the built-in two-note chime.
func NewPlayer(volume float64, chimeFile string) (*Player, error) {
	rate := beep.SampleRate(config.ChimeSampleRate)

	sound, err := loadSound(rate, chimeFile)
	if err != nil {
		return nil, err
	}
	if err := speaker.Init(rate, rate.N(time.Second/20)); err != nil {
		return nil, fmt.Errorf("init speaker: %w", err)
	}
	log.Printf("[AUDIO] speaker ready at %d Hz", rate)

	return &Player{
		rate:   rate,
		volume: volume,
		sound:  sound,
		meter:  Meter{Smoothing: config.SmoothingFactor},
	}, nil
}

// Chime starts the confirmation sound, replacing one still playing.
func (p *Player) Chime() {
	t := NewTap(p.sound.Streamer(0, p.sound.Len()), config.ChimeRingSize)
	vol := &effects.Volume{Streamer: t, Base: 2, Volume: p.volume}

	p.tap = t
	speaker.Clear()
	speaker.Play(beep.Seq(vol, beep.Callback(t.Clear)))
}

// Level advances the loudness meter; call once per frame.
func (p *Player) Level() float64 {
	if p.tap == nil {
		return p.meter.Update(nil)
	}
	return p.meter.Update(p.tap.Snapshot(snapshotSize))
}

func (p *Player) Close() {
	speaker.Clear()
	speaker.Close()
}

func loadSound(rate beep.SampleRate, path string) (*beep.Buffer, error) {
	if path == "" {
		return synthChime(rate), nil
	}

	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	var (
		streamer beep.StreamSeekCloser
		format   beep.Format
	)
	switch ext := strings.ToLower(filepath.Ext(path)); ext {
	case ".wav":
		streamer, format, err = wav.Decode(f)
	case ".mp3":
		streamer, format, err = mp3.Decode(f)
	case ".flac":
		streamer, format, err = flac.Decode(f)
	default:
		return nil, errors.New("unsupported file type: " + ext)
	}
	if err != nil {
		return nil, fmt.Errorf("decode %s: %w", path, err)
	}
	defer streamer.Close()

	var src beep.Streamer = streamer
	if format.SampleRate != rate {
		src = beep.Resample(4, format.SampleRate, rate, streamer)
	}
	buf := beep.NewBuffer(beep.Format{SampleRate: rate, NumChannels: 2, Precision: 2})
	buf.Append(src)
	log.Printf("[AUDIO] loaded chime %s (%d samples)", path, buf.Len())
	return buf, nil
}

// synthChime renders two short decaying notes.
func synthChime(rate beep.SampleRate) *beep.Buffer {
	buf := beep.NewBuffer(beep.Format{SampleRate: rate, NumChannels: 2, Precision: 2})
	buf.Append(tone(rate, 880, 120*time.Millisecond))
	buf.Append(tone(rate, 1320, 220*time.Millisecond))
	return buf
}

func tone(rate beep.SampleRate, freq float64, d time.Duration) beep.Streamer {
	total := rate.N(d)
	pos := 0
	return beep.StreamerFunc(func(samples [][2]float64) (int, bool) {
		if pos >= total {
			return 0, false
		}
		n := 0
		for i := range samples {
			if pos >= total {
				break
			}
			t := float64(pos) / float64(rate)
			env := math.Exp(-6 * float64(pos) / float64(total))
			v := 0.4 * env * math.Sin(2*math.Pi*freq*t)
			samples[i] = [2]float64{v, v}
			pos++
			n++
		}
		return n, true
	})
}
