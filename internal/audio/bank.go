package audio

import (
	"fmt"
	"os"
	"path/filepath"
	"sync"
	"time"

	"github.com/charmbracelet/log"
	"github.com/gopxl/beep"
	"github.com/gopxl/beep/speaker"
	"github.com/gopxl/beep/wav"
)

const (
	sampleRate       = beep.SampleRate(44100)
	resampleQuality  = 4
	speakerBufferLen = 100 * time.Millisecond
)

var bankFormat = beep.Format{SampleRate: sampleRate, NumChannels: 2, Precision: 2}

// SoundBank holds decoded sound effects and mixes them onto the speaker.
type SoundBank struct {
	mu          sync.Mutex
	buffers     map[string]*beep.Buffer
	mixer       *beep.Mixer
	volume      float64
	initialized bool
	logger      *log.Logger
}

// Options configures a SoundBank.
type Options struct {
	Volume   float64     // Linear master gain, 0.0 .. 1.0
	SoundDir string      // Directory with <key> WAV files; empty synthesizes every sound
	Logger   *log.Logger // Defaults to the global logger
}

// NewSoundBank decodes every key, preferring <SoundDir>/<key> and falling back
// to the synthesized sound. A key with neither is an error.
func NewSoundBank(opts Options, keys ...string) (*SoundBank, error) {
	logger := opts.Logger
	if logger == nil {
		logger = log.Default()
	}

	b := &SoundBank{
		buffers: make(map[string]*beep.Buffer, len(keys)),
		mixer:   &beep.Mixer{},
		volume:  opts.Volume,
		logger:  logger,
	}

	for _, key := range keys {
		s, err := b.source(opts.SoundDir, key)
		if err != nil {
			return nil, err
		}
		buf := beep.NewBuffer(bankFormat)
		buf.Append(s)
		b.buffers[key] = buf
	}
	return b, nil
}

// source picks the stream for key: the WAV file when present, otherwise the
// synthesized sound.
func (b *SoundBank) source(dir, key string) (beep.Streamer, error) {
	if dir != "" {
		path := filepath.Join(dir, key)
		s, err := loadWAV(path)
		if err == nil {
			b.logger.Debug("loaded sound", "key", key, "path", path)
			return s, nil
		}
		b.logger.Warn("sound file unusable, using built-in", "key", key, "err", err)
	}

	if s := synthesize(key, sampleRate); s != nil {
		return s, nil
	}
	return nil, fmt.Errorf("audio: no source for sound %q", key)
}

// loadWAV decodes a WAV file fully and resamples it to the bank rate.
func loadWAV(path string) (beep.Streamer, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("audio: open %s: %w", path, err)
	}

	s, format, err := wav.Decode(f)
	if err != nil {
		f.Close()
		return nil, fmt.Errorf("audio: decode %s: %w", path, err)
	}
	defer s.Close()

	// Buffer at the file's own rate so the decoder can be closed here.
	raw := beep.NewBuffer(format)
	raw.Append(s)
	if err := s.Err(); err != nil {
		return nil, fmt.Errorf("audio: decode %s: %w", path, err)
	}

	var out beep.Streamer = raw.Streamer(0, raw.Len())
	if format.SampleRate != sampleRate {
		out = beep.Resample(resampleQuality, format.SampleRate, sampleRate, out)
	}
	return out, nil
}

// Init opens the audio device and starts the mixer. Calling Init again is a no-op.
func (b *SoundBank) Init() error {
	b.mu.Lock()
	defer b.mu.Unlock()

	if b.initialized {
		return nil
	}

	if err := speaker.Init(sampleRate, sampleRate.N(speakerBufferLen)); err != nil {
		return fmt.Errorf("audio: init speaker: %w", err)
	}
	speaker.Play(b.mixer)
	b.initialized = true
	return nil
}

// Play starts key on the mixer. Sounds overlap; unknown keys are logged and
// skipped. Before Init, Play does nothing.
func (b *SoundBank) Play(key string) {
	buf, ok := b.buffers[key]
	if !ok {
		b.logger.Warn("unknown sound", "key", key)
		return
	}

	b.mu.Lock()
	defer b.mu.Unlock()
	if !b.initialized {
		return
	}

	speaker.Lock()
	b.mixer.Add(withVolume(buf.Streamer(0, buf.Len()), b.volume))
	speaker.Unlock()
}

// Has reports whether key is loaded.
func (b *SoundBank) Has(key string) bool {
	_, ok := b.buffers[key]
	return ok
}

// Duration returns the length of a loaded sound, zero for unknown keys.
func (b *SoundBank) Duration(key string) time.Duration {
	buf, ok := b.buffers[key]
	if !ok {
		return 0
	}
	return sampleRate.D(buf.Len())
}

// Close silences everything and releases the device.
func (b *SoundBank) Close() {
	b.mu.Lock()
	defer b.mu.Unlock()

	if !b.initialized {
		return
	}
	speaker.Lock()
	b.mixer.Clear()
	speaker.Unlock()
	speaker.Close()
	b.initialized = false
}
