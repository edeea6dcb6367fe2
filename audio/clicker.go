package audio

import (
	"os"
	"strconv"
	"sync"
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/speaker"
)

const sampleRate = beep.SampleRate(48000)

// ClickerConfig shapes the feedback click
type ClickerConfig struct {
	Frequency float64
	Duration  time.Duration
	Volume    float64 // 0.0-1.0
	Wave      WaveType
}

// DefaultClickerConfig is a short soft square click
func DefaultClickerConfig() ClickerConfig {
	return ClickerConfig{
		Frequency: 880,
		Duration:  30 * time.Millisecond,
		Volume:    0.3,
		Wave:      WaveSquare,
	}
}

// LoadClickerConfig applies TEXTMODE_CLICK_VOLUME (0-100) to the defaults
func LoadClickerConfig() ClickerConfig {
	cfg := DefaultClickerConfig()
	if volume := os.Getenv("TEXTMODE_CLICK_VOLUME"); volume != "" {
		if val, err := strconv.Atoi(volume); err == nil {
			cfg.Volume = min(max(float64(val)/100.0, 0), 1)
		}
	}
	return cfg
}

// Clicker plays a short tone on every Click. Until Init succeeds it is silent.
type Clicker struct {
	mu          sync.Mutex
	cfg         ClickerConfig
	initialized bool
	clicks      int
}

// NewClicker creates an uninitialised clicker
func NewClicker(cfg ClickerConfig) *Clicker {
	return &Clicker{cfg: cfg}
}

// Init opens the audio device
func (c *Clicker) Init() error {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.initialized {
		return nil
	}
	if err := speaker.Init(sampleRate, sampleRate.N(time.Millisecond*50)); err != nil {
		return err
	}
	c.initialized = true
	return nil
}

// Tone returns a fresh streamer of one click
func (c *Clicker) Tone() beep.Streamer {
	osc := NewOscillator(c.cfg.Frequency, c.cfg.Duration, c.cfg.Wave, sampleRate)
	shaped := NewRelease(osc, c.cfg.Duration, c.cfg.Duration/2, sampleRate)
	return newVolume(shaped, c.cfg.Volume)
}

// Click plays one tone without blocking
func (c *Clicker) Click() {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.clicks++
	if !c.initialized {
		return
	}
	speaker.Play(c.Tone())
}

// Clicks returns how many clicks were requested
func (c *Clicker) Clicks() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.clicks
}

// Close stops playback
func (c *Clicker) Close() {
	c.mu.Lock()
	defer c.mu.Unlock()

	if !c.initialized {
		return
	}
	speaker.Clear()
	c.initialized = false
}
