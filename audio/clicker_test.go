package audio

import (
	"testing"
	"time"

	"github.com/gopxl/beep"
)

// drain streams s to completion and returns the sample count and peak amplitude
func drain(s beep.Streamer) (int, float64) {
	buf := make([][2]float64, 256)
	total, peak := 0, 0.0
	for {
		n, ok := s.Stream(buf)
		for i := 0; i < n; i++ {
			v := buf[i][0]
			if v < 0 {
				v = -v
			}
			peak = max(peak, v)
		}
		total += n
		if !ok {
			return total, peak
		}
	}
}

func TestOscillatorLength(t *testing.T) {
	rate := beep.SampleRate(44100)
	osc := NewOscillator(440, 100*time.Millisecond, WaveSine, rate)

	n, peak := drain(osc)
	if n != rate.N(100*time.Millisecond) {
		t.Errorf("Expected %d samples, got %d", rate.N(100*time.Millisecond), n)
	}
	if peak > 1.0 || peak == 0 {
		t.Errorf("Expected peak in (0, 1], got %f", peak)
	}
	if osc.Err() != nil {
		t.Errorf("Expected no error, got: %v", osc.Err())
	}
}

func TestOscillatorSquare(t *testing.T) {
	rate := beep.SampleRate(44100)
	osc := NewOscillator(220, 50*time.Millisecond, WaveSquare, rate)

	samples := make([][2]float64, 50)
	n, ok := osc.Stream(samples)
	if !ok || n != 50 {
		t.Fatalf("Expected 50 samples, got %d ok=%v", n, ok)
	}
	for i := 0; i < n; i++ {
		if samples[i][0] != 1.0 && samples[i][0] != -1.0 {
			t.Errorf("Sample %d not square: %f", i, samples[i][0])
		}
	}
}

func TestReleaseFadesOut(t *testing.T) {
	rate := beep.SampleRate(48000)
	d := 20 * time.Millisecond
	s := NewRelease(NewOscillator(1000, d, WaveSquare, rate), d, d/2, rate)

	buf := make([][2]float64, rate.N(d))
	n, _ := s.Stream(buf)
	if n != len(buf) {
		t.Fatalf("Expected %d samples, got %d", len(buf), n)
	}
	if v := buf[0][0]; v != 1.0 && v != -1.0 {
		t.Errorf("Expected full volume before release, got %f", v)
	}
	last := buf[n-1][0]
	if last < 0 {
		last = -last
	}
	if last > 0.01 {
		t.Errorf("Expected near silence at end, got %f", last)
	}
}

func TestClickerTone(t *testing.T) {
	cfg := DefaultClickerConfig()
	c := NewClicker(cfg)

	n, peak := drain(c.Tone())
	if n != sampleRate.N(cfg.Duration) {
		t.Errorf("Expected %d samples, got %d", sampleRate.N(cfg.Duration), n)
	}
	if peak >= 1.0 {
		t.Errorf("Expected attenuated tone, got peak %f", peak)
	}
}

func TestClickerSilentUntilInit(t *testing.T) {
	c := NewClicker(DefaultClickerConfig())
	c.Click()
	c.Click()
	if c.Clicks() != 2 {
		t.Errorf("Expected 2 clicks, got %d", c.Clicks())
	}
	c.Close()
}

func TestLoadClickerConfig(t *testing.T) {
	t.Setenv("TEXTMODE_CLICK_VOLUME", "150")
	if cfg := LoadClickerConfig(); cfg.Volume != 1 {
		t.Errorf("Expected volume clamped to 1, got %f", cfg.Volume)
	}
	t.Setenv("TEXTMODE_CLICK_VOLUME", "50")
	if cfg := LoadClickerConfig(); cfg.Volume != 0.5 {
		t.Errorf("Expected volume 0.5, got %f", cfg.Volume)
	}
	t.Setenv("TEXTMODE_CLICK_VOLUME", "loud")
	if cfg := LoadClickerConfig(); cfg.Volume != DefaultClickerConfig().Volume {
		t.Errorf("Expected default volume, got %f", cfg.Volume)
	}
}
