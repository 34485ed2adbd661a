package audio

import (
	"errors"
	"os"
	"strconv"

	"github.com/lixenwraith/maestro/constants"
)

// Instrument identifies a percussive or sustained voice family
type Instrument int

const (
	Kick Instrument = iota
	Snare
	Hat
	Tom
	Clap
	Rim
	Snap
	Crash
	Ride
	Bass
	Pad
	Lead
	FX
	instrumentCount
)

var instrumentNames = [instrumentCount]string{
	"kick", "snare", "hat", "tom", "clap", "rim", "snap",
	"crash", "ride", "bass", "pad", "lead", "fx",
}

func (i Instrument) String() string {
	if i < 0 || i >= instrumentCount {
		return "unknown"
	}
	return instrumentNames[i]
}

// ParseInstrument resolves a sample name to an instrument. Unknown names
// report ok=false so callers can treat them as a no-op.
func ParseInstrument(name string) (Instrument, bool) {
	for i, n := range instrumentNames {
		if n == name {
			return Instrument(i), true
		}
	}
	return 0, false
}

// Sentinel errors
var (
	ErrSpeakerInit = errors.New("speaker initialization failed")
)

// Config holds engine-level audio settings
type Config struct {
	Enabled      bool
	MasterVolume float64
}

// DefaultConfig returns the stock configuration
func DefaultConfig() *Config {
	return &Config{
		Enabled:      true,
		MasterVolume: constants.MasterVolume,
	}
}

// LoadConfig reads configuration overrides from environment variables
func LoadConfig() *Config {
	cfg := DefaultConfig()

	if enabled := os.Getenv("MAESTRO_AUDIO"); enabled != "" {
		if val, err := strconv.ParseBool(enabled); err == nil {
			cfg.Enabled = val
		}
	}

	// Volume as 0-100
	if volume := os.Getenv("MAESTRO_VOLUME"); volume != "" {
		if val, err := strconv.Atoi(volume); err == nil {
			cfg.MasterVolume = float64(val) / 100.0
			if cfg.MasterVolume < 0 {
				cfg.MasterVolume = 0
			}
			if cfg.MasterVolume > 1 {
				cfg.MasterVolume = 1
			}
		}
	}

	return cfg
}
