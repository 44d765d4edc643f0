package config

import "fmt"

// SpeedPreset represents a named tick rate.
type SpeedPreset string

const (
	SpeedSlow   SpeedPreset = "slow"
	SpeedNormal SpeedPreset = "normal"
	SpeedFast   SpeedPreset = "fast"
	SpeedInsane SpeedPreset = "insane"
)

// SpeedPresets lists the presets from slowest to fastest.
var SpeedPresets = []SpeedPreset{SpeedSlow, SpeedNormal, SpeedFast, SpeedInsane}

// TickRateForPreset returns the moves per second for a speed preset.
func TickRateForPreset(preset SpeedPreset) (int, error) {
	switch preset {
	case SpeedSlow:
		return 6, nil
	case SpeedNormal:
		return 10, nil
	case SpeedFast:
		return 15, nil
	case SpeedInsane:
		return 22, nil
	default:
		return 0, fmt.Errorf("unknown speed preset %q", preset)
	}
}

// ApplySpeedPreset sets the tick rate from a preset. An empty preset keeps
// the configured rate.
func ApplySpeedPreset(cfg *SnakeConfig, preset SpeedPreset) error {
	if preset == "" {
		return nil
	}
	rate, err := TickRateForPreset(preset)
	if err != nil {
		return err
	}
	cfg.TickRate = rate
	return nil
}
