package main

import (
	"fmt"
	"os"

	"github.com/inputremapd/inputremapd/config"
	"gopkg.in/yaml.v3"
)

// dumpMapping is the human-readable YAML rendering of one mapping: the
// JSON preset format is optimized for machine editing (pointer fields
// distinguishing absent from zero), but a person reviewing a preset
// wants the resolved values, not the on-disk encoding.
type dumpMapping struct {
	InputCombination []dumpInputConfig `yaml:"input_combination"`
	TargetUinput     string            `yaml:"target_uinput"`
	OutputKind       string            `yaml:"output_kind"`
	OutputSymbol     string            `yaml:"output_symbol,omitempty"`
	OutputType       uint16            `yaml:"output_type,omitempty"`
	OutputCode       uint16            `yaml:"output_code,omitempty"`
	Shaping          dumpShaping       `yaml:"shaping,omitempty"`
}

type dumpInputConfig struct {
	Type            uint16  `yaml:"type"`
	Code            uint16  `yaml:"code"`
	OriginHash      uint64  `yaml:"origin_hash,omitempty"`
	AnalogThreshold float64 `yaml:"analog_threshold,omitempty"`
}

type dumpShaping struct {
	Deadzone             float64 `yaml:"deadzone"`
	Gain                 float64 `yaml:"gain"`
	Expo                 float64 `yaml:"expo"`
	RelRate              float64 `yaml:"rel_rate"`
	RelToAbsInputCutoff  float64 `yaml:"rel_to_abs_input_cutoff"`
	ReleaseTimeoutMillis int64   `yaml:"release_timeout_ms"`
}

// runDump loads <group>/<preset> and prints it as YAML. It validates
// the preset first (with no capability checker or macro validator,
// since dump is meant to work offline against a config directory with
// no daemon or uinput registry present) and reports validation errors
// alongside the dump rather than refusing to print a preset that
// doesn't fully validate.
func runDump(configDir string, args []string) error {
	if len(args) != 2 {
		return fmt.Errorf("dump: usage: remapctl dump <group-key> <preset-name>")
	}

	daemon, cleanup, err := newDaemon(configDir)
	if err != nil {
		return fmt.Errorf("dump: %w", err)
	}
	defer cleanup()

	groupKey, presetName := args[0], args[1]

	preset, err := config.LoadPreset(configDir, groupKey, presetName, daemon.Symbols)
	if err != nil {
		return fmt.Errorf("dump: %w", err)
	}

	if report, err := preset.Validate(nil, nil); err != nil {
		fmt.Fprintln(os.Stderr, "dump: preset failed validation:", err)
	} else {
		for _, disabled := range report.Disabled {
			fmt.Fprintf(os.Stderr, "dump: mapping %d disabled: %v\n", disabled.Index, disabled.Reason)
		}
	}

	out := make([]dumpMapping, len(preset.Mappings))
	for i, m := range preset.Mappings {
		dm := dumpMapping{
			TargetUinput: m.TargetUinput,
			OutputKind:   m.OutputKind.String(),
			OutputType:   m.OutputType,
			OutputCode:   m.OutputCode,
			Shaping: dumpShaping{
				Deadzone:             m.Shaping.Deadzone,
				Gain:                 m.Shaping.Gain,
				Expo:                 m.Shaping.Expo,
				RelRate:              m.Shaping.RelRate,
				RelToAbsInputCutoff:  m.Shaping.RelToAbsInputCutoff,
				ReleaseTimeoutMillis: m.Shaping.ReleaseTimeoutMillis,
			},
		}

		if m.MacroText != "" {
			dm.OutputSymbol = m.MacroText
		}

		for _, c := range m.Combination {
			threshold := c.AnalogThreshold
			if !c.HasThreshold {
				threshold = 0
			}

			dm.InputCombination = append(dm.InputCombination, dumpInputConfig{
				Type:            c.Type,
				Code:            c.Code,
				OriginHash:      c.OriginHash,
				AnalogThreshold: threshold,
			})
		}

		out[i] = dm
	}

	enc := yaml.NewEncoder(os.Stdout)
	enc.SetIndent(2)
	defer enc.Close()

	if err := enc.Encode(out); err != nil {
		return fmt.Errorf("dump: %w", err)
	}

	return nil
}
