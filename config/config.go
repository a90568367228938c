// Package config decodes the on-disk JSON layout a config directory
// holds: the top-level config.json (autoload pairs plus schema
// version), one file per preset under presets/<group>/, and an
// optional xmodmap.json layering host-specific symbol aliases on top
// of the Symbol Table's builtin names.
//
//go:build linux

package config

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/inputremapd/inputremapd/model"
	"github.com/inputremapd/inputremapd/symbol"
	"golang.org/x/mod/semver"
)

// MinSupportedVersion is the oldest config.json schema version this
// daemon accepts. A config.json written by an older editor generation
// is rejected outright rather than guessed at.
const MinSupportedVersion = "v1.0.0"

// Config is the decoded form of <config_dir>/config.json.
type Config struct {
	// Version is the schema version that produced this file, checked
	// against MinSupportedVersion with golang.org/x/mod/semver. Empty
	// is tolerated (pre-versioned configs) and treated as compatible.
	Version string

	// Autoload maps a device's human-readable name (device.Group.Name,
	// not GroupKey — config.json is meant to be hand-editable and the
	// group key is an opaque hash) to the preset name to start for it.
	Autoload map[string]string
}

type configFile struct {
	Version  string            `json:"version"`
	Autoload map[string]string `json:"autoload"`
}

// LoadConfig reads and validates <dir>/config.json.
func LoadConfig(dir string) (*Config, error) {
	data, err := os.ReadFile(filepath.Join(dir, "config.json"))
	if err != nil {
		return nil, fmt.Errorf("config.LoadConfig: %w", err)
	}

	var raw configFile
	if err := json.Unmarshal(data, &raw); err != nil {
		return nil, fmt.Errorf("config.LoadConfig: %w", err)
	}

	if err := checkVersion(raw.Version); err != nil {
		return nil, fmt.Errorf("config.LoadConfig: %w", err)
	}

	return &Config{Version: raw.Version, Autoload: raw.Autoload}, nil
}

// checkVersion accepts an empty version (no schema-version claim made)
// and otherwise requires a valid semver no older than
// MinSupportedVersion.
func checkVersion(version string) error {
	if version == "" {
		return nil
	}

	v := version
	if !strings.HasPrefix(v, "v") {
		v = "v" + v
	}

	if !semver.IsValid(v) {
		return fmt.Errorf("invalid config schema version %q", version)
	}

	if semver.Compare(v, MinSupportedVersion) < 0 {
		return fmt.Errorf("config schema version %q predates the minimum supported %q", version, MinSupportedVersion)
	}

	return nil
}

// mappingRecord is one element of a preset file's JSON array. Fields
// are pointers where the documented shaping default (model.DefaultShaping)
// must apply when the key is absent rather than when it is zero.
type mappingRecord struct {
	InputCombination []inputConfigRecord `json:"input_combination"`
	TargetUinput     string              `json:"target_uinput"`

	// OutputKind selects which of OutputSymbol/OutputType+OutputCode
	// apply: "key", "macro", or "analog_axis".
	OutputKind string `json:"output_kind"`

	// OutputSymbol carries a symbol-table name for Key output (resolved
	// to OutputType/OutputCode at load time) or the macro program text
	// for Macro output.
	OutputSymbol string  `json:"output_symbol,omitempty"`
	OutputType   *uint16 `json:"output_type,omitempty"`
	OutputCode   *uint16 `json:"output_code,omitempty"`

	Deadzone               *float64 `json:"deadzone,omitempty"`
	Gain                   *float64 `json:"gain,omitempty"`
	Expo                   *float64 `json:"expo,omitempty"`
	RelRate                *float64 `json:"rel_rate,omitempty"`
	RelToAbsInputCutoff    *float64 `json:"rel_to_abs_input_cutoff,omitempty"`
	ReleaseTimeoutMillis   *int64   `json:"release_timeout,omitempty"`
	ReleaseCombinationKeys *bool    `json:"release_combination_keys,omitempty"`
	MacroKeySleepMillis    int64    `json:"macro_key_sleep_ms,omitempty"`
}

type inputConfigRecord struct {
	Type            uint16   `json:"type"`
	Code            uint16   `json:"code"`
	OriginHash      uint64   `json:"origin_hash,omitempty"`
	AnalogThreshold *float64 `json:"analog_threshold,omitempty"`
}

// LoadPreset reads <dir>/presets/<group>/<name>.json and decodes it
// into a model.Preset. symbols resolves an output_symbol on a Key
// mapping to its (type, code) pair; a nil symbols is only for tooling
// that doesn't need symbolic output_symbol support (every record must
// then carry numeric output_type/output_code instead).
func LoadPreset(dir, group, name string, symbols *symbol.Table) (*model.Preset, error) {
	path := filepath.Join(dir, "presets", group, name+".json")

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("config.LoadPreset: %w", err)
	}

	var records []mappingRecord
	if err := json.Unmarshal(data, &records); err != nil {
		return nil, fmt.Errorf("config.LoadPreset: %w", err)
	}

	mappings := make([]model.Mapping, len(records))
	for i, rec := range records {
		m, err := rec.toMapping(symbols)
		if err != nil {
			return nil, fmt.Errorf("config.LoadPreset: mapping %d: %w", i, err)
		}

		mappings[i] = m
	}

	return &model.Preset{Name: name, GroupKey: group, Mappings: mappings}, nil
}

func (rec mappingRecord) toMapping(symbols *symbol.Table) (model.Mapping, error) {
	combo := make(model.InputCombination, len(rec.InputCombination))
	for i, c := range rec.InputCombination {
		combo[i] = model.InputConfig{
			Type:            c.Type,
			Code:            c.Code,
			OriginHash:      c.OriginHash,
			HasThreshold:    c.AnalogThreshold != nil,
			AnalogThreshold: derefFloat(c.AnalogThreshold, 0),
		}
	}

	shaping := shapingFromRecord(rec)

	m := model.Mapping{
		Combination:            combo,
		TargetUinput:           rec.TargetUinput,
		Shaping:                shaping,
		ReleaseCombinationKeys: derefBool(rec.ReleaseCombinationKeys, true),
		MacroKeySleepMillis:    rec.MacroKeySleepMillis,
	}

	switch rec.OutputKind {
	case "key":
		m.OutputKind = model.OutputKey

		if rec.OutputSymbol != "" {
			if symbols == nil {
				return model.Mapping{}, fmt.Errorf("output_symbol %q given with no symbol table available", rec.OutputSymbol)
			}

			evType, code, ok := symbols.Code(rec.OutputSymbol)
			if !ok {
				return model.Mapping{}, fmt.Errorf("unresolvable output_symbol %q", rec.OutputSymbol)
			}

			m.OutputType, m.OutputCode = evType, code
		} else {
			if rec.OutputType == nil || rec.OutputCode == nil {
				return model.Mapping{}, fmt.Errorf("key output requires output_symbol or output_type/output_code")
			}

			m.OutputType, m.OutputCode = *rec.OutputType, *rec.OutputCode
		}
	case "macro":
		m.OutputKind = model.OutputMacro
		m.MacroText = rec.OutputSymbol
	case "analog_axis":
		m.OutputKind = model.OutputAnalogAxis

		if rec.OutputType == nil || rec.OutputCode == nil {
			return model.Mapping{}, fmt.Errorf("analog_axis output requires numeric output_type/output_code")
		}

		m.OutputType, m.OutputCode = *rec.OutputType, *rec.OutputCode
	default:
		return model.Mapping{}, fmt.Errorf("unknown output_kind %q", rec.OutputKind)
	}

	return m, nil
}

func shapingFromRecord(rec mappingRecord) model.ShapingParams {
	d := model.DefaultShaping()

	return model.ShapingParams{
		Deadzone:             derefFloat(rec.Deadzone, d.Deadzone),
		Gain:                 derefFloat(rec.Gain, d.Gain),
		Expo:                 derefFloat(rec.Expo, d.Expo),
		RelRate:              derefFloat(rec.RelRate, d.RelRate),
		RelToAbsInputCutoff:  derefFloat(rec.RelToAbsInputCutoff, d.RelToAbsInputCutoff),
		ReleaseTimeoutMillis: derefInt64(rec.ReleaseTimeoutMillis, d.ReleaseTimeoutMillis),
	}
}

func derefFloat(p *float64, fallback float64) float64 {
	if p == nil {
		return fallback
	}

	return *p
}

func derefInt64(p *int64, fallback int64) int64 {
	if p == nil {
		return fallback
	}

	return *p
}

func derefBool(p *bool, fallback bool) bool {
	if p == nil {
		return fallback
	}

	return *p
}

type aliasRecord struct {
	Name string `json:"name"`
	Type uint16 `json:"type"`
	Code uint16 `json:"code"`
}

// LoadXmodmap reads <dir>/xmodmap.json, returning the symbol aliases
// harvested from the host keyboard layout. A missing file is not an
// error: a host with no overrides simply has none.
func LoadXmodmap(dir string) ([]symbol.Alias, error) {
	data, err := os.ReadFile(filepath.Join(dir, "xmodmap.json"))
	if err != nil {
		if os.IsNotExist(err) {
			return nil, nil
		}

		return nil, fmt.Errorf("config.LoadXmodmap: %w", err)
	}

	var records []aliasRecord
	if err := json.Unmarshal(data, &records); err != nil {
		return nil, fmt.Errorf("config.LoadXmodmap: %w", err)
	}

	aliases := make([]symbol.Alias, len(records))
	for i, r := range records {
		aliases[i] = symbol.Alias{Name: r.Name, Type: r.Type, Code: r.Code}
	}

	return aliases, nil
}
