package model

import (
	"fmt"

	"github.com/inputremapd/inputremapd/errs"
)

// Preset is an ordered list of Mappings plus the name and the
// enclosing device-group identifier. Presets are loaded and validated
// once at inject-start; mutations to the file during an injection are
// not visible until the injection restarts.
type Preset struct {
	Name     string
	GroupKey string
	Mappings []Mapping
}

// CapabilityChecker reports whether a named virtual output advertises
// an (eventType, code) capability. It is satisfied by
// *uinput.Registry; model depends only on this narrow interface so it
// never imports the Linux-specific uinput package.
type CapabilityChecker interface {
	HasCapability(target string, evType, code uint16) bool
}

// ValidationReport separates mappings that passed validation from
// those disabled for a macro parse failure and from fatal preset-level
// errors.
type ValidationReport struct {
	Valid    []Mapping
	Disabled []DisabledMapping
	Errors   []error
}

// DisabledMapping is a mapping whose macro failed to parse; it is
// reported but does not reject the preset, since at least one other
// mapping may still be valid.
type DisabledMapping struct {
	Index  int
	Reason error
}

// MacroValidator compiles macro text and reports a parse failure
// without keeping the parsed program; the supervisor adapts
// macro.Parse to it, and handler.Build parses the text again when it
// wires the mapping.
type MacroValidator interface {
	Validate(macroText string) error
}

// Validate runs every structural and semantic check from the data
// model over p.Mappings. caps may be nil, in which case AnalogAxis
// capability checks are skipped (used by tools that validate presets
// offline, without a running Virtual Output Registry). macros may be
// nil, in which case macro mappings are accepted without parsing
// (used by the same offline tooling).
func (p *Preset) Validate(caps CapabilityChecker, macros MacroValidator) (*ValidationReport, error) {
	var report ValidationReport

	seen := make(map[string]int, len(p.Mappings))

	for i, m := range p.Mappings {
		if err := validateCombination(m.Combination); err != nil {
			report.Errors = append(report.Errors, fmt.Errorf("mapping %d: %w", i, err))
			continue
		}

		identity := m.Combination.identity()
		if first, ok := seen[identity]; ok {
			report.Errors = append(report.Errors, &errs.InvalidPreset{
				Preset: p.Name,
				Index:  i,
				Reason: fmt.Sprintf("duplicate combination, first defined at mapping %d", first),
			})
			continue
		}
		seen[identity] = i

		if err := validateShaping(m.Shaping); err != nil {
			report.Errors = append(report.Errors, &errs.InvalidPreset{Preset: p.Name, Index: i, Reason: err.Error()})
			continue
		}

		if m.OutputKind == OutputAnalogAxis && caps != nil {
			if !caps.HasCapability(m.TargetUinput, m.OutputType, m.OutputCode) {
				report.Errors = append(report.Errors, &errs.InvalidPreset{
					Preset: p.Name,
					Index:  i,
					Reason: fmt.Sprintf("target_uinput %q does not advertise (%d, %d)", m.TargetUinput, m.OutputType, m.OutputCode),
				})
				continue
			}
		}

		if m.OutputKind == OutputMacro && macros != nil {
			if err := macros.Validate(m.MacroText); err != nil {
				report.Disabled = append(report.Disabled, DisabledMapping{Index: i, Reason: &errs.MacroParse{
					Mapping:  fmt.Sprintf("%s[%d]", p.Name, i),
					Position: 0,
					Message:  err.Error(),
				}})
				continue
			}
		}

		report.Valid = append(report.Valid, m)
	}

	if len(report.Valid) == 0 && len(p.Mappings) > 0 {
		return &report, &errs.InvalidPreset{Preset: p.Name, Index: -1, Reason: "no mapping in the preset validated successfully"}
	}

	return &report, nil
}

func validateCombination(combo InputCombination) error {
	if len(combo) == 0 {
		return fmt.Errorf("empty combination")
	}

	analogAxes := 0
	for _, cfg := range combo {
		if cfg.IsAnalogAxis() {
			analogAxes++
		}
	}

	if analogAxes > 1 {
		return fmt.Errorf("combination has %d analog-axis configs, want at most 1", analogAxes)
	}

	return nil
}

func validateShaping(s ShapingParams) error {
	if s.Deadzone >= 1 || s.Deadzone < 0 {
		return fmt.Errorf("deadzone %g out of range [0, 1)", s.Deadzone)
	}

	if s.Expo <= -1 || s.Expo >= 1 {
		return fmt.Errorf("expo %g out of range (-1, 1)", s.Expo)
	}

	if s.RelRate <= 0 {
		return fmt.Errorf("rel_rate %g must be > 0", s.RelRate)
	}

	if s.RelToAbsInputCutoff <= 0 {
		return fmt.Errorf("rel_to_abs_input_cutoff %g must be > 0", s.RelToAbsInputCutoff)
	}

	if s.ReleaseTimeoutMillis <= 0 {
		return fmt.Errorf("release_timeout %dms must be > 0", s.ReleaseTimeoutMillis)
	}

	return nil
}
