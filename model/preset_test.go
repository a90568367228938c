package model

import (
	"errors"
	"testing"
)

func key(code InputCode) InputConfig {
	return InputConfig{Type: 1, Code: code}
}

func TestValidateRejectsEmptyCombination(t *testing.T) {
	preset := &Preset{
		Name: "test",
		Mappings: []Mapping{
			{Combination: InputCombination{}, Shaping: DefaultShaping()},
		},
	}

	report, err := preset.Validate(nil, nil)
	if err == nil {
		t.Fatal("Validate() returned no error for a preset whose only mapping is empty")
	}

	if len(report.Valid) != 0 {
		t.Errorf("Valid = %+v, want none", report.Valid)
	}
}

func TestValidateRejectsDuplicateCombination(t *testing.T) {
	preset := &Preset{
		Name: "test",
		Mappings: []Mapping{
			{Combination: InputCombination{key(30)}, Shaping: DefaultShaping()},
			{Combination: InputCombination{key(30)}, Shaping: DefaultShaping()},
		},
	}

	report, err := preset.Validate(nil, nil)
	if err != nil {
		t.Fatalf("Validate() = %v, want a partial report (one duplicate, one valid)", err)
	}

	if len(report.Valid) != 1 {
		t.Errorf("Valid = %+v, want exactly 1 surviving mapping", report.Valid)
	}

	if len(report.Errors) != 1 {
		t.Errorf("Errors = %+v, want exactly 1", report.Errors)
	}
}

func TestValidateRejectsTwoAnalogAxesInOneCombination(t *testing.T) {
	analog := InputConfig{Type: 3, Code: 0}

	preset := &Preset{
		Name: "test",
		Mappings: []Mapping{
			{Combination: InputCombination{analog, InputConfig{Type: 3, Code: 1}}, Shaping: DefaultShaping()},
		},
	}

	report, err := preset.Validate(nil, nil)
	if err == nil {
		t.Fatal("Validate() accepted a combination with two analog-axis configs")
	}

	if len(report.Valid) != 0 {
		t.Errorf("Valid = %+v, want none", report.Valid)
	}
}

func TestValidateShapingBounds(t *testing.T) {
	tests := []struct {
		name    string
		shaping ShapingParams
		wantErr bool
	}{
		{"defaults", DefaultShaping(), false},
		{"deadzone at 1 is rejected", ShapingParams{Deadzone: 1, RelRate: 1, RelToAbsInputCutoff: 1, ReleaseTimeoutMillis: 1}, true},
		{"expo at 1 is rejected", ShapingParams{Expo: 1, RelRate: 1, RelToAbsInputCutoff: 1, ReleaseTimeoutMillis: 1}, true},
		{"expo at -1 is rejected", ShapingParams{Expo: -1, RelRate: 1, RelToAbsInputCutoff: 1, ReleaseTimeoutMillis: 1}, true},
		{"zero rel_rate is rejected", ShapingParams{RelRate: 0, RelToAbsInputCutoff: 1, ReleaseTimeoutMillis: 1}, true},
		{"zero release_timeout is rejected", ShapingParams{RelRate: 1, RelToAbsInputCutoff: 1, ReleaseTimeoutMillis: 0}, true},
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			err := validateShaping(test.shaping)
			if (err != nil) != test.wantErr {
				t.Errorf("validateShaping(%+v) error = %v, wantErr %v", test.shaping, err, test.wantErr)
			}
		})
	}
}

type fakeCaps struct {
	has bool
}

func (f fakeCaps) HasCapability(target string, evType, code uint16) bool {
	return f.has
}

func TestValidateAnalogAxisRequiresCapability(t *testing.T) {
	preset := &Preset{
		Name: "test",
		Mappings: []Mapping{
			{
				Combination:  InputCombination{InputConfig{Type: 3, Code: 0}},
				OutputKind:   OutputAnalogAxis,
				TargetUinput: "gamepad",
				OutputType:   3,
				OutputCode:   0,
				Shaping:      DefaultShaping(),
			},
		},
	}

	report, err := preset.Validate(fakeCaps{has: false}, nil)
	if err == nil {
		t.Fatal("Validate() accepted an AnalogAxis mapping whose target lacks the capability")
	}

	if len(report.Valid) != 0 {
		t.Errorf("Valid = %+v, want none", report.Valid)
	}
}

type fakeMacros struct {
	err error
}

func (f fakeMacros) Validate(macroText string) error {
	return f.err
}

func TestValidateDisablesUnparseableMacroWithoutRejectingPreset(t *testing.T) {
	preset := &Preset{
		Name: "test",
		Mappings: []Mapping{
			{Combination: InputCombination{key(30)}, OutputKind: OutputMacro, MacroText: "key(", Shaping: DefaultShaping()},
			{Combination: InputCombination{key(31)}, Shaping: DefaultShaping()},
		},
	}

	report, err := preset.Validate(nil, fakeMacros{err: errors.New("unexpected end of input")})
	if err != nil {
		t.Fatalf("Validate() = %v, want nil (one disabled mapping, one valid)", err)
	}

	if len(report.Disabled) != 1 {
		t.Errorf("Disabled = %+v, want exactly 1", report.Disabled)
	}

	if len(report.Valid) != 1 {
		t.Errorf("Valid = %+v, want exactly 1", report.Valid)
	}
}
