// Package model defines the typed preset and mapping records the
// engine loads from disk: the input combination that triggers a
// mapping, the output it produces, and the shaping parameters that
// govern analog axis mappings. Validation happens once at load time;
// everything downstream operates on an already-valid Preset.
package model

import (
	"fmt"
	"sort"

	"github.com/inputremapd/inputremapd"
)

// OutputKind identifies what a Mapping produces when its combination
// triggers.
type OutputKind int

const (
	// OutputKey emits a single (OutputType, OutputCode) edge mirroring
	// the trigger's value.
	OutputKey OutputKind = iota

	// OutputMacro runs a parsed macro program.
	OutputMacro

	// OutputAnalogAxis shapes an analog input and emits it on
	// (OutputType, OutputCode) with gain/deadzone/expo applied.
	OutputAnalogAxis
)

func (k OutputKind) String() string {
	switch k {
	case OutputKey:
		return "key"
	case OutputMacro:
		return "macro"
	case OutputAnalogAxis:
		return "analog_axis"
	default:
		return "unknown"
	}
}

// InputConfig is one condition within an InputCombination: an event
// type and code, optionally bound to one sub-device, optionally
// carrying a threshold that turns an analog axis into a trigger.
type InputConfig struct {
	Type InputEvent
	Code InputCode

	// OriginHash binds this config to one sub-device of the group, or
	// 0 to match any sub-device.
	OriginHash uint64

	// AnalogThreshold applies to REL and ABS configs and is ignored for
	// KEY; its sign selects the direction. HasThreshold records whether
	// it was given at all; an absent or zero threshold makes a REL/ABS
	// config the combination's analog axis (see IsAnalogAxis).
	HasThreshold    bool
	AnalogThreshold float64
}

// InputEvent and InputCode alias the kernel event-code vocabulary
// shared with the rest of the engine.
type (
	InputEvent = inputremapd.InputEvent
	InputCode  = inputremapd.InputCode
)

// IsAnalogAxis reports whether this config is the combination's
// analog-axis member: a REL or ABS config with an absent or zero
// threshold. A KEY config is never an analog axis.
func (c InputConfig) IsAnalogAxis() bool {
	if c.Type != 0x02 && c.Type != 0x03 { // EV_REL, EV_ABS
		return false
	}

	return !c.HasThreshold || c.AnalogThreshold == 0
}

// InputCombination is an ordered, non-empty list of InputConfigs that
// must all be simultaneously satisfied to trigger a Mapping.
type InputCombination []InputConfig

// identity returns a value usable as a map key for combination
// deduplication: the multiset of configs, order-independent per the
// data model's "identity by the multiset of configs" rule, but we
// additionally distinguish by OriginHash and threshold since those are
// part of each config's identity too.
func (c InputCombination) identity() string {
	keys := make([]string, len(c))

	for i, cfg := range c {
		keys[i] = configKey(cfg)
	}

	sort.Strings(keys)

	var id string
	for _, k := range keys {
		id += k + "|"
	}

	return id
}

func configKey(c InputConfig) string {
	return fmt.Sprintf("%d:%d:%d:%t:%g", c.Type, c.Code, c.OriginHash, c.HasThreshold, c.AnalogThreshold)
}

// ShapingParams governs analog axis mappings.
type ShapingParams struct {
	Deadzone             float64
	Gain                 float64
	Expo                 float64
	RelRate              float64
	RelToAbsInputCutoff  float64
	ReleaseTimeoutMillis int64
}

// DefaultShaping returns the documented defaults for an AnalogAxis
// mapping that doesn't override them.
func DefaultShaping() ShapingParams {
	return ShapingParams{
		Deadzone:             0.1,
		Gain:                 1,
		Expo:                 0,
		RelRate:              60,
		RelToAbsInputCutoff:  100,
		ReleaseTimeoutMillis: 50,
	}
}

// Mapping ties one InputCombination to an output.
type Mapping struct {
	Combination InputCombination
	TargetUinput string

	OutputKind OutputKind

	// OutputType/OutputCode apply to OutputKey and OutputAnalogAxis.
	OutputType InputEvent
	OutputCode InputCode

	// MacroText is the source of truth for OutputMacro. The parsed AST
	// is not kept on this struct, so that model has no dependency on
	// the macro grammar; handler.Build parses the text when it wires
	// the mapping.
	MacroText string

	Shaping ShapingParams

	// ReleaseCombinationKeys defaults to true: on trigger, the
	// non-final keys of the combination are released on the forwarded
	// device.
	ReleaseCombinationKeys bool

	MacroKeySleepMillis int64
}
