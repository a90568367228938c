//go:build linux

package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/inputremapd/inputremapd/model"
	"github.com/inputremapd/inputremapd/symbol"
)

func writeFile(t *testing.T, path, content string) {
	t.Helper()

	if err := os.MkdirAll(filepath.Dir(path), 0o700); err != nil {
		t.Fatalf("MkdirAll = %v", err)
	}

	if err := os.WriteFile(path, []byte(content), 0o600); err != nil {
		t.Fatalf("WriteFile = %v", err)
	}
}

func TestLoadConfigDecodesAutoloadMap(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, filepath.Join(dir, "config.json"), `{
		"version": "v1.2.0",
		"autoload": {"My Keyboard": "default"}
	}`)

	cfg, err := LoadConfig(dir)
	if err != nil {
		t.Fatalf("LoadConfig = %v", err)
	}

	if cfg.Autoload["My Keyboard"] != "default" {
		t.Fatalf("Autoload = %v, want My Keyboard -> default", cfg.Autoload)
	}
}

func TestLoadConfigRejectsOlderSchemaVersion(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, filepath.Join(dir, "config.json"), `{"version": "v0.1.0", "autoload": {}}`)

	if _, err := LoadConfig(dir); err == nil {
		t.Fatal("LoadConfig = nil, want a schema-version error for v0.1.0")
	}
}

func TestLoadConfigAcceptsUnversionedFile(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, filepath.Join(dir, "config.json"), `{"autoload": {}}`)

	if _, err := LoadConfig(dir); err != nil {
		t.Fatalf("LoadConfig = %v, want nil for an unversioned config", err)
	}
}

func TestLoadPresetDecodesKeyAndMacroMappings(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, filepath.Join(dir, "presets", "group1", "default.json"), `[
		{
			"input_combination": [{"type": 1, "code": 30}],
			"target_uinput": "keyboard",
			"output_kind": "key",
			"output_symbol": "KEY_A"
		},
		{
			"input_combination": [{"type": 1, "code": 31}],
			"target_uinput": "keyboard",
			"output_kind": "macro",
			"output_symbol": "key(KEY_A)",
			"release_timeout": 75
		}
	]`)

	symbols := symbol.NewTable()
	symbols.Load([]symbol.Alias{{Name: "KEY_A", Type: 1, Code: 30}})

	preset, err := LoadPreset(dir, "group1", "default", symbols)
	if err != nil {
		t.Fatalf("LoadPreset = %v", err)
	}

	if len(preset.Mappings) != 2 {
		t.Fatalf("len(Mappings) = %d, want 2", len(preset.Mappings))
	}

	key := preset.Mappings[0]
	if key.OutputKind != model.OutputKey || key.OutputType != 1 || key.OutputCode != 30 {
		t.Fatalf("key mapping = %+v, want resolved KEY_A (1, 30)", key)
	}

	macroM := preset.Mappings[1]
	if macroM.OutputKind != model.OutputMacro || macroM.MacroText != "key(KEY_A)" {
		t.Fatalf("macro mapping = %+v, want MacroText %q", macroM, "key(KEY_A)")
	}

	if macroM.Shaping.ReleaseTimeoutMillis != 75 {
		t.Fatalf("ReleaseTimeoutMillis = %d, want 75 (explicit override)", macroM.Shaping.ReleaseTimeoutMillis)
	}

	if key.Shaping.Deadzone != model.DefaultShaping().Deadzone {
		t.Fatalf("Deadzone = %g, want the default for an unset key", key.Shaping.Deadzone)
	}
}

func TestLoadPresetRejectsUnknownOutputKind(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, filepath.Join(dir, "presets", "group1", "bad.json"), `[
		{"input_combination": [{"type": 1, "code": 30}], "target_uinput": "keyboard", "output_kind": "nonsense"}
	]`)

	if _, err := LoadPreset(dir, "group1", "bad", nil); err == nil {
		t.Fatal("LoadPreset = nil, want an error for an unknown output_kind")
	}
}

func TestLoadXmodmapMissingFileIsNotAnError(t *testing.T) {
	dir := t.TempDir()

	aliases, err := LoadXmodmap(dir)
	if err != nil {
		t.Fatalf("LoadXmodmap = %v, want nil for a missing xmodmap.json", err)
	}

	if aliases != nil {
		t.Fatalf("aliases = %v, want nil", aliases)
	}
}

func TestLoadXmodmapDecodesAliases(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, filepath.Join(dir, "xmodmap.json"), `[{"name": "KEY_CUSTOM", "type": 1, "code": 200}]`)

	aliases, err := LoadXmodmap(dir)
	if err != nil {
		t.Fatalf("LoadXmodmap = %v", err)
	}

	if len(aliases) != 1 || aliases[0].Name != "KEY_CUSTOM" || aliases[0].Code != 200 {
		t.Fatalf("aliases = %+v, want one KEY_CUSTOM (code 200)", aliases)
	}
}
