package testutil

import (
	"path/filepath"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/feonix-uav/configuranator/internal/config"
)

func TestValidConfigFixtureMatchesValue(t *testing.T) {
	env := NewTestEnv(t)
	path := env.WriteFixture("valid_config.toml")

	loaded, err := config.Load(path)
	if err != nil {
		t.Fatalf("Load() error: %v", err)
	}

	if diff := cmp.Diff(ValidConfig(), loaded); diff != "" {
		t.Errorf("fixture does not match ValidConfig() (-want +got):\n%s", diff)
	}
	if err := loaded.Validate(); err != nil {
		t.Errorf("valid fixture should pass validation: %v", err)
	}
}

func TestScenarioConfigIsValid(t *testing.T) {
	if err := ScenarioConfig().Validate(); err != nil {
		t.Errorf("ScenarioConfig() should pass validation: %v", err)
	}
}

func TestScenarioInputLineCount(t *testing.T) {
	input := ScenarioInput("cfg.toml")
	if !strings.HasPrefix(input, "cfg.toml\n") {
		t.Errorf("input should start with the file name, got %q", input[:20])
	}
	if !strings.HasSuffix(input, "COCO\n") {
		t.Error("input should end with the dataset name")
	}
}

func TestLoadFixture_Missing(t *testing.T) {
	if _, err := LoadFixture("nope.toml"); err == nil {
		t.Error("LoadFixture should fail for an unknown fixture")
	}
}

func TestTestEnvPath_StaysInTmpDir(t *testing.T) {
	env := NewTestEnv(t)

	tests := []struct {
		name string
		want string
	}{
		{"cfg.toml", filepath.Join(env.TmpDir, "cfg.toml")},
		{"nested/cfg.toml", filepath.Join(env.TmpDir, "nested", "cfg.toml")},
		{"../../escape.toml", filepath.Join(env.TmpDir, "escape.toml")},
	}

	for _, tt := range tests {
		if got := env.Path(tt.name); got != tt.want {
			t.Errorf("Path(%q) = %q, want %q", tt.name, got, tt.want)
		}
	}
}
