package cmd

import (
	"bytes"
	"os"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/feonix-uav/configuranator/internal/codec"
	"github.com/feonix-uav/configuranator/internal/config"
	"github.com/feonix-uav/configuranator/internal/errors"
	"github.com/feonix-uav/configuranator/internal/logging"
	"github.com/feonix-uav/configuranator/internal/system"
	"github.com/feonix-uav/configuranator/internal/testutil"
)

// executeCommand runs the root command with args and stdin, returning
// what the command wrote to its stdout and stderr.
func executeCommand(stdin string, args ...string) (string, string, error) {
	// Reset flag values before each test
	verbose = false
	jsonOutput = false
	logFile = ""
	showTUI = false
	convertFormat = ""
	convertOutput = ""
	if f := convertCmd.Flags().Lookup("format"); f != nil {
		f.Changed = false
	}

	cmd := rootCmd
	cmd.SetArgs(args)

	var stdout, stderr bytes.Buffer
	cmd.SetIn(strings.NewReader(stdin))
	cmd.SetOut(&stdout)
	cmd.SetErr(&stderr)

	err := Execute()

	// Reset args for next test
	cmd.SetArgs(nil)
	cmd.SetIn(nil)
	cmd.SetOut(nil)
	cmd.SetErr(nil)

	return stdout.String(), stderr.String(), err
}

func TestRootCommand_Help(t *testing.T) {
	stdout, _, err := executeCommand("", "--help")
	if err != nil {
		t.Fatalf("Help command failed: %v", err)
	}

	for _, sub := range []string{"show", "validate", "convert", "defaults", "edit"} {
		if !strings.Contains(stdout, sub) {
			t.Errorf("Help should list the %s command", sub)
		}
	}
}

func TestRootCommand_RejectsArgs(t *testing.T) {
	_, _, err := executeCommand("", "mission.toml")
	if err == nil {
		t.Error("root command should reject positional arguments")
	}
}

func TestRootCommand_BuildsConfig(t *testing.T) {
	env := testutil.NewTestEnv(t)
	path := env.Path("mission.toml")

	stdout, _, err := executeCommand(testutil.ScenarioInput(path))
	if err != nil {
		t.Fatalf("build failed: %v", err)
	}

	if !strings.Contains(stdout, "---ENTER TARGET AREA---") {
		t.Errorf("prompts should go to the command output, got:\n%s", stdout)
	}
	if !strings.Contains(env.Stdout.String(), "Configuration file generation: SUCCESS") {
		t.Errorf("success message missing: %q", env.Stdout.String())
	}

	got, err := config.Load(path)
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	if diff := cmp.Diff(testutil.ScenarioConfig(), got); diff != "" {
		t.Errorf("written config mismatch (-want +got):\n%s", diff)
	}
}

func TestRootCommand_TruncatedInput(t *testing.T) {
	env := testutil.NewTestEnv(t)
	path := env.Path("mission.toml")

	_, _, err := executeCommand(path + "\ntrue\n")
	if err == nil {
		t.Fatal("build should fail when input ends early")
	}
	if code := errors.GetExitCode(err); code != errors.ExitInputError {
		t.Errorf("exit code = %d, want %d", code, errors.ExitInputError)
	}
	if _, statErr := os.Stat(path); !os.IsNotExist(statErr) {
		t.Error("no file should be written when input ends early")
	}
}

func TestShowCommand(t *testing.T) {
	env := testutil.NewTestEnv(t)
	path := env.WriteFixture("valid_config.toml")

	stdout, _, err := executeCommand("", "show", path)
	if err != nil {
		t.Fatalf("show failed: %v", err)
	}

	for _, want := range []string{"[sauron_config]", "[commconfig]", `groundstation_ip = "192.168.1.10"`, "target_area = []"} {
		if !strings.Contains(stdout, want) {
			t.Errorf("show output missing %q:\n%s", want, stdout)
		}
	}
}

func TestLogFileClosedAfterCommand(t *testing.T) {
	env := testutil.NewTestEnv(t)
	path := env.WriteFixture("valid_config.toml")
	logPath := env.Path("configuranator.log")
	t.Cleanup(func() { logging.Setup(false, false, nil) })

	if _, _, err := executeCommand("", "--verbose", "--log-file", logPath, "show", path); err != nil {
		t.Fatalf("show failed: %v", err)
	}

	if logWriter != nil {
		t.Error("log file should be closed once the command returns")
	}
	data, err := os.ReadFile(logPath)
	if err != nil {
		t.Fatalf("log file not written: %v", err)
	}
	if !strings.Contains(string(data), "loaded configuration") {
		t.Errorf("log file = %q", data)
	}
}

func TestShowCommand_TUI(t *testing.T) {
	env := testutil.NewTestEnv(t)
	path := env.WriteFixture("valid_config.toml")

	var gotTitle, gotContent string
	orig := runViewer
	runViewer = func(title, content string) error {
		gotTitle, gotContent = title, content
		return nil
	}
	t.Cleanup(func() { runViewer = orig })

	if _, _, err := executeCommand("", "show", "--tui", path); err != nil {
		t.Fatalf("show --tui failed: %v", err)
	}

	if gotTitle != path {
		t.Errorf("viewer title = %q, want %q", gotTitle, path)
	}
	if !strings.Contains(gotContent, "2 waypoints, 3 mapping, 0 target") {
		t.Errorf("viewer content should start with the summary:\n%s", gotContent)
	}
	if !strings.Contains(gotContent, "[aircraft_properties]") {
		t.Errorf("viewer content should include the document:\n%s", gotContent)
	}
}

func TestShowCommand_Errors(t *testing.T) {
	tests := []struct {
		name    string
		fixture string
		want    int
	}{
		{"invalid syntax", "invalid_syntax.toml", errors.ExitDecodeError},
		{"missing section", "missing_commconfig.toml", errors.ExitDecodeError},
		{"wrong type", "wrong_type.toml", errors.ExitDecodeError},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			env := testutil.NewTestEnv(t)
			path := env.WriteFixture(tt.fixture)

			_, _, err := executeCommand("", "show", path)
			if err == nil {
				t.Fatal("show should fail")
			}
			if code := errors.GetExitCode(err); code != tt.want {
				t.Errorf("exit code = %d, want %d", code, tt.want)
			}
		})
	}

	t.Run("not found", func(t *testing.T) {
		env := testutil.NewTestEnv(t)
		_, _, err := executeCommand("", "show", env.Path("absent.toml"))
		if code := errors.GetExitCode(err); code != errors.ExitIOError {
			t.Errorf("exit code = %d, want %d", code, errors.ExitIOError)
		}
	})
}

func TestValidateCommand(t *testing.T) {
	env := testutil.NewTestEnv(t)
	path := env.WriteFixture("valid_config.toml")

	if _, _, err := executeCommand("", "validate", path); err != nil {
		t.Fatalf("validate failed: %v", err)
	}
	if !strings.Contains(env.Stdout.String(), "is valid") {
		t.Errorf("expected success message, got %q", env.Stdout.String())
	}
}

func TestValidateCommand_InvalidFields(t *testing.T) {
	env := testutil.NewTestEnv(t)
	path := env.WriteFixture("invalid_fields.toml")

	_, _, err := executeCommand("", "validate", path)
	if err == nil {
		t.Fatal("validate should fail on invalid fields")
	}
	if code := errors.GetExitCode(err); code != errors.ExitValidationError {
		t.Errorf("exit code = %d, want %d", code, errors.ExitValidationError)
	}
	if !strings.Contains(err.Error(), path) {
		t.Errorf("error should name the file: %v", err)
	}
}

func TestConvertCommand_Stdout(t *testing.T) {
	env := testutil.NewTestEnv(t)
	path := env.WriteFixture("valid_config.toml")

	tests := []struct {
		format string
		want   string
	}{
		{"yaml", "groundstation_ip: 192.168.1.10"},
		{"yml", "dataset_name: COCO"},
		{"json", `"groundstation_ip": "192.168.1.10"`},
		{"TOML", "[commconfig]"},
	}

	for _, tt := range tests {
		t.Run(tt.format, func(t *testing.T) {
			stdout, _, err := executeCommand("", "convert", path, "--format", tt.format)
			if err != nil {
				t.Fatalf("convert failed: %v", err)
			}
			if !strings.Contains(stdout, tt.want) {
				t.Errorf("output missing %q:\n%s", tt.want, stdout)
			}
		})
	}
}

func TestConvertCommand_OutputFileRoundTrip(t *testing.T) {
	env := testutil.NewTestEnv(t)
	src := env.WriteFixture("valid_config.toml")

	for _, name := range []string{"mission.yaml", "mission.json"} {
		t.Run(name, func(t *testing.T) {
			out := env.Path(name)
			format := strings.TrimPrefix(name, "mission.")

			if _, _, err := executeCommand("", "convert", src, "--format", format, "-o", out); err != nil {
				t.Fatalf("convert failed: %v", err)
			}

			got, err := config.Load(out)
			if err != nil {
				t.Fatalf("Load(%s) error = %v", name, err)
			}
			if diff := cmp.Diff(testutil.ValidConfig(), got); diff != "" {
				t.Errorf("converted config mismatch (-want +got):\n%s", diff)
			}
		})
	}
}

func TestConvertCommand_Errors(t *testing.T) {
	env := testutil.NewTestEnv(t)
	path := env.WriteFixture("valid_config.toml")

	if _, _, err := executeCommand("", "convert", path); err == nil {
		t.Error("convert without --format should fail")
	}

	_, _, err := executeCommand("", "convert", path, "--format", "xml")
	if err == nil {
		t.Fatal("convert with an unknown format should fail")
	}
	if !errors.Is(err, codec.ErrUnknownFormat) {
		t.Errorf("error should wrap the unknown format error: %v", err)
	}
}

func TestDefaultsCommand(t *testing.T) {
	stdout, _, err := executeCommand("", "defaults")
	if err != nil {
		t.Fatalf("defaults failed: %v", err)
	}

	for _, want := range []string{
		"[sauron_config]",
		`model_path = "./sauron/data/yolov8n.onnx"`,
		"input_size = 640",
		`untagged_image_folder = "/feonix-images/untagged"`,
	} {
		if !strings.Contains(stdout, want) {
			t.Errorf("defaults output missing %q:\n%s", want, stdout)
		}
	}
}

func useMockExecutor(t *testing.T, env map[string]string) *system.MockExecutor {
	t.Helper()

	m := system.NewMockExecutor()
	system.SetDefaultExecutor(m)

	origGetenv := getenv
	getenv = func(k string) string { return env[k] }

	t.Cleanup(func() {
		system.ResetDefaults()
		getenv = origGetenv
	})
	return m
}

func TestEditCommand(t *testing.T) {
	env := testutil.NewTestEnv(t)
	path := env.WriteFixture("valid_config.toml")
	m := useMockExecutor(t, map[string]string{"EDITOR": "nano -w"})

	if _, _, err := executeCommand("", "edit", path); err != nil {
		t.Fatalf("edit failed: %v", err)
	}

	last, ok := m.LastCommand()
	if !ok {
		t.Fatal("editor was not run")
	}
	if last.Name != "nano" {
		t.Errorf("editor = %q, want nano", last.Name)
	}
	if diff := cmp.Diff([]string{"-w", path}, last.Args); diff != "" {
		t.Errorf("editor args mismatch (-want +got):\n%s", diff)
	}
	if !strings.Contains(env.Stdout.String(), "loads and validates") {
		t.Errorf("expected confirmation, got %q", env.Stdout.String())
	}
}

func TestEditCommand_BrokenAfterEdit(t *testing.T) {
	env := testutil.NewTestEnv(t)
	path := env.WriteFixture("valid_config.toml")
	m := useMockExecutor(t, nil)
	m.OnInteractive = func(name string, args []string) error {
		return os.WriteFile(args[len(args)-1], []byte("test = \n"), 0644)
	}

	_, _, err := executeCommand("", "edit", path)
	if err == nil {
		t.Fatal("edit should fail when the file no longer decodes")
	}
	if code := errors.GetExitCode(err); code != errors.ExitDecodeError {
		t.Errorf("exit code = %d, want %d", code, errors.ExitDecodeError)
	}
	if !strings.Contains(env.Stderr.String(), "no longer loads") {
		t.Errorf("expected warning, got %q", env.Stderr.String())
	}
}

func TestEditCommand_MissingFile(t *testing.T) {
	env := testutil.NewTestEnv(t)
	m := useMockExecutor(t, nil)

	_, _, err := executeCommand("", "edit", env.Path("absent.toml"))
	if code := errors.GetExitCode(err); code != errors.ExitIOError {
		t.Errorf("exit code = %d, want %d", code, errors.ExitIOError)
	}
	if len(m.Commands) != 0 {
		t.Error("editor should not run for a missing file")
	}
	if !strings.Contains(env.Stdout.String(), "to create") {
		t.Errorf("expected a hint to create the file, got %q", env.Stdout.String())
	}
}

func TestEditCommand_NamesMissingKey(t *testing.T) {
	env := testutil.NewTestEnv(t)
	path := env.WriteFixture("valid_config.toml")
	m := useMockExecutor(t, nil)
	m.OnInteractive = func(name string, args []string) error {
		data, err := testutil.LoadFixture("missing_commconfig.toml")
		if err != nil {
			return err
		}
		return os.WriteFile(args[len(args)-1], data, 0644)
	}

	_, _, err := executeCommand("", "edit", path)
	if code := errors.GetExitCode(err); code != errors.ExitDecodeError {
		t.Errorf("exit code = %d, want %d", code, errors.ExitDecodeError)
	}
	if !strings.Contains(env.Stderr.String(), "is missing commconfig") {
		t.Errorf("expected the missing key to be named, got %q", env.Stderr.String())
	}
}
