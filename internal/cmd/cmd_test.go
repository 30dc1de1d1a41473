package cmd

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/spf13/cobra"

	"teamgen/internal/errors"
	"teamgen/internal/output"
	"teamgen/internal/testutil"
)

// executeCommand runs a cobra command with args and returns captured output.
// Flag variables are reset first so earlier tests cannot leak state.
func executeCommand(root *cobra.Command, args ...string) (stdout string, err error) {
	formatName = string(output.FormatAuto)
	outputPath = ""

	buf := new(bytes.Buffer)
	root.SetOut(buf)
	root.SetErr(buf)
	root.SetArgs(args)
	err = root.Execute()
	return buf.String(), err
}

const validSettings = `
num_of_teams = 2

[[attendees]]
name = "alice"
leader = true

[[attendees]]
name = "bob"
leader = true

[[attendees]]
name = "carol"

[[attendees]]
name = "dave"
`

func TestRootCommand_Subcommands(t *testing.T) {
	want := map[string]bool{"validate": false, "init": false}
	for _, c := range rootCmd.Commands() {
		if _, ok := want[c.Name()]; ok {
			want[c.Name()] = true
		}
	}
	for name, found := range want {
		if !found {
			t.Errorf("subcommand %q not registered", name)
		}
	}
}

func TestRootCommand_GeneratesRoster(t *testing.T) {
	path := testutil.WriteSettings(t, validSettings)

	out, err := executeCommand(rootCmd, "--format", "toml", path)
	if err != nil {
		t.Fatalf("root command failed: %v\n%s", err, out)
	}

	for _, want := range []string{"[[team]]", "[team.leader]", "alice", "carol"} {
		if !strings.Contains(out, want) {
			t.Errorf("output missing %q:\n%s", want, out)
		}
	}
}

func TestRootCommand_WritesToFile(t *testing.T) {
	path := testutil.WriteSettings(t, validSettings)
	dest := filepath.Join(t.TempDir(), "roster.toml")

	out, err := executeCommand(rootCmd, "--format", "toml", "--output", dest, path)
	if err != nil {
		t.Fatalf("root command failed: %v\n%s", err, out)
	}

	data, err := os.ReadFile(dest)
	if err != nil {
		t.Fatalf("reading output file: %v", err)
	}
	if !strings.Contains(string(data), "[[team]]") {
		t.Errorf("output file missing roster:\n%s", data)
	}
}

func TestRootCommand_UnknownFormat(t *testing.T) {
	path := testutil.WriteSettings(t, validSettings)

	_, err := executeCommand(rootCmd, "--format", "xml", path)
	if err == nil {
		t.Fatal("expected error for unknown format")
	}
}

func TestRootCommand_MissingSettingsFile(t *testing.T) {
	_, err := executeCommand(rootCmd, "--format", "toml", filepath.Join(t.TempDir(), "absent.toml"))
	if !errors.Is(err, errors.ErrConfigNotFound) {
		t.Errorf("error = %v, want ErrConfigNotFound", err)
	}
}

func TestRootCommand_InsufficientLeaders(t *testing.T) {
	path := testutil.WriteSettings(t, `
num_of_teams = 3

[[attendees]]
name = "alice"
leader = true

[[attendees]]
name = "bob"

[[attendees]]
name = "carol"
`)

	_, err := executeCommand(rootCmd, "--format", "toml", path)
	if !errors.Is(err, errors.ErrInsufficientLeaders) {
		t.Errorf("error = %v, want ErrInsufficientLeaders", err)
	}
}

func TestValidateCommand(t *testing.T) {
	path := testutil.WriteSettings(t, validSettings)

	out, err := executeCommand(rootCmd, "validate", path)
	if err != nil {
		t.Fatalf("validate failed: %v\n%s", err, out)
	}
	if !strings.Contains(out, "4 attendees") || !strings.Contains(out, "2 leader candidates") {
		t.Errorf("validate output = %q", out)
	}
}

func TestValidateCommand_SemanticFailure(t *testing.T) {
	path := testutil.WriteSettings(t, `
num_of_teams = 0

[[attendees]]
name = "alice"
`)

	_, err := executeCommand(rootCmd, "validate", path)
	if !errors.Is(err, errors.ErrInvalidTeamCount) {
		t.Errorf("error = %v, want ErrInvalidTeamCount", err)
	}
}

func TestInitCommand(t *testing.T) {
	path := filepath.Join(t.TempDir(), "sample.toml")

	out, err := executeCommand(rootCmd, "init", path)
	if err != nil {
		t.Fatalf("init failed: %v\n%s", err, out)
	}
	if _, err := os.Stat(path); err != nil {
		t.Fatalf("sample file not written: %v", err)
	}

	// The generated sample must itself validate.
	if out, err := executeCommand(rootCmd, "validate", path); err != nil {
		t.Errorf("generated sample does not validate: %v\n%s", err, out)
	}
}

func TestInitCommand_RefusesOverwrite(t *testing.T) {
	path := testutil.WriteSettings(t, validSettings)

	_, err := executeCommand(rootCmd, "init", path)
	if err == nil || !strings.Contains(err.Error(), "already exists") {
		t.Errorf("error = %v, want refusal to overwrite", err)
	}
}
