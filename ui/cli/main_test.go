// Copyright (c) 2026 Keymaster Team
// Strengthmeter - password strength indicator
// This source code is licensed under the MIT license found in the LICENSE file.
package cli

import (
	"bytes"
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/toeirei/strengthmeter/internal/i18n"
	"github.com/toeirei/strengthmeter/internal/logging"
	"github.com/toeirei/strengthmeter/ui/tui"
	"gopkg.in/yaml.v3"
)

// runCmd executes a fresh root command with args and stdin, isolated from
// any real config file, and returns stdout.
func runCmd(t *testing.T, stdin string, args ...string) (string, error) {
	t.Helper()
	return runCmdWithConfigHome(t, t.TempDir(), stdin, args...)
}

func runCmdWithConfigHome(t *testing.T, home, stdin string, args ...string) (string, error) {
	t.Helper()
	t.Setenv("XDG_CONFIG_HOME", home)
	t.Setenv("HOME", home)
	t.Chdir(t.TempDir())
	t.Cleanup(func() { i18n.Init("en") })

	cmd := NewRootCmd()
	var out bytes.Buffer
	cmd.SetOut(&out)
	cmd.SetErr(&bytes.Buffer{})
	cmd.SetIn(strings.NewReader(stdin))
	cmd.SetArgs(args)
	err := cmd.Execute()
	return out.String(), err
}

func TestCheck_TextOutput(t *testing.T) {
	out, err := runCmd(t, "", "check", "abcdefgh")
	require.NoError(t, err)
	want := strings.Join([]string{
		"Score: 40%",
		"Strength: Weak",
		"✓ At least 8 characters",
		"○ One uppercase letter (A-Z)",
		"✓ One lowercase letter (a-z)",
		"○ One number (0-9)",
		`○ One special character (!@#$%^&*(),.?":{}|<>)`,
	}, "\n") + "\n"
	assert.Equal(t, want, out)
}

func TestCheck_JSONOutput(t *testing.T) {
	out, err := runCmd(t, "", "check", "--output", "json", "Ab1!efgh")
	require.NoError(t, err)

	var r report
	require.NoError(t, json.Unmarshal([]byte(out), &r))
	assert.Equal(t, 100, r.Score)
	assert.Equal(t, "Strong", r.Tier)
	assert.Equal(t, "bg-success", r.IndicatorClass)
	assert.Equal(t, "text-success", r.TextClass)
	require.Len(t, r.Requirements, 5)
	for _, req := range r.Requirements {
		assert.True(t, req.Satisfied, req.Name)
	}
}

func TestCheck_YAMLFromStdin(t *testing.T) {
	out, err := runCmd(t, "Abcdefg1\nsecond line\n", "check", "--stdin", "-o", "yaml")
	require.NoError(t, err)

	var r report
	require.NoError(t, yaml.Unmarshal([]byte(out), &r))
	assert.Equal(t, 80, r.Score)
	assert.Equal(t, "Strong", r.Tier)
	assert.Equal(t, "special", r.Requirements[4].Name)
	assert.False(t, r.Requirements[4].Satisfied)
}

func TestCheck_PipedStdinWithoutFlag(t *testing.T) {
	out, err := runCmd(t, "", "check")
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(out, "Score: 0%\nStrength: Very Weak\n"), out)
}

func TestCheck_Localised(t *testing.T) {
	out, err := runCmd(t, "", "--language", "de", "check", "Abcdefg1")
	require.NoError(t, err)
	assert.Contains(t, out, "Punkte: 80%")
	assert.Contains(t, out, "Stärke: Stark")
	assert.Contains(t, out, "✓ Mindestens 8 Zeichen")
}

func TestCheck_JSONReportsLanguage(t *testing.T) {
	out, err := runCmd(t, "", "--language", "de", "check", "-o", "json", "x")
	require.NoError(t, err)

	var r report
	require.NoError(t, json.Unmarshal([]byte(out), &r))
	assert.Equal(t, "de", r.Language)
	assert.Equal(t, "Very Weak", r.Tier)
	assert.Equal(t, "Sehr schwach", r.Label)
}

func TestRoot_RejectsUnknownLanguage(t *testing.T) {
	_, err := runCmd(t, "", "--language", "xx", "check", "a")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "unsupported language")
}

func TestCheck_InvalidOutput(t *testing.T) {
	_, err := runCmd(t, "", "check", "-o", "xml", "x")
	assert.Error(t, err)
}

func TestCheck_EnvSelectsOutput(t *testing.T) {
	t.Setenv("STRENGTHMETER_OUTPUT", "json")
	out, err := runCmd(t, "", "check", "a")
	require.NoError(t, err)
	assert.True(t, json.Valid([]byte(out)), out)
}

const page = `<html><body><form>
<input type="password" name="password1">
<input type="password" name="password2">
<ul>
<li class="password-requirement" data-requirement="length">At least 8 characters</li>
<li class="password-requirement" data-requirement="special">One special character</li>
</ul>
</form></body></html>`

func writePageFile(t *testing.T) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "register.html")
	require.NoError(t, os.WriteFile(path, []byte(page), 0o644))
	return path
}

func TestRender_TypesPassword(t *testing.T) {
	path := writePageFile(t)
	out, err := runCmd(t, "", "render", "--password", "abcdefgh", path)
	require.NoError(t, err)

	assert.Equal(t, 1, strings.Count(out, `class="password-strength mt-2"`))
	assert.Contains(t, out, `<div class="progress-bar bg-warning" role="progressbar" style="width: 40%">`)
	assert.Contains(t, out, `<small class="strength-text mt-1 text-warning">Weak</small>`)
	assert.Contains(t, out, `data-requirement="length">✓ At least 8 characters</li>`)
	assert.Contains(t, out, `data-requirement="special">○ One special character</li>`)
	assert.NotContains(t, out, "abcdefgh")
}

func TestRender_WithoutPasswordLeavesIndicatorEmpty(t *testing.T) {
	path := writePageFile(t)
	out, err := runCmd(t, "", "render", path)
	require.NoError(t, err)
	assert.Contains(t, out, `style="width: 0%"`)
	assert.Contains(t, out, `<small class="strength-text text-muted mt-1"></small>`)
	assert.Contains(t, out, `data-requirement="length">At least 8 characters</li>`)
}

func TestRender_FieldNameAndOutFile(t *testing.T) {
	path := writePageFile(t)
	dest := filepath.Join(t.TempDir(), "out.html")
	stdout, err := runCmd(t, "Ab1!efgh\n", "render", "--field-name", "password2", "--stdin", "--out", dest, path)
	require.NoError(t, err)
	assert.Empty(t, stdout)

	data, err := os.ReadFile(dest)
	require.NoError(t, err)
	html := string(data)
	assert.Contains(t, html, `<input type="password" name="password2"/><div class="password-strength mt-2">`)
	assert.Contains(t, html, `style="width: 100%"`)
}

func TestRender_WarningGoesToCommandStderr(t *testing.T) {
	path := writePageFile(t)
	home := t.TempDir()
	t.Setenv("XDG_CONFIG_HOME", home)
	t.Setenv("HOME", home)
	t.Chdir(t.TempDir())

	cmd := NewRootCmd()
	var out, errOut bytes.Buffer
	cmd.SetOut(&out)
	cmd.SetErr(&errOut)
	cmd.SetArgs([]string{"render", "--field-name", "missing", path})
	require.NoError(t, cmd.Execute())
	defer logging.SetOutput(os.Stderr)

	assert.Contains(t, errOut.String(), `No password fields named "missing" found`)
	assert.NotContains(t, out.String(), "No password fields")
	assert.NotContains(t, out.String(), `class="password-strength`)
}

func TestRender_MissingFile(t *testing.T) {
	_, err := runCmd(t, "", "render", filepath.Join(t.TempDir(), "missing.html"))
	assert.Error(t, err)
}

func TestConfigInitAndShow(t *testing.T) {
	home := t.TempDir()
	t.Setenv("XDG_CONFIG_HOME", home)
	t.Chdir(t.TempDir())

	cmd := NewRootCmd()
	var out bytes.Buffer
	cmd.SetOut(&out)
	cmd.SetArgs([]string{"--language", "de", "config", "init"})
	require.NoError(t, cmd.Execute())
	defer i18n.Init("en")

	written := filepath.Join(home, "strengthmeter", "strengthmeter.yaml")
	assert.Contains(t, out.String(), written)
	data, err := os.ReadFile(written)
	require.NoError(t, err)
	assert.Contains(t, string(data), "language: de")

	// the written file is picked up by the next run
	cmd = NewRootCmd()
	out.Reset()
	cmd.SetOut(&out)
	cmd.SetArgs([]string{"config", "show"})
	require.NoError(t, cmd.Execute())
	assert.Contains(t, out.String(), "language: de")
	assert.Contains(t, out.String(), "field_name: password1")
}

func TestConfigPath(t *testing.T) {
	home := t.TempDir()
	out, err := runCmdWithConfigHome(t, home, "", "config", "path")
	require.NoError(t, err)
	assert.Equal(t, filepath.Join(home, "strengthmeter", "strengthmeter.yaml")+"\n", out)
}

func TestRoot_RunsTUIWithConfig(t *testing.T) {
	var got tui.Options
	orig := runTUI
	runTUI = func(o tui.Options) error { got = o; return nil }
	defer func() { runTUI = orig }()

	_, err := runCmd(t, "", "--reveal", "--field-name", "new_password")
	require.NoError(t, err)
	assert.Equal(t, tui.Options{FieldName: "new_password", Reveal: true}, got)
}

func TestVersionCommand(t *testing.T) {
	out, err := runCmd(t, "", "version")
	require.NoError(t, err)
	assert.Contains(t, out, "version: ")
	assert.Contains(t, out, "commit: ")
}
