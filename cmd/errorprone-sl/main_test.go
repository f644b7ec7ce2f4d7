package main

import (
	"bytes"
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/spechtlabs/errorprone-sl/internal/config"
)

// One tree per test binary: the subcommands are package-level values.
var testRoot = newRootCmd()

func execute(t *testing.T, args ...string) (string, error) {
	t.Helper()
	var out bytes.Buffer
	testRoot.SetOut(&out)
	testRoot.SetErr(&out)
	testRoot.SetArgs(append([]string{"--color=off", "--quiet"}, args...))
	err := testRoot.Execute()
	return out.String(), err
}

func writeConfig(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestFlagsCommand(t *testing.T) {
	path := writeConfig(t, config.ConfigFileName, `
project:
  plugins: [java, com.spechtlabs.errorprone]
errorprone:
  warn: [Bar]
  excludedPaths: [gen/**]
`)

	out, err := execute(t, "flags", "--config", path, "--single-line=false")
	require.NoError(t, err)

	lines := strings.Split(strings.TrimSpace(out), "\n")
	assert.Contains(t, lines, "-Xep:Bar:WARN")
	assert.Contains(t, lines, "-Xep:WildcardImport:ERROR")
	assert.Equal(t, "-XepDisableWarningsInGeneratedCode", lines[len(lines)-2])
	assert.Equal(t, "-XepExcludedPaths:gen/**", lines[len(lines)-1])

	out, err = execute(t, "flags", "--config", path, "--single-line")
	require.NoError(t, err)
	assert.Equal(t, strings.Join(lines, " "), strings.TrimSpace(out))
}

func TestConfigureCommandJSON(t *testing.T) {
	a := writeConfig(t, config.ConfigFileName, "project:\n  name: a\n")
	b := writeConfig(t, config.TOMLConfigFileName, "[project]\nname = \"b\"\nplugins = [\"java\"]\n")

	out, err := execute(t, "configure", "--config=", "--output", "json", a, b)
	require.NoError(t, err)

	var reports []projectReport
	require.NoError(t, json.Unmarshal([]byte(out), &reports))
	require.Len(t, reports, 2)

	assert.Equal(t, "a", reports[0].Project)
	require.Len(t, reports[0].Tasks, 2)
	assert.Equal(t, "errorprone", reports[0].Tasks[0].ToolChain)
	assert.Contains(t, reports[0].Tasks[0].CompilerArgs, "-XepDisableWarningsInGeneratedCode")
	assert.Equal(t, []dependencyReport{{
		Configuration: "errorprone",
		Notation:      "com.google.errorprone:error_prone_core:2.3.1",
	}}, reports[0].Dependencies)

	assert.Equal(t, "b", reports[1].Project)
	require.Len(t, reports[1].Tasks, 2)
	assert.Equal(t, "javac", reports[1].Tasks[0].ToolChain)
	assert.Empty(t, reports[1].Tasks[0].CompilerArgs)
	assert.Empty(t, reports[1].Dependencies)
}

func TestConfigureCommandText(t *testing.T) {
	path := writeConfig(t, config.ConfigFileName, "project:\n  name: shop\n")

	out, err := execute(t, "configure", "--config=", "--output", "text", path)
	require.NoError(t, err)

	assert.Contains(t, out, "project shop")
	assert.Contains(t, out, "task compileJava [errorprone]")
	assert.Contains(t, out, "    -Xep:AssertFalse:ERROR")
	assert.Contains(t, out, "errorprone: com.google.errorprone:error_prone_core:2.3.1")
}

func TestConfigureCommandRejectsUnknownOutput(t *testing.T) {
	_, err := execute(t, "configure", "--config=", "--output", "xml")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "xml")
}

func TestDefaultsCommand(t *testing.T) {
	out, err := execute(t, "defaults")
	require.NoError(t, err)

	assert.Contains(t, out, "ERROR AssertFalse")
	assert.Contains(t, out, "note: listed more than once in the default policy: MultiVariableDeclaration")
}

func TestVersionCommand(t *testing.T) {
	out, err := execute(t, "version")
	require.NoError(t, err)
	assert.Contains(t, out, "errorprone-sl dev")
}
