package main

import (
	"bytes"
	"strings"
	"testing"

	"github.com/spf13/cobra"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func findCmd(root *cobra.Command, name string) *cobra.Command {
	for _, c := range root.Commands() {
		if c.Name() == name {
			return c
		}
	}
	return nil
}

// TestRootCommand_HasSubcommands verifies root command structure
func TestRootCommand_HasSubcommands(t *testing.T) {
	cmd := getRootCmd()
	require.NotNil(t, cmd, "Root command should exist")

	for _, name := range []string{"run", "charts", "report"} {
		assert.NotNil(t, findCmd(cmd, name), "%s subcommand should exist", name)
	}
}

// TestRootCommand_ConfigFlag verifies --config flag exists
func TestRootCommand_ConfigFlag(t *testing.T) {
	cmd := getRootCmd()

	configFlag := cmd.PersistentFlags().Lookup("config")
	require.NotNil(t, configFlag, "--config flag should exist")
	assert.Equal(t, "string", configFlag.Value.Type(), "--config should be string type")
}

// TestRootCommand_Help verifies help text includes usage
func TestRootCommand_Help(t *testing.T) {
	cmd := getRootCmd()

	buf := new(bytes.Buffer)
	cmd.SetOut(buf)
	cmd.SetArgs([]string{"--help"})
	err := cmd.Execute()
	require.NoError(t, err)

	helpText := buf.String()
	assert.Contains(t, helpText, "covidtrends", "Help should mention covidtrends")
	assert.Contains(t, helpText, "COVID-19", "Help should mention the dataset")
	assert.Contains(t, helpText, "Available Commands", "Help should list commands")
}

// TestRootCommand_VersionFlag verifies --version flag
func TestRootCommand_VersionFlag(t *testing.T) {
	cmd := getRootCmd()
	cmd.Version = "test-version"

	buf := new(bytes.Buffer)
	cmd.SetOut(buf)
	cmd.SetArgs([]string{"--version"})
	err := cmd.Execute()
	require.NoError(t, err)

	assert.Contains(t, buf.String(), "test-version",
		"Version output should contain version string")
}

// TestRootCommand_PersistentFlags verifies persistent flags are inherited
func TestRootCommand_PersistentFlags(t *testing.T) {
	cmd := getRootCmd()

	for _, name := range []string{
		"config", "source", "timeout", "no-progress", "countries",
		"window", "top", "output", "excel", "log-level",
	} {
		assert.NotNil(t, cmd.PersistentFlags().Lookup(name),
			"persistent --%s flag should exist", name)
	}

	runCmd := findCmd(cmd, "run")
	require.NotNil(t, runCmd)
	assert.NotNil(t, runCmd.InheritedFlags().Lookup("countries"),
		"run should inherit --countries flag")
}

// TestRootCommand_ValidArgs verifies root command rejects unknown subcommands
func TestRootCommand_ValidArgs(t *testing.T) {
	cmd := getRootCmd()

	buf := new(bytes.Buffer)
	cmd.SetErr(buf)
	cmd.SetArgs([]string{"invalid-arg"})
	err := cmd.Execute()

	assert.Error(t, err, "Root command should reject invalid arguments")
	errOutput := buf.String()
	assert.True(t,
		strings.Contains(errOutput, "unknown") || strings.Contains(errOutput, "invalid"),
		"Error should mention unknown or invalid command")
}

// TestSubcommand_Help verifies subcommand descriptions
func TestSubcommand_Help(t *testing.T) {
	cmd := getRootCmd()

	chartsCmd := findCmd(cmd, "charts")
	require.NotNil(t, chartsCmd)
	assert.Contains(t, chartsCmd.Short, "charts")

	reportCmd := findCmd(cmd, "report")
	require.NotNil(t, reportCmd)
	assert.Contains(t, reportCmd.Short, "report")
}

// TestReportCommand_FailsOnUnreachableSource verifies that a bad source
// surfaces as a loader error, not a command-structure error.
func TestReportCommand_FailsOnUnreachableSource(t *testing.T) {
	tmp := t.TempDir()
	t.Chdir(tmp)
	t.Setenv("HOME", tmp)

	cmd := getRootCmd()
	buf := new(bytes.Buffer)
	cmd.SetOut(buf)
	cmd.SetErr(buf)
	cmd.SetArgs([]string{"report", "--source", "/no/such/file.csv"})

	err := cmd.Execute()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "loading dataset")
}
