package session

import (
	"bytes"
	"os"
	"strings"
	"testing"

	log "github.com/sirupsen/logrus"
	"github.com/sirupsen/logrus/hooks/test"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"bikeshare/explorer/config"
)

func newTestConfig(t *testing.T) *config.ExplorerConfig {
	t.Helper()
	t.Setenv("EXPLORER_CONFIG", "")
	explorerConfig, err := config.LoadConfig()
	require.NoError(t, err)
	explorerConfig.DataDir = "../dataset/testdata"
	return explorerConfig
}

func runSession(t *testing.T, explorerConfig *config.ExplorerConfig, answers ...string) string {
	t.Helper()
	output := &bytes.Buffer{}
	input := strings.NewReader(strings.Join(answers, "\n") + "\n")

	err := NewSession(explorerConfig, input, output).Run()

	require.NoError(t, err)
	return output.String()
}

func TestRunSingleIteration(t *testing.T) {
	// --- Act ---
	output := runSession(t, newTestConfig(t), "chicago", "march", "all", "no", "no")

	// --- Assert ---
	assert.Contains(t, output, "Most common month: March")
	assert.Contains(t, output, "Total travel time (seconds): 2400.000000")
	assert.Contains(t, output, "Number of users of each gender:")
	assert.Contains(t, output, "display the first 5 rows")
	assert.Contains(t, output, "Would you like to restart?")

	timeIndex := strings.Index(output, "Most Frequent Times of Travel")
	stationIndex := strings.Index(output, "Most Popular Stations and Trip")
	durationIndex := strings.Index(output, "Calculating Trip Duration")
	userIndex := strings.Index(output, "Calculating User Stats")
	assert.True(t, timeIndex < stationIndex && stationIndex < durationIndex && durationIndex < userIndex)
}

func TestRunRestart(t *testing.T) {
	output := runSession(t, newTestConfig(t),
		"chicago", "all", "all", "no", "yes",
		"washington", "all", "all", "yes", "no",
	)

	assert.Equal(t, 2, strings.Count(output, "Hello! Let's explore some US bikeshare data!"))
	assert.Contains(t, output, "Gender data does not exist.")
	assert.Contains(t, output, "Lincoln Memorial")
	assert.Contains(t, output, "End of data reached.")
}

func TestRunEmptyFilterReportsError(t *testing.T) {
	output := runSession(t, newTestConfig(t), "chicago", "april", "all", "no")

	assert.Contains(t, output, "Error: no trips match the selected filters")
	assert.NotContains(t, output, "Calculating User Stats")
	assert.NotContains(t, output, "rows of raw data")
	assert.Contains(t, output, "Would you like to restart?")
}

func TestRunMissingFileThenRestart(t *testing.T) {
	explorerConfig := newTestConfig(t)
	dataDir := t.TempDir()
	chicago, err := os.ReadFile("../dataset/testdata/chicago.csv")
	require.NoError(t, err)
	require.NoError(t, os.WriteFile(dataDir+"/chicago.csv", chicago, 0o600))
	explorerConfig.DataDir = dataDir

	output := runSession(t, explorerConfig,
		"washington", "all", "all", "yes",
		"chicago", "all", "sunday", "no", "no",
	)

	assert.Contains(t, output, "Error: error opening data file for washington")
	assert.Contains(t, output, "Most common day of week: Sunday")
}

func TestRunClosedInput(t *testing.T) {
	output := runSession(t, newTestConfig(t), "chicago")

	assert.Contains(t, output, "Enter name of month to filter by")
}

func TestRunLogsEachFailureOnce(t *testing.T) {
	// --- Arrange ---
	hook := test.NewGlobal()
	defer hook.Reset()
	explorerConfig := newTestConfig(t)
	explorerConfig.DataDir = t.TempDir()

	// --- Act ---
	runSession(t, explorerConfig, "chicago", "all", "all", "yes", "washington", "all", "all", "no")

	// --- Assert ---
	errorEntries := 0
	for _, entry := range hook.AllEntries() {
		if entry.Level <= log.ErrorLevel {
			errorEntries += 1
		}
	}
	assert.Equal(t, 2, errorEntries)
}

func TestRunEmptyFilterLogsOnce(t *testing.T) {
	hook := test.NewGlobal()
	defer hook.Reset()

	runSession(t, newTestConfig(t), "chicago", "april", "all", "no")

	require.Len(t, hook.AllEntries(), 1)
	assert.Equal(t, log.ErrorLevel, hook.LastEntry().Level)
	assert.Contains(t, hook.LastEntry().Message, "no trips match the selected filters")
}
