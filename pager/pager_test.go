package pager

import (
	"bytes"
	"fmt"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"bikeshare/console"
	"bikeshare/dataset"
	"bikeshare/domain/entities/trip"
)

const pageSize = 5

func newTable(size int) *dataset.Table {
	var rows []*trip.TripData
	for i := 0; i < size; i++ {
		startTime := time.Date(2017, time.January, 2, 8, i, 0, 0, time.UTC)
		tripData := &trip.TripData{
			RowNumber:    i,
			Values:       []string{startTime.Format("2006-01-02 15:04:05"), fmt.Sprintf("Station %v", i)},
			StartTime:    startTime,
			StartStation: fmt.Sprintf("Station %v", i),
			EndStation:   "Depot",
		}
		tripData.Derive()
		rows = append(rows, tripData)
	}
	return dataset.NewTable([]string{"Start Time", "Start Station"}, rows)
}

func runPager(t *testing.T, table *dataset.Table, answers ...string) (int, string) {
	t.Helper()
	output := &bytes.Buffer{}
	prompter := console.NewPrompter(strings.NewReader(strings.Join(answers, "\n")+"\n"), output)

	pagesShown, err := NewPager(prompter, output, pageSize).RawData(table)

	require.NoError(t, err)
	return pagesShown, output.String()
}

func TestRawDataStopsAtEndOfData(t *testing.T) {
	// --- Arrange ---
	table := newTable(12)

	// --- Act ---
	// the last yes is never read
	pagesShown, output := runPager(t, table, "yes", "yes", "yes", "yes")

	// --- Assert ---
	assert.Equal(t, 3, pagesShown)
	assert.Equal(t, 1, strings.Count(output, "display the first 5 rows"))
	assert.Equal(t, 2, strings.Count(output, "display the next 5 rows"))
	assert.Contains(t, output, "End of data reached.")
	assert.Contains(t, output, "Station 11")
	assert.Equal(t, 3, strings.Count(output, "month"))
}

func TestRawDataPageCount(t *testing.T) {
	for _, size := range []int{1, 4, 5, 6, 10, 12, 15} {
		t.Run(fmt.Sprintf("%v rows", size), func(t *testing.T) {
			answers := make([]string, size)
			for i := range answers {
				answers[i] = "yes"
			}

			pagesShown, output := runPager(t, newTable(size), answers...)

			assert.Equal(t, (size+pageSize-1)/pageSize, pagesShown)
			assert.Contains(t, output, "End of data reached.")
			assert.Contains(t, output, fmt.Sprintf("Station %v", size-1))
		})
	}
}

func TestRawDataStopsOnNo(t *testing.T) {
	pagesShown, output := runPager(t, newTable(12), "yes", "no")

	assert.Equal(t, 1, pagesShown)
	assert.Contains(t, output, "Station 4")
	assert.NotContains(t, output, "Station 5")
	assert.NotContains(t, output, "End of data reached.")
}

func TestRawDataEmptyTable(t *testing.T) {
	pagesShown, output := runPager(t, newTable(0), "yes")

	assert.Zero(t, pagesShown)
	assert.Contains(t, output, "End of data reached.")
}

func TestRawDataRepromptsOnInvalidAnswer(t *testing.T) {
	pagesShown, output := runPager(t, newTable(3), "sure", "YES")

	assert.Equal(t, 1, pagesShown)
	assert.Contains(t, output, "Invalid input!")
}

func TestRawDataLabelsRowsWithSourceRowNumber(t *testing.T) {
	// --- Arrange ---
	oddRows := newTable(12).Filter(func(tripData *trip.TripData) bool {
		return tripData.RowNumber%2 == 1
	})

	// --- Act ---
	pagesShown, output := runPager(t, oddRows, "yes", "no")

	// --- Assert ---
	assert.Equal(t, 1, pagesShown)
	var labels []string
	for _, line := range strings.Split(output, "\n") {
		if strings.Contains(line, "to Depot") {
			labels = append(labels, strings.Fields(line)[0])
		}
	}
	assert.Equal(t, []string{"1", "3", "5", "7", "9"}, labels)
}

func TestRawDataEndOfDataOutput(t *testing.T) {
	_, output := runPager(t, newTable(2), "yes")

	assert.True(t, strings.HasSuffix(output, "\nEnd of data reached.\n\n"))
}
