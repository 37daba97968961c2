package stats

import (
	"fmt"
	"io"
	"strings"
	"time"

	log "github.com/sirupsen/logrus"

	"bikeshare/dataset"
	"bikeshare/explorer/config"
	"bikeshare/utils"
)

const (
	nullLabel       = "NaN"
	noDataMessage   = "No trips match the selected filters."
	separatorLength = 40
)

// Reporter prints descriptive statistics of a filtered table
type Reporter struct {
	config *config.ExplorerConfig
	writer io.Writer
	now    func() time.Time
}

func NewReporter(explorerConfig *config.ExplorerConfig, writer io.Writer) *Reporter {
	return &Reporter{
		config: explorerConfig,
		writer: writer,
		now:    time.Now,
	}
}

// TimeStats displays statistics on the most frequent times of travel
func (r *Reporter) TimeStats(table *dataset.Table) error {
	return r.report("Calculating The Most Frequent Times of Travel...", func() error {
		timeStats, ok := ComputeTimeStats(table)
		if !ok {
			r.printf("%s\n", noDataMessage)
			return nil
		}

		r.printf("Most common month: %s\n", utils.Title(r.config.MonthName(timeStats.Month)))
		r.printf("Most common day of week: %s\n", utils.Title(r.config.DayName(timeStats.DayOfWeek)))
		r.printf("Most common start hour: %02d\n", timeStats.Hour)
		return nil
	})
}

// StationStats displays statistics on the most popular stations and trip
func (r *Reporter) StationStats(table *dataset.Table) error {
	return r.report("Calculating The Most Popular Stations and Trip...", func() error {
		stationStats, ok := ComputeStationStats(table)
		if !ok {
			r.printf("%s\n", noDataMessage)
			return nil
		}

		r.printf("Most common start station: %s\n", stationStats.StartStation)
		r.printf("Most common end station: %s\n", stationStats.EndStation)
		r.printf("Most common trip: %s\n", stationStats.Trip)
		return nil
	})
}

// TripDurationStats displays the total and mean trip duration. An empty table is an error
func (r *Reporter) TripDurationStats(table *dataset.Table) error {
	return r.report("Calculating Trip Duration...", func() error {
		durationStats, err := ComputeDurationStats(table)
		if err != nil {
			return err
		}

		r.printf("Total travel time (seconds): %f\n", durationStats.Total)
		r.printf("Mean travel time (seconds): %f\n", durationStats.Mean)
		return nil
	})
}

// UserStats displays statistics on bikeshare users. Missing gender or birth year
// columns are reported as unavailable
func (r *Reporter) UserStats(table *dataset.Table) error {
	return r.report("Calculating User Stats...", func() error {
		userStats := ComputeUserStats(table, r.config.Columns)

		r.printf("Number of users of each type:\n")
		for _, userType := range userStats.UserTypes {
			r.printf("\t%s: %d\n", label(userType.Value), userType.Count)
		}

		r.printf("\nNumber of users of each gender:\n")
		if !userStats.HasGender {
			r.printf("\tGender data does not exist.\n")
		}
		for _, gender := range userStats.Genders {
			r.printf("\t%s: %d\n", label(gender.Value), gender.Count)
		}

		r.printf("\nBirth year statistics:\n")
		if userStats.BirthYears == nil {
			r.printf("\tBirth year data does not exist.\n")
			return nil
		}
		r.printf("\tEarliest birth year: %d\n", userStats.BirthYears.Earliest)
		r.printf("\tMost recent birth year: %d\n", userStats.BirthYears.MostRecent)
		r.printf("\tMost common birth year: %d\n", userStats.BirthYears.MostCommon)
		return nil
	})
}

// report prints the heading, runs body and prints how long it took
func (r *Reporter) report(heading string, body func() error) error {
	r.printf("\n%s\n\n", heading)
	start := r.now()

	if err := body(); err != nil {
		return err
	}

	r.printf("\nThis took %v seconds.\n", r.now().Sub(start).Seconds())
	r.printf("%s\n", strings.Repeat("-", separatorLength))
	return nil
}

func (r *Reporter) printf(format string, a ...any) {
	_, err := fmt.Fprintf(r.writer, format, a...)
	if err != nil {
		log.Errorf("[method: printf][status: error] error writing report: %s", err.Error())
	}
}

func label(value string) string {
	if value == "" {
		return nullLabel
	}
	return value
}
