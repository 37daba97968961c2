package stats

import (
	"fmt"

	"bikeshare/dataset"
	"bikeshare/domain/business/durationaccumulator"
	"bikeshare/domain/business/frequencycounter"
	"bikeshare/domain/entities/trip"
	"bikeshare/explorer/config"
)

// TimeStats most frequent times of travel
type TimeStats struct {
	Month     int
	DayOfWeek int
	Hour      int
}

// StationStats most popular stations and trip
type StationStats struct {
	StartStation string
	EndStation   string
	Trip         string
}

// DurationStats total and mean trip duration, in seconds
type DurationStats struct {
	Total float64
	Mean  float64
}

// BirthYearStats earliest, most recent and most common birth year
type BirthYearStats struct {
	Earliest   int
	MostRecent int
	MostCommon int
}

// UserStats counts per user type and gender, plus birth year stats.
// BirthYears is nil if there is no birth year column or it has no values
type UserStats struct {
	UserTypes  []frequencycounter.ValueCount[string]
	HasGender  bool
	Genders    []frequencycounter.ValueCount[string]
	BirthYears *BirthYearStats
}

func mode[T comparable](table *dataset.Table, field func(*trip.TripData) T) (T, bool) {
	counter := frequencycounter.NewFrequencyCounter[T]()
	for _, row := range table.Rows() {
		counter.UpdateCounter(field(row))
	}
	return counter.Mode()
}

// ComputeTimeStats returns false if the table is empty
func ComputeTimeStats(table *dataset.Table) (TimeStats, bool) {
	month, ok := mode(table, func(td *trip.TripData) int { return td.Month })
	if !ok {
		return TimeStats{}, false
	}
	day, _ := mode(table, func(td *trip.TripData) int { return td.DayOfWeek })
	hour, _ := mode(table, func(td *trip.TripData) int { return td.Hour })

	return TimeStats{Month: month, DayOfWeek: day, Hour: hour}, true
}

// ComputeStationStats returns false if the table is empty
func ComputeStationStats(table *dataset.Table) (StationStats, bool) {
	startStation, ok := mode(table, func(td *trip.TripData) string { return td.StartStation })
	if !ok {
		return StationStats{}, false
	}
	endStation, _ := mode(table, func(td *trip.TripData) string { return td.EndStation })
	tripLabel, _ := mode(table, func(td *trip.TripData) string { return td.Trip })

	return StationStats{StartStation: startStation, EndStation: endStation, Trip: tripLabel}, true
}

// ComputeDurationStats returns ErrEmptyTable if the table has no trips
func ComputeDurationStats(table *dataset.Table) (DurationStats, error) {
	accumulator := durationaccumulator.NewDurationAccumulator()
	for _, row := range table.Rows() {
		accumulator.UpdateAccumulator(row.Duration)
	}

	mean, err := accumulator.GetAverageDuration()
	if err != nil {
		return DurationStats{}, fmt.Errorf("%w: %w", ErrEmptyTable, err)
	}

	return DurationStats{Total: accumulator.GetTotalDuration(), Mean: mean}, nil
}

func ComputeUserStats(table *dataset.Table, columns config.ColumnsConfig) UserStats {
	userTypes := frequencycounter.NewFrequencyCounter[string]()
	for _, row := range table.Rows() {
		userTypes.UpdateCounter(row.UserType)
	}
	userStats := UserStats{UserTypes: userTypes.ValueCounts()}

	if table.HasField(columns.Gender) {
		genders := frequencycounter.NewFrequencyCounter[string]()
		for _, row := range table.Rows() {
			genders.UpdateCounter(row.Gender)
		}
		userStats.HasGender = true
		userStats.Genders = genders.ValueCounts()
	}

	if table.HasField(columns.BirthYear) {
		userStats.BirthYears = computeBirthYears(table)
	}

	return userStats
}

func computeBirthYears(table *dataset.Table) *BirthYearStats {
	birthYears := frequencycounter.NewFrequencyCounter[int]()
	var birthYearStats *BirthYearStats
	for _, row := range table.Rows() {
		if !row.HasBirthYear {
			continue
		}
		birthYears.UpdateCounter(row.BirthYear)

		if birthYearStats == nil {
			birthYearStats = &BirthYearStats{Earliest: row.BirthYear, MostRecent: row.BirthYear}
			continue
		}
		birthYearStats.Earliest = min(birthYearStats.Earliest, row.BirthYear)
		birthYearStats.MostRecent = max(birthYearStats.MostRecent, row.BirthYear)
	}

	if birthYearStats != nil {
		birthYearStats.MostCommon, _ = birthYears.Mode()
	}
	return birthYearStats
}
