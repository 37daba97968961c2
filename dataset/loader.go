package dataset

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"time"

	log "github.com/sirupsen/logrus"

	"bikeshare/domain/entities/trip"
	"bikeshare/explorer/config"
)

// columnIndexes position of each analyzed column in the source file. Optional
// columns are -1 when the file does not have them
type columnIndexes struct {
	startTime    int
	startStation int
	endStation   int
	duration     int
	userType     int
	gender       int
	birthYear    int
}

type Loader struct {
	config *config.ExplorerConfig
}

func NewLoader(explorerConfig *config.ExplorerConfig) *Loader {
	return &Loader{
		config: explorerConfig,
	}
}

// Load reads the trips of city and keeps the ones that match month and day.
// month and day may be the all option to skip that filter
func (l *Loader) Load(city string, month string, day string) (*Table, error) {
	table, err := l.ReadCity(city)
	if err != nil {
		return nil, err
	}

	if month != l.config.AllOption {
		monthNumber := l.config.MonthNumber(month)
		if monthNumber == 0 {
			return nil, fmt.Errorf("unknown month %q", month)
		}
		table = FilterByMonth(table, monthNumber)
	}

	if day != l.config.AllOption {
		dayIndex := l.config.DayIndex(day)
		if dayIndex < 0 {
			return nil, fmt.Errorf("unknown day %q", day)
		}
		table = FilterByDay(table, dayIndex)
	}

	log.Debugf("[city: %s][month: %s][day: %s][method: Load] %v trips after filtering", city, month, day, table.Len())
	return table, nil
}

// ReadCity loads every trip in the file of city
func (l *Loader) ReadCity(city string) (*Table, error) {
	filename, ok := l.config.GetCityFile(city)
	if !ok {
		return nil, fmt.Errorf("%w: %s", ErrUnknownCity, city)
	}

	path := filepath.Join(l.config.DataDir, filename)
	dataFile, err := os.Open(path)
	if err != nil {
		log.Debugf("[city: %s][method: ReadCity][status: error] error opening %s: %s", city, path, err.Error())
		return nil, fmt.Errorf("error opening data file for %s: %w", city, err)
	}

	defer func(dataFile *os.File) {
		err := dataFile.Close()
		if err != nil {
			log.Errorf("error closing %s: %s", path, err.Error())
		}
	}(dataFile)

	table, err := l.ReadTable(dataFile)
	if err != nil {
		log.Debugf("[city: %s][method: ReadCity][status: error] error reading %s: %s", city, path, err.Error())
		return nil, fmt.Errorf("error reading %s: %w", path, err)
	}

	log.Debugf("[city: %s][method: ReadCity][status: OK] %v trips loaded from %s", city, table.Len(), path)
	return table, nil
}

// ReadTable parses a delimited file with a header row into a Table
func (l *Loader) ReadTable(reader io.Reader) (*Table, error) {
	csvReader := csv.NewReader(reader)

	header, err := csvReader.Read()
	if errors.Is(err, io.EOF) {
		return nil, ErrEmptyFile
	}
	if err != nil {
		return nil, err
	}

	for i := range header {
		header[i] = strings.TrimSpace(header[i])
	}

	indexes, err := l.getColumnIndexes(header)
	if err != nil {
		return nil, err
	}

	var rows []*trip.TripData
	for {
		record, err := csvReader.Read()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return nil, err
		}

		tripData, err := l.getTripData(record, indexes)
		if err != nil {
			line, _ := csvReader.FieldPos(0)
			return nil, fmt.Errorf("line %v: %w", line, err)
		}
		tripData.RowNumber = len(rows)
		rows = append(rows, tripData)
	}

	return NewTable(header, rows), nil
}

func (l *Loader) getColumnIndexes(header []string) (columnIndexes, error) {
	find := func(name string) int {
		for i, column := range header {
			if column == name {
				return i
			}
		}
		return -1
	}

	columns := l.config.Columns
	indexes := columnIndexes{
		startTime:    find(columns.StartTime),
		startStation: find(columns.StartStation),
		endStation:   find(columns.EndStation),
		duration:     find(columns.Duration),
		userType:     find(columns.UserType),
		gender:       find(columns.Gender),
		birthYear:    find(columns.BirthYear),
	}

	required := []struct {
		name  string
		index int
	}{
		{columns.StartTime, indexes.startTime},
		{columns.StartStation, indexes.startStation},
		{columns.EndStation, indexes.endStation},
		{columns.Duration, indexes.duration},
		{columns.UserType, indexes.userType},
	}
	var missing []string
	for _, column := range required {
		if column.index < 0 {
			missing = append(missing, column.name)
		}
	}
	if len(missing) > 0 {
		return columnIndexes{}, fmt.Errorf("%w: %s", ErrMissingColumn, strings.Join(missing, ", "))
	}

	return indexes, nil
}

func (l *Loader) getTripData(record []string, indexes columnIndexes) (*trip.TripData, error) {
	startTimeStr := record[indexes.startTime]
	startTime, err := time.Parse(l.config.TimeLayout, startTimeStr)
	if err != nil {
		log.Debugf("Invalid start time: %v", startTimeStr)
		return nil, fmt.Errorf("%w %q: %w", ErrInvalidDate, startTimeStr, ErrInvalidTripData)
	}

	durationStr := record[indexes.duration]
	duration, err := strconv.ParseFloat(durationStr, 64)
	if err != nil {
		log.Debugf("Invalid duration: %v", durationStr)
		return nil, fmt.Errorf("%w %q: %w", ErrInvalidDuration, durationStr, ErrInvalidTripData)
	}

	tripData := &trip.TripData{
		Values:       record,
		StartTime:    startTime,
		StartStation: record[indexes.startStation],
		EndStation:   record[indexes.endStation],
		Duration:     duration,
		UserType:     record[indexes.userType],
	}

	if indexes.gender >= 0 {
		tripData.Gender = record[indexes.gender]
	}

	if indexes.birthYear >= 0 && record[indexes.birthYear] != "" {
		// birth years are usually written as floats, e.g. 1992.0
		birthYearStr := record[indexes.birthYear]
		birthYear, err := strconv.ParseFloat(birthYearStr, 64)
		if err != nil {
			log.Debugf("Invalid birth year: %v", birthYearStr)
			return nil, fmt.Errorf("%w %q: %w", ErrInvalidBirthYear, birthYearStr, ErrInvalidTripData)
		}
		tripData.BirthYear = int(birthYear)
		tripData.HasBirthYear = true
	}

	tripData.Derive()
	return tripData, nil
}

// FilterByMonth keeps the trips that started in the 1-based month
func FilterByMonth(table *Table, month int) *Table {
	return table.Filter(func(tripData *trip.TripData) bool {
		return tripData.Month == month
	})
}

// FilterByDay keeps the trips that started in the day index, Monday is 0
func FilterByDay(table *Table, day int) *Table {
	return table.Filter(func(tripData *trip.TripData) bool {
		return tripData.DayOfWeek == day
	})
}
