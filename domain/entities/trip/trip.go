package trip

import (
	"strconv"
	"time"
)

const tripSeparator = " to "

// TripData struct that contains the data of a single bike trip
// + RowNumber: 0-based position of the row in the source file, header excluded
// + Values: raw cells of the row, in the same order as the source file columns
// + StartTime: date and time in which the trip begins
// + StartStation: name of the station in which the trip begins
// + EndStation: name of the station in which the trip ends
// + Duration: duration of the trip in seconds
// + UserType: type of user, empty if the cell was empty
// + Gender: gender of the user, empty if the cell or the column is missing
// + BirthYear: birth year of the user, only meaningful when HasBirthYear is true
// + Month, DayOfWeek, Hour and Trip are derived from the fields above
type TripData struct {
	RowNumber    int
	Values       []string
	StartTime    time.Time
	StartStation string
	EndStation   string
	Duration     float64
	UserType     string
	Gender       string
	BirthYear    int
	HasBirthYear bool
	Month        int
	DayOfWeek    int
	Hour         int
	Trip         string
}

// Derive fills the fields computed from the source data: Month (1-12),
// DayOfWeek (0=Monday..6=Sunday), Hour (0-23) and the Trip label
func (td *TripData) Derive() {
	td.Month = int(td.StartTime.Month())
	td.DayOfWeek = WeekdayIndex(td.StartTime.Weekday())
	td.Hour = td.StartTime.Hour()
	td.Trip = TripLabel(td.StartStation, td.EndStation)
}

// DerivedValues returns the derived fields as strings, in the order given by DerivedColumns
func (td *TripData) DerivedValues() []string {
	return []string{
		strconv.Itoa(td.Month),
		strconv.Itoa(td.DayOfWeek),
		strconv.Itoa(td.Hour),
		td.Trip,
	}
}

// DerivedColumns names of the columns computed at load time
func DerivedColumns() []string {
	return []string{"month", "day_of_week", "hour", "trip"}
}

// WeekdayIndex maps a time.Weekday to an index where Monday is 0 and Sunday is 6
func WeekdayIndex(weekday time.Weekday) int {
	return (int(weekday) + 6) % 7
}

// TripLabel returns the synthetic trip name, e.g. Canal St to Clark St
func TripLabel(startStation string, endStation string) string {
	return startStation + tripSeparator + endStation
}
