package trip

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestWeekdayIndex(t *testing.T) {
	assert.Equal(t, 0, WeekdayIndex(time.Monday))
	assert.Equal(t, 4, WeekdayIndex(time.Friday))
	assert.Equal(t, 6, WeekdayIndex(time.Sunday))
}

func TestDerive(t *testing.T) {
	// 2017-03-05 was a Sunday
	tripData := &TripData{
		StartTime:    time.Date(2017, time.March, 5, 17, 42, 3, 0, time.UTC),
		StartStation: "Canal St & Adams St",
		EndStation:   "Clark St & Elm St",
	}

	tripData.Derive()

	assert.Equal(t, 3, tripData.Month)
	assert.Equal(t, 6, tripData.DayOfWeek)
	assert.Equal(t, 17, tripData.Hour)
	assert.Equal(t, "Canal St & Adams St to Clark St & Elm St", tripData.Trip)
	assert.Equal(t, []string{"3", "6", "17", "Canal St & Adams St to Clark St & Elm St"}, tripData.DerivedValues())
	assert.Len(t, DerivedColumns(), len(tripData.DerivedValues()))
}
