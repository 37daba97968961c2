package console

import (
	"strings"

	"bikeshare/explorer/config"
	"bikeshare/utils"
)

const (
	greeting      = "\nHello! Let's explore some US bikeshare data!"
	separatorSize = 40
)

// Filters selected by the user
// + City: city to analyze
// + Month: month to filter by, or the all option
// + Day: day of week to filter by, or the all option
type Filters struct {
	City  string
	Month string
	Day   string
}

// GetFilters asks the user for the city, month and day to analyze
func GetFilters(prompter *Prompter, explorerConfig *config.ExplorerConfig) (Filters, error) {
	prompter.Println(greeting)

	city, err := prompter.CheckInput(cityPrompt(explorerConfig.CityNames()), explorerConfig.CityNames())
	if err != nil {
		return Filters{}, err
	}

	month, err := prompter.CheckInput(monthPrompt(explorerConfig), explorerConfig.MonthOptions())
	if err != nil {
		return Filters{}, err
	}

	day, err := prompter.CheckInput(dayPrompt(explorerConfig), explorerConfig.DayOptions())
	if err != nil {
		return Filters{}, err
	}

	prompter.Println(Separator())
	return Filters{City: city, Month: month, Day: day}, nil
}

// Separator line printed between sections
func Separator() string {
	return strings.Repeat("-", separatorSize)
}

// cityPrompt e.g. Enter name of city to analyze (Chicago, New York City, or Washington):
func cityPrompt(cities []string) string {
	return "Enter name of city to analyze (" + enumerate(cities) + "): "
}

func monthPrompt(explorerConfig *config.ExplorerConfig) string {
	return "Enter name of month to filter by (" + enumerate(explorerConfig.Months) + `), or "` +
		explorerConfig.AllOption + `" to apply no month filter: `
}

func dayPrompt(explorerConfig *config.ExplorerConfig) string {
	return `Enter name of day of week to filter by, or "` + explorerConfig.AllOption + `" to apply no day filter: `
}

// enumerate joins values as a sentence: A, B, or C
func enumerate(values []string) string {
	titled := make([]string, 0, len(values))
	for _, value := range values {
		titled = append(titled, utils.Title(value))
	}

	if len(titled) < 2 {
		return strings.Join(titled, "")
	}
	return strings.Join(titled[:len(titled)-1], ", ") + ", or " + titled[len(titled)-1]
}
