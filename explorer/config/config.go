package config

import (
	_ "embed"
	"fmt"
	"os"

	"github.com/go-playground/validator/v10"
	"gopkg.in/yaml.v3"

	"bikeshare/utils"
)

const configPathEnv = "EXPLORER_CONFIG"

//go:embed config.yaml
var defaultConfigFile []byte

// CityConfig maps a city to the file that contains its trips
type CityConfig struct {
	Name string `yaml:"name" validate:"required,lowercase"`
	File string `yaml:"file" validate:"required"`
}

// ColumnsConfig contains the name of each source column to analyze
type ColumnsConfig struct {
	StartTime    string `yaml:"start_time" validate:"required"`
	StartStation string `yaml:"start_station" validate:"required"`
	EndStation   string `yaml:"end_station" validate:"required"`
	Duration     string `yaml:"duration" validate:"required"`
	UserType     string `yaml:"user_type" validate:"required"`
	Gender       string `yaml:"gender" validate:"required"`
	BirthYear    string `yaml:"birth_year" validate:"required"`
}

type ExplorerConfig struct {
	DataDir    string        `yaml:"data_dir" validate:"required"`
	Cities     []CityConfig  `yaml:"cities" validate:"required,min=1,dive"`
	Months     []string      `yaml:"months" validate:"required,min=1,max=12,dive,required,lowercase"`
	Days       []string      `yaml:"days" validate:"len=7,dive,required,lowercase"`
	AllOption  string        `yaml:"all_option" validate:"required,lowercase"`
	PageSize   int           `yaml:"page_size" validate:"gt=0"`
	TimeLayout string        `yaml:"time_layout" validate:"required"`
	Columns    ColumnsConfig `yaml:"columns"`
}

// LoadConfig returns the explorer config. If EXPLORER_CONFIG is set the config is read
// from that path, otherwise the config embedded in the binary is used.
// EXPLORER_CONFIG, like LOG_LEVEL read by the explorer main, is an optional
// deployment setting on top of the console interaction; unset, the explorer
// reads no environment and behaves as described by the embedded defaults
func LoadConfig() (*ExplorerConfig, error) {
	configFile := defaultConfigFile
	if configPath := os.Getenv(configPathEnv); configPath != "" {
		var err error
		configFile, err = utils.GetConfigFile(configPath)
		if err != nil {
			return nil, err
		}
	}

	return ParseConfig(configFile)
}

// ParseConfig unmarshals and validates an explorer config file
func ParseConfig(configFile []byte) (*ExplorerConfig, error) {
	var explorerConfig ExplorerConfig
	err := yaml.Unmarshal(configFile, &explorerConfig)
	if err != nil {
		return nil, fmt.Errorf("error parsing explorer config file: %w", err)
	}

	err = validator.New().Struct(explorerConfig)
	if err != nil {
		return nil, fmt.Errorf("invalid explorer config: %w", err)
	}

	return &explorerConfig, nil
}

// CityNames returns the name of every configured city
func (ec *ExplorerConfig) CityNames() []string {
	names := make([]string, 0, len(ec.Cities))
	for _, city := range ec.Cities {
		names = append(names, city.Name)
	}
	return names
}

// GetCityFile returns the file that contains the trips of the city
func (ec *ExplorerConfig) GetCityFile(city string) (string, bool) {
	for _, cityConfig := range ec.Cities {
		if cityConfig.Name == city {
			return cityConfig.File, true
		}
	}
	return "", false
}

// MonthOptions valid answers for the month filter, the configured months plus the all option
func (ec *ExplorerConfig) MonthOptions() []string {
	return append(append([]string{}, ec.Months...), ec.AllOption)
}

// DayOptions valid answers for the day filter, the configured days plus the all option
func (ec *ExplorerConfig) DayOptions() []string {
	return append(append([]string{}, ec.Days...), ec.AllOption)
}

// MonthNumber returns the 1-based number of month, or 0 if it is unknown
func (ec *ExplorerConfig) MonthNumber(month string) int {
	return utils.IndexOf(month, ec.Months) + 1
}

// DayIndex returns the index of day, where Monday is 0, or -1 if it is unknown
func (ec *ExplorerConfig) DayIndex(day string) int {
	return utils.IndexOf(day, ec.Days)
}

// MonthName returns the name of the 1-based month number. Months outside of the
// configured ones (e.g. july) are returned as their number
func (ec *ExplorerConfig) MonthName(month int) string {
	if month < 1 || month > len(ec.Months) {
		return fmt.Sprintf("%d", month)
	}
	return ec.Months[month-1]
}

// DayName returns the name of the day index, Monday is 0
func (ec *ExplorerConfig) DayName(day int) string {
	if day < 0 || day >= len(ec.Days) {
		return fmt.Sprintf("%d", day)
	}
	return ec.Days[day]
}
