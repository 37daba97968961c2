package utils

import (
	"fmt"
	"os"
)

// GetConfigFile returns the content of the config file located at filepath
func GetConfigFile(filepath string) ([]byte, error) {
	configFileBytes, err := os.ReadFile(filepath)
	if err != nil {
		return nil, fmt.Errorf("error reading config file: %w", err)
	}

	return configFileBytes, nil
}
