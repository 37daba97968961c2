package main

import (
	"os"

	log "github.com/sirupsen/logrus"

	"bikeshare/explorer/config"
	"bikeshare/session"
)

const defaultLogLevel = "warn"

// InitLogger Receives the log level to be set in logrus as a string. This method
// parses the string and set the level to the logger. If the level string is not
// valid an error is returned
func InitLogger(logLevel string) error {
	level, err := log.ParseLevel(logLevel)
	if err != nil {
		return err
	}

	customFormatter := &log.TextFormatter{
		TimestampFormat: "2006-01-02 15:04:05",
		FullTimestamp:   false,
	}
	log.SetFormatter(customFormatter)
	log.SetOutput(os.Stderr)
	log.SetLevel(level)
	return nil
}

func main() {
	logLevel := os.Getenv("LOG_LEVEL")
	if logLevel == "" {
		logLevel = defaultLogLevel
	}
	if err := InitLogger(logLevel); err != nil {
		log.Fatalf("%s", err)
	}

	explorerConfig, err := config.LoadConfig()
	if err != nil {
		log.Fatalf("[status: error] error loading explorer config: %s", err.Error())
	}

	err = session.NewSession(explorerConfig, os.Stdin, os.Stdout).Run()
	if err != nil {
		log.Fatalf("[status: error] session finished with error: %s", err.Error())
	}

	log.Debug("Finish main.go")
}
