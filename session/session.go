package session

import (
	"errors"
	"fmt"
	"io"

	log "github.com/sirupsen/logrus"

	"bikeshare/console"
	"bikeshare/dataset"
	"bikeshare/explorer/config"
	"bikeshare/pager"
	"bikeshare/stats"
)

const restartPrompt = "\nWould you like to restart?  Enter yes or no.\n"

type state int

const (
	running state = iota
	done
)

// Session runs the explorer: select filters, load the data, report statistics
// and page through raw rows, until the user does not want to restart
type Session struct {
	config   *config.ExplorerConfig
	prompter *console.Prompter
	writer   io.Writer
	loader   *dataset.Loader
	reporter *stats.Reporter
	pager    *pager.Pager
}

func NewSession(explorerConfig *config.ExplorerConfig, reader io.Reader, writer io.Writer) *Session {
	prompter := console.NewPrompter(reader, writer)
	return &Session{
		config:   explorerConfig,
		prompter: prompter,
		writer:   writer,
		loader:   dataset.NewLoader(explorerConfig),
		reporter: stats.NewReporter(explorerConfig, writer),
		pager:    pager.NewPager(prompter, writer, explorerConfig.PageSize),
	}
}

// Run loops over analyses until the user answers no to restart. Closing the
// input ends the session without error
func (s *Session) Run() error {
	iteration := 0
	for currentState := running; currentState == running; {
		iteration += 1
		log.Debugf("[method: Run][iteration: %v] starting analysis", iteration)

		err := s.analyze()
		if err != nil {
			return ignoreEOF(err)
		}

		restart, err := s.prompter.Confirm(restartPrompt)
		if err != nil {
			return ignoreEOF(err)
		}
		if !restart {
			currentState = done
		}
	}

	log.Debugf("[method: Run] session finished after %v iterations", iteration)
	return nil
}

// analyze runs a single iteration. Load and statistics errors are reported to
// the user and end the iteration, only input errors are returned
func (s *Session) analyze() error {
	filters, err := console.GetFilters(s.prompter, s.config)
	if err != nil {
		return err
	}

	table, err := s.loader.Load(filters.City, filters.Month, filters.Day)
	if err != nil {
		s.reportError(err)
		return nil
	}

	reports := []func(*dataset.Table) error{
		s.reporter.TimeStats,
		s.reporter.StationStats,
		s.reporter.TripDurationStats,
		s.reporter.UserStats,
	}
	for _, report := range reports {
		if err := report(table); err != nil {
			s.reportError(err)
			return nil
		}
	}

	_, err = s.pager.RawData(table)
	return err
}

func (s *Session) reportError(err error) {
	log.Errorf("[method: analyze][status: error] %s", err.Error())
	_, _ = fmt.Fprintf(s.writer, "\nError: %s\n", err.Error())
}

func ignoreEOF(err error) error {
	if errors.Is(err, io.EOF) {
		return nil
	}
	return err
}
