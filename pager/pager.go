package pager

import (
	"fmt"
	"io"
	"strings"
	"text/tabwriter"

	log "github.com/sirupsen/logrus"

	"bikeshare/console"
	"bikeshare/dataset"
	"bikeshare/domain/entities/trip"
)

const endOfDataMessage = "\nEnd of data reached.\n\n"

// Pager displays the raw rows of a table, one page at a time
type Pager struct {
	prompter *console.Prompter
	writer   io.Writer
	pageSize int
}

func NewPager(prompter *console.Prompter, writer io.Writer, pageSize int) *Pager {
	return &Pager{
		prompter: prompter,
		writer:   writer,
		pageSize: pageSize,
	}
}

// RawData asks the user whether to display the next page of rows until the
// answer is no or the end of the table is reached. Returns the amount of pages displayed
func (p *Pager) RawData(table *dataset.Table) (int, error) {
	offset := 0
	pagesShown := 0
	for {
		displayData, err := p.prompter.Confirm(p.prompt(offset))
		if err != nil {
			return pagesShown, err
		}
		if !displayData {
			break
		}

		rows := table.Page(offset, p.pageSize)
		if len(rows) > 0 {
			if err := p.printRows(table, rows); err != nil {
				return pagesShown, err
			}
			pagesShown += 1
		}

		offset += len(rows)
		if len(rows) < p.pageSize || offset >= table.Len() {
			log.Debugf("[method: RawData] end of data reached after %v pages", pagesShown)
			_, err = fmt.Fprint(p.writer, endOfDataMessage)
			return pagesShown, err
		}
	}

	return pagesShown, nil
}

func (p *Pager) prompt(offset int) string {
	position := "next"
	if offset == 0 {
		position = "first"
	}
	return fmt.Sprintf("\nWould you like to display the %s %v rows of raw data?  Enter yes or no.\n", position, p.pageSize)
}

// printRows writes the rows as a table with every column, prefixed by the row number in the source file
func (p *Pager) printRows(table *dataset.Table, rows []*trip.TripData) error {
	tabWriter := tabwriter.NewWriter(p.writer, 0, 0, 2, ' ', 0)

	_, err := fmt.Fprintln(tabWriter, "\t"+strings.Join(table.Columns(), "\t"))
	if err != nil {
		return err
	}

	for _, row := range rows {
		_, err = fmt.Fprintf(tabWriter, "%v\t%s\n", row.RowNumber, strings.Join(table.Record(row), "\t"))
		if err != nil {
			return err
		}
	}

	return tabWriter.Flush()
}
