package stats

import "errors"

var ErrEmptyTable = errors.New("no trips match the selected filters")
