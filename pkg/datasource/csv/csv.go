package csv

import (
	"context"
	"os"
	"path/filepath"
	"strings"

	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"

	"github.com/stocklens/stocklens/pkg/datasource"
	"github.com/stocklens/stocklens/pkg/types"
)

var log = logrus.WithFields(logrus.Fields{
	"source": "csv",
})

// Name is the registry key of this source.
const Name = "csv"

func init() {
	datasource.Register(Name, func(opts datasource.Options) (datasource.Source, error) {
		return New(opts)
	})
}

// Source reads bars from local CSV files, for offline runs and fixture
// driven tests. Path is either one bar file that serves every symbol,
// or a directory of SYMBOL.csv files. The files are taken at the
// requested interval, the reader does not resample.
type Source struct {
	path string
}

func New(opts datasource.Options) (*Source, error) {
	if opts.Path == "" {
		return nil, errors.New("csv source needs a path, set source.path or --source-path")
	}

	return &Source{path: opts.Path}, nil
}

func (s *Source) Name() string {
	return Name
}

func (s *Source) QueryBars(ctx context.Context, symbol string, period types.Period, interval types.Interval) (types.BarSlice, error) {
	p, err := s.resolve(symbol)
	if err != nil {
		return nil, err
	}

	f, err := os.Open(p)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, datasource.ErrNoData
		}

		return nil, errors.Wrapf(err, "can not open bar file %s", p)
	}

	defer f.Close()

	log.Debugf("reading %s bars from %s", symbol, p)

	bars, err := NewBarReader(f).ReadAll(symbol, interval)
	if err != nil {
		return nil, errors.Wrapf(err, "can not read bar file %s", p)
	}

	bars = clipToPeriod(bars, period)
	if len(bars) == 0 {
		return nil, datasource.ErrNoData
	}

	return bars, nil
}

// resolve maps a symbol to its bar file. A directory path holds one
// SYMBOL.csv per symbol, a file path serves every symbol.
func (s *Source) resolve(symbol string) (string, error) {
	info, err := os.Stat(s.path)
	if err != nil {
		if os.IsNotExist(err) {
			return "", datasource.ErrNoData
		}

		return "", err
	}

	if info.IsDir() {
		return filepath.Join(s.path, strings.ToUpper(symbol)+".csv"), nil
	}

	return s.path, nil
}

// clipToPeriod drops bars older than the period window, measured back
// from the newest bar so that fixture files keep working regardless of
// when they were recorded.
func clipToPeriod(bars types.BarSlice, period types.Period) types.BarSlice {
	if len(bars) == 0 {
		return bars
	}

	cutoff := bars.Last().StartTime.Add(-period.Duration())
	for i, b := range bars {
		if b.StartTime.After(cutoff) {
			return bars[i:]
		}
	}

	return bars
}
