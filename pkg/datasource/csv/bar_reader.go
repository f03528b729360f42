package csv

import (
	"encoding/csv"
	"io"
	"math"
	"sort"
	"strconv"
	"strings"
	"time"

	"github.com/pkg/errors"

	"github.com/stocklens/stocklens/pkg/types"
)

// DateLayout is the calendar form the date column may use instead of a
// unix timestamp.
const DateLayout = "2006-01-02"

var (
	// ErrNotEnoughColumns is returned when a record has fewer than the
	// five price columns.
	ErrNotEnoughColumns = errors.New("not enough columns")

	// ErrInvalidTimeFormat is returned when the date column is neither
	// a calendar date nor a unix timestamp.
	ErrInvalidTimeFormat = errors.New("cannot parse time column")

	// ErrInvalidPriceFormat is returned when an OHLC column does not
	// hold a decimal number.
	ErrInvalidPriceFormat = errors.New("prices must be in valid decimal format")
)

// BarDecoder turns one CSV record into a bar, an extension point for
// other file layouts.
type BarDecoder func(record []string) (types.Bar, error)

// BarReader reads bars from CSV data in the default layout:
//
//	date,open,high,low,close,volume
//
// The date is a 2006-01-02 day or a unix timestamp in seconds. The
// volume column may be empty or missing, the bar then carries a NaN
// volume. A header line is skipped when the first column is not a
// date.
type BarReader struct {
	csv     *csv.Reader
	decoder BarDecoder
}

func NewBarReader(r io.Reader) *BarReader {
	reader := csv.NewReader(r)
	reader.FieldsPerRecord = -1
	reader.TrimLeadingSpace = true

	return &BarReader{
		csv:     reader,
		decoder: DecodeBar,
	}
}

func NewBarReaderWithDecoder(r io.Reader, decoder BarDecoder) *BarReader {
	reader := NewBarReader(r)
	reader.decoder = decoder
	return reader
}

// Read reads the next bar from the underlying CSV data.
func (r *BarReader) Read() (types.Bar, error) {
	rec, err := r.csv.Read()
	if err != nil {
		return types.Bar{}, err
	}

	return r.decoder(rec)
}

// ReadAll reads every bar, stamps the symbol and interval on them and
// returns them sorted oldest first.
func (r *BarReader) ReadAll(symbol string, interval types.Interval) (types.BarSlice, error) {
	var bars types.BarSlice
	for {
		bar, err := r.Read()
		if err == io.EOF {
			break
		}

		if errors.Is(err, ErrInvalidTimeFormat) && len(bars) == 0 {
			// a header line
			continue
		}

		if err != nil {
			return nil, err
		}

		bar.Symbol = strings.ToUpper(symbol)
		bar.Interval = interval
		bars = append(bars, bar)
	}

	sort.Slice(bars, func(i, j int) bool {
		return bars[i].StartTime.Before(bars[j].StartTime)
	})

	return bars, nil
}

// DecodeBar decodes a record in the default date,open,high,low,close,volume layout.
func DecodeBar(record []string) (types.Bar, error) {
	var bar types.Bar

	if len(record) < 5 {
		return bar, ErrNotEnoughColumns
	}

	startTime, err := parseTime(record[0])
	if err != nil {
		return bar, err
	}

	bar.StartTime = startTime

	prices := make([]float64, 4)
	for i := range prices {
		v, err := strconv.ParseFloat(strings.TrimSpace(record[i+1]), 64)
		if err != nil {
			return bar, ErrInvalidPriceFormat
		}

		prices[i] = v
	}

	bar.Open, bar.High, bar.Low, bar.Close = prices[0], prices[1], prices[2], prices[3]

	bar.Volume = math.NaN()
	if len(record) > 5 {
		if v, err := strconv.ParseFloat(strings.TrimSpace(record[5]), 64); err == nil {
			bar.Volume = v
		}
	}

	return bar, nil
}

func parseTime(s string) (time.Time, error) {
	s = strings.TrimSpace(s)

	if t, err := time.Parse(DateLayout, s); err == nil {
		return t, nil
	}

	if sec, err := strconv.ParseInt(s, 10, 64); err == nil {
		return time.Unix(sec, 0), nil
	}

	return time.Time{}, ErrInvalidTimeFormat
}
