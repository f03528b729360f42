package yahoo

import (
	"math"
	"sort"
	"time"

	"github.com/pkg/errors"
	"github.com/valyala/fastjson"

	"github.com/stocklens/stocklens/pkg/datasource"
	"github.com/stocklens/stocklens/pkg/types"
)

/*
trimmed chart payload:

	{
	  "chart": {
	    "result": [
	      {
	        "meta": {"currency": "USD", "symbol": "AAPL"},
	        "timestamp": [1704207600, 1704294000],
	        "indicators": {
	          "quote": [
	            {
	              "open": [187.15, null],
	              "high": [188.44, null],
	              "low": [183.88, null],
	              "close": [185.64, null],
	              "volume": [82488700, null]
	            }
	          ]
	        }
	      }
	    ],
	    "error": null
	  }
	}

a failed lookup:

	{"chart":{"result":null,"error":{"code":"Not Found",
	 "description":"No data found, symbol may be delisted"}}}
*/

// ParseChart parses a v8 chart payload into bars, oldest first. Bars
// with a null close are sessions the market was closed and are
// dropped. A null or absent volume column keeps the bar with a NaN
// volume so that downstream code can tell "no volume data" from "zero
// volume".
func ParseChart(symbol string, interval types.Interval, payload []byte) (types.BarSlice, error) {
	parser := fastjson.Parser{}
	val, err := parser.ParseBytes(payload)
	if err != nil {
		return nil, errors.Wrap(err, "can not parse yahoo chart payload")
	}

	if errVal := val.Get("chart", "error"); errVal != nil && errVal.Type() != fastjson.TypeNull {
		code := string(errVal.GetStringBytes("code"))
		description := string(errVal.GetStringBytes("description"))
		if code == "Not Found" {
			return nil, datasource.ErrNoData
		}

		return nil, errors.Errorf("yahoo chart error: %s: %s", code, description)
	}

	results := val.GetArray("chart", "result")
	if len(results) == 0 {
		return nil, datasource.ErrNoData
	}

	result := results[0]
	timestamps := result.GetArray("timestamp")
	quotes := result.GetArray("indicators", "quote")
	if len(timestamps) == 0 || len(quotes) == 0 {
		return nil, datasource.ErrNoData
	}

	quote := quotes[0]
	opens := quote.GetArray("open")
	highs := quote.GetArray("high")
	lows := quote.GetArray("low")
	closes := quote.GetArray("close")
	volumes := quote.GetArray("volume")

	bars := make(types.BarSlice, 0, len(timestamps))
	for i, ts := range timestamps {
		closePrice, err := floatAt(closes, i)
		if err != nil {
			continue
		}

		bar := types.Bar{
			Symbol:    symbol,
			StartTime: time.Unix(ts.GetInt64(), 0),
			Interval:  interval,
			Open:      floatOr(opens, i, closePrice),
			High:      floatOr(highs, i, closePrice),
			Low:       floatOr(lows, i, closePrice),
			Close:     closePrice,
			Volume:    math.NaN(),
		}

		if v, err := floatAt(volumes, i); err == nil {
			bar.Volume = v
		}

		bars = append(bars, bar)
	}

	if len(bars) == 0 {
		return nil, datasource.ErrNoData
	}

	sort.Slice(bars, func(i, j int) bool {
		return bars[i].StartTime.Before(bars[j].StartTime)
	})

	return bars, nil
}

func floatAt(arr []*fastjson.Value, i int) (float64, error) {
	if i >= len(arr) {
		return 0, errors.Errorf("index %d out of range", i)
	}

	return arr[i].Float64()
}

func floatOr(arr []*fastjson.Value, i int, fallback float64) float64 {
	v, err := floatAt(arr, i)
	if err != nil {
		return fallback
	}

	return v
}
