package yahoo

import (
	"testing"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"

	"github.com/stocklens/stocklens/pkg/datasource"
	"github.com/stocklens/stocklens/pkg/types"
)

func TestParseChart(t *testing.T) {
	payload := `{
	  "chart": {
	    "result": [
	      {
	        "meta": {"currency": "USD", "symbol": "AAPL"},
	        "timestamp": [1704207600, 1704294000, 1704380400],
	        "indicators": {
	          "quote": [
	            {
	              "open":   [187.15, null, 184.22],
	              "high":   [188.44, null, 185.88],
	              "low":    [183.88, null, 183.43],
	              "close":  [185.64, null, 184.25],
	              "volume": [82488700, null, 58414500]
	            }
	          ]
	        }
	      }
	    ],
	    "error": null
	  }
	}`

	bars, err := ParseChart("AAPL", types.Interval1d, []byte(payload))
	assert.NoError(t, err)
	assert.Equal(t, 2, bars.Len())

	first := bars.First()
	assert.Equal(t, "AAPL", first.Symbol)
	assert.Equal(t, types.Interval1d, first.Interval)
	assert.Equal(t, 185.64, first.Close)
	assert.Equal(t, 82488700.0, first.Volume)
	assert.True(t, bars.HasVolume())

	// the null bar was a closed session and is gone
	assert.Equal(t, 184.25, bars.Last().Close)
}

func TestParseChartMissingVolume(t *testing.T) {
	payload := `{
	  "chart": {
	    "result": [
	      {
	        "timestamp": [1704207600, 1704294000],
	        "indicators": {
	          "quote": [
	            {
	              "open":  [10, 11],
	              "high":  [12, 13],
	              "low":   [9, 10],
	              "close": [11, 12]
	            }
	          ]
	        }
	      }
	    ],
	    "error": null
	  }
	}`

	bars, err := ParseChart("TEST", types.Interval1d, []byte(payload))
	assert.NoError(t, err)
	assert.Equal(t, 2, bars.Len())
	assert.False(t, bars.HasVolume())
	assert.False(t, bars.First().HasVolume())
	assert.Equal(t, 11.0, bars.First().Close)
}

func TestParseChartUnsortedTimestamps(t *testing.T) {
	payload := `{
	  "chart": {
	    "result": [
	      {
	        "timestamp": [1704294000, 1704207600],
	        "indicators": {
	          "quote": [
	            {
	              "open":   [11, 10],
	              "high":   [13, 12],
	              "low":    [10, 9],
	              "close":  [12, 11],
	              "volume": [200, 100]
	            }
	          ]
	        }
	      }
	    ],
	    "error": null
	  }
	}`

	bars, err := ParseChart("TEST", types.Interval1d, []byte(payload))
	assert.NoError(t, err)
	assert.Equal(t, 11.0, bars.First().Close)
	assert.Equal(t, 12.0, bars.Last().Close)
	assert.True(t, bars.First().StartTime.Before(bars.Last().StartTime))
}

func TestParseChartNotFound(t *testing.T) {
	payload := `{"chart":{"result":null,"error":{"code":"Not Found","description":"No data found, symbol may be delisted"}}}`

	_, err := ParseChart("NOPE", types.Interval1d, []byte(payload))
	assert.True(t, errors.Is(err, datasource.ErrNoData))
}

func TestParseChartOtherError(t *testing.T) {
	payload := `{"chart":{"result":null,"error":{"code":"Bad Request","description":"Invalid input - interval=7d"}}}`

	_, err := ParseChart("AAPL", types.Interval1d, []byte(payload))
	assert.Error(t, err)
	assert.False(t, errors.Is(err, datasource.ErrNoData))
	assert.Contains(t, err.Error(), "Bad Request")
}

func TestParseChartEmptyResult(t *testing.T) {
	for _, payload := range []string{
		`{"chart":{"result":[],"error":null}}`,
		`{"chart":{"result":[{"timestamp":[],"indicators":{"quote":[]}}],"error":null}}`,
		`{"chart":{"result":[{"timestamp":[1704207600],"indicators":{"quote":[{"close":[null]}]}}],"error":null}}`,
	} {
		_, err := ParseChart("AAPL", types.Interval1d, []byte(payload))
		assert.True(t, errors.Is(err, datasource.ErrNoData), "payload: %s", payload)
	}
}

func TestParseChartGarbage(t *testing.T) {
	_, err := ParseChart("AAPL", types.Interval1d, []byte("<html>rate limited</html>"))
	assert.Error(t, err)
	assert.False(t, errors.Is(err, datasource.ErrNoData))
}
