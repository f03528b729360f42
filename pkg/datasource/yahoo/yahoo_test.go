package yahoo

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/stocklens/stocklens/pkg/datasource"
	"github.com/stocklens/stocklens/pkg/types"
)

func TestQueryBars(t *testing.T) {
	var gotPath, gotQuery, gotAgent string

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotPath = r.URL.Path
		gotQuery = r.URL.RawQuery
		gotAgent = r.Header.Get("User-Agent")

		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{
		  "chart": {
		    "result": [
		      {
		        "timestamp": [1704207600, 1704294000],
		        "indicators": {
		          "quote": [
		            {
		              "open":   [187.15, 184.22],
		              "high":   [188.44, 185.88],
		              "low":    [183.88, 183.43],
		              "close":  [185.64, 184.25],
		              "volume": [82488700, 58414500]
		            }
		          ]
		        }
		      }
		    ],
		    "error": null
		  }
		}`))
	}))
	defer server.Close()

	src, err := New(datasource.Options{Timeout: 5 * time.Second})
	require.NoError(t, err)
	src.BaseURL = server.URL

	bars, err := src.QueryBars(context.Background(), "AAPL", types.Period6mo, types.Interval1d)
	require.NoError(t, err)
	assert.Equal(t, 2, bars.Len())
	assert.Equal(t, "/v8/finance/chart/AAPL", gotPath)
	assert.Equal(t, "interval=1d&range=6mo", gotQuery)
	assert.Equal(t, UserAgent, gotAgent)
}

func TestQueryBarsUnknownSymbol(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusNotFound)
		_, _ = w.Write([]byte(`{"chart":{"result":null,"error":{"code":"Not Found","description":"No data found, symbol may be delisted"}}}`))
	}))
	defer server.Close()

	src, err := New(datasource.Options{})
	require.NoError(t, err)
	src.BaseURL = server.URL

	_, err = src.QueryBars(context.Background(), "NOSUCHTICKER", types.Period1y, types.Interval1d)
	assert.True(t, errors.Is(err, datasource.ErrNoData))
}

func TestQueryBarsServerError(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusTooManyRequests)
		_, _ = w.Write([]byte("Too Many Requests"))
	}))
	defer server.Close()

	src, err := New(datasource.Options{})
	require.NoError(t, err)
	src.BaseURL = server.URL

	_, err = src.QueryBars(context.Background(), "AAPL", types.Period1y, types.Interval1d)
	assert.Error(t, err)
	assert.False(t, errors.Is(err, datasource.ErrNoData))
	assert.Contains(t, err.Error(), "status 429")
}
