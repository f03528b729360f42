package datasource

import (
	"context"

	"github.com/pkg/errors"

	"github.com/stocklens/stocklens/pkg/types"
)

// ErrNoData means the provider answered but had no bars for the
// symbol. A session stops here, nothing downstream runs without bars.
var ErrNoData = errors.New("no data found")

// NoDataMessage is the user facing text shown for ErrNoData.
const NoDataMessage = "No data found. Please check the ticker symbol."

// Source queries OHLCV bars from a market data provider. One call per
// session, implementations do not retry and do not cache.
type Source interface {
	// QueryBars returns the bars of symbol over period sampled at
	// interval, oldest first. An empty result is ErrNoData.
	QueryBars(ctx context.Context, symbol string, period types.Period, interval types.Interval) (types.BarSlice, error)

	// Name identifies the provider in logs and reports.
	Name() string
}
