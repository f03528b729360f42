package binance

import (
	"context"
	"net/url"
	"strings"
	"time"

	"github.com/adshao/go-binance/v2"
	"github.com/adshao/go-binance/v2/common"
	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"
	"golang.org/x/time/rate"

	"github.com/stocklens/stocklens/pkg/datasource"
	"github.com/stocklens/stocklens/pkg/types"
	"github.com/stocklens/stocklens/pkg/util"
)

var log = logrus.WithFields(logrus.Fields{
	"source": "binance",
})

// Name is the registry key of this source.
const Name = "binance"

// invalid symbol error code of the binance API
const apiErrInvalidSymbol = -1121

func init() {
	datasource.Register(Name, func(opts datasource.Options) (datasource.Source, error) {
		return New(opts)
	})
}

var intervalMap = map[types.Interval]string{
	types.Interval1d:  "1d",
	types.Interval1wk: "1w",
	types.Interval1mo: "1M",
}

// ConvertInterval maps a bar interval to the binance kline token.
func ConvertInterval(interval types.Interval) (string, error) {
	token, ok := intervalMap[interval]
	if !ok {
		return "", errors.Errorf("unsupported interval: %s", interval)
	}

	return token, nil
}

// Source reads klines from the public binance market data API, no
// credentials needed. Symbols are spot pairs like BTCUSDT.
type Source struct {
	client  *binance.Client
	limiter *rate.Limiter
}

func New(opts datasource.Options) (*Source, error) {
	limiter := rate.NewLimiter(rate.Every(100*time.Millisecond), 1)
	if opts.RateLimit != "" {
		var err error
		limiter, err = util.ParseRateLimitSyntax(opts.RateLimit)
		if err != nil {
			return nil, err
		}
	}

	client := binance.NewClient("", "")
	if opts.Proxy != "" {
		if _, err := url.Parse(opts.Proxy); err != nil {
			return nil, errors.Wrapf(err, "invalid proxy url %q", opts.Proxy)
		}

		client = binance.NewProxiedClient("", "", opts.Proxy)
	}

	if opts.Timeout > 0 {
		client.HTTPClient.Timeout = opts.Timeout
	}

	return &Source{
		client:  client,
		limiter: limiter,
	}, nil
}

func (s *Source) Name() string {
	return Name
}

func (s *Source) QueryBars(ctx context.Context, symbol string, period types.Period, interval types.Interval) (types.BarSlice, error) {
	token, err := ConvertInterval(interval)
	if err != nil {
		return nil, err
	}

	if err := s.limiter.Wait(ctx); err != nil {
		return nil, err
	}

	startTime := time.Now().Add(-period.Duration())

	log.Debugf("querying klines %s %s %s", symbol, token, period)

	resp, err := s.client.NewKlinesService().
		Symbol(strings.ToUpper(symbol)).
		Interval(token).
		StartTime(startTime.UnixNano() / int64(time.Millisecond)).
		Limit(1000).
		Do(ctx)
	if err != nil {
		if apiErr, ok := err.(*common.APIError); ok && apiErr.Code == apiErrInvalidSymbol {
			return nil, datasource.ErrNoData
		}

		return nil, err
	}

	var bars types.BarSlice
	for _, k := range resp {
		bars = append(bars, types.Bar{
			Symbol:    symbol,
			StartTime: time.Unix(0, k.OpenTime*int64(time.Millisecond)),
			Interval:  interval,
			Open:      util.MustParseFloat(k.Open),
			High:      util.MustParseFloat(k.High),
			Low:       util.MustParseFloat(k.Low),
			Close:     util.MustParseFloat(k.Close),
			Volume:    util.MustParseFloat(k.Volume),
		})
	}

	if len(bars) == 0 {
		return nil, datasource.ErrNoData
	}

	return bars, nil
}
