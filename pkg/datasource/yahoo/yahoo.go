package yahoo

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"time"

	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"
	"golang.org/x/time/rate"

	"github.com/stocklens/stocklens/pkg/datasource"
	"github.com/stocklens/stocklens/pkg/types"
	"github.com/stocklens/stocklens/pkg/util"
)

var log = logrus.WithFields(logrus.Fields{
	"source": "yahoo",
})

// Name is the registry key of this source.
const Name = "yahoo"

const DefaultBaseURL = "https://query1.finance.yahoo.com"

// Yahoo rejects requests without a browser-looking agent.
const UserAgent = "Mozilla/5.0"

func init() {
	datasource.Register(Name, func(opts datasource.Options) (datasource.Source, error) {
		return New(opts)
	})
}

// Source reads bars from the public Yahoo Finance v8 chart API. The
// interval and period tokens of types.Interval and types.Period are
// the chart API's own, no mapping is needed.
type Source struct {
	client  *http.Client
	limiter *rate.Limiter

	// BaseURL is swappable for tests.
	BaseURL string
}

func New(opts datasource.Options) (*Source, error) {
	transport := &http.Transport{}
	if opts.Proxy != "" {
		u, err := url.Parse(opts.Proxy)
		if err != nil {
			return nil, errors.Wrapf(err, "invalid proxy url %q", opts.Proxy)
		}

		transport.Proxy = http.ProxyURL(u)
	}

	timeout := opts.Timeout
	if timeout == 0 {
		timeout = 30 * time.Second
	}

	limiter := rate.NewLimiter(rate.Every(500*time.Millisecond), 2)
	if opts.RateLimit != "" {
		var err error
		limiter, err = util.ParseRateLimitSyntax(opts.RateLimit)
		if err != nil {
			return nil, err
		}
	}

	return &Source{
		client: &http.Client{
			Timeout:   timeout,
			Transport: transport,
		},
		limiter: limiter,
		BaseURL: DefaultBaseURL,
	}, nil
}

func (s *Source) Name() string {
	return Name
}

func (s *Source) QueryBars(ctx context.Context, symbol string, period types.Period, interval types.Interval) (types.BarSlice, error) {
	if err := s.limiter.Wait(ctx); err != nil {
		return nil, err
	}

	reqURL := fmt.Sprintf("%s/v8/finance/chart/%s?interval=%s&range=%s",
		s.BaseURL, url.PathEscape(symbol), interval, period)

	log.Debugf("querying chart %s %s %s", symbol, interval, period)

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, reqURL, nil)
	if err != nil {
		return nil, err
	}

	req.Header.Set("User-Agent", UserAgent)

	resp, err := s.client.Do(req)
	if err != nil {
		return nil, errors.Wrap(err, "yahoo chart request failed")
	}

	defer func() {
		util.LogErr(resp.Body.Close(), "can not close response body")
	}()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, errors.Wrap(err, "can not read yahoo response body")
	}

	bars, err := ParseChart(symbol, interval, body)
	if err != nil {
		// unknown symbols come back as 404 with an error payload,
		// ParseChart already turned that into ErrNoData
		if resp.StatusCode != http.StatusOK && !errors.Is(err, datasource.ErrNoData) {
			return nil, errors.Wrapf(err, "yahoo: status %d", resp.StatusCode)
		}

		return nil, err
	}

	return bars, nil
}
