package binance

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/stocklens/stocklens/pkg/datasource"
	"github.com/stocklens/stocklens/pkg/types"
)

func TestConvertInterval(t *testing.T) {
	tests := []struct {
		interval types.Interval
		want     string
	}{
		{interval: types.Interval1d, want: "1d"},
		{interval: types.Interval1wk, want: "1w"},
		{interval: types.Interval1mo, want: "1M"},
	}

	for _, tt := range tests {
		t.Run(tt.interval.String(), func(t *testing.T) {
			token, err := ConvertInterval(tt.interval)
			assert.NoError(t, err)
			assert.Equal(t, tt.want, token)
		})
	}

	_, err := ConvertInterval(types.Interval("4h"))
	assert.Error(t, err)
}

func TestNewRegistered(t *testing.T) {
	src, err := datasource.New(Name, datasource.Options{})
	assert.NoError(t, err)
	assert.Equal(t, Name, src.Name())
}

func TestNewRejectsBadRateLimit(t *testing.T) {
	_, err := New(datasource.Options{RateLimit: "not a rate"})
	assert.Error(t, err)
}
