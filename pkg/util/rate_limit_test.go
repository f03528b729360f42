package util

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"golang.org/x/time/rate"
)

func TestNewValidRateLimiter(t *testing.T) {
	cases := []struct {
		name     string
		r        rate.Limit
		b        int
		hasError bool
	}{
		{"valid limiter", 0.1, 1, false},
		{"zero rate", 0, 1, true},
		{"zero burst", 0.1, 0, true},
		{"both zero", 0, 0, true},
	}

	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			limiter, err := NewValidLimiter(c.r, c.b)
			assert.Equal(t, c.hasError, err != nil)
			if !c.hasError {
				assert.NotNil(t, limiter)
			}
		})
	}
}

func TestParseRateLimitSyntax(t *testing.T) {
	cases := []struct {
		name      string
		desc      string
		wantBurst int
		wantLimit rate.Limit
		hasError  bool
	}{
		{name: "burst and rate", desc: "2+1/5s", wantBurst: 2, wantLimit: rate.Every(5 * time.Second)},
		{name: "rate over duration", desc: "3/1m", wantBurst: 1, wantLimit: rate.Every(20 * time.Second)},
		{name: "bare duration", desc: "5s", wantBurst: 1, wantLimit: rate.Every(5 * time.Second)},
		{name: "garbage", desc: "one per day", hasError: true},
	}

	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			limiter, err := ParseRateLimitSyntax(c.desc)
			if c.hasError {
				assert.Error(t, err)
				return
			}

			assert.NoError(t, err)
			assert.Equal(t, c.wantBurst, limiter.Burst())
			assert.InDelta(t, float64(c.wantLimit), float64(limiter.Limit()), 0.000001)
		})
	}
}
