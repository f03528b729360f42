package types

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"gopkg.in/yaml.v3"
)

func TestParseDuration(t *testing.T) {
	type t2 struct {
		input string
		want  time.Duration
		err   bool
	}

	tests := []t2{
		{input: "30s", want: 30 * time.Second},
		{input: "1h30m", want: 90 * time.Minute},
		{input: "1d", want: 24 * time.Hour},
		{input: "2w", want: 14 * 24 * time.Hour},
		{input: "three days", err: true},
		{input: "", err: true},
	}

	for _, tt := range tests {
		d, err := ParseDuration(tt.input)
		if tt.err {
			assert.Error(t, err, "input %q", tt.input)
			continue
		}

		assert.NoError(t, err, "input %q", tt.input)
		assert.Equal(t, tt.want, d.Duration())
	}
}

func TestDurationUnmarshalJSON(t *testing.T) {
	var d Duration

	assert.NoError(t, json.Unmarshal([]byte(`"45s"`), &d))
	assert.Equal(t, 45*time.Second, d.Duration())

	assert.NoError(t, json.Unmarshal([]byte(`3`), &d))
	assert.Equal(t, 3*time.Second, d.Duration())

	assert.Error(t, json.Unmarshal([]byte(`true`), &d))
}

func TestDurationUnmarshalYAML(t *testing.T) {
	var d Duration

	assert.NoError(t, yaml.Unmarshal([]byte(`1d`), &d))
	assert.Equal(t, 24*time.Hour, d.Duration())

	assert.NoError(t, yaml.Unmarshal([]byte(`15`), &d))
	assert.Equal(t, 15*time.Second, d.Duration())

	assert.Error(t, yaml.Unmarshal([]byte(`nonsense`), &d))
}
