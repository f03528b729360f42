package types

import (
	"encoding/json"
	"regexp"
	"strconv"
	"time"

	"github.com/pkg/errors"
	"gopkg.in/yaml.v3"
)

var simpleDurationRegExp = regexp.MustCompile(`^(\d+)([dw])$`)

// Duration wraps time.Duration so config files can spell timeouts as
// "30s", "1h", "2d" or plain seconds. Day and week suffixes come on
// top of the standard units.
type Duration time.Duration

func (d Duration) Duration() time.Duration {
	return time.Duration(d)
}

func (d Duration) String() string {
	return time.Duration(d).String()
}

func (d Duration) MarshalJSON() ([]byte, error) {
	return json.Marshal(d.String())
}

func ParseDuration(s string) (Duration, error) {
	if matches := simpleDurationRegExp.FindStringSubmatch(s); len(matches) == 3 {
		num, err := strconv.Atoi(matches[1])
		if err != nil {
			return 0, err
		}

		switch matches[2] {
		case "d":
			return Duration(time.Duration(num) * 24 * time.Hour), nil
		case "w":
			return Duration(time.Duration(num) * 7 * 24 * time.Hour), nil
		}
	}

	dd, err := time.ParseDuration(s)
	if err != nil {
		return 0, err
	}

	return Duration(dd), nil
}

func (d *Duration) UnmarshalJSON(data []byte) error {
	var o interface{}
	if err := json.Unmarshal(data, &o); err != nil {
		return err
	}

	switch t := o.(type) {
	case string:
		dd, err := ParseDuration(t)
		if err != nil {
			return err
		}

		*d = dd

	case float64:
		*d = Duration(int64(t * float64(time.Second)))

	default:
		return errors.Errorf("unsupported duration type %T, value: %v", t, t)
	}

	return nil
}

func (d *Duration) UnmarshalYAML(node *yaml.Node) error {
	var s string
	if err := node.Decode(&s); err == nil {
		dd, err := ParseDuration(s)
		if err != nil {
			return err
		}

		*d = dd
		return nil
	}

	var f float64
	if err := node.Decode(&f); err == nil {
		*d = Duration(int64(f * float64(time.Second)))
		return nil
	}

	return errors.Errorf("unsupported duration node %q", node.Value)
}
