package datasource

import (
	"fmt"
	"sort"
	"strings"
	"time"
)

// DefaultSource is picked when no source name is configured.
const DefaultSource = "yahoo"

// Options configures a source constructor.
type Options struct {
	// Proxy routes provider traffic through an HTTP proxy when set.
	Proxy string

	// Timeout bounds a single provider call. Zero means the provider
	// default.
	Timeout time.Duration

	// RateLimit overrides the provider's default limiter, written in
	// the util.ParseRateLimitSyntax form, e.g. "2+1/1s".
	RateLimit string

	// Path points the csv source at a bar file, or at a directory of
	// SYMBOL.csv files. The network sources ignore it.
	Path string
}

// Constructor builds a configured source.
type Constructor func(Options) (Source, error)

var constructors = map[string]Constructor{}

// Register makes a source constructor available to New. Adapters call
// this from their package init, importing an adapter package is enough
// to enable it.
func Register(name string, c Constructor) {
	constructors[name] = c
}

// New builds the named source. The empty name picks DefaultSource.
func New(name string, opts Options) (Source, error) {
	if name == "" {
		name = DefaultSource
	}

	c, ok := constructors[strings.ToLower(name)]
	if !ok {
		return nil, fmt.Errorf("unsupported data source: %s, registered sources are: %s",
			name, strings.Join(Names(), ", "))
	}

	return c(opts)
}

// Names lists the registered sources in sorted order.
func Names() []string {
	names := make([]string, 0, len(constructors))
	for name := range constructors {
		names = append(names, name)
	}

	sort.Strings(names)
	return names
}
