package cmdutil

import "github.com/spf13/pflag"

// PersistentFlags defines the flags for the data source selection
func PersistentFlags(flags *pflag.FlagSet) {
	flags.String("source", "", "market data source, yahoo, binance or csv")
	flags.String("source-path", "", "bar file or directory for the csv source")
	flags.String("proxy", "", "proxy URL for data source requests")
	flags.String("rate-limit", "", "data source rate limit, e.g. 2+1/5s")
}
