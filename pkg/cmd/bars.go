package cmd

import (
	"context"
	"fmt"
	"os"
	"strings"

	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/pkg/errors"
	log "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/stocklens/stocklens/pkg/datasource"
	"github.com/stocklens/stocklens/pkg/style"
	"github.com/stocklens/stocklens/pkg/types"
)

// go run ./cmd/stocklens bars AAPL --period=1mo --interval=1d
var barsCmd = &cobra.Command{
	Use:          "bars [symbol]",
	Short:        "fetch and print the raw bar window of a symbol",
	SilenceUsage: true,
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx := context.Background()

		userConfig, source, _, err := newSession()
		if err != nil {
			return err
		}

		symbol := userConfig.Analyzer.Symbol
		if len(args) > 0 {
			symbol = args[0]
		}

		symbol = strings.ToUpper(strings.TrimSpace(symbol))
		if symbol == "" {
			return errors.New("symbol is required")
		}

		periodStr, err := cmd.Flags().GetString("period")
		if err != nil {
			return err
		}

		period := userConfig.Analyzer.Period
		if periodStr != "" {
			if period, err = types.ParsePeriod(periodStr); err != nil {
				return err
			}
		}

		intervalStr, err := cmd.Flags().GetString("interval")
		if err != nil {
			return err
		}

		interval := userConfig.Analyzer.Interval
		if intervalStr != "" {
			if interval, err = types.ParseInterval(intervalStr); err != nil {
				return err
			}
		}

		log.Infof("querying %s bars from %s, period %s interval %s", symbol, source.Name(), period, interval)

		bars, err := source.QueryBars(ctx, symbol, period, interval)
		if err != nil {
			if errors.Is(err, datasource.ErrNoData) {
				return errors.New(datasource.NoDataMessage)
			}

			return err
		}

		if bars.Len() == 0 {
			return errors.New(datasource.NoDataMessage)
		}

		t := table.NewWriter()
		t.SetOutputMirror(os.Stdout)
		t.SetStyle(*style.NewDefaultTableStyle())
		t.AppendHeader(table.Row{"date", "open", "high", "low", "close", "volume"})

		for _, bar := range bars {
			volumeCell := "-"
			if bar.HasVolume() {
				volumeCell = types.Shares.FormatMoneyFloat64(bar.Volume)
			}

			t.AppendRow(table.Row{
				bar.StartTime.Format("2006-01-02"),
				types.USD.FormatMoneyFloat64(bar.Open),
				types.USD.FormatMoneyFloat64(bar.High),
				types.USD.FormatMoneyFloat64(bar.Low),
				types.USD.FormatMoneyFloat64(bar.Close),
				volumeCell,
			})
		}

		t.Render()

		log.Infof("BARS: %d", bars.Len())
		log.Infof("RANGE: %s to %s",
			types.USD.FormatMoneyFloat64(bars.Low()),
			types.USD.FormatMoneyFloat64(bars.High()))
		log.Infof("CHANGE: %s (%s)",
			types.USD.FormatMoneyFloat64(bars.Change()),
			fmt.Sprintf("%+.2f%%", bars.ChangeRate()*100.0))

		return nil
	},
}

func init() {
	barsCmd.Flags().String("period", "", "history window, one of 1mo, 3mo, 6mo, 1y, 2y")
	barsCmd.Flags().String("interval", "", "bar interval, one of 1d, 1wk, 1mo")
	RootCmd.AddCommand(barsCmd)
}
