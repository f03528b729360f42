package cmd

import (
	"context"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/pkg/errors"
	log "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
	"golang.org/x/sync/errgroup"

	"github.com/stocklens/stocklens/pkg/analyzer"
	"github.com/stocklens/stocklens/pkg/chart"
	"github.com/stocklens/stocklens/pkg/datasource"
	"github.com/stocklens/stocklens/pkg/style"
	"github.com/stocklens/stocklens/pkg/types"
	"github.com/stocklens/stocklens/pkg/util"
)

// go run ./cmd/stocklens analyze AAPL MSFT --period=6mo
var analyzeCmd = &cobra.Command{
	Use:          "analyze [symbol ...]",
	Short:        "analyze the recent price history of one or more symbols",
	SilenceUsage: true,
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx := context.Background()

		userConfig, _, session, err := newSession()
		if err != nil {
			return err
		}

		symbols, err := cmd.Flags().GetStringSlice("symbol")
		if err != nil {
			return fmt.Errorf("can not get the symbol from flags: %w", err)
		}

		symbols = append(symbols, args...)
		if len(symbols) == 0 {
			symbols = []string{userConfig.Analyzer.Symbol}
		}

		period, err := cmd.Flags().GetString("period")
		if err != nil {
			return err
		}

		if period == "" {
			period = string(userConfig.Analyzer.Period)
		}

		interval, err := cmd.Flags().GetString("interval")
		if err != nil {
			return err
		}

		if interval == "" {
			interval = string(userConfig.Analyzer.Interval)
		}

		output, err := cmd.Flags().GetString("output")
		if err != nil {
			return err
		}

		chartDir, err := cmd.Flags().GetString("chart-dir")
		if err != nil {
			return err
		}

		reports := make([]*analyzer.Report, len(symbols))

		eg, egCtx := errgroup.WithContext(ctx)
		for i, symbol := range symbols {
			i, symbol := i, symbol
			eg.Go(func() error {
				report, err := session.Analyze(egCtx, analyzer.Request{
					Symbol:   symbol,
					Period:   types.Period(period),
					Interval: types.Interval(interval),
				})
				if err != nil {
					return errors.Wrap(err, symbol)
				}

				reports[i] = report
				return nil
			})
		}

		if err := eg.Wait(); err != nil {
			if errors.Is(err, datasource.ErrNoData) {
				return errors.New(datasource.NoDataMessage)
			}

			return err
		}

		for _, report := range reports {
			fmt.Println()
			report.Print()

			style.CaptionColor.Println(chart.KindPrice.Caption())
			style.CaptionColor.Println(chart.KindRSI.Caption())
			if report.MACD != nil {
				style.CaptionColor.Println(chart.KindMACD.Caption())
			}
			if report.OBV != nil {
				style.CaptionColor.Println(chart.KindOBV.Caption())
			}
		}

		if len(reports) > 1 {
			fmt.Println()
			printSummary(os.Stdout, reports)
		}

		fmt.Println()
		style.CaptionColor.Println(analyzer.Disclaimer)

		if output != "" {
			if err := util.WriteJsonFile(output, reports); err != nil {
				return errors.Wrapf(err, "can not write reports to %s", output)
			}

			log.Infof("reports saved to %s", output)
		}

		if chartDir != "" {
			if err := saveCharts(chartDir, reports); err != nil {
				return err
			}
		}

		return nil
	},
}

func init() {
	analyzeCmd.Flags().StringSlice("symbol", nil, "ticker symbol to analyze, can be given multiple times")
	analyzeCmd.Flags().String("period", "", "history window, one of 1mo, 3mo, 6mo, 1y, 2y")
	analyzeCmd.Flags().String("interval", "", "bar interval, one of 1d, 1wk, 1mo")
	analyzeCmd.Flags().String("output", "", "write the report JSON to this file")
	analyzeCmd.Flags().String("chart-dir", "", "render the indicator panels as PNG files into this directory")
	RootCmd.AddCommand(analyzeCmd)
}

func printSummary(w io.Writer, reports []*analyzer.Report) {
	t := table.NewWriter()
	t.SetOutputMirror(w)
	t.SetStyle(*style.NewDefaultTableStyle())
	t.AppendHeader(table.Row{"symbol", "close", "change", "action", "sentiment"})

	for _, r := range reports {
		t.AppendRow(table.Row{
			r.Symbol,
			types.USD.FormatMoneyFloat64(r.LastClose()),
			fmt.Sprintf("%+.2f%%", r.Bars.ChangeRate()*100.0),
			style.ActionColor(r.Advice.Action).Sprint(string(r.Advice.Action)),
			r.Sentiment.Label.Title(),
		})
	}

	t.Render()
}

func saveCharts(dir string, reports []*analyzer.Report) error {
	if err := os.MkdirAll(dir, 0755); err != nil {
		return err
	}

	for _, report := range reports {
		for _, kind := range chart.Kinds() {
			canvas := chart.Draw(kind, report)
			if canvas == nil {
				continue
			}

			data, err := canvas.RenderPNG()
			if err != nil {
				return errors.Wrapf(err, "can not render the %s chart for %s", kind, report.Symbol)
			}

			p := filepath.Join(dir, fmt.Sprintf("%s_%s.png", report.Symbol, kind))
			if err := os.WriteFile(p, data, 0644); err != nil {
				return errors.Wrapf(err, "can not save the chart to %s", p)
			}

			log.Infof("chart saved to %s", p)
		}
	}

	return nil
}
