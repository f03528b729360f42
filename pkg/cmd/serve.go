package cmd

import (
	"context"
	"syscall"

	log "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/stocklens/stocklens/pkg/cmd/cmdutil"
	"github.com/stocklens/stocklens/pkg/server"
)

// go run ./cmd/stocklens serve --bind=:8080
var serveCmd = &cobra.Command{
	Use:          "serve",
	Short:        "run the dashboard and the JSON API server",
	SilenceUsage: true,
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx, cancel := context.WithCancel(context.Background())
		defer cancel()

		userConfig, source, session, err := newSession()
		if err != nil {
			return err
		}

		bind, err := cmd.Flags().GetString("bind")
		if err != nil {
			return err
		}

		if bind != "" {
			userConfig.Server.Bind = bind
		}

		go func() {
			if sig := cmdutil.WaitForSignal(ctx, syscall.SIGINT, syscall.SIGTERM); sig != nil {
				cancel()
			}
		}()

		log.Infof("data source: %s, default symbol: %s", source.Name(), userConfig.Analyzer.Symbol)
		return server.Run(ctx, userConfig, session)
	},
}

func init() {
	serveCmd.Flags().String("bind", "", "server bind address, host:port")
	RootCmd.AddCommand(serveCmd)
}
