package cmd

import (
	"os"
	"path"
	"strings"

	"github.com/joho/godotenv"
	"github.com/rifflock/lfshook"
	log "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"github.com/x-cray/logrus-prefixed-formatter"
	"gopkg.in/natefinch/lumberjack.v2"

	"github.com/stocklens/stocklens/pkg/analyzer"
	"github.com/stocklens/stocklens/pkg/cmd/cmdutil"
	"github.com/stocklens/stocklens/pkg/config"
	"github.com/stocklens/stocklens/pkg/datasource"
	"github.com/stocklens/stocklens/pkg/indicator"
	"github.com/stocklens/stocklens/pkg/sentiment"

	_ "github.com/stocklens/stocklens/pkg/datasource/binance"
	_ "github.com/stocklens/stocklens/pkg/datasource/csv"
	_ "github.com/stocklens/stocklens/pkg/datasource/yahoo"
)

var RootCmd = &cobra.Command{
	Use:   "stocklens",
	Short: "stock market analyzer",
	Long:  "stocklens fetches OHLCV bars, computes SMA, RSI, MACD and OBV over them, and turns the result into a trade suggestion",

	// SilenceUsage is an option to silence usage when an error occurs.
	SilenceUsage: true,

	RunE: func(cmd *cobra.Command, args []string) error {
		return nil
	},
}

func init() {
	RootCmd.PersistentFlags().Bool("debug", false, "debug flag")
	RootCmd.PersistentFlags().String("config", "", "config file")

	cmdutil.PersistentFlags(RootCmd.PersistentFlags())
}

// newSession builds the analyzer pipeline from the config file and the
// flag overrides.
func newSession() (*config.Config, datasource.Source, *analyzer.Analyzer, error) {
	userConfig, err := config.Load(viper.GetString("config"))
	if err != nil {
		return nil, nil, nil, err
	}

	if source := viper.GetString("source"); source != "" {
		userConfig.Source.Name = source
	}

	if sourcePath := viper.GetString("source-path"); sourcePath != "" {
		userConfig.Source.Path = sourcePath
	}

	if proxy := viper.GetString("proxy"); proxy != "" {
		userConfig.Source.Proxy = proxy
	}

	if rateLimit := viper.GetString("rate-limit"); rateLimit != "" {
		userConfig.Source.RateLimit = rateLimit
	}

	source, err := datasource.New(userConfig.Source.Name, userConfig.Source.Options())
	if err != nil {
		return nil, nil, nil, err
	}

	session := analyzer.New(source, indicator.TALib{}, sentiment.NewVader(), userConfig.Analyzer.Windows)
	return userConfig, source, session, nil
}

func Execute() {
	viper.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))

	// Enable environment variable binding, the env vars are not overloaded yet.
	viper.AutomaticEnv()

	// Once the flags are defined, we can bind config keys with flags.
	if err := viper.BindPFlags(RootCmd.PersistentFlags()); err != nil {
		log.WithError(err).Errorf("failed to bind persistent flags. please check the flag settings.")
	}

	if err := viper.BindPFlags(RootCmd.Flags()); err != nil {
		log.WithError(err).Errorf("failed to bind local flags. please check the flag settings.")
	}

	dotenvFile := ".env.local"
	if _, err := os.Stat(dotenvFile); err == nil {
		if err := godotenv.Load(dotenvFile); err != nil {
			log.WithError(err).Error("error loading dotenv file")
		}
	}

	log.SetFormatter(&prefixed.TextFormatter{})

	logger := log.StandardLogger()
	if viper.GetBool("debug") {
		logger.SetLevel(log.DebugLevel)
	}

	environment := os.Getenv("STOCKLENS_ENV")
	switch environment {
	case "production", "prod":

		writer := &lumberjack.Logger{
			Filename:   path.Join("log", "access_log"),
			MaxSize:    100, // megabytes
			MaxBackups: 3,
			MaxAge:     28, // days
		}
		logger.AddHook(
			lfshook.NewHook(
				lfshook.WriterMap{
					log.DebugLevel: writer,
					log.InfoLevel:  writer,
					log.WarnLevel:  writer,
					log.ErrorLevel: writer,
					log.FatalLevel: writer,
				},
				&log.JSONFormatter{},
			),
		)
	}

	if err := RootCmd.Execute(); err != nil {
		log.WithError(err).Fatalf("cannot execute command")
	}
}
