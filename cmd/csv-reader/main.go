package main

import (
	"fmt"
	"os"

	"csv-reader/internal/config"

	"github.com/spf13/cobra"
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	var envFile string

	cmd := &cobra.Command{
		Use:     "csv-reader [file]",
		Short:   "View CSV and XLSX files one record at a time or as a table",
		Version: AppVersion,
		Args:    cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := config.LoadEnvFile(envFile); err != nil {
				return err
			}

			v := config.NewViper()
			for key, flag := range flagKeys {
				if err := v.BindPFlag(key, cmd.Flags().Lookup(flag)); err != nil {
					return fmt.Errorf("failed to bind flag %s: %w", flag, err)
				}
			}

			cfg, err := config.Load(v)
			if err != nil {
				return err
			}

			file := ""
			if len(args) == 1 {
				file = args[0]
			}

			application := NewApplication(cfg)
			return application.Run(file)
		},
	}

	flags := cmd.Flags()
	flags.StringVar(&envFile, "env-file", ".env", "dotenv file with CSVREADER_* settings")
	flags.String("log-level", "info", "log level (debug, info, warn, error)")
	flags.Bool("json-logs", false, "write logs as JSON")
	flags.Int("max-recent-files", 10, "number of entries kept in the recent files menu")
	flags.Duration("metrics-interval", 0, "interval between debug performance metrics")

	return cmd
}

// flagKeys maps configuration keys to the flags that override them.
var flagKeys = map[string]string{
	"log_level":        "log-level",
	"json_logs":        "json-logs",
	"max_recent_files": "max-recent-files",
	"metrics_interval": "metrics-interval",
}
