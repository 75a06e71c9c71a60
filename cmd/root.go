package cmd

import (
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"

	"github.com/hallboard/schoolfeed/app"
	"github.com/hallboard/schoolfeed/config"
	"github.com/hallboard/schoolfeed/core/schedule"
	"github.com/hallboard/schoolfeed/infra/logger"
)

var (
	cfgPath string
	dateArg string
)

var rootCmd = &cobra.Command{
	Use:   "schoolfeed",
	Short: "Build the daily and weekly schedule feed",
	RunE:  run,
}

func init() {
	rootCmd.PersistentFlags().StringVarP(&cfgPath, "config", "c", "config.yaml", "configuration file")
	rootCmd.Flags().StringVar(&dateArg, "date", "", "target date (YYYY-MM-DD), defaults to today")
}

// Execute runs the CLI.
func Execute() error { return rootCmd.Execute() }

func run(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return fmt.Errorf("load config: %w", err)
	}
	logger.SetLevel(cfg.Logging.Level)

	target := schedule.ResolveDate(dateArg, time.Now(), logger.New("main"))
	return app.New(cfg).Run(target)
}

// loadConfig falls back to built-in defaults when no config file exists, so
// the binary runs out of the box against the conventional data directory.
func loadConfig() (*config.Config, error) {
	if _, err := os.Stat(cfgPath); os.IsNotExist(err) {
		return config.Default(), nil
	}
	return config.Load(cfgPath)
}
