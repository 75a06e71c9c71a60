package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/hallboard/schoolfeed/infra/docstore"
	"github.com/hallboard/schoolfeed/infra/logger"
	"github.com/hallboard/schoolfeed/infra/weather"
)

// apiKeyEnv supplies the weather API credential.
const apiKeyEnv = "SF_WEATHER_API_KEY"

var weatherCmd = &cobra.Command{
	Use:   "weather",
	Short: "Fetch the daily weather summary for the serving directory",
	RunE:  fetchWeather,
}

func init() {
	rootCmd.AddCommand(weatherCmd)
}

// fetchWeather runs independently of the schedule pipeline: a failure here
// never affects the feed build.
func fetchWeather(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return fmt.Errorf("load config: %w", err)
	}
	logger.SetLevel(cfg.Logging.Level)
	logg := logger.New("weather")

	apiKey := os.Getenv(apiKeyEnv)
	if apiKey == "" {
		return fmt.Errorf("%s is not set", apiKeyEnv)
	}

	var src weather.Source = weather.NewClient(
		cfg.Weather.BaseURL,
		apiKey,
		weather.WithLocation(cfg.Weather.Latitude, cfg.Weather.Longitude),
	)
	summary, err := src.DailySummary(cmd.Context())
	if err != nil {
		return fmt.Errorf("fetch daily summary: %w", err)
	}
	if err := docstore.WriteJSON(cfg.Weather.Out, summary); err != nil {
		return fmt.Errorf("write weather summary: %w", err)
	}
	logg.Infof("wrote %s (%.1f°, %s)", cfg.Weather.Out, summary.MaxTemp, summary.Condition)
	return nil
}
