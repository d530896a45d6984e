package cmd

import (
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	cfg "github.com/spacemeshos/go-subxt/config"
)

var config = cfg.DefaultConfig()

// AddCommands adds the persistent config flags to the command.
func AddCommands(cmd *cobra.Command) {
	/** ======================== BaseConfig Flags ========================== **/
	cmd.PersistentFlags().StringVarP(&config.BaseConfig.ConfigFile,
		"config", "c", config.BaseConfig.ConfigFile, "Load configuration from file")
	cmd.PersistentFlags().StringVarP(&config.MetadataFile, "metadata", "m",
		config.MetadataFile, "Path to the JSON metadata registry")
	cmd.PersistentFlags().BoolVar(&config.CollectMetrics, "metrics",
		config.CollectMetrics, "Push metrics when the command finishes")

	/** ======================== Logging Flags ========================== **/
	cmd.PersistentFlags().StringVar(&config.LOGGING.Encoder, "log-encoder",
		config.LOGGING.Encoder, "Log encoder: console or json")
	cmd.PersistentFlags().StringVar(&config.LOGGING.AppLoggerLevel, "log-level",
		config.LOGGING.AppLoggerLevel, "Logging level")

	/** ======================== Metrics Flags ========================== **/
	cmd.PersistentFlags().StringVar(&config.Push.URL, "metrics-push-url",
		config.Push.URL, "Push gateway url")
	cmd.PersistentFlags().StringVar(&config.Push.Job, "metrics-push-job",
		config.Push.Job, "Push gateway job name")
	cmd.PersistentFlags().IntVar(&config.Push.Retries, "metrics-push-retries",
		config.Push.Retries, "Number of retries after a failed push")
	cmd.PersistentFlags().DurationVar(&config.Push.RetryDelay, "metrics-push-retry-delay",
		config.Push.RetryDelay, "Delay between push retries")

	// bind all flags to viper so that EnsureCLIFlags can read them back by name
	if err := viper.BindPFlags(cmd.PersistentFlags()); err != nil {
		panic(err)
	}
}
