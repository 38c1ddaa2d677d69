package main

import (
	"os"
	"strings"

	"github.com/jedib0t/go-pretty/v6/text"
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	prefixed "github.com/x-cray/logrus-prefixed-formatter"
	"golang.org/x/term"

	"github.com/c9s/easymeasure"
)

var log = logrus.WithField("application", "easymeasure")

var config *easymeasure.Config

var rootCmd = &cobra.Command{
	Use:   "easymeasure",
	Short: "easymeasure measurement tool",
	Long:  "easymeasure measures the elapsed time and memory usage of named checkpoints",

	// SilenceUsage is an option to silence usage when an error occurs.
	SilenceUsage: true,

	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		if viper.GetBool("debug") {
			logrus.SetLevel(logrus.DebugLevel)
		}

		if !term.IsTerminal(int(os.Stdout.Fd())) {
			text.DisableColors()
		}

		var err error
		config, err = loadConfig(viper.GetString("config"))
		return err
	},

	RunE: func(cmd *cobra.Command, args []string) error {
		return cmd.Help()
	},
}

func init() {
	rootCmd.PersistentFlags().Bool("debug", false, "debug flag")
	rootCmd.PersistentFlags().String("config", "easymeasure.yaml", "config file")
}

// loadConfig loads the config file when it exists, otherwise the config is
// built from the environment variables.
func loadConfig(configFile string) (*easymeasure.Config, error) {
	if _, err := os.Stat(configFile); err != nil {
		if os.IsNotExist(err) {
			log.Debugf("config file %s does not exist, using environment variables", configFile)
			return easymeasure.LoadConfigFromEnv()
		}

		return nil, err
	}

	return easymeasure.LoadConfig(configFile)
}

func main() {
	viper.SetEnvPrefix("EASYMEASURE")
	viper.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))

	// Enable environment variable binding, the env vars are not overloaded yet.
	viper.AutomaticEnv()

	// Once the flags are defined, we can bind config keys with flags.
	if err := viper.BindPFlags(rootCmd.PersistentFlags()); err != nil {
		log.WithError(err).Errorf("failed to bind persistent flags. please check the flag settings.")
	}

	logrus.SetFormatter(&prefixed.TextFormatter{})

	if err := rootCmd.Execute(); err != nil {
		log.WithError(err).Fatalf("cannot execute command")
	}
}
