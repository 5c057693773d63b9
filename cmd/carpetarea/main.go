// Package main provides the CLI entry point for carpetarea.
package main

import (
	"fmt"
	"os"

	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/ukaji3/carpetarea-go/internal/config"
)

// version is set at build time via ldflags.
var version = "dev"

var (
	cfgFile string
	// cfg is loaded before any subcommand runs.
	cfg config.Config
)

var rootCmd = &cobra.Command{
	Use:   "carpetarea",
	Short: "Add carpet area columns to CRE property registers",
	Long: `carpetarea reads the CRE sheet of an xlsx register, sums the areas written
as "<number> चौ.मी." in column U of every row, and writes the total in square
metres (AM) and square feet (AN).

Run it as an HTTP service with "serve" or on local files with "annotate".`,
	SilenceUsage: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		used, err := config.ReadFile(viper.GetViper(), cfgFile)
		if err != nil {
			return fmt.Errorf("reading config: %w", err)
		}

		loaded, err := config.Load(viper.GetViper())
		if err != nil {
			return err
		}
		if err := config.SetupLogging(loaded.Log, nil); err != nil {
			return err
		}
		if used != "" {
			log.Debug().Str("file", used).Msg("using config file")
		}

		cfg = loaded
		return nil
	},
}

func init() {
	config.BindEnv(viper.GetViper())

	flags := rootCmd.PersistentFlags()
	flags.StringVar(&cfgFile, "config", "", "config file (default: ./carpetarea.yaml or ~/.config/carpetarea/carpetarea.yaml)")
	flags.String("log-level", "info", "log level: debug, info, warn, error")
	flags.String("log-format", "console", "log format: console or json")
	flags.String("rounding", "fixed", "rounding of derived areas: fixed or numeric")

	viper.BindPFlag("log.level", flags.Lookup("log-level"))
	viper.BindPFlag("log.format", flags.Lookup("log-format"))
	viper.BindPFlag("processing.rounding", flags.Lookup("rounding"))
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
