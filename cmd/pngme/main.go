package main

import (
	"fmt"
	"os"
	"strings"

	"github.com/fatih/color"
	"github.com/rs/zerolog"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

var cmdMain = &cobra.Command{
	Use:               "pngme",
	Short:             "Hide messages in PNG chunks",
	PersistentPreRunE: setup,
	SilenceErrors:     true,
	SilenceUsage:      true,
}

var flagMain struct {
	LogLevel  string
	LogFormat string
	NoColor   bool
}

var config = viper.New()

var logger = zerolog.Nop()

func init() {
	flags := cmdMain.PersistentFlags()
	flags.StringVar(&flagMain.LogLevel, "log-level", "warn", "Log level (trace, debug, info, warn, error)")
	flags.StringVar(&flagMain.LogFormat, "log-format", "text", "Log format (text, json)")
	flags.BoolVar(&flagMain.NoColor, "no-color", false, "Disable colored output")

	config.SetEnvPrefix("PNGME")
	config.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	config.AutomaticEnv()
	for _, name := range []string{"log-level", "log-format", "no-color"} {
		if err := config.BindPFlag(name, flags.Lookup(name)); err != nil {
			panic(err)
		}
	}
}

func main() {
	if err := cmdMain.Execute(); err != nil {
		fatalf("%v", err)
	}
}

func setup(cmd *cobra.Command, _ []string) error {
	if config.GetBool("no-color") {
		color.NoColor = true
	}

	var err error
	logger, err = newLogger(cmd.ErrOrStderr(), config.GetString("log-format"), config.GetString("log-level"))
	return err
}

func fatalf(format string, args ...interface{}) {
	fmt.Fprintf(os.Stderr, "Error: "+format+"\n", args...)
	os.Exit(1)
}
