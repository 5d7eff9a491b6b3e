package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/saulo-duarte/examai/internal/config"
)

var configFile string

func main() {
	rootCommand := cobra.Command{
		Use:           "examai",
		Short:         "Generate multiple-choice exams on any topic",
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	rootCommand.PersistentFlags().StringVar(&configFile, "config", "", "config file path")

	rootCommand.AddCommand(
		newAPICommand(),
		newWebCommand(),
		newQuizCommand(),
	)
	if err := rootCommand.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "failed to execute a command: %+v\n", err)
		os.Exit(1)
	}
}

func loadSettings() (*config.Settings, error) {
	settings, err := config.Load(configFile)
	if err != nil {
		return nil, err
	}
	config.InitLogger(settings.Log)
	return settings, nil
}
