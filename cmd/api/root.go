package main

import (
	"go-contact-relay/config"
	"go-contact-relay/pkg/logger"

	"github.com/spf13/cobra"
)

func NewRootCmd() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:           "contact-relay",
		Short:         "Contact form relay to the Resend email API",
		SilenceUsage:  true,
		SilenceErrors: false,
	}

	rootCmd.AddCommand(newServeCmd(), newLambdaCmd(), newSendCmd())
	return rootCmd
}

// loadConfig is shared by every subcommand
func loadConfig() (*config.Config, error) {
	cfg, err := config.LoadConfig()
	if err != nil {
		return nil, err
	}
	logger.Init(cfg.IsProduction())
	return cfg, nil
}
