package main

import (
	"fmt"

	"go-contact-relay/internal/app"
	"go-contact-relay/internal/domain"

	"github.com/spf13/cobra"
)

func newSendCmd() *cobra.Command {
	var sub domain.ContactSubmission

	cmd := &cobra.Command{
		Use:   "send",
		Short: "Relay a single contact message, bypassing HTTP (smoke test)",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadConfig()
			if err != nil {
				return fmt.Errorf("failed to load config: %w", err)
			}

			a := app.New(cfg, nil)
			res, err := a.ContactUC.Submit(cmd.Context(), &sub)
			if err != nil {
				return err
			}

			if res.Honeypot {
				fmt.Fprintln(cmd.OutOrStdout(), "dropped: honeypot field was filled")
				return nil
			}
			fmt.Fprintf(cmd.OutOrStdout(), "sent: id=%s\n", res.ID)
			return nil
		},
	}

	cmd.Flags().StringVar(&sub.Name, "name", "", "Sender name")
	cmd.Flags().StringVar(&sub.Email, "email", "", "Sender email (used as reply-to)")
	cmd.Flags().StringVar(&sub.Subject, "subject", "", "Message subject")
	cmd.Flags().StringVar(&sub.Message, "message", "", "Message body")
	return cmd
}
