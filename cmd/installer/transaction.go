package main

import (
	"fmt"
	"time"

	"github.com/NeuralTrust/InstallGate/pkg/app/transaction"
	"github.com/spf13/afero"
	"github.com/spf13/cobra"
)

func transactionCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "transaction",
		Short: "Manage the install transaction token",
	}

	var ttl time.Duration
	issue := &cobra.Command{
		Use:   "issue",
		Short: "Write a transaction token that unlocks the install endpoints",
		RunE: func(cmd *cobra.Command, _ []string) error {
			cfg, logger, err := bootstrap()
			if err != nil {
				return err
			}
			if ttl <= 0 {
				ttl = cfg.Install.TransactionTTL
			}
			checker := transaction.NewChecker(logger, afero.NewOsFs(), cfg.Install.ProjectDir, cfg.Install.TransactionFile)
			expiresAt, err := checker.Issue(cmd.Context(), ttl)
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "transaction valid until %s\n", expiresAt.Format(time.RFC3339))
			return nil
		},
	}
	issue.Flags().DurationVar(&ttl, "ttl", 0, "token lifetime (defaults to install.transaction_ttl)")

	clearCmd := &cobra.Command{
		Use:   "clear",
		Short: "Remove the transaction token",
		RunE: func(cmd *cobra.Command, _ []string) error {
			cfg, logger, err := bootstrap()
			if err != nil {
				return err
			}
			checker := transaction.NewChecker(logger, afero.NewOsFs(), cfg.Install.ProjectDir, cfg.Install.TransactionFile)
			return checker.Remove(cmd.Context())
		},
	}

	cmd.AddCommand(issue, clearCmd)
	return cmd
}
