package main

import (
	"fmt"

	"github.com/NeuralTrust/InstallGate/pkg/domain/plugin"
	"github.com/NeuralTrust/InstallGate/pkg/infra/database"
	"github.com/NeuralTrust/InstallGate/pkg/infra/repository"
	"github.com/spf13/cobra"
)

func pluginCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "plugin",
		Short: "Manage plugin records",
	}

	var p plugin.Plugin
	register := &cobra.Command{
		Use:   "register",
		Short: "Register a plugin so the installer can toggle it",
		RunE: func(cmd *cobra.Command, _ []string) error {
			cfg, logger, err := bootstrap()
			if err != nil {
				return err
			}
			db, err := database.NewDB(logger, databaseConfig(cfg))
			if err != nil {
				return fmt.Errorf("failed to initialize database: %w", err)
			}
			defer func() { _ = db.Close() }()

			if p.Name == "" {
				p.Name = p.Code
			}
			if err := repository.NewPluginRepository(db.DB).Save(cmd.Context(), &p); err != nil {
				return fmt.Errorf("failed to register plugin: %w", err)
			}
			fmt.Fprintf(cmd.OutOrStdout(), "plugin %s registered (%s)\n", p.Code, p.ID)
			return nil
		},
	}
	register.Flags().StringVar(&p.Code, "code", "", "plugin code")
	register.Flags().StringVar(&p.Name, "name", "", "display name")
	register.Flags().StringVar(&p.Version, "version", "1.0.0", "plugin version")
	register.Flags().StringVar(&p.Source, "source", "", "plugin directory, relative to the project dir (default app/Plugin/<code>)")
	_ = register.MarkFlagRequired("code")

	list := &cobra.Command{
		Use:   "list",
		Short: "List registered plugins",
		RunE: func(cmd *cobra.Command, _ []string) error {
			cfg, logger, err := bootstrap()
			if err != nil {
				return err
			}
			db, err := database.NewDB(logger, databaseConfig(cfg))
			if err != nil {
				return fmt.Errorf("failed to initialize database: %w", err)
			}
			defer func() { _ = db.Close() }()

			plugins, err := repository.NewPluginRepository(db.DB).List(cmd.Context())
			if err != nil {
				return err
			}
			for _, item := range plugins {
				fmt.Fprintf(cmd.OutOrStdout(), "%-24s %-10s enabled=%t\n", item.Code, item.Version, item.Enabled)
			}
			return nil
		},
	}

	cmd.AddCommand(register, list)
	return cmd
}
