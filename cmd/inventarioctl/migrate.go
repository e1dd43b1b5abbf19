package main

import (
	"github.com/spf13/cobra"

	"github.com/maturin/inventario-api/internal/bootstrap"
	"github.com/maturin/inventario-api/internal/infrastructure/postgres"
)

// NewMigrateCmd crea el subcomando migrate con up, down y version.
func NewMigrateCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "migrate",
		Short: "Migraciones de la base de datos",
	}
	cmd.AddCommand(&cobra.Command{
		Use:   "up",
		Short: "Aplica las migraciones pendientes",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runMigrate(cmd, func(m *postgres.Migrator) error { return m.Up() })
		},
	})
	cmd.AddCommand(&cobra.Command{
		Use:   "down",
		Short: "Revierte todas las migraciones (borra las tablas)",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runMigrate(cmd, func(m *postgres.Migrator) error { return m.Down() })
		},
	})
	cmd.AddCommand(&cobra.Command{
		Use:   "version",
		Short: "Muestra la versión aplicada",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runMigrate(cmd, func(m *postgres.Migrator) error {
				version, dirty, err := m.Version()
				if err != nil {
					return err
				}
				cmd.Printf("versión %d (dirty=%t)\n", version, dirty)
				return nil
			})
		},
	})
	return cmd
}

func runMigrate(cmd *cobra.Command, fn func(*postgres.Migrator) error) error {
	cfg, log, err := loadConfig()
	if err != nil {
		return err
	}
	cmd.Println("Ejecutando migraciones...")
	return bootstrap.Migrate(cfg.DB, log.Zerolog(), fn)
}
