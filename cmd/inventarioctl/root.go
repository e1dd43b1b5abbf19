package main

import (
	"errors"

	"github.com/spf13/cobra"

	"github.com/maturin/inventario-api/pkg/config"
	"github.com/maturin/inventario-api/pkg/logger"
)

// NewRootCmd crea el comando raíz de inventarioctl.
func NewRootCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:          "inventarioctl",
		Short:        "Operación del inventario Maturin",
		Long:         `Aplica migraciones de PostgreSQL y carga datos de demostración. Lee la misma configuración (variables de entorno o .env) que el servidor.`,
		SilenceUsage: true,
	}
	cmd.AddCommand(NewMigrateCmd())
	cmd.AddCommand(NewSeedCmd())
	return cmd
}

var errMemoryDriver = errors.New("inventarioctl requiere STORAGE_DRIVER=postgres")

// loadConfig carga la configuración y el logger; rechaza el driver en memoria.
func loadConfig() (*config.Config, *logger.Logger, error) {
	cfg, err := config.Load()
	if err != nil {
		return nil, nil, err
	}
	if cfg.App.StorageDriver != config.StoragePostgres {
		return nil, nil, errMemoryDriver
	}
	log := logger.New(logger.Config{Env: cfg.App.Env, Level: cfg.App.LogLevel, Service: "inventarioctl"})
	return cfg, log, nil
}
