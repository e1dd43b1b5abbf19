package main

import (
	"context"
	"time"

	"github.com/spf13/cobra"

	"github.com/maturin/inventario-api/internal/application/seed"
	"github.com/maturin/inventario-api/internal/bootstrap"
)

const defaultSeedTimeout = 30 * time.Second

// NewSeedCmd crea el subcomando seed. Cada objetivo reemplaza los datos existentes.
func NewSeedCmd() *cobra.Command {
	var timeout time.Duration
	cmd := &cobra.Command{
		Use:   "seed",
		Short: "Carga datos de demostración",
		Long: `Borra y vuelve a cargar datos de demostración.
  users:     admin@maturin.com (admin) y usuario@maturin.com (usuario)
  equipment: cinco equipos de ejemplo`,
	}
	cmd.PersistentFlags().DurationVar(&timeout, "timeout", defaultSeedTimeout, "tiempo máximo de la operación")

	cmd.AddCommand(&cobra.Command{
		Use:   "users",
		Short: "Reemplaza los usuarios por las cuentas de demostración",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runSeed(cmd, timeout, "usuarios", (*seed.SeedUseCase).SeedUsers)
		},
	})
	cmd.AddCommand(&cobra.Command{
		Use:   "equipment",
		Short: "Reemplaza los equipos por los de demostración",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runSeed(cmd, timeout, "equipos", (*seed.SeedUseCase).SeedEquipment)
		},
	})
	return cmd
}

func runSeed(cmd *cobra.Command, timeout time.Duration, what string, fn func(*seed.SeedUseCase, context.Context) (int, error)) error {
	cfg, log, err := loadConfig()
	if err != nil {
		return err
	}

	ctx, cancel := context.WithTimeout(cmd.Context(), timeout)
	defer cancel()

	storage, err := bootstrap.OpenStorage(ctx, cfg, log.Zerolog())
	if err != nil {
		return err
	}
	defer storage.Close()

	svc, err := bootstrap.NewServices(cfg, storage)
	if err != nil {
		return err
	}
	n, err := fn(svc.Seed, ctx)
	if err != nil {
		return err
	}
	cmd.Printf("%d %s cargados\n", n, what)
	return nil
}
