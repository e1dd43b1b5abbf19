// Package bootstrap arma las dependencias compartidas por cmd/api y cmd/inventarioctl.
package bootstrap

import (
	"context"
	"fmt"

	"github.com/rs/zerolog"

	"github.com/maturin/inventario-api/internal/domain/repository"
	"github.com/maturin/inventario-api/internal/infrastructure/memory"
	"github.com/maturin/inventario-api/internal/infrastructure/postgres"
	"github.com/maturin/inventario-api/pkg/config"
)

// Storage repositorios del driver elegido más su cierre.
type Storage struct {
	Driver    string
	Users     repository.UserRepository
	Equipment repository.EquipmentRepository
	close     func()
}

// Close libera el pool (no-op en memoria).
func (s *Storage) Close() {
	if s.close != nil {
		s.close()
	}
}

// OpenStorage abre el almacenamiento según STORAGE_DRIVER.
// Con postgres y DB_AUTO_MIGRATE=true aplica las migraciones pendientes una vez que la base responde.
func OpenStorage(ctx context.Context, cfg *config.Config, log zerolog.Logger) (*Storage, error) {
	if cfg.App.StorageDriver == config.StorageMemory {
		log.Warn().Msg("almacenamiento en memoria: los datos se pierden al reiniciar")
		return &Storage{
			Driver:    config.StorageMemory,
			Users:     memory.NewUserRepository(),
			Equipment: memory.NewEquipmentRepository(),
		}, nil
	}

	// Las migraciones corren con la base ya respondiendo al ping (DB_CONNECT_RETRIES).
	pool, err := postgres.NewPool(ctx, cfg.DB)
	if err != nil {
		return nil, fmt.Errorf("conexión a PostgreSQL: %w", err)
	}
	if cfg.DB.AutoMigrate {
		if err := Migrate(cfg.DB, log, func(m *postgres.Migrator) error { return m.Up() }); err != nil {
			pool.Close()
			return nil, err
		}
	}
	return &Storage{
		Driver:    config.StoragePostgres,
		Users:     postgres.NewUserRepository(pool),
		Equipment: postgres.NewEquipmentRepository(pool),
		close:     pool.Close,
	}, nil
}

// Migrate abre el migrador, ejecuta fn y registra la versión resultante.
func Migrate(cfg config.DBConfig, log zerolog.Logger, fn func(*postgres.Migrator) error) (err error) {
	m, err := postgres.NewMigrator(cfg.ConnectionString())
	if err != nil {
		return err
	}
	defer func() {
		if cerr := m.Close(); cerr != nil && err == nil {
			err = fmt.Errorf("migraciones: cerrar: %w", cerr)
		}
	}()

	if err := fn(m); err != nil {
		return err
	}
	version, dirty, err := m.Version()
	if err != nil {
		return err
	}
	log.Info().Uint("version", version).Bool("dirty", dirty).Msg("migraciones aplicadas")
	return nil
}
