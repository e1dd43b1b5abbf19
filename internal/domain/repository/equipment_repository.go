package repository

import (
	"context"

	"github.com/maturin/inventario-api/internal/domain/entity"
)

// EquipmentFilter criterios opcionales de listado. Los campos vacíos no filtran.
// Search no se aplica en el almacenamiento; lo resuelve la capa de aplicación.
type EquipmentFilter struct {
	Category string
	Status   string
	Search   string
}

// EquipmentRepository define el puerto de persistencia para Equipment (DIP).
type EquipmentRepository interface {
	// List devuelve los equipos que cumplen Category/Status, más recientes primero.
	List(ctx context.Context, filter EquipmentFilter) ([]*entity.Equipment, error)
	// GetByID devuelve (nil, nil) si no existe.
	GetByID(ctx context.Context, id string) (*entity.Equipment, error)
	// Create persiste el equipo. Un número de serie repetido devuelve domain.ErrDuplicate.
	Create(ctx context.Context, equipment *entity.Equipment) error
	// Update reemplaza los campos mutables. domain.ErrNotFound si no existe.
	Update(ctx context.Context, equipment *entity.Equipment) error
	// Delete elimina y devuelve el registro borrado. domain.ErrNotFound si no existe.
	Delete(ctx context.Context, id string) (*entity.Equipment, error)
	// DeleteAll elimina todos los equipos (solo para seed).
	DeleteAll(ctx context.Context) error
}
