package memory

import (
	"context"
	"sort"
	"sync"

	"github.com/maturin/inventario-api/internal/domain"
	"github.com/maturin/inventario-api/internal/domain/entity"
	"github.com/maturin/inventario-api/internal/domain/repository"
)

var _ repository.EquipmentRepository = (*EquipmentRepo)(nil)

type equipmentRecord struct {
	eq  *entity.Equipment
	seq uint64
}

// EquipmentRepo almacena equipos en memoria. Los números de serie no nulos son únicos.
type EquipmentRepo struct {
	mu       sync.RWMutex
	byID     map[string]equipmentRecord
	bySerial map[string]string
	seq      uint64
}

// NewEquipmentRepository construye un repositorio vacío.
func NewEquipmentRepository() *EquipmentRepo {
	return &EquipmentRepo{
		byID:     make(map[string]equipmentRecord),
		bySerial: make(map[string]string),
	}
}

// List devuelve copias de los equipos que cumplen el filtro, más recientes primero.
// filter.Search se ignora: lo aplica la capa de aplicación.
func (r *EquipmentRepo) List(_ context.Context, filter repository.EquipmentFilter) ([]*entity.Equipment, error) {
	r.mu.RLock()
	recs := make([]equipmentRecord, 0, len(r.byID))
	for _, rec := range r.byID {
		if filter.Category != "" && rec.eq.Category != filter.Category {
			continue
		}
		if filter.Status != "" && rec.eq.Status != filter.Status {
			continue
		}
		recs = append(recs, equipmentRecord{eq: rec.eq.Clone(), seq: rec.seq})
	}
	r.mu.RUnlock()

	sort.Slice(recs, func(i, j int) bool {
		a, b := recs[i], recs[j]
		if !a.eq.CreatedAt.Equal(b.eq.CreatedAt) {
			return a.eq.CreatedAt.After(b.eq.CreatedAt)
		}
		return a.seq > b.seq
	})
	out := make([]*entity.Equipment, len(recs))
	for i, rec := range recs {
		out[i] = rec.eq
	}
	return out, nil
}

// GetByID devuelve (nil, nil) si no existe.
func (r *EquipmentRepo) GetByID(_ context.Context, id string) (*entity.Equipment, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	rec, ok := r.byID[id]
	if !ok {
		return nil, nil
	}
	return rec.eq.Clone(), nil
}

// Create persiste una copia del equipo.
func (r *EquipmentRepo) Create(_ context.Context, equipment *entity.Equipment) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, exists := r.byID[equipment.ID]; exists {
		return domain.ErrDuplicate
	}
	if s := equipment.Serial(); s != "" {
		if _, taken := r.bySerial[s]; taken {
			return domain.ErrDuplicate
		}
		r.bySerial[s] = equipment.ID
	}
	r.seq++
	r.byID[equipment.ID] = equipmentRecord{eq: equipment.Clone(), seq: r.seq}
	return nil
}

// Update reemplaza el registro conservando CreatedAt.
func (r *EquipmentRepo) Update(_ context.Context, equipment *entity.Equipment) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	rec, ok := r.byID[equipment.ID]
	if !ok {
		return domain.ErrNotFound
	}
	newSerial := equipment.Serial()
	if newSerial != "" {
		if owner, taken := r.bySerial[newSerial]; taken && owner != equipment.ID {
			return domain.ErrDuplicate
		}
	}
	if old := rec.eq.Serial(); old != "" && old != newSerial {
		delete(r.bySerial, old)
	}
	if newSerial != "" {
		r.bySerial[newSerial] = equipment.ID
	}
	updated := equipment.Clone()
	updated.CreatedAt = rec.eq.CreatedAt
	r.byID[equipment.ID] = equipmentRecord{eq: updated, seq: rec.seq}
	return nil
}

// Delete elimina el equipo y devuelve el registro borrado.
func (r *EquipmentRepo) Delete(_ context.Context, id string) (*entity.Equipment, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	rec, ok := r.byID[id]
	if !ok {
		return nil, domain.ErrNotFound
	}
	delete(r.byID, id)
	if s := rec.eq.Serial(); s != "" {
		delete(r.bySerial, s)
	}
	return rec.eq.Clone(), nil
}

// DeleteAll vacía el repositorio.
func (r *EquipmentRepo) DeleteAll(_ context.Context) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.byID = make(map[string]equipmentRecord)
	r.bySerial = make(map[string]string)
	return nil
}
