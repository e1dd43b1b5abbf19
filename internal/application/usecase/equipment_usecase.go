package usecase

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/maturin/inventario-api/internal/application/dto"
	"github.com/maturin/inventario-api/internal/application/validation"
	"github.com/maturin/inventario-api/internal/domain"
	"github.com/maturin/inventario-api/internal/domain/entity"
	"github.com/maturin/inventario-api/internal/domain/repository"
	"github.com/maturin/inventario-api/pkg/textsearch"
)

const msgSerialTaken = "El número de serie ya está registrado"

// EquipmentUseCase casos de uso CRUD para equipos del inventario.
type EquipmentUseCase struct {
	repo      repository.EquipmentRepository
	validator *validation.Validator
	now       func() time.Time
}

// NewEquipmentUseCase construye el caso de uso.
func NewEquipmentUseCase(repo repository.EquipmentRepository, v *validation.Validator) *EquipmentUseCase {
	return &EquipmentUseCase{repo: repo, validator: v, now: storedNow}
}

// storedNow recorta a microsegundos, la precisión de TIMESTAMPTZ.
func storedNow() time.Time {
	return time.Now().UTC().Truncate(time.Microsecond)
}

// Find devuelve las entidades que cumplen el filtro. Categoría y estado se filtran en el
// almacenamiento; q se busca sin distinguir mayúsculas ni tildes en nombre, marca, modelo y serie.
func (uc *EquipmentUseCase) Find(ctx context.Context, q dto.EquipmentQuery) ([]*entity.Equipment, error) {
	filter := repository.EquipmentFilter{
		Category: strings.TrimSpace(q.Category),
		Status:   strings.TrimSpace(q.Status),
		Search:   strings.TrimSpace(q.Search),
	}
	list, err := uc.repo.List(ctx, filter)
	if err != nil {
		return nil, fmt.Errorf("listar equipos: %w", err)
	}
	if filter.Search == "" {
		return list, nil
	}
	out := list[:0]
	for _, e := range list {
		if textsearch.ContainsAny(filter.Search, e.Name, e.Brand, e.Model, e.Serial()) {
			out = append(out, e)
		}
	}
	return out, nil
}

// List lista equipos, más recientes primero. Sin filtros devuelve todo el inventario.
func (uc *EquipmentUseCase) List(ctx context.Context, q dto.EquipmentQuery) ([]dto.EquipmentResponse, error) {
	list, err := uc.Find(ctx, q)
	if err != nil {
		return nil, err
	}
	items := make([]dto.EquipmentResponse, 0, len(list))
	for _, e := range list {
		items = append(items, *toEquipmentResponse(e))
	}
	return items, nil
}

// GetByID obtiene un equipo por ID.
func (uc *EquipmentUseCase) GetByID(ctx context.Context, id string) (*dto.EquipmentResponse, error) {
	id, err := canonicalID(id)
	if err != nil {
		return nil, err
	}
	e, err := uc.repo.GetByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("obtener equipo: %w", err)
	}
	if e == nil {
		return nil, domain.ErrEquipmentNotFound
	}
	return toEquipmentResponse(e), nil
}

// Create valida y crea un equipo aplicando los valores por defecto.
func (uc *EquipmentUseCase) Create(ctx context.Context, in dto.CreateEquipmentRequest) (*dto.EquipmentResponse, error) {
	in.Name = strings.TrimSpace(in.Name)
	in.Category = strings.TrimSpace(in.Category)
	in.Brand = strings.TrimSpace(in.Brand)
	in.Model = strings.TrimSpace(in.Model)
	in.SerialNumber = strings.TrimSpace(in.SerialNumber)
	in.Status = strings.TrimSpace(in.Status)
	in.Location = strings.TrimSpace(in.Location)
	in.Observations = strings.TrimSpace(in.Observations)
	if err := uc.validator.Struct(in); err != nil {
		return nil, err
	}

	now := uc.now()
	e := &entity.Equipment{
		ID:           uuid.New().String(),
		Name:         in.Name,
		Category:     in.Category,
		Brand:        in.Brand,
		Model:        in.Model,
		SerialNumber: optional(in.SerialNumber),
		Status:       in.Status,
		Location:     in.Location,
		Stock:        entity.DefaultStock,
		Observations: in.Observations,
		CreatedAt:    now,
		UpdatedAt:    now,
	}
	if e.Status == "" {
		e.Status = entity.DefaultStatus
	}
	if e.Location == "" {
		e.Location = entity.DefaultLocation
	}
	if in.Stock != nil {
		e.Stock = *in.Stock
	}

	if err := uc.repo.Create(ctx, e); err != nil {
		if errors.Is(err, domain.ErrDuplicate) {
			return nil, domain.NewValidationError("serialNumber", msgSerialTaken)
		}
		return nil, fmt.Errorf("crear equipo: %w", err)
	}
	return toEquipmentResponse(e), nil
}

// Update aplica solo los campos enviados. Gana la última escritura.
func (uc *EquipmentUseCase) Update(ctx context.Context, id string, in dto.UpdateEquipmentRequest) (*dto.EquipmentResponse, error) {
	id, err := canonicalID(id)
	if err != nil {
		return nil, err
	}
	for _, p := range []*string{in.Name, in.Category, in.Brand, in.Model, in.SerialNumber, in.Status, in.Location, in.Observations} {
		if p != nil {
			*p = strings.TrimSpace(*p)
		}
	}
	if err := uc.validator.Struct(in); err != nil {
		return nil, err
	}

	e, err := uc.repo.GetByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("obtener equipo: %w", err)
	}
	if e == nil {
		return nil, domain.ErrEquipmentNotFound
	}
	if in.Name != nil {
		e.Name = *in.Name
	}
	if in.Category != nil {
		e.Category = *in.Category
	}
	if in.Brand != nil {
		e.Brand = *in.Brand
	}
	if in.Model != nil {
		e.Model = *in.Model
	}
	if in.SerialNumber != nil {
		e.SerialNumber = optional(*in.SerialNumber)
	}
	if in.Status != nil {
		e.Status = *in.Status
	}
	if in.Location != nil {
		e.Location = *in.Location
		if e.Location == "" {
			e.Location = entity.DefaultLocation
		}
	}
	if in.Stock != nil {
		e.Stock = *in.Stock
	}
	if in.Observations != nil {
		e.Observations = *in.Observations
	}
	e.UpdatedAt = uc.now()

	if err := uc.repo.Update(ctx, e); err != nil {
		switch {
		case errors.Is(err, domain.ErrNotFound):
			return nil, domain.ErrEquipmentNotFound
		case errors.Is(err, domain.ErrDuplicate):
			return nil, domain.NewValidationError("serialNumber", msgSerialTaken)
		}
		return nil, fmt.Errorf("actualizar equipo: %w", err)
	}
	return toEquipmentResponse(e), nil
}

// Delete elimina un equipo y devuelve el registro eliminado.
func (uc *EquipmentUseCase) Delete(ctx context.Context, id string) (*dto.EquipmentResponse, error) {
	id, err := canonicalID(id)
	if err != nil {
		return nil, err
	}
	e, err := uc.repo.Delete(ctx, id)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return nil, domain.ErrEquipmentNotFound
		}
		return nil, fmt.Errorf("eliminar equipo: %w", err)
	}
	return toEquipmentResponse(e), nil
}

// canonicalID distingue un id mal formado (400) de uno bien formado pero inexistente (404).
func canonicalID(id string) (string, error) {
	u, err := uuid.Parse(id)
	if err != nil {
		return "", domain.ErrInvalidID
	}
	return u.String(), nil
}

func optional(s string) *string {
	if s == "" {
		return nil
	}
	return &s
}

func toEquipmentResponse(e *entity.Equipment) *dto.EquipmentResponse {
	if e == nil {
		return nil
	}
	return &dto.EquipmentResponse{
		ID:           e.ID,
		Name:         e.Name,
		Category:     e.Category,
		Brand:        e.Brand,
		Model:        e.Model,
		SerialNumber: e.Serial(),
		Status:       e.Status,
		Location:     e.Location,
		Stock:        e.Stock,
		Observations: e.Observations,
		CreatedAt:    e.CreatedAt,
		UpdatedAt:    e.UpdatedAt,
	}
}
