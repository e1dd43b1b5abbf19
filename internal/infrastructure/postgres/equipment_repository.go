package postgres

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/jackc/pgx/v5"

	"github.com/maturin/inventario-api/internal/domain"
	"github.com/maturin/inventario-api/internal/domain/entity"
	"github.com/maturin/inventario-api/internal/domain/repository"
)

var _ repository.EquipmentRepository = (*EquipmentRepo)(nil)

const equipmentColumns = `id, name, category, brand, model, serial_number, status, location, stock, observations, created_at, updated_at`

// EquipmentRepo implementación del puerto EquipmentRepository sobre PostgreSQL.
// serial_number es UNIQUE y admite NULL: los equipos sin serie nunca colisionan.
type EquipmentRepo struct {
	q Querier
}

// NewEquipmentRepository construye el adaptador. Acepta pool o tx (Querier).
func NewEquipmentRepository(q Querier) *EquipmentRepo {
	return &EquipmentRepo{q: q}
}

// List lista equipos filtrando por categoría y estado, más recientes primero.
func (r *EquipmentRepo) List(ctx context.Context, filter repository.EquipmentFilter) ([]*entity.Equipment, error) {
	var (
		where []string
		args  []any
	)
	if filter.Category != "" {
		args = append(args, filter.Category)
		where = append(where, fmt.Sprintf("category = $%d", len(args)))
	}
	if filter.Status != "" {
		args = append(args, filter.Status)
		where = append(where, fmt.Sprintf("status = $%d", len(args)))
	}
	query := `SELECT ` + equipmentColumns + ` FROM equipment`
	if len(where) > 0 {
		query += ` WHERE ` + strings.Join(where, " AND ")
	}
	query += ` ORDER BY created_at DESC, id`

	rows, err := r.q.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("list equipment: %w", err)
	}
	defer rows.Close()
	list := make([]*entity.Equipment, 0)
	for rows.Next() {
		e, err := scanEquipment(rows)
		if err != nil {
			return nil, fmt.Errorf("scan equipment: %w", err)
		}
		list = append(list, e)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("list equipment: %w", err)
	}
	return list, nil
}

// GetByID obtiene un equipo por ID.
func (r *EquipmentRepo) GetByID(ctx context.Context, id string) (*entity.Equipment, error) {
	query := `SELECT ` + equipmentColumns + ` FROM equipment WHERE id = $1`
	e, err := scanEquipment(r.q.QueryRow(ctx, query, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, classify("get equipment", err)
	}
	return e, nil
}

// Create persiste un nuevo equipo.
func (r *EquipmentRepo) Create(ctx context.Context, e *entity.Equipment) error {
	query := `
		INSERT INTO equipment (` + equipmentColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12)`
	_, err := r.q.Exec(ctx, query,
		e.ID, e.Name, e.Category, e.Brand, e.Model, e.SerialNumber, e.Status, e.Location, e.Stock,
		e.Observations, e.CreatedAt, e.UpdatedAt,
	)
	if err != nil {
		return classify("insert equipment", err)
	}
	return nil
}

// Update reemplaza los campos mutables y recupera created_at.
func (r *EquipmentRepo) Update(ctx context.Context, e *entity.Equipment) error {
	query := `
		UPDATE equipment SET name = $2, category = $3, brand = $4, model = $5, serial_number = $6,
			status = $7, location = $8, stock = $9, observations = $10, updated_at = $11
		WHERE id = $1
		RETURNING created_at`
	err := r.q.QueryRow(ctx, query,
		e.ID, e.Name, e.Category, e.Brand, e.Model, e.SerialNumber, e.Status, e.Location, e.Stock,
		e.Observations, e.UpdatedAt,
	).Scan(&e.CreatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return domain.ErrNotFound
		}
		return classify("update equipment", err)
	}
	e.CreatedAt = e.CreatedAt.UTC()
	return nil
}

// Delete elimina un equipo y devuelve la fila eliminada.
func (r *EquipmentRepo) Delete(ctx context.Context, id string) (*entity.Equipment, error) {
	query := `DELETE FROM equipment WHERE id = $1 RETURNING ` + equipmentColumns
	e, err := scanEquipment(r.q.QueryRow(ctx, query, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrNotFound
		}
		return nil, classify("delete equipment", err)
	}
	return e, nil
}

// DeleteAll elimina todos los equipos.
func (r *EquipmentRepo) DeleteAll(ctx context.Context) error {
	if _, err := r.q.Exec(ctx, `DELETE FROM equipment`); err != nil {
		return fmt.Errorf("delete equipment: %w", err)
	}
	return nil
}

// classify traduce los SQLSTATE relevantes a errores de dominio.
func classify(op string, err error) error {
	switch {
	case isUniqueViolation(err):
		return domain.ErrDuplicate
	case isCheckViolation(err):
		return fmt.Errorf("%s: %w", op, domain.ErrInvalidInput)
	case isInvalidText(err):
		return domain.ErrInvalidID
	}
	return fmt.Errorf("%s: %w", op, err)
}

func scanEquipment(row pgx.Row) (*entity.Equipment, error) {
	var e entity.Equipment
	err := row.Scan(
		&e.ID, &e.Name, &e.Category, &e.Brand, &e.Model, &e.SerialNumber, &e.Status, &e.Location,
		&e.Stock, &e.Observations, &e.CreatedAt, &e.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	// pgx devuelve TIMESTAMPTZ en la zona local del proceso.
	e.CreatedAt, e.UpdatedAt = e.CreatedAt.UTC(), e.UpdatedAt.UTC()
	return &e, nil
}
