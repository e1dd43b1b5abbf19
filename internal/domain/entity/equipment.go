package entity

import "time"

// Categorías de equipo admitidas.
const (
	CategoryNetworking  = "Networking"
	CategoryCCTV        = "CCTV"
	CategoryPerifericos = "Perifericos"
	CategoryComputacion = "Computación"
	CategoryTelefonia   = "Telefonía"
)

// Estados de equipo admitidos.
const (
	StatusDisponible = "Disponible"
	StatusEnUso      = "En uso"
	StatusReparacion = "Reparación"
	StatusDanado     = "Dañado"
)

// Valores por defecto al crear un equipo.
const (
	DefaultStatus   = StatusDisponible
	DefaultLocation = "Deposito Central"
	DefaultStock    = 1
)

// Categories lista las categorías en el orden en que se muestran.
var Categories = []string{
	CategoryNetworking,
	CategoryCCTV,
	CategoryPerifericos,
	CategoryComputacion,
	CategoryTelefonia,
}

// Statuses lista los estados en el orden en que se muestran.
var Statuses = []string{
	StatusDisponible,
	StatusEnUso,
	StatusReparacion,
	StatusDanado,
}

// Equipment representa un equipo o insumo del inventario.
// SerialNumber es nil cuando el equipo no tiene número de serie; solo los no nulos deben ser únicos.
type Equipment struct {
	ID           string
	Name         string
	Category     string
	Brand        string
	Model        string
	SerialNumber *string
	Status       string
	Location     string
	Stock        int
	Observations string
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

// ValidCategory indica si c pertenece a la enumeración de categorías.
func ValidCategory(c string) bool {
	return contains(Categories, c)
}

// ValidStatus indica si s pertenece a la enumeración de estados.
func ValidStatus(s string) bool {
	return contains(Statuses, s)
}

// Serial devuelve el número de serie o "" si no tiene.
func (e *Equipment) Serial() string {
	if e.SerialNumber == nil {
		return ""
	}
	return *e.SerialNumber
}

// Clone devuelve una copia independiente (incluido el puntero de serie).
func (e *Equipment) Clone() *Equipment {
	if e == nil {
		return nil
	}
	c := *e
	if e.SerialNumber != nil {
		s := *e.SerialNumber
		c.SerialNumber = &s
	}
	return &c
}

func contains(list []string, v string) bool {
	for _, x := range list {
		if x == v {
			return true
		}
	}
	return false
}
