package dto

import "time"

// CreateEquipmentRequest entrada para crear un equipo.
// Stock es puntero para distinguir "no enviado" (default 1) de 0 explícito.
type CreateEquipmentRequest struct {
	Name         string `json:"name" validate:"required,max=200"`
	Category     string `json:"category" validate:"required,equipment_category"`
	Brand        string `json:"brand" validate:"max=200"`
	Model        string `json:"model" validate:"max=200"`
	SerialNumber string `json:"serialNumber" validate:"max=200"`
	Status       string `json:"status" validate:"omitempty,equipment_status"`
	Location     string `json:"location" validate:"max=200"`
	Stock        *int   `json:"stock" validate:"omitnil,min=0,max=2147483647"`
	Observations string `json:"observations" validate:"max=2000"`
}

// UpdateEquipmentRequest actualización parcial: solo se aplican los campos enviados.
// Cualquier otra clave del cuerpo (_id, createdAt, ...) se ignora.
type UpdateEquipmentRequest struct {
	Name         *string `json:"name" validate:"omitnil,min=1,max=200"`
	Category     *string `json:"category" validate:"omitnil,equipment_category"`
	Brand        *string `json:"brand" validate:"omitnil,max=200"`
	Model        *string `json:"model" validate:"omitnil,max=200"`
	SerialNumber *string `json:"serialNumber" validate:"omitnil,max=200"`
	Status       *string `json:"status" validate:"omitnil,equipment_status"`
	Location     *string `json:"location" validate:"omitnil,max=200"`
	Stock        *int    `json:"stock" validate:"omitnil,min=0,max=2147483647"`
	Observations *string `json:"observations" validate:"omitnil,max=2000"`
}

// EquipmentResponse salida de un equipo. El id se expone como _id (lo consume el cliente web).
type EquipmentResponse struct {
	ID           string    `json:"_id"`
	Name         string    `json:"name"`
	Category     string    `json:"category"`
	Brand        string    `json:"brand,omitempty"`
	Model        string    `json:"model,omitempty"`
	SerialNumber string    `json:"serialNumber,omitempty"`
	Status       string    `json:"status"`
	Location     string    `json:"location"`
	Stock        int       `json:"stock"`
	Observations string    `json:"observations,omitempty"`
	CreatedAt    time.Time `json:"createdAt"`
	UpdatedAt    time.Time `json:"updatedAt"`
}

// EquipmentQuery filtros opcionales de listado (query string).
type EquipmentQuery struct {
	Category string `query:"category"`
	Status   string `query:"status"`
	Search   string `query:"q"`
}

// InventorySummary totales del inventario para el tablero.
type InventorySummary struct {
	Total      int            `json:"total"`
	TotalStock int            `json:"totalStock"`
	ByStatus   map[string]int `json:"byStatus"`
	ByCategory map[string]int `json:"byCategory"`
}
