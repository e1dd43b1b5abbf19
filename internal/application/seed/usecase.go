// Package seed carga datos de demostración reemplazando los existentes.
package seed

import (
	"context"
	"fmt"

	"github.com/maturin/inventario-api/internal/application/dto"
	"github.com/maturin/inventario-api/internal/domain/entity"
	"github.com/maturin/inventario-api/internal/domain/repository"
)

// Registrar registra usuarios con las mismas reglas que la API (lo implementa auth.AuthUseCase).
type Registrar interface {
	Register(ctx context.Context, in dto.RegisterRequest) error
}

// EquipmentCreator crea equipos aplicando validación y defaults (lo implementa usecase.EquipmentUseCase).
type EquipmentCreator interface {
	Create(ctx context.Context, in dto.CreateEquipmentRequest) (*dto.EquipmentResponse, error)
}

// DemoUsers cuentas de demostración.
var DemoUsers = []dto.RegisterRequest{
	{Nombre: "Administrador", Email: "admin@maturin.com", Password: "admin1234", Rol: entity.RoleAdmin},
	{Nombre: "Usuario Demo", Email: "usuario@maturin.com", Password: "usuario1234", Rol: entity.RoleUsuario},
}

// DemoEquipment equipos de demostración.
var DemoEquipment = []dto.CreateEquipmentRequest{
	{Name: "Mouse Óptico USB", Category: entity.CategoryPerifericos, Brand: "Logitech", Model: "M100", Stock: intPtr(15)},
	{Name: "Switch 24 Puertos", Category: entity.CategoryNetworking, Brand: "Reyee", Model: "RG-NBS3100", Status: entity.StatusDisponible},
	{Name: "Cámara Domo 4MP", Category: entity.CategoryCCTV, Brand: "Hikvision", Model: "DS-2CD1143G0", Stock: intPtr(8)},
	{Name: "Router Wi-Fi 6", Category: entity.CategoryNetworking, Brand: "TP-Link", Model: "Archer AX10", Status: entity.StatusEnUso, Location: "Oficina Gerencia"},
	{Name: "NVR 8 Canales", Category: entity.CategoryCCTV, Brand: "Dahua", Model: "NVR4108", Status: entity.StatusReparacion},
}

// SeedUseCase borra y vuelve a cargar usuarios o equipos de demostración.
type SeedUseCase struct {
	users     repository.UserRepository
	equipment repository.EquipmentRepository
	registrar Registrar
	creator   EquipmentCreator
}

// NewSeedUseCase construye el caso de uso.
func NewSeedUseCase(
	users repository.UserRepository,
	equipment repository.EquipmentRepository,
	registrar Registrar,
	creator EquipmentCreator,
) *SeedUseCase {
	return &SeedUseCase{
		users:     users,
		equipment: equipment,
		registrar: registrar,
		creator:   creator,
	}
}

// SeedUsers reemplaza todos los usuarios por DemoUsers y devuelve cuántos creó.
func (uc *SeedUseCase) SeedUsers(ctx context.Context) (int, error) {
	if err := uc.users.DeleteAll(ctx); err != nil {
		return 0, fmt.Errorf("seed: borrar usuarios: %w", err)
	}
	for i, u := range DemoUsers {
		if err := uc.registrar.Register(ctx, u); err != nil {
			return i, fmt.Errorf("seed: registrar %s: %w", u.Email, err)
		}
	}
	return len(DemoUsers), nil
}

// SeedEquipment reemplaza todos los equipos por DemoEquipment y devuelve cuántos creó.
func (uc *SeedUseCase) SeedEquipment(ctx context.Context) (int, error) {
	if err := uc.equipment.DeleteAll(ctx); err != nil {
		return 0, fmt.Errorf("seed: borrar equipos: %w", err)
	}
	for i, e := range DemoEquipment {
		if _, err := uc.creator.Create(ctx, e); err != nil {
			return i, fmt.Errorf("seed: crear %q: %w", e.Name, err)
		}
	}
	return len(DemoEquipment), nil
}

func intPtr(i int) *int { return &i }
