// Package medicinerepo provides data transfer objects and mapping functions
// for medicine persistence. It implements the repository pattern for the
// medicine catalog aggregate, converting between domain entities and their
// database representation.
package medicinerepo

import (
	"pharmacy/internal/core/domain/model/kernel"
	"pharmacy/internal/core/domain/model/medicine"

	"github.com/google/uuid"
)

// MedicineDTO represents the database structure for persisting medicine
// aggregates. Price is stored in minor currency units.
type MedicineDTO struct {
	ID          uuid.UUID `gorm:"type:uuid;primaryKey"`
	Name        string    `gorm:"index"`
	Brand       string
	Price       int64
	Stock       int
	Description string
	IsActive    bool `gorm:"index"`
}

// TableName specifies the database table name for medicine entities.
func (MedicineDTO) TableName() string {
	return "medicines"
}

// fromDomain converts a medicine domain aggregate to its database
// representation.
func fromDomain(med *medicine.Medicine) MedicineDTO {
	return MedicineDTO{
		ID:          med.ID().Bytes(),
		Name:        med.Name(),
		Brand:       med.Brand(),
		Price:       med.Price().Minor(),
		Stock:       med.Stock(),
		Description: med.Description(),
		IsActive:    med.IsActive(),
	}
}

// toDomain converts a database DTO to a medicine domain aggregate.
func toDomain(dto MedicineDTO) (*medicine.Medicine, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}

	price, err := kernel.NewMoney(dto.Price)
	if err != nil {
		return nil, err
	}

	return medicine.RestoreMedicine(id, dto.Name, dto.Brand, price, dto.Stock, dto.Description, dto.IsActive)
}
