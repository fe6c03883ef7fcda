// Package accountrepo provides data transfer objects and mapping functions
// for account persistence.
package accountrepo

import (
	"pharmacy/internal/core/domain/model/account"
	"pharmacy/internal/core/domain/model/kernel"

	"github.com/google/uuid"
)

// AccountDTO represents the database structure for persisting account
// aggregates. Role is stored as its string name.
type AccountDTO struct {
	ID       uuid.UUID `gorm:"type:uuid;primaryKey"`
	Username string    `gorm:"uniqueIndex"`
	Role     string
	Phone    string
	Address  string
}

// TableName specifies the database table name for account entities.
func (AccountDTO) TableName() string {
	return "accounts"
}

// fromDomain converts an account domain aggregate to its database
// representation.
func fromDomain(acc *account.Account) AccountDTO {
	return AccountDTO{
		ID:       acc.ID().Bytes(),
		Username: acc.Username(),
		Role:     acc.Role().String(),
		Phone:    acc.Phone(),
		Address:  acc.Address(),
	}
}

// toDomain converts a database DTO to an account domain aggregate.
func toDomain(dto AccountDTO) (*account.Account, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}

	role, err := kernel.RoleFromString(dto.Role)
	if err != nil {
		return nil, err
	}

	return account.RestoreAccount(id, dto.Username, role, dto.Phone, dto.Address)
}
