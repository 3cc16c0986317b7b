package accounts

import (
	"github.com/eport-labs/asset-manager-backend/pkg/db/models"
	"github.com/google/uuid"
)

// CreateAccountDTO holds the data required by the repo to persist a new account.
type CreateAccountDTO struct {
	Email        string
	PasswordHash string
}

// ToModel assigns the id here rather than relying on the DB default: the
// profile row is keyed by it inside the same transaction.
func (c CreateAccountDTO) ToModel() *models.Account {
	return &models.Account{
		ID:           uuid.New(),
		Email:        c.Email,
		PasswordHash: c.PasswordHash,
	}
}
