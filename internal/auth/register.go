package auth

import (
	"context"
	"errors"
	"strings"

	"github.com/eport-labs/asset-manager-backend/internal/accounts"
	"github.com/eport-labs/asset-manager-backend/internal/profiles"
	"github.com/eport-labs/asset-manager-backend/pkg/config"
	"github.com/eport-labs/asset-manager-backend/pkg/db"
	"github.com/eport-labs/asset-manager-backend/pkg/enums"
	pkgerrors "github.com/eport-labs/asset-manager-backend/pkg/errors"
	"github.com/eport-labs/asset-manager-backend/pkg/security"
	"gorm.io/gorm"
)

// RegisterService handles the self sign-up transaction.
type RegisterService interface {
	Register(ctx context.Context, req RegisterRequest) error
}

// RegisterServiceParams packages the dependencies for the registration flow.
type RegisterServiceParams struct {
	DB             *db.Client
	PasswordConfig config.PasswordConfig
}

type registerService struct {
	db          *db.Client
	passwordCfg config.PasswordConfig
}

// NewRegisterService builds a registration service with the provided dependencies.
func NewRegisterService(params RegisterServiceParams) (RegisterService, error) {
	if params.DB == nil {
		return nil, pkgerrors.New(pkgerrors.CodeInternal, "database client required")
	}
	return &registerService{
		db:          params.DB,
		passwordCfg: params.PasswordConfig,
	}, nil
}

// Register creates the account and its default profile in one transaction.
// New sign-ups always start with the user role; promotion is an admin action.
func (s *registerService) Register(ctx context.Context, req RegisterRequest) error {
	email := strings.ToLower(strings.TrimSpace(req.Email))
	if email == "" {
		return pkgerrors.New(pkgerrors.CodeValidation, "email is required")
	}

	passwordHash, err := security.HashPassword(req.Password, s.passwordCfg)
	if err != nil {
		return pkgerrors.Wrap(pkgerrors.CodeInternal, err, "hash password")
	}

	var fullName *string
	if trimmed := strings.TrimSpace(req.FullName); trimmed != "" {
		fullName = &trimmed
	}

	return s.db.WithTx(ctx, func(tx *gorm.DB) error {
		accountRepo := accounts.NewRepository(tx)
		profileRepo := profiles.NewRepository(tx)

		if _, err := accountRepo.FindByEmail(ctx, email); err == nil {
			return pkgerrors.New(pkgerrors.CodeConflict, "email already registered")
		} else if err != nil && !errors.Is(err, gorm.ErrRecordNotFound) {
			return pkgerrors.Wrap(pkgerrors.CodeInternal, err, "check account email")
		}

		account, err := accountRepo.Create(ctx, accounts.CreateAccountDTO{
			Email:        email,
			PasswordHash: passwordHash,
		})
		if err != nil {
			return pkgerrors.Wrap(pkgerrors.CodeInternal, err, "create account")
		}

		if _, err := profileRepo.Create(ctx, profiles.CreateProfileDTO{
			AccountID: account.ID,
			FullName:  fullName,
			Role:      enums.RoleUser,
		}); err != nil {
			return pkgerrors.Wrap(pkgerrors.CodeInternal, err, "create profile")
		}
		return nil
	})
}
