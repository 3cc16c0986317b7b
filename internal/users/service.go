package users

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
	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Service defines the behavior needed by the user administration controllers.
type Service interface {
	ListUsers(ctx context.Context) ([]UserSummaryDTO, error)
	CreateUser(ctx context.Context, req CreateUserRequest) (CreateUserOutcome, error)
	UpdateRole(ctx context.Context, callerID, targetID uuid.UUID, req UpdateRoleRequest) (*profiles.ProfileDTO, error)
}

type service struct {
	db          *db.Client
	passwordCfg config.PasswordConfig
}

// ServiceParams packages the dependencies for the user administration flows.
type ServiceParams struct {
	DB             *db.Client
	PasswordConfig config.PasswordConfig
}

// NewService builds a user administration service with the provided dependencies.
func NewService(params ServiceParams) (Service, error) {
	if params.DB == nil {
		return nil, pkgerrors.New(pkgerrors.CodeInternal, "database client required")
	}
	return &service{
		db:          params.DB,
		passwordCfg: params.PasswordConfig,
	}, nil
}

func (s *service) ListUsers(ctx context.Context) ([]UserSummaryDTO, error) {
	repo := profiles.NewRepository(s.db.DB())
	list, err := repo.ListOrderedByCreation(ctx)
	if err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeInternal, err, "list profiles")
	}
	out := make([]UserSummaryDTO, 0, len(list))
	for _, p := range list {
		out = append(out, summaryFromModel(p))
	}
	return out, nil
}

// CreateUser provisions a user in two phases. Phase one creates the account
// and its default profile in one transaction. Phase two promotes the profile
// with the email as display name and the requested role. Phase two failing
// does not roll phase one back; the caller gets a partially_completed outcome
// and finishes the job via the role-update endpoint.
func (s *service) CreateUser(ctx context.Context, req CreateUserRequest) (CreateUserOutcome, error) {
	email := strings.ToLower(strings.TrimSpace(req.Email))
	if email == "" {
		return CreateUserOutcome{}, pkgerrors.New(pkgerrors.CodeValidation, "email is required")
	}
	role, err := enums.ParseRole(req.Role)
	if err != nil {
		return CreateUserOutcome{}, pkgerrors.New(pkgerrors.CodeValidation, "invalid role")
	}

	passwordHash, err := security.HashPassword(req.Password, s.passwordCfg)
	if err != nil {
		return CreateUserOutcome{}, pkgerrors.Wrap(pkgerrors.CodeInternal, err, "hash password")
	}

	var accountID uuid.UUID
	txErr := s.db.WithTx(ctx, func(tx *gorm.DB) error {
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
		accountID = account.ID

		if _, err := profileRepo.Create(ctx, profiles.CreateProfileDTO{
			AccountID: account.ID,
			Role:      enums.RoleUser,
		}); err != nil {
			return pkgerrors.Wrap(pkgerrors.CodeInternal, err, "create profile")
		}
		return nil
	})
	if txErr != nil {
		if typed := pkgerrors.As(txErr); typed != nil && typed.Code() == pkgerrors.CodeConflict {
			return CreateUserOutcome{Status: CreateUserFailed, Stage: "account"}, txErr
		}
		return CreateUserOutcome{Status: CreateUserFailed, Stage: "account"},
			pkgerrors.Wrap(pkgerrors.CodeInternal, txErr, "provision account")
	}

	profileRepo := profiles.NewRepository(s.db.DB())
	fullName := email
	if err := profileRepo.UpdateFullNameAndRole(ctx, accountID, &fullName, role); err != nil {
		return CreateUserOutcome{
			Status:    CreateUserPartiallyCompleted,
			AccountID: &accountID,
			Stage:     "profile",
			Warning:   "account created but profile update failed; set the role again",
		}, nil
	}

	return CreateUserOutcome{Status: CreateUserCompleted, AccountID: &accountID}, nil
}

// UpdateRole changes the target's role. Administrators cannot remove their
// own admin access; the check runs here, not in the UI.
func (s *service) UpdateRole(ctx context.Context, callerID, targetID uuid.UUID, req UpdateRoleRequest) (*profiles.ProfileDTO, error) {
	role, err := enums.ParseRole(req.Role)
	if err != nil {
		return nil, pkgerrors.New(pkgerrors.CodeValidation, "invalid role")
	}
	if callerID == targetID && role != enums.RoleAdmin {
		return nil, pkgerrors.New(pkgerrors.CodeForbidden, "cannot remove your own admin access")
	}

	repo := profiles.NewRepository(s.db.DB())
	if _, err := repo.FindByID(ctx, targetID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, pkgerrors.New(pkgerrors.CodeNotFound, "user not found")
		}
		return nil, pkgerrors.Wrap(pkgerrors.CodeInternal, err, "lookup profile")
	}

	if err := repo.UpdateRole(ctx, targetID, role); err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeInternal, err, "update role")
	}

	updated, err := repo.FindByID(ctx, targetID)
	if err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeInternal, err, "reload profile")
	}
	return profiles.FromModel(updated), nil
}
