package users

import (
	"time"

	"github.com/eport-labs/asset-manager-backend/pkg/db/models"
	"github.com/eport-labs/asset-manager-backend/pkg/enums"
	"github.com/google/uuid"
)

// UserSummaryDTO is the admin-facing row for the user administration table.
type UserSummaryDTO struct {
	ID        uuid.UUID  `json:"id"`
	FullName  *string    `json:"full_name,omitempty"`
	Role      enums.Role `json:"role"`
	CreatedAt time.Time  `json:"created_at"`
}

// CreateUserRequest is the payload accepted from administrators.
type CreateUserRequest struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required,min=8"`
	Role     string `json:"role" validate:"required,oneof=admin user"`
}

// UpdateRoleRequest carries the new role for an existing user.
type UpdateRoleRequest struct {
	Role string `json:"role" validate:"required,oneof=admin user"`
}

// CreateUserStatus tags how far the two-phase provisioning flow got.
type CreateUserStatus string

const (
	CreateUserCompleted          CreateUserStatus = "completed"
	CreateUserPartiallyCompleted CreateUserStatus = "partially_completed"
	CreateUserFailed             CreateUserStatus = "failed"
)

// CreateUserOutcome reports the result of provisioning a user. The flow is
// deliberately non-atomic: the account (with its default profile) is created
// first, then the profile is updated with the display name and role. A
// failure in the second phase leaves a usable account behind, so the outcome
// carries the id and the stage that failed instead of pretending atomicity.
type CreateUserOutcome struct {
	Status    CreateUserStatus `json:"status"`
	AccountID *uuid.UUID       `json:"account_id,omitempty"`
	Stage     string           `json:"stage,omitempty"`
	Warning   string           `json:"warning,omitempty"`
}

func summaryFromModel(p models.Profile) UserSummaryDTO {
	return UserSummaryDTO{
		ID:        p.ID,
		FullName:  p.FullName,
		Role:      p.Role,
		CreatedAt: p.CreatedAt,
	}
}
