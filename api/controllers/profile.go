package controllers

import (
	"net/http"

	"github.com/eport-labs/asset-manager-backend/api/middleware"
	"github.com/eport-labs/asset-manager-backend/api/responses"
	"github.com/eport-labs/asset-manager-backend/internal/profiles"
	pkgerrors "github.com/eport-labs/asset-manager-backend/pkg/errors"
	"github.com/eport-labs/asset-manager-backend/pkg/logger"
	"github.com/google/uuid"
)

func callerID(r *http.Request) (uuid.UUID, error) {
	raw := middleware.UserIDFromContext(r.Context())
	if raw == "" {
		return uuid.Nil, pkgerrors.New(pkgerrors.CodeUnauthorized, "missing identity")
	}
	id, err := uuid.Parse(raw)
	if err != nil {
		return uuid.Nil, pkgerrors.Wrap(pkgerrors.CodeUnauthorized, err, "invalid identity")
	}
	return id, nil
}

// Me returns the profile of the authenticated caller.
func Me(svc profiles.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if svc == nil {
			responses.WriteError(r.Context(), logg, w, pkgerrors.New(pkgerrors.CodeInternal, "profile service unavailable"))
			return
		}

		id, err := callerID(r)
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		profile, err := svc.GetByID(r.Context(), id)
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}
		responses.WriteSuccess(w, profile)
	}
}
