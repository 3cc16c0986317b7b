package controllers

import (
	"net/http"

	"github.com/eport-labs/asset-manager-backend/api/responses"
	"github.com/eport-labs/asset-manager-backend/api/validators"
	"github.com/eport-labs/asset-manager-backend/internal/refdata"
	pkgerrors "github.com/eport-labs/asset-manager-backend/pkg/errors"
	"github.com/eport-labs/asset-manager-backend/pkg/logger"
)

// CategoryOptions lists the categories available to asset forms.
func CategoryOptions(svc refdata.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if svc == nil {
			responses.WriteError(r.Context(), logg, w, pkgerrors.New(pkgerrors.CodeInternal, "reference data service unavailable"))
			return
		}

		options, err := svc.ListCategories(r.Context())
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}
		responses.WriteSuccess(w, options)
	}
}

// DepartmentOptions lists the departments available to asset forms.
func DepartmentOptions(svc refdata.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if svc == nil {
			responses.WriteError(r.Context(), logg, w, pkgerrors.New(pkgerrors.CodeInternal, "reference data service unavailable"))
			return
		}

		options, err := svc.ListDepartments(r.Context())
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}
		responses.WriteSuccess(w, options)
	}
}

// AdminCreateCategory adds a category and returns the refreshed list.
func AdminCreateCategory(svc refdata.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if svc == nil {
			responses.WriteError(r.Context(), logg, w, pkgerrors.New(pkgerrors.CodeInternal, "reference data service unavailable"))
			return
		}

		var body refdata.CreateOptionRequest
		if err := validators.DecodeJSONBody(r, &body); err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		options, err := svc.CreateCategory(r.Context(), body.Name)
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}
		responses.WriteSuccessStatus(w, http.StatusCreated, options)
	}
}

// AdminCreateDepartment adds a department and returns the refreshed list.
func AdminCreateDepartment(svc refdata.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if svc == nil {
			responses.WriteError(r.Context(), logg, w, pkgerrors.New(pkgerrors.CodeInternal, "reference data service unavailable"))
			return
		}

		var body refdata.CreateOptionRequest
		if err := validators.DecodeJSONBody(r, &body); err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		options, err := svc.CreateDepartment(r.Context(), body.Name)
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}
		responses.WriteSuccessStatus(w, http.StatusCreated, options)
	}
}
