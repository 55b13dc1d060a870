package controllers

import (
	"net/http"
	"strings"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"

	"github.com/drivelinehq/driveline-backend/api/responses"
	"github.com/drivelinehq/driveline-backend/internal/engagement"
	pkgerrors "github.com/drivelinehq/driveline-backend/pkg/errors"
	"github.com/drivelinehq/driveline-backend/pkg/logger"
)

// FavoriteToggle flips the marker and reports the resulting state.
func FavoriteToggle(svc engagement.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if svc == nil {
			responses.WriteError(r.Context(), logg, w, pkgerrors.New(pkgerrors.CodeInternal, "engagement service unavailable"))
			return
		}

		userID, err := currentUserID(r)
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		carID, err := uuid.Parse(strings.TrimSpace(chi.URLParam(r, "carId")))
		if err != nil {
			responses.WriteError(r.Context(), logg, w, pkgerrors.Wrap(pkgerrors.CodeValidation, err, "invalid car id"))
			return
		}

		favorited, err := svc.ToggleFavorite(r.Context(), userID, carID)
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		responses.WriteSuccess(w, map[string]bool{"favorited": favorited})
	}
}

// FavoriteStatus reports whether the caller has favorited the car.
func FavoriteStatus(svc engagement.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if svc == nil {
			responses.WriteError(r.Context(), logg, w, pkgerrors.New(pkgerrors.CodeInternal, "engagement service unavailable"))
			return
		}

		userID, err := currentUserID(r)
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		carID, err := uuid.Parse(strings.TrimSpace(chi.URLParam(r, "carId")))
		if err != nil {
			responses.WriteError(r.Context(), logg, w, pkgerrors.Wrap(pkgerrors.CodeValidation, err, "invalid car id"))
			return
		}

		responses.WriteSuccess(w, map[string]bool{"favorited": svc.IsFavorite(r.Context(), userID, carID)})
	}
}

// EngagementList returns the caller's inquiries, test drives, and favorites.
func EngagementList(svc engagement.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if svc == nil {
			responses.WriteError(r.Context(), logg, w, pkgerrors.New(pkgerrors.CodeInternal, "engagement service unavailable"))
			return
		}

		userID, err := currentUserID(r)
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		dto, err := svc.ListFor(r.Context(), userID)
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		responses.WriteSuccess(w, dto)
	}
}
