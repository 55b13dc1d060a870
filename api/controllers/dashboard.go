package controllers

import (
	"net/http"

	"github.com/drivelinehq/driveline-backend/api/responses"
	"github.com/drivelinehq/driveline-backend/internal/dashboard"
	pkgerrors "github.com/drivelinehq/driveline-backend/pkg/errors"
	"github.com/drivelinehq/driveline-backend/pkg/logger"
)

// DealerStats returns the authenticated dealer's inventory aggregates.
func DealerStats(svc dashboard.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if svc == nil {
			responses.WriteError(r.Context(), logg, w, pkgerrors.New(pkgerrors.CodeInternal, "dashboard service unavailable"))
			return
		}

		dealerID, err := currentUserID(r)
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		stats, err := svc.StatsFor(r.Context(), dealerID)
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		responses.WriteSuccess(w, stats)
	}
}
