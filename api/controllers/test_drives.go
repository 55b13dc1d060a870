package controllers

import (
	"net/http"
	"strings"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"

	"github.com/drivelinehq/driveline-backend/api/responses"
	"github.com/drivelinehq/driveline-backend/api/validators"
	"github.com/drivelinehq/driveline-backend/internal/engagement"
	"github.com/drivelinehq/driveline-backend/pkg/enums"
	pkgerrors "github.com/drivelinehq/driveline-backend/pkg/errors"
	"github.com/drivelinehq/driveline-backend/pkg/logger"
)

type createTestDriveRequest struct {
	CarID    string    `json:"car_id" validate:"required,uuid4"`
	DealerID string    `json:"dealer_id" validate:"required,uuid4"`
	Date     time.Time `json:"date" validate:"required"`
	Notes    *string   `json:"notes,omitempty"`
}

type updateTestDriveRequest struct {
	Date   *time.Time `json:"date,omitempty"`
	Status *string    `json:"status,omitempty"`
	Notes  *string    `json:"notes,omitempty"`
}

// TestDriveCreate schedules a pending appointment for the authenticated user.
func TestDriveCreate(svc engagement.Service, logg *logger.Logger) http.HandlerFunc {
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

		var payload createTestDriveRequest
		if err := validators.DecodeJSONBody(r, &payload); err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		carID, err := uuid.Parse(payload.CarID)
		if err != nil {
			responses.WriteError(r.Context(), logg, w, pkgerrors.Wrap(pkgerrors.CodeValidation, err, "invalid car id"))
			return
		}
		dealerID, err := uuid.Parse(payload.DealerID)
		if err != nil {
			responses.WriteError(r.Context(), logg, w, pkgerrors.Wrap(pkgerrors.CodeValidation, err, "invalid dealer id"))
			return
		}

		testDrive, err := svc.ScheduleTestDrive(r.Context(), userID, carID, dealerID, payload.Date, payload.Notes)
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		responses.WriteSuccessStatus(w, http.StatusCreated, testDrive)
	}
}

// TestDriveUpdate patches a test drive the caller owns or is addressed to.
func TestDriveUpdate(svc engagement.Service, logg *logger.Logger) http.HandlerFunc {
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

		testDriveID, err := uuid.Parse(strings.TrimSpace(chi.URLParam(r, "testDriveId")))
		if err != nil {
			responses.WriteError(r.Context(), logg, w, pkgerrors.Wrap(pkgerrors.CodeValidation, err, "invalid test drive id"))
			return
		}

		var payload updateTestDriveRequest
		if err := validators.DecodeJSONBody(r, &payload); err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		patch := engagement.TestDrivePatch{Date: payload.Date, Notes: payload.Notes}
		if payload.Status != nil {
			parsed, err := enums.ParseTestDriveStatus(strings.TrimSpace(*payload.Status))
			if err != nil {
				responses.WriteError(r.Context(), logg, w, pkgerrors.Wrap(pkgerrors.CodeValidation, err, "invalid status"))
				return
			}
			patch.Status = &parsed
		}

		testDrive, err := svc.UpdateTestDrive(r.Context(), userID, testDriveID, patch)
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		responses.WriteSuccess(w, testDrive)
	}
}
