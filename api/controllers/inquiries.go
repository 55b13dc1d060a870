package controllers

import (
	"net/http"
	"strings"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"

	"github.com/drivelinehq/driveline-backend/api/responses"
	"github.com/drivelinehq/driveline-backend/api/validators"
	"github.com/drivelinehq/driveline-backend/internal/engagement"
	"github.com/drivelinehq/driveline-backend/pkg/enums"
	pkgerrors "github.com/drivelinehq/driveline-backend/pkg/errors"
	"github.com/drivelinehq/driveline-backend/pkg/logger"
)

type createInquiryRequest struct {
	CarID    string `json:"car_id" validate:"required,uuid4"`
	DealerID string `json:"dealer_id" validate:"required,uuid4"`
	Message  string `json:"message" validate:"required"`
}

type updateInquiryRequest struct {
	Message *string `json:"message,omitempty"`
	Status  *string `json:"status,omitempty"`
}

// InquiryCreate records a pending inquiry from the authenticated user.
func InquiryCreate(svc engagement.Service, logg *logger.Logger) http.HandlerFunc {
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

		var payload createInquiryRequest
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

		inquiry, err := svc.CreateInquiry(r.Context(), userID, carID, dealerID, payload.Message)
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		responses.WriteSuccessStatus(w, http.StatusCreated, inquiry)
	}
}

// InquiryUpdate patches an inquiry the caller owns or is addressed to.
func InquiryUpdate(svc engagement.Service, logg *logger.Logger) http.HandlerFunc {
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

		inquiryID, err := uuid.Parse(strings.TrimSpace(chi.URLParam(r, "inquiryId")))
		if err != nil {
			responses.WriteError(r.Context(), logg, w, pkgerrors.Wrap(pkgerrors.CodeValidation, err, "invalid inquiry id"))
			return
		}

		var payload updateInquiryRequest
		if err := validators.DecodeJSONBody(r, &payload); err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		patch := engagement.InquiryPatch{Message: payload.Message}
		if payload.Status != nil {
			parsed, err := enums.ParseInquiryStatus(strings.TrimSpace(*payload.Status))
			if err != nil {
				responses.WriteError(r.Context(), logg, w, pkgerrors.Wrap(pkgerrors.CodeValidation, err, "invalid status"))
				return
			}
			patch.Status = &parsed
		}

		inquiry, err := svc.UpdateInquiry(r.Context(), userID, inquiryID, patch)
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		responses.WriteSuccess(w, inquiry)
	}
}
