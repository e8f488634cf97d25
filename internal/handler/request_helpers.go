package handler

import (
	"encoding/json"
	"net/http"

	"github.com/osse101/StrideShop_Go/internal/auth"
	"github.com/osse101/StrideShop_Go/internal/logger"
)

// ValidationErrorResponse defines the response structure for validation errors
type ValidationErrorResponse struct {
	Error  string            `json:"error"`
	Fields map[string]string `json:"fields"`
}

// DecodeAndValidateRequest decodes a JSON request body into req and validates it.
// If it returns an error the response has already been written and the handler
// should return.
//
//	var req PurchaseRequest
//	if err := DecodeAndValidateRequest(r, w, &req, "Purchase"); err != nil {
//	    return
//	}
func DecodeAndValidateRequest(r *http.Request, w http.ResponseWriter, req interface{}, actionName string) error {
	log := logger.FromContext(r.Context())

	dec := json.NewDecoder(r.Body)
	dec.DisallowUnknownFields()
	if err := dec.Decode(req); err != nil {
		log.Warn(LogMsgDecodeFailed, "action", actionName, "error", err)
		respondError(w, http.StatusBadRequest, ErrMsgInvalidRequest)
		return err
	}

	if err := GetValidator().ValidateStruct(req); err != nil {
		log.Warn(LogMsgValidationFailed, "action", actionName, "error", err)
		respondJSON(w, http.StatusBadRequest, ValidationErrorResponse{
			Error:  ErrMsgInvalidRequestSummary,
			Fields: FormatValidationError(err),
		})
		return err
	}

	return nil
}

// requireUserID returns the authenticated user id. When the auth middleware did
// not run it writes 401 and returns false.
func requireUserID(w http.ResponseWriter, r *http.Request) (string, bool) {
	userID := auth.UserIDFromContext(r.Context())
	if userID == "" {
		logger.FromContext(r.Context()).Error(LogMsgMissingIdentity, "path", r.URL.Path)
		respondError(w, http.StatusUnauthorized, ErrMsgMissingUserIdentity)
		return "", false
	}
	return userID, true
}
