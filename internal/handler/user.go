package handler

import (
	"net/http"

	"github.com/osse101/StrideShop_Go/internal/logger"
	"github.com/osse101/StrideShop_Go/internal/user"
)

// RegisterUserRequest creates the caller's account
type RegisterUserRequest struct {
	Username string `json:"username" validate:"required,max=50,excludesall=\x00\n\r\t"`
}

// HandleRegisterUser creates the user aggregate for the authenticated caller
// @Summary Register user
// @Description Creates the caller's account with the starting balance and an empty shop
// @Tags user
// @Accept json
// @Produce json
// @Param request body RegisterUserRequest true "Display name"
// @Success 201 {object} domain.User
// @Failure 400 {object} ValidationErrorResponse
// @Failure 409 {object} ErrorResponse
// @Router /api/v1/user/register [post]
// @Security BearerAuth
func HandleRegisterUser(userService user.Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		userID, ok := requireUserID(w, r)
		if !ok {
			return
		}

		var req RegisterUserRequest
		if err := DecodeAndValidateRequest(r, w, &req, "Register user"); err != nil {
			return
		}

		created, err := userService.Register(r.Context(), userID, req.Username)
		if err != nil {
			respondServiceError(w, r, "Register user", err)
			return
		}

		logger.FromContext(r.Context()).Info(LogMsgUserRegistered, "user_id", created.ID)
		respondJSON(w, http.StatusCreated, created)
	}
}

// HandleGetProfile returns balance, inventory and recent ledger
// @Summary Get profile
// @Tags user
// @Produce json
// @Success 200 {object} user.Profile
// @Failure 404 {object} ErrorResponse
// @Router /api/v1/user/profile [get]
// @Security BearerAuth
func HandleGetProfile(userService user.Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		userID, ok := requireUserID(w, r)
		if !ok {
			return
		}

		profile, err := userService.GetProfile(r.Context(), userID)
		if err != nil {
			respondServiceError(w, r, "Get profile", err)
			return
		}

		respondJSON(w, http.StatusOK, profile)
	}
}
