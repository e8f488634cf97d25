package handler

import (
	"context"
	"net/http"

	"github.com/osse101/StrideShop_Go/internal/catalog"
	"github.com/osse101/StrideShop_Go/internal/logger"
	"github.com/osse101/StrideShop_Go/internal/user"
)

// CatalogRefresher re-syncs the catalog config on demand
type CatalogRefresher interface {
	RunNow(ctx context.Context) (*catalog.SyncResult, error)
}

// AwardCoinsRequest credits coins earned outside the shop
type AwardCoinsRequest struct {
	UserID string `json:"user_id" validate:"required,max=128,excludesall=\x00\n\r\t"`
	Amount int    `json:"amount" validate:"min=1,max=1000000"`
	Reason string `json:"reason" validate:"omitempty,max=64,slug"`
}

// SyncCatalogResponse reports the outcome of a catalog sync
type SyncCatalogResponse struct {
	Message string `json:"message"`
	catalog.SyncResult
}

// HandleAwardCoins credits a user's balance (admin only)
// @Summary Award coins
// @Description Credits coins earned from activity and journals the credit in the ledger
// @Tags admin
// @Accept json
// @Produce json
// @Param request body AwardCoinsRequest true "Credit"
// @Success 200 {object} user.AwardResult
// @Failure 400 {object} ValidationErrorResponse
// @Failure 404 {object} ErrorResponse
// @Router /api/v1/admin/coins/award [post]
// @Security ApiKeyAuth
func HandleAwardCoins(userService user.Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req AwardCoinsRequest
		if err := DecodeAndValidateRequest(r, w, &req, "Award coins"); err != nil {
			return
		}

		result, err := userService.AwardCoins(r.Context(), req.UserID, req.Amount, req.Reason)
		if err != nil {
			respondServiceError(w, r, "Award coins", err)
			return
		}

		logger.FromContext(r.Context()).Info(LogMsgCoinsAwarded,
			"user_id", req.UserID,
			"amount", req.Amount,
			"balance", result.Balance)
		respondJSON(w, http.StatusOK, result)
	}
}

// HandleSyncCatalog reloads the catalog config file (admin only)
// @Summary Sync catalog
// @Description Reloads the catalog JSON config, upserts changed items and invalidates the cache
// @Tags admin
// @Produce json
// @Success 200 {object} SyncCatalogResponse
// @Failure 500 {object} ErrorResponse
// @Router /api/v1/admin/catalog/sync [post]
// @Security ApiKeyAuth
func HandleSyncCatalog(refresher CatalogRefresher) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		logger.FromContext(r.Context()).Info(LogMsgCatalogSynced)

		result, err := refresher.RunNow(r.Context())
		if err != nil {
			respondServiceError(w, r, ErrMsgSyncCatalogFailed, err)
			return
		}

		msg := MsgCatalogUnchanged
		if result.Changed {
			msg = MsgCatalogSynced
		}
		respondJSON(w, http.StatusOK, SyncCatalogResponse{Message: msg, SyncResult: *result})
	}
}
