package handler

import (
	"net/http"
	"time"

	"github.com/osse101/StrideShop_Go/internal/domain"
	"github.com/osse101/StrideShop_Go/internal/logger"
	"github.com/osse101/StrideShop_Go/internal/shop"
)

// ShopHandler serves the per-user daily shop
type ShopHandler struct {
	shopService shop.Service
}

// NewShopHandler creates a new shop handler
func NewShopHandler(shopService shop.Service) *ShopHandler {
	return &ShopHandler{shopService: shopService}
}

// ShopResponse is the user's current shop
type ShopResponse struct {
	Slots         []domain.ShopSlot `json:"slots"`
	LastResetDate time.Time         `json:"lastResetDate"`
	NextResetAt   time.Time         `json:"nextResetAt"`
}

// PurchaseRequest buys one slot of the caller's shop
type PurchaseRequest struct {
	SlotID string `json:"slotId" validate:"required,max=64,excludesall=\x00\n\r\t"`
}

// HandleGetShop returns the caller's shop, rotating it when the window elapsed
// @Summary Get daily shop
// @Description Returns the current offers. The first read after the 24h window regenerates the shop.
// @Tags shop
// @Produce json
// @Success 200 {object} ShopResponse
// @Failure 401 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Failure 503 {object} ErrorResponse
// @Router /api/v1/shop [get]
// @Security BearerAuth
func (h *ShopHandler) HandleGetShop(w http.ResponseWriter, r *http.Request) {
	userID, ok := requireUserID(w, r)
	if !ok {
		return
	}

	state, err := h.shopService.GetShop(r.Context(), userID)
	if err != nil {
		respondServiceError(w, r, "Get shop", err)
		return
	}

	slots := state.Slots
	if slots == nil {
		slots = []domain.ShopSlot{}
	}

	logger.FromContext(r.Context()).Debug(LogMsgShopServed, "user_id", userID, "slots", len(slots))
	respondJSON(w, http.StatusOK, ShopResponse{
		Slots:         slots,
		LastResetDate: state.LastResetDate,
		NextResetAt:   state.NextResetAt(),
	})
}

// HandlePurchase buys a slot
// @Summary Purchase a shop slot
// @Description Atomically debits the slot price, marks the slot purchased and adds the item to the inventory.
// @Tags shop
// @Accept json
// @Produce json
// @Param request body PurchaseRequest true "Slot to buy"
// @Success 200 {object} shop.PurchaseResult
// @Failure 400 {object} ValidationErrorResponse
// @Failure 402 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Failure 409 {object} ErrorResponse
// @Router /api/v1/shop/purchase [post]
// @Security BearerAuth
func (h *ShopHandler) HandlePurchase(w http.ResponseWriter, r *http.Request) {
	userID, ok := requireUserID(w, r)
	if !ok {
		return
	}

	var req PurchaseRequest
	if err := DecodeAndValidateRequest(r, w, &req, "Purchase"); err != nil {
		return
	}

	result, err := h.shopService.Purchase(r.Context(), userID, req.SlotID)
	if err != nil {
		respondServiceError(w, r, "Purchase", err)
		return
	}

	logger.FromContext(r.Context()).Info(LogMsgPurchaseCompleted,
		"user_id", userID,
		"slot_id", req.SlotID,
		"balance", result.Balance)
	respondJSON(w, http.StatusOK, result)
}

// HandleGetCountdown reports the time left until the next rotation
// @Summary Shop countdown
// @Tags shop
// @Produce json
// @Success 200 {object} shop.Countdown
// @Failure 404 {object} ErrorResponse
// @Router /api/v1/shop/countdown [get]
// @Security BearerAuth
func (h *ShopHandler) HandleGetCountdown(w http.ResponseWriter, r *http.Request) {
	userID, ok := requireUserID(w, r)
	if !ok {
		return
	}

	countdown, err := h.shopService.GetCountdown(r.Context(), userID)
	if err != nil {
		respondServiceError(w, r, "Get countdown", err)
		return
	}

	respondJSON(w, http.StatusOK, countdown)
}
