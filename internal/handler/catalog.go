package handler

import (
	"net/http"

	"github.com/osse101/StrideShop_Go/internal/catalog"
	"github.com/osse101/StrideShop_Go/internal/domain"
)

// CatalogItemResponse is a catalog item with the price it sells for in the shop
type CatalogItemResponse struct {
	domain.CatalogItem
	ShopPrice int `json:"shop_price"`
}

// HandleGetCatalog lists the items that can appear in a shop rotation
// @Summary List sellable catalog
// @Tags catalog
// @Produce json
// @Success 200 {array} CatalogItemResponse
// @Failure 503 {object} ErrorResponse
// @Router /api/v1/catalog [get]
// @Security BearerAuth
func HandleGetCatalog(catalogService catalog.Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		items, err := catalogService.ListSellable(r.Context())
		if err != nil {
			respondServiceError(w, r, ErrMsgListCatalogFailed, err)
			return
		}

		out := make([]CatalogItemResponse, 0, len(items))
		for _, item := range items {
			if !item.IsSellable() {
				continue
			}
			out = append(out, CatalogItemResponse{
				CatalogItem: item,
				ShopPrice:   domain.PriceFor(item),
			})
		}

		respondJSON(w, http.StatusOK, out)
	}
}
