package handlers

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/Spidey0819/Tutorial-7/api"
	"github.com/Spidey0819/Tutorial-7/store"
	"github.com/tedsuo/rata"
)

type ProductsShow struct {
	Store         store.ProductStore
	ErrorResponse errorResponse
}

func NewProductsShow(productStore store.ProductStore, errorResponse errorResponse) *ProductsShow {
	return &ProductsShow{
		Store:         productStore,
		ErrorResponse: errorResponse,
	}
}

func (h *ProductsShow) ServeHTTP(w http.ResponseWriter, req *http.Request) {
	logger := getLogger(req)
	logger = logger.Session("products-show")

	if h.Store == nil {
		err := errors.New("product store is not available")
		h.ErrorResponse.ServiceUnavailable(logger, w, err, "Service temporarily unavailable")
		return
	}

	guid := rata.Param(req, "id")
	product, err := h.Store.ByGUID(guid)
	if err != nil {
		if err == store.ErrNotFound {
			h.ErrorResponse.NotFound(logger, w, err, "Product not found")
			return
		}
		h.ErrorResponse.InternalServerError(logger, w, err, "Internal server error")
		return
	}

	responseBytes, err := json.Marshal(api.ProductResponse{
		Message: "Product retrieved successfully",
		Product: api.MapStoreProduct(product),
	})
	if err != nil {
		h.ErrorResponse.InternalServerError(logger, w, err, "Internal server error")
		return
	}

	w.Write(responseBytes)
}
