package handlers

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/Spidey0819/Tutorial-7/api"
	"github.com/Spidey0819/Tutorial-7/store"
	"github.com/tedsuo/rata"
)

type ProductsDelete struct {
	Store         store.ProductStore
	ErrorResponse errorResponse
}

func NewProductsDelete(productStore store.ProductStore, errorResponse errorResponse) *ProductsDelete {
	return &ProductsDelete{
		Store:         productStore,
		ErrorResponse: errorResponse,
	}
}

func (h *ProductsDelete) ServeHTTP(w http.ResponseWriter, req *http.Request) {
	logger := getLogger(req)
	logger = logger.Session("products-delete")

	if h.Store == nil {
		err := errors.New("product store is not available")
		h.ErrorResponse.ServiceUnavailable(logger, w, err, "Service temporarily unavailable")
		return
	}

	guid := rata.Param(req, "id")
	deletedProduct, err := h.Store.Delete(guid)
	if err != nil {
		if err == store.ErrNotFound {
			h.ErrorResponse.NotFound(logger, w, err, "Product not found")
			return
		}
		h.ErrorResponse.InternalServerError(logger, w, err, "Internal server error")
		return
	}

	responseBytes, err := json.Marshal(api.ProductDeletedResponse{
		Message: "Product deleted successfully",
		DeletedProduct: api.DeletedProduct{
			GUID:  deletedProduct.GUID,
			Title: deletedProduct.Title,
		},
	})
	if err != nil {
		h.ErrorResponse.InternalServerError(logger, w, err, "Internal server error")
		return
	}

	w.Write(responseBytes)
}
