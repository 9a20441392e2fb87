package handlers

import (
	"encoding/json"
	"errors"
	"io/ioutil"
	"net/http"

	"github.com/Spidey0819/Tutorial-7/api"
	"github.com/Spidey0819/Tutorial-7/store"
	"github.com/tedsuo/rata"
)

type ProductsUpdate struct {
	Store         store.ProductStore
	Mapper        api.ProductMapper
	ErrorResponse errorResponse
}

func NewProductsUpdate(productStore store.ProductStore, mapper api.ProductMapper, errorResponse errorResponse) *ProductsUpdate {
	return &ProductsUpdate{
		Store:         productStore,
		Mapper:        mapper,
		ErrorResponse: errorResponse,
	}
}

func (h *ProductsUpdate) ServeHTTP(w http.ResponseWriter, req *http.Request) {
	logger := getLogger(req)
	logger = logger.Session("products-update")

	if h.Store == nil {
		err := errors.New("product store is not available")
		h.ErrorResponse.ServiceUnavailable(logger, w, err, "Service temporarily unavailable")
		return
	}

	guid := rata.Param(req, "id")

	requestBytes, err := ioutil.ReadAll(req.Body)
	if err != nil {
		h.ErrorResponse.InternalServerError(logger, w, err, "Internal server error")
		return
	}

	update, err := h.Mapper.AsProductUpdate(requestBytes)
	if err != nil {
		switch err {
		case api.ErrNoData:
			h.ErrorResponse.BadRequest(logger, w, err, "No data provided")
		case api.ErrPriceInvalid, api.ErrPriceNotPositive:
			// a missing product outranks a bad price
			_, lookupErr := h.Store.ByGUID(guid)
			if lookupErr == store.ErrNotFound {
				h.ErrorResponse.NotFound(logger, w, lookupErr, "Product not found")
				return
			}
			if lookupErr != nil {
				h.ErrorResponse.InternalServerError(logger, w, lookupErr, "Internal server error")
				return
			}
			description := "Invalid price"
			if err == api.ErrPriceNotPositive {
				description = "Price must be positive"
			}
			h.ErrorResponse.BadRequest(logger, w, err, description)
		default:
			h.ErrorResponse.BadRequest(logger, w, err, "No data provided")
		}
		return
	}

	updatedProduct, err := h.Store.Update(guid, update)
	if err != nil {
		if err == store.ErrNotFound {
			h.ErrorResponse.NotFound(logger, w, err, "Product not found")
			return
		}
		h.ErrorResponse.InternalServerError(logger, w, err, "Internal server error")
		return
	}

	responseBytes, err := json.Marshal(api.ProductResponse{
		Message: "Product updated successfully",
		Product: api.MapStoreProduct(updatedProduct),
	})
	if err != nil {
		h.ErrorResponse.InternalServerError(logger, w, err, "Internal server error")
		return
	}

	w.Write(responseBytes)
}
