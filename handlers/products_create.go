package handlers

import (
	"encoding/json"
	"errors"
	"io/ioutil"
	"net/http"

	"github.com/Spidey0819/Tutorial-7/api"
	"github.com/Spidey0819/Tutorial-7/store"
)

type ProductsCreate struct {
	Store         store.ProductStore
	Mapper        api.ProductMapper
	ErrorResponse errorResponse
}

func NewProductsCreate(productStore store.ProductStore, mapper api.ProductMapper, errorResponse errorResponse) *ProductsCreate {
	return &ProductsCreate{
		Store:         productStore,
		Mapper:        mapper,
		ErrorResponse: errorResponse,
	}
}

func (h *ProductsCreate) ServeHTTP(w http.ResponseWriter, req *http.Request) {
	logger := getLogger(req)
	logger = logger.Session("products-create")

	if h.Store == nil {
		err := errors.New("product store is not available")
		h.ErrorResponse.ServiceUnavailable(logger, w, err, "Service temporarily unavailable")
		return
	}

	requestBytes, err := ioutil.ReadAll(req.Body)
	if err != nil {
		h.ErrorResponse.InternalServerError(logger, w, err, "Internal server error")
		return
	}

	product, err := h.Mapper.AsNewProduct(requestBytes)
	if err != nil {
		if validationErr, ok := err.(api.ValidationError); ok {
			h.ErrorResponse.BadRequest(logger, w, validationErr, "Validation failed")
			return
		}
		h.ErrorResponse.BadRequest(logger, w, err, "No data provided")
		return
	}

	currentUser := getCurrentUser(req)
	product.CreatedBy = currentUser.ID()

	createdProduct, err := h.Store.Create(product)
	if err != nil {
		h.ErrorResponse.InternalServerError(logger, w, err, "Internal server error")
		return
	}

	responseBytes, err := json.Marshal(api.ProductResponse{
		Message: "Product created successfully",
		Product: api.MapStoreProduct(createdProduct),
	})
	if err != nil {
		h.ErrorResponse.InternalServerError(logger, w, err, "Internal server error")
		return
	}

	w.WriteHeader(http.StatusCreated)
	w.Write(responseBytes)
}
