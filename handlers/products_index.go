package handlers

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"
	"strings"

	"github.com/Spidey0819/Tutorial-7/api"
	"github.com/Spidey0819/Tutorial-7/store"
)

type ProductsIndex struct {
	Store         store.ProductStore
	ErrorResponse errorResponse
}

func NewProductsIndex(productStore store.ProductStore, errorResponse errorResponse) *ProductsIndex {
	return &ProductsIndex{
		Store:         productStore,
		ErrorResponse: errorResponse,
	}
}

func (h *ProductsIndex) ServeHTTP(w http.ResponseWriter, req *http.Request) {
	logger := getLogger(req)
	logger = logger.Session("products-index")

	if h.Store == nil {
		err := errors.New("product store is not available")
		h.ErrorResponse.ServiceUnavailable(logger, w, err, "Service temporarily unavailable")
		return
	}

	query := req.URL.Query()
	filter := store.ProductFilter{
		Keyword: strings.TrimSpace(query.Get("keyword")),
		Page:    intParam(query.Get("page"), 1),
		Limit:   intParam(query.Get("limit"), 10),
	}

	// an explicitly empty sort parameter disables sorting, only an
	// absent one falls back to newest-first
	filter.Sort = "-createdAt"
	if sortParams, ok := query["sort"]; ok && len(sortParams) > 0 {
		filter.Sort = sortParams[0]
	}

	products, totalItems, err := h.Store.List(filter)
	if err != nil {
		h.ErrorResponse.InternalServerError(logger, w, err, "Internal server error")
		return
	}

	responseBytes, err := json.Marshal(api.ProductsResponse{
		Message:    "Products retrieved successfully",
		Products:   api.MapStoreProducts(products),
		Pagination: api.BuildPagination(filter, totalItems),
		Filters: api.Filters{
			Keyword: filter.Keyword,
			Sort:    filter.Sort,
		},
	})
	if err != nil {
		h.ErrorResponse.InternalServerError(logger, w, err, "Internal server error")
		return
	}

	w.Write(responseBytes)
}

func intParam(raw string, defaultValue int) int {
	if raw == "" {
		return defaultValue
	}
	value, err := strconv.Atoi(raw)
	if err != nil {
		return defaultValue
	}
	return value
}
