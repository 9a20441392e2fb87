package api

import (
	"fmt"
	"strconv"
	"strings"

	"code.cloudfoundry.org/cf-networking-helpers/marshal"
	"github.com/Spidey0819/Tutorial-7/store"
)

const defaultProductImage = "https://via.placeholder.com/300x200"

type productMapper struct {
	Unmarshaler marshal.Unmarshaler
}

func NewProductMapper(unmarshaler marshal.Unmarshaler) ProductMapper {
	return &productMapper{
		Unmarshaler: unmarshaler,
	}
}

func (p *productMapper) AsNewProduct(bytes []byte) (store.Product, error) {
	payload, err := asPayload(p.Unmarshaler, bytes)
	if err != nil {
		return store.Product{}, err
	}

	fieldErrors := map[string]string{}

	title := stringField(payload, "title")
	if title == "" {
		fieldErrors["title"] = "Title is required"
	}

	description := stringField(payload, "description")
	if description == "" {
		fieldErrors["description"] = "Description is required"
	}

	// A missing price coerces to zero and fails the positive check, so
	// the required message never survives for it.
	priceRaw, priceSet := payload["price"]
	if !priceSet {
		priceRaw = float64(0)
	}
	price, convErr := asFloat(priceRaw)
	if convErr != nil {
		fieldErrors["price"] = "Price must be a valid number"
	} else if price <= 0 {
		fieldErrors["price"] = "Price must be a positive number"
	}

	if len(fieldErrors) > 0 {
		return store.Product{}, NewValidationError(fieldErrors)
	}

	image := defaultProductImage
	if raw, ok := payload["image"]; ok {
		if s, isString := raw.(string); isString {
			image = s
		}
	}

	return store.Product{
		Title:       strings.TrimSpace(title),
		Description: strings.TrimSpace(description),
		Price:       price,
		Image:       image,
	}, nil
}

func (p *productMapper) AsProductUpdate(bytes []byte) (store.ProductUpdate, error) {
	payload, err := asPayload(p.Unmarshaler, bytes)
	if err != nil {
		return store.ProductUpdate{}, err
	}

	update := store.ProductUpdate{}

	if raw, ok := payload["title"]; ok {
		if s, isString := raw.(string); isString {
			trimmed := strings.TrimSpace(s)
			update.Title = &trimmed
		}
	}

	if raw, ok := payload["description"]; ok {
		if s, isString := raw.(string); isString {
			trimmed := strings.TrimSpace(s)
			update.Description = &trimmed
		}
	}

	if raw, ok := payload["price"]; ok {
		price, convErr := asFloat(raw)
		if convErr != nil {
			return store.ProductUpdate{}, ErrPriceInvalid
		}
		if price <= 0 {
			return store.ProductUpdate{}, ErrPriceNotPositive
		}
		update.Price = &price
	}

	if raw, ok := payload["image"]; ok {
		if s, isString := raw.(string); isString {
			update.Image = &s
		}
	}

	return update, nil
}

func asFloat(value interface{}) (float64, error) {
	switch v := value.(type) {
	case float64:
		return v, nil
	case string:
		parsed, err := strconv.ParseFloat(strings.TrimSpace(v), 64)
		if err != nil {
			return 0, fmt.Errorf("parsing %q as number: %s", v, err)
		}
		return parsed, nil
	case bool:
		if v {
			return 1, nil
		}
		return 0, nil
	default:
		return 0, fmt.Errorf("cannot convert %T to number", value)
	}
}
