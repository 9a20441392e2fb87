package api

import (
	"time"

	"github.com/Spidey0819/Tutorial-7/store"
)

func FormatTime(t time.Time) string {
	return t.UTC().Format(time.RFC3339)
}

func MapAuthUser(user store.User) AuthUser {
	return AuthUser{
		ID:    user.ID(),
		Name:  user.DisplayName(),
		Email: user.Email,
	}
}

// MapCreatedAuthUser includes createdAt, which only the registration
// response carries.
func MapCreatedAuthUser(user store.User) AuthUser {
	mapped := MapAuthUser(user)
	mapped.CreatedAt = FormatTime(user.CreatedAt)
	return mapped
}

func MapRegisteredUser(user store.User) RegisteredUser {
	return RegisteredUser{
		ID:        user.ID(),
		FullName:  user.FullName,
		Email:     user.Email,
		Phone:     user.Phone,
		CreatedAt: FormatTime(user.CreatedAt),
	}
}

func MapLegacyUser(user store.User) LegacyUser {
	fullName := user.FullName
	if fullName == "" {
		fullName = user.Name
	}
	return LegacyUser{
		ID:       user.ID(),
		FullName: fullName,
		Email:    user.Email,
		Phone:    user.Phone,
	}
}

func MapUserRecord(user store.User) UserRecord {
	record := UserRecord{
		MongoID:  user.ID(),
		Name:     user.Name,
		FullName: user.FullName,
		Email:    user.Email,
		Phone:    user.Phone,
		IsActive: user.IsActive,
	}
	if !user.CreatedAt.IsZero() {
		record.CreatedAt = FormatTime(user.CreatedAt)
	}
	return record
}

func MapUserRecords(users []store.User) []UserRecord {
	records := make([]UserRecord, len(users))
	for i, user := range users {
		records[i] = MapUserRecord(user)
	}
	return records
}

func MapStoreProduct(product store.Product) Product {
	mapped := Product{
		MongoID:     product.MongoID.Hex(),
		GUID:        product.GUID,
		Title:       product.Title,
		Description: product.Description,
		Price:       product.Price,
		Image:       product.Image,
		CreatedBy:   product.CreatedBy,
	}
	if !product.CreatedAt.IsZero() {
		mapped.CreatedAt = FormatTime(product.CreatedAt)
	}
	if product.UpdatedAt != nil {
		mapped.UpdatedAt = FormatTime(*product.UpdatedAt)
	}
	return mapped
}

func MapStoreProducts(products []store.Product) []Product {
	mapped := make([]Product, len(products))
	for i, product := range products {
		mapped[i] = MapStoreProduct(product)
	}
	return mapped
}

func BuildPagination(filter store.ProductFilter, totalItems int64) Pagination {
	page := filter.CurrentPage()
	limit := filter.PageSize()
	totalPages := int((totalItems + int64(limit) - 1) / int64(limit))
	return Pagination{
		CurrentPage:  page,
		TotalPages:   totalPages,
		TotalItems:   totalItems,
		ItemsPerPage: limit,
		HasNext:      page < totalPages,
		HasPrev:      page > 1,
	}
}
