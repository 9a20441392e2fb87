package store

import "errors"

// ErrNotFound is returned by lookups that match no document.
var ErrNotFound = errors.New("record not found")

//go:generate counterfeiter -o fakes/user_store.go --fake-name UserStore . UserStore
type UserStore interface {
	Create(user User) (User, error)
	ByEmail(email string) (User, error)
	ByID(id string) (User, error)
	All() ([]User, error)
	Count() (int64, error)
}

//go:generate counterfeiter -o fakes/product_store.go --fake-name ProductStore . ProductStore
type ProductStore interface {
	Create(product Product) (Product, error)
	ByGUID(guid string) (Product, error)
	Update(guid string, update ProductUpdate) (Product, error)
	Delete(guid string) (Product, error)
	List(filter ProductFilter) ([]Product, int64, error)
	Count() (int64, error)
}
