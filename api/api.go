package api

import (
	"errors"
	"fmt"
	"sort"
	"strings"

	"code.cloudfoundry.org/cf-networking-helpers/marshal"
	"github.com/Spidey0819/Tutorial-7/store"
)

//go:generate counterfeiter -o fakes/user_mapper.go --fake-name UserMapper . UserMapper
type UserMapper interface {
	AsAuthRegistration(bytes []byte) (store.User, error)
	AsRegistration(bytes []byte) (store.User, error)
	AsAuthCredentials(bytes []byte) (Credentials, error)
	AsCredentials(bytes []byte) (Credentials, error)
}

//go:generate counterfeiter -o fakes/product_mapper.go --fake-name ProductMapper . ProductMapper
type ProductMapper interface {
	AsNewProduct(bytes []byte) (store.Product, error)
	AsProductUpdate(bytes []byte) (store.ProductUpdate, error)
}

// ErrNoData covers empty, null and unparseable request bodies.
var ErrNoData = errors.New("no data provided")

// ErrCredentialsRequired is the email-and-password presence failure of
// the legacy login payload, which never reports per-field errors.
var ErrCredentialsRequired = errors.New("email and password are required")

var ErrPriceInvalid = errors.New("invalid price")

var ErrPriceNotPositive = errors.New("price must be positive")

// ValidationError carries per-field messages so the error response can
// render them under an "errors" key next to the summary.
type ValidationError struct {
	fieldErrors map[string]string
}

func NewValidationError(fieldErrors map[string]string) ValidationError {
	return ValidationError{
		fieldErrors: fieldErrors,
	}
}

func (v ValidationError) Error() string {
	fields := make([]string, 0, len(v.fieldErrors))
	for field := range v.fieldErrors {
		fields = append(fields, field)
	}
	sort.Strings(fields)
	return fmt.Sprintf("invalid fields: %s", strings.Join(fields, ", "))
}

func (v ValidationError) FieldErrors() map[string]string {
	return v.fieldErrors
}

type Credentials struct {
	Email    string
	Password string
}

type AuthUser struct {
	ID        string `json:"id"`
	Name      string `json:"name"`
	Email     string `json:"email"`
	CreatedAt string `json:"createdAt,omitempty"`
}

type RegisteredUser struct {
	ID        string `json:"id"`
	FullName  string `json:"fullName"`
	Email     string `json:"email"`
	Phone     string `json:"phone"`
	CreatedAt string `json:"createdAt"`
}

type LegacyUser struct {
	ID       string `json:"id"`
	FullName string `json:"fullName"`
	Email    string `json:"email"`
	Phone    string `json:"phone"`
}

// UserRecord mirrors the stored user document minus the password hash.
type UserRecord struct {
	MongoID   string `json:"_id"`
	Name      string `json:"name,omitempty"`
	FullName  string `json:"fullName,omitempty"`
	Email     string `json:"email"`
	Phone     string `json:"phone,omitempty"`
	CreatedAt string `json:"createdAt,omitempty"`
	IsActive  bool   `json:"isActive"`
}

type Product struct {
	MongoID     string  `json:"_id"`
	GUID        string  `json:"id"`
	Title       string  `json:"title"`
	Description string  `json:"description"`
	Price       float64 `json:"price"`
	Image       string  `json:"image"`
	CreatedBy   string  `json:"createdBy"`
	CreatedAt   string  `json:"createdAt,omitempty"`
	UpdatedAt   string  `json:"updatedAt,omitempty"`
}

type Pagination struct {
	CurrentPage  int   `json:"currentPage"`
	TotalPages   int   `json:"totalPages"`
	TotalItems   int64 `json:"totalItems"`
	ItemsPerPage int   `json:"itemsPerPage"`
	HasNext      bool  `json:"hasNext"`
	HasPrev      bool  `json:"hasPrev"`
}

type Filters struct {
	Keyword string `json:"keyword"`
	Sort    string `json:"sort"`
}

type AuthResponse struct {
	Message string   `json:"message"`
	Token   string   `json:"token,omitempty"`
	User    AuthUser `json:"user"`
}

type RegistrationResponse struct {
	Message string         `json:"message"`
	User    RegisteredUser `json:"user"`
}

type LegacyLoginResponse struct {
	Message string     `json:"message"`
	User    LegacyUser `json:"user"`
}

type UsersResponse struct {
	Message string       `json:"message"`
	Users   []UserRecord `json:"users"`
	Count   int          `json:"count"`
}

type UserResponse struct {
	Message string     `json:"message"`
	User    UserRecord `json:"user"`
}

type ProductsResponse struct {
	Message    string     `json:"message"`
	Products   []Product  `json:"products"`
	Pagination Pagination `json:"pagination"`
	Filters    Filters    `json:"filters"`
}

type ProductResponse struct {
	Message string  `json:"message"`
	Product Product `json:"product"`
}

type ProductDeletedResponse struct {
	Message        string         `json:"message"`
	DeletedProduct DeletedProduct `json:"deletedProduct"`
}

type DeletedProduct struct {
	GUID  string `json:"id"`
	Title string `json:"title"`
}

func asPayload(unmarshaler marshal.Unmarshaler, bytes []byte) (map[string]interface{}, error) {
	payload := map[string]interface{}{}
	err := unmarshaler.Unmarshal(bytes, &payload)
	if err != nil || len(payload) == 0 {
		return nil, ErrNoData
	}
	return payload, nil
}

func stringField(payload map[string]interface{}, key string) string {
	value, _ := payload[key].(string)
	return value
}
