package store

import (
	"strings"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

type User struct {
	MongoID   primitive.ObjectID `bson:"_id,omitempty"`
	Name      string             `bson:"name,omitempty"`
	FullName  string             `bson:"fullName,omitempty"`
	Email     string             `bson:"email"`
	Phone     string             `bson:"phone,omitempty"`
	Password  string             `bson:"password,omitempty"`
	CreatedAt time.Time          `bson:"createdAt"`
	IsActive  bool               `bson:"isActive"`
}

func (u User) ID() string {
	return u.MongoID.Hex()
}

// DisplayName prefers the short name set by the auth signup flow and
// falls back to the fullName set by the legacy registration flow.
func (u User) DisplayName() string {
	if u.Name != "" {
		return u.Name
	}
	return u.FullName
}

type Product struct {
	MongoID     primitive.ObjectID `bson:"_id,omitempty"`
	GUID        string             `bson:"id"`
	Title       string             `bson:"title"`
	Description string             `bson:"description"`
	Price       float64            `bson:"price"`
	Image       string             `bson:"image"`
	CreatedBy   string             `bson:"createdBy"`
	CreatedAt   time.Time          `bson:"createdAt"`
	UpdatedAt   *time.Time         `bson:"updatedAt,omitempty"`
}

// ProductUpdate carries the fields of a partial update. Nil means the
// field was absent from the request and keeps its stored value.
type ProductUpdate struct {
	Title       *string
	Description *string
	Price       *float64
	Image       *string
}

type ProductFilter struct {
	Keyword string
	Sort    string
	Page    int
	Limit   int
}

func (f ProductFilter) CurrentPage() int {
	if f.Page < 1 {
		return 1
	}
	return f.Page
}

func (f ProductFilter) PageSize() int {
	if f.Limit < 1 || f.Limit > 100 {
		return 10
	}
	return f.Limit
}

func (f ProductFilter) Skip() int64 {
	return int64((f.CurrentPage() - 1) * f.PageSize())
}

// Query relies on the text index over title and description.
func (f ProductFilter) Query() bson.M {
	query := bson.M{}
	if f.Keyword != "" {
		query["$text"] = bson.M{"$search": f.Keyword}
	}
	return query
}

// SortDocument interprets a leading "-" as descending order. An empty
// sort expression disables sorting entirely.
func (f ProductFilter) SortDocument() bson.D {
	if f.Sort == "" {
		return nil
	}
	field := f.Sort
	direction := 1
	if strings.HasPrefix(field, "-") {
		field = strings.TrimPrefix(field, "-")
		direction = -1
	}
	return bson.D{{Key: field, Value: direction}}
}
