package store

import (
	"fmt"
	"time"

	"github.com/Spidey0819/Tutorial-7/db"
	uuid "github.com/nu7hatch/gouuid"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

const productsCollection = "products"

type guidGenerator interface {
	New() string
}

type GuidGenerator struct{}

func (g *GuidGenerator) New() string {
	guid, err := uuid.NewV4()
	if err != nil {
		// this only happens if the system can't make random numbers
		// we can't recover from this, so just crash
		panic(err)
	}
	return guid.String()
}

type MongoProductStore struct {
	Conn          *db.Connection
	GuidGenerator guidGenerator
}

func NewMongoProductStore(conn *db.Connection) *MongoProductStore {
	return &MongoProductStore{
		Conn:          conn,
		GuidGenerator: &GuidGenerator{},
	}
}

func (s *MongoProductStore) Create(product Product) (Product, error) {
	product.GUID = s.GuidGenerator.New()
	product.CreatedAt = time.Now().UTC()

	ctx, cancel := s.Conn.OperationContext()
	defer cancel()

	result, err := s.Conn.Collection(productsCollection).InsertOne(ctx, product)
	if err != nil {
		return Product{}, fmt.Errorf("inserting product: %s", err)
	}

	product.MongoID = result.InsertedID.(primitive.ObjectID)
	return product, nil
}

func (s *MongoProductStore) ByGUID(guid string) (Product, error) {
	ctx, cancel := s.Conn.OperationContext()
	defer cancel()

	var product Product
	err := s.Conn.Collection(productsCollection).FindOne(ctx, bson.M{"id": guid}).Decode(&product)
	if err == mongo.ErrNoDocuments {
		return Product{}, ErrNotFound
	}
	if err != nil {
		return Product{}, fmt.Errorf("finding product: %s", err)
	}
	return product, nil
}

// Update applies the set fields and always refreshes updatedAt, even
// when the request changed nothing else.
func (s *MongoProductStore) Update(guid string, update ProductUpdate) (Product, error) {
	set := bson.M{"updatedAt": time.Now().UTC()}
	if update.Title != nil {
		set["title"] = *update.Title
	}
	if update.Description != nil {
		set["description"] = *update.Description
	}
	if update.Price != nil {
		set["price"] = *update.Price
	}
	if update.Image != nil {
		set["image"] = *update.Image
	}

	ctx, cancel := s.Conn.OperationContext()
	defer cancel()

	var product Product
	err := s.Conn.Collection(productsCollection).FindOneAndUpdate(
		ctx,
		bson.M{"id": guid},
		bson.M{"$set": set},
		options.FindOneAndUpdate().SetReturnDocument(options.After),
	).Decode(&product)
	if err == mongo.ErrNoDocuments {
		return Product{}, ErrNotFound
	}
	if err != nil {
		return Product{}, fmt.Errorf("updating product: %s", err)
	}
	return product, nil
}

func (s *MongoProductStore) Delete(guid string) (Product, error) {
	ctx, cancel := s.Conn.OperationContext()
	defer cancel()

	var product Product
	err := s.Conn.Collection(productsCollection).FindOneAndDelete(ctx, bson.M{"id": guid}).Decode(&product)
	if err == mongo.ErrNoDocuments {
		return Product{}, ErrNotFound
	}
	if err != nil {
		return Product{}, fmt.Errorf("deleting product: %s", err)
	}
	return product, nil
}

func (s *MongoProductStore) List(filter ProductFilter) ([]Product, int64, error) {
	ctx, cancel := s.Conn.OperationContext()
	defer cancel()

	query := filter.Query()

	findOptions := options.Find().
		SetSkip(filter.Skip()).
		SetLimit(int64(filter.PageSize()))
	if sort := filter.SortDocument(); sort != nil {
		findOptions.SetSort(sort)
	}

	cursor, err := s.Conn.Collection(productsCollection).Find(ctx, query, findOptions)
	if err != nil {
		return nil, 0, fmt.Errorf("listing products: %s", err)
	}

	products := []Product{}
	err = cursor.All(ctx, &products)
	if err != nil {
		return nil, 0, fmt.Errorf("decoding products: %s", err)
	}

	total, err := s.Conn.Collection(productsCollection).CountDocuments(ctx, query)
	if err != nil {
		return nil, 0, fmt.Errorf("counting products: %s", err)
	}

	return products, total, nil
}

func (s *MongoProductStore) Count() (int64, error) {
	ctx, cancel := s.Conn.OperationContext()
	defer cancel()

	count, err := s.Conn.Collection(productsCollection).CountDocuments(ctx, bson.M{})
	if err != nil {
		return 0, fmt.Errorf("counting products: %s", err)
	}
	return count, nil
}
