package store

import (
	"fmt"
	"time"

	"github.com/Spidey0819/Tutorial-7/db"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

const usersCollection = "users"

type MongoUserStore struct {
	Conn *db.Connection
}

func NewMongoUserStore(conn *db.Connection) *MongoUserStore {
	return &MongoUserStore{
		Conn: conn,
	}
}

func (s *MongoUserStore) Create(user User) (User, error) {
	if user.CreatedAt.IsZero() {
		user.CreatedAt = time.Now().UTC()
	}
	user.IsActive = true

	ctx, cancel := s.Conn.OperationContext()
	defer cancel()

	result, err := s.Conn.Collection(usersCollection).InsertOne(ctx, user)
	if err != nil {
		if mongo.IsDuplicateKeyError(err) {
			return User{}, NewDuplicateKeyError(err)
		}
		return User{}, fmt.Errorf("inserting user: %s", err)
	}

	user.MongoID = result.InsertedID.(primitive.ObjectID)
	return user, nil
}

// ByEmail returns the stored document including the password hash, for
// credential checks. All other lookups strip the password.
func (s *MongoUserStore) ByEmail(email string) (User, error) {
	ctx, cancel := s.Conn.OperationContext()
	defer cancel()

	var user User
	err := s.Conn.Collection(usersCollection).FindOne(ctx, bson.M{"email": email}).Decode(&user)
	if err == mongo.ErrNoDocuments {
		return User{}, ErrNotFound
	}
	if err != nil {
		return User{}, fmt.Errorf("finding user by email: %s", err)
	}
	return user, nil
}

func (s *MongoUserStore) ByID(id string) (User, error) {
	objectID, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return User{}, ErrNotFound
	}

	ctx, cancel := s.Conn.OperationContext()
	defer cancel()

	var user User
	err = s.Conn.Collection(usersCollection).FindOne(
		ctx,
		bson.M{"_id": objectID},
		options.FindOne().SetProjection(bson.M{"password": 0}),
	).Decode(&user)
	if err == mongo.ErrNoDocuments {
		return User{}, ErrNotFound
	}
	if err != nil {
		return User{}, fmt.Errorf("finding user by id: %s", err)
	}
	return user, nil
}

func (s *MongoUserStore) All() ([]User, error) {
	ctx, cancel := s.Conn.OperationContext()
	defer cancel()

	cursor, err := s.Conn.Collection(usersCollection).Find(
		ctx,
		bson.M{},
		options.Find().SetProjection(bson.M{"password": 0}),
	)
	if err != nil {
		return nil, fmt.Errorf("listing users: %s", err)
	}

	users := []User{}
	err = cursor.All(ctx, &users)
	if err != nil {
		return nil, fmt.Errorf("decoding users: %s", err)
	}
	return users, nil
}

func (s *MongoUserStore) Count() (int64, error) {
	ctx, cancel := s.Conn.OperationContext()
	defer cancel()

	count, err := s.Conn.Collection(usersCollection).CountDocuments(ctx, bson.M{})
	if err != nil {
		return 0, fmt.Errorf("counting users: %s", err)
	}
	return count, nil
}
