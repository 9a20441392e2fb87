package db

import (
	"context"
	"fmt"
	"time"

	"code.cloudfoundry.org/lager/v3"
	"github.com/Spidey0819/Tutorial-7/config"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

const operationTimeout = 10 * time.Second

//go:generate counterfeiter -o fakes/sleeper.go --fake-name Sleeper . sleeper
type sleeper interface {
	Sleep(time.Duration)
}

type SleeperFunc func(time.Duration)

func (sf SleeperFunc) Sleep(duration time.Duration) {
	sf(duration)
}

type RetriableError struct {
	Inner error
	Msg   string
}

func (r RetriableError) Error() string {
	return fmt.Sprintf("%s: %s", r.Msg, r.Inner.Error())
}

// Connection wraps the mongo client and the application database. Store
// operations derive their own deadline from OperationContext so a slow
// server cannot wedge a request forever.
type Connection struct {
	client   *mongo.Client
	database *mongo.Database
}

func (c *Connection) Collection(name string) *mongo.Collection {
	return c.database.Collection(name)
}

func (c *Connection) OperationContext() (context.Context, context.CancelFunc) {
	return context.WithTimeout(context.Background(), operationTimeout)
}

func (c *Connection) CheckDatabase() error {
	ctx, cancel := c.OperationContext()
	defer cancel()
	return c.client.Ping(ctx, nil)
}

func (c *Connection) Disconnect() error {
	if c.client == nil {
		return nil
	}
	ctx, cancel := c.OperationContext()
	defer cancel()
	return c.client.Disconnect(ctx)
}

// EnsureIndexes creates the unique email index and the product text
// index. Failures are logged and tolerated, matching a database user
// without index privileges.
func (c *Connection) EnsureIndexes(logger lager.Logger) {
	ctx, cancel := c.OperationContext()
	defer cancel()

	_, err := c.Collection("users").Indexes().CreateOne(ctx, mongo.IndexModel{
		Keys:    bson.D{{Key: "email", Value: 1}},
		Options: options.Index().SetUnique(true),
	})
	if err != nil {
		logger.Error("create-users-index", err)
	}

	_, err = c.Collection("products").Indexes().CreateOne(ctx, mongo.IndexModel{
		Keys: bson.D{{Key: "title", Value: "text"}, {Key: "description", Value: "text"}},
	})
	if err != nil {
		logger.Error("create-products-index", err)
	}
}

func GetConnection(conf config.MongoConfig) (*Connection, error) {
	ctx, cancel := context.WithTimeout(context.Background(), operationTimeout)
	defer cancel()

	client, err := mongo.Connect(ctx, options.Client().ApplyURI(conf.URI))
	if err != nil {
		return nil, fmt.Errorf("connecting to mongo: %s", err)
	}

	if err := client.Ping(ctx, nil); err != nil {
		client.Disconnect(ctx)
		return nil, RetriableError{Inner: err, Msg: "unable to ping"}
	}

	return &Connection{client: client, database: client.Database(conf.Name)}, nil
}

type RetriableConnector struct {
	Logger        lager.Logger
	Connector     func(config.MongoConfig) (*Connection, error)
	Sleeper       sleeper
	RetryInterval time.Duration
	MaxRetries    int
}

func (r *RetriableConnector) GetConnection(conf config.MongoConfig) (*Connection, error) {
	var attempts int
	for {
		attempts++

		conn, err := r.Connector(conf)
		if err == nil {
			return conn, nil
		}

		if _, ok := err.(RetriableError); ok && attempts < r.MaxRetries {
			r.Logger.Info("retrying due to getting an error", lager.Data{
				"error": err.Error(),
			})
			r.Sleeper.Sleep(r.RetryInterval)
			continue
		}

		return nil, err
	}
}

// NewErroringConnection dials mongo with retries, giving up after the
// configured timeout so boot can continue in degraded mode.
func NewErroringConnection(conf config.MongoConfig, logPrefix string, jobPrefix string, logger lager.Logger) (*Connection, error) {
	retriableConnector := &RetriableConnector{
		Logger:        logger,
		Connector:     GetConnection,
		Sleeper:       SleeperFunc(time.Sleep),
		RetryInterval: 3 * time.Second,
		MaxRetries:    10,
	}

	return ConnectWithTimeout(retriableConnector.GetConnection, conf, logPrefix, jobPrefix, logger)
}

// ConnectWithTimeout bounds the connector with the configured deadline.
// The channel is buffered so the dialing goroutine can always finish
// after the deadline fires, and a dial that succeeds too late is
// disconnected instead of leaked.
func ConnectWithTimeout(connector func(config.MongoConfig) (*Connection, error), conf config.MongoConfig, logPrefix string, jobPrefix string, logger lager.Logger) (*Connection, error) {
	logger.Info("getting db connection", lager.Data{})

	type dbConnection struct {
		Connection *Connection
		Err        error
	}

	channel := make(chan dbConnection, 1)
	go func() {
		connection, err := connector(conf)
		channel <- dbConnection{connection, err}
	}()

	var connectionResult dbConnection
	select {
	case connectionResult = <-channel:
	case <-time.After(time.Duration(conf.TimeoutSeconds) * time.Second):
		go func() {
			result := <-channel
			if result.Connection != nil {
				if err := result.Connection.Disconnect(); err != nil {
					logger.Error("disconnect-late-connection", err)
				}
			}
		}()
		return nil, fmt.Errorf("%s.%s: db connection timeout", logPrefix, jobPrefix)
	}
	if connectionResult.Err != nil {
		return nil, fmt.Errorf("%s.%s: db connect: %s", logPrefix, jobPrefix, connectionResult.Err)
	}

	logger.Info("db connection retrieved", lager.Data{})

	return connectionResult.Connection, nil
}
