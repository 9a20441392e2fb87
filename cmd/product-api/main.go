package main

import (
	"encoding/json"
	"flag"
	"fmt"
	"log"
	"net/http"
	"os"
	"time"

	"code.cloudfoundry.org/cf-networking-helpers/marshal"
	"code.cloudfoundry.org/cf-networking-helpers/middleware"
	middlewareAdapter "code.cloudfoundry.org/cf-networking-helpers/middleware/adapter"
	"code.cloudfoundry.org/clock"
	"code.cloudfoundry.org/debugserver"
	"code.cloudfoundry.org/lager/v3"
	"code.cloudfoundry.org/lager/v3/lagerflags"
	"github.com/Spidey0819/Tutorial-7/api"
	"github.com/Spidey0819/Tutorial-7/cmd/common"
	"github.com/Spidey0819/Tutorial-7/config"
	"github.com/Spidey0819/Tutorial-7/db"
	"github.com/Spidey0819/Tutorial-7/handlers"
	"github.com/Spidey0819/Tutorial-7/metrics"
	appmiddleware "github.com/Spidey0819/Tutorial-7/middleware"
	"github.com/Spidey0819/Tutorial-7/passwords"
	"github.com/Spidey0819/Tutorial-7/store"
	"github.com/Spidey0819/Tutorial-7/tokens"
	"github.com/tedsuo/ifrit"
	"github.com/tedsuo/ifrit/grouper"
	"github.com/tedsuo/ifrit/sigmon"
	"github.com/tedsuo/rata"
)

const jobPrefix = "product-api"

var logPrefix = "tutorial7"

func main() {
	configFilePath := flag.String("config-file", "", "path to config file")
	flag.Parse()

	conf, err := config.New(*configFilePath)
	if err != nil {
		log.Fatalf("%s.%s: could not load config: %s", logPrefix, jobPrefix, err)
	}

	if conf.LogPrefix != "" {
		logPrefix = conf.LogPrefix
	}
	loggerConfig := common.GetLagerConfig()
	if conf.LogLevel != "" {
		loggerConfig.LogLevel = conf.LogLevel
	}
	logger, reconfigurableSink := lagerflags.NewFromConfig(fmt.Sprintf("%s.%s", logPrefix, jobPrefix), loggerConfig)
	logger.Debug("Debug Logging Enabled")

	// the database is allowed to be down at boot: the HTTP surface
	// stays up so the platform health check sees degraded, not dead
	var userStore store.UserStore
	var productStore store.ProductStore
	var userCounter, productCounter common.Counter
	var databaseChecker interface {
		CheckDatabase() error
	}

	metricsSender := &metrics.MetricsSender{
		Logger: logger.Session("time-metric-emitter"),
	}

	connection, err := db.NewErroringConnection(conf.Database, logPrefix, jobPrefix, logger)
	if err != nil {
		logger.Error("db-connect-failed-starting-degraded", err)
	} else {
		connection.EnsureIndexes(logger)

		wrappedUsers := &store.UserMetricsWrapper{
			Store:         store.NewMongoUserStore(connection),
			MetricsSender: metricsSender,
		}
		wrappedProducts := &store.ProductMetricsWrapper{
			Store:         store.NewMongoProductStore(connection),
			MetricsSender: metricsSender,
		}
		userStore = wrappedUsers
		productStore = wrappedProducts
		userCounter = wrappedUsers
		productCounter = wrappedProducts
		databaseChecker = connection
	}

	tokenClient := &tokens.Client{
		SecretKey: conf.SecretKey,
		TTL:       time.Duration(conf.TokenTTLHours) * time.Hour,
		Clock:     clock.NewClock(),
	}

	passwordHasher := passwords.NewHasher()

	errorResponse := &handlers.ErrorResponse{
		MetricsSender: metricsSender,
		MaskDetails:   conf.Environment == "production",
	}

	userMapper := api.NewUserMapper(marshal.UnmarshalFunc(json.Unmarshal))
	productMapper := api.NewProductMapper(marshal.UnmarshalFunc(json.Unmarshal))

	infoHandler := handlers.NewInfo(conf.Environment)
	healthHandler := handlers.NewHealth(databaseChecker, conf.Environment)
	authRegisterHandler := handlers.NewAuthRegister(userStore, userMapper, passwordHasher, tokenClient, errorResponse)
	authLoginHandler := handlers.NewAuthLogin(userStore, userMapper, passwordHasher, tokenClient, errorResponse)
	authVerifyHandler := handlers.NewAuthVerify(errorResponse)
	usersRegisterHandler := handlers.NewUsersRegister(userStore, userMapper, passwordHasher, errorResponse)
	usersLoginHandler := handlers.NewUsersLogin(userStore, userMapper, passwordHasher, errorResponse)
	usersIndexHandler := handlers.NewUsersIndex(userStore, errorResponse)
	usersShowHandler := handlers.NewUsersShow(userStore, errorResponse)
	productsIndexHandler := handlers.NewProductsIndex(productStore, errorResponse)
	productsCreateHandler := handlers.NewProductsCreate(productStore, productMapper, errorResponse)
	productsShowHandler := handlers.NewProductsShow(productStore, errorResponse)
	productsUpdateHandler := handlers.NewProductsUpdate(productStore, productMapper, errorResponse)
	productsDeleteHandler := handlers.NewProductsDelete(productStore, errorResponse)

	metricsWrap := func(name string, handler http.Handler) http.Handler {
		metricsWrapper := middleware.MetricWrapper{
			Name:          name,
			MetricsSender: metricsSender,
		}
		return metricsWrapper.Wrap(handler)
	}

	logWrapper := middleware.LogWrapper{
		UUIDGenerator: &middlewareAdapter.UUIDAdapter{},
	}

	logWrap := func(handler http.Handler) http.Handler {
		return logWrapper.LogWrap(logger, handler)
	}

	authWrap := func(handler http.Handler) http.Handler {
		authenticator := handlers.Authenticator{
			TokenChecker:  tokenClient,
			UserStore:     userStore,
			ErrorResponse: errorResponse,
		}
		return authenticator.Wrap(handler)
	}

	routes := rata.Routes{
		{Name: "info", Method: "GET", Path: "/"},
		{Name: "health", Method: "GET", Path: "/api/health"},
		{Name: "auth_register", Method: "POST", Path: "/api/auth/register"},
		{Name: "auth_login", Method: "POST", Path: "/api/auth/login"},
		{Name: "auth_verify", Method: "GET", Path: "/api/auth/verify"},
		{Name: "users_register", Method: "POST", Path: "/api/register"},
		{Name: "users_login", Method: "POST", Path: "/api/login"},
		{Name: "users_index", Method: "GET", Path: "/api/users"},
		{Name: "users_show", Method: "GET", Path: "/api/users/:id"},
		{Name: "products_index", Method: "GET", Path: "/api/products"},
		{Name: "products_create", Method: "POST", Path: "/api/products"},
		{Name: "products_show", Method: "GET", Path: "/api/products/:id"},
		{Name: "products_update", Method: "PUT", Path: "/api/products/:id"},
		{Name: "products_delete", Method: "DELETE", Path: "/api/products/:id"},
	}

	corsMiddleware := appmiddleware.CORS{}
	routesWithOptions := corsMiddleware.AddOptionsRoutes("options", routes)

	rataHandlers := rata.Handlers{
		"options": http.HandlerFunc(func(w http.ResponseWriter, req *http.Request) {
		}),
		"info":   metricsWrap("Info", logWrap(infoHandler)),
		"health": metricsWrap("Health", logWrap(healthHandler)),

		"auth_register": metricsWrap("AuthRegister", logWrap(authRegisterHandler)),
		"auth_login":    metricsWrap("AuthLogin", logWrap(authLoginHandler)),
		"auth_verify":   metricsWrap("AuthVerify", logWrap(authWrap(authVerifyHandler))),

		"users_register": metricsWrap("UsersRegister", logWrap(usersRegisterHandler)),
		"users_login":    metricsWrap("UsersLogin", logWrap(usersLoginHandler)),
		"users_index":    metricsWrap("UsersIndex", logWrap(usersIndexHandler)),
		"users_show":     metricsWrap("UsersShow", logWrap(usersShowHandler)),

		"products_index":  metricsWrap("ProductsIndex", logWrap(authWrap(productsIndexHandler))),
		"products_create": metricsWrap("ProductsCreate", logWrap(authWrap(productsCreateHandler))),
		"products_show":   metricsWrap("ProductsShow", logWrap(authWrap(productsShowHandler))),
		"products_update": metricsWrap("ProductsUpdate", logWrap(authWrap(productsUpdateHandler))),
		"products_delete": metricsWrap("ProductsDelete", logWrap(authWrap(productsDeleteHandler))),
	}

	metricsEmitter := common.InitMetricsEmitter(logger, metricsSender, userCounter, productCounter)
	externalServer := common.InitServer(logger, conf.ListenHost, conf.ListenPort, rataHandlers, routesWithOptions,
		handlers.NotFoundWrapper{Routes: routesWithOptions},
		handlers.CORSOptionsWrapper{
			RataRoutes:         routesWithOptions,
			AllowedCORSDomains: conf.AllowedCORSDomains(),
		},
		handlers.JSONContentTypeHandler{},
		handlers.XXSSProtectionHandler{},
		handlers.NoSniffHeaderHandler{},
	)
	metricsServer := common.InitMetricsServer(conf.DebugServerHost, conf.MetricsPort)
	debugServer := debugserver.Runner(fmt.Sprintf("%s:%d", conf.DebugServerHost, conf.DebugServerPort), reconfigurableSink)

	members := grouper.Members{
		{Name: "metrics_emitter", Runner: metricsEmitter},
		{Name: "http_server", Runner: externalServer},
		{Name: "metrics_server", Runner: metricsServer},
		{Name: "debug-server", Runner: debugServer},
	}

	logger.Info("starting server", lager.Data{"listen-address": conf.ListenHost, "port": conf.ListenPort, "environment": conf.Environment})

	group := grouper.NewOrdered(os.Interrupt, members)
	monitor := ifrit.Invoke(sigmon.New(group))

	err = <-monitor.Wait()
	if connection != nil {
		if disconnectErr := connection.Disconnect(); disconnectErr != nil {
			logger.Error("disconnecting-from-database", disconnectErr)
		}
	}
	if err != nil {
		logger.Error("exited-with-failure", err)
		os.Exit(1)
	}

	logger.Info("exited")
}
