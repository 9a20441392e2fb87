package common

import (
	"fmt"
	"net/http"
	"os"
	"strings"
	"time"

	"code.cloudfoundry.org/lager/v3"
	"code.cloudfoundry.org/lager/v3/lagerflags"
	"github.com/Spidey0819/Tutorial-7/metrics"
	"github.com/Spidey0819/Tutorial-7/server_metrics"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/tedsuo/ifrit"
	"github.com/tedsuo/ifrit/http_server"
	"github.com/tedsuo/rata"
)

const (
	DEBUG        = "debug"
	INFO         = "info"
	ERROR        = "error"
	FATAL        = "fatal"
	emitInterval = 30 * time.Second
)

func GetLagerConfig() lagerflags.LagerConfig {
	lagerConfig := lagerflags.DefaultLagerConfig()
	lagerConfig.TimeFormat = lagerflags.FormatRFC3339
	return lagerConfig
}

func InitLoggerSink(logger lager.Logger, level string) *lager.ReconfigurableSink {
	var logLevel lager.LogLevel
	switch strings.ToLower(level) {
	case DEBUG:
		logLevel = lager.DEBUG
	case INFO:
		logLevel = lager.INFO
	case ERROR:
		logLevel = lager.ERROR
	case FATAL:
		logLevel = lager.FATAL
	default:
		logLevel = lager.INFO
	}
	w := lager.NewWriterSink(os.Stdout, lager.DEBUG)
	return lager.NewReconfigurableSink(w, logLevel)
}

type Counter interface {
	Count() (int64, error)
}

// InitMetricsEmitter builds the periodic gauge emitter. Stores are nil
// when the server came up degraded, in which case only uptime is
// sampled.
func InitMetricsEmitter(logger lager.Logger, sender *metrics.MetricsSender, users Counter, products Counter) *metrics.MetricsEmitter {
	sources := []metrics.MetricSource{metrics.NewUptimeSource()}
	if users != nil {
		sources = append(sources, server_metrics.NewTotalUsersSource(users))
	}
	if products != nil {
		sources = append(sources, server_metrics.NewTotalProductsSource(products))
	}
	return metrics.NewMetricsEmitter(logger, emitInterval, sender, sources...)
}

type RouterWrapper interface {
	Wrap(http.Handler) http.Handler
}

// InitRouter wraps the assembled router itself rather than the
// individual handlers: rata answers unmatched paths before any
// registered handler runs, so wrappers that must also cover unknown
// endpoints (the JSON 404, CORS, response headers) have to sit outside
// the router. The first wrapper is innermost.
func InitRouter(handlers rata.Handlers, routes rata.Routes, wrappers ...RouterWrapper) (http.Handler, error) {
	router, err := rata.NewRouter(routes, handlers)
	if err != nil {
		return nil, err
	}

	var handler http.Handler = router
	for _, wrapper := range wrappers {
		handler = wrapper.Wrap(handler)
	}
	return handler, nil
}

func InitServer(logger lager.Logger, host string, port int, handlers rata.Handlers, routes rata.Routes, wrappers ...RouterWrapper) ifrit.Runner {
	handler, err := InitRouter(handlers, routes, wrappers...)
	if err != nil {
		logger.Fatal("create-rata-router", err) // not tested
	}

	addr := fmt.Sprintf("%s:%d", host, port)
	return http_server.New(addr, handler)
}

// InitMetricsServer serves the prometheus scrape endpoint on its own
// port so it never shares the public listener.
func InitMetricsServer(host string, port int) ifrit.Runner {
	mux := http.NewServeMux()
	mux.Handle("/metrics", promhttp.Handler())
	return http_server.New(fmt.Sprintf("%s:%d", host, port), mux)
}
