package metrics

import (
	"fmt"
	"sync"
	"time"

	"code.cloudfoundry.org/lager/v3"
	"github.com/prometheus/client_golang/prometheus"
)

type MetricsSender struct {
	Logger     lager.Logger
	Registerer prometheus.Registerer

	// metric names only arrive at send time, so collectors register on first use
	lock       sync.Mutex
	gauges     map[string]prometheus.Gauge
	counters   map[string]prometheus.Counter
	histograms map[string]prometheus.Histogram
}

// SendDuration observes into a histogram so every request latency
// survives between scrapes, not just the most recent one.
func (ms *MetricsSender) SendDuration(name string, duration time.Duration) {
	histogram, err := ms.histogram(name)
	if err != nil {
		ms.Logger.Error("sending-metric", err)
		return
	}
	histogram.Observe(duration.Seconds() * 1000)
}

func (ms *MetricsSender) SendValue(name string, value float64, units string) {
	gauge, err := ms.gauge(name, units)
	if err != nil {
		ms.Logger.Error("sending-metric", err)
		return
	}
	gauge.Set(value)
}

func (ms *MetricsSender) IncrementCounter(name string) {
	counter, err := ms.counter(name)
	if err != nil {
		ms.Logger.Error("sending-metric", err)
		return
	}
	counter.Inc()
}

func (ms *MetricsSender) gauge(name, units string) (prometheus.Gauge, error) {
	ms.lock.Lock()
	defer ms.lock.Unlock()

	if gauge, ok := ms.gauges[name]; ok {
		return gauge, nil
	}

	gauge := prometheus.NewGauge(prometheus.GaugeOpts{
		Name: name,
		Help: helpText(name, units),
	})
	err := ms.registerer().Register(gauge)
	if err != nil {
		return nil, err
	}

	if ms.gauges == nil {
		ms.gauges = map[string]prometheus.Gauge{}
	}
	ms.gauges[name] = gauge
	return gauge, nil
}

func (ms *MetricsSender) counter(name string) (prometheus.Counter, error) {
	ms.lock.Lock()
	defer ms.lock.Unlock()

	if counter, ok := ms.counters[name]; ok {
		return counter, nil
	}

	counter := prometheus.NewCounter(prometheus.CounterOpts{
		Name: name,
		Help: name,
	})
	err := ms.registerer().Register(counter)
	if err != nil {
		return nil, err
	}

	if ms.counters == nil {
		ms.counters = map[string]prometheus.Counter{}
	}
	ms.counters[name] = counter
	return counter, nil
}

func (ms *MetricsSender) histogram(name string) (prometheus.Histogram, error) {
	ms.lock.Lock()
	defer ms.lock.Unlock()

	if histogram, ok := ms.histograms[name]; ok {
		return histogram, nil
	}

	histogram := prometheus.NewHistogram(prometheus.HistogramOpts{
		Name: name,
		Help: helpText(name, "ms"),
	})
	err := ms.registerer().Register(histogram)
	if err != nil {
		return nil, err
	}

	if ms.histograms == nil {
		ms.histograms = map[string]prometheus.Histogram{}
	}
	ms.histograms[name] = histogram
	return histogram, nil
}

func (ms *MetricsSender) registerer() prometheus.Registerer {
	if ms.Registerer == nil {
		return prometheus.DefaultRegisterer
	}
	return ms.Registerer
}

func helpText(name, units string) string {
	if units == "" {
		return name
	}
	return fmt.Sprintf("%s (%s)", name, units)
}
