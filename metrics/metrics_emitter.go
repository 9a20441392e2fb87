package metrics

import (
	"os"
	"time"

	"code.cloudfoundry.org/lager/v3"
)

//go:generate counterfeiter -o fakes/metrics_sender.go --fake-name MetricsSender . metricsSender
type metricsSender interface {
	SendValue(name string, value float64, units string)
}

type MetricSource struct {
	Name   string
	Unit   string
	Getter func() (float64, error)
}

type MetricsEmitter struct {
	logger   lager.Logger
	interval time.Duration
	sender   metricsSender
	sources  []MetricSource
}

func NewMetricsEmitter(logger lager.Logger, interval time.Duration, sender metricsSender, sources ...MetricSource) *MetricsEmitter {
	return &MetricsEmitter{
		logger:   logger,
		interval: interval,
		sender:   sender,
		sources:  sources,
	}
}

func (m *MetricsEmitter) Run(signals <-chan os.Signal, ready chan<- struct{}) error {
	m.emitMetrics()
	close(ready)

	ticker := time.NewTicker(m.interval)
	for {
		select {
		case <-ticker.C:
			m.emitMetrics()
		case <-signals:
			ticker.Stop()
			return nil
		}
	}
}

func (m *MetricsEmitter) emitMetrics() {
	for _, source := range m.sources {
		value, err := source.Getter()
		if err != nil {
			m.logger.Error("metric-getter", err, lager.Data{"source": source.Name})
			continue
		}
		m.sender.SendValue(source.Name, value, source.Unit)
	}
}
