package server_metrics

import (
	"github.com/Spidey0819/Tutorial-7/metrics"
)

//go:generate counterfeiter -o fakes/counter.go --fake-name Counter . counter
type counter interface {
	Count() (int64, error)
}

func NewTotalUsersSource(users counter) metrics.MetricSource {
	return metrics.MetricSource{
		Name: "totalUsers",
		Unit: "",
		Getter: func() (float64, error) {
			total, err := users.Count()
			return float64(total), err
		},
	}
}

func NewTotalProductsSource(products counter) metrics.MetricSource {
	return metrics.MetricSource{
		Name: "totalProducts",
		Unit: "",
		Getter: func() (float64, error) {
			total, err := products.Count()
			return float64(total), err
		},
	}
}
