package recipe

import (
	"errors"
	"recipe-service/domain"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	recipeOperationsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "recipe_operations_total",
			Help: "Total number of recipe operations by outcome",
		},
		[]string{"operation", "outcome"},
	)

	recipeOperationDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "recipe_operation_duration_seconds",
			Help:    "Duration of recipe operations in seconds",
			Buckets: prometheus.DefBuckets,
		},
		[]string{"operation"},
	)

	recipeSearchResults = promauto.NewHistogram(
		prometheus.HistogramOpts{
			Name:    "recipe_search_results",
			Help:    "Number of recipes returned by filter and search queries",
			Buckets: []float64{0, 1, 5, 10, 25, 50, 100, 250},
		},
	)
)

// observe records one finished operation. Use with defer and a named error.
func observe(operation string, start time.Time, err error) {
	recipeOperationDuration.WithLabelValues(operation).Observe(time.Since(start).Seconds())
	recipeOperationsTotal.WithLabelValues(operation, outcome(err)).Inc()
}

func outcome(err error) string {
	var (
		notFound   *domain.NotFoundError
		validation *domain.ValidationError
		search     *domain.SearchError
	)
	switch {
	case err == nil:
		return "success"
	case errors.As(err, &notFound):
		return "not_found"
	case errors.As(err, &validation):
		return "invalid"
	case errors.As(err, &search):
		return "search_error"
	default:
		return "error"
	}
}
