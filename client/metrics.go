package client

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

const (
	outcomeOK         = "ok"
	outcomeValidation = "validation_error"
	outcomeAPI        = "api_error"
	outcomeError      = "error"
)

var requestsTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: "ark_client",
		Name:      "requests_total",
		Help:      "Dispatched actions by outcome.",
	},
	[]string{"action", "outcome"},
)

// observe counts one dispatch and returns the outcome label used.
func observe(action Action, err error) string {
	outcome := outcomeOK
	switch {
	case err == nil:
	case IsValidation(err):
		outcome = outcomeValidation
	default:
		if _, ok := AsAPIError(err); ok {
			outcome = outcomeAPI
		} else {
			outcome = outcomeError
		}
	}
	requestsTotal.WithLabelValues(action.String(), outcome).Inc()
	return outcome
}
