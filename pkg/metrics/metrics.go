// Package metrics defines Prometheus metrics for the shop API.
//
// Metric naming follows Prometheus conventions:
//   - shop_ prefix for all custom metrics
//   - _total suffix for counters
package metrics

import (
	"net/http"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

const (
	StatusSuccess = "success"
	StatusFailure = "failure"
)

var (
	// RegistrationsTotal counts user registrations by terminal status.
	RegistrationsTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "shop_registrations_total",
			Help: "Total number of user registration attempts by status.",
		},
		[]string{"status"},
	)

	// LoginsTotal counts login attempts by terminal status.
	LoginsTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "shop_logins_total",
			Help: "Total number of login attempts by status.",
		},
		[]string{"status"},
	)

	// TokenRefreshesTotal counts access token refreshes by terminal status.
	TokenRefreshesTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "shop_token_refreshes_total",
			Help: "Total number of access token refreshes by status.",
		},
		[]string{"status"},
	)

	// LogoutsTotal counts logout requests.
	LogoutsTotal = prometheus.NewCounter(
		prometheus.CounterOpts{
			Name: "shop_logouts_total",
			Help: "Total number of logout requests.",
		},
	)
)

func init() {
	prometheus.MustRegister(
		RegistrationsTotal,
		LoginsTotal,
		TokenRefreshesTotal,
		LogoutsTotal,
	)
}

// RecordRegistration records a single registration attempt.
func RecordRegistration(status string) {
	RegistrationsTotal.WithLabelValues(status).Inc()
}

// RecordLogin records a single login attempt.
func RecordLogin(status string) {
	LoginsTotal.WithLabelValues(status).Inc()
}

// RecordTokenRefresh records a single access token refresh.
func RecordTokenRefresh(status string) {
	TokenRefreshesTotal.WithLabelValues(status).Inc()
}

// RecordLogout records a single logout request.
func RecordLogout() {
	LogoutsTotal.Inc()
}

// Handler serves the default registry, including the counters above.
func Handler() http.Handler {
	return promhttp.Handler()
}
