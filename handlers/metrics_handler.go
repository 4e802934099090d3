package handlers

import (
	"time"

	"github.com/gofiber/adaptor/v2"
	"github.com/gofiber/fiber/v2"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// Prometheus metrics
var (
	totalGames = prometheus.NewGauge(prometheus.GaugeOpts{
		Name: "trainerdex_total_games",
		Help: "Total number of catalog entries",
	})

	gamesPerCategory = prometheus.NewGaugeVec(prometheus.GaugeOpts{
		Name: "trainerdex_games_per_category",
		Help: "Number of catalog entries per category",
	}, []string{"category"})

	searchesTotal = prometheus.NewCounter(prometheus.CounterOpts{
		Name: "trainerdex_searches_total",
		Help: "Total number of catalog searches served",
	})

	searchDuration = prometheus.NewHistogram(prometheus.HistogramOpts{
		Name:    "trainerdex_search_duration_seconds",
		Help:    "Catalog search latency",
		Buckets: prometheus.DefBuckets,
	})

	searchResults = prometheus.NewHistogram(prometheus.HistogramOpts{
		Name:    "trainerdex_search_results",
		Help:    "Number of entries returned per search",
		Buckets: prometheus.ExponentialBuckets(1, 4, 8),
	})
)

func init() {
	prometheus.MustRegister(totalGames)
	prometheus.MustRegister(gamesPerCategory)
	prometheus.MustRegister(searchesTotal)
	prometheus.MustRegister(searchDuration)
	prometheus.MustRegister(searchResults)
}

// observeSearch records one listing request. Empty queries are the "show
// all" path and still count: they dominate real traffic.
func observeSearch(elapsed time.Duration, results int64) {
	searchesTotal.Inc()
	searchDuration.Observe(elapsed.Seconds())
	searchResults.Observe(float64(results))
}

// updateCatalogMetrics refreshes the gauges from the current snapshot. The
// vec is rebuilt from scratch so categories that vanished on a reload do not
// keep reporting their old count.
func updateCatalogMetrics() {
	totalGames.Set(float64(catalog.Len()))
	gamesPerCategory.Reset()
	for category, count := range catalog.CategoryCounts() {
		gamesPerCategory.WithLabelValues(category).Set(float64(count))
	}
}

// HandleMetrics exposes the prometheus registry.
func HandleMetrics(c *fiber.Ctx) error {
	updateCatalogMetrics()
	return adaptor.HTTPHandler(promhttp.Handler())(c)
}
