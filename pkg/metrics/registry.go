package metrics

import (
	"net/http"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// Registry holds every metric of the site. It is separate from the default
// registerer so tests and the scrape endpoint see the same set.
var Registry = prometheus.NewRegistry()

func init() {
	Registry.MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)
}

// Handler serves Registry for scraping. Failed scrapes are counted in
// pgp_promhttp_metric_handler_errors_total.
func Handler() http.Handler {
	return promhttp.HandlerFor(Registry, promhttp.HandlerOpts{
		Registry:          prometheus.WrapRegistererWithPrefix("pgp_", Registry),
		EnableOpenMetrics: true,
	})
}
