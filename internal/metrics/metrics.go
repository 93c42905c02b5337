package metrics

import (
	"net/http"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

var (
	PopupsTotal = prometheus.NewCounterVec(prometheus.CounterOpts{
		Name: "geomap_popups_total",
		Help: "Polygon popups rendered, by auto-scale outcome",
	}, []string{"scaled"})
	PopupHidesTotal = prometheus.NewCounter(prometheus.CounterOpts{
		Name: "geomap_popup_hides_total",
		Help: "Popup hides that cleared an active popup",
	})
	PopupRings = prometheus.NewHistogram(prometheus.HistogramOpts{
		Name:    "geomap_popup_rings",
		Help:    "Rings decoded per popup",
		Buckets: []float64{1, 2, 4, 8, 16, 64, 256},
	})
	DecodeErrorsTotal = prometheus.NewCounter(prometheus.CounterOpts{
		Name: "geomap_decode_errors_total",
		Help: "Packed polygon rows rejected as malformed",
	})
	MarkSpecsTotal = prometheus.NewCounter(prometheus.CounterOpts{
		Name: "geomap_mark_specs_total",
		Help: "Mark specs generated for the polygon layer",
	})
)

func init() {
	prometheus.MustRegister(PopupsTotal)
	prometheus.MustRegister(PopupHidesTotal)
	prometheus.MustRegister(PopupRings)
	prometheus.MustRegister(DecodeErrorsTotal)
	prometheus.MustRegister(MarkSpecsTotal)
}

// Handler exposes the registered collectors for scraping.
func Handler() http.Handler { return promhttp.Handler() }
