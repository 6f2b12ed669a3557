package api

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	namesGenerated = promauto.NewCounter(prometheus.CounterOpts{
		Name: "namegen_names_generated_total",
		Help: "Total names produced by the generate endpoint",
	})

	compileErrors = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "namegen_compile_errors_total",
		Help: "Pattern compilation failures by syntax error kind",
	}, []string{"kind"})

	compileCache = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "namegen_compile_cache_total",
		Help: "Compiled generator cache lookups by result",
	}, []string{"result"})

	generateDuration = promauto.NewHistogram(prometheus.HistogramOpts{
		Name:    "namegen_generate_duration_seconds",
		Help:    "Time spent producing the names of one request",
		Buckets: prometheus.ExponentialBuckets(0.00001, 4, 10), // 10µs to ~2.6s
	})
)
