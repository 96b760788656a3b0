package spg

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

const (
	promNamespace = "spg"

	safeLabel   = "safe"
	formLabel   = "form"
	reasonLabel = "reason"

	formPattern = "pattern"
	formConfig  = "config"

	reasonEmptyPool         = "empty_pool"
	reasonUnrecognizedToken = "unrecognized_token"
)

var (
	generateLabels = []string{
		safeLabel,
		formLabel,
	}

	generateCounter = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: promNamespace,
		Name:      "generate_total",
		Help:      "Total number of strings generated from a non-empty pool",
	}, generateLabels)

	charactersCounter = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: promNamespace,
		Name:      "generated_characters_total",
		Help:      "Total number of characters generated",
	}, []string{safeLabel})

	warningsCounter = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: promNamespace,
		Name:      "warnings_total",
		Help:      "Total number of non-fatal notices, by reason",
	}, []string{reasonLabel})
)
