package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

const (
	NameSummaries             = "summaries_total"
	NameChunks                = "chunks_total"
	NameExtractedCharacters   = "extracted_characters_total"
	NameSummarizationDuration = "summarization_duration_seconds"
	LabelStatus               = "status"
	LabelExtension            = "extension"
	LabelSource               = "source"
	NameRequests              = "requests_total"
)

var Summaries = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Name:      NameSummaries,
		Help:      "Total summarization requests, by outcome",
		Namespace: Namespace,
	},
	[]string{LabelStatus, LabelExtension},
)

var Chunks = promauto.NewCounter(
	prometheus.CounterOpts{
		Name:      NameChunks,
		Help:      "Total summarized chunks",
		Namespace: Namespace,
	},
)

var ExtractedCharacters = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Name:      NameExtractedCharacters,
		Help:      "Total extracted characters",
		Namespace: Namespace,
	},
	[]string{LabelExtension},
)

var SummarizationDuration = promauto.NewHistogramVec(
	prometheus.HistogramOpts{
		Name:      NameSummarizationDuration,
		Help:      "Duration of a single chunk summarization",
		Namespace: Namespace,
		Buckets:   prometheus.ExponentialBuckets(0.25, 2, 10),
	},
	[]string{LabelStatus},
)

var Requests = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Name:      NameRequests,
		Help:      "Total summarization requests, by entry point",
		Namespace: Namespace,
	},
	[]string{LabelSource},
)
