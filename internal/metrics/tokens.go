package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

const (
	NameTokens = "model_tokens_total"
	LabelModel = "model"
	LabelKind  = "kind"

	KindPrompt     = "prompt"
	KindCompletion = "completion"
)

var Tokens = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Name:      NameTokens,
		Help:      "Tokens consumed by the summarization model, by kind",
		Namespace: Namespace,
	},
	[]string{LabelModel, LabelKind},
)

// RecordTokenUsage adds the token counts reported by the model for a single
// completion.
func RecordTokenUsage(model string, promptTokens, completionTokens int64) {
	Tokens.With(prometheus.Labels{LabelModel: model, LabelKind: KindPrompt}).Add(float64(promptTokens))
	Tokens.With(prometheus.Labels{LabelModel: model, LabelKind: KindCompletion}).Add(float64(completionTokens))
}
