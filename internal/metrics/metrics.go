package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

const namespace = "market_engine"

// Outcome label values
const (
	OutcomeSuccess  = "success"
	OutcomeRejected = "rejected"
	OutcomeFailed   = "failed"
)

var (
	// DealVerifications counts deal verification attempts by outcome
	DealVerifications = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "deal_verifications_total",
		Help:      "Deal verification attempts by outcome.",
	}, []string{"outcome"})

	// JobExecutions counts job activity executions by kind and outcome
	JobExecutions = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "job_executions_total",
		Help:      "Market job executions by kind and outcome.",
	}, []string{"kind", "outcome"})

	// JobDuration observes job activity latency by kind
	JobDuration = promauto.NewHistogramVec(prometheus.HistogramOpts{
		Namespace: namespace,
		Name:      "job_duration_seconds",
		Help:      "Market job execution latency.",
		Buckets:   prometheus.DefBuckets,
	}, []string{"kind"})

	// RateLimitRejections counts requests refused by the rate limiter
	RateLimitRejections = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "rate_limit_rejections_total",
		Help:      "Requests rejected by the rate limiter by action.",
	}, []string{"action"})

	// IndexerPages counts pages fetched from the ledger indexer
	IndexerPages = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "indexer_pages_total",
		Help:      "Pages fetched from the ledger indexer by query.",
	}, []string{"query"})

	// SweptListings counts expired listings re-enqueued by the sweeper
	SweptListings = promauto.NewCounter(prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "swept_listings_total",
		Help:      "Expired listings re-enqueued by the listing sweeper.",
	})
)
