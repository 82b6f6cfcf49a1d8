package kdtree

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	sizeBuckets = prometheus.ExponentialBuckets(1, 4, 10)

	kdtreeBuildsTotal = promauto.NewCounter(prometheus.CounterOpts{
		Name: "kdtree_builds_total",
		Help: "The total number of non-empty kd-trees built.",
	})

	kdtreeBuildObjects = promauto.NewHistogram(prometheus.HistogramOpts{
		Name:    "kdtree_build_objects",
		Help:    "The number of objects per kd-tree build.",
		Buckets: sizeBuckets,
	})

	kdtreeBuildNodes = promauto.NewHistogram(prometheus.HistogramOpts{
		Name:    "kdtree_build_nodes",
		Help:    "The number of nodes per kd-tree build.",
		Buckets: sizeBuckets,
	})

	kdtreeQueriesTotal = promauto.NewCounter(prometheus.CounterOpts{
		Name: "kdtree_queries_total",
		Help: "The total number of queries against non-empty kd-trees.",
	})

	kdtreeQueryCandidates = promauto.NewHistogram(prometheus.HistogramOpts{
		Name:    "kdtree_query_candidates",
		Help:    "The number of distinct keys gathered from leaves before exact filtering.",
		Buckets: sizeBuckets,
	})

	kdtreeQueryResults = promauto.NewHistogram(prometheus.HistogramOpts{
		Name:    "kdtree_query_results",
		Help:    "The number of keys returned per query.",
		Buckets: sizeBuckets,
	})
)

func instrumentBuild(s Stats) {
	kdtreeBuildsTotal.Inc()
	kdtreeBuildObjects.Observe(float64(s.Objects))
	kdtreeBuildNodes.Observe(float64(s.Nodes))
}

func instrumentQuery(candidates, results int) {
	kdtreeQueriesTotal.Inc()
	kdtreeQueryCandidates.Observe(float64(candidates))
	kdtreeQueryResults.Observe(float64(results))
}
