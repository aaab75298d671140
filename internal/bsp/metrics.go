package bsp

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

const queryLabel = "query"

var (
	treeBuilds = promauto.NewCounter(prometheus.CounterOpts{
		Name: "maze_bsp_builds_total",
		Help: "The number of BSP trees built.",
	})

	treeBuildLatency = promauto.NewHistogram(prometheus.HistogramOpts{
		Name: "maze_bsp_build_latency",
		Help: "The time to build a BSP tree.",
	})

	treeNodes = promauto.NewGauge(prometheus.GaugeOpts{
		Name: "maze_bsp_nodes",
		Help: "The number of nodes in the last built BSP tree.",
	})

	queries = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "maze_bsp_queries_total",
		Help: "The number of queries run against BSP trees.",
	}, []string{
		queryLabel,
	})

	queryTests = promauto.NewHistogramVec(prometheus.HistogramOpts{
		Name:    "maze_bsp_query_tests",
		Help:    "The number of boundary tests one query ran.",
		Buckets: prometheus.ExponentialBuckets(1, 2, 12),
	}, []string{
		queryLabel,
	})

	sphereQueries    = queries.WithLabelValues("sphere")
	sphereQueryTests = queryTests.WithLabelValues("sphere")
	rayQueries       = queries.WithLabelValues("ray")
	rayQueryTests    = queryTests.WithLabelValues("ray")
)

func instrumentBuild(t *Tree, d time.Duration) {
	treeBuilds.Inc()
	treeBuildLatency.Observe(d.Seconds())
	treeNodes.Set(float64(len(t.nodes)))
}

func instrumentSphereQuery(tests int) {
	sphereQueries.Inc()
	sphereQueryTests.Observe(float64(tests))
}

func instrumentRayQuery(tests int) {
	rayQueries.Inc()
	rayQueryTests.Observe(float64(tests))
}
