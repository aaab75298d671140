package controller

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	resolutions = promauto.NewCounter(prometheus.CounterOpts{
		Name: "maze_movement_resolutions_total",
		Help: "The number of displacements resolved against level geometry.",
	})

	deflections = promauto.NewCounter(prometheus.CounterOpts{
		Name: "maze_movement_deflections_total",
		Help: "The number of surfaces movers slid along.",
	})

	cappedResolutions = promauto.NewCounter(prometheus.CounterOpts{
		Name: "maze_movement_capped_total",
		Help: "The number of resolutions that stopped at the deflection cap with contacts left.",
	})
)

func instrumentResolve(n int, capped bool) {
	resolutions.Inc()
	deflections.Add(float64(n))
	if capped {
		cappedResolutions.Inc()
	}
}
