// Package metrics defines the custom Prometheus metrics for the hotels API.
// It is the single source of truth for metric names, labels, and help
// strings; request-level metrics come from the echoprometheus middleware.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

const namespace = "hotels"

// HotelsCreatedTotal counts hotels created through the mutation workflow.
// Seeded hotels are reported under SeedEntitiesTotal instead.
var HotelsCreatedTotal = promauto.NewCounter(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "created_total",
		Help:      "Total number of hotels created.",
	},
)

// HotelsDeletedTotal counts hotels removed by admins.
var HotelsDeletedTotal = promauto.NewCounter(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "deleted_total",
		Help:      "Total number of hotels deleted.",
	},
)

// LoginsTotal counts login attempts.
// Label:
//   - result: "success" or "failure"
var LoginsTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "logins_total",
		Help:      "Total number of login attempts, labelled by result.",
	},
	[]string{"result"},
)

// SeedEntitiesTotal counts entities actually written by the seeding routine.
// On a fully seeded store every label stays at zero.
// Label:
//   - kind: "role", "user", or "hotel"
var SeedEntitiesTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "seed_entities_total",
		Help:      "Total number of entities created by startup seeding, by kind.",
	},
	[]string{"kind"},
)
