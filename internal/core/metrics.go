package core

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	transfersTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "solpay_transfers_total",
		Help: "Transfers by outcome",
	}, []string{"outcome"})

	transferDuration = promauto.NewHistogramVec(prometheus.HistogramOpts{
		Name:    "solpay_transfer_duration_seconds",
		Help:    "Time from submission to a known transfer outcome",
		Buckets: []float64{0.5, 1, 5, 10, 20, 30, 60, 90},
	}, []string{"outcome"})

	ledgerWritesTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "solpay_ledger_writes_total",
		Help: "Ledger entry writes by result",
	}, []string{"result"})
)
