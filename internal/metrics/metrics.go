package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	ProposalReads = promauto.NewCounter(prometheus.CounterOpts{
		Name: "proposaldesk_proposal_reads_total",
		Help: "Proposal list, summary and export requests served.",
	})

	Mutations = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "proposaldesk_mutations_total",
		Help: "Create, update and delete operations by entity and action.",
	}, []string{"entity", "action"})

	AuthDenials = promauto.NewCounter(prometheus.CounterOpts{
		Name: "proposaldesk_auth_denials_total",
		Help: "Requests rejected by the role gate.",
	})
)
