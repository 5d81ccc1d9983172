package services

import (
	"github.com/username/taxdraft/src/models"
)

// ComputationService runs the canonical pipeline behind every endpoint:
// validation, optional growth projection, continuity enforcement, profit
// calculation, capital and balance-sheet composition, slab tax. The two
// methods differ only in how much of the result they surface.
type ComputationService interface {
	// ComputeSummary returns the flat summary for the assessment year (the
	// last year computed).
	ComputeSummary(req *models.ComputeRequest) (*models.SummaryResponse, error)

	// ComputeDraft returns the full statement set plus audit notes, ready
	// for tabular rendering.
	ComputeDraft(req *models.ComputeRequest) (*models.DraftReport, error)
}
