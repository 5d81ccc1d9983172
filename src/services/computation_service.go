package services

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/shopspring/decimal"

	"github.com/username/taxdraft/src/logger"
	"github.com/username/taxdraft/src/models"
	"github.com/username/taxdraft/src/policy"
	"github.com/username/taxdraft/src/processors"
	"github.com/username/taxdraft/src/report"
	"github.com/username/taxdraft/src/utils"
)

// ErrInvalidInput marks malformed-input failures caught at the validation
// boundary. Handlers map it to a 400 response.
var ErrInvalidInput = errors.New("invalid input")

var maxGrowthPercent = decimal.NewFromInt(100)

type computationServiceImpl struct {
	pol        *policy.TaxPolicy
	profit     processors.ProfitCalculator
	growth     processors.GrowthProjector
	continuity processors.ContinuityEnforcer
	capital    processors.CapitalComposer
	tax        processors.TaxCalculator
	assembler  *report.Assembler
}

func NewComputationService(
	pol *policy.TaxPolicy,
	profit processors.ProfitCalculator,
	growth processors.GrowthProjector,
	continuity processors.ContinuityEnforcer,
	capital processors.CapitalComposer,
	tax processors.TaxCalculator,
) ComputationService {
	return &computationServiceImpl{
		pol:        pol,
		profit:     profit,
		growth:     growth,
		continuity: continuity,
		capital:    capital,
		tax:        tax,
		assembler:  report.NewAssembler(pol),
	}
}

func (s *computationServiceImpl) ComputeSummary(req *models.ComputeRequest) (*models.SummaryResponse, error) {
	comp, err := s.run(req)
	if err != nil {
		return nil, err
	}

	last := comp.Years[len(comp.Years)-1]
	return &models.SummaryResponse{
		NetProfit:         last.Profit.NetProfit.Round(2).InexactFloat64(),
		TotalIncome:       last.Tax.TaxableIncome.Round(2).InexactFloat64(),
		Tax:               last.Tax.Tax.IntPart(),
		Cess:              last.Tax.Cess.IntPart(),
		TotalTaxLiability: last.Tax.TotalLiability.IntPart(),
	}, nil
}

func (s *computationServiceImpl) ComputeDraft(req *models.ComputeRequest) (*models.DraftReport, error) {
	comp, err := s.run(req)
	if err != nil {
		return nil, err
	}
	return s.assembler.Assemble(comp), nil
}

// run executes the pipeline once. Every derived value is a pure function of
// the request and the policy, so identical input always yields identical
// output.
func (s *computationServiceImpl) run(req *models.ComputeRequest) (*models.Computation, error) {
	if err := validateRequest(req); err != nil {
		return nil, err
	}

	start := time.Now()

	years := []models.YearFigures{*req.Year1}
	var notes []string

	if req.Year2 != nil {
		years = append(years, *req.Year2)
	} else if req.AutoYear2 {
		years = append(years, s.growth.Project(years[0], req.GrowthPercent))
		notes = append(notes, fmt.Sprintf("Year 2 figures projected from Year 1 at %s%% growth.",
			req.GrowthPercent.String()))
	}

	comp := &models.Computation{Metadata: req.Metadata}

	label := strings.TrimSpace(req.Metadata.FiscalYear)
	for i := range years {
		if i == 1 {
			if next, ok := utils.NextFiscalYearLabel(label); ok {
				label = next
			} else {
				label = "Year 2"
			}
			if req.ContinuityEnabled() {
				prev := comp.Years[0]
				carry := processors.CarryForward{
					ClosingStock:   prev.Figures.ClosingStock,
					ClosingCapital: prev.Capital.Closing,
				}
				notes = append(notes, s.continuity.Enforce(carry, &years[1])...)
			}
		}

		profit := s.profit.Calculate(years[i])
		capital := s.capital.ComposeCapital(years[i].CapitalOpen, profit.NetProfit, years[i])
		balanceSheet := s.capital.ComposeBalanceSheet(capital.Closing, years[i])
		taxResult := s.tax.Calculate(profit.NetProfit)

		comp.Years = append(comp.Years, models.YearComputation{
			Label:        label,
			Figures:      years[i],
			Profit:       profit,
			Capital:      capital,
			BalanceSheet: balanceSheet,
			Tax:          taxResult,
		})
	}
	comp.Notes = notes

	logger.L.Debug("Computation pipeline finished",
		"years", len(comp.Years),
		"notes", len(comp.Notes),
		"durationMs", time.Since(start).Milliseconds())
	return comp, nil
}

func validateRequest(req *models.ComputeRequest) error {
	if req == nil {
		return fmt.Errorf("%w: empty request body", ErrInvalidInput)
	}

	required := []struct {
		name  string
		value string
	}{
		{"metadata.business_name", req.Metadata.BusinessName},
		{"metadata.proprietor_name", req.Metadata.ProprietorName},
		{"metadata.tax_id", req.Metadata.TaxID},
		{"metadata.date_of_birth", req.Metadata.DateOfBirth},
		{"metadata.fiscal_year", req.Metadata.FiscalYear},
	}
	for _, f := range required {
		if strings.TrimSpace(f.value) == "" {
			return fmt.Errorf("%w: %s is required", ErrInvalidInput, f.name)
		}
	}

	if req.Year1 == nil {
		return fmt.Errorf("%w: year1 is required", ErrInvalidInput)
	}
	if req.Year2 != nil && req.AutoYear2 {
		return fmt.Errorf("%w: year2 and auto_year2 are mutually exclusive", ErrInvalidInput)
	}
	if req.GrowthPercent.IsNegative() || req.GrowthPercent.GreaterThan(maxGrowthPercent) {
		return fmt.Errorf("%w: growth_percent must be between 0 and 100, got %s",
			ErrInvalidInput, req.GrowthPercent)
	}
	return nil
}
