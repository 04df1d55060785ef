package usecase

import (
	"context"
	"errors"
	"fmt"
	"time"

	"GoldPulse/internal/analytics/portfolio"
	"GoldPulse/internal/domain/models"
	domrepo "GoldPulse/internal/domain/repository"
	"GoldPulse/pkg/util"
)

// ErrInvalidSimulation marks a request rejected before any market data was
// fetched.
var ErrInvalidSimulation = errors.New("invalid simulation request")

// SimulatorUseCase backtests a weighted portfolio over daily history.
type SimulatorUseCase struct {
	market       *MarketUseCase
	riskFreeRate float64
}

func NewSimulatorUseCase(market *MarketUseCase, riskFreeRate float64) *SimulatorUseCase {
	return &SimulatorUseCase{market: market, riskFreeRate: riskFreeRate}
}

func (uc *SimulatorUseCase) Simulate(ctx context.Context, req *models.SimulateRequest) (*models.SimulationResult, error) {
	start, err := util.ParseDay(req.StartDate)
	if err != nil {
		return nil, fmt.Errorf("start date %q: %w", req.StartDate, ErrInvalidSimulation)
	}
	end, err := util.ParseDay(req.EndDate)
	if err != nil {
		return nil, fmt.Errorf("end date %q: %w", req.EndDate, ErrInvalidSimulation)
	}
	if !start.Before(end) {
		return nil, fmt.Errorf("start date must be before end date: %w", ErrInvalidSimulation)
	}

	total := 0
	for _, a := range req.Allocations {
		total += a.Weight
	}
	if total != 100 {
		return nil, fmt.Errorf("allocation weights sum to %d, must be 100: %w", total, ErrInvalidSimulation)
	}

	positions := make([]portfolio.Position, 0, len(req.Allocations))
	for _, a := range req.Allocations {
		bars, err := uc.market.GetHistorical(ctx, GetHistoricalParams{
			Symbol:   a.Symbol,
			Range:    rangeCovering(start),
			Interval: domrepo.Interval1d,
		})
		if err != nil {
			return nil, fmt.Errorf("history for %s: %w", a.Symbol, err)
		}
		positions = append(positions, portfolio.Position{
			Symbol: a.Symbol,
			Weight: a.Weight,
			Bars:   bars,
		})
	}

	return portfolio.Simulate(portfolio.Input{
		Amount:       req.Amount,
		Start:        start,
		End:          end,
		Positions:    positions,
		RiskFreeRate: uc.riskFreeRate,
	})
}

// rangeCovering picks the smallest named range whose window reaches back to
// the simulation start.
func rangeCovering(start time.Time) domrepo.Range {
	age := time.Since(start)
	switch {
	case age <= 30*24*time.Hour:
		return domrepo.Range1M
	case age <= 92*24*time.Hour:
		return domrepo.Range3M
	case age <= 183*24*time.Hour:
		return domrepo.Range6M
	case age <= 366*24*time.Hour:
		return domrepo.Range1Y
	case age <= 5*366*24*time.Hour:
		return domrepo.Range5Y
	default:
		return domrepo.RangeAll
	}
}
