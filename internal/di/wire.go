//go:build wireinject
// +build wireinject

package di

import (
	"GoldPulse/pkg/config"
	"GoldPulse/pkg/server"

	"github.com/google/wire"
)

// InitializeApp wires up all dependencies and returns the application.
// Wire will generate the implementation of this function.
func InitializeApp(cfg *config.Config) (*server.App, error) {
	wire.Build(
		// Ambient infrastructure
		ProvideLogger,
		ProvideMetrics,
		ProvideCache,

		// Market data providers
		ProvideMarketData,
		ProvideFallbackQuoter,

		// Use cases
		ProvideMarketUseCase,
		ProvideSignalsUseCase,
		ProvideSimulatorUseCase,
		ProvideComparisonUseCase,
		ProvideLiquidityAggregator,
		ProvideLiquidityUseCase,

		// Serving surface
		ProvideStreamHub,
		ProvideRateLimiter,
		ProvideDashboardHandler,

		// Application server
		ProvideApp,
	)
	return &server.App{}, nil
}
