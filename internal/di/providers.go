package di

import (
	"fmt"
	"strings"

	"GoldPulse/internal/analytics/liquidity"
	"GoldPulse/internal/domain/repository"
	"GoldPulse/internal/handler/api"
	"GoldPulse/internal/refdata"
	"GoldPulse/internal/service/alphavantage"
	"GoldPulse/internal/service/ratelimit"
	"GoldPulse/internal/service/yahoo"
	"GoldPulse/internal/stream"
	"GoldPulse/internal/usecase"
	"GoldPulse/pkg/cache"
	"GoldPulse/pkg/config"
	"GoldPulse/pkg/logger"
	"GoldPulse/pkg/metrics"
	"GoldPulse/pkg/server"
)

// ProvideLogger creates the application logger from config.
func ProvideLogger(cfg *config.Config) (*logger.Logger, error) {
	level := cfg.Log.Level
	if level == "" {
		level = "info"
	}
	format := cfg.Log.Format
	if format == "" {
		format = "console"
	}
	output := cfg.Log.Output
	if output == "" {
		output = "stdout"
	}
	return logger.New(&logger.Config{Level: level, Format: format, Output: output})
}

// ProvideMetrics creates a Prometheus metrics recorder.
func ProvideMetrics() repository.Metrics {
	return metrics.New()
}

// ProvideCache creates the cache backend: layered memory+Redis when Redis
// is configured, plain in-process memory otherwise.
func ProvideCache(cfg *config.Config) (cache.Service, error) {
	if !cfg.Cache.Redis.Enabled {
		return cache.NewMemoryCache(), nil
	}

	host, port := splitAddr(cfg.Cache.Redis.Addr)
	redisCache, err := cache.NewRedisCache(
		cache.WithRedisHost(host),
		cache.WithRedisPort(port),
		cache.WithRedisPassword(cfg.Cache.Redis.Password),
		cache.WithRedisDB(cfg.Cache.Redis.DB),
	)
	if err != nil {
		return nil, fmt.Errorf("redis cache: %w", err)
	}
	return cache.NewLayeredCache(redisCache), nil
}

func splitAddr(addr string) (string, int) {
	host, port := "localhost", 6379
	if addr == "" {
		return host, port
	}
	if i := strings.LastIndex(addr, ":"); i >= 0 {
		if h := addr[:i]; h != "" {
			host = h
		}
		fmt.Sscanf(addr[i+1:], "%d", &port)
	} else {
		host = addr
	}
	return host, port
}

// ProvideMarketData creates the Yahoo chart client.
func ProvideMarketData(cfg *config.Config, log *logger.Logger, m repository.Metrics) repository.MarketData {
	return yahoo.NewClient(&yahoo.Config{
		BaseURL:   cfg.Yahoo.BaseURL,
		Timeout:   cfg.Yahoo.Timeout,
		UserAgent: cfg.Yahoo.UserAgent,
	}, log, m)
}

// ProvideFallbackQuoter creates the Alpha Vantage fallback, or nil when it
// is not configured.
func ProvideFallbackQuoter(cfg *config.Config, m repository.Metrics) usecase.Quoter {
	if !cfg.AlphaVantage.Enabled {
		return nil
	}
	return alphavantage.NewClient(&alphavantage.Config{
		APIKey:  cfg.AlphaVantage.APIKey,
		BaseURL: cfg.AlphaVantage.BaseURL,
		Timeout: cfg.AlphaVantage.Timeout,
	}, m)
}

// ProvideMarketUseCase wires the market data flow with its cache TTLs.
func ProvideMarketUseCase(
	cfg *config.Config,
	market repository.MarketData,
	fallback usecase.Quoter,
	c cache.Service,
	log *logger.Logger,
	m repository.Metrics,
) *usecase.MarketUseCase {
	return usecase.NewMarketUseCase(market, fallback, c, usecase.CacheTTL{
		Quote:    cfg.Cache.TTL.Quote,
		Intraday: cfg.Cache.TTL.Intraday,
		Daily:    cfg.Cache.TTL.Daily,
		Gold:     cfg.Cache.TTL.Gold,
	}, log, m)
}

// ProvideSignalsUseCase wires the indicator engine.
func ProvideSignalsUseCase(market *usecase.MarketUseCase) *usecase.SignalsUseCase {
	return usecase.NewSignalsUseCase(market)
}

// ProvideSimulatorUseCase wires the portfolio simulator.
func ProvideSimulatorUseCase(cfg *config.Config, market *usecase.MarketUseCase) *usecase.SimulatorUseCase {
	return usecase.NewSimulatorUseCase(market, cfg.Simulator.RiskFreeRate)
}

// ProvideComparisonUseCase wires correlation and comparison.
func ProvideComparisonUseCase(market *usecase.MarketUseCase, log *logger.Logger) *usecase.ComparisonUseCase {
	return usecase.NewComparisonUseCase(market, log)
}

// ProvideLiquidityAggregator builds the aggregator over the static
// reference tables.
func ProvideLiquidityAggregator(cfg *config.Config) *liquidity.Aggregator {
	return liquidity.NewAggregator(
		refdata.GoldInstruments(),
		refdata.SourceBreakdown(),
		refdata.RegionData(),
		refdata.MarketEvents(),
		liquidity.WithSpikeThreshold(cfg.Liquidity.SpikeThreshold),
		liquidity.WithSpikeLimit(cfg.Liquidity.SpikeLimit),
		liquidity.WithEventWindow(cfg.Liquidity.EventWindow),
	)
}

// ProvideLiquidityUseCase wires the liquidity views.
func ProvideLiquidityUseCase(
	cfg *config.Config,
	market *usecase.MarketUseCase,
	agg *liquidity.Aggregator,
	c cache.Service,
	log *logger.Logger,
) *usecase.LiquidityUseCase {
	return usecase.NewLiquidityUseCase(market, agg, refdata.GoldSymbols(), c, cfg.Cache.TTL.Gold, log)
}

// ProvideStreamHub creates the WebSocket hub, or nil when streaming is
// disabled.
func ProvideStreamHub(cfg *config.Config, market *usecase.MarketUseCase, log *logger.Logger) *stream.Hub {
	if !cfg.Stream.Enabled {
		return nil
	}
	symbols := cfg.Stream.Symbols
	if len(symbols) == 0 {
		symbols = refdata.GoldSymbols()
	}
	return stream.NewHub(market, symbols, cfg.Stream.PushInterval, log)
}

// ProvideRateLimiter creates the per-client limiter, or nil when disabled.
func ProvideRateLimiter(cfg *config.Config) *ratelimit.Limiter {
	if !cfg.RateLimit.Enabled {
		return nil
	}
	return ratelimit.New(cfg.RateLimit.Requests, cfg.RateLimit.Window)
}

// ProvideDashboardHandler assembles the HTTP surface.
func ProvideDashboardHandler(
	log *logger.Logger,
	market *usecase.MarketUseCase,
	signals *usecase.SignalsUseCase,
	simulator *usecase.SimulatorUseCase,
	comparison *usecase.ComparisonUseCase,
	liq *usecase.LiquidityUseCase,
	hub *stream.Hub,
	limiter *ratelimit.Limiter,
	m repository.Metrics,
) *api.DashboardHandler {
	return api.NewDashboardHandler(log, market, signals, simulator, comparison, liq, hub, limiter, m, "GC=F")
}

// ProvideApp assembles the application.
func ProvideApp(
	cfg *config.Config,
	log *logger.Logger,
	handler *api.DashboardHandler,
	hub *stream.Hub,
	limiter *ratelimit.Limiter,
) *server.App {
	return server.New(cfg, log, handler, hub, limiter)
}
