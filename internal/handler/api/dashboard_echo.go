package api

import (
	"errors"
	"strings"
	"time"

	"github.com/labstack/echo/v4"

	"GoldPulse/internal/analytics/portfolio"
	models "GoldPulse/internal/domain/models"
	domrepo "GoldPulse/internal/domain/repository"
	"GoldPulse/internal/service/ratelimit"
	"GoldPulse/internal/service/yahoo"
	"GoldPulse/internal/stream"
	"GoldPulse/internal/usecase"
	xhttp "GoldPulse/pkg/http"
	xlogger "GoldPulse/pkg/logger"
)

// DashboardHandler exposes the dashboard's REST and WebSocket surface.
type DashboardHandler struct {
	logger     *xlogger.Logger
	market     *usecase.MarketUseCase
	signals    *usecase.SignalsUseCase
	simulator  *usecase.SimulatorUseCase
	comparison *usecase.ComparisonUseCase
	liquidity  *usecase.LiquidityUseCase
	hub        *stream.Hub // nil when streaming is disabled
	limiter    echo.MiddlewareFunc
	goldSymbol string
}

func NewDashboardHandler(
	logger *xlogger.Logger,
	market *usecase.MarketUseCase,
	signals *usecase.SignalsUseCase,
	simulator *usecase.SimulatorUseCase,
	comparison *usecase.ComparisonUseCase,
	liquidity *usecase.LiquidityUseCase,
	hub *stream.Hub,
	limiter *ratelimit.Limiter,
	metrics domrepo.Metrics,
	goldSymbol string,
) *DashboardHandler {
	h := &DashboardHandler{
		logger:     logger,
		market:     market,
		signals:    signals,
		simulator:  simulator,
		comparison: comparison,
		liquidity:  liquidity,
		hub:        hub,
		goldSymbol: goldSymbol,
	}
	if limiter != nil {
		h.limiter = ratelimit.Middleware(limiter, metrics)
	}
	return h
}

func (h *DashboardHandler) RegisterRoutes(e *echo.Echo) {
	e.GET("/api/health", h.Health)

	g := e.Group("/api")
	if h.limiter != nil {
		g.Use(h.limiter)
	}
	g.GET("/quotes/:symbol", h.Quote)
	g.GET("/batch", h.BatchQuotes)
	g.GET("/historical/:symbol", h.Historical)
	g.GET("/gold-price", h.GoldPrice)
	g.GET("/gold-liquidity", h.GoldLiquidity)
	g.GET("/gold-liquidity/history", h.GoldLiquidityHistory)
	g.GET("/signals/:symbol", h.Signals)
	g.POST("/simulate", h.Simulate)
	g.GET("/correlation", h.Correlation)
	g.GET("/compare", h.Compare)

	if h.hub != nil {
		e.GET("/ws/quotes", h.hub.ServeWS)
	}
}

func (h *DashboardHandler) Health(c echo.Context) error {
	return xhttp.SuccessResponse(c, map[string]interface{}{
		"status":    "ok",
		"timestamp": time.Now().UnixMilli(),
	})
}

// respondError maps domain failures onto the HTTP error taxonomy.
func (h *DashboardHandler) respondError(c echo.Context, op string, err error) error {
	h.logger.Error(op+" usecase error", xlogger.Error(err))

	var insufficient *portfolio.InsufficientDataError
	switch {
	case errors.Is(err, yahoo.ErrNoData):
		return xhttp.AppErrorResponse(c, xhttp.NotFoundErrorf("no data for symbol"))
	case errors.As(err, &insufficient):
		return xhttp.AppErrorResponse(c, xhttp.BadRequestError(insufficient.Error()))
	default:
		return xhttp.AppErrorResponse(c, xhttp.UpstreamError("market data unavailable"))
	}
}

func (h *DashboardHandler) Quote(c echo.Context) error {
	symbol := c.Param("symbol")
	res, err := h.market.GetQuote(c.Request().Context(), symbol)
	if err != nil {
		return h.respondError(c, "quote", err)
	}
	return xhttp.SuccessResponse(c, res)
}

func (h *DashboardHandler) BatchQuotes(c echo.Context) error {
	req := &models.BatchQuotesRequest{}
	if verr := xhttp.ReadAndValidateRequest(c, req); verr != nil {
		return xhttp.BadRequestResponse(c, verr)
	}

	res, err := h.market.GetBatchQuotes(c.Request().Context(), strings.Split(req.Symbols, ","))
	if err != nil {
		return h.respondError(c, "batch", err)
	}
	return xhttp.SuccessResponse(c, res)
}

func (h *DashboardHandler) Historical(c echo.Context) error {
	req := &models.HistoricalRequest{}
	if verr := xhttp.ReadAndValidateRequest(c, req); verr != nil {
		return xhttp.BadRequestResponse(c, verr)
	}

	res, err := h.market.GetHistorical(c.Request().Context(), usecase.GetHistoricalParams{
		Symbol:   c.Param("symbol"),
		Range:    domrepo.NormalizeRange(req.Range),
		Interval: domrepo.Interval(req.Interval),
	})
	if err != nil {
		return h.respondError(c, "historical", err)
	}
	return xhttp.SuccessResponse(c, res)
}

func (h *DashboardHandler) GoldPrice(c echo.Context) error {
	res, err := h.market.GetGoldPrice(c.Request().Context(), h.goldSymbol)
	if err != nil {
		return h.respondError(c, "gold-price", err)
	}
	return xhttp.SuccessResponse(c, res)
}

func (h *DashboardHandler) GoldLiquidity(c echo.Context) error {
	res, err := h.liquidity.GetSnapshot(c.Request().Context())
	if err != nil {
		return h.respondError(c, "gold-liquidity", err)
	}
	return xhttp.SuccessResponse(c, res)
}

func (h *DashboardHandler) GoldLiquidityHistory(c echo.Context) error {
	req := &models.LiquidityHistoryRequest{}
	if verr := xhttp.ReadAndValidateRequest(c, req); verr != nil {
		return xhttp.BadRequestResponse(c, verr)
	}

	res, err := h.liquidity.GetHistory(c.Request().Context(), usecase.GetLiquidityHistoryParams{
		Range:      domrepo.NormalizeRange(req.Range),
		SpikeLimit: req.Spikes,
	})
	if err != nil {
		return h.respondError(c, "gold-liquidity-history", err)
	}
	return xhttp.SuccessResponse(c, res)
}

func (h *DashboardHandler) Signals(c echo.Context) error {
	req := &models.SignalsRequest{}
	if verr := xhttp.ReadAndValidateRequest(c, req); verr != nil {
		return xhttp.BadRequestResponse(c, verr)
	}

	res, err := h.signals.GetSignals(c.Request().Context(), usecase.GetSignalsParams{
		Symbol: c.Param("symbol"),
		Range:  domrepo.NormalizeRange(req.Range),
	})
	if err != nil {
		return h.respondError(c, "signals", err)
	}
	return xhttp.SuccessResponse(c, res)
}

func (h *DashboardHandler) Simulate(c echo.Context) error {
	req := &models.SimulateRequest{}
	if verr := xhttp.ReadAndValidateRequest(c, req); verr != nil {
		return xhttp.BadRequestResponse(c, verr)
	}

	res, err := h.simulator.Simulate(c.Request().Context(), req)
	if err != nil {
		if errors.Is(err, usecase.ErrInvalidSimulation) {
			return xhttp.AppErrorResponse(c, xhttp.BadRequestError(err.Error()))
		}
		return h.respondError(c, "simulate", err)
	}
	return xhttp.SuccessResponse(c, res)
}

func (h *DashboardHandler) Correlation(c echo.Context) error {
	req := &models.CorrelationRequest{}
	if verr := xhttp.ReadAndValidateRequest(c, req); verr != nil {
		return xhttp.BadRequestResponse(c, verr)
	}

	symbols := strings.Split(req.Symbols, ",")
	if len(symbols) < 2 {
		return xhttp.AppErrorResponse(c, xhttp.BadRequestError("at least two symbols required"))
	}

	res, err := h.comparison.Correlate(c.Request().Context(), usecase.CorrelateParams{
		Symbols: symbols,
		Range:   domrepo.NormalizeRange(req.Range),
	})
	if err != nil {
		return h.respondError(c, "correlation", err)
	}
	return xhttp.SuccessResponse(c, res)
}

func (h *DashboardHandler) Compare(c echo.Context) error {
	req := &models.CompareRequest{}
	if verr := xhttp.ReadAndValidateRequest(c, req); verr != nil {
		return xhttp.BadRequestResponse(c, verr)
	}

	res, err := h.comparison.Compare(c.Request().Context(), usecase.CompareParams{
		Symbols: strings.Split(req.Symbols, ","),
		Range:   domrepo.NormalizeRange(req.Range),
	})
	if err != nil {
		return h.respondError(c, "compare", err)
	}
	return xhttp.SuccessResponse(c, res)
}
