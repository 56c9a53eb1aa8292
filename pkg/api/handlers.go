package api

import (
	"context"
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/quantfolio/portfolio-analytics/internal/charts"
	"github.com/quantfolio/portfolio-analytics/internal/publisher"
	"github.com/quantfolio/portfolio-analytics/internal/remote"
	"github.com/quantfolio/portfolio-analytics/internal/store"
	"github.com/quantfolio/portfolio-analytics/internal/synth"
	"github.com/quantfolio/portfolio-analytics/internal/websocket"
	"github.com/quantfolio/portfolio-analytics/pkg/metrics"
	"github.com/quantfolio/portfolio-analytics/pkg/models"
	"github.com/quantfolio/portfolio-analytics/pkg/utils/errors"
	"github.com/quantfolio/portfolio-analytics/pkg/utils/logger"
)

// Handlers contains all HTTP handlers for the API
type Handlers struct {
	store       *store.PortfolioStore
	hub         *websocket.Hub
	publisher   *publisher.Publisher // nil when publishing is disabled
	remote      *remote.Client       // nil when no backend is configured
	recorder    *metrics.Recorder
	tradingDays int
	log         *logger.Logger
}

// CreateHandlers creates new API handlers. publisher and remoteClient may
// be nil.
func CreateHandlers(
	portfolioStore *store.PortfolioStore,
	hub *websocket.Hub,
	snapshotPublisher *publisher.Publisher,
	remoteClient *remote.Client,
	recorder *metrics.Recorder,
	tradingDays int,
) *Handlers {
	return &Handlers{
		store:       portfolioStore,
		hub:         hub,
		publisher:   snapshotPublisher,
		remote:      remoteClient,
		recorder:    recorder,
		tradingDays: tradingDays,
		log:         logger.GetLogger("api.handlers"),
	}
}

// HealthCheckHandler handles health check requests
func (h *Handlers) HealthCheckHandler(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"status":    "ok",
		"timestamp": time.Now().Format(time.RFC3339),
		"version":   "1.0.0",
	})
}

// generateRequest is the POST /portfolios payload. Field names follow the
// dashboard backend's wire format.
type generateRequest struct {
	ID               string  `json:"id" binding:"required"`
	Name             string  `json:"name" binding:"required"`
	Description      string  `json:"description"`
	Currency         string  `json:"currency"`
	Benchmark        string  `json:"benchmark"`
	Seed             int     `json:"seed"`
	AnnualReturn     float64 `json:"annualReturn"`
	AnnualVolatility float64 `json:"annualVolatility"`
	BenchmarkReturn  float64 `json:"benchReturn"`
	BenchmarkVol     float64 `json:"benchVol"`
	StartValue       float64 `json:"startValue"`
	PositionSet      string  `json:"positionSet"`
}

// GeneratePortfolioHandler synthesizes a portfolio from posted parameters
// and stores it.
func (h *Handlers) GeneratePortfolioHandler(c *gin.Context) {
	var req generateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid generation request: " + err.Error()})
		return
	}

	cfg := synth.Config{
		ID:           req.ID,
		Name:         req.Name,
		Description:  req.Description,
		Currency:     req.Currency,
		Benchmark:    req.Benchmark,
		Seed:         req.Seed,
		AnnualReturn: req.AnnualReturn,
		AnnualVol:    req.AnnualVolatility,
		BenchReturn:  req.BenchmarkReturn,
		BenchVol:     req.BenchmarkVol,
		StartValue:   req.StartValue,
		PositionSet:  req.PositionSet,
		TradingDays:  h.tradingDays,
	}

	start := time.Now()
	portfolio, err := synth.Generate(cfg)
	h.recorder.RecordGeneration(cfg.PositionSet, err, time.Since(start))
	if err != nil {
		h.respondError(c, err)
		return
	}

	if err := h.store.Save(portfolio); err != nil {
		h.respondError(c, err)
		return
	}
	h.recorder.RecordPortfolioValue(portfolio.ID, portfolio.Summary.TotalValue)
	h.hub.NotifyPortfolioUpdated(portfolio.ID)
	h.publishSnapshot(portfolio)

	c.JSON(http.StatusCreated, portfolio)
}

// ListPortfoliosHandler returns all portfolios. When a backend is
// configured it is asked first; synthesized data serves as the fallback.
func (h *Handlers) ListPortfoliosHandler(c *gin.Context) {
	if h.remote != nil {
		portfolios, err := h.remote.ListPortfolios(c.Request.Context())
		if err == nil {
			c.JSON(http.StatusOK, portfolios)
			return
		}
		h.log.Warnf("Falling back to synthesized portfolios: %v", err)
		h.recorder.RecordRemoteFallback()
	}
	c.JSON(http.StatusOK, h.store.List())
}

// GetPortfolioHandler returns one portfolio by id, preferring the backend
// when configured.
func (h *Handlers) GetPortfolioHandler(c *gin.Context) {
	id := c.Param("id")

	if h.remote != nil {
		portfolio, err := h.remote.GetPortfolio(c.Request.Context(), id)
		if err == nil {
			c.JSON(http.StatusOK, portfolio)
			return
		}
		if !errors.IsType(err, errors.ErrorTypeNotFound) {
			h.log.Warnf("Falling back to synthesized portfolio %s: %v", id, err)
			h.recorder.RecordRemoteFallback()
		}
	}

	portfolio, err := h.store.Get(id)
	if err != nil {
		h.respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, portfolio)
}

// DeletePortfolioHandler removes a portfolio from the store.
func (h *Handlers) DeletePortfolioHandler(c *gin.Context) {
	if err := h.store.Delete(c.Param("id")); err != nil {
		h.respondError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

// ActivatePortfolioHandler switches the active portfolio selection.
func (h *Handlers) ActivatePortfolioHandler(c *gin.Context) {
	id := c.Param("id")
	if err := h.store.SetActive(id); err != nil {
		h.respondError(c, err)
		return
	}
	h.hub.NotifyActiveChanged(id)
	c.JSON(http.StatusOK, gin.H{"active": id})
}

// GetAnalyticsHandler returns the analytics slice of a portfolio.
func (h *Handlers) GetAnalyticsHandler(c *gin.Context) {
	portfolio, err := h.store.Get(c.Param("id"))
	if err != nil {
		h.respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{
		"riskMetrics":         portfolio.RiskMetrics,
		"performanceData":     portfolio.PerformanceData,
		"monthlyReturns":      portfolio.MonthlyReturns,
		"returnDistribution":  portfolio.ReturnDistribution,
		"correlationMatrix":   portfolio.CorrelationMatrix,
		"drawdownData":        portfolio.DrawdownData,
		"rollingVolatility":   portfolio.RollingVolatility,
		"rollingCorrelation":  portfolio.RollingCorrelation,
		"stressScenarios":     portfolio.StressScenarios,
		"stressContributions": portfolio.StressContributions,
	})
}

// GetTransactionsHandler returns the synthesized ledger.
func (h *Handlers) GetTransactionsHandler(c *gin.Context) {
	portfolio, err := h.store.Get(c.Param("id"))
	if err != nil {
		h.respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, portfolio.Transactions)
}

// GetFrontierHandler returns the efficient frontier data set.
func (h *Handlers) GetFrontierHandler(c *gin.Context) {
	portfolio, err := h.store.Get(c.Param("id"))
	if err != nil {
		h.respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{
		"efficientFrontierData": portfolio.EfficientFrontier,
		"currentPortfolioPoint": portfolio.CurrentPoint,
		"minVolPoint":           portfolio.MinVolPoint,
		"maxSharpePoint":        portfolio.MaxSharpePoint,
		"optimizedWeights":      portfolio.OptimizedWeights,
	})
}

// scenarioRequest is the POST scenario payload.
type scenarioRequest struct {
	Name           string  `json:"name" binding:"required"`
	Description    string  `json:"description"`
	Type           string  `json:"type"`
	EquityShock    float64 `json:"equityShock"`
	BondShock      float64 `json:"bondShock"`
	CommodityShock float64 `json:"commodityShock"`
}

// AddScenarioHandler creates a user-defined stress scenario. The
// portfolio impact is the allocation-weighted sum of the class shocks;
// the worst position takes its class shock scaled by per-position
// variance.
func (h *Handlers) AddScenarioHandler(c *gin.Context) {
	var req scenarioRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid scenario request: " + err.Error()})
		return
	}

	scenarioType := models.ScenarioParametric
	switch req.Type {
	case "", string(models.ScenarioParametric):
	case string(models.ScenarioHistorical):
		scenarioType = models.ScenarioHistorical
	default:
		c.JSON(http.StatusBadRequest, gin.H{"error": "Scenario type must be historical or parametric"})
		return
	}

	id := c.Param("id")
	portfolio, err := h.store.Get(id)
	if err != nil {
		h.respondError(c, err)
		return
	}

	description := req.Description
	if description == "" {
		description = "Custom " + string(scenarioType) + " scenario"
	}

	worstSymbol, worstImpact := synth.WorstPosition(portfolio.Positions, req.EquityShock, req.BondShock, req.CommodityShock)
	scenario := models.StressScenario{
		Name:                req.Name,
		Description:         description,
		Type:                scenarioType,
		EquityShock:         req.EquityShock,
		BondShock:           req.BondShock,
		CommodityShock:      req.CommodityShock,
		PortfolioImpact:     synth.ScenarioImpact(portfolio.AllocationByClass, req.EquityShock, req.BondShock, req.CommodityShock),
		WorstPosition:       worstSymbol,
		WorstPositionImpact: worstImpact,
	}

	stored, err := h.store.AddScenario(id, scenario)
	if err != nil {
		h.respondError(c, err)
		return
	}
	h.hub.NotifyPortfolioUpdated(id)
	c.JSON(http.StatusCreated, stored)
}

// RemoveScenarioHandler deletes a stress scenario.
func (h *Handlers) RemoveScenarioHandler(c *gin.Context) {
	scenarioID, err := strconv.Atoi(c.Param("sid"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Scenario id must be an integer"})
		return
	}
	id := c.Param("id")
	if err := h.store.RemoveScenario(id, scenarioID); err != nil {
		h.respondError(c, err)
		return
	}
	h.hub.NotifyPortfolioUpdated(id)
	c.Status(http.StatusNoContent)
}

// GetChartHandler renders a portfolio series as a PNG line chart.
func (h *Handlers) GetChartHandler(c *gin.Context) {
	portfolio, err := h.store.Get(c.Param("id"))
	if err != nil {
		h.respondError(c, err)
		return
	}

	series := c.DefaultQuery("series", charts.SeriesPerformance)
	png, err := charts.Render(portfolio, series)
	if err != nil {
		h.respondError(c, err)
		return
	}
	h.recorder.RecordChartRender(series)
	c.Data(http.StatusOK, "image/png", png)
}

func (h *Handlers) publishSnapshot(portfolio *models.Portfolio) {
	if h.publisher == nil {
		return
	}
	snapshot := publisher.SnapshotOf(portfolio, time.Now())
	go func() {
		ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		err := h.publisher.Publish(ctx, snapshot)
		h.recorder.RecordSnapshotPublish(err)
	}()
}

func (h *Handlers) respondError(c *gin.Context, err error) {
	status := http.StatusInternalServerError
	switch errors.TypeOf(err) {
	case errors.ErrorTypeInvalidArgument:
		status = http.StatusBadRequest
	case errors.ErrorTypeNotFound:
		status = http.StatusNotFound
	case errors.ErrorTypeUnavailable:
		status = http.StatusBadGateway
	}
	c.JSON(status, gin.H{"error": err.Error()})
}
