package api

import (
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/pyweop/polypulse/internal/domain/dto"
	"github.com/pyweop/polypulse/internal/market"
	"github.com/pyweop/polypulse/internal/polygon"
	"github.com/pyweop/polypulse/internal/service"
)

// Handler provides HTTP handlers for the market data viewer endpoints.
//
// Responsibilities:
//   - Validate incoming path and query parameters
//   - Delegate to the market service, which proxies Polygon.io
//   - Translate upstream results into JSON responses with appropriate status codes
//
// Upstream failures map to 502 Bad Gateway: the viewer itself is healthy, the
// data provider is not.
type Handler struct {
	svc service.Market
}

// NewHandler constructs a new Handler instance.
//
// Parameters:
//   - svc (service.Market): Market data service used to reach Polygon.io.
//
// Returns:
//   - *Handler: A handler ready to be registered with the router.
func NewHandler(svc service.Market) *Handler {
	return &Handler{svc: svc}
}

// validTimespans enumerates the bar resolutions Polygon accepts.
var validTimespans = map[string]bool{
	"minute":  true,
	"hour":    true,
	"day":     true,
	"week":    true,
	"month":   true,
	"quarter": true,
	"year":    true,
}

// GetAggregates handles GET /api/v1/aggs/:ticker requests.
//
// Query Parameters:
//   - from (string, optional): Window start in YYYY-MM-DD format.
//   - to (string, optional): Window end in YYYY-MM-DD format.
//   - timespan (string, optional): Bar resolution, default "day".
//   - multiplier (int, optional): Bar size multiplier, default 1.
//   - adjusted (bool, optional): Split-adjusted prices; omitted by default.
//
// When from/to are omitted the window defaults to the last 7 US trading
// days ending yesterday.
//
// GetAggregates godoc
// @Summary      Get OHLCV aggregate bars
// @Description  Returns aggregate bars for the given ticker over a date window
// @Tags         aggregates
// @Produce      json
// @Param        ticker      path      string  true   "Stock ticker" example(AAPL)
// @Param        from        query     string  false  "Window start in YYYY-MM-DD" example(2023-01-09)
// @Param        to          query     string  false  "Window end in YYYY-MM-DD" example(2023-01-13)
// @Param        timespan    query     string  false  "Bar resolution" example(day)
// @Param        multiplier  query     int     false  "Bar size multiplier" example(1)
// @Param        adjusted    query     bool    false  "Split-adjusted prices" example(true)
// @Success      200         {object}  models.AggregateResponse  "Success"
// @Failure      400         {object}  dto.ErrorResponse         "Bad Request"
// @Failure      502         {object}  dto.ErrorResponse         "Upstream Error"
// @Router       /api/v1/aggs/{ticker} [get]
func (h *Handler) GetAggregates(c *gin.Context) {
	ticker := strings.ToUpper(strings.TrimSpace(c.Param("ticker")))
	if ticker == "" {
		c.JSON(http.StatusBadRequest, dto.NewErrorResponse("ticker is required", nil))
		return
	}

	// Default window: last 7 US trading days ending yesterday.
	yday := time.Now().UTC().AddDate(0, 0, -1)
	days := market.LastNTradingDays(7, yday)
	from := days[len(days)-1].Format("2006-01-02")
	to := days[0].Format("2006-01-02")

	if s := c.Query("from"); s != "" {
		if !validDate(s) {
			c.JSON(http.StatusBadRequest, dto.NewErrorResponse("invalid from format, expected YYYY-MM-DD", nil))
			return
		}
		from = s
	}
	if s := c.Query("to"); s != "" {
		if !validDate(s) {
			c.JSON(http.StatusBadRequest, dto.NewErrorResponse("invalid to format, expected YYYY-MM-DD", nil))
			return
		}
		to = s
	}

	opts := polygon.AggsOptions{Timespan: "day", Multiplier: 1}
	if s := c.Query("timespan"); s != "" {
		if !validTimespans[s] {
			c.JSON(http.StatusBadRequest, dto.NewErrorResponse("invalid timespan", nil))
			return
		}
		opts.Timespan = s
	}
	if s := c.Query("multiplier"); s != "" {
		n, err := strconv.Atoi(s)
		if err != nil || n < 1 {
			c.JSON(http.StatusBadRequest, dto.NewErrorResponse("multiplier must be a positive integer", err))
			return
		}
		opts.Multiplier = n
	}
	if s := c.Query("adjusted"); s != "" {
		b, err := strconv.ParseBool(s)
		if err != nil {
			c.JSON(http.StatusBadRequest, dto.NewErrorResponse("adjusted must be a boolean", err))
			return
		}
		opts.Adjusted = &b
	}

	resp, err := h.svc.Aggregates(c.Request.Context(), ticker, from, to, opts)
	if err != nil {
		c.JSON(http.StatusBadGateway, dto.NewErrorResponse("failed to fetch aggregates", err))
		return
	}

	c.JSON(http.StatusOK, resp)
}

// GetTickerDetails handles GET /api/v1/tickers/:ticker requests.
//
// GetTickerDetails godoc
// @Summary      Get ticker reference details
// @Description  Returns company reference data for the given ticker
// @Tags         reference
// @Produce      json
// @Param        ticker  path      string  true  "Stock ticker" example(AAPL)
// @Success      200     {object}  models.TickerDetailsResponse  "Success"
// @Failure      400     {object}  dto.ErrorResponse             "Bad Request"
// @Failure      502     {object}  dto.ErrorResponse             "Upstream Error"
// @Router       /api/v1/tickers/{ticker} [get]
func (h *Handler) GetTickerDetails(c *gin.Context) {
	ticker := strings.ToUpper(strings.TrimSpace(c.Param("ticker")))
	if ticker == "" {
		c.JSON(http.StatusBadRequest, dto.NewErrorResponse("ticker is required", nil))
		return
	}

	resp, err := h.svc.TickerDetails(c.Request.Context(), ticker)
	if err != nil {
		c.JSON(http.StatusBadGateway, dto.NewErrorResponse("failed to fetch ticker details", err))
		return
	}

	c.JSON(http.StatusOK, resp)
}

// GetNews handles GET /api/v1/news and GET /api/v1/tickers/:ticker/news.
// On the market-wide route the ticker path parameter is empty and the
// upstream query is unrestricted.
//
// GetNews godoc
// @Summary      Get news articles
// @Description  Returns recent news, optionally restricted to one ticker
// @Tags         reference
// @Produce      json
// @Param        limit  query  int  false  "Maximum articles, default 5" example(5)
// @Success      200     {object}  models.NewsResponse  "Success"
// @Failure      400     {object}  dto.ErrorResponse    "Bad Request"
// @Failure      502     {object}  dto.ErrorResponse    "Upstream Error"
// @Router       /api/v1/news [get]
func (h *Handler) GetNews(c *gin.Context) {
	ticker := strings.ToUpper(strings.TrimSpace(c.Param("ticker")))

	limit, ok := parseLimit(c, 5)
	if !ok {
		return
	}

	resp, err := h.svc.News(c.Request.Context(), polygon.NewsQuery{Ticker: ticker, Limit: limit})
	if err != nil {
		c.JSON(http.StatusBadGateway, dto.NewErrorResponse("failed to fetch news", err))
		return
	}

	c.JSON(http.StatusOK, resp)
}

// GetSplits handles GET /api/v1/splits requests.
//
// Query Parameters:
//   - ticker (string, optional): Restrict to one ticker.
//   - limit (int, optional): Maximum events, default 50.
//   - execution_date.gt / .gte / .lt / .lte (string, optional): Date filters
//     in YYYY-MM-DD format.
//
// GetSplits godoc
// @Summary      Get stock splits
// @Description  Returns split events with the derived price adjustment factor
// @Tags         reference
// @Produce      json
// @Param        ticker              query     string  false  "Stock ticker" example(AAPL)
// @Param        limit               query     int     false  "Maximum events, default 50" example(50)
// @Param        execution_date.gte  query     string  false  "Executed on or after, YYYY-MM-DD" example(2020-01-01)
// @Param        execution_date.lte  query     string  false  "Executed on or before, YYYY-MM-DD" example(2024-12-31)
// @Success      200                 {object}  dto.SplitsResponse  "Success"
// @Failure      400                 {object}  dto.ErrorResponse   "Bad Request"
// @Failure      502                 {object}  dto.ErrorResponse   "Upstream Error"
// @Router       /api/v1/splits [get]
func (h *Handler) GetSplits(c *gin.Context) {
	limit, ok := parseLimit(c, 50)
	if !ok {
		return
	}

	q := polygon.SplitsQuery{
		Ticker: strings.ToUpper(strings.TrimSpace(c.Query("ticker"))),
		Limit:  limit,
	}
	for _, f := range []struct {
		param string
		dst   *string
	}{
		{"execution_date.gt", &q.ExecutionDateGT},
		{"execution_date.gte", &q.ExecutionDateGTE},
		{"execution_date.lt", &q.ExecutionDateLT},
		{"execution_date.lte", &q.ExecutionDateLTE},
	} {
		s := c.Query(f.param)
		if s == "" {
			continue
		}
		if !validDate(s) {
			c.JSON(http.StatusBadRequest, dto.NewErrorResponse("invalid "+f.param+" format, expected YYYY-MM-DD", nil))
			return
		}
		*f.dst = s
	}

	resp, err := h.svc.Splits(c.Request.Context(), q)
	if err != nil {
		c.JSON(http.StatusBadGateway, dto.NewErrorResponse("failed to fetch splits", err))
		return
	}

	c.JSON(http.StatusOK, dto.NewSplitsResponse(resp))
}

// GetDividends handles GET /api/v1/dividends requests.
//
// GetDividends godoc
// @Summary      Get dividend declarations
// @Description  Returns cash dividend declarations for the given ticker
// @Tags         reference
// @Produce      json
// @Param        ticker  query     string  true   "Stock ticker" example(AAPL)
// @Param        limit   query     int     false  "Maximum declarations, default 10" example(10)
// @Success      200     {object}  models.DividendsResponse  "Success"
// @Failure      400     {object}  dto.ErrorResponse         "Bad Request"
// @Failure      502     {object}  dto.ErrorResponse         "Upstream Error"
// @Router       /api/v1/dividends [get]
func (h *Handler) GetDividends(c *gin.Context) {
	ticker := strings.ToUpper(strings.TrimSpace(c.Query("ticker")))
	if ticker == "" {
		c.JSON(http.StatusBadRequest, dto.NewErrorResponse("ticker is required", nil))
		return
	}

	limit, ok := parseLimit(c, 10)
	if !ok {
		return
	}

	resp, err := h.svc.Dividends(c.Request.Context(), ticker, limit)
	if err != nil {
		c.JSON(http.StatusBadGateway, dto.NewErrorResponse("failed to fetch dividends", err))
		return
	}

	c.JSON(http.StatusOK, resp)
}

// GetFinancials handles GET /api/v1/financials requests.
//
// Query Parameters:
//   - ticker (string, required): Stock ticker symbol.
//   - limit (int, optional): Maximum filings, default 30, capped at 100.
//   - timeframe (string, optional): annual, quarterly, or ttm.
//
// GetFinancials godoc
// @Summary      Get financial filings
// @Description  Returns fundamental filing data for the given ticker
// @Tags         reference
// @Produce      json
// @Param        ticker     query     string  true   "Stock ticker" example(AAPL)
// @Param        limit      query     int     false  "Maximum filings, default 30" example(30)
// @Param        timeframe  query     string  false  "annual, quarterly, or ttm" example(annual)
// @Success      200        {object}  models.FinancialsResponse  "Success"
// @Failure      400        {object}  dto.ErrorResponse          "Bad Request"
// @Failure      502        {object}  dto.ErrorResponse          "Upstream Error"
// @Router       /api/v1/financials [get]
func (h *Handler) GetFinancials(c *gin.Context) {
	ticker := strings.ToUpper(strings.TrimSpace(c.Query("ticker")))
	if ticker == "" {
		c.JSON(http.StatusBadRequest, dto.NewErrorResponse("ticker is required", nil))
		return
	}

	limit, ok := parseLimit(c, 30)
	if !ok {
		return
	}
	if limit > 100 {
		c.JSON(http.StatusBadRequest, dto.NewErrorResponse("limit must be between 1 and 100", nil))
		return
	}

	timeframe := c.Query("timeframe")
	switch timeframe {
	case "", "annual", "quarterly", "ttm":
	default:
		c.JSON(http.StatusBadRequest, dto.NewErrorResponse("invalid timeframe, expected annual, quarterly, or ttm", nil))
		return
	}

	resp, err := h.svc.Financials(c.Request.Context(), polygon.FinancialsQuery{
		Ticker:    ticker,
		Limit:     limit,
		Timeframe: timeframe,
	})
	if err != nil {
		c.JSON(http.StatusBadGateway, dto.NewErrorResponse("failed to fetch financials", err))
		return
	}

	c.JSON(http.StatusOK, resp)
}

// parseLimit reads the limit query parameter, falling back to def. On an
// invalid value it writes the 400 response itself and reports !ok.
func parseLimit(c *gin.Context, def int) (int, bool) {
	s := c.Query("limit")
	if s == "" {
		return def, true
	}
	n, err := strconv.Atoi(s)
	if err != nil || n < 1 {
		c.JSON(http.StatusBadRequest, dto.NewErrorResponse("limit must be a positive integer", err))
		return 0, false
	}
	return n, true
}

func validDate(s string) bool {
	_, err := time.Parse("2006-01-02", s)
	return err == nil
}
