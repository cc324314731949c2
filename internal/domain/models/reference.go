package models

// Reference-data schemas for the Polygon v2/v3/vX reference endpoints.
//
// Unlike the aggregates schema, these decode leniently: keys the provider
// omits simply stay at their zero value. The reference endpoints evolve more
// often than the aggregates contract.

// TickerDetailsResponse is the reply of GET /v3/reference/tickers/{ticker}.
type TickerDetailsResponse struct {
	RequestID string        `json:"request_id"`
	Status    string        `json:"status"`
	Results   TickerDetails `json:"results"`
}

// TickerDetails describes one listed company.
type TickerDetails struct {
	Ticker                      string   `json:"ticker"`
	Name                        string   `json:"name"`
	Market                      string   `json:"market"`
	Locale                      string   `json:"locale"`
	PrimaryExchange             string   `json:"primary_exchange"`
	Type                        string   `json:"type"`
	Active                      bool     `json:"active"`
	CurrencyName                string   `json:"currency_name"`
	CIK                         string   `json:"cik"`
	CompositeFIGI               string   `json:"composite_figi"`
	ShareClassFIGI              string   `json:"share_class_figi"`
	MarketCap                   float64  `json:"market_cap"`
	PhoneNumber                 string   `json:"phone_number"`
	Address                     Address  `json:"address"`
	Description                 string   `json:"description"`
	SICCode                     string   `json:"sic_code"`
	SICDescription              string   `json:"sic_description"`
	TickerRoot                  string   `json:"ticker_root"`
	HomepageURL                 string   `json:"homepage_url"`
	TotalEmployees              int64    `json:"total_employees"`
	ListDate                    string   `json:"list_date"`
	Branding                    Branding `json:"branding"`
	ShareClassSharesOutstanding int64    `json:"share_class_shares_outstanding"`
	WeightedSharesOutstanding   int64    `json:"weighted_shares_outstanding"`
	RoundLot                    int64    `json:"round_lot"`
}

// Address is the company headquarters address block.
type Address struct {
	Address1   string `json:"address1"`
	City       string `json:"city"`
	State      string `json:"state"`
	PostalCode string `json:"postal_code"`
}

// Branding carries the provider-hosted logo assets. The URLs require the
// apiKey query parameter to be appended before they resolve.
type Branding struct {
	LogoURL string `json:"logo_url"`
	IconURL string `json:"icon_url"`
}

// SplitsResponse is the reply of GET /v3/reference/splits.
//
// NextURL is decoded for completeness but never followed: every operation
// issues exactly one request.
type SplitsResponse struct {
	RequestID string  `json:"request_id"`
	Status    string  `json:"status"`
	NextURL   string  `json:"next_url"`
	Results   []Split `json:"results"`
}

// Split is one historical stock split event.
type Split struct {
	ID            string  `json:"id"`
	Ticker        string  `json:"ticker"`
	ExecutionDate string  `json:"execution_date"`
	SplitFrom     float64 `json:"split_from"`
	SplitTo       float64 `json:"split_to"`
}

// AdjustmentFactor returns split_from / split_to, the factor by which prices
// before ExecutionDate must be multiplied to be comparable with prices after.
func (s Split) AdjustmentFactor() float64 {
	return s.SplitFrom / s.SplitTo
}

// DividendsResponse is the reply of GET /v3/reference/dividends.
type DividendsResponse struct {
	RequestID string     `json:"request_id"`
	Status    string     `json:"status"`
	NextURL   string     `json:"next_url"`
	Results   []Dividend `json:"results"`
}

// Dividend is one cash dividend declaration.
type Dividend struct {
	ID              string  `json:"id"`
	Ticker          string  `json:"ticker"`
	CashAmount      float64 `json:"cash_amount"`
	Currency        string  `json:"currency"`
	DeclarationDate string  `json:"declaration_date"`
	DividendType    string  `json:"dividend_type"`
	ExDividendDate  string  `json:"ex_dividend_date"`
	Frequency       int64   `json:"frequency"`
	PayDate         string  `json:"pay_date"`
	RecordDate      string  `json:"record_date"`
}

// NewsResponse is the reply of GET /v2/reference/news.
type NewsResponse struct {
	RequestID string        `json:"request_id"`
	Status    string        `json:"status"`
	Count     int           `json:"count"`
	NextURL   string        `json:"next_url"`
	Results   []NewsArticle `json:"results"`
}

// NewsArticle is one published news item, possibly tagged with several tickers.
type NewsArticle struct {
	ID           string    `json:"id"`
	Publisher    Publisher `json:"publisher"`
	Title        string    `json:"title"`
	Author       string    `json:"author"`
	PublishedUTC string    `json:"published_utc"`
	ArticleURL   string    `json:"article_url"`
	Tickers      []string  `json:"tickers"`
	ImageURL     string    `json:"image_url"`
	Description  string    `json:"description"`
	Keywords     []string  `json:"keywords"`
	AmpURL       string    `json:"amp_url"`
}

// Publisher identifies the outlet behind a news article.
type Publisher struct {
	Name        string `json:"name"`
	HomepageURL string `json:"homepage_url"`
	LogoURL     string `json:"logo_url"`
	FaviconURL  string `json:"favicon_url"`
}

// FinancialsResponse is the reply of GET /vX/reference/financials.
// The endpoint is marked experimental by the provider ("vX"), hence the
// fully lenient decode.
type FinancialsResponse struct {
	RequestID string           `json:"request_id"`
	Status    string           `json:"status"`
	NextURL   string           `json:"next_url"`
	Results   []StockFinancial `json:"results"`
}

// StockFinancial is one filing period for one company. Financials maps
// statement name (e.g. "income_statement", "cash_flow_statement") to the
// statement's line items, keyed by provider line-item name.
type StockFinancial struct {
	CIK          string               `json:"cik"`
	CompanyName  string               `json:"company_name"`
	FiscalYear   string               `json:"fiscal_year"`
	FiscalPeriod string               `json:"fiscal_period"`
	StartDate    string               `json:"start_date"`
	EndDate      string               `json:"end_date"`
	FilingDate   string               `json:"filing_date"`
	Timeframe    string               `json:"timeframe"`
	Financials   map[string]Statement `json:"financials"`
}

// Statement is one financial statement: line-item name to data point.
type Statement map[string]DataPoint

// DataPoint is a single reported figure.
type DataPoint struct {
	Label string  `json:"label"`
	Order int64   `json:"order"`
	Unit  string  `json:"unit"`
	Value float64 `json:"value"`
}

// LineValue returns the value of the line item whose display label matches,
// searching every statement. Absent labels yield 0.
func (f StockFinancial) LineValue(label string) float64 {
	for _, stmt := range f.Financials {
		for _, dp := range stmt {
			if dp.Label == label {
				return dp.Value
			}
		}
	}
	return 0
}

// FreeCashFlow derives operating plus investing net cash flow. Either line
// being absent contributes 0.
func (f StockFinancial) FreeCashFlow() float64 {
	op := f.LineValue("Net Cash Flow From Operating Activities")
	inv := f.LineValue("Net Cash Flow From Investing Activities")
	return op + inv
}
