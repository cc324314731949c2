package models

import (
	"bytes"
	"encoding/json"
	"fmt"
)

// AggregateResponse represents the top-level reply of the Polygon
// GET /v2/aggs/ticker/{ticker}/range/... endpoint.
//
// JSON tags mirror the provider's documented schema exactly, including its
// mixed casing (request_id vs. queryCount). That casing is an external API
// contract and must not be normalized without translating it here.
//
// Fields:
//   - Adjusted: whether prices are adjusted for splits.
//   - QueryCount: number of data points the query matched.
//   - RequestID: provider-assigned identifier for the request.
//   - ResultsCount: number of entries actually returned. Not reconciled
//     against len(Results); the response is passed through as received.
//   - Status: provider status string (e.g., "OK").
//   - Ticker: the ticker symbol, echoed back.
//   - Results: aggregate bars in the order the provider returned them.
type AggregateResponse struct {
	Adjusted     bool           `json:"adjusted"`
	QueryCount   int            `json:"queryCount"`
	RequestID    string         `json:"request_id"`
	ResultsCount int            `json:"resultsCount"`
	Status       string         `json:"status"`
	Ticker       string         `json:"ticker"`
	Results      []AggregateBar `json:"results"`
}

// AggregateBar is one aggregated trading interval (one calendar day at the
// default bar size).
//
// Short JSON keys are the provider's:
//
//	c  → Close price
//	h  → High price
//	l  → Low price
//	n  → Number of transactions
//	o  → Open price
//	t  → Start of the interval, Unix milliseconds, UTC
//	v  → Trading volume
//	vw → Volume-weighted average price
type AggregateBar struct {
	Close        float64 `json:"c"`
	High         float64 `json:"h"`
	Low          float64 `json:"l"`
	Transactions int64   `json:"n"`
	Open         float64 `json:"o"`
	Timestamp    int64   `json:"t"`
	Volume       float64 `json:"v"`
	VWAP         float64 `json:"vw"`
}

// aggregateResponseKeys are the keys a well-formed aggregates reply must carry.
var aggregateResponseKeys = []string{
	"adjusted", "queryCount", "request_id", "resultsCount", "status", "ticker", "results",
}

// aggregateBarKeys are the keys every bar object must carry.
var aggregateBarKeys = []string{"c", "h", "l", "n", "o", "t", "v", "vw"}

// UnmarshalJSON decodes the aggregates reply strictly: every schema key must
// be present and non-null, unknown keys are ignored, and a value of the wrong
// type fails the decode. A response missing any required field is rejected as
// a whole; no partial result is produced.
func (r *AggregateResponse) UnmarshalJSON(data []byte) error {
	if err := requireKeys(data, aggregateResponseKeys); err != nil {
		return err
	}
	type plain AggregateResponse
	var p plain
	if err := json.Unmarshal(data, &p); err != nil {
		return err
	}
	*r = AggregateResponse(p)
	return nil
}

// UnmarshalJSON decodes one bar with the same strictness as the top-level
// response: all eight keys must be present and non-null.
func (b *AggregateBar) UnmarshalJSON(data []byte) error {
	if err := requireKeys(data, aggregateBarKeys); err != nil {
		return err
	}
	type plain AggregateBar
	var p plain
	if err := json.Unmarshal(data, &p); err != nil {
		return err
	}
	*b = AggregateBar(p)
	return nil
}

// requireKeys checks that data is a JSON object carrying every listed key with
// a non-null value. Extra keys are allowed.
func requireKeys(data []byte, keys []string) error {
	var raw map[string]json.RawMessage
	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}
	for _, k := range keys {
		v, ok := raw[k]
		if !ok {
			return fmt.Errorf("missing field %q", k)
		}
		if bytes.Equal(bytes.TrimSpace(v), []byte("null")) {
			return fmt.Errorf("field %q is null", k)
		}
	}
	return nil
}
