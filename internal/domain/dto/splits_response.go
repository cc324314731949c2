package dto

import "github.com/pyweop/polypulse/internal/domain/models"

// SplitResponse is one split event as returned by GET /api/v1/splits.
//
// Fields match the API contract and may differ from internal domain models.
// AdjustmentFactor is computed server-side (split_from / split_to) so clients
// need not derive it.
type SplitResponse struct {
	Ticker           string  `json:"ticker" example:"AAPL"`
	ExecutionDate    string  `json:"execution_date" example:"2020-08-31"`
	SplitFrom        float64 `json:"split_from" example:"1"`
	SplitTo          float64 `json:"split_to" example:"4"`
	AdjustmentFactor float64 `json:"adj_factor" example:"0.25"`
}

// SplitsResponse is the JSON structure returned by GET /api/v1/splits.
type SplitsResponse struct {
	RequestID string          `json:"request_id"`
	Status    string          `json:"status" example:"OK"`
	Results   []SplitResponse `json:"results"`
}

// NewSplitsResponse maps the provider reply onto the API payload, attaching
// the adjustment factor to every split.
func NewSplitsResponse(m *models.SplitsResponse) SplitsResponse {
	out := SplitsResponse{
		RequestID: m.RequestID,
		Status:    m.Status,
		Results:   make([]SplitResponse, 0, len(m.Results)),
	}
	for _, s := range m.Results {
		out.Results = append(out.Results, SplitResponse{
			Ticker:           s.Ticker,
			ExecutionDate:    s.ExecutionDate,
			SplitFrom:        s.SplitFrom,
			SplitTo:          s.SplitTo,
			AdjustmentFactor: s.AdjustmentFactor(),
		})
	}
	return out
}
