package service

import (
	"context"

	"github.com/pyweop/polypulse/internal/domain/models"
	"github.com/pyweop/polypulse/internal/polygon"
)

// Market defines business logic for querying market data.
type Market interface {
	Aggregates(ctx context.Context, ticker, from, to string, opts polygon.AggsOptions) (*models.AggregateResponse, error)
	TickerDetails(ctx context.Context, ticker string) (*models.TickerDetailsResponse, error)
	Financials(ctx context.Context, q polygon.FinancialsQuery) (*models.FinancialsResponse, error)
	Splits(ctx context.Context, q polygon.SplitsQuery) (*models.SplitsResponse, error)
	Dividends(ctx context.Context, ticker string, limit int) (*models.DividendsResponse, error)
	News(ctx context.Context, q polygon.NewsQuery) (*models.NewsResponse, error)
}

type marketService struct {
	client *polygon.Client
}

func NewMarketService(client *polygon.Client) Market {
	return &marketService{client: client}
}

func (s *marketService) Aggregates(ctx context.Context, ticker, from, to string, opts polygon.AggsOptions) (*models.AggregateResponse, error) {
	return s.client.Aggregates(ctx, ticker, from, to, opts)
}

func (s *marketService) TickerDetails(ctx context.Context, ticker string) (*models.TickerDetailsResponse, error) {
	return s.client.TickerDetails(ctx, ticker)
}

func (s *marketService) Financials(ctx context.Context, q polygon.FinancialsQuery) (*models.FinancialsResponse, error) {
	return s.client.Financials(ctx, q)
}

func (s *marketService) Splits(ctx context.Context, q polygon.SplitsQuery) (*models.SplitsResponse, error) {
	return s.client.Splits(ctx, q)
}

func (s *marketService) Dividends(ctx context.Context, ticker string, limit int) (*models.DividendsResponse, error) {
	return s.client.Dividends(ctx, ticker, limit)
}

func (s *marketService) News(ctx context.Context, q polygon.NewsQuery) (*models.NewsResponse, error) {
	return s.client.News(ctx, q)
}
