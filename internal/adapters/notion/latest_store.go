package notion

import (
	"context"

	"ratepush/internal/domain"
)

// LatestStore is the "current rates" database: one row per currency,
// updated in place on every run. Upsert key is the currency code.
type LatestStore struct {
	client     *Client
	databaseID string
}

func (s *LatestStore) FindPage(ctx context.Context, rec domain.RateRecord) (string, error) {
	return s.client.QueryFirstPage(ctx, s.databaseID, selectEqualsFilter("Currency", rec.Code))
}

func (s *LatestStore) CreatePage(ctx context.Context, rec domain.RateRecord) (string, error) {
	return s.client.CreatePage(ctx, s.databaseID, s.properties(rec))
}

func (s *LatestStore) UpdatePage(ctx context.Context, pageID string, rec domain.RateRecord) error {
	return s.client.UpdatePage(ctx, pageID, s.properties(rec))
}

func (s *LatestStore) Key(rec domain.RateRecord) string {
	return "latest:" + rec.Code
}

func (s *LatestStore) properties(rec domain.RateRecord) map[string]any {
	return map[string]any{
		"Name":         titleProp(rec.Code),
		"Currency":     selectProp(rec.Code),
		"AUD per unit": numberProp(rec.AudPerUnit),
		"Per AUD":      numberProp(rec.PerAud),
		"Updated":      dateProp(rec.Date),
	}
}

func NewLatestStore(client *Client, databaseID string) *LatestStore {
	return &LatestStore{client: client, databaseID: databaseID}
}
