package notion

import (
	"context"
	"fmt"

	"ratepush/internal/domain"
)

// HistoryStore is the per-day archive database: one row per
// (date, currency), so the upsert key includes the observation date.
type HistoryStore struct {
	client     *Client
	databaseID string
}

func (s *HistoryStore) FindPage(ctx context.Context, rec domain.RateRecord) (string, error) {
	filter := andFilter(
		dateEqualsFilter("Date", rec.Date),
		selectEqualsFilter("Currency", rec.Code),
	)
	return s.client.QueryFirstPage(ctx, s.databaseID, filter)
}

func (s *HistoryStore) CreatePage(ctx context.Context, rec domain.RateRecord) (string, error) {
	return s.client.CreatePage(ctx, s.databaseID, s.properties(rec))
}

func (s *HistoryStore) UpdatePage(ctx context.Context, pageID string, rec domain.RateRecord) error {
	return s.client.UpdatePage(ctx, pageID, s.properties(rec))
}

func (s *HistoryStore) Key(rec domain.RateRecord) string {
	return "history:" + rec.Date + ":" + rec.Code
}

func (s *HistoryStore) properties(rec domain.RateRecord) map[string]any {
	return map[string]any{
		"Name":         titleProp(fmt.Sprintf("%s %s→AUD", rec.Date, rec.Code)),
		"Date":         dateProp(rec.Date),
		"Currency":     selectProp(rec.Code),
		"AUD per unit": numberProp(rec.AudPerUnit),
		"Per AUD":      numberProp(rec.PerAud),
	}
}

func NewHistoryStore(client *Client, databaseID string) *HistoryStore {
	return &HistoryStore{client: client, databaseID: databaseID}
}
