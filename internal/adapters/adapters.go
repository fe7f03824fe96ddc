package adapters

import (
	"context"
	"ratepush/internal/domain"
)

type FeedClient interface {
	GetLatestRates(ctx context.Context) (domain.RateSnapshot, error)
}

// PageStore is one Notion database holding rate rows. FindPage returns
// domain.ErrPageNotFound when no row matches the record's upsert key.
type PageStore interface {
	FindPage(ctx context.Context, rec domain.RateRecord) (string, error)
	CreatePage(ctx context.Context, rec domain.RateRecord) (string, error)
	UpdatePage(ctx context.Context, pageID string, rec domain.RateRecord) error
	// Key is the store's upsert key for a record, also used as cache key.
	Key(rec domain.RateRecord) string
}

type PageIDCache interface {
	Get(key string) (string, bool)
	Set(key string, pageID string)
	Del(key string)
	Close()
}
