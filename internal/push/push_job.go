package push

import (
	"context"
	"errors"
	"fmt"

	"ratepush/internal/adapters"
	"ratepush/internal/domain"

	"github.com/sirupsen/logrus"
)

// PushResult is what a single pipeline run produced.
type PushResult struct {
	FeedDate    string
	Created     int
	Updated     int
	FailedCodes []string
}

// PushRates runs one pipeline pass: fetch the feed, filter and map it,
// then upsert every surviving record into each configured store. A failed
// fetch aborts the run with zero store mutations; a failed record is
// logged and skipped. The run errors when records were attempted and not
// a single one succeeded.
func PushRates(ctx context.Context, execID string, feed adapters.FeedClient, stores []adapters.PageStore, cache adapters.PageIDCache, allow map[string]struct{}) (PushResult, error) {
	// STEP 1: fetch and parse the daily feed
	snap, err := feed.GetLatestRates(ctx)
	if err != nil {
		return PushResult{}, fmt.Errorf("failed to get latest rates: %w", err)
	}

	result := PushResult{FeedDate: snap.Date}

	// STEP 2: filter to the configured currencies and map to records
	records := MapRates(snap, allow)
	if len(records) == 0 {
		logrus.Infof("No matching currencies in feed dated %s, nothing to push; execID: %s", snap.Date, execID)
		return result, nil
	}

	logrus.Infof("%d record(s) to push for %s; execID: %s", len(records), snap.Date, execID)

	// STEP 3: upsert each record into each store, latest first
	for _, store := range stores {
		for _, rec := range records {
			created, upsertErr := upsertRecord(ctx, store, cache, rec)
			if upsertErr != nil {
				logrus.WithError(upsertErr).Warnf("Upsert of %q failed, skipping; execID: %s", store.Key(rec), execID)
				result.FailedCodes = append(result.FailedCodes, rec.Code)
				continue
			}
			if created {
				result.Created++
			} else {
				result.Updated++
			}
		}
	}

	if result.Created+result.Updated == 0 {
		return result, fmt.Errorf("all %d record(s) failed: %w", len(result.FailedCodes), domain.ErrNothingPushed)
	}

	logrus.Infof("Pushed %d record(s) (%d created, %d updated, %d failed) for %s; execID: %s",
		result.Created+result.Updated, result.Created, result.Updated, len(result.FailedCodes), snap.Date, execID)
	return result, nil
}

// upsertRecord creates or updates the store row for one record. A cached
// page ID short-circuits the lookup; when the cached ID turns out stale
// (page deleted or archived), the entry is evicted and the record goes
// through the regular query path.
func upsertRecord(ctx context.Context, store adapters.PageStore, cache adapters.PageIDCache, rec domain.RateRecord) (created bool, err error) {
	key := store.Key(rec)

	if pageID, ok := cache.Get(key); ok {
		err = store.UpdatePage(ctx, pageID, rec)
		if err == nil {
			return false, nil
		}
		if !errors.Is(err, domain.ErrPageNotFound) {
			return false, err
		}
		cache.Del(key)
	}

	pageID, err := store.FindPage(ctx, rec)
	switch {
	case err == nil:
		if err = store.UpdatePage(ctx, pageID, rec); err != nil {
			return false, err
		}
		cache.Set(key, pageID)
		return false, nil
	case errors.Is(err, domain.ErrPageNotFound):
		pageID, err = store.CreatePage(ctx, rec)
		if err != nil {
			return false, err
		}
		cache.Set(key, pageID)
		return true, nil
	default:
		return false, err
	}
}
