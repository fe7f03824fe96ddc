package httpclient

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"

	"ratepush/internal/domain"

	"github.com/sirupsen/logrus"
)

// FeedClient downloads the daily rates document. Candidate URLs are tried
// in order, one attempt each; the first parseable document wins.
type FeedClient struct {
	http *http.Client
	urls []string
}

type feedResponse struct {
	Date  string     `json:"date"`
	Rates []feedRate `json:"rates"`
}

type feedRate struct {
	Code       string   `json:"code"`
	PerAud     float64  `json:"per_aud"`
	AudPerUnit *float64 `json:"aud_per_unit"`
}

func (c *FeedClient) GetLatestRates(ctx context.Context) (domain.RateSnapshot, error) {
	var lastErr error
	for _, u := range c.urls {
		snap, err := c.fetch(ctx, u)
		if err != nil {
			logrus.WithError(err).Warnf("Feed URL %q failed, trying next candidate", u)
			lastErr = err
			continue
		}
		return snap, nil
	}
	if lastErr == nil {
		lastErr = errors.New("no feed URLs configured")
	}
	return domain.RateSnapshot{}, fmt.Errorf("failed to fetch rates feed: %w", lastErr)
}

func (c *FeedClient) fetch(ctx context.Context, rawURL string) (domain.RateSnapshot, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, rawURL, nil)
	if err != nil {
		return domain.RateSnapshot{}, fmt.Errorf("failed to create feed request: %w", err)
	}

	resp, err := c.http.Do(req)
	if err != nil {
		return domain.RateSnapshot{}, fmt.Errorf("failed to execute feed request: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return domain.RateSnapshot{}, fmt.Errorf("unexpected status code %d from feed: %s", resp.StatusCode, resp.Status)
	}

	var body feedResponse
	if err = json.NewDecoder(resp.Body).Decode(&body); err != nil {
		return domain.RateSnapshot{}, fmt.Errorf("failed to decode feed response: %w", err)
	}

	if body.Date == "" || len(body.Rates) == 0 {
		return domain.RateSnapshot{}, errors.New("feed document missing 'date' or 'rates'")
	}

	snap := domain.RateSnapshot{Date: body.Date, Rates: make([]domain.FeedRate, 0, len(body.Rates))}
	for _, r := range body.Rates {
		snap.Rates = append(snap.Rates, domain.FeedRate{
			Code:       r.Code,
			PerAud:     r.PerAud,
			AudPerUnit: r.AudPerUnit,
		})
	}
	return snap, nil
}

func NewFeedClient(httpClient *http.Client, urls []string) *FeedClient {
	return &FeedClient{http: httpClient, urls: urls}
}
