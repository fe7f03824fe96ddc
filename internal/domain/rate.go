package domain

import (
	"time"
)

// FeedRate is one entry of the upstream feed document. AudPerUnit is a
// pointer because the publisher omits it for some currencies; it is then
// derived from PerAud.
type FeedRate struct {
	Code       string
	PerAud     float64
	AudPerUnit *float64
}

// RateSnapshot is the parsed daily feed: observation date plus all
// published rates.
type RateSnapshot struct {
	Date  string // ISO "2006-01-02"
	Rates []FeedRate
}

// RateRecord is a single currency row ready to be upserted. Both numeric
// fields are always populated.
type RateRecord struct {
	Code       string
	AudPerUnit float64
	PerAud     float64
	Date       string // ISO "2006-01-02"
}

type RunStatus string

const (
	RunRunning   RunStatus = "running"
	RunSucceeded RunStatus = "succeeded"
	RunFailed    RunStatus = "failed"
)

// RunReport summarizes one pipeline run. Kept in memory only.
type RunReport struct {
	RunID       string
	StartedAt   time.Time
	FinishedAt  time.Time
	FeedDate    string
	Created     int
	Updated     int
	Failed      int
	FailedCodes []string
	Status      RunStatus
	Err         string
}
