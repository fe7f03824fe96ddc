package domain

import "errors"

var (
	ErrPageNotFound   = errors.New("page not found")
	ErrNoRunsYet      = errors.New("no runs executed yet")
	ErrSyncInProgress = errors.New("sync already in progress")
	ErrNothingPushed  = errors.New("no records were pushed")
)
