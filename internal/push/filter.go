package push

import (
	"strings"

	"ratepush/internal/domain"

	"github.com/sirupsen/logrus"
)

// ParseCurrencyFilter parses the comma-separated allow-list ("USD,EUR,JPY").
// Codes are trimmed and upper-cased; an empty filter yields an empty set,
// which means every currency in the feed is pushed.
func ParseCurrencyFilter(raw string) map[string]struct{} {
	allow := make(map[string]struct{})
	for _, part := range strings.Split(raw, ",") {
		code := strings.ToUpper(strings.TrimSpace(part))
		if code == "" {
			continue
		}
		allow[code] = struct{}{}
	}
	return allow
}

// MapRates filters the snapshot to the allowed currencies and maps each
// surviving entry to a RateRecord, preserving feed order. Entries with an
// empty code or no derivable AUD-per-unit value are skipped, never fatal.
func MapRates(snap domain.RateSnapshot, allow map[string]struct{}) []domain.RateRecord {
	records := make([]domain.RateRecord, 0, len(snap.Rates))
	for _, r := range snap.Rates {
		code := strings.ToUpper(strings.TrimSpace(r.Code))
		if code == "" {
			continue
		}
		if len(allow) > 0 {
			if _, ok := allow[code]; !ok {
				continue
			}
		}

		audPerUnit, ok := deriveAudPerUnit(r)
		if !ok {
			logrus.Debugf("Skipping %q: aud_per_unit missing and not derivable", code)
			continue
		}

		records = append(records, domain.RateRecord{
			Code:       code,
			AudPerUnit: audPerUnit,
			PerAud:     r.PerAud,
			Date:       snap.Date,
		})
	}
	return records
}

// deriveAudPerUnit falls back to 1/per_aud when the feed omits the field.
func deriveAudPerUnit(r domain.FeedRate) (float64, bool) {
	if r.AudPerUnit != nil {
		return *r.AudPerUnit, true
	}
	if r.PerAud == 0 {
		return 0, false
	}
	return 1 / r.PerAud, true
}
