package booking

import (
	"go.uber.org/zap"

	"roomly/database/repository"
	"roomly/models"
	"roomly/utils"
)

// SuggestionEngine proposes alternatives when no room satisfies the original
// request. It never fails: anything it cannot compute is an empty list.
type SuggestionEngine interface {
	Alternatives(date string, start, end int, site models.Site, minCapacity int) models.Alternatives
}

// DefaultSuggestionEngine scans a fixed hourly grid within business hours for
// alternative windows at the same site, and counts inventory at other sites.
type DefaultSuggestionEngine struct {
	Availability AvailabilityEngine
	RoomRepo     repository.RoomRepository
	DayStart     int // minutes from midnight, first slot may start here
	DayEnd       int // minutes from midnight, last slot must end by here
	Limit        int // max alternative windows returned
}

func (se *DefaultSuggestionEngine) Alternatives(date string, start, end int, site models.Site, minCapacity int) models.Alternatives {
	logger := utils.GetLogger()
	var alts models.Alternatives

	// Alternative windows: same site and duration, hourly steps, earliest
	// first, capped at Limit.
	duration := end - start
	for t := se.DayStart; t+duration <= se.DayEnd && len(alts.Times) < se.Limit; t += 60 {
		if t == start {
			continue // the window that already failed
		}
		rooms, err := se.Availability.FindAvailable(date, t, t+duration, site, minCapacity)
		if err != nil {
			logger.Warn("suggestion scan failed for slot",
				zap.String("date", date), zap.Int("start", t), zap.Error(err))
			continue
		}
		if len(rooms) > 0 {
			alts.Times = append(alts.Times, models.NewTimeWindow(t, t+duration))
		}
	}

	// Alternative sites: raw inventory counts, a coarse hint only. Live
	// availability at those sites is not checked here.
	for _, other := range models.KnownSites() {
		if other == site {
			continue
		}
		count, err := se.RoomRepo.CountWithCapacity(other, minCapacity)
		if err != nil {
			logger.Warn("suggestion inventory count failed",
				zap.String("site", string(other)), zap.Error(err))
			continue
		}
		if count > 0 {
			alts.Locations = append(alts.Locations, models.SiteInventory{Location: other, Count: count})
		}
	}

	return alts
}
