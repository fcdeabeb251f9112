package services

import (
	"github.com/lib/pq"

	"pinpoint/internal/models/db_models"
)

// applyDefaultSchedules tops a firm's schedule slots up to MaxSchedules.
// It runs before every validation pass and is an idempotent recompute:
//   - two or more slots: nothing changes;
//   - zero slots: one all-days slot is added first;
//   - then empty slots are appended until the count reaches MaxSchedules.
//
// Existing slots always keep their position ahead of synthetic ones.
func applyDefaultSchedules(firm *db_models.Firm) {
	if len(firm.Schedules) >= db_models.MaxSchedules {
		return
	}

	if len(firm.Schedules) == 0 {
		firm.Schedules = append(firm.Schedules, db_models.Schedule{
			FirmID:   firm.ID,
			Starts:   db_models.Midnight,
			Ends:     db_models.Midnight,
			WeekDays: db_models.AllWeekDays,
		})
	}

	for len(firm.Schedules) < db_models.MaxSchedules {
		firm.Schedules = append(firm.Schedules, db_models.Schedule{
			FirmID:   firm.ID,
			Starts:   db_models.Midnight,
			Ends:     db_models.Midnight,
			WeekDays: pq.Int64Array{},
		})
	}
}
