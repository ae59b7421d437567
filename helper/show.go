package helper

import (
	"cinebook/constants"
	"cinebook/database"
	"cinebook/model"
	"log"
	"time"

	"github.com/robfig/cron/v3"
)

var showScheduler *cron.Cron

// StartShowScheduler flips shows whose start time has passed to
// FINISHED every 5 minutes. Bookkeeping only: order history and seat
// rows are untouched.
func StartShowScheduler() {
	showScheduler = cron.New(cron.WithChain(
		cron.SkipIfStillRunning(cron.DefaultLogger),
	))

	_, err := showScheduler.AddFunc("*/5 * * * *", finishPastShows)
	if err != nil {
		log.Printf("show scheduler init failed: %v", err)
		return
	}

	showScheduler.Start()
	log.Println("Show scheduler started (every 5 minutes)")
}

func finishPastShows() {
	now := time.Now()
	result := database.DB.Model(&model.Show{}).
		Where("status = ? AND start_time < ?", model.ShowStatusScheduled, now).
		Update("status", model.ShowStatusFinished)

	if result.Error != nil {
		log.Printf("finish past shows: %v", result.Error)
		return
	}

	if result.RowsAffected > 0 {
		log.Printf("marked %d shows FINISHED", result.RowsAffected)
		NotifyChange(constants.TABLE_SHOWS, constants.EVENT_UPDATE)
	}
}

func StopShowScheduler() {
	if showScheduler != nil {
		showScheduler.Stop()
		log.Println("Show scheduler stopped")
	}
}
