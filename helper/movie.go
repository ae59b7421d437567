package helper

import (
	"cinebook/constants"
	"cinebook/database"
	"cinebook/model"
	"log"
	"time"

	"github.com/go-co-op/gocron/v2"
)

var movieScheduler gocron.Scheduler

// AutoUpdateMovieStatus derives each movie's showing status from its
// shows: NOW_SHOWING while any scheduled show remains, ENDED once every
// show has run, COMING_SOON otherwise.
func AutoUpdateMovieStatus() {
	db := database.DB

	var movies []model.Movie
	if err := db.Preload("Shows").Find(&movies).Error; err != nil {
		log.Printf("movie status job: %v", err)
		return
	}

	updated := 0
	for _, movie := range movies {
		var status string
		hasScheduled := false
		hasFinished := false
		for _, show := range movie.Shows {
			if show.Status == model.ShowStatusScheduled {
				hasScheduled = true
			} else {
				hasFinished = true
			}
		}

		switch {
		case hasScheduled:
			status = "NOW_SHOWING"
		case hasFinished:
			status = "ENDED"
		default:
			status = "COMING_SOON"
		}

		if status != movie.Status {
			if err := db.Model(&model.Movie{}).Where("id = ?", movie.ID).
				Update("status", status).Error; err != nil {
				log.Printf("movie status update %d: %v", movie.ID, err)
				continue
			}
			updated++
		}
	}

	if updated > 0 {
		log.Printf("updated showing status of %d movies", updated)
		NotifyChange(constants.TABLE_MOVIES, constants.EVENT_UPDATE)
	}
}

func StartMovieStatusScheduler() {
	s, err := gocron.NewScheduler(
		gocron.WithLocation(time.Local),
	)
	if err != nil {
		log.Fatal(err)
	}

	movieScheduler = s

	_, err = s.NewJob(
		gocron.DailyJob(
			1,
			gocron.NewAtTimes(
				gocron.NewAtTime(0, 5, 0),
			),
		),
		gocron.NewTask(AutoUpdateMovieStatus),
	)
	if err != nil {
		log.Fatal(err)
	}

	s.Start()
	log.Println("Movie status scheduler started (00:05 daily)")
}

func StopMovieStatusScheduler() {
	if movieScheduler != nil {
		if err := movieScheduler.Shutdown(); err != nil {
			log.Printf("movie scheduler shutdown: %v", err)
		}
	}
}
