package helper

import (
	"log"
	"time"

	"movie_booking/database"
	"movie_booking/model"

	"github.com/robfig/cron/v3"
)

var scheduler *cron.Cron

// StartShowtimeScheduler sweeps showtimes whose end time passed to ENDED
// every 5 minutes.
func StartShowtimeScheduler() {
	scheduler = cron.New(cron.WithChain(
		cron.SkipIfStillRunning(cron.DefaultLogger),
	))

	_, err := scheduler.AddFunc("*/5 * * * *", markEndedShowtimes)
	if err != nil {
		log.Printf("failed to start showtime scheduler: %v", err)
		return
	}

	scheduler.Start()
	log.Println("Showtime scheduler started (every 5 minutes)")
}

func markEndedShowtimes() {
	now := time.Now()
	result := database.DB.Model(&model.Showtime{}).
		Where("status = ? AND end_time < ?", model.ShowtimeScheduled, now).
		Update("status", model.ShowtimeEnded)

	if result.Error != nil {
		log.Printf("failed to update ended showtimes: %v", result.Error)
		return
	}

	if result.RowsAffected > 0 {
		log.Printf("marked %d showtimes as ended", result.RowsAffected)
	}
}

func StopShowtimeScheduler() {
	if scheduler != nil {
		scheduler.Stop()
		log.Println("Showtime scheduler stopped")
	}
}
