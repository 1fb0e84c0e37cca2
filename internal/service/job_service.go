package service

import "log"

// CancelledSweeper is the slice of the reservation repository the sweep
// job needs.
type CancelledSweeper interface {
	DeleteCancelled() (int64, error)
}

// JobService hosts the scheduled maintenance work. The only job today is
// the cancelled-reservation sweep: clients delete on cancel, so rows
// marked cancelled by any other writer are garbage and must not linger
// where the availability scan could see them.
type JobService struct {
	Repo CancelledSweeper
}

func NewJobService(repo CancelledSweeper) *JobService {
	return &JobService{Repo: repo}
}

func (s *JobService) SweepCancelledReservations() {
	deleted, err := s.Repo.DeleteCancelled()
	if err != nil {
		log.Printf("Cron Job: sweep of cancelled reservations failed: %v", err)
		return
	}
	if deleted > 0 {
		log.Printf("Cron Job: removed %d cancelled reservations", deleted)
	}
}
