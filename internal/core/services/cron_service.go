package services

import (
	"log"
	"time"

	"luxpackers-admin/internal/pkg/session"

	"github.com/robfig/cron/v3"
)

// CronService runs scheduled maintenance jobs
type CronService struct {
	cron       *cron.Cron
	store      *session.Store
	sessionTTL time.Duration
}

// NewCronService creates a new cron service
func NewCronService(store *session.Store, sessionTTLDays int) *CronService {
	return &CronService{
		cron:       cron.New(),
		store:      store,
		sessionTTL: time.Duration(sessionTTLDays) * 24 * time.Hour,
	}
}

// Start schedules the jobs (03:30 daily)
func (s *CronService) Start() {
	_, err := s.cron.AddFunc("30 3 * * *", s.purgeIdleSession)
	if err != nil {
		log.Printf("❌ Failed to schedule session purge: %v", err)
		return
	}

	s.cron.Start()
	log.Println("🚀 CronService started (session purge daily 03:30)")
}

// Stop stops the scheduler
func (s *CronService) Stop() {
	s.cron.Stop()
	log.Println("🛑 CronService stopped")
}

// purgeIdleSession clears a persisted session that has been idle beyond
// the configured TTL, forcing a fresh login.
func (s *CronService) purgeIdleSession() {
	cleared, err := s.store.ClearIfIdle(s.sessionTTL)
	if err != nil {
		log.Printf("❌ Session purge error: %v", err)
		return
	}
	if cleared {
		log.Println("🧹 Idle session cleared")
	}
}
