package scheduler

import (
	"time"

	"github.com/coffeepair/coffee-chat-bot/internal/domain/contract"
	"go.uber.org/zap"
)

type triggerKind int

const (
	triggerRound triggerKind = iota
	triggerReminder
)

// Scheduler fires the pairing service at two fixed local hours each day:
// the round hour creates due pairing rounds (after reporting stats for the
// period that just ended) and the reminder hour sends midpoint reminders.
type Scheduler struct {
	service      contract.CoffeeChatService
	log          *zap.Logger
	loc          *time.Location
	roundHour    int
	reminderHour int
	stopChan     chan struct{}
	running      bool

	now func() time.Time
}

func New(service contract.CoffeeChatService, log *zap.Logger, loc *time.Location, roundHour, reminderHour int) *Scheduler {
	if loc == nil {
		loc = time.Local
	}
	return &Scheduler{
		service:      service,
		log:          log,
		loc:          loc,
		roundHour:    roundHour,
		reminderHour: reminderHour,
		stopChan:     make(chan struct{}),
		now:          time.Now,
	}
}

func (s *Scheduler) Start() {
	if s.running {
		return
	}
	s.running = true
	s.log.Info("scheduler starting",
		zap.Int("round_hour", s.roundHour),
		zap.Int("reminder_hour", s.reminderHour),
		zap.String("timezone", s.loc.String()))
	go s.mainLoop()
}

func (s *Scheduler) Stop() {
	if !s.running {
		return
	}
	s.log.Info("scheduler stopping")
	close(s.stopChan)
	s.running = false
}

func (s *Scheduler) mainLoop() {
	for {
		nextTime, kind := s.nextTrigger(s.now())
		s.log.Info("next trigger scheduled", zap.Time("at", nextTime))

		timer := time.NewTimer(time.Until(nextTime))

		select {
		case <-timer.C:
			s.fire(kind)
			// Avoid re-firing within the same minute.
			time.Sleep(1 * time.Minute)

		case <-s.stopChan:
			timer.Stop()
			return
		}
	}
}

// nextTrigger returns the earliest upcoming trigger instant after now,
// considering both daily fire points in the configured timezone.
func (s *Scheduler) nextTrigger(now time.Time) (time.Time, triggerKind) {
	now = now.In(s.loc)

	round := s.nextAtHour(now, s.roundHour)
	reminder := s.nextAtHour(now, s.reminderHour)

	if round.Before(reminder) {
		return round, triggerRound
	}
	return reminder, triggerReminder
}

func (s *Scheduler) nextAtHour(now time.Time, hour int) time.Time {
	next := time.Date(now.Year(), now.Month(), now.Day(), hour, 0, 0, 0, s.loc)
	if !next.After(now) {
		next = next.AddDate(0, 0, 1)
	}
	return next
}

func (s *Scheduler) fire(kind triggerKind) {
	switch kind {
	case triggerRound:
		// Report on the period that just ended before opening the next one.
		s.service.ReportStats()
		s.service.CreateRoundsForDueChannels()

	case triggerReminder:
		s.service.SendMidwayReminders()
	}
}
