package service

import (
	"math/rand"
	"time"

	"github.com/coffeepair/coffee-chat-bot/internal/domain"
	"github.com/coffeepair/coffee-chat-bot/internal/domain/contract"
	"go.uber.org/zap"
)

// Options tune the service. Zero values fall back to sensible defaults so
// callers only set what they care about.
type Options struct {
	// Location is the timezone all day-boundary math runs in.
	Location *time.Location

	// LookbackWeeks bounds how far back recent pairings are considered
	// when avoiding repeats.
	LookbackWeeks int

	// DefaultFrequencyDays is used when a channel registers without an
	// explicit cadence.
	DefaultFrequencyDays int

	// Rand drives the matcher shuffle and activity picks. Tests inject a
	// seeded source.
	Rand *rand.Rand

	// Now is the clock. Tests inject a fixed one.
	Now func() time.Time
}

type coffeeChatService struct {
	dm          contract.DataManager
	slackClient contract.SlackClient
	log         *zap.Logger

	loc           *time.Location
	lookbackWeeks int
	defaultFreq   int
	rng           *rand.Rand
	now           func() time.Time
}

// New creates the coffee chat service.
func New(dm contract.DataManager, slackClient contract.SlackClient, log *zap.Logger, opts Options) contract.CoffeeChatService {
	if opts.Location == nil {
		opts.Location = time.UTC
	}
	if opts.LookbackWeeks <= 0 {
		opts.LookbackWeeks = domain.DefaultLookbackWeeks
	}
	if opts.DefaultFrequencyDays <= 0 {
		opts.DefaultFrequencyDays = domain.DefaultPairingFrequencyDays
	}
	if opts.Rand == nil {
		opts.Rand = rand.New(rand.NewSource(time.Now().UnixNano()))
	}
	if opts.Now == nil {
		opts.Now = time.Now
	}

	return &coffeeChatService{
		dm:            dm,
		slackClient:   slackClient,
		log:           log,
		loc:           opts.Location,
		lookbackWeeks: opts.LookbackWeeks,
		defaultFreq:   opts.DefaultFrequencyDays,
		rng:           opts.Rand,
		now:           opts.Now,
	}
}

// localNow returns the current time in the configured location.
func (s *coffeeChatService) localNow() time.Time {
	return s.now().In(s.loc)
}

func startOfDay(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
}

func endOfDay(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 23, 59, 59, 999999999, t.Location())
}
