package domain

import (
	"errors"
	"fmt"
	"regexp"
)

// Defaults for channel scheduling. The lookback window bounds how far back
// the matcher looks for pairings to avoid repeating.
const (
	DefaultPairingFrequencyDays = 14
	DefaultLookbackWeeks        = 6
	MinPairingFrequencyDays     = 1
	MaxPairingFrequencyDays     = 365
)

// Block action ids carried on the interactive buttons in pairing DMs.
const (
	ActionConfirmMeetup = "coffee_chat_confirm_meetup"
	ActionSkipNext      = "coffee_chat_skip_next"
	ActionOptOut        = "coffee_chat_opt_out"
	ActionOptIn         = "coffee_chat_opt_in"
)

// Guard errors surfaced to the command handlers as user-visible messages.
var (
	ErrNotRegistered     = errors.New("channel is not registered for coffee chats")
	ErrAlreadyRegistered = errors.New("channel is already registered for coffee chats")
	ErrAlreadyActive     = errors.New("coffee chats are already running in this channel")
	ErrNotActive         = errors.New("coffee chats are not currently running in this channel")
	ErrInvalidFrequency  = errors.New("pairing frequency must be between 1 and 365 days")
)

// ErrMembershipFetch marks a failed channel membership lookup. Round
// creation treats it as fatal for that channel only.
var ErrMembershipFetch = errors.New("failed to fetch channel membership")

// SchedulingLinkPatterns match links of known scheduling services inside
// Slack profile fields.
var SchedulingLinkPatterns = []*regexp.Regexp{
	regexp.MustCompile(`(?i)calendly\.com/[\w-]+`),
	regexp.MustCompile(`(?i)cal\.com/[\w-]+`),
	regexp.MustCompile(`(?i)savvycal\.com/[\w-]+`),
	regexp.MustCompile(`(?i)tidycal\.com/[\w-]+`),
	regexp.MustCompile(`(?i)zcal\.co/[\w-]+`),
	regexp.MustCompile(`(?i)schedule\.(?:once|now)/[\w-]+`),
}

// Activities suggested in pairing announcements, one picked at random.
var Activities = []string{
	"Grab coffee at a local café ☕",
	"Get lunch together 🍽️",
	"Take a walk around campus 🚶",
	"Play a board game 🎲",
	"Work together at a coffee shop 💻",
	"Grab bubble tea 🧋",
	"Check out a new restaurant 🍴",
	"Visit a local museum or gallery 🖼️",
	"Play video games together 🎮",
	"Go for a quick hike 🥾",
	"Grab ice cream 🍦",
	"Cook a meal together 👨‍🍳",
	"Attend a campus event 🎪",
	"Play pool or ping pong 🎱",
	"Do a workout or go to the gym together 💪",
	"Visit a bookstore 📚",
	"Try a new food spot 🍕",
	"Have a video call chat 📹",
	"Get breakfast or brunch 🥞",
	"Go rock climbing 🧗",
	"Visit a farmers market 🥕",
	"Play golf ⛳",
	"Watch a movie together 🎬",
	"Go bowling 🎳",
	"Visit a cat café 🐱",
	"Try an escape room 🔐",
	"Go to a comedy show 😂",
	"Take a photography walk 📸",
	"Visit an arcade 🕹️",
	"Go thrifting or vintage shopping 👗",
	"Attend a concert or live music event 🎵",
	"Play frisbee or catch 🥏",
	"Visit a botanical garden 🌺",
	"Visit a library or study lounge 📖",
	"Go for a bike ride 🚴",
	"Try a new coffee brewing method together ☕",
	"Attend a trivia night 🧠",
	"Visit a local bakery 🥐",
	"Play cards or a deck game 🃏",
	"Go to a sports game 🏀",
	"Try a cooking class 🍳",
	"Visit a rooftop or scenic viewpoint 🌆",
	"Go kayaking or paddle boarding 🛶",
	"Explore local street art or murals 🎨",
}

// FrequencyText renders a pairing cadence the way users talk about it.
func FrequencyText(days int) string {
	switch days {
	case 7:
		return "weekly"
	case 14:
		return "biweekly"
	case 30:
		return "monthly"
	case 1:
		return "daily"
	default:
		return fmt.Sprintf("every %d days", days)
	}
}
