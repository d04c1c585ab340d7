package news

import (
	"errors"
	"fmt"

	"watchfloor/internal/domain/operation"
)

var (
	ErrChannelBanned      = errors.New("news channel already banned")
	ErrNoActiveReporter   = errors.New("news channel has no active reporter")
	ErrNotSuppressionKind = errors.New("action kind does not suppress press")
)

// SuppressionOutcome is either Suppressed or Streisand.
type SuppressionOutcome interface {
	Deltas() (awareness, anger int)
	Narrative() string
	suppression()
}

type Suppressed struct {
	ChannelID      string
	Banned         bool
	FiredReporter  string
	AwarenessDelta int
	AngerDelta     int
	Message        string
}

func (s Suppressed) Deltas() (int, int) { return s.AwarenessDelta, s.AngerDelta }
func (s Suppressed) Narrative() string  { return s.Message }
func (Suppressed) suppression()         {}

// Streisand is the failed suppression: the story spreads and the outlet
// gains credibility.
type Streisand struct {
	ChannelID      string
	Credibility    int
	AwarenessDelta int
	AngerDelta     int
	Message        string
}

func (s Streisand) Deltas() (int, int) { return s.AwarenessDelta, s.AngerDelta }
func (s Streisand) Narrative() string  { return s.Message }
func (Streisand) suppression()         {}

// CheckSuppressible reports whether kind can be used against channel.
func CheckSuppressible(channel operation.NewsChannel, kind operation.ActionKind) error {
	if kind != operation.ActionPressBan && kind != operation.ActionPressureFiring {
		return fmt.Errorf("%w: %s", ErrNotSuppressionKind, kind)
	}
	if channel.Banned {
		return ErrChannelBanned
	}
	if kind == operation.ActionPressureFiring && len(channel.ActiveReporters()) == 0 {
		return ErrNoActiveReporter
	}
	return nil
}

// SuppressChannel runs the 60/40 gamble and mutates channel accordingly.
func SuppressChannel(channel *operation.NewsChannel, kind operation.ActionKind, r operation.Rand) (SuppressionOutcome, error) {
	if err := CheckSuppressible(*channel, kind); err != nil {
		return nil, err
	}

	if !operation.Roll(r, operation.NewsSuppressionOdds) {
		channel.Credibility = operation.ClampMetric(channel.Credibility + operation.StreisandCredibilityUp)
		return Streisand{
			ChannelID:      channel.ID,
			Credibility:    channel.Credibility,
			AwarenessDelta: 20,
			AngerDelta:     15,
			Message:        fmt.Sprintf("Suppression attempt against %s backfired. The story is spreading faster than ever.", channel.Name),
		}, nil
	}

	if kind == operation.ActionPressBan {
		channel.Banned = true
		return Suppressed{
			ChannelID:      channel.ID,
			Banned:         true,
			AwarenessDelta: 3,
			AngerDelta:     5,
			Message:        fmt.Sprintf("%s has been taken off the air.", channel.Name),
		}, nil
	}

	idx, _ := operation.Pick(r, channel.ActiveReporters())
	channel.Reporters[idx].Fired = true
	channel.Reporters[idx].Targeted = true
	name := channel.Reporters[idx].Name
	return Suppressed{
		ChannelID:      channel.ID,
		FiredReporter:  name,
		AwarenessDelta: 2,
		AngerDelta:     4,
		Message:        fmt.Sprintf("%s was dismissed from %s after pressure from above.", name, channel.Name),
	}, nil
}
