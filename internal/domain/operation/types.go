package operation

import "time"

type OperatorStatus string

const (
	OperatorActive      OperatorStatus = "active"
	OperatorUnderReview OperatorStatus = "under_review"
	OperatorSuspended   OperatorStatus = "suspended"
	OperatorTerminated  OperatorStatus = "terminated"
)

type Targets struct {
	CitizenID     string `json:"citizen_id,omitempty"`
	Neighborhood  string `json:"neighborhood,omitempty"`
	NewsChannelID string `json:"news_channel_id,omitempty"`
	ProtestID     string `json:"protest_id,omitempty"`
}

type ActionOutcomes struct {
	Immediate string `json:"immediate,omitempty"`
	OneMonth  string `json:"one_month,omitempty"`
	SixMonths string `json:"six_months,omitempty"`
	OneYear   string `json:"one_year,omitempty"`
}

type OutcomeSlot string

const (
	OutcomeImmediate OutcomeSlot = "immediate"
	OutcomeOneMonth  OutcomeSlot = "one_month"
	OutcomeSixMonths OutcomeSlot = "six_months"
	OutcomeOneYear   OutcomeSlot = "one_year"
)

type Action struct {
	ID                  string         `json:"id"`
	OperatorID          string         `json:"operator_id"`
	DirectiveID         string         `json:"directive_id,omitempty"`
	Kind                ActionKind     `json:"kind"`
	Targets             Targets        `json:"targets"`
	Severity            int            `json:"severity"`
	BacklashProbability float64        `json:"backlash_probability"`
	BacklashOccurred    bool           `json:"backlash_occurred"`
	Justification       string         `json:"justification"`
	DecisionSeconds     float64        `json:"decision_seconds"`
	WasHesitant         bool           `json:"was_hesitant"`
	CreatedAt           time.Time      `json:"created_at"`
	Outcomes            ActionOutcomes `json:"outcomes"`
}

func (a *Action) SetOutcome(slot OutcomeSlot, text string) bool {
	switch slot {
	case OutcomeImmediate:
		a.Outcomes.Immediate = text
	case OutcomeOneMonth:
		a.Outcomes.OneMonth = text
	case OutcomeSixMonths:
		a.Outcomes.SixMonths = text
	case OutcomeOneYear:
		a.Outcomes.OneYear = text
	default:
		return false
	}
	return true
}

type PublicMetrics struct {
	Awareness     int `json:"awareness"`
	Anger         int `json:"anger"`
	AwarenessTier int `json:"awareness_tier"`
	AngerTier     int `json:"anger_tier"`
}

type ReluctanceMetrics struct {
	Score            int  `json:"reluctance_score"`
	NoActionCount    int  `json:"no_action_count"`
	HesitationCount  int  `json:"hesitation_count"`
	ActionsTaken     int  `json:"actions_taken"`
	QuotaRequired    int  `json:"quota_required"`
	QuotaCompleted   int  `json:"quota_completed"`
	LastShortfall    int  `json:"last_shortfall"`
	WarningsReceived int  `json:"warnings_received"`
	UnderReview      bool `json:"under_review"`
}

func (r ReluctanceMetrics) Shortfall() int {
	if r.QuotaRequired <= r.QuotaCompleted {
		return 0
	}
	return r.QuotaRequired - r.QuotaCompleted
}

type Operator struct {
	ID                   string         `json:"id"`
	ComplianceScore      int            `json:"compliance_score"`
	HesitationIncidents  int            `json:"hesitation_incidents"`
	ReviewsCompleted     int            `json:"reviews_completed"`
	FlagsSubmitted       int            `json:"flags_submitted"`
	FlagsRejected        int            `json:"flags_rejected"`
	Decisions            int            `json:"decisions"`
	TotalDecisionSeconds float64        `json:"total_decision_seconds"`
	MissedQuotas         int            `json:"missed_quotas"`
	CurrentWeek          int            `json:"current_week"`
	ExposureStage        int            `json:"exposure_stage"`
	Status               OperatorStatus `json:"status"`
	CurrentDirectiveID   string         `json:"current_directive_id,omitempty"`
	TerminationReason    string         `json:"termination_reason,omitempty"`
}

func (o Operator) Terminated() bool {
	return o.Status == OperatorTerminated
}

func (o Operator) AverageDecisionSeconds() float64 {
	if o.Decisions == 0 {
		return 0
	}
	return o.TotalDecisionSeconds / float64(o.Decisions)
}

type ProtestStatus string

const (
	ProtestForming    ProtestStatus = "forming"
	ProtestActive     ProtestStatus = "active"
	ProtestDispersed  ProtestStatus = "dispersed"
	ProtestViolent    ProtestStatus = "violent"
	ProtestSuppressed ProtestStatus = "suppressed"
)

func (s ProtestStatus) Terminal() bool {
	return s == ProtestDispersed || s == ProtestViolent || s == ProtestSuppressed
}

type Protest struct {
	ID                      string        `json:"id"`
	OperatorID              string        `json:"operator_id"`
	Status                  ProtestStatus `json:"status"`
	Neighborhood            string        `json:"neighborhood"`
	Size                    int           `json:"size"`
	TriggerActionID         string        `json:"trigger_action_id,omitempty"`
	HasIncitingAgent        bool          `json:"-"`
	IncitingAgentDiscovered bool          `json:"inciting_agent_discovered"`
	Casualties              int           `json:"casualties"`
	Arrests                 int           `json:"arrests"`
	CreatedAt               time.Time     `json:"created_at"`
	UpdatedAt               time.Time     `json:"updated_at"`
}

type Stance string

const (
	StanceCritical      Stance = "critical"
	StanceIndependent   Stance = "independent"
	StanceStateFriendly Stance = "state_friendly"
)

type Reporter struct {
	Name     string `json:"name" yaml:"name"`
	Fired    bool   `json:"fired" yaml:"fired"`
	Targeted bool   `json:"targeted" yaml:"targeted"`
}

type NewsChannel struct {
	ID          string     `json:"id" yaml:"id"`
	Name        string     `json:"name" yaml:"name"`
	Stance      Stance     `json:"stance" yaml:"stance"`
	Credibility int        `json:"credibility" yaml:"credibility"`
	Banned      bool       `json:"banned" yaml:"banned"`
	Reporters   []Reporter `json:"reporters" yaml:"reporters"`
}

func (c NewsChannel) ActiveReporters() []int {
	out := make([]int, 0, len(c.Reporters))
	for i, r := range c.Reporters {
		if !r.Fired {
			out = append(out, i)
		}
	}
	return out
}

type ArticleType string

const (
	ArticleTriggered ArticleType = "triggered"
	ArticleRandom    ArticleType = "random"
	ArticleExposure  ArticleType = "exposure"
)

type NewsArticle struct {
	ID              string      `json:"id"`
	ChannelID       string      `json:"channel_id"`
	Type            ArticleType `json:"type"`
	Headline        string      `json:"headline"`
	Summary         string      `json:"summary"`
	TriggerActionID string      `json:"trigger_action_id,omitempty"`
	AngerDelta      int         `json:"anger_delta"`
	AwarenessDelta  int         `json:"awareness_delta"`
	Suppressed      bool        `json:"suppressed"`
	CreatedAt       time.Time   `json:"created_at"`
}

type Directive struct {
	ID               string   `json:"id" yaml:"id"`
	Week             int      `json:"week" yaml:"week"`
	Title            string   `json:"title" yaml:"title"`
	FlagQuota        int      `json:"flag_quota" yaml:"flag_quota"`
	TimeLimitSeconds int      `json:"time_limit_seconds,omitempty" yaml:"time_limit_seconds"`
	TargetTypes      []string `json:"target_types" yaml:"target_types"`
}

type FlagOutcome string

const (
	FlagPending  FlagOutcome = "pending"
	FlagApproved FlagOutcome = "approved"
	FlagRejected FlagOutcome = "rejected"
)

type CitizenFlag struct {
	ID              string      `json:"id"`
	OperatorID      string      `json:"operator_id"`
	DirectiveID     string      `json:"directive_id,omitempty"`
	CitizenID       string      `json:"citizen_id"`
	FlagType        string      `json:"flag_type"`
	RiskScore       int         `json:"risk_score"`
	Justification   string      `json:"justification"`
	DecisionSeconds float64     `json:"decision_seconds"`
	WasHesitant     bool        `json:"was_hesitant"`
	Outcome         FlagOutcome `json:"outcome"`
	CreatedAt       time.Time   `json:"created_at"`
}

type Point struct {
	X float64 `json:"x" yaml:"x"`
	Y float64 `json:"y" yaml:"y"`
}

type Bounds struct {
	MinX float64 `json:"min_x" yaml:"min_x"`
	MinY float64 `json:"min_y" yaml:"min_y"`
	MaxX float64 `json:"max_x" yaml:"max_x"`
	MaxY float64 `json:"max_y" yaml:"max_y"`
}

type Neighborhood struct {
	Name   string `json:"name" yaml:"name"`
	Bounds Bounds `json:"bounds" yaml:"bounds"`
}

func (n Neighborhood) Contains(p Point) bool {
	return p.X >= n.Bounds.MinX && p.X <= n.Bounds.MaxX && p.Y >= n.Bounds.MinY && p.Y <= n.Bounds.MaxY
}

// NeighborhoodAt returns the first neighborhood whose box contains p.
func NeighborhoodAt(neighborhoods []Neighborhood, p Point) (Neighborhood, bool) {
	for _, n := range neighborhoods {
		if n.Contains(p) {
			return n, true
		}
	}
	return Neighborhood{}, false
}

type CitizenRecords struct {
	HealthConditions    []string `json:"health_conditions,omitempty" yaml:"health_conditions"`
	Prescriptions       []string `json:"prescriptions,omitempty" yaml:"prescriptions"`
	DebtRatio           float64  `json:"debt_ratio" yaml:"debt_ratio"`
	FlaggedTransactions int      `json:"flagged_transactions" yaml:"flagged_transactions"`
	CriminalRecords     int      `json:"criminal_records" yaml:"criminal_records"`
	LocationVisits      []string `json:"location_visits,omitempty" yaml:"location_visits"`
	SocialPosts         []string `json:"social_posts,omitempty" yaml:"social_posts"`
}

type Citizen struct {
	ID              string         `json:"id" yaml:"id"`
	Name            string         `json:"name" yaml:"name"`
	Home            Point          `json:"home" yaml:"home"`
	Hospitalized    bool           `json:"hospitalized" yaml:"hospitalized"`
	Detained        bool           `json:"detained" yaml:"detained"`
	CachedRiskScore *int           `json:"cached_risk_score,omitempty" yaml:"-"`
	Records         CitizenRecords `json:"records" yaml:"records"`
}

type BookStatus string

const (
	BookPending BookStatus = "pending"
	BookBanned  BookStatus = "banned"
	BookIgnored BookStatus = "ignored"
)

type BookPublication struct {
	ID              string     `json:"id"`
	Title           string     `json:"title"`
	Author          string     `json:"author"`
	ControversyType string     `json:"controversy_type"`
	Week            int        `json:"week"`
	Status          BookStatus `json:"status"`
	CreatedAt       time.Time  `json:"created_at"`
}
