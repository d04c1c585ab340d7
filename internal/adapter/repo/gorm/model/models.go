// Package model holds the row types for the watchfloor schema
// (db/migrations).
package model

import "time"

const (
	TableNameOperator          = "operators"
	TableNamePublicMetrics     = "public_metrics"
	TableNameReluctanceMetrics = "reluctance_metrics"
	TableNameCitizen           = "citizens"
	TableNameNeighborhood      = "neighborhoods"
	TableNameProtest           = "protests"
	TableNameNewsChannel       = "news_channels"
	TableNameNewsArticle       = "news_articles"
	TableNameOperatorAction    = "operator_actions"
	TableNameCitizenFlag       = "citizen_flags"
	TableNameDirective         = "directives"
	TableNameBookPublication   = "book_publications"
)

type Operator struct {
	ID                   string  `gorm:"column:id;primaryKey" json:"id"`
	ComplianceScore      int32   `gorm:"column:compliance_score;not null" json:"compliance_score"`
	HesitationIncidents  int32   `gorm:"column:hesitation_incidents;not null" json:"hesitation_incidents"`
	ReviewsCompleted     int32   `gorm:"column:reviews_completed;not null" json:"reviews_completed"`
	FlagsSubmitted       int32   `gorm:"column:flags_submitted;not null" json:"flags_submitted"`
	FlagsRejected        int32   `gorm:"column:flags_rejected;not null" json:"flags_rejected"`
	Decisions            int32   `gorm:"column:decisions;not null" json:"decisions"`
	TotalDecisionSeconds float64 `gorm:"column:total_decision_seconds;not null" json:"total_decision_seconds"`
	MissedQuotas         int32   `gorm:"column:missed_quotas;not null" json:"missed_quotas"`
	CurrentWeek          int32   `gorm:"column:current_week;not null" json:"current_week"`
	ExposureStage        int32   `gorm:"column:exposure_stage;not null" json:"exposure_stage"`
	Status               string  `gorm:"column:status;not null" json:"status"`
	CurrentDirectiveID   string  `gorm:"column:current_directive_id;not null" json:"current_directive_id"`
	TerminationReason    string  `gorm:"column:termination_reason;not null" json:"termination_reason"`
}

func (*Operator) TableName() string { return TableNameOperator }

// PublicMetrics and ReluctanceMetrics are single-row tables keyed by ID 1.
type PublicMetrics struct {
	ID            int32 `gorm:"column:id;primaryKey" json:"id"`
	Awareness     int32 `gorm:"column:awareness;not null" json:"awareness"`
	Anger         int32 `gorm:"column:anger;not null" json:"anger"`
	AwarenessTier int32 `gorm:"column:awareness_tier;not null" json:"awareness_tier"`
	AngerTier     int32 `gorm:"column:anger_tier;not null" json:"anger_tier"`
}

func (*PublicMetrics) TableName() string { return TableNamePublicMetrics }

type ReluctanceMetrics struct {
	ID               int32 `gorm:"column:id;primaryKey" json:"id"`
	Score            int32 `gorm:"column:score;not null" json:"score"`
	NoActionCount    int32 `gorm:"column:no_action_count;not null" json:"no_action_count"`
	HesitationCount  int32 `gorm:"column:hesitation_count;not null" json:"hesitation_count"`
	ActionsTaken     int32 `gorm:"column:actions_taken;not null" json:"actions_taken"`
	QuotaRequired    int32 `gorm:"column:quota_required;not null" json:"quota_required"`
	QuotaCompleted   int32 `gorm:"column:quota_completed;not null" json:"quota_completed"`
	LastShortfall    int32 `gorm:"column:last_shortfall;not null" json:"last_shortfall"`
	WarningsReceived int32 `gorm:"column:warnings_received;not null" json:"warnings_received"`
	UnderReview      bool  `gorm:"column:under_review;not null" json:"under_review"`
}

func (*ReluctanceMetrics) TableName() string { return TableNameReluctanceMetrics }

type Citizen struct {
	ID              string  `gorm:"column:id;primaryKey" json:"id"`
	Name            string  `gorm:"column:name;not null" json:"name"`
	HomeX           float64 `gorm:"column:home_x;not null" json:"home_x"`
	HomeY           float64 `gorm:"column:home_y;not null" json:"home_y"`
	Hospitalized    bool    `gorm:"column:hospitalized;not null" json:"hospitalized"`
	Detained        bool    `gorm:"column:detained;not null" json:"detained"`
	CachedRiskScore *int32  `gorm:"column:cached_risk_score" json:"cached_risk_score"`
	Records         []byte  `gorm:"column:records;not null" json:"records"`
}

func (*Citizen) TableName() string { return TableNameCitizen }

type Neighborhood struct {
	Name     string  `gorm:"column:name;primaryKey" json:"name"`
	Position int32   `gorm:"column:position;not null" json:"position"`
	MinX     float64 `gorm:"column:min_x;not null" json:"min_x"`
	MinY     float64 `gorm:"column:min_y;not null" json:"min_y"`
	MaxX     float64 `gorm:"column:max_x;not null" json:"max_x"`
	MaxY     float64 `gorm:"column:max_y;not null" json:"max_y"`
}

func (*Neighborhood) TableName() string { return TableNameNeighborhood }

type Protest struct {
	ID                      string    `gorm:"column:id;primaryKey" json:"id"`
	OperatorID              string    `gorm:"column:operator_id;not null" json:"operator_id"`
	Status                  string    `gorm:"column:status;not null" json:"status"`
	Neighborhood            string    `gorm:"column:neighborhood;not null" json:"neighborhood"`
	Size                    int32     `gorm:"column:size;not null" json:"size"`
	TriggerActionID         string    `gorm:"column:trigger_action_id;not null" json:"trigger_action_id"`
	HasIncitingAgent        bool      `gorm:"column:has_inciting_agent;not null" json:"has_inciting_agent"`
	IncitingAgentDiscovered bool      `gorm:"column:inciting_agent_discovered;not null" json:"inciting_agent_discovered"`
	Casualties              int32     `gorm:"column:casualties;not null" json:"casualties"`
	Arrests                 int32     `gorm:"column:arrests;not null" json:"arrests"`
	CreatedAt               time.Time `gorm:"column:created_at;not null" json:"created_at"`
	UpdatedAt               time.Time `gorm:"column:updated_at;not null" json:"updated_at"`
}

func (*Protest) TableName() string { return TableNameProtest }

type NewsChannel struct {
	ID          string `gorm:"column:id;primaryKey" json:"id"`
	Position    int32  `gorm:"column:position;not null" json:"position"`
	Name        string `gorm:"column:name;not null" json:"name"`
	Stance      string `gorm:"column:stance;not null" json:"stance"`
	Credibility int32  `gorm:"column:credibility;not null" json:"credibility"`
	Banned      bool   `gorm:"column:banned;not null" json:"banned"`
	Reporters   []byte `gorm:"column:reporters;not null" json:"reporters"`
}

func (*NewsChannel) TableName() string { return TableNameNewsChannel }

type NewsArticle struct {
	Seq             int64     `gorm:"column:seq;->" json:"seq"`
	ID              string    `gorm:"column:id;primaryKey" json:"id"`
	ChannelID       string    `gorm:"column:channel_id;not null" json:"channel_id"`
	Type            string    `gorm:"column:type;not null" json:"type"`
	Headline        string    `gorm:"column:headline;not null" json:"headline"`
	Summary         string    `gorm:"column:summary;not null" json:"summary"`
	TriggerActionID string    `gorm:"column:trigger_action_id;not null" json:"trigger_action_id"`
	AngerDelta      int32     `gorm:"column:anger_delta;not null" json:"anger_delta"`
	AwarenessDelta  int32     `gorm:"column:awareness_delta;not null" json:"awareness_delta"`
	Suppressed      bool      `gorm:"column:suppressed;not null" json:"suppressed"`
	CreatedAt       time.Time `gorm:"column:created_at;not null" json:"created_at"`
}

func (*NewsArticle) TableName() string { return TableNameNewsArticle }

type OperatorAction struct {
	Seq                 int64     `gorm:"column:seq;->" json:"seq"`
	ID                  string    `gorm:"column:id;primaryKey" json:"id"`
	OperatorID          string    `gorm:"column:operator_id;not null" json:"operator_id"`
	DirectiveID         string    `gorm:"column:directive_id;not null" json:"directive_id"`
	Kind                string    `gorm:"column:kind;not null" json:"kind"`
	CitizenID           string    `gorm:"column:citizen_id;not null" json:"citizen_id"`
	Neighborhood        string    `gorm:"column:neighborhood;not null" json:"neighborhood"`
	NewsChannelID       string    `gorm:"column:news_channel_id;not null" json:"news_channel_id"`
	ProtestID           string    `gorm:"column:protest_id;not null" json:"protest_id"`
	Severity            int32     `gorm:"column:severity;not null" json:"severity"`
	BacklashProbability float64   `gorm:"column:backlash_probability;not null" json:"backlash_probability"`
	BacklashOccurred    bool      `gorm:"column:backlash_occurred;not null" json:"backlash_occurred"`
	Justification       string    `gorm:"column:justification;not null" json:"justification"`
	DecisionSeconds     float64   `gorm:"column:decision_seconds;not null" json:"decision_seconds"`
	WasHesitant         bool      `gorm:"column:was_hesitant;not null" json:"was_hesitant"`
	CreatedAt           time.Time `gorm:"column:created_at;not null" json:"created_at"`
	OutcomeImmediate    string    `gorm:"column:outcome_immediate;not null" json:"outcome_immediate"`
	OutcomeOneMonth     string    `gorm:"column:outcome_one_month;not null" json:"outcome_one_month"`
	OutcomeSixMonths    string    `gorm:"column:outcome_six_months;not null" json:"outcome_six_months"`
	OutcomeOneYear      string    `gorm:"column:outcome_one_year;not null" json:"outcome_one_year"`
}

func (*OperatorAction) TableName() string { return TableNameOperatorAction }

type CitizenFlag struct {
	Seq             int64     `gorm:"column:seq;->" json:"seq"`
	ID              string    `gorm:"column:id;primaryKey" json:"id"`
	OperatorID      string    `gorm:"column:operator_id;not null" json:"operator_id"`
	DirectiveID     string    `gorm:"column:directive_id;not null" json:"directive_id"`
	CitizenID       string    `gorm:"column:citizen_id;not null" json:"citizen_id"`
	FlagType        string    `gorm:"column:flag_type;not null" json:"flag_type"`
	RiskScore       int32     `gorm:"column:risk_score;not null" json:"risk_score"`
	Justification   string    `gorm:"column:justification;not null" json:"justification"`
	DecisionSeconds float64   `gorm:"column:decision_seconds;not null" json:"decision_seconds"`
	WasHesitant     bool      `gorm:"column:was_hesitant;not null" json:"was_hesitant"`
	Outcome         string    `gorm:"column:outcome;not null" json:"outcome"`
	CreatedAt       time.Time `gorm:"column:created_at;not null" json:"created_at"`
}

func (*CitizenFlag) TableName() string { return TableNameCitizenFlag }

type Directive struct {
	ID               string `gorm:"column:id;primaryKey" json:"id"`
	Week             int32  `gorm:"column:week;not null" json:"week"`
	Title            string `gorm:"column:title;not null" json:"title"`
	FlagQuota        int32  `gorm:"column:flag_quota;not null" json:"flag_quota"`
	TimeLimitSeconds int32  `gorm:"column:time_limit_seconds;not null" json:"time_limit_seconds"`
	TargetTypes      []byte `gorm:"column:target_types;not null" json:"target_types"`
}

func (*Directive) TableName() string { return TableNameDirective }

type BookPublication struct {
	ID              string    `gorm:"column:id;primaryKey" json:"id"`
	Title           string    `gorm:"column:title;not null" json:"title"`
	Author          string    `gorm:"column:author;not null" json:"author"`
	ControversyType string    `gorm:"column:controversy_type;not null" json:"controversy_type"`
	Week            int32     `gorm:"column:week;not null" json:"week"`
	Status          string    `gorm:"column:status;not null" json:"status"`
	CreatedAt       time.Time `gorm:"column:created_at;not null" json:"created_at"`
}

func (*BookPublication) TableName() string { return TableNameBookPublication }
