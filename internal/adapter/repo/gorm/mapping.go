package gormrepo

import (
	"encoding/json"

	"watchfloor/internal/adapter/repo/gorm/model"
	"watchfloor/internal/domain/operation"
)

func operatorToModel(op operation.Operator) model.Operator {
	return model.Operator{
		ID:                   op.ID,
		ComplianceScore:      int32(op.ComplianceScore),
		HesitationIncidents:  int32(op.HesitationIncidents),
		ReviewsCompleted:     int32(op.ReviewsCompleted),
		FlagsSubmitted:       int32(op.FlagsSubmitted),
		FlagsRejected:        int32(op.FlagsRejected),
		Decisions:            int32(op.Decisions),
		TotalDecisionSeconds: op.TotalDecisionSeconds,
		MissedQuotas:         int32(op.MissedQuotas),
		CurrentWeek:          int32(op.CurrentWeek),
		ExposureStage:        int32(op.ExposureStage),
		Status:               string(op.Status),
		CurrentDirectiveID:   op.CurrentDirectiveID,
		TerminationReason:    op.TerminationReason,
	}
}

func operatorFromModel(m model.Operator) operation.Operator {
	return operation.Operator{
		ID:                   m.ID,
		ComplianceScore:      int(m.ComplianceScore),
		HesitationIncidents:  int(m.HesitationIncidents),
		ReviewsCompleted:     int(m.ReviewsCompleted),
		FlagsSubmitted:       int(m.FlagsSubmitted),
		FlagsRejected:        int(m.FlagsRejected),
		Decisions:            int(m.Decisions),
		TotalDecisionSeconds: m.TotalDecisionSeconds,
		MissedQuotas:         int(m.MissedQuotas),
		CurrentWeek:          int(m.CurrentWeek),
		ExposureStage:        int(m.ExposureStage),
		Status:               operation.OperatorStatus(m.Status),
		CurrentDirectiveID:   m.CurrentDirectiveID,
		TerminationReason:    m.TerminationReason,
	}
}

func citizenToModel(c operation.Citizen) model.Citizen {
	records, _ := json.Marshal(c.Records)
	m := model.Citizen{
		ID:           c.ID,
		Name:         c.Name,
		HomeX:        c.Home.X,
		HomeY:        c.Home.Y,
		Hospitalized: c.Hospitalized,
		Detained:     c.Detained,
		Records:      records,
	}
	if c.CachedRiskScore != nil {
		v := int32(*c.CachedRiskScore)
		m.CachedRiskScore = &v
	}
	return m
}

func citizenFromModel(m model.Citizen) operation.Citizen {
	c := operation.Citizen{
		ID:           m.ID,
		Name:         m.Name,
		Home:         operation.Point{X: m.HomeX, Y: m.HomeY},
		Hospitalized: m.Hospitalized,
		Detained:     m.Detained,
	}
	if len(m.Records) > 0 {
		_ = json.Unmarshal(m.Records, &c.Records)
	}
	if m.CachedRiskScore != nil {
		v := int(*m.CachedRiskScore)
		c.CachedRiskScore = &v
	}
	return c
}

func protestToModel(p operation.Protest) model.Protest {
	return model.Protest{
		ID:                      p.ID,
		OperatorID:              p.OperatorID,
		Status:                  string(p.Status),
		Neighborhood:            p.Neighborhood,
		Size:                    int32(p.Size),
		TriggerActionID:         p.TriggerActionID,
		HasIncitingAgent:        p.HasIncitingAgent,
		IncitingAgentDiscovered: p.IncitingAgentDiscovered,
		Casualties:              int32(p.Casualties),
		Arrests:                 int32(p.Arrests),
		CreatedAt:               p.CreatedAt,
		UpdatedAt:               p.UpdatedAt,
	}
}

func protestFromModel(m model.Protest) operation.Protest {
	return operation.Protest{
		ID:                      m.ID,
		OperatorID:              m.OperatorID,
		Status:                  operation.ProtestStatus(m.Status),
		Neighborhood:            m.Neighborhood,
		Size:                    int(m.Size),
		TriggerActionID:         m.TriggerActionID,
		HasIncitingAgent:        m.HasIncitingAgent,
		IncitingAgentDiscovered: m.IncitingAgentDiscovered,
		Casualties:              int(m.Casualties),
		Arrests:                 int(m.Arrests),
		CreatedAt:               m.CreatedAt,
		UpdatedAt:               m.UpdatedAt,
	}
}

func channelToModel(ch operation.NewsChannel, position int) model.NewsChannel {
	reporters := ch.Reporters
	if reporters == nil {
		reporters = []operation.Reporter{}
	}
	b, _ := json.Marshal(reporters)
	return model.NewsChannel{
		ID:          ch.ID,
		Position:    int32(position),
		Name:        ch.Name,
		Stance:      string(ch.Stance),
		Credibility: int32(ch.Credibility),
		Banned:      ch.Banned,
		Reporters:   b,
	}
}

func channelFromModel(m model.NewsChannel) operation.NewsChannel {
	ch := operation.NewsChannel{
		ID:          m.ID,
		Name:        m.Name,
		Stance:      operation.Stance(m.Stance),
		Credibility: int(m.Credibility),
		Banned:      m.Banned,
	}
	if len(m.Reporters) > 0 {
		_ = json.Unmarshal(m.Reporters, &ch.Reporters)
	}
	return ch
}

func articleToModel(a operation.NewsArticle) model.NewsArticle {
	return model.NewsArticle{
		ID:              a.ID,
		ChannelID:       a.ChannelID,
		Type:            string(a.Type),
		Headline:        a.Headline,
		Summary:         a.Summary,
		TriggerActionID: a.TriggerActionID,
		AngerDelta:      int32(a.AngerDelta),
		AwarenessDelta:  int32(a.AwarenessDelta),
		Suppressed:      a.Suppressed,
		CreatedAt:       a.CreatedAt,
	}
}

func articleFromModel(m model.NewsArticle) operation.NewsArticle {
	return operation.NewsArticle{
		ID:              m.ID,
		ChannelID:       m.ChannelID,
		Type:            operation.ArticleType(m.Type),
		Headline:        m.Headline,
		Summary:         m.Summary,
		TriggerActionID: m.TriggerActionID,
		AngerDelta:      int(m.AngerDelta),
		AwarenessDelta:  int(m.AwarenessDelta),
		Suppressed:      m.Suppressed,
		CreatedAt:       m.CreatedAt,
	}
}

func actionToModel(a operation.Action) model.OperatorAction {
	return model.OperatorAction{
		ID:                  a.ID,
		OperatorID:          a.OperatorID,
		DirectiveID:         a.DirectiveID,
		Kind:                string(a.Kind),
		CitizenID:           a.Targets.CitizenID,
		Neighborhood:        a.Targets.Neighborhood,
		NewsChannelID:       a.Targets.NewsChannelID,
		ProtestID:           a.Targets.ProtestID,
		Severity:            int32(a.Severity),
		BacklashProbability: a.BacklashProbability,
		BacklashOccurred:    a.BacklashOccurred,
		Justification:       a.Justification,
		DecisionSeconds:     a.DecisionSeconds,
		WasHesitant:         a.WasHesitant,
		CreatedAt:           a.CreatedAt,
		OutcomeImmediate:    a.Outcomes.Immediate,
		OutcomeOneMonth:     a.Outcomes.OneMonth,
		OutcomeSixMonths:    a.Outcomes.SixMonths,
		OutcomeOneYear:      a.Outcomes.OneYear,
	}
}

func actionFromModel(m model.OperatorAction) operation.Action {
	return operation.Action{
		ID:          m.ID,
		OperatorID:  m.OperatorID,
		DirectiveID: m.DirectiveID,
		Kind:        operation.ActionKind(m.Kind),
		Targets: operation.Targets{
			CitizenID:     m.CitizenID,
			Neighborhood:  m.Neighborhood,
			NewsChannelID: m.NewsChannelID,
			ProtestID:     m.ProtestID,
		},
		Severity:            int(m.Severity),
		BacklashProbability: m.BacklashProbability,
		BacklashOccurred:    m.BacklashOccurred,
		Justification:       m.Justification,
		DecisionSeconds:     m.DecisionSeconds,
		WasHesitant:         m.WasHesitant,
		CreatedAt:           m.CreatedAt,
		Outcomes: operation.ActionOutcomes{
			Immediate: m.OutcomeImmediate,
			OneMonth:  m.OutcomeOneMonth,
			SixMonths: m.OutcomeSixMonths,
			OneYear:   m.OutcomeOneYear,
		},
	}
}

func flagToModel(f operation.CitizenFlag) model.CitizenFlag {
	return model.CitizenFlag{
		ID:              f.ID,
		OperatorID:      f.OperatorID,
		DirectiveID:     f.DirectiveID,
		CitizenID:       f.CitizenID,
		FlagType:        f.FlagType,
		RiskScore:       int32(f.RiskScore),
		Justification:   f.Justification,
		DecisionSeconds: f.DecisionSeconds,
		WasHesitant:     f.WasHesitant,
		Outcome:         string(f.Outcome),
		CreatedAt:       f.CreatedAt,
	}
}

func flagFromModel(m model.CitizenFlag) operation.CitizenFlag {
	return operation.CitizenFlag{
		ID:              m.ID,
		OperatorID:      m.OperatorID,
		DirectiveID:     m.DirectiveID,
		CitizenID:       m.CitizenID,
		FlagType:        m.FlagType,
		RiskScore:       int(m.RiskScore),
		Justification:   m.Justification,
		DecisionSeconds: m.DecisionSeconds,
		WasHesitant:     m.WasHesitant,
		Outcome:         operation.FlagOutcome(m.Outcome),
		CreatedAt:       m.CreatedAt,
	}
}

func directiveToModel(d operation.Directive) model.Directive {
	types := d.TargetTypes
	if types == nil {
		types = []string{}
	}
	b, _ := json.Marshal(types)
	return model.Directive{
		ID:               d.ID,
		Week:             int32(d.Week),
		Title:            d.Title,
		FlagQuota:        int32(d.FlagQuota),
		TimeLimitSeconds: int32(d.TimeLimitSeconds),
		TargetTypes:      b,
	}
}

func directiveFromModel(m model.Directive) operation.Directive {
	d := operation.Directive{
		ID:               m.ID,
		Week:             int(m.Week),
		Title:            m.Title,
		FlagQuota:        int(m.FlagQuota),
		TimeLimitSeconds: int(m.TimeLimitSeconds),
	}
	if len(m.TargetTypes) > 0 {
		_ = json.Unmarshal(m.TargetTypes, &d.TargetTypes)
	}
	return d
}

func bookToModel(b operation.BookPublication) model.BookPublication {
	return model.BookPublication{
		ID:              b.ID,
		Title:           b.Title,
		Author:          b.Author,
		ControversyType: b.ControversyType,
		Week:            int32(b.Week),
		Status:          string(b.Status),
		CreatedAt:       b.CreatedAt,
	}
}

func bookFromModel(m model.BookPublication) operation.BookPublication {
	return operation.BookPublication{
		ID:              m.ID,
		Title:           m.Title,
		Author:          m.Author,
		ControversyType: m.ControversyType,
		Week:            int(m.Week),
		Status:          operation.BookStatus(m.Status),
		CreatedAt:       m.CreatedAt,
	}
}

func neighborhoodToModel(n operation.Neighborhood, position int) model.Neighborhood {
	return model.Neighborhood{
		Name:     n.Name,
		Position: int32(position),
		MinX:     n.Bounds.MinX,
		MinY:     n.Bounds.MinY,
		MaxX:     n.Bounds.MaxX,
		MaxY:     n.Bounds.MaxY,
	}
}

func neighborhoodFromModel(m model.Neighborhood) operation.Neighborhood {
	return operation.Neighborhood{
		Name: m.Name,
		Bounds: operation.Bounds{
			MinX: m.MinX,
			MinY: m.MinY,
			MaxX: m.MaxX,
			MaxY: m.MaxY,
		},
	}
}
