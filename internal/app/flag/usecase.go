// Package flag records citizen flags against the weekly quota and settles
// their review.
package flag

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"watchfloor/internal/app/ports"
	"watchfloor/internal/app/shared/operatorstate"
	"watchfloor/internal/domain/compliance"
	"watchfloor/internal/domain/operation"
	"watchfloor/internal/domain/risk"
)

var (
	ErrInvalidRequest  = errors.New("invalid flag request")
	ErrAlreadyReviewed = fmt.Errorf("flag already reviewed: %w", ports.ErrConflict)
)

const defaultFlagType = "general"

type UseCase struct {
	TxManager   ports.TxManager
	Citizens    ports.CitizenRepository
	Flags       ports.FlagRepository
	Operators   ports.OperatorRepository
	MetricsRepo ports.MetricsRepository
	Reference   ports.ReferenceData
	Logger      *slog.Logger
	Now         func() time.Time
}

func (u UseCase) logger() *slog.Logger {
	if u.Logger != nil {
		return u.Logger
	}
	return slog.Default()
}

func (u UseCase) now() time.Time {
	if u.Now != nil {
		return u.Now()
	}
	return time.Now()
}

// Submit scores the citizen, records the flag and counts it toward the quota.
func (u UseCase) Submit(ctx context.Context, req SubmitRequest) (SubmitResponse, error) {
	req.OperatorID = strings.TrimSpace(req.OperatorID)
	req.CitizenID = strings.TrimSpace(req.CitizenID)
	if req.OperatorID == "" || req.CitizenID == "" || req.DecisionSeconds < 0 {
		return SubmitResponse{}, ErrInvalidRequest
	}
	if strings.TrimSpace(req.FlagType) == "" {
		req.FlagType = defaultFlagType
	}
	hesitant := req.WasHesitant || compliance.IsHesitant(req.DecisionSeconds)

	var out SubmitResponse
	err := u.TxManager.RunInTx(ctx, func(txCtx context.Context) error {
		op, err := operatorstate.LoadActive(txCtx, u.Operators, req.OperatorID)
		if err != nil {
			return err
		}
		citizen, err := u.Citizens.GetByID(txCtx, req.CitizenID)
		if err != nil {
			return fmt.Errorf("citizen %s: %w", req.CitizenID, err)
		}
		ref, err := u.Reference.RiskReference(txCtx)
		if err != nil {
			return err
		}
		scored, err := risk.Score(citizen, ref)
		if errors.Is(err, risk.ErrNoWeights) {
			return fmt.Errorf("%w: %v", ports.ErrReferenceDataMissing, err)
		}
		if err != nil {
			return err
		}
		score := scored.Score
		citizen.CachedRiskScore = &score
		if err := u.Citizens.Save(txCtx, citizen); err != nil {
			return err
		}

		directiveID := strings.TrimSpace(req.DirectiveID)
		if directiveID == "" {
			directiveID = op.CurrentDirectiveID
		}
		f := operation.CitizenFlag{
			ID:              operation.NewID("flag"),
			OperatorID:      op.ID,
			DirectiveID:     directiveID,
			CitizenID:       citizen.ID,
			FlagType:        req.FlagType,
			RiskScore:       score,
			Justification:   req.Justification,
			DecisionSeconds: req.DecisionSeconds,
			WasHesitant:     hesitant,
			Outcome:         operation.FlagPending,
			CreatedAt:       u.now(),
		}
		if err := u.Flags.Add(txCtx, f); err != nil {
			return err
		}

		rel, err := u.MetricsRepo.GetReluctance(txCtx)
		if err != nil {
			return err
		}
		rel.QuotaCompleted++
		update := compliance.UpdateReluctance(&rel, compliance.Decision{ActionTaken: true, WasHesitant: hesitant})
		out.Warnings = []string{}
		if update.Warning != nil {
			out.Warnings = append(out.Warnings, update.Warning.Message)
		}

		op.FlagsSubmitted++
		compliance.RecordDecision(&op, req.DecisionSeconds, hesitant)
		compliance.Refresh(&op, rel)
		if t, ok := compliance.CheckTermination(rel.Score, op.CurrentWeek); ok {
			compliance.Terminate(&op, t)
			out.Termination = &t
			out.Warnings = append(out.Warnings, t.Message)
		}
		if err := u.MetricsRepo.SaveReluctance(txCtx, rel); err != nil {
			return err
		}
		if err := u.Operators.Save(txCtx, op); err != nil {
			return err
		}

		out.Flag = f
		out.Risk = scored
		out.QuotaRequired = rel.QuotaRequired
		out.QuotaCompleted = rel.QuotaCompleted
		out.ReluctanceDelta = update.Delta
		return nil
	})
	if err != nil {
		return SubmitResponse{}, err
	}
	u.logger().Info("citizen flagged",
		"operator_id", req.OperatorID,
		"citizen_id", req.CitizenID,
		"flag_id", out.Flag.ID,
		"risk_score", out.Risk.Score,
		"quota_completed", out.QuotaCompleted,
	)
	return out, nil
}

// Review settles a pending flag once. Rejections count against the operator.
func (u UseCase) Review(ctx context.Context, req ReviewRequest) (ReviewResponse, error) {
	req.FlagID = strings.TrimSpace(req.FlagID)
	if req.FlagID == "" || (req.Outcome != operation.FlagApproved && req.Outcome != operation.FlagRejected) {
		return ReviewResponse{}, ErrInvalidRequest
	}

	var out ReviewResponse
	err := u.TxManager.RunInTx(ctx, func(txCtx context.Context) error {
		f, err := u.Flags.GetByID(txCtx, req.FlagID)
		if err != nil {
			return fmt.Errorf("flag %s: %w", req.FlagID, err)
		}
		if f.Outcome != operation.FlagPending {
			return ErrAlreadyReviewed
		}
		op, err := operatorstate.Load(txCtx, u.Operators, f.OperatorID)
		if err != nil {
			return err
		}
		rel, err := u.MetricsRepo.GetReluctance(txCtx)
		if err != nil {
			return err
		}

		f.Outcome = req.Outcome
		if err := u.Flags.Update(txCtx, f); err != nil {
			return err
		}
		op.ReviewsCompleted++
		if req.Outcome == operation.FlagRejected {
			op.FlagsRejected++
		}
		compliance.Refresh(&op, rel)
		if err := u.Operators.Save(txCtx, op); err != nil {
			return err
		}
		out = ReviewResponse{Flag: f, ComplianceScore: op.ComplianceScore, Status: op.Status}
		return nil
	})
	if err != nil {
		return ReviewResponse{}, err
	}
	u.logger().Info("flag reviewed", "flag_id", req.FlagID, "outcome", req.Outcome)
	return out, nil
}
