package action

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"watchfloor/internal/app/ports"
	"watchfloor/internal/app/shared/operatorstate"
	"watchfloor/internal/domain/operation"
)

var (
	ErrInvalidRequest    = errors.New("invalid action request")
	ErrActionUnavailable = errors.New("action unavailable")
	ErrOperatorNotFound  = operatorstate.ErrOperatorNotFound
)

// UnavailableError is an expected business refusal. Execute turns it into
// an unsuccessful Result instead of returning it.
type UnavailableError struct {
	Reason string
}

func (e *UnavailableError) Error() string {
	return ErrActionUnavailable.Error() + ": " + e.Reason
}

func (e *UnavailableError) Unwrap() error {
	return ErrActionUnavailable
}

func unavailable(format string, args ...any) error {
	return &UnavailableError{Reason: fmt.Sprintf(format, args...)}
}

type UseCase struct {
	TxManager     ports.TxManager
	Citizens      ports.CitizenRepository
	Protests      ports.ProtestRepository
	Channels      ports.NewsChannelRepository
	Articles      ports.NewsArticleRepository
	MetricsRepo   ports.MetricsRepository
	Operators     ports.OperatorRepository
	Actions       ports.ActionRepository
	Neighborhoods ports.NeighborhoodRepository
	Books         ports.BookRepository
	Metrics       ports.ActionMetrics
	Rand          operation.Rand
	Logger        *slog.Logger
	Now           func() time.Time
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

// Execute resolves one operator decision atomically.
func (u UseCase) Execute(ctx context.Context, req Request) (Result, error) {
	ac, err := u.ValidateRequest(req)
	if err != nil {
		return Result{}, err
	}
	ac.In.NowAt = u.now()

	err = u.TxManager.RunInTx(ctx, func(txCtx context.Context) error {
		if err := u.LoadState(txCtx, &ac); err != nil {
			return err
		}
		if err := u.ResolveSpec(&ac); err != nil {
			return err
		}
		if err := u.RunPrechecks(txCtx, &ac); err != nil {
			return err
		}
		if err := u.RollBacklash(&ac); err != nil {
			return err
		}
		if err := u.ApplyKindEffects(txCtx, &ac); err != nil {
			return err
		}
		u.ApplyPublicMetrics(&ac)
		if err := u.GenerateEvents(txCtx, &ac); err != nil {
			return err
		}
		u.UpdateReluctance(&ac, true)
		u.CheckTermination(&ac)
		u.LogOperatorDecision(&ac)
		if err := u.CheckExposure(&ac); err != nil {
			return err
		}
		return u.Persist(txCtx, &ac)
	})

	kind := ac.In.Req.Kind
	var unavailableErr *UnavailableError
	if errors.As(err, &unavailableErr) {
		if u.Metrics != nil {
			u.Metrics.RecordUnavailable(kind)
		}
		u.logger().Info("action unavailable",
			"operator_id", req.OperatorID, "action_kind", kind, "reason", unavailableErr.Reason)
		return unavailableResult(kind, unavailableErr.Reason), nil
	}
	if err != nil {
		if u.Metrics != nil {
			u.Metrics.RecordFailure()
		}
		return Result{}, err
	}
	if u.Metrics != nil {
		u.Metrics.RecordExecuted(kind)
	}

	out := u.BuildResult(&ac)
	u.logger().Info("action executed",
		"operator_id", req.OperatorID,
		"action_id", out.ActionID,
		"action_kind", kind,
		"severity", out.Severity,
		"backlash", out.Backlash,
		"articles", len(out.Articles),
		"protests", len(out.Protests),
	)
	return out, nil
}

// SubmitNoAction records an explicit refusal. Only reluctance and the
// termination check run.
func (u UseCase) SubmitNoAction(ctx context.Context, req NoActionRequest) (Result, error) {
	ac, err := u.ValidateNoActionRequest(req)
	if err != nil {
		return Result{}, err
	}
	ac.In.NowAt = u.now()

	err = u.TxManager.RunInTx(ctx, func(txCtx context.Context) error {
		if err := u.LoadState(txCtx, &ac); err != nil {
			return err
		}
		if ac.View.Operator.Terminated() {
			return unavailable("operator has been terminated")
		}
		u.UpdateReluctance(&ac, false)
		u.CheckTermination(&ac)
		if err := u.MetricsRepo.SaveReluctance(txCtx, ac.View.Reluctance); err != nil {
			return err
		}
		return u.Operators.Save(txCtx, ac.View.Operator)
	})

	var unavailableErr *UnavailableError
	if errors.As(err, &unavailableErr) {
		return unavailableResult("", unavailableErr.Reason), nil
	}
	if err != nil {
		return Result{}, err
	}

	out := ac.Tmp.Result
	out.Success = true
	u.logger().Info("no action submitted",
		"operator_id", req.OperatorID,
		"citizen_id", req.CitizenID,
		"reluctance_delta", out.ReluctanceDelta,
		"terminated", out.Termination != nil,
	)
	return out, nil
}
