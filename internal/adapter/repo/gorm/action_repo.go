package gormrepo

import (
	"context"
	"fmt"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"watchfloor/internal/adapter/repo/gorm/model"
	"watchfloor/internal/app/ports"
	"watchfloor/internal/domain/operation"
)

var outcomeColumns = map[operation.OutcomeSlot]string{
	operation.OutcomeImmediate: "outcome_immediate",
	operation.OutcomeOneMonth:  "outcome_one_month",
	operation.OutcomeSixMonths: "outcome_six_months",
	operation.OutcomeOneYear:   "outcome_one_year",
}

type ActionRepo struct {
	db *gorm.DB
}

func NewActionRepo(db *gorm.DB) ActionRepo {
	return ActionRepo{db: db}
}

func (r ActionRepo) Add(ctx context.Context, a operation.Action) error {
	m := actionToModel(a)
	return mapCreateErr(getDBFromCtx(ctx, r.db).Create(&m).Error)
}

// List returns matching actions oldest first, keeping the newest Limit.
func (r ActionRepo) List(ctx context.Context, f ports.ActionFilter) ([]operation.Action, error) {
	rows := []model.OperatorAction{}
	query := getDBFromCtx(ctx, r.db).Model(&model.OperatorAction{})
	if f.OperatorID != "" {
		query = query.Where("operator_id = ?", f.OperatorID)
	}
	if f.Kind != "" {
		query = query.Where("kind = ?", string(f.Kind))
	}
	query = query.Clauses(clause.OrderBy{
		Columns: []clause.OrderByColumn{{Column: clause.Column{Name: "seq"}, Desc: true}},
	})
	if f.Limit > 0 {
		query = query.Limit(f.Limit)
	}
	if err := query.Find(&rows).Error; err != nil {
		return nil, err
	}
	out := make([]operation.Action, len(rows))
	for i, row := range rows {
		out[len(rows)-1-i] = actionFromModel(row)
	}
	return out, nil
}

func (r ActionRepo) SetOutcome(ctx context.Context, actionID string, slot operation.OutcomeSlot, text string) error {
	column, ok := outcomeColumns[slot]
	if !ok {
		return fmt.Errorf("unknown outcome slot %q", slot)
	}
	return mustAffect(getDBFromCtx(ctx, r.db).Model(&model.OperatorAction{}).
		Where("id = ?", actionID).
		Update(column, text))
}

type FlagRepo struct {
	db *gorm.DB
}

func NewFlagRepo(db *gorm.DB) FlagRepo {
	return FlagRepo{db: db}
}

func (r FlagRepo) Add(ctx context.Context, f operation.CitizenFlag) error {
	m := flagToModel(f)
	return mapCreateErr(getDBFromCtx(ctx, r.db).Create(&m).Error)
}

func (r FlagRepo) GetByID(ctx context.Context, id string) (operation.CitizenFlag, error) {
	var m model.CitizenFlag
	if err := getDBFromCtx(ctx, r.db).Where("id = ?", id).First(&m).Error; err != nil {
		return operation.CitizenFlag{}, mapReadErr(err)
	}
	return flagFromModel(m), nil
}

func (r FlagRepo) Update(ctx context.Context, f operation.CitizenFlag) error {
	m := flagToModel(f)
	return mustAffect(getDBFromCtx(ctx, r.db).Model(&model.CitizenFlag{}).
		Where("id = ?", f.ID).Select("*").Omit("seq").Updates(&m))
}

func (r FlagRepo) List(ctx context.Context) ([]operation.CitizenFlag, error) {
	rows := []model.CitizenFlag{}
	if err := getDBFromCtx(ctx, r.db).Order("seq").Find(&rows).Error; err != nil {
		return nil, err
	}
	out := make([]operation.CitizenFlag, 0, len(rows))
	for _, row := range rows {
		out = append(out, flagFromModel(row))
	}
	return out, nil
}
