package gormrepo

import (
	"context"
	"errors"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"watchfloor/internal/adapter/repo/gorm/model"
	"watchfloor/internal/domain/operation"
)

const singletonRowID = 1

type OperatorRepo struct {
	db *gorm.DB
}

func NewOperatorRepo(db *gorm.DB) OperatorRepo {
	return OperatorRepo{db: db}
}

func (r OperatorRepo) Get(ctx context.Context) (operation.Operator, error) {
	var m model.Operator
	if err := getDBFromCtx(ctx, r.db).Order("id").First(&m).Error; err != nil {
		return operation.Operator{}, mapReadErr(err)
	}
	return operatorFromModel(m), nil
}

func (r OperatorRepo) Save(ctx context.Context, op operation.Operator) error {
	m := operatorToModel(op)
	return getDBFromCtx(ctx, r.db).Clauses(clause.OnConflict{UpdateAll: true}).Create(&m).Error
}

// MetricsRepo reads a missing row as zero metrics.
type MetricsRepo struct {
	db *gorm.DB
}

func NewMetricsRepo(db *gorm.DB) MetricsRepo {
	return MetricsRepo{db: db}
}

func (r MetricsRepo) GetPublic(ctx context.Context) (operation.PublicMetrics, error) {
	var m model.PublicMetrics
	err := getDBFromCtx(ctx, r.db).Where("id = ?", singletonRowID).First(&m).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return operation.PublicMetrics{}, nil
	}
	if err != nil {
		return operation.PublicMetrics{}, err
	}
	return operation.PublicMetrics{
		Awareness:     int(m.Awareness),
		Anger:         int(m.Anger),
		AwarenessTier: int(m.AwarenessTier),
		AngerTier:     int(m.AngerTier),
	}, nil
}

func (r MetricsRepo) SavePublic(ctx context.Context, p operation.PublicMetrics) error {
	m := model.PublicMetrics{
		ID:            singletonRowID,
		Awareness:     int32(p.Awareness),
		Anger:         int32(p.Anger),
		AwarenessTier: int32(p.AwarenessTier),
		AngerTier:     int32(p.AngerTier),
	}
	return getDBFromCtx(ctx, r.db).Clauses(clause.OnConflict{UpdateAll: true}).Create(&m).Error
}

func (r MetricsRepo) GetReluctance(ctx context.Context) (operation.ReluctanceMetrics, error) {
	var m model.ReluctanceMetrics
	err := getDBFromCtx(ctx, r.db).Where("id = ?", singletonRowID).First(&m).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return operation.ReluctanceMetrics{}, nil
	}
	if err != nil {
		return operation.ReluctanceMetrics{}, err
	}
	return operation.ReluctanceMetrics{
		Score:            int(m.Score),
		NoActionCount:    int(m.NoActionCount),
		HesitationCount:  int(m.HesitationCount),
		ActionsTaken:     int(m.ActionsTaken),
		QuotaRequired:    int(m.QuotaRequired),
		QuotaCompleted:   int(m.QuotaCompleted),
		LastShortfall:    int(m.LastShortfall),
		WarningsReceived: int(m.WarningsReceived),
		UnderReview:      m.UnderReview,
	}, nil
}

func (r MetricsRepo) SaveReluctance(ctx context.Context, rm operation.ReluctanceMetrics) error {
	m := model.ReluctanceMetrics{
		ID:               singletonRowID,
		Score:            int32(rm.Score),
		NoActionCount:    int32(rm.NoActionCount),
		HesitationCount:  int32(rm.HesitationCount),
		ActionsTaken:     int32(rm.ActionsTaken),
		QuotaRequired:    int32(rm.QuotaRequired),
		QuotaCompleted:   int32(rm.QuotaCompleted),
		LastShortfall:    int32(rm.LastShortfall),
		WarningsReceived: int32(rm.WarningsReceived),
		UnderReview:      rm.UnderReview,
	}
	return getDBFromCtx(ctx, r.db).Clauses(clause.OnConflict{UpdateAll: true}).Create(&m).Error
}
