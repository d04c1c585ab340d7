package gormrepo

import (
	"context"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"watchfloor/internal/adapter/repo/gorm/model"
	"watchfloor/internal/domain/operation"
)

type CitizenRepo struct {
	db *gorm.DB
}

func NewCitizenRepo(db *gorm.DB) CitizenRepo {
	return CitizenRepo{db: db}
}

func (r CitizenRepo) GetByID(ctx context.Context, id string) (operation.Citizen, error) {
	var m model.Citizen
	if err := getDBFromCtx(ctx, r.db).Where("id = ?", id).First(&m).Error; err != nil {
		return operation.Citizen{}, mapReadErr(err)
	}
	return citizenFromModel(m), nil
}

func (r CitizenRepo) Save(ctx context.Context, c operation.Citizen) error {
	m := citizenToModel(c)
	return getDBFromCtx(ctx, r.db).Clauses(clause.OnConflict{UpdateAll: true}).Create(&m).Error
}

func (r CitizenRepo) List(ctx context.Context) ([]operation.Citizen, error) {
	rows := []model.Citizen{}
	if err := getDBFromCtx(ctx, r.db).Order("id").Find(&rows).Error; err != nil {
		return nil, err
	}
	out := make([]operation.Citizen, 0, len(rows))
	for _, row := range rows {
		out = append(out, citizenFromModel(row))
	}
	return out, nil
}

type NeighborhoodRepo struct {
	db *gorm.DB
}

func NewNeighborhoodRepo(db *gorm.DB) NeighborhoodRepo {
	return NeighborhoodRepo{db: db}
}

func (r NeighborhoodRepo) List(ctx context.Context) ([]operation.Neighborhood, error) {
	rows := []model.Neighborhood{}
	if err := getDBFromCtx(ctx, r.db).Order("position").Find(&rows).Error; err != nil {
		return nil, err
	}
	out := make([]operation.Neighborhood, 0, len(rows))
	for _, row := range rows {
		out = append(out, neighborhoodFromModel(row))
	}
	return out, nil
}
