package gormrepo

import (
	"context"

	"gorm.io/gorm"

	"watchfloor/internal/adapter/repo/gorm/model"
	"watchfloor/internal/domain/operation"
)

type ProtestRepo struct {
	db *gorm.DB
}

func NewProtestRepo(db *gorm.DB) ProtestRepo {
	return ProtestRepo{db: db}
}

func (r ProtestRepo) GetByID(ctx context.Context, id string) (operation.Protest, error) {
	var m model.Protest
	if err := getDBFromCtx(ctx, r.db).Where("id = ?", id).First(&m).Error; err != nil {
		return operation.Protest{}, mapReadErr(err)
	}
	return protestFromModel(m), nil
}

func (r ProtestRepo) Add(ctx context.Context, p operation.Protest) error {
	m := protestToModel(p)
	return mapCreateErr(getDBFromCtx(ctx, r.db).Create(&m).Error)
}

func (r ProtestRepo) Update(ctx context.Context, p operation.Protest) error {
	m := protestToModel(p)
	return mustAffect(getDBFromCtx(ctx, r.db).Model(&model.Protest{}).
		Where("id = ?", p.ID).Select("*").Updates(&m))
}

// List returns protests oldest first.
func (r ProtestRepo) List(ctx context.Context) ([]operation.Protest, error) {
	rows := []model.Protest{}
	if err := getDBFromCtx(ctx, r.db).Order("created_at, id").Find(&rows).Error; err != nil {
		return nil, err
	}
	out := make([]operation.Protest, 0, len(rows))
	for _, row := range rows {
		out = append(out, protestFromModel(row))
	}
	return out, nil
}
