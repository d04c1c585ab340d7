package gormrepo

import (
	"context"

	"gorm.io/gorm"

	"watchfloor/internal/adapter/repo/gorm/model"
	"watchfloor/internal/domain/operation"
)

type DirectiveRepo struct {
	db *gorm.DB
}

func NewDirectiveRepo(db *gorm.DB) DirectiveRepo {
	return DirectiveRepo{db: db}
}

func (r DirectiveRepo) GetByID(ctx context.Context, id string) (operation.Directive, error) {
	var m model.Directive
	if err := getDBFromCtx(ctx, r.db).Where("id = ?", id).First(&m).Error; err != nil {
		return operation.Directive{}, mapReadErr(err)
	}
	return directiveFromModel(m), nil
}

func (r DirectiveRepo) GetByWeek(ctx context.Context, week int) (operation.Directive, error) {
	var m model.Directive
	if err := getDBFromCtx(ctx, r.db).Where("week = ?", week).First(&m).Error; err != nil {
		return operation.Directive{}, mapReadErr(err)
	}
	return directiveFromModel(m), nil
}

func (r DirectiveRepo) LastWeek(ctx context.Context) (int, error) {
	var last int
	err := getDBFromCtx(ctx, r.db).Model(&model.Directive{}).
		Select("COALESCE(MAX(week), 0)").Scan(&last).Error
	return last, err
}

type BookRepo struct {
	db *gorm.DB
}

func NewBookRepo(db *gorm.DB) BookRepo {
	return BookRepo{db: db}
}

func (r BookRepo) Add(ctx context.Context, b operation.BookPublication) error {
	m := bookToModel(b)
	return mapCreateErr(getDBFromCtx(ctx, r.db).Create(&m).Error)
}

func (r BookRepo) GetByID(ctx context.Context, id string) (operation.BookPublication, error) {
	var m model.BookPublication
	if err := getDBFromCtx(ctx, r.db).Where("id = ?", id).First(&m).Error; err != nil {
		return operation.BookPublication{}, mapReadErr(err)
	}
	return bookFromModel(m), nil
}

func (r BookRepo) Update(ctx context.Context, b operation.BookPublication) error {
	m := bookToModel(b)
	return mustAffect(getDBFromCtx(ctx, r.db).Model(&model.BookPublication{}).
		Where("id = ?", b.ID).Select("*").Updates(&m))
}

func (r BookRepo) List(ctx context.Context) ([]operation.BookPublication, error) {
	rows := []model.BookPublication{}
	if err := getDBFromCtx(ctx, r.db).Order("id").Find(&rows).Error; err != nil {
		return nil, err
	}
	out := make([]operation.BookPublication, 0, len(rows))
	for _, row := range rows {
		out = append(out, bookFromModel(row))
	}
	return out, nil
}
