package gormrepo

import (
	"context"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"watchfloor/internal/adapter/repo/gorm/model"
	"watchfloor/internal/domain/operation"
)

type NewsChannelRepo struct {
	db *gorm.DB
}

func NewNewsChannelRepo(db *gorm.DB) NewsChannelRepo {
	return NewsChannelRepo{db: db}
}

func (r NewsChannelRepo) GetByID(ctx context.Context, id string) (operation.NewsChannel, error) {
	var m model.NewsChannel
	if err := getDBFromCtx(ctx, r.db).Where("id = ?", id).First(&m).Error; err != nil {
		return operation.NewsChannel{}, mapReadErr(err)
	}
	return channelFromModel(m), nil
}

// Update keeps the channel's list position.
func (r NewsChannelRepo) Update(ctx context.Context, ch operation.NewsChannel) error {
	m := channelToModel(ch, 0)
	return mustAffect(getDBFromCtx(ctx, r.db).Model(&model.NewsChannel{}).
		Where("id = ?", ch.ID).
		Select("name", "stance", "credibility", "banned", "reporters").
		Updates(&m))
}

func (r NewsChannelRepo) List(ctx context.Context) ([]operation.NewsChannel, error) {
	rows := []model.NewsChannel{}
	if err := getDBFromCtx(ctx, r.db).Order("position").Find(&rows).Error; err != nil {
		return nil, err
	}
	out := make([]operation.NewsChannel, 0, len(rows))
	for _, row := range rows {
		out = append(out, channelFromModel(row))
	}
	return out, nil
}

type NewsArticleRepo struct {
	db *gorm.DB
}

func NewNewsArticleRepo(db *gorm.DB) NewsArticleRepo {
	return NewsArticleRepo{db: db}
}

func (r NewsArticleRepo) Add(ctx context.Context, a operation.NewsArticle) error {
	m := articleToModel(a)
	return mapCreateErr(getDBFromCtx(ctx, r.db).Create(&m).Error)
}

func (r NewsArticleRepo) ListRecent(ctx context.Context, limit int) ([]operation.NewsArticle, error) {
	rows := []model.NewsArticle{}
	query := getDBFromCtx(ctx, r.db).
		Clauses(clause.OrderBy{
			Columns: []clause.OrderByColumn{{Column: clause.Column{Name: "seq"}, Desc: true}},
		})
	if limit > 0 {
		query = query.Limit(limit)
	}
	if err := query.Find(&rows).Error; err != nil {
		return nil, err
	}
	out := make([]operation.NewsArticle, 0, len(rows))
	for _, row := range rows {
		out = append(out, articleFromModel(row))
	}
	return out, nil
}
