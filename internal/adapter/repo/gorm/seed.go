package gormrepo

import (
	"context"
	"errors"

	"gorm.io/gorm"

	"watchfloor/internal/adapter/repo/gorm/model"
	"watchfloor/internal/app/ports"
	"watchfloor/internal/domain/operation"
)

// playthroughTables are cleared, children first, before a new scenario is
// written.
var playthroughTables = []string{
	model.TableNameOperatorAction,
	model.TableNameCitizenFlag,
	model.TableNameNewsArticle,
	model.TableNameProtest,
	model.TableNameBookPublication,
	model.TableNameNewsChannel,
	model.TableNameCitizen,
	model.TableNameNeighborhood,
	model.TableNameDirective,
	model.TableNamePublicMetrics,
	model.TableNameReluctanceMetrics,
	model.TableNameOperator,
}

// SeedScenario replaces the stored playthrough with the starting state of
// sc.
func SeedScenario(ctx context.Context, db *gorm.DB, sc operation.Scenario) error {
	if err := sc.Validate(); err != nil {
		return err
	}
	return db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		for _, table := range playthroughTables {
			if err := tx.Exec("DELETE FROM " + table).Error; err != nil {
				return err
			}
		}
		txCtx := withTx(ctx, tx)

		if err := NewOperatorRepo(tx).Save(txCtx, sc.InitialOperator()); err != nil {
			return err
		}
		metrics := NewMetricsRepo(tx)
		if err := metrics.SavePublic(txCtx, operation.PublicMetrics{}); err != nil {
			return err
		}
		if err := metrics.SaveReluctance(txCtx, sc.InitialReluctance()); err != nil {
			return err
		}
		citizens := NewCitizenRepo(tx)
		for _, c := range sc.Citizens {
			if err := citizens.Save(txCtx, c); err != nil {
				return err
			}
		}
		for i, n := range sc.Neighborhoods {
			m := neighborhoodToModel(n, i)
			if err := tx.Create(&m).Error; err != nil {
				return err
			}
		}
		for i, ch := range sc.Channels {
			m := channelToModel(ch, i)
			if err := tx.Create(&m).Error; err != nil {
				return err
			}
		}
		for _, d := range sc.Directives {
			m := directiveToModel(d)
			if err := tx.Create(&m).Error; err != nil {
				return err
			}
		}
		return nil
	})
}

// EnsureSeeded seeds sc only when no operator has been stored yet. It
// reports whether it seeded.
func EnsureSeeded(ctx context.Context, db *gorm.DB, sc operation.Scenario) (bool, error) {
	_, err := NewOperatorRepo(db).Get(ctx)
	if err == nil {
		return false, nil
	}
	if !errors.Is(err, ports.ErrNotFound) {
		return false, err
	}
	if err := SeedScenario(ctx, db, sc); err != nil {
		return false, err
	}
	return true, nil
}
