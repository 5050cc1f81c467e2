package repository

import (
	"context"
	"errors"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/BruksfildServices01/construction-site/internal/httperr"
	"github.com/BruksfildServices01/construction-site/internal/models"
	"github.com/BruksfildServices01/construction-site/internal/partial"
)

type CompanyGormRepository struct {
	db *gorm.DB
}

func NewCompanyGormRepository(db *gorm.DB) *CompanyGormRepository {
	return &CompanyGormRepository{db: db}
}

func (r *CompanyGormRepository) Get(ctx context.Context) (*models.CompanyInfo, error) {
	var info models.CompanyInfo
	if err := r.db.WithContext(ctx).First(&info, models.CompanyInfoID).Error; err != nil {
		return nil, translate(err)
	}
	return &info, nil
}

// Upsert applies p to the single company row, inserting it first when the
// table is empty. Inserting requires a non-empty name in p. Concurrent first
// writers race on the fixed id; the loser's insert is a no-op and it updates
// the winner's row instead.
func (r *CompanyGormRepository) Upsert(ctx context.Context, p *partial.Patch) (*models.CompanyInfo, bool, error) {
	if p.Empty() {
		return nil, false, ErrEmptyUpdate
	}

	var created bool

	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var existing models.CompanyInfo
		err := forUpdate(tx).First(&existing, models.CompanyInfoID).Error

		switch {
		case err == nil:
		case errors.Is(err, gorm.ErrRecordNotFound):
			name, _ := p.Get("name")
			nameStr, _ := name.(string)
			if nameStr == "" {
				return httperr.ErrBusiness("company_name_required")
			}

			res := tx.Clauses(clause.OnConflict{DoNothing: true}).
				Create(&models.CompanyInfo{ID: models.CompanyInfoID, Name: nameStr})
			if res.Error != nil {
				return res.Error
			}
			created = res.RowsAffected == 1
		default:
			return err
		}

		return p.Apply(ctx, tx, &models.CompanyInfo{}, models.CompanyInfoID)
	})
	if err != nil {
		return nil, false, translate(err)
	}

	var info models.CompanyInfo
	if err := r.db.WithContext(ctx).First(&info, models.CompanyInfoID).Error; err != nil {
		return nil, false, translate(err)
	}
	return &info, created, nil
}
