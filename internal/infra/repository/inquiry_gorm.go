package repository

import (
	"context"

	"gorm.io/gorm"

	domain "github.com/BruksfildServices01/construction-site/internal/domain/inquiry"
	"github.com/BruksfildServices01/construction-site/internal/models"
	"github.com/BruksfildServices01/construction-site/internal/partial"
)

const appendNoteSQL = `CASE WHEN admin_notes IS NULL OR admin_notes = '' ` +
	`THEN CAST(? AS TEXT) ELSE admin_notes || CAST(? AS TEXT) END`

type InquiryFilter struct {
	Status string
	Query  string
	Limit  int
	Offset int
}

type InquiryGormRepository struct {
	db *gorm.DB
}

func NewInquiryGormRepository(db *gorm.DB) *InquiryGormRepository {
	return &InquiryGormRepository{db: db}
}

func (r *InquiryGormRepository) Create(ctx context.Context, inq *models.ContactInquiry) error {
	return r.db.WithContext(ctx).Create(inq).Error
}

func (r *InquiryGormRepository) List(ctx context.Context, f InquiryFilter) ([]models.ContactInquiry, int64, error) {
	q := r.db.WithContext(ctx).Model(&models.ContactInquiry{})

	if f.Status != "" {
		q = q.Where("status = ?", f.Status)
	}
	if f.Query != "" {
		like := "%" + f.Query + "%"
		q = q.Where(
			"LOWER(first_name) LIKE ? OR LOWER(last_name) LIKE ? OR LOWER(email) LIKE ?",
			like, like, like,
		)
	}

	var total int64
	if err := q.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	var items []models.ContactInquiry
	if err := q.
		Order("created_at DESC").
		Order("id DESC").
		Limit(f.Limit).
		Offset(f.Offset).
		Find(&items).Error; err != nil {
		return nil, 0, err
	}

	return items, total, nil
}

func (r *InquiryGormRepository) Get(ctx context.Context, id uint) (*models.ContactInquiry, error) {
	var inq models.ContactInquiry
	if err := r.db.WithContext(ctx).First(&inq, id).Error; err != nil {
		return nil, translate(err)
	}
	return &inq, nil
}

// Update applies ch in one statement; the note is concatenated in SQL so
// concurrent notes are not lost.
func (r *InquiryGormRepository) Update(ctx context.Context, id uint, ch domain.Changes) (*models.ContactInquiry, error) {
	p := partial.New()
	if ch.Status != nil {
		p.Set("status", string(*ch.Status))
	}
	partial.Field(p, "responded_at", ch.RespondedAt)
	if ch.Note != "" {
		p.Set("admin_notes", gorm.Expr(appendNoteSQL, ch.Note, domain.NoteSeparator+ch.Note))
	}

	if err := p.Apply(ctx, r.db, &models.ContactInquiry{}, id); err != nil {
		return nil, translate(err)
	}
	return r.Get(ctx, id)
}

func (r *InquiryGormRepository) Delete(ctx context.Context, id uint) error {
	res := r.db.WithContext(ctx).Delete(&models.ContactInquiry{}, id)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return ErrNotFound
	}
	return nil
}

var _ domain.Repository = (*InquiryGormRepository)(nil)
