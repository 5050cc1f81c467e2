package repository

import (
	"context"
	"database/sql"

	"gorm.io/gorm"

	"github.com/BruksfildServices01/construction-site/internal/dto"
	"github.com/BruksfildServices01/construction-site/internal/models"
)

const recentInquiries = 5

type DashboardGormRepository struct {
	db *gorm.DB
}

func NewDashboardGormRepository(db *gorm.DB) *DashboardGormRepository {
	return &DashboardGormRepository{db: db}
}

// Snapshot reads every dashboard figure inside one repeatable-read
// transaction, so all counts come from the same snapshot.
func (r *DashboardGormRepository) Snapshot(ctx context.Context) (*dto.DashboardDTO, error) {
	out := &dto.DashboardDTO{
		Inquiries: map[string]int64{
			models.InquiryNew:        0,
			models.InquiryInProgress: 0,
			models.InquiryResolved:   0,
			models.InquiryArchived:   0,
		},
	}

	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		counts := []struct {
			model any
			where string
			dest  *int64
		}{
			{&models.Service{}, "", &out.Services},
			{&models.Service{}, "is_active = true", &out.ActiveServices},
			{&models.Project{}, "", &out.Projects},
			{&models.Project{}, "is_featured = true", &out.FeaturedProjects},
			{&models.TeamMember{}, "", &out.TeamMembers},
		}
		for _, c := range counts {
			q := tx.Model(c.model)
			if c.where != "" {
				q = q.Where(c.where)
			}
			if err := q.Count(c.dest).Error; err != nil {
				return err
			}
		}

		var byStatus []struct {
			Status string
			Total  int64
		}
		if err := tx.Model(&models.ContactInquiry{}).
			Select("status, COUNT(*) AS total").
			Group("status").
			Scan(&byStatus).Error; err != nil {
			return err
		}
		for _, s := range byStatus {
			out.Inquiries[s.Status] = s.Total
		}

		var recent []models.ContactInquiry
		if err := tx.
			Order("created_at DESC").
			Order("id DESC").
			Limit(recentInquiries).
			Find(&recent).Error; err != nil {
			return err
		}

		out.RecentInquiries = make([]dto.InquirySummaryDTO, 0, len(recent))
		for _, inq := range recent {
			out.RecentInquiries = append(out.RecentInquiries, dto.InquirySummaryDTO{
				ID:        inq.ID,
				Name:      inq.FullName(),
				Email:     inq.Email,
				Service:   inq.Service,
				Status:    inq.Status,
				CreatedAt: inq.CreatedAt,
			})
		}
		return nil
	}, snapshotTxOptions(r.db.Dialector.Name()))
	if err != nil {
		return nil, err
	}

	return out, nil
}

// snapshotTxOptions only applies to postgres; SQLite serializes anyway.
func snapshotTxOptions(dialect string) *sql.TxOptions {
	if dialect != "postgres" {
		return nil
	}
	return &sql.TxOptions{ReadOnly: true, Isolation: sql.LevelRepeatableRead}
}
