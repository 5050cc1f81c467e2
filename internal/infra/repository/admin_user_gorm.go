package repository

import (
	"context"
	"strings"
	"time"

	"gorm.io/gorm"

	"github.com/BruksfildServices01/construction-site/internal/models"
	"github.com/BruksfildServices01/construction-site/internal/partial"
)

type AdminUserGormRepository struct {
	db *gorm.DB
}

func NewAdminUserGormRepository(db *gorm.DB) *AdminUserGormRepository {
	return &AdminUserGormRepository{db: db}
}

func (r *AdminUserGormRepository) GetByEmail(ctx context.Context, email string) (*models.AdminUser, error) {
	var u models.AdminUser
	if err := r.db.WithContext(ctx).
		Where("email = ?", strings.ToLower(strings.TrimSpace(email))).
		First(&u).Error; err != nil {
		return nil, translate(err)
	}
	return &u, nil
}

func (r *AdminUserGormRepository) GetByID(ctx context.Context, id uint) (*models.AdminUser, error) {
	var u models.AdminUser
	if err := r.db.WithContext(ctx).First(&u, id).Error; err != nil {
		return nil, translate(err)
	}
	return &u, nil
}

func (r *AdminUserGormRepository) List(ctx context.Context) ([]models.AdminUser, error) {
	var users []models.AdminUser
	if err := r.db.WithContext(ctx).Order("id ASC").Find(&users).Error; err != nil {
		return nil, err
	}
	return users, nil
}

func (r *AdminUserGormRepository) Create(ctx context.Context, u *models.AdminUser) error {
	u.Email = strings.ToLower(strings.TrimSpace(u.Email))
	return r.db.WithContext(ctx).Create(u).Error
}

func (r *AdminUserGormRepository) Update(ctx context.Context, id uint, p *partial.Patch) (*models.AdminUser, error) {
	if err := p.Apply(ctx, r.db, &models.AdminUser{}, id); err != nil {
		return nil, translate(err)
	}
	return r.GetByID(ctx, id)
}

func (r *AdminUserGormRepository) TouchLastLogin(ctx context.Context, id uint, at time.Time) error {
	return r.db.WithContext(ctx).
		Model(&models.AdminUser{}).
		Where("id = ?", id).
		UpdateColumn("last_login_at", at).Error
}

func (r *AdminUserGormRepository) CountAdmins(ctx context.Context) (int64, error) {
	var n int64
	err := r.db.WithContext(ctx).
		Model(&models.AdminUser{}).
		Where("role = ?", models.RoleAdmin).
		Count(&n).Error
	return n, err
}

func (r *AdminUserGormRepository) Delete(ctx context.Context, id uint) error {
	res := r.db.WithContext(ctx).Delete(&models.AdminUser{}, id)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return ErrNotFound
	}
	return nil
}
