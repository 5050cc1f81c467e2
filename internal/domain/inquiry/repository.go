package inquiry

import (
	"context"

	"github.com/BruksfildServices01/construction-site/internal/models"
)

type Repository interface {
	Get(ctx context.Context, id uint) (*models.ContactInquiry, error)
	Update(ctx context.Context, id uint, ch Changes) (*models.ContactInquiry, error)
}
