package dto

import "github.com/BruksfildServices01/construction-site/internal/models"

type CompanyDTO struct {
	models.CompanyInfo
	IsOpenNow bool `json:"is_open_now"`
}
