package dto

import "time"

type DashboardDTO struct {
	Services         int64               `json:"services"`
	ActiveServices   int64               `json:"active_services"`
	Projects         int64               `json:"projects"`
	FeaturedProjects int64               `json:"featured_projects"`
	TeamMembers      int64               `json:"team_members"`
	Inquiries        map[string]int64    `json:"inquiries"`
	RecentInquiries  []InquirySummaryDTO `json:"recent_inquiries"`
}

type InquirySummaryDTO struct {
	ID        uint      `json:"id"`
	Name      string    `json:"name"`
	Email     string    `json:"email"`
	Service   string    `json:"service"`
	Status    string    `json:"status"`
	CreatedAt time.Time `json:"created_at"`
}
