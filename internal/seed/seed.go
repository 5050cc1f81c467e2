// Package seed loads site content from a YAML file into an empty
// database.
package seed

import (
	"context"
	"errors"
	"fmt"
	"io"
	"time"

	"gopkg.in/yaml.v3"
	"gorm.io/datatypes"
	"gorm.io/gorm"

	"github.com/BruksfildServices01/construction-site/internal/models"
)

var ErrNotEmpty = errors.New("seed: content tables are not empty")

type Content struct {
	Company  *Company  `yaml:"company"`
	Services []Service `yaml:"services"`
	Projects []Project `yaml:"projects"`
	Team     []Member  `yaml:"team"`
}

type Company struct {
	Name          string            `yaml:"name"`
	Tagline       string            `yaml:"tagline"`
	Description   string            `yaml:"description"`
	Mission       string            `yaml:"mission"`
	Vision        string            `yaml:"vision"`
	Values        string            `yaml:"values"`
	Address       string            `yaml:"address"`
	Phone         string            `yaml:"phone"`
	Email         string            `yaml:"email"`
	Website       string            `yaml:"website"`
	SocialMedia   map[string]string `yaml:"social_media"`
	BusinessHours map[string]string `yaml:"business_hours"`
	LogoURL       string            `yaml:"logo_url"`
	HeroImageURL  string            `yaml:"hero_image_url"`
	AboutImageURL string            `yaml:"about_image_url"`
	FoundedYear   *int              `yaml:"founded_year"`
}

type Service struct {
	Name             string   `yaml:"name"`
	ShortDescription string   `yaml:"short_description"`
	Description      string   `yaml:"description"`
	PriceRange       string   `yaml:"price_range"`
	Features         []string `yaml:"features"`
	ImageURL         string   `yaml:"image_url"`
	IconName         string   `yaml:"icon_name"`
	Inactive         bool     `yaml:"inactive"`
}

type Project struct {
	Name             string   `yaml:"name"`
	ShortDescription string   `yaml:"short_description"`
	Description      string   `yaml:"description"`
	Location         string   `yaml:"location"`
	ProjectType      string   `yaml:"project_type"`
	BudgetRange      string   `yaml:"budget_range"`
	ProjectValue     string   `yaml:"project_value"`
	CompletionDate   string   `yaml:"completion_date"`
	ClientName       string   `yaml:"client_name"`
	ImageURLs        []string `yaml:"image_urls"`
	Features         []string `yaml:"features"`
	Status           string   `yaml:"status"`
	Featured         bool     `yaml:"featured"`
	Inactive         bool     `yaml:"inactive"`
}

type Member struct {
	Name            string   `yaml:"name"`
	Position        string   `yaml:"position"`
	Bio             string   `yaml:"bio"`
	ImageURL        string   `yaml:"image_url"`
	Email           string   `yaml:"email"`
	Phone           string   `yaml:"phone"`
	Specialties     []string `yaml:"specialties"`
	YearsExperience *int     `yaml:"years_experience"`
	Inactive        bool     `yaml:"inactive"`
}

type Result struct {
	Company  bool
	Services int
	Projects int
	Team     int
}

// Load decodes and validates a content file. Unknown keys are rejected.
func Load(r io.Reader) (*Content, error) {
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)

	var c Content
	if err := dec.Decode(&c); err != nil {
		if errors.Is(err, io.EOF) {
			return &c, nil
		}
		return nil, fmt.Errorf("seed: decode: %w", err)
	}
	if err := c.validate(); err != nil {
		return nil, err
	}
	return &c, nil
}

func (c *Content) validate() error {
	if c.Company != nil && c.Company.Name == "" {
		return errors.New("seed: company.name is required")
	}
	for i, s := range c.Services {
		if s.Name == "" {
			return fmt.Errorf("seed: services[%d].name is required", i)
		}
	}
	for i, p := range c.Projects {
		if p.Name == "" {
			return fmt.Errorf("seed: projects[%d].name is required", i)
		}
		switch p.Status {
		case "", models.ProjectPlanning, models.ProjectInProgress, models.ProjectCompleted, models.ProjectOnHold:
		default:
			return fmt.Errorf("seed: projects[%d].status %q is invalid", i, p.Status)
		}
		if p.CompletionDate != "" {
			if _, err := time.Parse("2006-01-02", p.CompletionDate); err != nil {
				return fmt.Errorf("seed: projects[%d].completion_date: %w", i, err)
			}
		}
	}
	for i, m := range c.Team {
		if m.Name == "" || m.Position == "" {
			return fmt.Errorf("seed: team[%d] needs name and position", i)
		}
	}
	return nil
}

// Apply writes c in one transaction. Existing content makes it fail with
// ErrNotEmpty unless force is set, in which case the content tables are
// replaced.
func Apply(ctx context.Context, db *gorm.DB, c *Content, force bool) (Result, error) {
	var res Result

	err := db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		tables := []any{&models.CompanyInfo{}, &models.Service{}, &models.Project{}, &models.TeamMember{}}

		for _, m := range tables {
			var n int64
			if err := tx.Model(m).Count(&n).Error; err != nil {
				return err
			}
			if n == 0 {
				continue
			}
			if !force {
				return ErrNotEmpty
			}
			if err := tx.Session(&gorm.Session{AllowGlobalUpdate: true}).Delete(m).Error; err != nil {
				return err
			}
		}

		if c.Company != nil {
			if err := tx.Create(c.Company.model()).Error; err != nil {
				return fmt.Errorf("company: %w", err)
			}
			res.Company = true
		}

		for i, s := range c.Services {
			if err := tx.Create(s.model(i + 1)).Error; err != nil {
				return fmt.Errorf("service %q: %w", s.Name, err)
			}
		}
		res.Services = len(c.Services)

		for i, p := range c.Projects {
			if err := tx.Create(p.model(i + 1)).Error; err != nil {
				return fmt.Errorf("project %q: %w", p.Name, err)
			}
		}
		res.Projects = len(c.Projects)

		for i, m := range c.Team {
			if err := tx.Create(m.model(i + 1)).Error; err != nil {
				return fmt.Errorf("team member %q: %w", m.Name, err)
			}
		}
		res.Team = len(c.Team)

		return nil
	})
	if err != nil {
		return Result{}, err
	}
	return res, nil
}

func (c *Company) model() *models.CompanyInfo {
	return &models.CompanyInfo{
		ID:            models.CompanyInfoID,
		Name:          c.Name,
		Tagline:       c.Tagline,
		Description:   c.Description,
		Mission:       c.Mission,
		Vision:        c.Vision,
		Values:        c.Values,
		Address:       c.Address,
		Phone:         c.Phone,
		Email:         c.Email,
		Website:       c.Website,
		SocialMedia:   jsonMap(c.SocialMedia),
		BusinessHours: jsonMap(c.BusinessHours),
		LogoURL:       c.LogoURL,
		HeroImageURL:  c.HeroImageURL,
		AboutImageURL: c.AboutImageURL,
		FoundedYear:   c.FoundedYear,
	}
}

func (s Service) model(pos int) *models.Service {
	return &models.Service{
		Name:             s.Name,
		ShortDescription: s.ShortDescription,
		Description:      s.Description,
		PriceRange:       s.PriceRange,
		Features:         list(s.Features),
		ImageURL:         s.ImageURL,
		IconName:         s.IconName,
		OrderPosition:    pos,
		IsActive:         !s.Inactive,
	}
}

func (p Project) model(pos int) *models.Project {
	status := p.Status
	if status == "" {
		status = models.ProjectPlanning
	}

	var completion *time.Time
	if t, err := time.Parse("2006-01-02", p.CompletionDate); err == nil {
		completion = &t
	}

	return &models.Project{
		Name:             p.Name,
		ShortDescription: p.ShortDescription,
		Description:      p.Description,
		Location:         p.Location,
		ProjectType:      p.ProjectType,
		BudgetRange:      p.BudgetRange,
		ProjectValue:     p.ProjectValue,
		CompletionDate:   completion,
		ClientName:       p.ClientName,
		ImageURLs:        list(p.ImageURLs),
		Features:         list(p.Features),
		Status:           status,
		OrderPosition:    pos,
		IsFeatured:       p.Featured,
		IsActive:         !p.Inactive,
	}
}

func (m Member) model(pos int) *models.TeamMember {
	return &models.TeamMember{
		Name:            m.Name,
		Position:        m.Position,
		Bio:             m.Bio,
		ImageURL:        m.ImageURL,
		Email:           m.Email,
		Phone:           m.Phone,
		Specialties:     list(m.Specialties),
		YearsExperience: m.YearsExperience,
		OrderPosition:   pos,
		IsActive:        !m.Inactive,
	}
}

func list(v []string) datatypes.JSONSlice[string] {
	if v == nil {
		v = []string{}
	}
	return datatypes.NewJSONSlice(v)
}

func jsonMap(m map[string]string) datatypes.JSONMap {
	out := datatypes.JSONMap{}
	for k, v := range m {
		out[k] = v
	}
	return out
}
