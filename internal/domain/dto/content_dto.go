package dto

import "portfolio/internal/domain/entities"

// Update DTOs use pointer fields: nil means "leave unchanged".

type PersonalInfoUpdate struct {
	Name     *string `json:"name,omitempty"`
	Title    *string `json:"title,omitempty"`
	Tagline  *string `json:"tagline,omitempty"`
	Subtitle *string `json:"subtitle,omitempty"`
	Email    *string `json:"email,omitempty"`
	Phone    *string `json:"phone,omitempty"`
	Location *string `json:"location,omitempty"`
	Bio      *string `json:"bio,omitempty"`
	Quote    *string `json:"quote,omitempty"`
	Book     *string `json:"book,omitempty"`
}

func (u PersonalInfoUpdate) Apply(e *entities.PersonalInfo) {
	set(&e.Name, u.Name)
	set(&e.Title, u.Title)
	set(&e.Tagline, u.Tagline)
	set(&e.Subtitle, u.Subtitle)
	set(&e.Email, u.Email)
	set(&e.Phone, u.Phone)
	set(&e.Location, u.Location)
	set(&e.Bio, u.Bio)
	set(&e.Quote, u.Quote)
	set(&e.Book, u.Book)
}

type SocialLinksUpdate struct {
	Website   *string `json:"website,omitempty"`
	Magazine  *string `json:"magazine,omitempty"`
	Facebook  *string `json:"facebook,omitempty"`
	Linkedin  *string `json:"linkedin,omitempty"`
	Instagram *string `json:"instagram,omitempty"`
	Twitter   *string `json:"twitter,omitempty"`
}

func (u SocialLinksUpdate) Apply(e *entities.SocialLinks) {
	set(&e.Website, u.Website)
	set(&e.Magazine, u.Magazine)
	set(&e.Facebook, u.Facebook)
	set(&e.Linkedin, u.Linkedin)
	set(&e.Instagram, u.Instagram)
	set(&e.Twitter, u.Twitter)
}

type SkillUpdate struct {
	Name     *string `json:"name,omitempty"`
	Level    *int    `json:"level,omitempty"`
	Years    *string `json:"years,omitempty"`
	Category *string `json:"category,omitempty"`
	Order    *int    `json:"order,omitempty"`
}

func (u SkillUpdate) Apply(e *entities.Skill) {
	set(&e.Name, u.Name)
	set(&e.Level, u.Level)
	set(&e.Years, u.Years)
	set(&e.Category, u.Category)
	set(&e.Order, u.Order)
}

type ExperienceUpdate struct {
	Title       *string   `json:"title,omitempty"`
	Company     *string   `json:"company,omitempty"`
	Location    *string   `json:"location,omitempty"`
	Period      *string   `json:"period,omitempty"`
	Type        *string   `json:"type,omitempty"`
	Description *string   `json:"description,omitempty"`
	Highlights  *[]string `json:"highlights,omitempty"`
	Order       *int      `json:"order,omitempty"`
}

func (u ExperienceUpdate) Apply(e *entities.Experience) {
	set(&e.Title, u.Title)
	set(&e.Company, u.Company)
	set(&e.Location, u.Location)
	set(&e.Period, u.Period)
	set(&e.Type, u.Type)
	set(&e.Description, u.Description)
	if u.Highlights != nil {
		e.Highlights = entities.StringList(*u.Highlights)
	}
	set(&e.Order, u.Order)
}

type ProjectUpdate struct {
	Title       *string   `json:"title,omitempty"`
	Category    *string   `json:"category,omitempty"`
	Year        *string   `json:"year,omitempty"`
	Description *string   `json:"description,omitempty"`
	Image       *string   `json:"image,omitempty"`
	Tags        *[]string `json:"tags,omitempty"`
	Featured    *bool     `json:"featured,omitempty"`
	Order       *int      `json:"order,omitempty"`
}

func (u ProjectUpdate) Apply(e *entities.Project) {
	set(&e.Title, u.Title)
	set(&e.Category, u.Category)
	set(&e.Year, u.Year)
	set(&e.Description, u.Description)
	set(&e.Image, u.Image)
	if u.Tags != nil {
		e.Tags = entities.StringList(*u.Tags)
	}
	set(&e.Featured, u.Featured)
	set(&e.Order, u.Order)
}

type AwardUpdate struct {
	Title        *string `json:"title,omitempty"`
	Organization *string `json:"organization,omitempty"`
	Year         *string `json:"year,omitempty"`
	Description  *string `json:"description,omitempty"`
	Order        *int    `json:"order,omitempty"`
}

func (u AwardUpdate) Apply(e *entities.Award) {
	set(&e.Title, u.Title)
	set(&e.Organization, u.Organization)
	set(&e.Year, u.Year)
	set(&e.Description, u.Description)
	set(&e.Order, u.Order)
}

func set[T any](dst *T, v *T) {
	if v != nil {
		*dst = *v
	}
}
