package entities

import (
	"errors"
)

// PersonalInfo and SocialLinks are singletons; the rest are ordered lists.

type PersonalInfo struct {
	Base     `bson:",inline" yaml:",inline"`
	Name     string `json:"name" bson:"name" yaml:"name"`
	Title    string `json:"title" bson:"title" yaml:"title"`
	Tagline  string `json:"tagline" bson:"tagline" yaml:"tagline"`
	Subtitle string `json:"subtitle" bson:"subtitle" yaml:"subtitle"`
	Email    string `json:"email" bson:"email" yaml:"email"`
	Phone    string `json:"phone" bson:"phone" yaml:"phone"`
	Location string `json:"location" bson:"location" yaml:"location"`
	Bio      string `gorm:"type:text" json:"bio" bson:"bio" yaml:"bio"`
	Quote    string `gorm:"type:text" json:"quote" bson:"quote" yaml:"quote"`
	Book     string `json:"book" bson:"book" yaml:"book"`
}

func (PersonalInfo) TableName() string { return "personal_info" }

type SocialLinks struct {
	Base      `bson:",inline" yaml:",inline"`
	Website   string `json:"website" bson:"website" yaml:"website"`
	Magazine  string `json:"magazine" bson:"magazine" yaml:"magazine"`
	Facebook  string `json:"facebook" bson:"facebook" yaml:"facebook"`
	Linkedin  string `json:"linkedin" bson:"linkedin" yaml:"linkedin"`
	Instagram string `json:"instagram" bson:"instagram" yaml:"instagram"`
	Twitter   string `json:"twitter" bson:"twitter" yaml:"twitter"`
}

func (SocialLinks) TableName() string { return "social_links" }

const DefaultSkillCategory = "Photography"

type Skill struct {
	Base     `bson:",inline" yaml:",inline"`
	Ordered  `bson:",inline" yaml:",inline"`
	Name     string `json:"name" bson:"name" yaml:"name"`
	Level    int    `json:"level" bson:"level" yaml:"level"` // 0-100
	Years    string `json:"years" bson:"years" yaml:"years"`
	Category string `json:"category" bson:"category" yaml:"category"`
}

func (Skill) TableName() string { return "skills" }

func (s Skill) GetCategory() string { return s.Category }

func (s Skill) Validate() error {
	if s.Name == "" {
		return errors.New("name is required")
	}
	if s.Level < 0 || s.Level > 100 {
		return errors.New("level must be between 0 and 100")
	}
	return nil
}

type Experience struct {
	Base        `bson:",inline" yaml:",inline"`
	Ordered     `bson:",inline" yaml:",inline"`
	Title       string     `json:"title" bson:"title" yaml:"title"`
	Company     string     `json:"company" bson:"company" yaml:"company"`
	Location    string     `json:"location" bson:"location" yaml:"location"`
	Period      string     `json:"period" bson:"period" yaml:"period"`
	Type        string     `json:"type" bson:"type" yaml:"type"`
	Description string     `gorm:"type:text" json:"description" bson:"description" yaml:"description"`
	Highlights  StringList `gorm:"type:text" json:"highlights" bson:"highlights" yaml:"highlights"`
}

func (Experience) TableName() string { return "experience" }

func (e Experience) Validate() error {
	if e.Title == "" {
		return errors.New("title is required")
	}
	if e.Company == "" {
		return errors.New("company is required")
	}
	return nil
}

type Project struct {
	Base        `bson:",inline" yaml:",inline"`
	Ordered     `bson:",inline" yaml:",inline"`
	Title       string     `json:"title" bson:"title" yaml:"title"`
	Category    string     `json:"category" bson:"category" yaml:"category"`
	Year        string     `json:"year" bson:"year" yaml:"year"`
	Description string     `gorm:"type:text" json:"description" bson:"description" yaml:"description"`
	Image       string     `json:"image" bson:"image" yaml:"image"`
	Tags        StringList `gorm:"type:text" json:"tags" bson:"tags" yaml:"tags"`
	Featured    bool       `json:"featured" bson:"featured" yaml:"featured"`
}

func (Project) TableName() string { return "projects" }

func (p Project) GetCategory() string { return p.Category }

func (p Project) Validate() error {
	if p.Title == "" {
		return errors.New("title is required")
	}
	return nil
}

type Award struct {
	Base         `bson:",inline" yaml:",inline"`
	Ordered      `bson:",inline" yaml:",inline"`
	Title        string `json:"title" bson:"title" yaml:"title"`
	Organization string `json:"organization" bson:"organization" yaml:"organization"`
	Year         string `json:"year" bson:"year" yaml:"year"`
	Description  string `gorm:"type:text" json:"description" bson:"description" yaml:"description"`
}

func (Award) TableName() string { return "awards" }

func (a Award) Validate() error {
	if a.Title == "" {
		return errors.New("title is required")
	}
	return nil
}

// Normalize fills defaults before a skill is stored.
func (s *Skill) Normalize() {
	if s.Category == "" {
		s.Category = DefaultSkillCategory
	}
}

func (e *Experience) Normalize() {
	if e.Highlights == nil {
		e.Highlights = StringList{}
	}
}

func (p *Project) Normalize() {
	if p.Tags == nil {
		p.Tags = StringList{}
	}
}
