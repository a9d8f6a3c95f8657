package model

import (
	"database/sql/driver"
	"encoding/json"
	"fmt"
	"time"
)

// Project is one entry of a portfolio. It has no identity of its own.
type Project struct {
	ProjectName        string  `json:"projectName"`
	ProjectURL         *string `json:"projectURL,omitempty"`
	ProjectDescription string  `json:"projectDescription"`
	Technologies       string  `json:"technologies"`
}

// Projects is persisted as a single JSON text column.
type Projects []Project

// Value implements driver.Valuer.
func (p Projects) Value() (driver.Value, error) {
	return EncodeProjects(p)
}

// Scan implements sql.Scanner.
func (p *Projects) Scan(src interface{}) error {
	var raw string
	switch v := src.(type) {
	case nil:
		*p = Projects{}
		return nil
	case string:
		raw = v
	case []byte:
		raw = string(v)
	default:
		return fmt.Errorf("scan projects: unsupported type %T", src)
	}
	decoded, err := DecodeProjects(raw)
	if err != nil {
		return err
	}
	*p = decoded
	return nil
}

// EncodeProjects serializes projects in order. A nil slice encodes as an empty list.
func EncodeProjects(projects []Project) (string, error) {
	if projects == nil {
		projects = []Project{}
	}
	b, err := json.Marshal(projects)
	if err != nil {
		return "", fmt.Errorf("encode projects: %w", err)
	}
	return string(b), nil
}

// DecodeProjects is the inverse of EncodeProjects.
func DecodeProjects(raw string) (Projects, error) {
	projects := Projects{}
	if raw == "" {
		return projects, nil
	}
	if err := json.Unmarshal([]byte(raw), &projects); err != nil {
		return nil, fmt.Errorf("decode projects: %w", err)
	}
	return projects, nil
}

// Portfolio is a user's profile plus an ordered list of projects.
// ID and OwnerID are zero until the portfolio is saved.
type Portfolio struct {
	ID                uint      `json:"id,omitempty" gorm:"primaryKey"`
	OwnerID           uint      `json:"owner_id,omitempty" gorm:"not null;index"`
	FullName          string    `json:"fullName" gorm:"size:255;not null"`
	ProfessionalTitle string    `json:"professionalTitle" gorm:"size:255"`
	Email             string    `json:"email" gorm:"size:255"`
	Phone             string    `json:"phone" gorm:"size:64"`
	AboutMe           string    `json:"aboutMe" gorm:"type:text"`
	Skills            string    `json:"skills" gorm:"type:text"`
	Projects          Projects  `json:"projects" gorm:"type:text;not null"`
	CreatedAt         time.Time `json:"-"`
	UpdatedAt         time.Time `json:"-"`

	// Relations
	Owner *User `json:"-" gorm:"foreignKey:OwnerID"`
}

// Clone returns a copy whose project list can be modified without touching p.
func (p Portfolio) Clone() Portfolio {
	out := p
	out.Owner = nil
	if p.Projects != nil {
		out.Projects = make(Projects, len(p.Projects))
		copy(out.Projects, p.Projects)
	}
	return out
}

// PortfolioSummary is the listing view of a stored portfolio.
type PortfolioSummary struct {
	ID       uint   `json:"id"`
	FullName string `json:"fullName"`
}
