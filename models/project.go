package models

import (
	"time"

	"gorm.io/datatypes"
)

// ProjectCategory is the fixed set of portfolio sections a project can live in.
type ProjectCategory string

const (
	CategoryFrontend  ProjectCategory = "frontend"
	CategoryBackend   ProjectCategory = "backend"
	CategoryFullstack ProjectCategory = "fullstack"
	CategoryResearch  ProjectCategory = "research"
	CategoryOther     ProjectCategory = "other"
)

// Valid reports whether c is one of the known categories.
func (c ProjectCategory) Valid() bool {
	switch c {
	case CategoryFrontend, CategoryBackend, CategoryFullstack, CategoryResearch, CategoryOther:
		return true
	}
	return false
}

// Project represents a portfolio project with its display metadata.
// SortOrder defines manual display precedence; it is neither unique nor
// contiguous on disk, and ties are resolved by CreatedAt DESC.
type Project struct {
	ID                string                          `json:"id" db:"id" gorm:"type:text;primaryKey;not null"`
	Title             string                          `json:"title" db:"title" gorm:"type:text;not null"`
	Description       string                          `json:"description" db:"description" gorm:"type:text"`
	Category          ProjectCategory                 `json:"category" db:"category" gorm:"type:text"`
	SecondaryCategory *ProjectCategory                `json:"secondaryCategory,omitempty" db:"secondary_category" gorm:"column:secondary_category;type:text"`
	Technologies      datatypes.JSONSlice[Technology] `json:"technologies" db:"technologies" gorm:"type:jsonb"`
	GithubURL         string                          `json:"githubUrl" db:"github_url" gorm:"column:github_url;type:text"`
	LiveURL           string                          `json:"liveUrl" db:"live_url" gorm:"column:live_url;type:text"`
	ImageURL          string                          `json:"imageUrl" db:"image_url" gorm:"column:image_url;type:text"`
	Gallery           datatypes.JSONSlice[string]     `json:"gallery" db:"gallery" gorm:"type:jsonb"`
	Featured          bool                            `json:"featured" db:"featured" gorm:"default:true"`
	IsStarred         bool                            `json:"isStarred" db:"is_starred" gorm:"column:is_starred;default:false"`
	IsRealWorld       bool                            `json:"isRealWorld" db:"is_real_world" gorm:"column:is_real_world;default:false"`
	SortOrder         int                             `json:"sortOrder" db:"sort_order" gorm:"column:sort_order;default:0"`
	CreatedAt         time.Time                       `json:"createdAt" db:"created_at" gorm:"column:created_at"`
}
