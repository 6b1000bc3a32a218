package models

// Certificate represents a completed course or achievement shown in the
// certificates carousel. Date is a free-text year or label, not a timestamp;
// it only participates in ordering as a lexicographic tiebreaker.
type Certificate struct {
	ID          string `json:"id" db:"id" gorm:"type:text;primaryKey;not null"`
	Title       string `json:"title" db:"title" gorm:"type:text;not null"`
	Description string `json:"description" db:"description" gorm:"type:text"`
	Date        string `json:"date" db:"date" gorm:"type:text"`
	Academy     string `json:"academy" db:"academy" gorm:"type:text"`
	ImageURL    string `json:"imageUrl" db:"image_url" gorm:"column:image_url;type:text"`
	SortOrder   int    `json:"sortOrder" db:"sort_order" gorm:"column:sort_order;default:0"`
}
