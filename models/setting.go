package models

// Setting is one entry of the open key/value portfolio settings map
// (CV download URL, CV description, and whatever the admin panel adds next).
type Setting struct {
	Key   string `json:"key" db:"key" gorm:"type:text;primaryKey;not null"`
	Value string `json:"value" db:"value" gorm:"type:text"`
}

func (Setting) TableName() string {
	return "portfolio_settings"
}
