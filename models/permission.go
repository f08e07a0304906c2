package models

// Permission names follow the <resource>_<action> convention used by the
// route gates, e.g. "categories_edit" or "panchayaths_delete".
type Permission struct {
	ID          uint   `json:"id" gorm:"primaryKey"`
	Name        string `json:"name" gorm:"unique;not null"`
	Description string `json:"description"`
	Resource    string `json:"resource" gorm:"not null"`
}
