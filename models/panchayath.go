package models

import "time"

// Panchayath is a local self-government unit; the admin screens group them by
// district.
type Panchayath struct {
	ID        uint      `json:"id" gorm:"primaryKey"`
	Name      string    `json:"name" gorm:"not null;uniqueIndex:idx_panchayath_district_name"`
	District  string    `json:"district" gorm:"not null;uniqueIndex:idx_panchayath_district_name"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
