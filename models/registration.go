package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// Registration statuses.
const (
	RegistrationPending  = "pending"
	RegistrationApproved = "approved"
	RegistrationRejected = "rejected"
)

// Registration is one applicant's enrolment in a category. Panchayaths and
// categories referenced here cannot be deleted while the registration exists.
type Registration struct {
	ID             string          `json:"id" gorm:"type:uuid;primaryKey"`
	RegistrationNo string          `json:"registration_no" gorm:"unique;not null"`
	FullName       string          `json:"full_name" gorm:"not null"`
	Mobile         string          `json:"mobile" gorm:"not null"`
	Address        string          `json:"address"`
	WardNo         string          `json:"ward_no"`
	CategoryID     uint            `json:"category_id" gorm:"not null"`
	Category       Category        `json:"category" gorm:"foreignKey:CategoryID;constraint:OnDelete:RESTRICT"`
	PanchayathID   uint            `json:"panchayath_id" gorm:"not null"`
	Panchayath     Panchayath      `json:"panchayath" gorm:"foreignKey:PanchayathID;constraint:OnDelete:RESTRICT"`
	FeePaid        decimal.Decimal `json:"fee_paid" gorm:"type:numeric(10,2);not null"`
	Status         string          `json:"status" gorm:"not null;default:pending"`
	CreatedAt      time.Time       `json:"created_at"`
	UpdatedAt      time.Time       `json:"updated_at"`
}
