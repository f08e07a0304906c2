package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// Category represents a self-employment registration offering with a listed
// fee and a discounted offer fee.
type Category struct {
	ID            uint            `json:"id" gorm:"primaryKey"`
	Name          string          `json:"name" gorm:"unique;not null"`
	ActualFee     decimal.Decimal `json:"actual_fee" gorm:"type:numeric(10,2);not null"`
	OfferFee      decimal.Decimal `json:"offer_fee" gorm:"type:numeric(10,2);not null"`
	IsActive      bool            `json:"is_active" gorm:"not null;default:true"`
	IsHighlighted bool            `json:"is_highlighted" gorm:"not null;default:false"`
	PopupImageURL string          `json:"popup_image_url"`
	QRImageURL    string          `json:"qr_image_url"`
	CreatedAt     time.Time       `json:"created_at"`
	UpdatedAt     time.Time       `json:"updated_at"`
}

// DiscountAmount is the displayed saving, never negative even when the offer
// fee exceeds the actual fee.
func (c *Category) DiscountAmount() decimal.Decimal {
	diff := c.ActualFee.Sub(c.OfferFee)
	if diff.IsNegative() {
		return decimal.Zero
	}
	return diff
}

// DiscountPercent returns round(discount/actual_fee*100), and 0 whenever the
// actual fee is zero.
func (c *Category) DiscountPercent() int {
	if !c.ActualFee.IsPositive() {
		return 0
	}
	percent := c.DiscountAmount().
		Div(c.ActualFee).
		Mul(decimal.NewFromInt(100)).
		Round(0)
	return int(percent.IntPart())
}
