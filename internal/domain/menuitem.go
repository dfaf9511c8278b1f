package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

type MenuItem struct {
	ID                 int64           `json:"id"`
	CategoryID         int64           `json:"categoryId"`
	Name               string          `json:"name"`
	Description        string          `json:"description,omitempty"`
	Price              decimal.Decimal `json:"price"`
	ImageURL           string          `json:"imageUrl,omitempty"`
	IsPopular          bool            `json:"isPopular"`
	IsAvailable        bool            `json:"isAvailable"`
	PreparationMinutes int             `json:"preparationMinutes"`
	CreatedAt          time.Time       `json:"createdAt"`
	UpdatedAt          time.Time       `json:"updatedAt"`
}
