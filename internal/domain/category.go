package domain

import "time"

type Category struct {
	ID        string    `json:"_id"`
	Name      string    `json:"name"`
	ShopID    string    `json:"shop"`
	CreatedBy string    `json:"createdBy"`
	CreatedAt time.Time `json:"createdAt,omitzero"`
}
