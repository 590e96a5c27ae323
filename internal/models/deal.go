package models

import "time"

type Deal struct {
	ID                string  `json:"id"`
	CustomerID        string  `json:"customer_id"`
	Title             string  `json:"title"`
	Amount            float64 `json:"amount"`
	Status            string  `json:"status"`
	ExpectedCloseDate string  `json:"expected_close_date"`
	Description       string  `json:"description"`
	// ссылка на взаимодействие в Genesys Cloud, если сделка создана из него
	InteractionID string    `json:"interaction_id,omitempty"`
	CreatedAt     time.Time `json:"created_at"`
	UpdatedAt     time.Time `json:"updated_at"`
}
