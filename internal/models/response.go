package models

import "time"

// SubmitOrderResponse is the wire shape the storefront already consumes,
// so the keys stay camelCase.
type SubmitOrderResponse struct {
	OK                 bool   `json:"ok"`
	OrderID            string `json:"orderId,omitempty"`
	OrderCode          string `json:"orderCode,omitempty"`
	ImageURL           string `json:"imageUrl,omitempty"`
	CustomerEmailSent  bool   `json:"customerEmailSent"`
	CustomerEmailError string `json:"customerEmailError,omitempty"`
	AdminEmailSent     bool   `json:"adminEmailSent"`
	AdminEmailError    string `json:"adminEmailError,omitempty"`
	AdminEmailTo       string `json:"adminEmailTo,omitempty"`
	Error              string `json:"error,omitempty"`
}

type OrderResponse struct {
	ID        string    `json:"order_id"`
	OrderCode string    `json:"order_code"`
	Name      string    `json:"name"`
	Phone     string    `json:"phone"`
	Email     string    `json:"email"`
	City      string    `json:"city"`
	Address   string    `json:"address"`
	Qty       int       `json:"qty"`
	Song      string    `json:"song"`
	Message   string    `json:"message,omitempty"`
	Note      string    `json:"note,omitempty"`
	Total     float64   `json:"total"`
	ImageURL  string    `json:"image_url"`
	Status    string    `json:"status"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

type OrderListResponse struct {
	Orders []OrderResponse `json:"orders"`
}

type ErrorResponse struct {
	Error   string `json:"error"`
	Message string `json:"message,omitempty"`
}

type HealthResponse struct {
	Status string `json:"status"`
}
