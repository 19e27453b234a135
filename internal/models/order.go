package models

import (
	"database/sql"
	"time"

	"github.com/google/uuid"
)

type Order struct {
	ID        uuid.UUID
	Name      string
	Phone     string
	Email     string
	City      string
	Address   string
	Qty       int
	Song      string
	Message   sql.NullString
	Note      sql.NullString
	Total     float64
	ImageURL  string
	Status    string
	CreatedAt time.Time
	UpdatedAt time.Time
}
