package supabase

import (
	"database/sql"
	"fmt"

	"github.com/google/uuid"
	_ "github.com/lib/pq"
	"magnet-orders-backend/internal/models"
)

type DatabaseClient struct {
	db *sql.DB
}

func NewDatabaseClient(connectionString string) (*DatabaseClient, error) {
	db, err := sql.Open("postgres", connectionString)
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}

	if err := db.Ping(); err != nil {
		return nil, fmt.Errorf("failed to ping database: %w", err)
	}

	return &DatabaseClient{db: db}, nil
}

// CreateOrder inserts one order row and returns the generated identifier.
func (d *DatabaseClient) CreateOrder(order *models.Order) (uuid.UUID, error) {
	var id uuid.UUID
	err := d.db.QueryRow(`
		INSERT INTO orders (name, phone, email, city, address, qty, song, message, note, total, image_url, status)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12)
		RETURNING id
	`, order.Name, order.Phone, order.Email, order.City, order.Address, order.Qty,
		order.Song, order.Message, order.Note, order.Total, order.ImageURL, order.Status,
	).Scan(&id)
	if err != nil {
		return uuid.Nil, fmt.Errorf("failed to create order: %w", err)
	}

	return id, nil
}

func (d *DatabaseClient) GetOrder(orderID uuid.UUID) (*models.Order, error) {
	var order models.Order
	err := d.db.QueryRow(`
		SELECT id, name, phone, email, city, address, qty, song, message, note, total, image_url, status, created_at, updated_at
		FROM orders
		WHERE id = $1
	`, orderID).Scan(
		&order.ID, &order.Name, &order.Phone, &order.Email, &order.City, &order.Address,
		&order.Qty, &order.Song, &order.Message, &order.Note, &order.Total,
		&order.ImageURL, &order.Status, &order.CreatedAt, &order.UpdatedAt,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to get order: %w", err)
	}

	return &order, nil
}

// ListOrders returns orders newest first, optionally filtered by status.
func (d *DatabaseClient) ListOrders(status string) ([]models.Order, error) {
	query := `
		SELECT id, name, phone, email, city, address, qty, song, message, note, total, image_url, status, created_at, updated_at
		FROM orders
	`
	args := []interface{}{}
	if status != "" {
		query += " WHERE status = $1"
		args = append(args, status)
	}
	query += " ORDER BY created_at DESC"

	rows, err := d.db.Query(query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to list orders: %w", err)
	}
	defer rows.Close()

	var orders []models.Order
	for rows.Next() {
		var order models.Order
		err := rows.Scan(
			&order.ID, &order.Name, &order.Phone, &order.Email, &order.City, &order.Address,
			&order.Qty, &order.Song, &order.Message, &order.Note, &order.Total,
			&order.ImageURL, &order.Status, &order.CreatedAt, &order.UpdatedAt,
		)
		if err != nil {
			return nil, fmt.Errorf("failed to scan order: %w", err)
		}
		orders = append(orders, order)
	}

	return orders, nil
}

func (d *DatabaseClient) UpdateOrderStatus(orderID uuid.UUID, status string) error {
	_, err := d.db.Exec(`
		UPDATE orders
		SET status = $1
		WHERE id = $2
	`, status, orderID)
	return err
}

func (d *DatabaseClient) Close() error {
	return d.db.Close()
}
