package services

import (
	"database/sql"
	"fmt"
	"log"
	"math"

	"github.com/google/uuid"
	"magnet-orders-backend/internal/mailer"
	"magnet-orders-backend/internal/models"
)

// PhotoStore persists the uploaded photo and resolves its public URL.
type PhotoStore interface {
	UploadOrderPhoto(filename string, data []byte, contentType string) (storagePath, publicURL string, err error)
	DeleteFile(storagePath string) error
}

// OrderStore persists one order row and returns the generated identifier.
type OrderStore interface {
	CreateOrder(order *models.Order) (uuid.UUID, error)
}

// EmailSender delivers one HTML email; each call fails independently.
type EmailSender interface {
	Send(to []string, subject, html string) error
}

type OrderService struct {
	storage    PhotoStore
	db         OrderStore
	mailer     EmailSender
	adminEmail string
	unitPrice  float64
}

func NewOrderService(storage PhotoStore, db OrderStore, mailer EmailSender, adminEmail string, unitPrice float64) *OrderService {
	return &OrderService{
		storage:    storage,
		db:         db,
		mailer:     mailer,
		adminEmail: adminEmail,
		unitPrice:  unitPrice,
	}
}

// SubmitOrder runs the submission pipeline: validate, upload the photo,
// insert the order row, then send the two confirmation emails best-effort.
// Validation and upload/insert failures return an error and leave no order
// behind; once the row exists the call always succeeds and the email
// outcomes are reported in the response.
func (s *OrderService) SubmitOrder(sub *models.Submission) (*models.SubmitOrderResponse, error) {
	if err := ValidateSubmission(sub); err != nil {
		return nil, err
	}

	qty := ClampQty(sub.Qty)

	// The total is recomputed from the configured unit price, never taken
	// from the form. The client-supplied hint is only a display fallback in
	// the customer email when no unit price is configured.
	total := round2(s.unitPrice * float64(qty))
	displayTotal := total
	if displayTotal <= 0 {
		displayTotal = ParseTotal(sub.Total)
	}

	storagePath, imageURL, err := s.storage.UploadOrderPhoto(sub.Photo.Filename, sub.Photo.Data, sub.Photo.ContentType)
	if err != nil {
		return nil, fmt.Errorf("Upload greška: %w", err)
	}

	order := &models.Order{
		Name:     sub.Name,
		Phone:    sub.Phone,
		Email:    sub.Email,
		City:     sub.City,
		Address:  sub.Address,
		Qty:      qty,
		Song:     sub.Song,
		Message:  nullString(sub.Message),
		Note:     nullString(sub.Note),
		Total:    total,
		ImageURL: imageURL,
		Status:   "new",
	}

	orderID, err := s.db.CreateOrder(order)
	if err != nil {
		// The photo is already in storage; delete it best-effort so a failed
		// insert doesn't leave an orphaned object behind.
		if delErr := s.storage.DeleteFile(storagePath); delErr != nil {
			log.Printf("failed to delete orphaned photo %s: %v", storagePath, delErr)
		}
		return nil, fmt.Errorf("DB greška: %w", err)
	}

	order.ID = orderID
	orderCode := OrderCode(orderID.String())

	// The order is placed. Nothing past this point may fail the request.
	resp := &models.SubmitOrderResponse{
		OK:           true,
		OrderID:      orderID.String(),
		OrderCode:    orderCode,
		ImageURL:     imageURL,
		AdminEmailTo: s.adminEmail,
	}

	if err := s.mailer.Send([]string{order.Email}, mailer.CustomerSubject(orderCode), mailer.CustomerHTML(orderCode, qty, displayTotal)); err != nil {
		resp.CustomerEmailError = err.Error()
		log.Printf("order %s: customer email failed: %v", orderCode, err)
	} else {
		resp.CustomerEmailSent = true
	}

	if err := s.mailer.Send([]string{s.adminEmail}, mailer.AdminSubject(orderCode), mailer.AdminHTML(order, orderID.String(), orderCode)); err != nil {
		resp.AdminEmailError = err.Error()
		log.Printf("order %s: admin email failed: %v", orderCode, err)
	} else {
		resp.AdminEmailSent = true
	}

	return resp, nil
}

func round2(v float64) float64 {
	return math.Round(v*100) / 100
}

func nullString(s string) sql.NullString {
	if s == "" {
		return sql.NullString{}
	}
	return sql.NullString{String: s, Valid: true}
}
