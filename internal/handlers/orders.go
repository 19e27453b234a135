package handlers

import (
	"errors"
	"io"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"magnet-orders-backend/internal/models"
	"magnet-orders-backend/internal/services"
)

// OrderReader is the read-only slice of the database client the order
// endpoints need.
type OrderReader interface {
	GetOrder(orderID uuid.UUID) (*models.Order, error)
	ListOrders(status string) ([]models.Order, error)
}

type OrdersHandler struct {
	service *services.OrderService
	db      OrderReader
}

func NewOrdersHandler(service *services.OrderService, db OrderReader) *OrdersHandler {
	return &OrdersHandler{
		service: service,
		db:      db,
	}
}

// SubmitOrder godoc
// @Summary     Submit a new magnet order
// @Description Validates the checkout form, stores the uploaded photo, persists the order and sends confirmation emails to the customer and the shop. Email failures never fail an already persisted order.
// @Tags        orders
// @Accept      multipart/form-data
// @Produce     json
// @Param       name formData string true "Customer name"
// @Param       phone formData string true "Phone number"
// @Param       email formData string true "Customer email"
// @Param       city formData string true "City"
// @Param       address formData string true "Delivery address"
// @Param       song formData string true "Requested song (title or link)"
// @Param       message formData string false "Message to print"
// @Param       note formData string false "Internal note"
// @Param       qty formData string false "Quantity, clamped to 1..9"
// @Param       total formData string false "Display total hint"
// @Param       photo formData file true "Photo for the magnet"
// @Success     200 {object} models.SubmitOrderResponse
// @Failure     400 {object} models.SubmitOrderResponse
// @Failure     500 {object} models.SubmitOrderResponse
// @Router      /order [post]
func (h *OrdersHandler) SubmitOrder(c *gin.Context) {
	if err := c.Request.ParseMultipartForm(32 << 20); err != nil {
		c.JSON(http.StatusBadRequest, models.SubmitOrderResponse{
			Error: "Neispravan zahtjev: " + err.Error(),
		})
		return
	}

	sub := &models.Submission{
		Name:    c.PostForm("name"),
		Phone:   c.PostForm("phone"),
		Email:   c.PostForm("email"),
		City:    c.PostForm("city"),
		Address: c.PostForm("address"),
		Song:    c.PostForm("song"),
		Message: c.PostForm("message"),
		Note:    c.PostForm("note"),
		Qty:     c.PostForm("qty"),
		Total:   c.PostForm("total"),
	}

	// A missing photo is a validation failure, not a request failure, so it
	// gets the same user-facing message as the rest of the form checks.
	if fileHeader, err := c.FormFile("photo"); err == nil {
		src, err := fileHeader.Open()
		if err != nil {
			c.JSON(http.StatusBadRequest, models.SubmitOrderResponse{
				Error: "Neispravan fajl: " + err.Error(),
			})
			return
		}
		data, err := io.ReadAll(src)
		src.Close()
		if err != nil {
			c.JSON(http.StatusBadRequest, models.SubmitOrderResponse{
				Error: "Neispravan fajl: " + err.Error(),
			})
			return
		}
		sub.Photo = &models.Photo{
			Filename:    fileHeader.Filename,
			ContentType: fileHeader.Header.Get("Content-Type"),
			Data:        data,
		}
	}

	resp, err := h.service.SubmitOrder(sub)
	if err != nil {
		var ve services.ValidationError
		if errors.As(err, &ve) {
			c.JSON(http.StatusBadRequest, models.SubmitOrderResponse{
				Error: ve.Message,
			})
			return
		}
		c.JSON(http.StatusInternalServerError, models.SubmitOrderResponse{
			Error: err.Error(),
		})
		return
	}

	c.JSON(http.StatusOK, resp)
}

// ListOrders godoc
// @Summary     List orders
// @Description Returns all orders newest first, optionally filtered by status. Read-only operational surface; status changes happen in the Supabase dashboard.
// @Tags        orders
// @Produce     json
// @Param       status query string false "Filter by lifecycle status (e.g. new)"
// @Success     200 {object} models.OrderListResponse
// @Failure     500 {object} models.ErrorResponse
// @Router      /orders [get]
func (h *OrdersHandler) ListOrders(c *gin.Context) {
	if h.db == nil {
		c.JSON(http.StatusInternalServerError, models.ErrorResponse{Error: "database not available"})
		return
	}

	orders, err := h.db.ListOrders(c.Query("status"))
	if err != nil {
		c.JSON(http.StatusInternalServerError, models.ErrorResponse{
			Error:   "failed to list orders",
			Message: err.Error(),
		})
		return
	}

	response := models.OrderListResponse{
		Orders: make([]models.OrderResponse, 0, len(orders)),
	}
	for i := range orders {
		response.Orders = append(response.Orders, toOrderResponse(&orders[i]))
	}

	c.JSON(http.StatusOK, response)
}

// GetOrder godoc
// @Summary     Get a single order
// @Tags        orders
// @Produce     json
// @Param       order_id path string true "Order ID (UUID)"
// @Success     200 {object} models.OrderResponse
// @Failure     400 {object} models.ErrorResponse
// @Failure     404 {object} models.ErrorResponse
// @Router      /orders/{order_id} [get]
func (h *OrdersHandler) GetOrder(c *gin.Context) {
	if h.db == nil {
		c.JSON(http.StatusInternalServerError, models.ErrorResponse{Error: "database not available"})
		return
	}

	orderID, err := uuid.Parse(c.Param("order_id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, models.ErrorResponse{Error: "invalid order id"})
		return
	}

	order, err := h.db.GetOrder(orderID)
	if err != nil {
		c.JSON(http.StatusNotFound, models.ErrorResponse{
			Error:   "order not found",
			Message: err.Error(),
		})
		return
	}

	c.JSON(http.StatusOK, toOrderResponse(order))
}

func toOrderResponse(order *models.Order) models.OrderResponse {
	return models.OrderResponse{
		ID:        order.ID.String(),
		OrderCode: services.OrderCode(order.ID.String()),
		Name:      order.Name,
		Phone:     order.Phone,
		Email:     order.Email,
		City:      order.City,
		Address:   order.Address,
		Qty:       order.Qty,
		Song:      order.Song,
		Message:   order.Message.String,
		Note:      order.Note.String,
		Total:     order.Total,
		ImageURL:  order.ImageURL,
		Status:    order.Status,
		CreatedAt: order.CreatedAt,
		UpdatedAt: order.UpdatedAt,
	}
}
