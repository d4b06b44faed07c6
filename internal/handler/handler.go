package handler

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"strings"

	"github.com/gemgeek/alx-listing-app-deployed/internal/domain"
	"github.com/gemgeek/alx-listing-app-deployed/internal/handler/dto"
	"github.com/wb-go/wbf/ginext"
)

type PropertySvc interface {
	List(ctx context.Context) ([]domain.Property, error)
	Get(ctx context.Context, id string) (*domain.Property, error)
}

type ReviewSvc interface {
	ListByProperty(ctx context.Context, propertyID string) ([]domain.Review, error)
}

type BookingSvc interface {
	Book(ctx context.Context, req domain.BookingRequest) (*domain.BookingConfirmation, error)
}

type Handler struct {
	propertyService PropertySvc
	reviewService   ReviewSvc
	bookingService  BookingSvc
}

func NewHandler(propertyService PropertySvc, reviewService ReviewSvc, bookingService BookingSvc) *Handler {
	return &Handler{
		propertyService: propertyService,
		reviewService:   reviewService,
		bookingService:  bookingService,
	}
}

// Properties
func (h *Handler) ListProperties(c *ginext.Context) {
	properties, err := h.propertyService.List(c.Request.Context())
	if err != nil {
		h.handleError(c, err)
		return
	}

	resp := make([]dto.PropertyResponse, 0, len(properties))
	for _, p := range properties {
		resp = append(resp, dto.ToPropertyResponse(&p))
	}

	c.JSON(http.StatusOK, resp)
}

func (h *Handler) GetProperty(c *ginext.Context) {
	property, err := h.propertyService.Get(c.Request.Context(), c.Param("id"))
	if err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.ToPropertyResponse(property))
}

// Reviews

func (h *Handler) ListReviews(c *ginext.Context) {
	reviews, err := h.reviewService.ListByProperty(c.Request.Context(), c.Param("id"))
	if err != nil {
		h.handleError(c, err)
		return
	}

	resp := make([]dto.ReviewResponse, 0, len(reviews))
	for _, r := range reviews {
		resp = append(resp, dto.ToReviewResponse(&r))
	}

	c.JSON(http.StatusOK, resp)
}

// Bookings

func (h *Handler) CreateBooking(c *ginext.Context) {
	var req dto.BookingRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.handleError(c, fmt.Errorf("%w: invalid request body", domain.ErrValidation))
		return
	}

	confirmation, err := h.bookingService.Book(c.Request.Context(), req.ToDomain())
	if err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.ToBookingResponse(confirmation))
}

// MethodNotAllowed answers every verb a route does not serve.
func MethodNotAllowed(allowed ...string) ginext.HandlerFunc {
	allow := strings.Join(allowed, ", ")
	return func(c *ginext.Context) {
		c.Header("Allow", allow)
		c.JSON(http.StatusMethodNotAllowed, dto.ErrorResponse{
			Message: fmt.Sprintf("Method %s Not Allowed", c.Request.Method),
		})
	}
}

func NotFound(c *ginext.Context) {
	c.JSON(http.StatusNotFound, dto.ErrorResponse{Message: "route not found"})
}

func (h *Handler) handleError(c *ginext.Context, err error) {
	c.Set("error", err.Error())

	switch {
	case errors.Is(err, domain.ErrPropertyNotFound):
		c.JSON(http.StatusNotFound, dto.ErrorResponse{Message: domain.ErrPropertyNotFound.Error()})

	case errors.Is(err, domain.ErrValidation):
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Message: err.Error()})

	default:
		c.JSON(http.StatusInternalServerError, dto.ErrorResponse{Message: "internal server error"})
	}
}
