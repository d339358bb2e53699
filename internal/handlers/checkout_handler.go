package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"pedal-storefront/internal/checkout"
)

type CheckoutHandler struct {
	service *checkout.Service
}

func NewCheckoutHandler(service *checkout.Service) *CheckoutHandler {
	return &CheckoutHandler{service: service}
}

// POST /v1/checkout/sessions
//
// Body: {"slug": "...", "quantity": 1..10}. Returns {"url": "..."} or a
// categorized error: 400 for caller mistakes, 500 for configuration or
// processor failures.
func (h *CheckoutHandler) CreateSession(c *gin.Context) {
	var req checkout.CreateSessionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
		return
	}

	sess, err := h.service.CreateSession(c.Request.Context(), req, c.GetHeader("Origin"))
	switch {
	case err == nil:
		c.JSON(http.StatusOK, gin.H{"url": sess.URL})
	case errors.Is(err, checkout.ErrInvalidRequest):
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
	case errors.Is(err, checkout.ErrUnknownProduct):
		c.JSON(http.StatusBadRequest, gin.H{"error": "unknown product"})
	case errors.Is(err, checkout.ErrConfiguration):
		c.JSON(http.StatusInternalServerError, gin.H{"error": "unable to determine site origin"})
	default:
		c.JSON(http.StatusInternalServerError, gin.H{"error": "unable to create checkout session"})
	}
}

// GET /v1/checkout/sessions/:id
//
// Confirmation-page lookup. Retrieval failure is a soft outcome for the
// user, not a crash; the processor error itself stays in the logs.
func (h *CheckoutHandler) GetSession(c *gin.Context) {
	details, err := h.service.SessionDetails(c.Request.Context(), c.Param("id"))
	switch {
	case err == nil:
		c.JSON(http.StatusOK, details)
	case errors.Is(err, checkout.ErrInvalidRequest):
		c.JSON(http.StatusBadRequest, gin.H{"error": "missing session id"})
	default:
		c.JSON(http.StatusBadGateway, gin.H{"error": "unable to retrieve checkout session"})
	}
}
