package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"yatra/internal/http/middleware"
	"yatra/internal/utils"
)

type updatePaymentRequest struct {
	PaymentStatus string `json:"paymentStatus"`
	AmountPaid    int64  `json:"amountPaid"`
}

// UpdateBookingPayment records a payment against a booking. The stored
// status is derived from the amounts; the status field in the payload
// is accepted for older clients but does not override the derivation.
func (a *API) UpdateBookingPayment(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}
	var req updatePaymentRequest
	if !BindJSONOrError(c, &req) {
		return
	}

	booking, err := a.Ledger.UpdatePayment(id, req.PaymentStatus, req.AmountPaid)
	if err != nil {
		RespondDomainError(c, err)
		return
	}
	utils.LogEvent(middleware.GetRequestID(c), "payments", "update", booking.Label)
	c.JSON(http.StatusOK, booking)
}
