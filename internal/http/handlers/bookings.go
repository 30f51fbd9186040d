package handlers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"yatra/internal/domain"
	"yatra/internal/http/middleware"
	"yatra/internal/ledger"
	"yatra/internal/services"
	"yatra/internal/utils"
)

type memberRequest struct {
	Name  string `json:"name" binding:"required"`
	Age   int    `json:"age" binding:"required,gte=1,lte=120"`
	Phone string `json:"phone"`
}

type createBookingRequest struct {
	Label         string          `json:"label" binding:"required"`
	Members       []memberRequest `json:"members" binding:"required,min=1,dive"`
	BusID         int64           `json:"busId" binding:"required"`
	Seats         []int           `json:"seats"`
	PaymentStatus string          `json:"paymentStatus"`
	AmountPaid    int64           `json:"amountPaid"`
}

func (a *API) ListBookings(c *gin.Context) {
	var busID int64
	if raw := c.Query("bus_id"); raw != "" {
		id, err := strconv.ParseInt(raw, 10, 64)
		if err != nil || id <= 0 {
			RespondError(c, http.StatusBadRequest, "invalid bus_id filter", err)
			return
		}
		busID = id
	}
	c.JSON(http.StatusOK, gin.H{"bookings": a.Ledger.ListBookings(busID)})
}

func (a *API) CreateBooking(c *gin.Context) {
	var req createBookingRequest
	if !BindJSONOrError(c, &req) {
		return
	}

	members := make([]domain.Person, len(req.Members))
	for i, m := range req.Members {
		members[i] = domain.Person{Name: m.Name, Age: m.Age, Phone: m.Phone}
	}

	booking, err := a.Ledger.CreateBooking(ledger.CreateBookingParams{
		Label:         req.Label,
		Members:       members,
		BusID:         req.BusID,
		Seats:         req.Seats,
		PaymentStatus: req.PaymentStatus,
		PaidAmount:    req.AmountPaid,
	})
	if err != nil {
		RespondDomainError(c, err)
		return
	}
	utils.LogEvent(middleware.GetRequestID(c), "bookings", "create", booking.Label)
	c.JSON(http.StatusCreated, booking)
}

func (a *API) GetBooking(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}
	booking, found := a.Ledger.GetBooking(id)
	if !found {
		RespondDomainError(c, domain.NotFoundError{Resource: "booking", ID: id})
		return
	}
	c.JSON(http.StatusOK, booking)
}

func (a *API) DeleteBooking(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}
	if err := a.Ledger.RemoveBooking(id); err != nil {
		RespondDomainError(c, err)
		return
	}
	utils.LogEvent(middleware.GetRequestID(c), "bookings", "remove", c.Param("id"))
	c.Status(http.StatusNoContent)
}

func (a *API) BookingReceipt(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}
	svc := services.DocsService{Ledger: a.Ledger, RequestID: middleware.GetRequestID(c)}
	pdf, filename, err := svc.GenerateReceipt(id)
	if err != nil {
		RespondDomainError(c, err)
		return
	}
	c.Header("Content-Disposition", `attachment; filename="`+filename+`"`)
	c.Data(http.StatusOK, "application/pdf", pdf)
}
