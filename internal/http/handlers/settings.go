package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"yatra/internal/domain"
	"yatra/internal/http/middleware"
	"yatra/internal/utils"
)

type pricingRequest struct {
	AdultFare  int64 `json:"adultFare"`
	ChildFare  int64 `json:"childFare"`
	SeniorFare int64 `json:"seniorFare"`
}

type tripSettingsRequest struct {
	NextTripDate string `json:"nextTripDate"`
	Destination  string `json:"destination"`
}

func (a *API) GetPricing(c *gin.Context) {
	c.JSON(http.StatusOK, a.Ledger.Pricing())
}

// UpdatePricing replaces the fare table going forward; totals on
// existing bookings are untouched.
func (a *API) UpdatePricing(c *gin.Context) {
	var req pricingRequest
	if !BindJSONOrError(c, &req) {
		return
	}
	p := domain.Pricing{AdultFare: req.AdultFare, ChildFare: req.ChildFare, SeniorFare: req.SeniorFare}
	if err := a.Ledger.UpdatePricing(p); err != nil {
		RespondDomainError(c, err)
		return
	}
	utils.LogEvent(middleware.GetRequestID(c), "settings", "update_pricing", "")
	c.JSON(http.StatusOK, p)
}

func (a *API) GetTripSettings(c *gin.Context) {
	c.JSON(http.StatusOK, a.Ledger.TripSettings())
}

func (a *API) UpdateTripSettings(c *gin.Context) {
	var req tripSettingsRequest
	if !BindJSONOrError(c, &req) {
		return
	}
	settings, err := a.Ledger.UpdateTripSettings(domain.TripSettings{
		NextTripDate: req.NextTripDate,
		Destination:  req.Destination,
	})
	if err != nil {
		RespondDomainError(c, err)
		return
	}
	utils.LogEvent(middleware.GetRequestID(c), "settings", "update_trip", settings.Destination)
	c.JSON(http.StatusOK, settings)
}
