package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"yatra/internal/domain"
	"yatra/internal/http/middleware"
	"yatra/internal/services"
	"yatra/internal/utils"
)

type createBusRequest struct {
	Name     string `json:"name" binding:"required"`
	Capacity int    `json:"capacity"`
}

type busResponse struct {
	domain.Bus
	Occupied  int `json:"occupied"`
	Available int `json:"available"`
}

func (a *API) ListBuses(c *gin.Context) {
	buses := a.Ledger.Buses()
	out := make([]busResponse, 0, len(buses))
	for _, bus := range buses {
		occ := a.Ledger.Occupancy(bus.ID)
		out = append(out, busResponse{Bus: bus, Occupied: occ, Available: bus.Capacity - occ})
	}
	c.JSON(http.StatusOK, gin.H{"buses": out})
}

func (a *API) CreateBus(c *gin.Context) {
	var req createBusRequest
	if !BindJSONOrError(c, &req) {
		return
	}

	bus, err := a.Ledger.AddBus(req.Name, req.Capacity)
	if err != nil {
		RespondDomainError(c, err)
		return
	}
	utils.LogEvent(middleware.GetRequestID(c), "buses", "create", bus.Name)
	c.JSON(http.StatusCreated, bus)
}

func (a *API) SeatMap(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}
	bus, found := a.Ledger.GetBus(id)
	if !found {
		RespondDomainError(c, domain.NotFoundError{Resource: "bus", ID: id})
		return
	}

	occupied := a.Ledger.SeatMap(id)
	c.JSON(http.StatusOK, gin.H{
		"bus":       bus,
		"occupied":  occupied,
		"rows":      services.SeatRows(bus.Capacity),
		"available": bus.Capacity - len(occupied),
	})
}

func (a *API) BusManifest(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}
	svc := services.DocsService{Ledger: a.Ledger, RequestID: middleware.GetRequestID(c)}
	pdf, filename, err := svc.GenerateBusManifest(id)
	if err != nil {
		RespondDomainError(c, err)
		return
	}
	c.Header("Content-Disposition", `attachment; filename="`+filename+`"`)
	c.Data(http.StatusOK, "application/pdf", pdf)
}
