package handlers

import (
	"fmt"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"yatra/internal/services"
)

func (a *API) Dashboard(c *gin.Context) {
	svc := services.ReportsService{Source: a.Ledger}
	c.JSON(http.StatusOK, svc.DashboardSummary())
}

func (a *API) FinanceReport(c *gin.Context) {
	svc := services.ReportsService{Source: a.Ledger}
	c.JSON(http.StatusOK, gin.H{
		"buses":          svc.PerBusFinancials(),
		"collectionRate": svc.CollectionRate(),
		"fullyPaidBuses": svc.FullyPaidBusCount(),
	})
}

func (a *API) ExportParticipants(c *gin.Context) {
	svc := services.ExportService{Source: a.Ledger}
	serveCSV(c, svc.ParticipantCSV(), "pilgrimage_full_report")
}

func (a *API) ExportBuses(c *gin.Context) {
	svc := services.ExportService{Source: a.Ledger}
	serveCSV(c, svc.BusCSV(), "pilgrimage_bus_report")
}

func serveCSV(c *gin.Context, csv, prefix string) {
	filename := fmt.Sprintf("%s_%s.csv", prefix, time.Now().Format("2006-01-02"))
	c.Header("Content-Disposition", `attachment; filename="`+filename+`"`)
	c.Data(http.StatusOK, "text/csv", []byte(csv))
}
