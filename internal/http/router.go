package api

import (
	"log"
	stdhttp "net/http"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"

	intconfig "yatra/internal/config"
	h "yatra/internal/http/handlers"
	"yatra/internal/http/middleware"
	"yatra/internal/ledger"
)

func NewRouter(env intconfig.Env, l *ledger.Ledger) *gin.Engine {
	r := gin.New()
	r.Use(middleware.RequestID(), middleware.Logger(), gin.Recovery())
	if len(env.CorsOrigins) > 0 {
		r.Use(cors.New(cors.Config{
			AllowOrigins:     env.CorsOrigins,
			AllowMethods:     []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
			AllowHeaders:     []string{"Content-Type", "Authorization", "Accept", "Origin", "X-Request-ID"},
			AllowCredentials: true,
			MaxAge:           24 * time.Hour,
		}))
	}

	if err := r.SetTrustedProxies(nil); err != nil {
		log.Printf("warning: failed to set trusted proxies: %v", err)
	}

	r.NoRoute(func(c *gin.Context) {
		c.JSON(stdhttp.StatusNotFound, gin.H{
			"error":  "route not found",
			"path":   c.Request.URL.Path,
			"method": c.Request.Method,
		})
	})

	a := h.NewAPI(l)

	api := r.Group("/api")
	{
		api.GET("/health", a.Health)
		api.GET("/activities", a.Activities)

		buses := api.Group("/buses")
		buses.GET("", a.ListBuses)
		buses.POST("", a.CreateBus)
		buses.GET("/:id/seat-map", a.SeatMap)
		buses.GET("/:id/manifest", a.BusManifest)

		bookings := api.Group("/bookings")
		bookings.GET("", a.ListBookings)
		bookings.POST("", a.CreateBooking)
		bookings.GET("/:id", a.GetBooking)
		bookings.DELETE("/:id", a.DeleteBooking)
		bookings.PUT("/:id/payment", a.UpdateBookingPayment)
		bookings.GET("/:id/receipt", a.BookingReceipt)

		settings := api.Group("/settings")
		settings.GET("/pricing", a.GetPricing)
		settings.PUT("/pricing", a.UpdatePricing)
		settings.GET("/trip", a.GetTripSettings)
		settings.PUT("/trip", a.UpdateTripSettings)

		reports := api.Group("/reports")
		reports.GET("/dashboard", a.Dashboard)
		reports.GET("/finance", a.FinanceReport)
		reports.GET("/export/participants", a.ExportParticipants)
		reports.GET("/export/buses", a.ExportBuses)
	}

	return r
}
