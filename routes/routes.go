package routes

import (
	"net/http"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"

	"mindspace/handlers"
	"mindspace/utils"
)

// RegisterBookingRoutes sets up the booking session flow and the
// appointment list.
func RegisterBookingRoutes(r *gin.Engine, bh *handlers.BookingHandler) {
	booking := r.Group("/api/booking")
	{
		booking.POST("/session", bh.InitiateSession)
		booking.GET("/session/:sessionID", bh.GetSession)
		booking.PUT("/session/:sessionID/specialist", bh.SelectSpecialist)
		booking.PUT("/session/:sessionID/date", bh.SelectDate)
		booking.PUT("/session/:sessionID/time", bh.SelectTime)
		booking.PUT("/session/:sessionID/type", bh.SelectCounselingType)
		booking.POST("/session/:sessionID/confirm", bh.ConfirmBooking)
		booking.GET("/specialists", bh.GetSpecialists)
	}

	appointments := r.Group("/api/appointments")
	{
		appointments.GET("", bh.GetAppointments)
		appointments.POST("/:id/cancel", bh.CancelAppointment)
	}
}

// RegisterCatalogRoutes sets up the resource library endpoints.
func RegisterCatalogRoutes(r *gin.Engine, ch *handlers.CatalogHandler) {
	resources := r.Group("/api/resources")
	{
		resources.POST("/view", ch.CreateView)
		resources.GET("/view/:viewID/items", ch.GetItems)
		resources.PUT("/view/:viewID/filters", ch.SetFilters)
		resources.PUT("/view/:viewID/search", ch.SetSearch)
		resources.DELETE("/view/:viewID/filters", ch.ClearFilters)
		resources.DELETE("/view/:viewID", ch.CloseView)
		resources.POST("/view/:viewID/gesture", ch.RecordGesture)
		resources.POST("/view/:viewID/hover/:cardID/enter", ch.HoverEnter)
		resources.POST("/view/:viewID/hover/:cardID/leave", ch.HoverLeave)
		resources.GET("/view/:viewID/hover/:cardID", ch.HoverState)
		resources.POST("/recommend", ch.Recommend)
	}
}

// RegisterHealthRoute registers a health-check endpoint.
func RegisterHealthRoute(r *gin.Engine) {
	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok", "health": utils.GetHealthStatus()})
	})
}

// RegisterRoutes centralizes registration of all endpoints and middleware.
func RegisterRoutes(r *gin.Engine, bh *handlers.BookingHandler, ch *handlers.CatalogHandler) {
	r.Use(cors.New(cors.Config{
		AllowOrigins:     []string{"*"},
		AllowMethods:     []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Authorization", "Content-Type"},
		ExposeHeaders:    []string{"Content-Length"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}))

	RegisterBookingRoutes(r, bh)
	RegisterCatalogRoutes(r, ch)
	RegisterHealthRoute(r)
}
