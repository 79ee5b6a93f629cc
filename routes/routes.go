package routes

import (
	"net/http"
	"os"
	"strings"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"

	"circuithouse-backend/controllers"
	"circuithouse-backend/middleware"
)

func parseCorsOrigins() []string {
	raw := strings.TrimSpace(os.Getenv("CORS_ORIGINS"))
	if raw == "" {
		return []string{"*"}
	}

	parts := strings.Split(raw, ",")
	origins := make([]string, 0, len(parts))
	for _, part := range parts {
		origin := strings.TrimSpace(part)
		if origin != "" {
			origins = append(origins, origin)
		}
	}
	if len(origins) == 0 {
		return []string{"*"}
	}
	return origins
}

// SetupRouter wires every controller onto the API surface. Only /health and
// the login endpoint are reachable without a token.
func SetupRouter(
	rc *controllers.RoomController,
	pc *controllers.PricingController,
	bkc *controllers.BookingController,
	cc *controllers.CheckoutController,
	blc *controllers.BillingController,
	auc *controllers.AuthController,
	adc *controllers.AdminController,
	sc *controllers.SettingsController,
	jwtSecret string,
	logger zerolog.Logger,
) *gin.Engine {
	r := gin.New()
	r.Use(gin.Recovery())
	r.Use(middleware.RequestLogger(logger))

	origins := parseCorsOrigins()
	allowCredentials := true
	for _, origin := range origins {
		if origin == "*" {
			allowCredentials = false
			break
		}
	}

	r.Use(cors.New(cors.Config{
		AllowOrigins:     origins,
		AllowMethods:     []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Accept", "Authorization", "X-Requested-With"},
		ExposeHeaders:    []string{"Content-Length"},
		AllowCredentials: allowCredentials,
		MaxAge:           12 * time.Hour,
	}))

	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	api := r.Group("/api")

	auth := api.Group("/auth")
	{
		auth.POST("/login", auc.Login)
	}

	protected := api.Group("")
	protected.Use(middleware.RequireAuth(jwtSecret))
	{
		rooms := protected.Group("/rooms")
		{
			rooms.GET("", rc.GetRooms)
			rooms.GET("/:id", rc.GetRoomByID)
			rooms.POST("", rc.CreateRoom)
			rooms.PATCH("/:id", rc.UpdateRoom)
			rooms.PUT("/:id", rc.UpdateRoom)
			rooms.DELETE("/:id", rc.DeleteRoom)
		}

		pricing := protected.Group("/pricing")
		{
			pricing.GET("", pc.GetPricing)
			pricing.GET("/:id", pc.GetPricingByID)
			pricing.POST("", pc.CreatePricing)
			pricing.PUT("/:id", pc.UpdatePricing)
			pricing.DELETE("/:id", pc.DeletePricing)
		}

		bookings := protected.Group("/bookings")
		{
			bookings.GET("", bkc.GetBookings)

			// must come before /:id
			bookings.GET("/all", bkc.GetAllBookings)

			bookings.GET("/:id", bkc.GetBooking)
			bookings.POST("", bkc.CreateBooking)
			bookings.PUT("/:id", bkc.UpdateBooking)
			bookings.DELETE("/:id", bkc.DeleteBooking)
		}

		checkouts := protected.Group("/checkouts")
		{
			checkouts.GET("", cc.GetCheckouts)
			checkouts.POST("", cc.CreateCheckout)
		}

		foodOrders := protected.Group("/food-orders")
		{
			foodOrders.GET("", blc.GetFoodOrders)
			foodOrders.POST("", blc.CreateFoodOrder)
			foodOrders.DELETE("/:id", blc.DeleteFoodOrder)
		}

		otherCosts := protected.Group("/other-costs")
		{
			otherCosts.GET("", blc.GetOtherCosts)
			otherCosts.POST("", blc.CreateOtherCost)
			otherCosts.DELETE("/:id", blc.DeleteOtherCost)
		}

		admins := protected.Group("/admins")
		{
			admins.GET("", adc.GetAdmins)
			admins.POST("", adc.CreateAdmin)
			admins.DELETE("/:id", adc.DeleteAdmin)
		}

		settings := protected.Group("/settings")
		{
			settings.GET("/hotel", sc.GetHotelSettings)
			settings.PUT("/hotel", sc.UpdateHotelSettings)
		}
	}

	return r
}
