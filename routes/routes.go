package routes

import (
	"brew-and-bite-api/handlers"
	"brew-and-bite-api/middleware"

	"github.com/gin-gonic/gin"
)

func SetupRoutes(r *gin.Engine) {
	// ── Public routes ──────────────────────────────────────────────
	public := r.Group("/api")
	{
		// Auth
		public.POST("/auth/signup", handlers.Signup)
		public.POST("/auth/verify-otp", handlers.VerifyOTP)
		public.POST("/auth/login", handlers.Login)

		// Menus & smart features (no auth needed)
		public.GET("/todays-specials", handlers.TodaysSpecials)
		public.GET("/menu/:section", handlers.SectionMenu)
		public.POST("/cart-suggestions", handlers.CartSuggestions)
		public.POST("/table-recommendations", handlers.TableRecommendations)

		// Feedback
		public.POST("/feedback", handlers.PostFeedback)
		public.GET("/feedback/latest", handlers.LatestFeedback)

		// Receipts & kitchen display
		public.GET("/receipt/:orderID", handlers.Receipt)
		public.GET("/kitchen/notifications", handlers.KitchenNotifications)

		// State machine info (great for docs/Postman)
		public.GET("/state-machine", handlers.GetStateMachineInfo)
	}

	// ── Authenticated routes ───────────────────────────────────────
	auth := r.Group("/api")
	auth.Use(middleware.AuthRequired())
	{
		auth.GET("/profile", handlers.GetProfile)
		auth.POST("/book-table", handlers.BookTable)
		auth.POST("/orders/dine-in", handlers.ConfirmDineInOrder)
		auth.POST("/orders/online", handlers.ConfirmOnlineOrder)
	}

	// ── Admin routes ───────────────────────────────────────────────
	admin := r.Group("/api/admin")
	admin.Use(middleware.AuthRequired(), middleware.AdminRequired())
	{
		admin.GET("/dashboard", handlers.AdminDashboard)
		admin.DELETE("/delete-booking/:bookingID", handlers.DeleteBooking)
	}
}
