package routes

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/textex/textex/internal/app/controllers"
	"github.com/textex/textex/internal/middleware"
	"github.com/textex/textex/internal/pkg/auth"
)

// Controllers bundles every controller for route registration.
type Controllers struct {
	BookController    *controllers.BookController
	StudentController *controllers.StudentController
	OfferController   *controllers.OfferController
	RequestController *controllers.RequestController
	AuthController    *controllers.AuthController
}

// RegisterRoutes wires all endpoints onto the engine.
func RegisterRoutes(router *gin.Engine, c Controllers, sessionService *auth.SessionService) {
	router.GET("/health", func(ctx *gin.Context) {
		ctx.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	books := router.Group("/books")
	{
		books.POST("", c.BookController.CreateBook)
		books.GET("", c.BookController.GetAllBooks)
		books.GET("/search", c.BookController.SearchBooks)
		books.GET("/:isbn", c.BookController.GetBook)
		books.DELETE("/:isbn", c.BookController.DeleteBook)
	}

	students := router.Group("/students")
	{
		students.POST("", c.StudentController.CreateStudent)
		students.GET("", c.StudentController.GetAllStudents)
		students.GET("/:studentId", c.StudentController.GetStudent)
		students.DELETE("/:studentId", c.StudentController.DeleteStudent)
	}

	offers := router.Group("/offers")
	{
		offers.POST("", c.OfferController.CreateOffer)
		offers.GET("", c.OfferController.GetAllOffers)
		offers.GET("/:offerId", c.OfferController.GetOffer)
		offers.DELETE("/:offerId", c.OfferController.DeleteOffer)
	}

	requests := router.Group("/requests")
	{
		requests.POST("", c.RequestController.CreateRequest)
		requests.GET("", c.RequestController.GetAllRequests)
		requests.GET("/:requestId", c.RequestController.GetRequest)
		requests.DELETE("/:requestId", c.RequestController.DeleteRequest)
	}

	router.POST("/login", c.AuthController.Login)
	router.POST("/logout", c.AuthController.Logout)

	me := router.Group("/me", middleware.SessionAuth(sessionService))
	{
		me.GET("", c.AuthController.Me)
		me.GET("/offers", c.AuthController.MyOffers)
		me.GET("/requests", c.AuthController.MyRequests)
	}
}
