package server

import (
	"auction-client/internal/stubapi"
	handler "auction-client/services/auction/handler"

	"github.com/gin-gonic/gin"
)

// SetupRouter configures all Gin routes of the stub auction API
func SetupRouter(auctionService *stubapi.AuctionService) *gin.Engine {
	router := gin.New() // New router without default middleware for full control over middleware and logging

	router.Use(gin.Recovery())          // recover from panics
	router.Use(RequestLoggerMiddleware) // custom request logging
	router.Use(SessionMiddleware(auctionService))
	router.Use(CSRFMiddleware)

	auctionHandler := handler.NewAuctionHandler(auctionService)

	router.GET("/media/*path", auctionHandler.MediaHandler)

	api := router.Group("/api")

	profile := api.Group("/profile", RequireUser)
	{
		profile.GET("/", auctionHandler.GetProfileHandler)
		profile.PUT("/", auctionHandler.UpdateProfileHandler)
	}

	items := api.Group("/items", RequireUserForWrites)
	{
		items.GET("/", auctionHandler.ListItemsHandler)
		items.POST("/", auctionHandler.CreateItemHandler)
		items.GET("/:id/", auctionHandler.GetItemHandler)
		items.POST("/:id/bid/", auctionHandler.PlaceBidHandler)
		items.POST("/:id/question/", auctionHandler.PostQuestionHandler)
	}

	questions := api.Group("/questions", RequireUser)
	{
		questions.PATCH("/:id/reply/", auctionHandler.ReplyQuestionHandler)
	}

	return router
}
