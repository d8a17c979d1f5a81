package router

import (
	"net/http"

	"github.com/wb-go/wbf/ginext"
)

type Handler interface {
	RequestCancellation(c *ginext.Context)
	ListCancellations(c *ginext.Context)
	DecideCancellation(c *ginext.Context)
	ListMyCancellations(c *ginext.Context)
	GetBooking(c *ginext.Context)
	ListMyBookings(c *ginext.Context)
	GetExhibition(c *ginext.Context)
	ListExhibitions(c *ginext.Context)
}

func InitRouter(mode string, h Handler, auth, admin, limit ginext.HandlerFunc, mw ...ginext.HandlerFunc) *ginext.Engine {
	router := ginext.New(mode)
	router.Use(mw...)

	api := router.Group("/api")
	{
		// Exhibitions are public browse surface
		api.GET("/exhibitions", h.ListExhibitions)
		api.GET("/exhibitions/:id", h.GetExhibition)
	}

	authorized := api.Group("", auth)
	{
		authorized.GET("/bookings", h.ListMyBookings)
		authorized.GET("/bookings/:id", h.GetBooking)

		authorized.POST("/cancellations", limit, h.RequestCancellation)
		authorized.GET("/cancellations/my", h.ListMyCancellations)
	}

	adminOnly := authorized.Group("", admin)
	{
		adminOnly.GET("/cancellations", h.ListCancellations)
		adminOnly.PATCH("/cancellations/:id", limit, h.DecideCancellation)
	}

	router.GET("/health", func(c *ginext.Context) {
		c.JSON(http.StatusOK, ginext.H{"status": "ok"})
	})

	return router
}
