package service

import (
	"github.com/gin-gonic/gin"
)

func SetupRoutes(s *Service) *gin.Engine {
	routes := gin.Default()

	routes.Use(CORS, ResponseTime(), RenderErrors())
	routes.NoRoute(NotFoundPage)

	routes.GET("/activity/:username", s.Activity)

	books := routes.Group("/books")
	{
		books.Use(s.CacheUserRequest)

		books.GET("", s.ListBooks)
		books.POST("", s.CreateBook)
		books.GET("/:id", s.GetBookById)
		books.PUT("/:id", s.UpdateBookById)
		books.DELETE("/:id", s.DeleteBookById)
	}

	return routes
}
