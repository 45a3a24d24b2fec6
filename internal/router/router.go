package router

import (
	"trivia-api/internal/handlers"
	"trivia-api/internal/middleware"
	"trivia-api/internal/services"
	"trivia-api/internal/ws"

	_ "trivia-api/docs"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

// New wires services and handlers over db and returns the route table.
func New(db *gorm.DB, hub *ws.Hub, log *zap.Logger) *gin.Engine {
	categoryService := services.NewCategoryService(db)
	questionService := services.NewQuestionService(db)
	quizService := services.NewQuizService(db)

	categoryHandler := handlers.NewCategoryHandler(categoryService, questionService)
	questionHandler := handlers.NewQuestionHandler(questionService, categoryService, hub)
	quizHandler := handlers.NewQuizHandler(quizService)
	wsHandler := handlers.NewWSHandler(hub)

	r := gin.New()
	r.HandleMethodNotAllowed = true

	r.Use(middleware.RequestID())
	r.Use(middleware.AccessLog(log))
	r.Use(middleware.Recovery(log, handlers.InternalError))
	r.Use(cors.New(cors.Config{
		AllowAllOrigins: true,
		AllowMethods:    []string{"GET", "POST", "PATCH", "DELETE", "OPTIONS"},
		AllowHeaders:    []string{"Content-Type", "Authorization"},
		ExposeHeaders:   []string{middleware.RequestIDHeader},
	}))

	r.NoRoute(handlers.NotFound)
	r.NoMethod(handlers.MethodNotAllowed)

	r.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
	r.GET("/ws/questions", wsHandler.HandleQuestionEvents)

	r.GET("/categories", categoryHandler.ListCategories)
	r.GET("/categories/:id/questions", categoryHandler.ListCategoryQuestions)

	r.GET("/questions", questionHandler.ListQuestions)
	r.POST("/questions", questionHandler.CreateOrSearchQuestions)
	r.DELETE("/questions/:id", questionHandler.DeleteQuestion)

	r.POST("/quizzes", quizHandler.NextQuestion)

	return r
}
