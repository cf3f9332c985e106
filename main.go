package main

import (
	"log"
	"net/http"
	"os"
	"time"

	"trainer-service/internal/config"
	"trainer-service/internal/db"
	"trainer-service/internal/engine"
	"trainer-service/internal/event"
	"trainer-service/internal/handlers"
	"trainer-service/internal/repository"
	"trainer-service/internal/service"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
)

func main() {
	// Load env
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, using system env")
	}
	mongoURI := os.Getenv("MONGO_URI")
	if mongoURI == "" {
		log.Fatal("MONGO_URI is required")
	}
	db.InitMongo(mongoURI)

	// RabbitMQ event publisher (optional)
	rabbitURL := os.Getenv("RABBITMQ_URI")
	eventExchange := os.Getenv("RABBITMQ_EXCHANGE")
	var publisher *event.Publisher
	if rabbitURL != "" && eventExchange != "" {
		var err error
		publisher, err = event.NewPublisher(rabbitURL, eventExchange)
		if err != nil {
			log.Fatalf("Failed to connect to RabbitMQ: %v", err)
		}
		defer publisher.Close()
	} else {
		log.Println("RabbitMQ not configured, trainer events will not be published")
	}

	r := gin.Default()

	r.Use(cors.New(cors.Config{
		AllowOrigins:     []string{"http://localhost:3000"},
		AllowMethods:     []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Content-Type", "Content-Length", "Accept-Encoding", "Authorization", "accept", "origin", "Cache-Control", "X-Requested-With"},
		ExposeHeaders:    []string{"Content-Length"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}))

	database := db.Client.Database("trainer_service")

	// Repositories
	userRepo := repository.NewUserRepository(database)
	questionRepo := repository.NewQuestionRepository(database)
	attemptRepo := repository.NewAttemptRepository(database)
	sessionRepo := repository.NewSessionRepository(database)
	flashcardRepo := repository.NewFlashcardRepository(database)

	// Engine over the Mongo-backed store
	store := repository.NewEngineStore(attemptRepo, questionRepo, sessionRepo, flashcardRepo)
	eng, err := engine.New(store, config.EngineConfigFromEnv())
	if err != nil {
		log.Fatalf("Invalid engine config: %v", err)
	}

	// Services
	userService := service.NewUserService(userRepo, attemptRepo, sessionRepo)
	questionService := service.NewQuestionService(questionRepo)
	sessionService := service.NewSessionService(sessionRepo, questionRepo, attemptRepo, eng, publisher)
	flashcardService := service.NewFlashcardService(eng, publisher)
	statsService := service.NewStatsService(eng, attemptRepo)

	// Handlers
	userHandler := handlers.NewUserHandler(userService)
	questionHandler := handlers.NewQuestionHandler(questionService, sessionService)
	sessionHandler := handlers.NewSessionHandler(sessionService)
	answerHandler := handlers.NewAnswerHandler(sessionService)
	flashcardHandler := handlers.NewFlashcardHandler(flashcardService)
	statsHandler := handlers.NewStatsHandler(statsService)

	api := r.Group("/api")
	{
		api.GET("/health", func(c *gin.Context) {
			c.JSON(http.StatusOK, gin.H{"status": "ok"})
		})

		api.GET("/users", userHandler.ListUsers)
		api.POST("/users", userHandler.CreateUser)
		api.GET("/users/:id", userHandler.GetUser)
		api.GET("/users/:id/stats", userHandler.GetUserStats)
		api.GET("/users/:id/sessions", sessionHandler.GetUserSessions)
		api.GET("/users/:id/weak-topics", statsHandler.GetWeakTopics)
		api.GET("/users/:id/topic-weights", statsHandler.GetTopicWeights)
		api.GET("/users/:id/analytics/topics", statsHandler.GetTopicAnalytics)
		api.GET("/users/:id/analytics/trends", statsHandler.GetTrends)
		api.GET("/users/:id/leeches", flashcardHandler.GetLeeches)

		api.GET("/subjects", questionHandler.ListSubjects)
		api.GET("/questions/next", questionHandler.NextQuestion)
		api.GET("/questions/:id", questionHandler.GetQuestion)
		api.POST("/questions", questionHandler.CreateQuestion)

		api.POST("/sessions", sessionHandler.CreateSession)
		api.GET("/sessions/:id", sessionHandler.GetSession)
		api.GET("/sessions/:id/attempts", sessionHandler.GetSessionAttempts)
		api.GET("/sessions/:id/pacing", sessionHandler.GetPacing)
		api.POST("/sessions/:id/end", sessionHandler.EndSession)

		api.POST("/answer", answerHandler.SubmitAnswer)

		api.GET("/flashcards/due", flashcardHandler.GetDue)
		api.POST("/flashcards/review", flashcardHandler.SubmitReview)
	}

	port := os.Getenv("PORT")
	if port == "" {
		port = "8000"
	}
	r.Run(":" + port)
}
