package main

import (
	"context"
	"log"
	"net/http"
	"os"
	"os/signal"
	"strconv"
	"syscall"
	"time"

	"essaycoach/internal/cache"
	"essaycoach/internal/config"
	"essaycoach/internal/llm"
	"essaycoach/internal/repository"
	"essaycoach/internal/service"
	"essaycoach/internal/transport/rest"
	"essaycoach/internal/transport/ws"

	"github.com/joho/godotenv"
	"github.com/redis/go-redis/v9"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// @title Essay Coach API
// @version 1.0
// @description Interactive essay grading assistant for civil service exam preparation
// @host localhost:8080
// @BasePath /
func main() {
	godotenv.Load()

	log.Println("started")
	ctx := context.Background()

	// Load AI config and log model settings
	aiConfig := config.DefaultAIConfig()
	log.Printf("AI Config:")
	log.Printf("  Provider: %s", aiConfig.Provider)
	log.Printf("  Grading:  %s", modelOrDefault(aiConfig.Models.Grading))
	log.Printf("  Suggest:  %s", modelOrDefault(aiConfig.Models.Suggest))
	if aiConfig.OCREnabled() {
		log.Printf("  OCR:      %s", aiConfig.Models.OCR)
	} else {
		log.Println("  OCR:      disabled (no Gemini key)")
	}

	provider, err := llm.NewProvider(ctx, aiConfig)
	if err != nil {
		log.Fatal("Failed to build AI provider:", err)
	}

	// MongoDB connection
	mongoURI := os.Getenv("MONGO_URI")
	if mongoURI == "" {
		mongoURI = "mongodb://localhost:27017"
		log.Println("Warning: MONGO_URI not set, using default")
	}

	mongoClient, err := mongo.Connect(ctx, options.Client().ApplyURI(mongoURI))
	if err != nil {
		log.Fatal("Failed to connect to MongoDB:", err)
	}
	defer mongoClient.Disconnect(ctx)

	// Ping MongoDB
	pingCtx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()
	if err := mongoClient.Ping(pingCtx, nil); err != nil {
		log.Fatal("Failed to ping MongoDB:", err)
	}
	log.Println("Connected to MongoDB")

	dbName := os.Getenv("MONGO_DB")
	if dbName == "" {
		dbName = "essaycoach"
	}
	db := mongoClient.Database(dbName)

	// Redis connection
	redisAddr := os.Getenv("REDIS_ADDR")
	if redisAddr == "" {
		redisAddr = "localhost:6379"
		log.Println("Warning: REDIS_ADDR not set, using default")
	}
	// Remove redis:// prefix if present
	if len(redisAddr) > 8 && redisAddr[:8] == "redis://" {
		redisAddr = redisAddr[8:]
	}

	rdb := redis.NewClient(&redis.Options{
		Addr:     redisAddr,
		Password: os.Getenv("REDIS_PASSWORD"),
	})
	defer rdb.Close()

	// Ping Redis
	if _, err := rdb.Ping(ctx).Result(); err != nil {
		log.Fatal("Failed to ping Redis:", err)
	}
	log.Println("Connected to Redis")

	sessionTTL := getEnvDuration("SESSION_TTL", 24*time.Hour)
	historyLimit := getEnvInt64("HISTORY_LIMIT", 20)

	// Initialize WebSocket hub
	wsHub := ws.NewHub()
	log.Println("WebSocket hub started")

	// Initialize repositories
	userRepo := repository.NewUserRepo(db)
	recordRepo := repository.NewRecordRepo(db)
	questionRepo := repository.NewQuestionRepo(db)

	// Initialize caches
	sessionCache := cache.NewSessionCache(rdb, sessionTTL)
	historyCache := cache.NewHistoryCache(rdb, sessionTTL)
	statsCache := cache.NewStatsCache(rdb)

	// Initialize services
	authSvc := service.NewAuthService(userRepo)
	sessionSvc := service.NewSessionService(sessionCache, historyCache, authSvc, sessionTTL)
	gradingSvc := service.NewGradingService(provider, aiConfig, sessionSvc, sessionCache, historyCache, questionRepo, recordRepo, statsCache)
	historySvc := service.NewHistoryService(historyCache, recordRepo, statsCache, historyLimit)
	statsSvc := service.NewStatsService(recordRepo, statsCache)
	questionSvc := service.NewQuestionService(questionRepo, statsSvc, provider, aiConfig)

	var ocrSvc *service.OCRService
	if aiConfig.OCREnabled() {
		ocrSvc, err = service.NewOCRService(ctx, aiConfig.GeminiAPIKey, aiConfig.Models.OCR)
		if err != nil {
			log.Printf("Warning: OCR disabled: %v", err)
			ocrSvc = nil
		}
	}

	// Inject broadcaster (wsHub implements service.Broadcaster)
	sessionSvc.SetBroadcaster(wsHub)
	gradingSvc.SetBroadcaster(wsHub)

	// Create router with container
	container := &rest.Container{
		AuthService:     authSvc,
		SessionService:  sessionSvc,
		GradingService:  gradingSvc,
		HistoryService:  historySvc,
		StatsService:    statsSvc,
		QuestionService: questionSvc,
		OCRService:      ocrSvc,
		WSHub:           wsHub,
	}

	router := rest.NewRouter(container)

	// Get port from environment
	port := os.Getenv("PORT")
	if port == "" {
		port = "8080"
	}

	// Start server
	srv := &http.Server{
		Addr:    ":" + port,
		Handler: router,
	}

	go func() {
		log.Printf("Server starting on :%s", port)
		log.Println("Endpoints:")
		log.Println("  POST /v1/auth/register")
		log.Println("  POST /v1/auth/login")
		log.Println("  POST /v1/sessions")
		log.Println("  POST /v1/sessions/{id}/grade")
		log.Println("  POST /v1/sessions/{id}/save")
		log.Println("  POST /v1/sessions/{id}/retry")
		log.Println("  GET  /v1/sessions/{id}/pending")
		log.Println("  GET  /v1/sessions/{id}/history")
		log.Println("  GET  /v1/questions")
		log.Println("  POST /v1/questions/suggest")
		log.Println("  GET  /v1/records")
		log.Println("  GET  /v1/records/stats")
		log.Println("  WS   /v1/ws/sessions/{id}")

		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatal("ListenAndServe:", err)
		}
	}()

	// Wait for interrupt
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	log.Println("Shutting down server...")

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer shutdownCancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Fatal("Server forced to shutdown:", err)
	}

	log.Println("Server exited")
}

func modelOrDefault(model string) string {
	if model == "" {
		return "(provider default)"
	}
	return model
}

func getEnvDuration(key string, defaultValue time.Duration) time.Duration {
	if v := os.Getenv(key); v != "" {
		if d, err := time.ParseDuration(v); err == nil {
			return d
		}
		log.Printf("Warning: invalid %s, using default %s", key, defaultValue)
	}
	return defaultValue
}

func getEnvInt64(key string, defaultValue int64) int64 {
	if v := os.Getenv(key); v != "" {
		if n, err := strconv.ParseInt(v, 10, 64); err == nil && n > 0 {
			return n
		}
		log.Printf("Warning: invalid %s, using default %d", key, defaultValue)
	}
	return defaultValue
}
