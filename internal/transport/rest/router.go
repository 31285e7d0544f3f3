package rest

import (
	"net/http"
	"os"

	"essaycoach/internal/service"
	"essaycoach/internal/transport/rest/handler"
	"essaycoach/internal/transport/rest/middleware"
	"essaycoach/internal/transport/ws"

	"github.com/gorilla/mux"
	"github.com/swaggo/swag"

	_ "essaycoach/docs"
)

// Container holds all dependencies for the router
type Container struct {
	AuthService     *service.AuthService
	SessionService  *service.SessionService
	GradingService  *service.GradingService
	HistoryService  *service.HistoryService
	StatsService    *service.StatsService
	QuestionService *service.QuestionService
	OCRService      *service.OCRService
	WSHub           *ws.Hub
}

// NewRouter creates the API router with all endpoints
func NewRouter(c *Container) http.Handler {
	r := mux.NewRouter()

	// Initialize handlers
	authHandler := handler.NewAuthHandler(c.AuthService)
	sessionHandler := handler.NewSessionHandler(c.SessionService)
	gradingHandler := handler.NewGradingHandler(c.GradingService)
	historyHandler := handler.NewHistoryHandler(c.HistoryService, c.StatsService)
	questionHandler := handler.NewQuestionHandler(c.QuestionService)
	ocrHandler := handler.NewOCRHandler(c.OCRService)
	wsHandler := ws.NewHandler(c.WSHub, c.AuthService)

	// Initialize middleware
	authMW := middleware.NewAuthMiddleware(c.AuthService)

	// CORS middleware (apply first)
	r.Use(corsMiddleware)

	// API v1 routes
	v1 := r.PathPrefix("/v1").Subrouter()

	// Public routes
	v1.HandleFunc("/auth/register", authHandler.Register).Methods("POST", "OPTIONS")
	v1.HandleFunc("/auth/login", authHandler.Login).Methods("POST", "OPTIONS")
	v1.HandleFunc("/questions", questionHandler.List).Methods("GET", "OPTIONS")
	v1.HandleFunc("/questions/{id}", questionHandler.Get).Methods("GET", "OPTIONS")

	// Session creation is public; a user token, when present, binds the
	// session to its owner
	v1.Handle("/sessions", authMW.OptionalUser(http.HandlerFunc(sessionHandler.Create))).Methods("POST", "OPTIONS")

	// WebSocket route (public with session token in query param)
	v1.HandleFunc("/ws/sessions/{id}", wsHandler.SessionWS).Methods("GET")

	// Health check
	r.HandleFunc("/health", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusOK)
		w.Write([]byte(`{"status":"ok"}`))
	}).Methods("GET")

	// OpenAPI document
	r.HandleFunc("/swagger/doc.json", func(w http.ResponseWriter, r *http.Request) {
		doc, err := swag.ReadDoc()
		if err != nil {
			http.Error(w, err.Error(), http.StatusInternalServerError)
			return
		}
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(doc))
	}).Methods("GET")

	// Session routes (require session token)
	sessionRoutes := v1.NewRoute().Subrouter()
	sessionRoutes.Use(authMW.RequireSession)

	sessionRoutes.HandleFunc("/sessions/{id}", sessionHandler.Get).Methods("GET", "OPTIONS")
	sessionRoutes.HandleFunc("/sessions/{id}", sessionHandler.End).Methods("DELETE", "OPTIONS")
	sessionRoutes.HandleFunc("/sessions/{id}/grade", gradingHandler.Grade).Methods("POST", "OPTIONS")
	sessionRoutes.HandleFunc("/sessions/{id}/save", gradingHandler.Save).Methods("POST", "OPTIONS")
	sessionRoutes.HandleFunc("/sessions/{id}/retry", gradingHandler.Retry).Methods("POST", "OPTIONS")
	sessionRoutes.HandleFunc("/sessions/{id}/pending", gradingHandler.GetPending).Methods("GET", "OPTIONS")
	sessionRoutes.HandleFunc("/sessions/{id}/history", historyHandler.SessionHistory).Methods("GET", "OPTIONS")
	sessionRoutes.HandleFunc("/sessions/{id}/ocr", ocrHandler.Extract).Methods("POST", "OPTIONS")

	// User routes (require user auth)
	userRoutes := v1.NewRoute().Subrouter()
	userRoutes.Use(authMW.RequireUser)

	userRoutes.HandleFunc("/records", historyHandler.ListRecords).Methods("GET", "OPTIONS")
	userRoutes.HandleFunc("/records/stats", historyHandler.Stats).Methods("GET", "OPTIONS")
	userRoutes.HandleFunc("/records/{id}", historyHandler.DeleteRecord).Methods("DELETE", "OPTIONS")
	userRoutes.HandleFunc("/questions/suggest", questionHandler.Suggest).Methods("POST", "OPTIONS")

	return r
}

func corsMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		allowedOrigins := os.Getenv("CORS_ALLOWED_ORIGINS")
		if allowedOrigins == "" {
			allowedOrigins = "*"
		}

		allowedMethods := os.Getenv("CORS_ALLOWED_METHODS")
		if allowedMethods == "" {
			allowedMethods = "GET, POST, PUT, DELETE, OPTIONS"
		}

		allowedHeaders := os.Getenv("CORS_ALLOWED_HEADERS")
		if allowedHeaders == "" {
			allowedHeaders = "Content-Type, Authorization"
		}

		w.Header().Set("Access-Control-Allow-Origin", allowedOrigins)
		w.Header().Set("Access-Control-Allow-Methods", allowedMethods)
		w.Header().Set("Access-Control-Allow-Headers", allowedHeaders)

		if r.Method == "OPTIONS" {
			w.WriteHeader(http.StatusOK)
			return
		}

		next.ServeHTTP(w, r)
	})
}
