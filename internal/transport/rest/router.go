package rest

import (
	"net/http"
	"os"

	"github.com/gorilla/mux"

	"github.com/sulieman-Albuaeshi/survey-application/internal/service"
	"github.com/sulieman-Albuaeshi/survey-application/internal/transport/rest/handler"
	"github.com/sulieman-Albuaeshi/survey-application/internal/transport/rest/middleware"
	"github.com/sulieman-Albuaeshi/survey-application/internal/transport/ws"
)

// Container holds all dependencies for the router
type Container struct {
	AuthService      *service.AuthService
	SurveyService    *service.SurveyService
	ResponseService  *service.ResponseService
	AnalyticsService *service.AnalyticsService
	WSHub            *ws.Hub
}

// NewRouter creates the API router with all endpoints
func NewRouter(c *Container) http.Handler {
	r := mux.NewRouter()

	// Initialize handlers
	authHandler := handler.NewAuthHandler(c.AuthService)
	surveyHandler := handler.NewSurveyHandler(c.SurveyService)
	responseHandler := handler.NewResponseHandler(c.ResponseService)
	analyticsHandler := handler.NewAnalyticsHandler(c.AnalyticsService)
	wsHandler := ws.NewHandler(c.WSHub, c.AuthService)

	// Initialize middleware
	authMW := middleware.NewAuthMiddleware(c.AuthService)

	// CORS middleware (apply first)
	r.Use(corsMiddleware)

	// API v1 routes
	v1 := r.PathPrefix("/v1").Subrouter()

	// Public routes
	v1.HandleFunc("/auth/login", authHandler.Login).Methods("POST", "OPTIONS")
	v1.HandleFunc("/surveys/{surveyId}/form", surveyHandler.Form).Methods("GET", "OPTIONS")
	v1.HandleFunc("/surveys/{surveyId}/responses", responseHandler.Submit).Methods("POST", "OPTIONS")

	// WebSocket route (token in query param)
	v1.HandleFunc("/ws/surveys/{surveyId}", wsHandler.WatchSurvey).Methods("GET")

	// Health check
	r.HandleFunc("/health", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusOK)
		w.Write([]byte(`{"status":"ok"}`))
	}).Methods("GET")

	// Operator routes (require operator auth)
	operatorRoutes := v1.NewRoute().Subrouter()
	operatorRoutes.Use(authMW.RequireOperator)

	operatorRoutes.HandleFunc("/surveys", surveyHandler.Create).Methods("POST", "OPTIONS")
	operatorRoutes.HandleFunc("/surveys", surveyHandler.List).Methods("GET", "OPTIONS")
	operatorRoutes.HandleFunc("/surveys/{surveyId}", surveyHandler.Get).Methods("GET", "OPTIONS")
	operatorRoutes.HandleFunc("/surveys/{surveyId}", surveyHandler.Update).Methods("PUT", "OPTIONS")
	operatorRoutes.HandleFunc("/surveys/{surveyId}", surveyHandler.Delete).Methods("DELETE", "OPTIONS")
	operatorRoutes.HandleFunc("/surveys/{surveyId}/responses", responseHandler.List).Methods("GET", "OPTIONS")

	// Report routes (operator only)
	operatorRoutes.HandleFunc("/surveys/{surveyId}/analytics", analyticsHandler.Summary).Methods("GET", "OPTIONS")
	operatorRoutes.HandleFunc("/surveys/{surveyId}/analytics/questions/{questionId}/chart", analyticsHandler.QuestionChart).Methods("GET", "OPTIONS")
	operatorRoutes.HandleFunc("/surveys/{surveyId}/table", analyticsHandler.Table).Methods("GET", "OPTIONS")
	operatorRoutes.HandleFunc("/surveys/{surveyId}/correlation", analyticsHandler.Correlation).Methods("GET", "OPTIONS")
	operatorRoutes.HandleFunc("/surveys/{surveyId}/export", analyticsHandler.Export).Methods("GET", "OPTIONS")

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
