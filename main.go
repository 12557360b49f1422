package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"time"

	"messenger-relay/internal/config"
	Iservices "messenger-relay/internal/domain/interfaces/services"
	"messenger-relay/internal/infra/handlers"
	"messenger-relay/internal/infra/logger"
	"messenger-relay/internal/infra/provider"
	"messenger-relay/internal/infra/repository"
	"messenger-relay/internal/infra/routes"
	"messenger-relay/internal/infra/services"
	"messenger-relay/internal/middleware"
	client "messenger-relay/internal/pkg"

	"github.com/gorilla/mux"
)

func main() {
	config.LoadEnv()

	log := logger.NewLogger(true)

	db := client.SqliteDB(config.GetEnvDefault("DB_PATH", "chat.db"))
	turnRepo := repository.NewSqliteTurnRepository(db)

	var replyService Iservices.IReplyService = services.NewReplyService(
		log,
		config.GetEnv("OPENAI_API_KEY"),
		config.GetEnvDefault("GENERATION_MODEL", "gpt-4o-mini"),
	)

	var messengerProvider provider.IMessengerProvider = provider.NewMessengerProvider(
		log,
		config.GetEnvDefault("GRAPH_API_URL", "https://graph.facebook.com"),
		config.GetEnvDefault("GRAPH_API_VERSION", "v18.0"),
		config.GetEnv("FB_PAGE_TOKEN"),
	)

	verifyToken := config.GetEnv("VERIFY_TOKEN")
	if verifyToken == "" {
		log.Warn("Verify token not configured; webhook verification will always fail")
	}

	webhookHandlers := handlers.NewWebhookHandlers(log, verifyToken, turnRepo, replyService, messengerProvider)

	router := mux.NewRouter()
	router.Use(middleware.LoggingMiddleware(log))

	routes := routes.NewRoutes(router, webhookHandlers)
	routes.Init()

	port := config.GetEnvDefault("PORT", "10000")
	server := &http.Server{
		Addr:    fmt.Sprintf(":%s", port),
		Handler: router,
	}

	stop := make(chan os.Signal, 1)
	signal.Notify(stop, os.Interrupt)

	go func() {
		log.Info(fmt.Sprintf("Server is running on port %s", port))
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Error(fmt.Sprintf("Error running HTTP server: %s", err))
			os.Exit(1)
		}
	}()

	<-stop
	log.Info("Shutting down server...")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := server.Shutdown(shutdownCtx); err != nil {
		log.Error(fmt.Sprintf("Server forced to shutdown: %v", err))
	} else {
		log.Info("Server stopped gracefully.")
	}
}
