package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"

	"panditseva/catalog"
	"panditseva/config"
	"panditseva/handlers"
	"panditseva/routes"
	"panditseva/services/booking"
	"panditseva/services/extract"
	"panditseva/services/speech"
	"panditseva/utils"
)

func main() {
	config.LoadConfig()
	utils.InitializeLogger()
	logger := utils.GetLogger()

	utils.InitSessionCache()

	loc, err := time.LoadLocation(config.AppConfig.Timezone)
	if err != nil {
		logger.Sugar().Fatalf("main: invalid timezone %q: %v", config.AppConfig.Timezone, err)
	}

	// Extraction: rule engine always works; the Gemini path is layered on
	// top when a key is configured, with the rules as fallback.
	rules := extract.NewRuleExtractor(loc)
	var extractor extract.Extractor = rules
	if config.AppConfig.GeminiAPIKey != "" {
		geminiClient, err := extract.NewGeminiClient(config.AppConfig.GeminiAPIKey)
		if err != nil {
			logger.Sugar().Warnf("main: gemini unavailable, using rule extraction only: %v", err)
		} else {
			extractor = &extract.FallbackExtractor{
				Primary:  extract.NewGeminiExtractor(geminiClient, rules, 15*time.Second),
				Fallback: rules,
			}
		}
	}

	engine := &booking.MatchingEngine{
		Roster:            catalog.Pandits(),
		RequireTimeStrict: config.AppConfig.RequireTimeStrict,
		MaxResults:        config.AppConfig.MaxResults,
	}

	sessionTTL := time.Duration(config.AppConfig.SessionTTLMinutes) * time.Minute
	sessionStore := booking.NewRedisSessionStore(utils.GetSessionCacheClient(), sessionTTL)

	handlers.SearchService = &booking.DefaultSearchService{
		Extractor:         extractor,
		Engine:            engine,
		Sessions:          sessionStore,
		RequireTimeStrict: config.AppConfig.RequireTimeStrict,
	}
	handlers.ConfirmationService = &booking.DefaultConfirmationService{
		Sessions: sessionStore,
	}
	handlers.Transcriber = speech.NewGoogleTranscriber(config.AppConfig.GoogleServiceAccountFile)

	if config.IsProduction() {
		gin.SetMode(gin.ReleaseMode)
	}
	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(utils.ErrorHandler())
	router.Use(gin.Logger())
	routes.RegisterRoutes(router)

	port := config.AppConfig.AppPort
	if port == "" {
		port = "8080"
	}
	srv := &http.Server{
		Addr:    "0.0.0.0:" + port,
		Handler: router,
	}

	logger.Sugar().Infof("Starting server on %s...", srv.Addr)
	go func() {
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Sugar().Fatalf("main: server failed to start: %v", err)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	logger.Sugar().Info("main: server is shutting down...")

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		logger.Sugar().Fatalf("main: server forced to shutdown: %v", err)
	}

	logger.Sugar().Info("main: server stopped gracefully")
}
