package main

import (
	"context"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"

	"github.com/anikesh-17/MediGate/internal/api"
	"github.com/anikesh-17/MediGate/internal/api/middleware"
	"github.com/anikesh-17/MediGate/internal/dialog"
	"github.com/anikesh-17/MediGate/internal/extract"
	"github.com/anikesh-17/MediGate/internal/model"
	"github.com/anikesh-17/MediGate/internal/refdata"
	"github.com/anikesh-17/MediGate/internal/vocab"
	"github.com/anikesh-17/MediGate/internal/ws"
)

func main() {
	// Load environment variables
	if err := godotenv.Load(); err != nil {
		log.Printf("Warning: .env file not found: %v", err)
	}

	port := getEnv("PORT", "8080")
	trainingPath := getEnv("TRAINING_DATA", "data/training.csv")
	masterDir := getEnv("MASTER_DATA_DIR", "data/master")

	// The vocabulary and model are the contract every turn depends on; the
	// server cannot run without them.
	trainingSet, err := model.LoadTrainingCSV(trainingPath)
	if err != nil {
		log.Fatalf("Failed to load training data: %v", err)
	}
	log.Printf("✅ Training data loaded: %d features, %d labels", len(trainingSet.Columns), len(trainingSet.Labels))

	vocabulary, err := vocab.New(trainingSet.Columns, vocab.DefaultSynonyms)
	if err != nil {
		log.Fatalf("Failed to build vocabulary: %v", err)
	}

	classifier, err := model.TrainBernoulliNB(trainingSet)
	if err != nil {
		log.Fatalf("Failed to train classifier: %v", err)
	}

	adapter, err := model.NewAdapter(vocabulary, classifier, trainingSet)
	if err != nil {
		log.Fatalf("Failed to build model adapter: %v", err)
	}
	log.Println("✅ Classifier trained")

	// Reference tables degrade per entry, never fatally.
	refs := refdata.Load(masterDir)

	extractor := extract.NewExtractor(vocabulary)
	engine := dialog.NewEngine(extractor, adapter, refs, vocabulary, nil)

	chatHandler := api.NewChatHandler(engine)
	symptomHandler := api.NewSymptomHandler(vocabulary, refs)
	wsHandler := ws.NewChatHandler(engine)

	// Setup Gin router
	router := gin.Default()
	router.Use(middleware.CORS())
	router.Use(middleware.PerIP(100.0/60.0, 200))

	router.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{
			"status":   "healthy",
			"symptoms": vocabulary.Size(),
			"diseases": len(trainingSet.Labels),
			"time":     time.Now().Unix(),
		})
	})

	apiGroup := router.Group("/api")
	{
		apiGroup.POST("/chat", chatHandler.HandleTurn)
		apiGroup.POST("/chat/reset", chatHandler.HandleReset)
		apiGroup.GET("/symptoms", symptomHandler.ListSymptoms)
	}

	router.GET("/ws/chat", wsHandler.HandleChat)

	srv := &http.Server{
		Addr:    ":" + port,
		Handler: router,
	}

	go func() {
		log.Printf("🚀 Server starting on http://localhost:%s", port)
		log.Printf("📝 API endpoints:")
		log.Printf("   POST   /api/chat")
		log.Printf("   POST   /api/chat/reset")
		log.Printf("   GET    /api/symptoms")
		log.Printf("   WS     /ws/chat")
		log.Printf("   GET    /health")

		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatalf("Failed to start server: %v", err)
		}
	}()

	// Graceful shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Println("Shutting down server...")

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		log.Fatalf("Server forced to shutdown: %v", err)
	}

	log.Println("Server exited")
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}
