package routes

import (
	"log"
	"os"
	"strconv"

	_ "coolseason/docs" // This will be auto-generated
	"coolseason/internal/adapter/http/handlers"
	"coolseason/internal/adapter/persistence/filestore"
	"coolseason/internal/adapter/persistence/repository"
	"coolseason/internal/infrastructure/database"
	"coolseason/internal/usecase"
	"coolseason/internal/usecase/interfaces"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
)

var router = gin.Default()

const PORT = 8080

// Run will start the server
func Run() {
	setMiddlewares()

	// Swagger documentation endpoint
	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	getRoutes()

	err := router.Run(":" + strconv.Itoa(PORT))
	if err != nil {
		log.Fatalf("Failed to startup the application: %v", err.Error())
	}
}

func getRoutes() {
	estimateRepo, catalogRepo := buildRepositories()

	catalogUseCase := usecase.NewCatalogUseCase(catalogRepo)
	estimateUseCase := usecase.NewEstimateUseCase(estimateRepo, catalogUseCase)
	sizingEngine := usecase.NewSizingEngine()

	sizingHandler := handlers.NewSizingHandler(sizingEngine)
	estimateHandler := handlers.NewEstimateHandler(estimateUseCase)
	catalogHandler := handlers.NewCatalogHandler(catalogUseCase)

	v1 := router.Group("/v1")
	addPingRoutes(v1)
	addEstimateRoutes(v1, sizingHandler, estimateHandler, catalogHandler)
}

// buildRepositories selects the persistence backend. The default is the
// JSON filestore; STORAGE_BACKEND=dynamodb switches to DynamoDB.
func buildRepositories() (interfaces.IEstimateRepository, interfaces.ICatalogRepository) {
	if os.Getenv("STORAGE_BACKEND") == "dynamodb" {
		ddb := database.ConnectDynamoDB()
		log.Printf("[storage] using dynamodb backend")
		return repository.NewEstimateDynamoRepository(ddb), repository.NewCatalogDynamoRepository(ddb)
	}

	dataDir := os.Getenv("DATA_DIR")
	if dataDir == "" {
		dataDir = "./data"
	}
	store, err := filestore.New(dataDir)
	if err != nil {
		log.Fatalf("Failed to open data directory: %v", err)
	}
	log.Printf("[storage] using filestore backend at %s", dataDir)
	return filestore.NewEstimateFileRepository(store), filestore.NewCatalogFileRepository(store)
}

func setMiddlewares() {
	router.Use(gin.Logger())
	router.Use(gin.Recovery())
	router.Use(gin.CustomRecovery(func(c *gin.Context, recovered interface{}) {
		log.Printf("Recovered from panic: %v", recovered)
		c.AbortWithStatus(500)
	}))
}
