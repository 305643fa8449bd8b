package routes

import (
	"log"
	"os"
	"strconv"

	_ "repairdesk/docs" // This will be auto-generated
	"repairdesk/internal/adapter/http/handlers"
	repository2 "repairdesk/internal/adapter/persistence/repository"
	"repairdesk/internal/infrastructure/database"
	"repairdesk/internal/infrastructure/notify"
	"repairdesk/internal/infrastructure/payments"
	"repairdesk/internal/usecase"
	"repairdesk/internal/usecase/interfaces"

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
	ddb := database.ConnectDynamoDB()

	jobRepo := repository2.NewJobDynamoRepository(ddb)
	vendorRepo := repository2.NewVendorDynamoRepository(ddb)
	receiptRepo := repository2.NewReceiptDynamoRepository(ddb)

	jobUseCase := usecase.NewJobUseCase(jobRepo)
	outsourceUseCase := usecase.NewOutsourceUseCase(jobRepo, vendorRepo)

	var paymentGateway interfaces.IPaymentGateway
	mpGateway, err := payments.NewMercadoPagoGateway(os.Getenv("MERCADOPAGO_ACCESS_TOKEN"))
	if err != nil {
		log.Printf("Mercado Pago gateway not configured: %v", err)
	} else {
		paymentGateway = mpGateway
	}

	notifier := notify.NewLogNotifier()
	settlementUseCase := usecase.NewSettlementUseCase(jobRepo, receiptRepo, paymentGateway, notifier)

	jobHandler := handlers.NewJobHandler(jobUseCase)
	outsourceHandler := handlers.NewOutsourceHandler(outsourceUseCase)
	settlementHandler := handlers.NewSettlementHandler(settlementUseCase)

	v1 := router.Group("/v1")
	addPingRoutes(v1)
	addJobRoutes(v1, jobHandler, outsourceHandler, settlementHandler)
}

func setMiddlewares() {
	router.Use(gin.Logger())
	router.Use(gin.Recovery())
	router.Use(gin.CustomRecovery(func(c *gin.Context, recovered interface{}) {
		log.Printf("Recovered from panic: %v", recovered)
		c.AbortWithStatus(500)
	}))
}
