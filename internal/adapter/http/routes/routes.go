package routes

import (
	"log"
	"strconv"

	_ "precad_service/docs" // This will be auto-generated
	"precad_service/internal/adapter/http/handlers"
	repository2 "precad_service/internal/adapter/persistence/repository"
	"precad_service/internal/infrastructure/database"
	"precad_service/internal/usecase"

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

	intakeRepo := repository2.NewIntakeDynamoRepository(ddb)
	customerRepo := repository2.NewCustomerDynamoRepository(ddb)
	studentRepo := repository2.NewStudentDynamoRepository(ddb)
	fichaRepo := repository2.NewFichaDynamoRepository(ddb)
	academicRepo := repository2.NewAcademicDynamoRepository(ddb)
	enrollmentRepo := repository2.NewProgramEnrollmentDynamoRepository(ddb)
	interviewRepo := repository2.NewInterviewDynamoRepository(ddb)

	intakeUseCase := usecase.NewIntakeUseCase(intakeRepo)
	enrollmentUseCase := usecase.NewEnrollmentUseCase(
		intakeRepo,
		customerRepo,
		studentRepo,
		fichaRepo,
		academicRepo,
		enrollmentRepo,
		usecase.DefaultSagaConfig(),
	)
	slotUseCase := usecase.NewSlotUseCase(intakeRepo, academicRepo, interviewRepo)

	intakeHandler := handlers.NewIntakeHandler(intakeUseCase, enrollmentUseCase)
	slotHandler := handlers.NewSlotHandler(slotUseCase)

	// Rotas publicas
	v1 := router.Group("/v1")
	addPingRoutes(v1)
	addEnrollmentRoutes(v1, intakeHandler, slotHandler)
}

func setMiddlewares() {
	router.Use(gin.Logger())
	router.Use(gin.Recovery())
	router.Use(gin.CustomRecovery(func(c *gin.Context, recovered interface{}) {
		log.Printf("Recovered from panic: %v", recovered)
		c.AbortWithStatus(500)
	}))
}
