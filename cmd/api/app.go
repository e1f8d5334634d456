package main

import (
	"os"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	"github.com/dscosta/pos-confeitaria/internal/adapter/api/controller"
	"github.com/dscosta/pos-confeitaria/internal/adapter/api/route"
	"github.com/dscosta/pos-confeitaria/internal/adapter/repository"
	appLoyalty "github.com/dscosta/pos-confeitaria/internal/application/loyalty"
	appNotification "github.com/dscosta/pos-confeitaria/internal/application/notification"
	"github.com/dscosta/pos-confeitaria/internal/application/sales"
	"github.com/dscosta/pos-confeitaria/internal/infrastructure/database"
	"github.com/dscosta/pos-confeitaria/pkg/auth"
	"github.com/dscosta/pos-confeitaria/pkg/branch"
	"github.com/dscosta/pos-confeitaria/pkg/logger"
)

// App representa a aplicação e suas dependências
type App struct {
	router *gin.Engine
	db     *database.PostgresDB
	log    logger.Logger

	branchMiddleware gin.HandlerFunc

	authController         *controller.AuthController
	branchController       *controller.BranchController
	catalogController      *controller.CatalogController
	productController      *controller.ProductController
	ingredientController   *controller.IngredientController
	customerController     *controller.CustomerController
	loyaltyController      *controller.LoyaltyController
	reservationController  *controller.ReservationController
	saleController         *controller.SaleController
	reportController       *controller.ReportController
	settingsController     *controller.SettingsController
	notificationController *controller.NotificationController
	userController         *controller.UserController
	printController        *controller.PrintController
}

// NewApp cria uma nova instância do aplicativo
func NewApp() (*App, error) {
	log := logger.NewLogger()

	// Configurar banco de dados
	config := database.NewPostgresConfigFromEnv()
	db, err := database.NewPostgresDB(config)
	if err != nil {
		return nil, err
	}

	// Criar repositórios
	branchRepo := repository.NewPostgresBranchRepository(db)
	categoryRepo := repository.NewPostgresCategoryRepository(db)
	sizeRepo := repository.NewPostgresSizeRepository(db)
	productRepo := repository.NewPostgresProductRepository(db)
	ingredientRepo := repository.NewPostgresIngredientRepository(db)
	customerRepo := repository.NewPostgresCustomerRepository(db)
	loyaltyRepo := repository.NewPostgresLoyaltyRepository(db)
	reservationRepo := repository.NewPostgresReservationRepository(db)
	saleRepo := repository.NewPostgresSaleRepository(db)
	userRepo := repository.NewPostgresUserRepository(db)
	settingsRepo := repository.NewPostgresSettingsRepository(db)
	notificationRepo := repository.NewPostgresNotificationRepository(db)

	// Serviços de aplicação
	jwtService, err := auth.NewJWTService()
	if err != nil {
		return nil, err
	}
	loyaltyEngine := appLoyalty.NewEngine(loyaltyRepo, customerRepo, log)
	saleService := sales.NewService(saleRepo, productRepo, customerRepo, loyaltyRepo, log)
	reminderService := appNotification.NewReminderService(notificationRepo, reservationRepo, ingredientRepo, log)

	// Controllers
	app := &App{
		db:               db,
		log:              log,
		branchMiddleware: branch.Middleware(branchRepo),

		authController:         controller.NewAuthController(userRepo, jwtService, log),
		branchController:       controller.NewBranchController(branchRepo),
		catalogController:      controller.NewCatalogController(categoryRepo, sizeRepo),
		productController:      controller.NewProductController(productRepo),
		ingredientController:   controller.NewIngredientController(ingredientRepo),
		customerController:     controller.NewCustomerController(customerRepo, saleRepo, loyaltyRepo),
		loyaltyController:      controller.NewLoyaltyController(loyaltyRepo, loyaltyEngine),
		reservationController:  controller.NewReservationController(reservationRepo),
		saleController:         controller.NewSaleController(saleService, saleRepo),
		reportController:       controller.NewReportController(saleRepo, productRepo, reservationRepo),
		settingsController:     controller.NewSettingsController(settingsRepo),
		notificationController: controller.NewNotificationController(notificationRepo, reminderService),
		userController:         controller.NewUserController(userRepo),
		printController:        controller.NewPrintController(saleRepo, reservationRepo, customerRepo, settingsRepo),
	}

	// Configurar router
	router := gin.Default()
	router.Use(gin.Recovery())
	router.Use(cors.New(cors.Config{
		AllowOrigins:     []string{"*"},
		AllowMethods:     []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Authorization", "branch-id"},
		ExposeHeaders:    []string{"Content-Length"},
		AllowCredentials: false,
	}))

	app.router = router
	app.setupRoutes("/api/v1")

	return app, nil
}

// setupRoutes configura as rotas da aplicação
func (a *App) setupRoutes(basePath string) {
	api := a.router.Group(basePath)

	// Health check
	api.GET("/health", func(c *gin.Context) {
		c.JSON(200, gin.H{
			"status":  "ok",
			"version": "1.0.0",
		})
	})

	// Documentação Swagger
	a.router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	// Rotas que não exigem o cabeçalho branch-id
	route.SetupAuthRoutes(api, a.authController)
	route.SetupSetupRoutes(api, a.userController)
	route.RegisterBranchRoutes(api, a.branchController)
	route.RegisterUserRoutes(api, a.userController)

	// Rotas particionadas por filial
	branchScoped := api.Group("")
	branchScoped.Use(a.branchMiddleware)

	route.RegisterCatalogRoutes(branchScoped, a.catalogController)
	route.RegisterProductRoutes(branchScoped, a.productController)
	route.RegisterIngredientRoutes(branchScoped, a.ingredientController)
	route.RegisterCustomerRoutes(branchScoped, a.customerController)
	route.RegisterLoyaltyRoutes(branchScoped, a.loyaltyController)
	route.RegisterReservationRoutes(branchScoped, a.reservationController)
	route.RegisterSaleRoutes(branchScoped, a.saleController)
	route.RegisterReportRoutes(branchScoped, a.reportController)
	route.RegisterSettingsRoutes(branchScoped, a.settingsController)
	route.RegisterNotificationRoutes(branchScoped, a.notificationController)
	route.RegisterPrintRoutes(branchScoped, a.printController)
}

// Start inicia o servidor HTTP
func (a *App) Start() error {
	port := os.Getenv("PORT")
	if port == "" {
		port = "8080"
	}

	a.log.Info("servidor iniciado", "port", port)
	return a.router.Run(":" + port)
}

// Close libera os recursos da aplicação
func (a *App) Close() {
	if a.db != nil {
		a.db.Close()
	}
}
