package main

import (
	"log"

	"github.com/gofiber/fiber/v3"
	"github.com/gofiber/fiber/v3/middleware/cors"
	"github.com/gofiber/fiber/v3/middleware/logger"
	"github.com/gofiber/fiber/v3/middleware/recover"

	"github.com/rajivgeraev/steam-trade-api/internal/config"
	"github.com/rajivgeraev/steam-trade-api/internal/db"
	"github.com/rajivgeraev/steam-trade-api/internal/middleware"
	"github.com/rajivgeraev/steam-trade-api/internal/repository/postgres"
	"github.com/rajivgeraev/steam-trade-api/internal/services/auth"
	"github.com/rajivgeraev/steam-trade-api/internal/services/inventory"
	"github.com/rajivgeraev/steam-trade-api/internal/services/trade"
	"github.com/rajivgeraev/steam-trade-api/internal/services/user"
	"github.com/rajivgeraev/steam-trade-api/internal/steam"
)

func main() {
	// Загружаем конфигурацию
	cfg := config.LoadConfig()

	// Инициализируем базу данных
	if err := db.InitDB(cfg); err != nil {
		log.Fatalf("❌ Ошибка при инициализации базы данных: %v", err)
	}
	defer db.CloseDB()

	// Применяем миграции
	ctx, cancel := db.GetContext()
	if err := db.RunMigrations(ctx, db.Pool); err != nil {
		cancel()
		log.Fatalf("❌ Ошибка при применении миграций: %v", err)
	}
	cancel()

	// Создаём экземпляр Fiber
	app := fiber.New(fiber.Config{
		AppName:      "Steam Trade API",
		ErrorHandler: errorHandler,
	})

	// Добавляем middleware
	app.Use(recover.New())
	app.Use(logger.New())
	app.Use(cors.New(cors.Config{
		AllowOrigins:     []string{cfg.FrontendURL},
		AllowHeaders:     []string{"Origin", "Content-Type", "Accept", "Authorization"},
		AllowMethods:     []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowCredentials: true,
	}))

	// Создаём репозитории
	userRepo := postgres.NewUserRepository(db.Pool)
	tradeOfferRepo := postgres.NewTradeOfferRepository(db.Pool)

	// Создаём сервисы
	authService := auth.NewAuthService(cfg, userRepo)
	tradeService := trade.NewTradeService(tradeOfferRepo, userRepo)
	inventoryService := inventory.NewInventoryService(steam.NewInventoryClient())
	userService := user.NewUserService(userRepo)

	// Настраиваем middleware для аутентификации
	authMiddleware := middleware.AuthMiddleware(authService.GetJWTService())

	// Регистрируем маршруты
	authService.SetupRoutes(app)
	tradeService.SetupRoutes(app, authMiddleware)
	inventoryService.SetupRoutes(app, authMiddleware)
	userService.SetupRoutes(app)

	app.Get("/api/health", func(c fiber.Ctx) error {
		return c.JSON(fiber.Map{"status": "ok"})
	})

	// Запускаем сервер
	log.Println("✅ Steam Trade API запущен на порту 3001")
	log.Fatal(app.Listen(":3001"))
}

// errorHandler обрабатывает ошибки Fiber
func errorHandler(c fiber.Ctx, err error) error {
	code := fiber.StatusInternalServerError

	// Проверяем, является ли ошибка из Fiber
	if e, ok := err.(*fiber.Error); ok {
		code = e.Code
	}

	// Отправляем ошибку в JSON
	return c.Status(code).JSON(fiber.Map{
		"error": err.Error(),
	})
}
