package main

import (
	"log"

	"phone_store/database"
	"phone_store/handler"
	"phone_store/helper"
	"phone_store/router"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
)

func main() {
	app := fiber.New(fiber.Config{
		BodyLimit: 20 * 1024 * 1024, // ảnh sản phẩm tối đa 20MB
	})

	app.Use(cors.New(cors.Config{
		AllowOrigins:     "http://localhost:5173",
		AllowMethods:     "GET,POST,PUT,DELETE,PATCH,OPTIONS",
		AllowHeaders:     "Origin, Content-Type, Authorization, Accept",
		AllowCredentials: true,
		MaxAge:           600,
	}))

	database.ConnectDB()
	helper.InitRedis()
	handler.InitServices(database.DB)

	helper.StartCatalogCacheScheduler()
	defer helper.StopCatalogCacheScheduler()
	helper.StartInventoryReconcileScheduler()
	defer helper.StopInventoryReconcileScheduler()

	router.SetupRoutes(app)
	log.Fatal(app.Listen(":8002"))
}
