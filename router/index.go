package router

import (
	"phone_store/handler"
	"phone_store/validate"

	"github.com/gofiber/contrib/websocket"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/logger"
)

func SetupRoutes(app *fiber.App) {
	app.Get("/health", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"status": "ok"})
	})

	api := app.Group("/api", logger.New())
	v1 := api.Group("/v1", logger.New())

	auth := v1.Group("/auth")
	auth.Post("/register", validate.RegisterUser(), handler.RegisterUser)
	auth.Post("/login", validate.Login(), handler.Login)

	user := v1.Group("/users", logger.New())
	user.Get("/", handler.GetAllUsers)
	user.Get("/:userId", validate.GetById("userId"), handler.GetUserById)
	user.Patch("/:userId/role", validate.UpdateUserRole("userId"), handler.UpdateUserRole)
	user.Get("/:userId/addresses", validate.GetById("userId"), handler.GetUserAddresses)
	user.Get("/:userId/orders", validate.GetById("userId"), handler.GetUserOrders)
	user.Get("/:userId/cart", validate.GetById("userId"), handler.GetUserCart)

	address := v1.Group("/addresses", logger.New())
	address.Post("/", validate.CreateAddress(), handler.CreateAddress)
	address.Put("/:addressId", validate.EditAddress("addressId"), handler.EditAddress)
	address.Delete("/:addressId", validate.GetById("addressId"), handler.DeleteAddress)
	address.Patch("/:addressId/default", validate.GetById("addressId"), handler.SetDefaultAddress)

	product := v1.Group("/products", logger.New())
	product.Get("/", handler.GetAllProducts)
	product.Get("/slug/:slug", handler.GetProductBySlug)
	product.Get("/:productId", validate.GetById("productId"), handler.GetProductById)
	product.Post("/", validate.CreateProduct(), handler.CreateProduct)
	product.Put("/:productId", validate.EditProduct("productId"), handler.EditProduct)
	product.Delete("/:productId", validate.GetById("productId"), handler.DeleteProduct)
	product.Post("/:productId/image", validate.GetById("productId"), handler.UploadProductImage)

	variant := v1.Group("/variants", logger.New())
	variant.Put("/:variantId", validate.EditVariant("variantId"), handler.EditVariant)
	variant.Post("/:variantId/inventory", validate.AdjustInventory("variantId"), handler.AdjustInventory)
	variant.Put("/:variantId/stock", validate.SetStock("variantId"), handler.SetStock)
	variant.Get("/:variantId/inventory", validate.GetById("variantId"), handler.GetVariantInventoryTxs)

	cart := v1.Group("/cart", logger.New())
	cart.Post("/items", validate.AddCartItem(), handler.AddCartItem)
	cart.Put("/items/:cartItemId", validate.UpdateCartQty("cartItemId"), handler.UpdateCartQty)
	cart.Delete("/items/:cartItemId", validate.GetById("cartItemId"), handler.RemoveCartItem)

	order := v1.Group("/orders", logger.New())
	order.Post("/", validate.PlaceOrder(), handler.PlaceOrder)
	order.Get("/", validate.FilterOrder(), handler.GetAllOrders)
	order.Get("/code/:code", handler.GetOrderByCode)
	order.Patch("/:orderId/status", validate.UpdateOrderStatus("orderId"), handler.UpdateOrderStatus)
	order.Get("/:orderId/notes", validate.GetById("orderId"), handler.GetOrderNotes)
	order.Get("/:orderId/inventory", validate.GetById("orderId"), handler.GetOrderInventoryTxs)

	note := v1.Group("/staff-notes", logger.New())
	note.Post("/", validate.CreateStaffNote(), handler.CreateStaffNote)
	note.Put("/:noteId", validate.EditStaffNote("noteId"), handler.EditStaffNote)
	note.Delete("/:noteId", validate.DeleteStaffNote("noteId"), handler.DeleteStaffNote)

	inventory := v1.Group("/inventory", logger.New())
	inventory.Get("/reconcile", handler.ReconcileInventory)

	stats := v1.Group("/stats", logger.New())
	stats.Get("/dashboard", handler.GetDashboardStats)

	v1.Post("/cloudinary-signature", handler.GenerateSignature)

	// WS feed đơn hàng cho back-office
	app.Use("/ws", func(c *fiber.Ctx) error {
		if websocket.IsWebSocketUpgrade(c) {
			return c.Next()
		}
		return fiber.ErrUpgradeRequired
	})
	app.Get("/ws/orders", websocket.New(handler.OrderFeedConnection))
}
