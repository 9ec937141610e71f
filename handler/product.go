package handler

import (
	"context"
	"errors"
	"fmt"

	"phone_store/constants"
	"phone_store/database"
	"phone_store/helper"
	"phone_store/model"
	"phone_store/utils"

	"github.com/gofiber/fiber/v2"
	"github.com/jinzhu/copier"
	"gorm.io/gorm"
)

// GetAllProducts danh sách sản phẩm ACTIVE kèm variants, có cache Redis
func GetAllProducts(c *fiber.Ctx) error {
	ctx := context.Background()

	if cached := helper.GetCachedProductList(ctx); cached != nil {
		return utils.SuccessResponse(c, fiber.StatusOK, cached)
	}

	db := database.DB
	var products []model.Product
	if err := db.Preload("Variants").Where("status = ?", constants.PRODUCT_ACTIVE).Find(&products).Error; err != nil {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_INTERNAL_ERROR, err)
	}

	helper.SetCachedProductList(ctx, products)
	return utils.SuccessResponse(c, fiber.StatusOK, products)
}

func GetProductById(c *fiber.Ctx) error {
	id, ok := c.Locals("inputId").(int)
	if !ok {
		return utils.ErrorResponse(c, fiber.StatusBadRequest, constants.ERROR_INPUT, errors.New("invalid id"))
	}

	db := database.DB
	var product model.Product
	if err := db.Preload("Variants").First(&product, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return utils.ErrorResponse(c, fiber.StatusNotFound, "Sản phẩm không tồn tại", err)
		}
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_INTERNAL_ERROR, err)
	}
	return utils.SuccessResponse(c, fiber.StatusOK, product)
}

func GetProductBySlug(c *fiber.Ctx) error {
	slugParam := c.Params("slug")

	db := database.DB
	var product model.Product
	if err := db.Preload("Variants").Where("slug = ?", slugParam).First(&product).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return utils.ErrorResponse(c, fiber.StatusNotFound, "Sản phẩm không tồn tại", err)
		}
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_INTERNAL_ERROR, err)
	}
	return utils.SuccessResponse(c, fiber.StatusOK, product)
}

// CreateProduct tạo sản phẩm kèm variants, tồn kho ban đầu ghi sổ RESTOCK
func CreateProduct(c *fiber.Ctx) error {
	input, ok := c.Locals("inputCreateProduct").(model.CreateProductInput)
	if !ok {
		return utils.ErrorResponse(c, fiber.StatusBadRequest, constants.ERROR_INPUT, errors.New("invalid input"))
	}

	db := database.DB
	var product model.Product

	err := db.Transaction(func(tx *gorm.DB) error {
		copier.Copy(&product, &input)
		product.Variants = nil
		product.Slug = helper.GenerateUniqueProductSlug(tx, input.Name)
		if product.Status == "" {
			product.Status = constants.PRODUCT_ACTIVE
		}
		if err := tx.Create(&product).Error; err != nil {
			return err
		}

		for _, vi := range input.Variants {
			variant := model.Variant{
				ProductID:     product.ID,
				Name:          vi.Name,
				Color:         vi.Color,
				Capacity:      vi.Capacity,
				Price:         vi.Price,
				StockQuantity: vi.StockQuantity,
				ImageUrl:      vi.ImageUrl,
				Status:        constants.VARIANT_IN_STOCK,
			}
			if vi.StockQuantity == 0 {
				variant.Status = constants.VARIANT_OUT_OF_STOCK
			}
			if err := tx.Create(&variant).Error; err != nil {
				return err
			}
			// Tồn kho ban đầu cũng phải có mặt trong sổ kho
			if vi.StockQuantity > 0 {
				invTx := model.InventoryTx{
					VariantID: variant.ID,
					Type:      constants.INVENTORY_RESTOCK,
					Quantity:  vi.StockQuantity,
					Reason:    "Khởi tạo sản phẩm " + product.Name,
					CreatedBy: input.ActorID,
				}
				if err := tx.Create(&invTx).Error; err != nil {
					return err
				}
			}
		}
		return nil
	})
	if err != nil {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_CREATE, err)
	}

	helper.InvalidateProductCache(context.Background())
	db.Preload("Variants").First(&product, product.ID)
	return utils.SuccessResponse(c, fiber.StatusCreated, product)
}

func EditProduct(c *fiber.Ctx) error {
	id, ok := c.Locals("inputId").(int)
	if !ok {
		return utils.ErrorResponse(c, fiber.StatusBadRequest, constants.ERROR_INPUT, errors.New("invalid id"))
	}
	input, ok := c.Locals("inputEditProduct").(model.UpdateProductInput)
	if !ok {
		return utils.ErrorResponse(c, fiber.StatusBadRequest, constants.ERROR_INPUT, errors.New("invalid input"))
	}

	db := database.DB
	var product model.Product
	if err := db.First(&product, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return utils.ErrorResponse(c, fiber.StatusNotFound, "Sản phẩm không tồn tại", err)
		}
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_INTERNAL_ERROR, err)
	}

	err := db.Transaction(func(tx *gorm.DB) error {
		if input.Name != nil && *input.Name != product.Name {
			product.Name = *input.Name
			product.Slug = helper.GenerateUniqueProductSlug(tx, *input.Name)
		}
		if input.Brand != nil {
			product.Brand = *input.Brand
		}
		if input.Description != nil {
			product.Description = *input.Description
		}
		if input.Status != nil {
			product.Status = *input.Status
		}
		if input.ImageUrl != nil {
			product.ImageUrl = *input.ImageUrl
		}
		return tx.Save(&product).Error
	})
	if err != nil {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_EDIT, err)
	}

	helper.InvalidateProductCache(context.Background())
	db.Preload("Variants").First(&product, product.ID)
	return utils.SuccessResponse(c, fiber.StatusOK, product)
}

func DeleteProduct(c *fiber.Ctx) error {
	id, ok := c.Locals("inputId").(int)
	if !ok {
		return utils.ErrorResponse(c, fiber.StatusBadRequest, constants.ERROR_INPUT, errors.New("invalid id"))
	}

	db := database.DB
	var product model.Product
	if err := db.First(&product, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return utils.ErrorResponse(c, fiber.StatusNotFound, "Sản phẩm không tồn tại", err)
		}
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_INTERNAL_ERROR, err)
	}

	// Sản phẩm đã có đơn hàng thì chỉ archive, không xoá
	var orderCount int64
	db.Model(&model.OrderItem{}).
		Joins("JOIN variants ON variants.id = order_items.variant_id").
		Where("variants.product_id = ?", id).
		Count(&orderCount)
	if orderCount > 0 {
		if err := db.Model(&product).Update("status", constants.PRODUCT_ARCHIVED).Error; err != nil {
			return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_DELETE, err)
		}
		helper.InvalidateProductCache(context.Background())
		return utils.SuccessResponse(c, fiber.StatusOK, fiber.Map{"archived": id})
	}

	if err := db.Select("Variants").Delete(&product).Error; err != nil {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_DELETE, err)
	}

	helper.InvalidateProductCache(context.Background())
	return utils.SuccessResponse(c, fiber.StatusOK, fiber.Map{"deleted": id})
}

// EditVariant cập nhật variant; stockQuantity đi qua InventoryService để có sổ kho
func EditVariant(c *fiber.Ctx) error {
	id, ok := c.Locals("inputId").(int)
	if !ok {
		return utils.ErrorResponse(c, fiber.StatusBadRequest, constants.ERROR_INPUT, errors.New("invalid id"))
	}
	input, ok := c.Locals("inputEditVariant").(model.UpdateVariantInput)
	if !ok {
		return utils.ErrorResponse(c, fiber.StatusBadRequest, constants.ERROR_INPUT, errors.New("invalid input"))
	}

	db := database.DB
	var variant model.Variant
	if err := db.First(&variant, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return utils.ErrorResponse(c, fiber.StatusNotFound, "Phiên bản sản phẩm không tồn tại", err)
		}
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_INTERNAL_ERROR, err)
	}

	if input.Name != nil {
		variant.Name = *input.Name
	}
	if input.Color != nil {
		variant.Color = *input.Color
	}
	if input.Capacity != nil {
		variant.Capacity = *input.Capacity
	}
	if input.Price != nil {
		variant.Price = *input.Price
	}
	if input.Status != nil {
		variant.Status = *input.Status
	}
	if input.ImageUrl != nil {
		variant.ImageUrl = *input.ImageUrl
	}
	if err := db.Save(&variant).Error; err != nil {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_EDIT, err)
	}

	if input.StockQuantity != nil {
		if input.ActorID == 0 {
			return utils.ErrorResponse(c, fiber.StatusBadRequest, "Thiếu actorId khi chỉnh tồn kho", fmt.Errorf("missing actorId"))
		}
		updated, err := inventoryService.SetStock(variant.ID, *input.StockQuantity, input.ActorID)
		if err != nil {
			return serviceErrorResponse(c, constants.ERROR_EDIT, err)
		}
		variant = *updated
	}

	helper.InvalidateProductCache(context.Background())
	return utils.SuccessResponse(c, fiber.StatusOK, variant)
}
