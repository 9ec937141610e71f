package database

import (
	"fmt"
	"log"

	"phone_store/constants"
	"phone_store/model"

	"github.com/gosimple/slug"
	"gorm.io/gorm"
)

func SeedData(db *gorm.DB) {
	roles := []model.Role{
		{Name: constants.ROLE_CUSTOMER, Permissions: []string{"buy_products"}, Description: "Standard user"},
		{Name: constants.ROLE_STAFF, Permissions: []string{"manage_orders"}, Description: "Staff member"},
		{Name: constants.ROLE_ADMIN, Permissions: []string{"manage_all"}, Description: "Administrator"},
		{Name: constants.ROLE_GUEST, Permissions: []string{"view_products"}, Description: "Guest visitor"},
	}
	roleIds := map[string]uint{}
	for _, role := range roles {
		if err := db.Where(model.Role{Name: role.Name}).FirstOrCreate(&role).Error; err != nil {
			log.Println("failed to seed role:", role.Name, "error:", err)
			continue
		}
		roleIds[role.Name] = role.ID
	}

	users := []model.User{
		{FullName: "Admin User", Email: "admin@demo.com", RoleID: roleIds[constants.ROLE_ADMIN]},
		{FullName: "Le Thi Staff", Email: "staff@demo.com", RoleID: roleIds[constants.ROLE_STAFF]},
	}

	customerNames := []string{"Hao Sao", "Ko Pin Duy", "Manh Gay", "Trinh Gia Man", "OOOAD"}
	customerEmails := []string{"hs@demo.com", "kpd@demo.com", "mg@demo.com", "tgm@demo.com", "oo@demo.com"}
	for i := range customerNames {
		users = append(users, model.User{
			FullName: customerNames[i],
			Email:    customerEmails[i],
			RoleID:   roleIds[constants.ROLE_CUSTOMER],
		})
	}

	for _, user := range users {
		if err := db.Where(model.User{Email: user.Email}).FirstOrCreate(&user).Error; err != nil {
			log.Println("failed to seed user:", user.Email, "error:", err)
			continue
		}
		if user.RoleID != roleIds[constants.ROLE_CUSTOMER] {
			continue
		}

		// Mỗi khách 2 địa chỉ, một mặc định
		var count int64
		db.Model(&model.Address{}).Where("user_id = ?", user.ID).Count(&count)
		if count > 0 {
			continue
		}
		addresses := []model.Address{
			{
				UserID:        user.ID,
				RecipientName: user.FullName,
				PhoneNumber:   fmt.Sprintf("090%07d", user.ID*1111111%10000000),
				Line1:         fmt.Sprintf("%d Nguyễn Trãi", 10+user.ID),
				Ward:          "Phường 5",
				District:      "Quận 1",
				Province:      "Hồ Chí Minh",
				IsDefault:     true,
			},
			{
				UserID:        user.ID,
				RecipientName: user.FullName,
				PhoneNumber:   fmt.Sprintf("091%07d", user.ID*2222222%10000000),
				Line1:         fmt.Sprintf("%d Láng Hạ", 20+user.ID),
				Ward:          "Phường 7",
				District:      "Đống Đa",
				Province:      "Hà Nội",
				IsDefault:     false,
			},
		}
		for _, address := range addresses {
			if err := db.Create(&address).Error; err != nil {
				log.Println("failed to seed address for:", user.Email, "error:", err)
			}
		}
	}

	type variantSeed struct {
		Name          string
		Color         string
		Capacity      string
		Price         float64
		StockQuantity int
		ImageUrl      string
	}
	type productSeed struct {
		Name        string
		Brand       string
		Description string
		ImageUrl    string
		Variants    []variantSeed
	}

	products := []productSeed{
		{
			Name:        "iPhone 15 Pro",
			Brand:       "Apple",
			Description: "The ultimate iPhone. Titanium design. A17 Pro chip.",
			ImageUrl:    "https://images.macrumors.com/article-new/2023/09/iphone-15-pro-gray.jpg",
			Variants: []variantSeed{
				{Name: "128GB - Natural Titanium", Color: "Natural Titanium", Capacity: "128GB", Price: 999, StockQuantity: 25},
				{Name: "256GB - Blue Titanium", Color: "Blue Titanium", Capacity: "256GB", Price: 1099, StockQuantity: 15},
				{Name: "512GB - Black Titanium", Color: "Black Titanium", Capacity: "512GB", Price: 1299, StockQuantity: 10},
			},
		},
		{
			Name:        "Samsung Galaxy S24 Ultra",
			Brand:       "Samsung",
			Description: "Galaxy AI is here. Epic surfing, searching, and translation.",
			ImageUrl:    "https://tse4.mm.bing.net/th/id/OIP.hQVUtnziJeAuUtTx-BKDHQHaFj",
			Variants: []variantSeed{
				{Name: "256GB - Titanium Black", Color: "Titanium Black", Capacity: "256GB", Price: 1299, StockQuantity: 30},
				{Name: "512GB - Titanium Violet", Color: "Titanium Violet", Capacity: "512GB", Price: 1419, StockQuantity: 12},
				{Name: "1TB - Titanium Gray", Color: "Titanium Gray", Capacity: "1TB", Price: 1599, StockQuantity: 5},
			},
		},
		{
			Name:        "Xiaomi 14 Ultra",
			Brand:       "Xiaomi",
			Description: "Lens to Legend. Leica Summilux optical lens.",
			ImageUrl:    "https://i02.appmifile.com/334_operator_sg/22/02/2024/d36105f6de5a716a1c0737352c2827be.png",
			Variants: []variantSeed{
				{Name: "512GB - Black", Color: "Black", Capacity: "512GB", Price: 1199, StockQuantity: 20},
				{Name: "512GB - White", Color: "White", Capacity: "512GB", Price: 1199, StockQuantity: 15},
			},
		},
		{
			Name:        "Sony Xperia 1 VI",
			Brand:       "Sony",
			Description: "The master of photography and entertainment.",
			ImageUrl:    "https://cdn.mos.cms.futurecdn.net/cWG2kiVg3uSeHQKzHuY8wK.jpg",
			Variants: []variantSeed{
				{Name: "256GB - Platinum Silver", Color: "Platinum Silver", Capacity: "256GB", Price: 1399, StockQuantity: 8},
				{Name: "512GB - Khaki Green", Color: "Khaki Green", Capacity: "512GB", Price: 1499, StockQuantity: 4},
			},
		},
		{
			Name:        "Oppo Find X7 Ultra",
			Brand:       "Oppo",
			Description: "The first quad-camera system with dual periscope lenses.",
			ImageUrl:    "https://www.vopmart.com/media/wysiwyg/OPPO/oppo-find-x7-ultra-02.jpg",
			Variants: []variantSeed{
				{Name: "256GB - Ocean Blue", Color: "Ocean Blue", Capacity: "256GB", Price: 999, StockQuantity: 15},
				{Name: "512GB - Sepia Brown", Color: "Sepia Brown", Capacity: "512GB", Price: 1099, StockQuantity: 8},
			},
		},
	}

	for _, p := range products {
		product := model.Product{
			Name:        p.Name,
			Slug:        slug.Make(p.Name),
			Brand:       p.Brand,
			Description: p.Description,
			Status:      constants.PRODUCT_ACTIVE,
			ImageUrl:    p.ImageUrl,
		}
		if err := db.Where(model.Product{Slug: product.Slug}).FirstOrCreate(&product).Error; err != nil {
			log.Println("failed to seed product:", p.Name, "error:", err)
			continue
		}

		var variantCount int64
		db.Model(&model.Variant{}).Where("product_id = ?", product.ID).Count(&variantCount)
		if variantCount > 0 {
			continue
		}

		for _, v := range p.Variants {
			status := constants.VARIANT_IN_STOCK
			if v.StockQuantity == 0 {
				status = constants.VARIANT_OUT_OF_STOCK
			}
			variant := model.Variant{
				ProductID:     product.ID,
				Name:          v.Name,
				Color:         v.Color,
				Capacity:      v.Capacity,
				Price:         v.Price,
				StockQuantity: v.StockQuantity,
				Status:        status,
				ImageUrl:      v.ImageUrl,
			}
			if err := db.Create(&variant).Error; err != nil {
				log.Println("failed to seed variant:", v.Name, "error:", err)
				continue
			}
			// Tồn kho khởi tạo cũng có mặt trong sổ kho
			if v.StockQuantity > 0 {
				invTx := model.InventoryTx{
					VariantID: variant.ID,
					Type:      constants.INVENTORY_RESTOCK,
					Quantity:  v.StockQuantity,
					Reason:    "Initial stock load",
				}
				if err := db.Create(&invTx).Error; err != nil {
					log.Println("failed to seed inventory tx for:", v.Name, "error:", err)
				}
			}
		}
	}

	log.Println("Seed data completed")
}
