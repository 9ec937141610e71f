package helper

import (
	"context"
	"encoding/json"
	"log"
	"time"

	"phone_store/config"
	"phone_store/constants"
	"phone_store/database"
	"phone_store/model"

	"github.com/redis/go-redis/v9"
	"github.com/robfig/cron/v3"
)

var RedisClient *redis.Client

var catalogCron *cron.Cron

const productListCacheKey = "catalog:products"
const productListCacheTTL = 5 * time.Minute

func InitRedis() {
	RedisClient = redis.NewClient(&redis.Options{
		Addr: config.ConfigDefault("REDIS_ADDR", "localhost:6379"),
	})
}

// GetCachedProductList đọc danh sách sản phẩm từ cache, miss thì trả nil
func GetCachedProductList(ctx context.Context) []model.Product {
	if RedisClient == nil {
		return nil
	}
	raw, err := RedisClient.Get(ctx, productListCacheKey).Bytes()
	if err != nil {
		return nil
	}
	var products []model.Product
	if err := json.Unmarshal(raw, &products); err != nil {
		return nil
	}
	return products
}

func SetCachedProductList(ctx context.Context, products []model.Product) {
	if RedisClient == nil {
		return
	}
	raw, err := json.Marshal(products)
	if err != nil {
		return
	}
	if err := RedisClient.Set(ctx, productListCacheKey, raw, productListCacheTTL).Err(); err != nil {
		log.Printf("Lỗi ghi cache sản phẩm: %v", err)
	}
}

// InvalidateProductCache gọi sau mọi thao tác ghi lên catalog
func InvalidateProductCache(ctx context.Context) {
	if RedisClient == nil {
		return
	}
	if err := RedisClient.Del(ctx, productListCacheKey).Err(); err != nil {
		log.Printf("Lỗi xoá cache sản phẩm: %v", err)
	}
}

func refreshProductCache() {
	var products []model.Product
	if err := database.DB.Preload("Variants").Where("status = ?", constants.PRODUCT_ACTIVE).Find(&products).Error; err != nil {
		log.Printf("Lỗi làm mới cache sản phẩm: %v", err)
		return
	}
	SetCachedProductList(context.Background(), products)
}

// StartCatalogCacheScheduler làm ấm lại cache danh sách sản phẩm định kỳ
func StartCatalogCacheScheduler() {
	catalogCron = cron.New(cron.WithChain(
		cron.SkipIfStillRunning(cron.DefaultLogger),
	))

	_, err := catalogCron.AddFunc("*/5 * * * *", refreshProductCache)
	if err != nil {
		log.Printf("Lỗi khởi tạo scheduler cache: %v", err)
		return
	}

	catalogCron.Start()
	log.Println("Scheduler cache sản phẩm đã khởi động (mỗi 5 phút)")
}

func StopCatalogCacheScheduler() {
	if catalogCron != nil {
		catalogCron.Stop()
		log.Println("Scheduler cache sản phẩm đã dừng")
	}
}
