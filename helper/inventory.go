package helper

import (
	"log"
	"time"

	"phone_store/database"
	"phone_store/service"

	"github.com/go-co-op/gocron/v2"
)

var inventoryScheduler gocron.Scheduler

// ReconcileInventory đối soát sổ kho với counter tồn kho, chỉ log cảnh báo
func ReconcileInventory() {
	log.Println("[CRON] ReconcileInventory triggered")

	svc := service.InventoryService{DB: database.DB}
	drifts, err := svc.Reconcile()
	if err != nil {
		log.Printf("Lỗi đối soát kho: %v", err)
		return
	}
	if len(drifts) == 0 {
		log.Println("Đối soát kho: khớp toàn bộ")
		return
	}
	for _, d := range drifts {
		log.Printf("Lệch kho variant %d: sổ kho %d, counter %d", d.VariantID, d.LedgerTotal, d.StockQuantity)
	}
}

func StartInventoryReconcileScheduler() {
	s, err := gocron.NewScheduler(
		gocron.WithLocation(time.FixedZone("ICT", 7*3600)),
	)
	if err != nil {
		log.Fatal(err)
	}

	inventoryScheduler = s

	_, err = s.NewJob(
		gocron.DailyJob(
			1,
			gocron.NewAtTimes(
				gocron.NewAtTime(0, 30, 0),
			),
		),
		gocron.NewTask(ReconcileInventory),
	)
	if err != nil {
		log.Fatal(err)
	}

	s.Start()
	log.Println("✅ Inventory reconcile scheduler started (00:30 ICT)")
}

func StopInventoryReconcileScheduler() {
	if inventoryScheduler != nil {
		_ = inventoryScheduler.Shutdown()
	}
}
