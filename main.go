package main

import (
	"context"
	"log"
	"time"

	"github.com/gin-gonic/gin"

	"marketplace-payout-api/internal/config"
	"marketplace-payout-api/internal/dal"
	"marketplace-payout-api/internal/handler"
	"marketplace-payout-api/internal/idgen"
	"marketplace-payout-api/internal/middleware"
	"marketplace-payout-api/internal/mq"
	"marketplace-payout-api/internal/scheduler"
	"marketplace-payout-api/internal/service"
)

func main() {
	// load config env
	config.Init()

	// init infra
	dal.InitDB()
	dal.InitRedis()
	dal.InitRabbitMQ()

	// idgen: one node per id space
	idgen.Init(1)
	if err := idgen.InitNode("order", 1); err != nil {
		log.Fatal(err)
	}
	if err := idgen.InitNode("payout", 2); err != nil {
		log.Fatal(err)
	}
	if err := idgen.InitNode("batch", 3); err != nil {
		log.Fatal(err)
	}

	// start consumers
	go mq.StartConsumers()

	// periodic payout batching
	if config.C.Payout.SchedulerEnabled {
		sched := scheduler.NewBatchScheduler(
			service.NewPayoutBatchService(),
			time.Duration(config.C.Payout.BatchIntervalSec)*time.Second,
		)
		go sched.Run(context.Background())
	}

	// http server
	if config.C.Server.Mode != "debug" {
		gin.SetMode(gin.ReleaseMode)
	}
	r := gin.New()
	r.Use(middleware.Recover(), middleware.RequestLogger())

	v1 := r.Group("/api/v1")
	{
		fh := handler.NewFeeHandler()
		v1.POST("/fees/quote", fh.Quote)

		oh := handler.NewOrderHandler()
		v1.POST("/orders", middleware.AuthHMAC(), oh.Create)
		v1.POST("/orders/:id/complete", middleware.AuthHMAC(), oh.Complete)

		bh := handler.NewPayoutBatchHandler()
		v1.POST("/payout-batches", middleware.AuthHMAC(), bh.CreateBatch)
		v1.POST("/payout-batches/:id/confirm", middleware.AuthHMAC(), bh.Confirm)
		v1.POST("/payout-batches/:id/fail", middleware.AuthHMAC(), bh.Fail)
		v1.GET("/payout-batches/:id", bh.Status)
		v1.GET("/payout-batches/:id/export.csv", bh.Export)
		v1.POST("/payouts/:id/requeue", middleware.AuthHMAC(), bh.Requeue)
	}

	addr := ":" + config.C.Server.Port
	log.Printf("listening %s", addr)
	if err := r.Run(addr); err != nil {
		log.Fatal(err)
	}
}
