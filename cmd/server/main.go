package main

import (
	"log"
	"net/http"

	"hostel-store/internal/config"
	"hostel-store/internal/logger"
	"hostel-store/internal/order"
	"hostel-store/internal/product"
	"hostel-store/internal/remote"
	"hostel-store/internal/user"
	"hostel-store/internal/web"

	"github.com/shopspring/decimal"
	"go.uber.org/zap"
)

func main() {
	cfg := config.LoadConfig()
	logger.Init(cfg.AppEnv)
	defer logger.Sync()

	// The remote service stores price and total as numeric columns.
	decimal.MarshalJSONWithoutQuotes = true

	client := remote.NewClient(cfg.SupabaseURL, cfg.SupabaseAnonKey)

	productSvc := product.NewService(client)
	orderSvc := order.NewService(client)
	userSvc := user.NewService(client)

	registry := web.NewRegistry(client)
	router := web.NewRouter(web.Services{
		Products: productSvc,
		Orders:   orderSvc,
		Users:    userSvc,
	}, registry)

	logger.L().Info("hostel store server running",
		zap.String("port", cfg.AppPort),
		zap.String("env", cfg.AppEnv),
	)
	log.Fatal(http.ListenAndServe(":"+cfg.AppPort, router))
}
