package main

import (
	"context"
	"net/http"
	"os"

	"go.opentelemetry.io/otel"
	stdouttrace "go.opentelemetry.io/otel/exporters/stdout/stdouttrace"
	sdktrace "go.opentelemetry.io/otel/sdk/trace"
	"go.uber.org/zap"

	"foodorders/pkg/logger"
	"foodorders/pkg/meal"
	"foodorders/pkg/metrics"
	"foodorders/pkg/order/file"
	"foodorders/pkg/server"
)

// @title FoodOrders API
// @version 1.0
// @description Food-ordering API: meals catalog and order management
// @host localhost:3000
// @BasePath /
func main() {
	logger.Init()
	defer logger.Sync()

	exp, err := stdouttrace.New(stdouttrace.WithPrettyPrint())
	if err != nil {
		logger.Log.Fatal("init tracing", zap.Error(err))
	}
	tp := sdktrace.NewTracerProvider(sdktrace.WithBatcher(exp))
	otel.SetTracerProvider(tp)
	defer tp.Shutdown(context.Background())

	srv := server.New(server.Config{
		Log:       logger.Log,
		Orders:    file.New(getenv("ORDERS_FILE", "data/orders.json")),
		Meals:     meal.NewCatalog(getenv("MEALS_FILE", "data/available-meals.json")),
		Tracer:    tp.Tracer("foodorders"),
		Metrics:   metrics.New(),
		PublicDir: getenv("PUBLIC_DIR", "public"),
	})

	addr := ":" + getenv("PORT", "3000")
	logger.Log.Info("listening", zap.String("addr", addr))
	if err := http.ListenAndServe(addr, srv.Handler()); err != nil {
		logger.Log.Fatal("server closed", zap.Error(err))
	}
}

func getenv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}
