package main

import (
	"context"
	"log"
	"net/http"
	"os"

	"github.com/go-chi/chi/v5"
	chimiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"github.com/joho/godotenv"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/gestorx/vendas-api/internal/infra/database"
	"github.com/gestorx/vendas-api/internal/infra/http/handlers"
	"github.com/gestorx/vendas-api/internal/infra/http/middleware"
	"github.com/gestorx/vendas-api/internal/infra/mail"
	"github.com/gestorx/vendas-api/internal/infra/queue"
	"github.com/gestorx/vendas-api/internal/usecase"
)

func main() {
	godotenv.Load()

	mongoClient, db, err := database.NewMongoConnection(
		os.Getenv("MONGO_URI"),
		envOr("MONGO_DB", "gestorvendas"),
	)
	if err != nil {
		log.Fatal(err)
	}
	defer mongoClient.Disconnect(context.Background())

	rabbitMQ, err := queue.NewRabbitMQ(
		envOr("RABBIT_USER", "user"),
		envOr("RABBIT_PASS", "password"),
		envOr("RABBIT_HOST", "localhost"),
		envOr("RABBIT_PORT", "5672"),
	)
	if err != nil {
		panic(err)
	}
	defer rabbitMQ.Conn.Close()
	defer rabbitMQ.Ch.Close()

	// 1. Repositórios
	saleRepo := database.NewSaleRepository(db)
	productRepo := database.NewProductRepository(db)
	prospectionRepo := database.NewProspectionRepository(db)
	userRepo := database.NewUserRepository(db)
	notificationRepo := database.NewNotificationRepository(db)
	loginHistoryRepo := database.NewLoginHistoryRepository(db)

	// 2. Fila e e-mail
	producer := queue.NewProducer(rabbitMQ.Conn, rabbitMQ.Ch)
	mailSender := mail.NewEmailSender(
		os.Getenv("MAIL_HOST"), 587, os.Getenv("MAIL_USER"), os.Getenv("MAIL_PASS"),
	)

	// 3. Worker (consome a fila, grava a notificação e envia o e-mail)
	worker := queue.NewWorker(rabbitMQ.Ch, notificationRepo, userRepo, mailSender)
	worker.OnMailErr = middleware.RecordNotificationEmailError
	go worker.Start(queue.QueueName)

	// 4. UseCases
	createSaleUC := usecase.NewCreateSaleUseCase(saleRepo, producer)
	updateSaleUC := usecase.NewUpdateSaleUseCase(saleRepo, producer)
	listSalesUC := usecase.NewListSalesUseCase(saleRepo)
	dashboardUC := usecase.NewDashboardUseCase(saleRepo)
	listCustomersUC := usecase.NewListCustomersUseCase(saleRepo, userRepo, productRepo)
	captureProspectionUC := usecase.NewCaptureProspectionUseCase(prospectionRepo)
	convertProspectionUC := usecase.NewConvertProspectionUseCase(prospectionRepo, createSaleUC)
	recordLoginUC := usecase.NewRecordLoginUseCase(loginHistoryRepo)

	// 5. Handlers
	saleHandler := handlers.NewSaleHandler(createSaleUC, updateSaleUC, listSalesUC, saleRepo)
	dashboardHandler := handlers.NewDashboardHandler(dashboardUC)
	customerHandler := handlers.NewCustomerHandler(listCustomersUC)
	prospectionHandler := handlers.NewProspectionHandler(captureProspectionUC, convertProspectionUC, prospectionRepo)
	productHandler := handlers.NewProductHandler(productRepo)
	userHandler := handlers.NewUserHandler(userRepo)
	notificationHandler := handlers.NewNotificationHandler(notificationRepo)
	loginHistoryHandler := handlers.NewLoginHistoryHandler(recordLoginUC, loginHistoryRepo)
	healthHandler := handlers.NewHealthHandler(mongoClient, rabbitMQ.Conn)

	// 6. Router
	r := chi.NewRouter()
	r.Use(chimiddleware.Logger)
	r.Use(middleware.Metrics)
	r.Use(cors.Handler(cors.Options{
		AllowedOrigins: []string{"http://localhost:5173", "*"},
		AllowedMethods: []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
	}))

	r.Post("/sales", saleHandler.HandleCreate)
	r.Get("/sales", saleHandler.HandleList)
	r.Get("/sales/{id}", saleHandler.HandleGet)
	r.Put("/sales/{id}", saleHandler.HandleUpdate)
	r.Delete("/sales/{id}", saleHandler.HandleDelete)

	r.Get("/dashboard/metrics", dashboardHandler.HandleMetrics)
	r.Get("/dashboard/series", dashboardHandler.HandleSeries)
	r.Get("/customers", customerHandler.HandleList)

	r.Post("/prospections", prospectionHandler.HandleCapture)
	r.Get("/prospections", prospectionHandler.HandleList)
	r.Post("/prospections/{id}/convert", prospectionHandler.HandleConvert)
	r.Delete("/prospections/{id}", prospectionHandler.HandleDelete)

	r.Post("/products", productHandler.HandleCreate)
	r.Get("/products", productHandler.HandleList)
	r.Put("/products/{id}", productHandler.HandleUpdate)
	r.Delete("/products/{id}", productHandler.HandleDelete)

	r.Post("/users", userHandler.HandleCreate)
	r.Get("/users", userHandler.HandleList)
	r.Put("/users/{id}", userHandler.HandleUpdate)
	r.Delete("/users/{id}", userHandler.HandleDeactivate)

	r.Get("/notifications", notificationHandler.HandleListByUser)
	r.Post("/notifications/{id}/read", notificationHandler.HandleMarkRead)
	r.Delete("/notifications/{id}", notificationHandler.HandleDelete)

	r.Post("/login-history", loginHistoryHandler.HandleRecord)
	r.Get("/login-history", loginHistoryHandler.HandleListByUser)

	r.Get("/health", healthHandler.Handle)
	r.Handle("/metrics", promhttp.Handler())

	port := ":8080"
	log.Printf("🔥 Gestor de Vendas API rodando na porta %s", port)
	http.ListenAndServe(port, r)
}

func envOr(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}
