package main

import (
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"time"

	"docdispatch/cmd"
	httpadapter "docdispatch/internal/adapters/in/http"
	"docdispatch/internal/adapters/out/notify"
	"docdispatch/internal/adapters/out/postgres/delegaterepo"
	"docdispatch/internal/adapters/out/postgres/invoicerepo"
	"docdispatch/internal/adapters/out/postgres/orderrepo"
	"docdispatch/internal/adapters/out/storage"
	"docdispatch/internal/core/ports"
	"docdispatch/internal/jobs"

	"github.com/joho/godotenv"
	"github.com/labstack/echo/v4"
	"github.com/streadway/amqp"
	gormpostgres "gorm.io/driver/postgres"
	"gorm.io/gorm"
)

const defaultInvoiceExpiryWindow = 48 * time.Hour

func main() {
	logger := slog.New(slog.NewJSONHandler(os.Stdout, nil))
	configs := getConfigs()

	gormDB, err := openDB(configs)
	if err != nil {
		logger.Error("failed to connect to database", "error", err)
		os.Exit(1)
	}

	if err := gormDB.AutoMigrate(
		&orderrepo.OrderDTO{}, &invoicerepo.InvoiceDTO{}, &delegaterepo.DelegateDTO{},
	); err != nil {
		logger.Error("failed to migrate database schema", "error", err)
		os.Exit(1)
	}

	notifier, closeNotifier, err := buildNotifier(configs, logger)
	if err != nil {
		logger.Error("failed to connect to message broker", "error", err)
		os.Exit(1)
	}
	defer closeNotifier()

	mediaStorage, err := storage.NewFilesystemMediaStorage(configs.MediaDir)
	if err != nil {
		logger.Error("failed to prepare media storage", "error", err)
		os.Exit(1)
	}

	root := cmd.NewCompositionRoot(configs, gormDB, notifier, mediaStorage, logger)

	jobManager := jobs.NewJobManager(
		root.CreateDispatchPendingOrdersCommandHandler(),
		root.CreateExpireInvoicesCommandHandler(),
		invoiceExpiryWindow(configs, logger),
		logger,
	)
	if err := jobManager.StartAll(); err != nil {
		logger.Error("failed to start background jobs", "error", err)
		os.Exit(1)
	}
	defer jobManager.StopAll()

	startWebServer(&root, configs.HTTPPort)
}

func getConfigs() cmd.Config {
	config := cmd.Config{
		HTTPPort:            goDotEnvVariable("HTTP_PORT"),
		DBHost:              goDotEnvVariable("DB_HOST"),
		DBPort:              goDotEnvVariable("DB_PORT"),
		DBUser:              goDotEnvVariable("DB_USER"),
		DBPassword:          goDotEnvVariable("DB_PASSWORD"),
		DBName:              goDotEnvVariable("DB_NAME"),
		DBSslMode:           goDotEnvVariable("DB_SSLMODE"),
		AmqpURL:             goDotEnvVariable("AMQP_URL"),
		AmqpNotifyQueue:     goDotEnvVariable("AMQP_NOTIFY_QUEUE"),
		MediaDir:            goDotEnvVariable("MEDIA_DIR"),
		InvoiceExpiryWindow: goDotEnvVariable("INVOICE_EXPIRY_WINDOW"),
	}
	return config
}

func goDotEnvVariable(key string) string {
	_ = godotenv.Load(".env")
	return os.Getenv(key)
}

func openDB(configs cmd.Config) (*gorm.DB, error) {
	dsn := fmt.Sprintf("host=%s port=%s user=%s password=%s dbname=%s sslmode=%s",
		configs.DBHost, configs.DBPort, configs.DBUser,
		configs.DBPassword, configs.DBName, configs.DBSslMode)
	return gorm.Open(gormpostgres.Open(dsn), &gorm.Config{})
}

// buildNotifier connects the AMQP notifier when a broker URL is configured and
// falls back to log-only notifications otherwise.
func buildNotifier(configs cmd.Config, logger *slog.Logger) (ports.Notifier, func(), error) {
	if configs.AmqpURL == "" {
		logger.Info("no AMQP URL configured, notifications will only be logged")
		return notify.NewLogNotifier(logger), func() {}, nil
	}

	conn, err := amqp.Dial(configs.AmqpURL)
	if err != nil {
		return nil, nil, err
	}

	notifier, err := notify.NewAmqpNotifier(conn, configs.AmqpNotifyQueue, logger)
	if err != nil {
		_ = conn.Close()
		return nil, nil, err
	}

	return notifier, func() {
		_ = notifier.Close()
		_ = conn.Close()
	}, nil
}

func invoiceExpiryWindow(configs cmd.Config, logger *slog.Logger) time.Duration {
	if configs.InvoiceExpiryWindow == "" {
		return defaultInvoiceExpiryWindow
	}

	window, err := time.ParseDuration(configs.InvoiceExpiryWindow)
	if err != nil || window <= 0 {
		logger.Warn("invalid invoice expiry window, using default",
			"value", configs.InvoiceExpiryWindow, "default", defaultInvoiceExpiryWindow.String())
		return defaultInvoiceExpiryWindow
	}
	return window
}

func startWebServer(root *cmd.CompositionRoot, port string) {
	e := echo.New()
	e.GET("/health", func(c echo.Context) error {
		return c.String(http.StatusOK, "Healthy")
	})

	server := httpadapter.NewServer(httpadapter.ServerParams{
		CreateInvoiceHandler:   root.CreateCreateInvoiceCommandHandler(),
		ConfirmPaymentHandler:  root.CreateConfirmPaymentCommandHandler(),
		CreateDelegateHandler:  root.CreateCreateDelegateCommandHandler(),
		AssignDelegateHandler:  root.CreateAssignDelegateCommandHandler(),
		StartProcessingHandler: root.CreateStartProcessingCommandHandler(),
		DeliveryInfoHandler:    root.CreateProvideDeliveryInfoCommandHandler(),
		MarkReadyHandler:       root.CreateMarkReadyCommandHandler(),
		ShipOrderHandler:       root.CreateShipOrderCommandHandler(),
		AssignCourierHandler:   root.CreateAssignCourierCommandHandler(),
		HandOffHandler:         root.CreateHandOffCommandHandler(),
		ConfirmDeliveryHandler: root.CreateConfirmDeliveryCommandHandler(),
		CompleteOrderHandler:   root.CreateCompleteOrderCommandHandler(),
		CancelOrderHandler:     root.CreateCancelOrderCommandHandler(),
		ForceAssignHandler:     root.CreateForceAssignCommandHandler(),
		ForceAdvanceHandler:    root.CreateForceAdvanceCommandHandler(),

		UncompletedOrdersHandler: root.CreateGetUncompletedOrdersQueryHandler(),
		DelegateBoardHandler:     root.CreateGetDelegateBoardQueryHandler(),

		MediaStorage: root.MediaStorage(),
	})
	server.RegisterRoutes(e)

	e.Logger.Fatal(e.Start(fmt.Sprintf("0.0.0.0:%s", port)))
}
