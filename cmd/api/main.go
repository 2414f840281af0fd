package main

import (
	"context"
	"log"
	"os"
	"time"

	"cloud.google.com/go/firestore"
	fbapp "firebase.google.com/go/v4"
	fbauth "firebase.google.com/go/v4/auth"
	"github.com/labstack/echo/v4"
	echomiddleware "github.com/labstack/echo/v4/middleware"
	"google.golang.org/api/option"

	"ludomarket/internal/adapter/api"
	"ludomarket/internal/adapter/api/handler"
	apimiddleware "ludomarket/internal/adapter/api/middleware"
	"ludomarket/internal/adapter/api/router"
	"ludomarket/internal/adapter/repository"
	domainrepo "ludomarket/internal/domain/repository"
	"ludomarket/internal/domain/service"
	"ludomarket/internal/infrastructure/events"
	"ludomarket/internal/usecase"
	"ludomarket/pkg/config"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	ctx := context.Background()

	var (
		gameRepo     domainrepo.GameRepository
		instanceRepo domainrepo.InstanceRepository
		listingRepo  domainrepo.ListingRepository
		ledgerRepo   domainrepo.LedgerRepository
		walletRepo   domainrepo.WalletRepository
		authClient   *fbauth.Client
	)

	switch cfg.StorageDriver {
	case "firestore":
		var opt option.ClientOption
		if serviceAccountJSON := os.Getenv("FIREBASE_SERVICE_ACCOUNT_JSON"); serviceAccountJSON != "" {
			opt = option.WithCredentialsJSON([]byte(serviceAccountJSON))
		} else if serviceAccountPath := os.Getenv("FIREBASE_SERVICE_ACCOUNT_PATH"); serviceAccountPath != "" {
			opt = option.WithCredentialsFile(serviceAccountPath)
		} else {
			log.Fatalf("Firestore driver needs FIREBASE_SERVICE_ACCOUNT_JSON or FIREBASE_SERVICE_ACCOUNT_PATH")
		}

		firebaseApp, err := fbapp.NewApp(ctx, &fbapp.Config{ProjectID: cfg.FirebaseProject}, opt)
		if err != nil {
			log.Fatalf("Failed to initialize Firebase: %v", err)
		}

		authClient, err = firebaseApp.Auth(ctx)
		if err != nil {
			log.Fatalf("Failed to initialize Firebase Auth: %v", err)
		}

		firestoreClient, err := firestore.NewClient(ctx, cfg.FirebaseProject, opt)
		if err != nil {
			log.Fatalf("Failed to create Firestore client: %v", err)
		}
		defer firestoreClient.Close()

		gameRepo = repository.NewFirestoreGameRepository(firestoreClient)
		instanceRepo = repository.NewFirestoreInstanceRepository(firestoreClient)
		listingRepo = repository.NewFirestoreListingRepository(firestoreClient)
		ledgerRepo = repository.NewFirestoreLedgerRepository(firestoreClient)
		walletRepo = repository.NewFirestoreWalletRepository(firestoreClient)

	case "memory":
		store := repository.NewMemoryStore()
		gameRepo = repository.NewMemoryGameRepository(store)
		instanceRepo = repository.NewMemoryInstanceRepository(store)
		listingRepo = repository.NewMemoryListingRepository(store)
		ledgerRepo = repository.NewMemoryLedgerRepository(store)
		walletRepo = repository.NewMemoryWalletRepository(store)
		log.Printf("Using in-memory store; identities come from the X-Address header")

	default:
		log.Fatalf("Unknown storage driver: %s", cfg.StorageDriver)
	}

	hub := events.NewHub()
	hub.Start(ctx)

	capabilities := service.NewCapabilityAuthority(cfg.CapabilitySecret)
	pricing := service.NewFixedRatePricing(cfg.TokenScale)
	locks := usecase.NewOpLocks()

	catalogUseCase := usecase.NewCatalogUseCase(gameRepo, walletRepo, ledgerRepo, capabilities, pricing, hub, locks, cfg.SubmissionFeeUSD)
	purchaseUseCase := usecase.NewPurchaseUseCase(gameRepo, instanceRepo, walletRepo, ledgerRepo, pricing, hub, locks, cfg.PurchaseFeeBP)
	activationUseCase := usecase.NewActivationUseCase(gameRepo, instanceRepo, locks)
	resaleUseCase := usecase.NewResaleUseCase(gameRepo, instanceRepo, listingRepo, walletRepo, ledgerRepo, pricing, hub, locks)
	walletUseCase := usecase.NewWalletUseCase(walletRepo)
	payoutUseCase := usecase.NewPayoutUseCase(gameRepo, walletRepo, ledgerRepo, capabilities, hub, locks, cfg.MarketplaceID)

	handler.Setup(catalogUseCase, purchaseUseCase, activationUseCase, resaleUseCase, walletUseCase, payoutUseCase)

	// The platform capability is issued once, at boot, for the operator.
	platformCapability, err := capabilities.Issue(service.CapabilityPlatform, cfg.MarketplaceID)
	if err != nil {
		log.Fatalf("Failed to issue platform capability: %v", err)
	}
	if cfg.Environment == "development" {
		log.Printf("Platform capability: %s", platformCapability)
	}

	e := echo.New()

	e.Use(echomiddleware.Logger())
	e.Use(echomiddleware.Recover())
	e.Use(echomiddleware.CORS())

	e.Validator = api.NewValidator()

	authMiddleware := apimiddleware.NewAuthMiddleware(authClient)
	rateLimiter := apimiddleware.NewRateLimiter(30, time.Minute)

	router.Setup(e, authMiddleware, rateLimiter)

	eventsHandler := handler.NewEventsHandler(hub)
	e.GET("/v1/events", eventsHandler.Stream)

	log.Printf("Starting server on port %s", cfg.ServerPort)
	if err := e.Start(":" + cfg.ServerPort); err != nil {
		log.Fatalf("Server stopped: %v", err)
	}
}
