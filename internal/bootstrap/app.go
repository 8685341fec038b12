package bootstrap

import (
	"context"
	"database/sql"
	"fmt"
	"log"
	"strings"

	"github.com/gin-gonic/gin"

	"resume-extractor/internal/records"
	"resume-extractor/internal/services/health"
	"resume-extractor/internal/shared/config"
	"resume-extractor/internal/shared/server"
	"resume-extractor/internal/shared/storage/db"
	"resume-extractor/internal/shared/storage/object"
	localstore "resume-extractor/internal/shared/storage/object/local"
	s3store "resume-extractor/internal/shared/storage/object/s3"
)

// App holds shared dependencies.
type App struct {
	Config         config.Config
	Router         *gin.Engine
	DB             *sql.DB
	Archive        object.ObjectStore
	RecordStore    records.Store
	RecordsService *records.Service
	RecordsHandler *records.Handler
}

// Build prepares dependencies and wires routes.
func Build(ctx context.Context, cfg config.Config) (*App, error) {
	app, err := BuildCore(ctx, cfg, db.DefaultServerOptions())
	if err != nil {
		return nil, err
	}
	app.RecordsHandler = records.NewHandler(app.RecordsService)
	app.Router = server.NewRouter(server.RouterDeps{
		Config:   app.Config,
		Health:   health.NewService(app.Config.RecordStore, app.DB),
		Handlers: []server.RouteRegistrar{app.RecordsHandler},
	})
	return app, nil
}

// BuildCore prepares the record service without any HTTP surface.
func BuildCore(ctx context.Context, cfg config.Config, dbOpts db.Options) (*App, error) {
	if strings.TrimSpace(cfg.Env) == "" {
		cfg.Env = "dev"
	}

	ruleSet, err := cfg.Rules()
	if err != nil {
		return nil, fmt.Errorf("load rules: %w", err)
	}

	app := &App{Config: cfg}

	store, sqlDB, err := buildRecordStore(ctx, cfg, dbOpts)
	if err != nil {
		return nil, err
	}
	app.RecordStore = store
	app.DB = sqlDB

	archive, err := buildArchive(ctx, cfg)
	if err != nil {
		app.Close()
		return nil, err
	}
	app.Archive = archive

	app.RecordsService = &records.Service{
		Builder:  records.NewBuilder(ruleSet),
		Store:    store,
		Archive:  archive,
		MaxBytes: cfg.MaxUploadBytes,
	}
	return app, nil
}

// Close releases the database pool, if any.
func (a *App) Close() {
	if a == nil || a.DB == nil {
		return
	}
	if err := a.DB.Close(); err != nil {
		log.Printf("bootstrap: close database: %v", err)
	}
}

func buildRecordStore(ctx context.Context, cfg config.Config, opts db.Options) (records.Store, *sql.DB, error) {
	if cfg.RecordStore != "postgres" {
		return records.NewFileStore(cfg.RecordLogPath), nil, nil
	}
	if strings.TrimSpace(cfg.DatabaseURL) == "" {
		return nil, nil, fmt.Errorf("RECORD_STORE=postgres requires DATABASE_URL")
	}

	sqlDB, err := db.Connect(ctx, cfg.DatabaseURL, db.OptionsFromEnv(opts))
	if err != nil {
		return nil, nil, err
	}
	if err := db.RunMigrations(ctx, sqlDB); err != nil {
		_ = sqlDB.Close()
		return nil, nil, fmt.Errorf("migrate: %w", err)
	}
	return &records.PGStore{DB: sqlDB}, sqlDB, nil
}

func buildArchive(ctx context.Context, cfg config.Config) (object.ObjectStore, error) {
	switch cfg.ObjectStoreType {
	case "s3":
		if strings.TrimSpace(cfg.S3Bucket) == "" {
			return nil, fmt.Errorf("OBJECT_STORE=s3 requires S3_BUCKET")
		}
		return s3store.New(ctx, cfg.AWSRegion, cfg.S3Bucket, cfg.S3Prefix, cfg.SSEKMSKeyID)
	case "local":
		return localstore.New(cfg.LocalStoreDir), nil
	default:
		return nil, nil
	}
}
