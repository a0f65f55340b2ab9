package di

import (
	"fmt"
	"time"

	"github.com/Omiixx-nova/Bloom-Heaven/internal/api"
	"github.com/Omiixx-nova/Bloom-Heaven/internal/auth"
	"github.com/Omiixx-nova/Bloom-Heaven/internal/bouquet"
	"github.com/Omiixx-nova/Bloom-Heaven/internal/common"
	"github.com/Omiixx-nova/Bloom-Heaven/internal/config"
	"github.com/Omiixx-nova/Bloom-Heaven/internal/dbmongo"
	"github.com/Omiixx-nova/Bloom-Heaven/internal/store"
	"github.com/Omiixx-nova/Bloom-Heaven/internal/upload"
)

// Application bundles everything main needs after wiring.
type Application struct {
	Config   *config.Config
	Server   *api.Server
	Auth     auth.Service
	Bouquets bouquet.Service
}

// UploadsDir is the disk upload directory for static serving, empty when
// the gridfs backend is active.
type UploadsDir string

func ProvideConfig() *config.Config {
	return config.LoadConfig()
}

func ProvideTokenManager(cfg *config.Config) *common.TokenManager {
	return common.NewTokenManager(cfg.Auth.JWTSecret, time.Duration(cfg.Auth.TokenTTLHours)*time.Hour)
}

// ProvideStorage picks the entity store backend. Memory is the source of
// truth for this product; mysql is the opt-in durable variant.
func ProvideStorage(cfg *config.Config) (store.Storage, error) {
	switch cfg.Store.Backend {
	case "", "memory":
		return store.NewMemoryStore(), nil
	case "mysql":
		db, err := store.NewMySQL(cfg)
		if err != nil {
			return nil, err
		}
		return store.NewMySQLStore(db), nil
	default:
		return nil, fmt.Errorf("unknown store backend %q", cfg.Store.Backend)
	}
}

// ProvideFileStore picks the upload backend. The gridfs case dials MongoDB
// here so the disk default never touches it.
func ProvideFileStore(cfg *config.Config) (upload.FileStore, error) {
	switch cfg.Upload.Backend {
	case "", "disk":
		return upload.NewDiskStore(cfg.Upload.Dir, cfg.Upload.MaxBytes)
	case "gridfs":
		mongoClient, err := dbmongo.NewMongoConnection(cfg)
		if err != nil {
			return nil, err
		}
		return upload.NewGridFSStore(dbmongo.NewBlobStorage(mongoClient), cfg.Upload.MaxBytes), nil
	default:
		return nil, fmt.Errorf("unknown upload backend %q", cfg.Upload.Backend)
	}
}

func ProvideUploadsDir(cfg *config.Config) UploadsDir {
	if cfg.Upload.Backend == "gridfs" {
		return ""
	}
	return UploadsDir(cfg.Upload.Dir)
}

func ProvideServer(cfg *config.Config, authSvc auth.Service, bouquetSvc bouquet.Service, files upload.FileStore, uploadsDir UploadsDir) *api.Server {
	return api.NewServer(cfg, authSvc, bouquetSvc, files, string(uploadsDir))
}
