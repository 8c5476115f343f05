package cmd

import (
	"context"
	"fmt"
	"path/filepath"
	"time"

	accessRest "github.com/AzielCF/az-access/access/adapter/rest"
	"github.com/AzielCF/az-access/access/application"
	"github.com/AzielCF/az-access/access/domain"
	"github.com/AzielCF/az-access/access/repository"
	coreconfig "github.com/AzielCF/az-access/core/config"
	coreDB "github.com/AzielCF/az-access/core/database"
	"github.com/AzielCF/az-access/infrastructure/valkey"
	"github.com/AzielCF/az-access/pkg/utils"
	uiRest "github.com/AzielCF/az-access/ui/rest"
	"github.com/AzielCF/az-access/validations"
	"github.com/sirupsen/logrus"
	"gorm.io/gorm"
)

const driverMemory = "memory"

// appContainer owns every long-lived dependency of the rest command.
type appContainer struct {
	db       *gorm.DB
	vkClient *valkey.Client
	serverID string

	repo    domain.GrantRepository
	locker  domain.KeyLocker
	service *application.GrantService
	handler *accessRest.GrantHandler
	checks  []uiRest.ReadinessCheck
}

func newAppContainer(ctx context.Context, cfg *coreconfig.Config) (*appContainer, error) {
	a := &appContainer{
		serverID: utils.GetPersistentServerID(cfg.App.ServerID, storageDir(cfg)),
	}

	dbCheck := uiRest.ReadinessCheck{Name: "database"}
	if cfg.Database.Driver == driverMemory {
		logrus.Warn("[APP] DB_DRIVER=memory: grants are lost on restart")
		a.repo = repository.NewGrantMemoryRepository()
		dbCheck.Check = func(context.Context) error { return nil }
	} else {
		db, err := coreDB.NewDatabase(cfg)
		if err != nil {
			return nil, err
		}
		a.db = db

		gormRepo := repository.NewGrantGormRepository(db)
		if err := gormRepo.InitSchema(ctx); err != nil {
			a.Close()
			return nil, fmt.Errorf("failed to migrate grant schema: %w", err)
		}
		a.repo = gormRepo
		dbCheck.Check = gormRepo.Ping
	}

	valkeyCheck := uiRest.ReadinessCheck{Name: "valkey"}
	if cfg.Database.ValkeyEnabled {
		vk, err := valkey.NewClient(valkey.Config{
			Address:   cfg.Database.ValkeyAddress,
			Password:  cfg.Database.ValkeyPassword,
			DB:        cfg.Database.ValkeyDB,
			KeyPrefix: cfg.Database.ValkeyKeyPrefix,
		})
		if err != nil {
			a.Close()
			return nil, err
		}
		a.vkClient = vk
		a.locker = repository.NewValkeyKeyLocker(vk, time.Duration(cfg.Access.LockTTLMs)*time.Millisecond, a.serverID)
		valkeyCheck.Check = vk.Ping
		logrus.Infof("[APP] Using Valkey grant locks at %s", cfg.Database.ValkeyAddress)
	} else {
		a.locker = repository.NewMemoryKeyLocker()
	}

	a.service = application.NewGrantService(a.repo, a.locker, domain.NewExpiryPolicy(cfg.Access.DurationHours))
	a.handler = accessRest.NewGrantHandler(a.service, validations.NewGrantValidator(cfg.Access))
	a.checks = []uiRest.ReadinessCheck{dbCheck, valkeyCheck}

	logrus.WithFields(logrus.Fields{
		"server_id":      a.serverID,
		"db_driver":      cfg.Database.Driver,
		"duration_hours": cfg.Access.DurationHours,
		"enum_field":     cfg.Access.EnumField,
	}).Info("[APP] Application initialized")

	return a, nil
}

// Close releases the store handle and the Valkey connection.
func (a *appContainer) Close() {
	if a.vkClient != nil {
		a.vkClient.Close()
		a.vkClient = nil
	}
	if a.db != nil {
		if err := coreDB.Close(a.db); err != nil {
			logrus.Errorf("[APP] Error closing database: %v", err)
		}
		a.db = nil
	}
}

func storageDir(cfg *coreconfig.Config) string {
	if cfg.Database.Driver == "sqlite" {
		if dir := filepath.Dir(cfg.Database.Name); dir != "." {
			return dir
		}
	}
	return "storages"
}
