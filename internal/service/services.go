package service

import (
	"github.com/hirunaj/pawtrail/internal/config"
	"github.com/hirunaj/pawtrail/internal/hub"
	"github.com/hirunaj/pawtrail/internal/logger"
	"github.com/hirunaj/pawtrail/internal/store"
)

type Services struct {
	AuthService   AuthService
	RecordService RecordService
	BlobService   BlobService
}

func NewServices(storages *store.Storages, h *hub.Hub, cfg *config.ServerConfig, logger *logger.Logger) *Services {
	return &Services{
		AuthService:   NewAuthService(storages.UserRepository, cfg.App, logger),
		RecordService: NewRecordService(storages.RecordRepository, h, logger),
		BlobService:   NewBlobService(cfg.Blobs, logger),
	}
}
