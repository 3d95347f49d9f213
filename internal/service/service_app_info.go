package service

import (
	"context"

	"github.com/MKhiriev/go-notice-web/internal/config"
	"github.com/MKhiriev/go-notice-web/internal/logger"
	"github.com/MKhiriev/go-notice-web/models"
)

// AppInfo describes the running web front.
type AppInfo struct {
	Mode    string
	Version string
	Date    string
	Commit  string
}

type appInfoService struct {
	info AppInfo

	logger *logger.Logger
}

func NewAppInfoService(cfg config.App, build models.AppBuildInfo, logger *logger.Logger) (AppInfoService, error) {
	if cfg.Environment == "" {
		return nil, ErrModeIsNotSpecified
	}

	return &appInfoService{
		info: AppInfo{
			Mode:    cfg.Environment,
			Version: build.BuildVersion(),
			Date:    build.BuildDate(),
			Commit:  build.BuildCommit(),
		},
		logger: logger,
	}, nil
}

func (s *appInfoService) GetAppInfo(ctx context.Context) AppInfo {
	return s.info
}
