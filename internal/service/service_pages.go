// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"

	"github.com/MKhiriev/go-notice-web/internal/adapter"
	"github.com/MKhiriev/go-notice-web/internal/app"
	"github.com/MKhiriev/go-notice-web/internal/logger"
	"github.com/MKhiriev/go-notice-web/models"
	"golang.org/x/sync/errgroup"
)

// fallbackCacheMaxSize is reported when stats could not be loaded.
const fallbackCacheMaxSize = 50

// HomeData is rendered by the home page.
type HomeData struct {
	Notices []models.Notice
	Stats   models.SystemStats
	Error   string
}

// NoticesData is rendered by the notices page.
type NoticesData struct {
	Notices []models.Notice
	Error   string
}

type pageService struct {
	api adapter.NoticeAPI

	logger *logger.Logger
}

func NewPageService(api adapter.NoticeAPI, logger *logger.Logger) PageService {
	return &pageService{api: api, logger: logger}
}

// LoadHome fetches recent notices and stats concurrently. If either call
// fails, both results are discarded.
func (s *pageService) LoadHome(ctx context.Context) HomeData {
	var (
		notices []models.Notice
		stats   models.SystemStats
	)

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		var err error
		notices, err = s.api.GetRecentNotices(gctx)
		return err
	})
	g.Go(func() error {
		var err error
		stats, err = s.api.GetSystemStats(gctx)
		return err
	})

	if err := g.Wait(); err != nil {
		logger.FromContext(ctx).Err(err).Msg("failed to load initial data")
		return HomeData{
			Notices: []models.Notice{},
			Stats:   emptyStats(),
			Error:   app.MsgInitialDataLoadFailed,
		}
	}

	if notices == nil {
		notices = []models.Notice{}
	}
	return HomeData{Notices: notices, Stats: stats}
}

func (s *pageService) LoadNotices(ctx context.Context) NoticesData {
	notices, err := s.api.GetRecentNotices(ctx)
	if err != nil {
		logger.FromContext(ctx).Err(err).Msg("failed to load notices")
		return NoticesData{Notices: []models.Notice{}, Error: app.MsgNoticesLoadFailed}
	}

	if notices == nil {
		notices = []models.Notice{}
	}
	return NoticesData{Notices: notices}
}

func emptyStats() models.SystemStats {
	initialized := false
	return models.SystemStats{
		Cache: models.CacheInfo{
			MaxSize:       fallbackCacheMaxSize,
			IsInitialized: &initialized,
		},
	}
}
