package main

import (
	"context"
	"fmt"

	"recipebox/internal/adapter"
	"recipebox/internal/handler"
	"recipebox/internal/repository/sqlite"
	"recipebox/internal/service"

	"go.uber.org/zap"
)

// app is the wired application: store, session and feature services
type app struct {
	repo    *sqlite.Repository
	source  *adapter.ForkifyAdapter
	session *service.Session
	search  *service.SearchService
	recipe  *service.RecipeService
	list    *service.ListService
	likes   *service.LikesService
}

// newApp opens the database and restores the session
func newApp(ctx context.Context) (*app, error) {
	repo, err := sqlite.New(cfg.Database.Path)
	if err != nil {
		return nil, fmt.Errorf("open database: %w", err)
	}
	logger.Debug("database opened", zap.String("path", cfg.Database.Path))

	session := service.NewSession(repo, service.NewEventBus(), logger)
	if err := session.Load(ctx); err != nil {
		repo.Close()
		return nil, err
	}

	source := adapter.NewForkifyAdapter(cfg.ForkifyConfig(), logger)
	return &app{
		repo:    repo,
		source:  source,
		session: session,
		search: service.NewSearchService(session, source, service.SearchSettings{
			PageSize:   cfg.Search.PageSize,
			TitleLimit: cfg.Search.TitleLimit,
		}),
		recipe: service.NewRecipeService(session, source),
		list:   service.NewListService(session),
		likes:  service.NewLikesService(session),
	}, nil
}

func (a *app) services() handler.Services {
	return handler.Services{
		Session: a.session,
		Search:  a.search,
		Recipe:  a.recipe,
		List:    a.list,
		Likes:   a.likes,
		Source:  a.source,
	}
}

func (a *app) Close() error {
	return a.repo.Close()
}
