// @title        Business Directory API
// @version      1.0
// @description  Directory/marketplace API: owners register business listings,
// @description  users search them by category and location.
//
// @securityDefinitions.apikey BearerAuth
// @in   header
// @name Authorization
package main

import (
	"context"

	_ "github.com/localbiz/directory-api/docs"
	"github.com/localbiz/directory-api/internal/api"
	"github.com/localbiz/directory-api/internal/infrastructure/config"
	mongodb "github.com/localbiz/directory-api/internal/infrastructure/db/mongo"
	redisdb "github.com/localbiz/directory-api/internal/infrastructure/db/redis"
	"github.com/localbiz/directory-api/internal/infrastructure/media"
	"github.com/localbiz/directory-api/pkg/logger"
)

func main() {
	cfg := config.Load()

	log := logger.Init(logger.Options{
		Level:  cfg.LogLevel,
		Pretty: cfg.Env == "development",
	})

	ctx := context.Background()

	client, db, err := mongodb.Connect(ctx, mongodb.Config{
		URI:         cfg.Mongo.URI,
		Database:    cfg.Mongo.Database,
		MaxPoolSize: cfg.Mongo.MaxPoolSize,
	})
	if err != nil {
		log.Fatal().Err(err).Msg("mongo connection failed")
	}
	defer func() { _ = client.Disconnect(ctx) }()

	if err := mongodb.NewUserRepository(db).EnsureIndexes(ctx); err != nil {
		log.Fatal().Err(err).Msg("user indexes failed")
	}
	if err := mongodb.NewBusinessRepository(db).EnsureIndexes(ctx); err != nil {
		log.Fatal().Err(err).Msg("business indexes failed")
	}
	if err := mongodb.NewBookingRepository(db).EnsureIndexes(ctx); err != nil {
		log.Fatal().Err(err).Msg("booking indexes failed")
	}

	rdb, err := redisdb.Connect(ctx, redisdb.Config{
		Addr:     cfg.Redis.Addr,
		DB:       cfg.Redis.DB,
		PoolSize: cfg.Redis.PoolSize,
	})
	if err != nil {
		log.Fatal().Err(err).Msg("redis connection failed")
	}
	defer func() { _ = rdb.Close() }()

	uploader, err := media.NewMinioUploader(&media.Config{
		Endpoint:  cfg.Media.Endpoint,
		AccessKey: cfg.Media.AccessKey,
		SecretKey: cfg.Media.SecretKey,
		Bucket:    cfg.Media.Bucket,
		PublicURL: cfg.Media.PublicURL,
		UseSSL:    cfg.Media.UseSSL,
	})
	if err != nil {
		log.Fatal().Err(err).Msg("media host connection failed")
	}

	e := api.NewRouter(api.Deps{
		DB:        db,
		Redis:     rdb,
		Uploader:  uploader,
		JWTSecret: cfg.JWTSecret,
		TokenTTL:  cfg.TokenTTL,
		Logger:    log,
	})

	log.Info().Str("port", cfg.Port).Str("env", cfg.Env).Msg("starting directory api")
	if err := e.Start(":" + cfg.Port); err != nil {
		log.Fatal().Err(err).Msg("server stopped")
	}
}
