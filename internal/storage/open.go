package storage

import (
	"context"
	"fmt"

	log "github.com/sirupsen/logrus"

	"DriverDesk/internal/config"
	"DriverDesk/internal/constants"
	"DriverDesk/internal/db"
	kioskredis "DriverDesk/internal/redis"
)

// Open builds the backend selected by cfg.StorageDriver.
func Open(ctx context.Context, cfg *config.Config) (Backend, error) {
	switch cfg.StorageDriver {
	case constants.StorageMemory:
		log.Warn("storage.Open: используется хранилище в памяти, данные не переживут перезапуск")
		return NewMemoryBackend(), nil
	case constants.StoragePostgres:
		conn, err := db.Open(ctx, cfg.DatabaseURL)
		if err != nil {
			return nil, err
		}
		log.Infof("storage.Open: PostgreSQL %s:%s/%s", cfg.DBHost, cfg.DBPort, cfg.DBName)
		return NewPostgresBackend(conn), nil
	case constants.StorageRedis:
		rdb, err := kioskredis.New(ctx, kioskredis.Options{Addr: cfg.RedisAddr, Password: cfg.RedisPassword, DB: cfg.RedisDB})
		if err != nil {
			return nil, err
		}
		log.Infof("storage.Open: Redis %s (db %d)", cfg.RedisAddr, cfg.RedisDB)
		return NewRedisBackend(rdb, cfg.RedisPrefix), nil
	case constants.StorageFile, "":
		b, err := NewFileBackend(cfg.DataDir)
		if err != nil {
			return nil, err
		}
		log.Infof("storage.Open: файлы в %s", cfg.DataDir)
		return b, nil
	}
	return nil, fmt.Errorf("unknown storage driver %q", cfg.StorageDriver)
}
