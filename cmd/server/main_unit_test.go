package main

import (
	"errors"
	"fmt"
	"testing"
	"time"

	"captura-leads.backend/internal/config"
	plog "captura-leads.backend/pkg/logger"
	"captura-leads.backend/pkg/redis"
	"github.com/gin-gonic/gin"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

func withMainHooks(t *testing.T) {
	t.Helper()
	origLoadDotenv := loadDotenv
	origLoadCfg := loadCfg
	origInitLog := initLog
	origInitRedis := initRedis
	origOpenDB := openDB
	origMigrateDB := migrateDB
	origNewSessionStore := newSessionStore
	origRunServer := runServer

	t.Cleanup(func() {
		loadDotenv = origLoadDotenv
		loadCfg = origLoadCfg
		initLog = origInitLog
		initRedis = origInitRedis
		openDB = origOpenDB
		migrateDB = origMigrateDB
		newSessionStore = origNewSessionStore
		runServer = origRunServer
		redis.SetClient(nil)
	})

	loadDotenv = func(...string) error { return nil }
	loadCfg = baseTestConfig
	initLog = plog.Init
}

func baseTestConfig() *config.Config {
	return &config.Config{
		Server: config.ServerConfig{
			Port: "18080",
			Env:  "test",
		},
		Database: config.DatabaseConfig{
			Driver: "sqlite",
		},
		Redis: config.RedisConfig{
			URL: "redis://localhost:6379",
		},
		JWT: config.JWTConfig{
			AccessSecret:  "access-secret",
			RefreshSecret: "refresh-secret",
			AccessExpiry:  15 * time.Minute,
			RefreshExpiry: 7 * 24 * time.Hour,
		},
		Security: config.SecurityConfig{
			BcryptCost:           4,
			SessionEncryptionKey: "0000000000000000000000000000000000000000000000000000000000000000",
		},
	}
}

func memoryDB(t *testing.T) func(config.DatabaseConfig) (*gorm.DB, error) {
	t.Helper()
	name := fmt.Sprintf("file:%s_%d?mode=memory&cache=shared", t.Name(), time.Now().UnixNano())
	return func(config.DatabaseConfig) (*gorm.DB, error) {
		return gorm.Open(sqlite.Open(name), &gorm.Config{})
	}
}

func TestRunMainProcess_RedisDownStillServes(t *testing.T) {
	withMainHooks(t)

	initRedis = func(string, string) error { return errors.New("redis down") }
	openDB = memoryDB(t)
	storeCalled := false
	newSessionStore = func(string) (*redis.SessionStore, error) {
		storeCalled = true
		return nil, errors.New("unexpected")
	}
	served := false
	runServer = func(*gin.Engine, string) error {
		served = true
		return nil
	}

	if err := runMainProcess(); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !served {
		t.Fatal("expected server to run without redis")
	}
	if storeCalled {
		t.Fatal("session store must not be built when redis is down")
	}
	if redis.GetClient() != nil {
		t.Fatal("expected redis client to be cleared")
	}
}

func TestRunMainProcess_DBOpenError(t *testing.T) {
	withMainHooks(t)

	initRedis = func(string, string) error { return errors.New("redis down") }
	openDB = func(config.DatabaseConfig) (*gorm.DB, error) { return nil, errors.New("db open failed") }

	if err := runMainProcess(); err == nil {
		t.Fatal("expected db open error")
	}
}

func TestRunMainProcess_MigrateError(t *testing.T) {
	withMainHooks(t)

	initRedis = func(string, string) error { return errors.New("redis down") }
	openDB = memoryDB(t)
	migrateDB = func(*gorm.DB) error { return errors.New("migrate failed") }
	runServer = func(*gin.Engine, string) error {
		t.Fatal("server must not start after a failed migration")
		return nil
	}

	if err := runMainProcess(); err == nil {
		t.Fatal("expected migrate error")
	}
}

func TestRunMainProcess_SessionStoreError(t *testing.T) {
	withMainHooks(t)

	initRedis = func(string, string) error { return nil }
	openDB = memoryDB(t)
	newSessionStore = func(string) (*redis.SessionStore, error) { return nil, errors.New("bad session key") }

	if err := runMainProcess(); err == nil {
		t.Fatal("expected session store error")
	}
}

func TestRunMainProcess_ServerRunError(t *testing.T) {
	withMainHooks(t)

	initRedis = func(string, string) error { return nil }
	openDB = memoryDB(t)
	newSessionStore = redis.NewSessionStore
	runServer = func(*gin.Engine, string) error { return errors.New("listen failed") }

	if err := runMainProcess(); err == nil {
		t.Fatal("expected server run error")
	}
}

func TestRunMainProcess_SuccessPath(t *testing.T) {
	withMainHooks(t)

	initRedis = func(string, string) error { return nil }
	openDB = memoryDB(t)
	newSessionStore = redis.NewSessionStore
	var port string
	runServer = func(r *gin.Engine, p string) error {
		port = p
		if len(r.Routes()) == 0 {
			t.Fatal("expected routes to be registered")
		}
		return nil
	}

	if err := runMainProcess(); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if port != "18080" {
		t.Fatalf("unexpected port: %s", port)
	}
}

func TestServeUntilSignal_InvalidPort(t *testing.T) {
	gin.SetMode(gin.TestMode)
	if err := serveUntilSignal(gin.New(), "invalid-port"); err == nil {
		t.Fatal("expected listen error")
	}
}
