// Package steps provides step definitions for the BDD integration suite.
package steps

import (
	"net/http/httptest"
	"sync"
	"time"

	"github.com/moneybook/backend/config"
	"github.com/moneybook/backend/internal/application/adapter"
	"github.com/moneybook/backend/internal/infra/dependency"
	"github.com/moneybook/backend/internal/integration/adapters"
	"github.com/moneybook/backend/internal/integration/persistence/model"
	"github.com/moneybook/backend/test/integration/mock"
)

const testJWTSecret = "test-jwt-secret-key-for-integration"

var (
	bootstrapOnce sync.Once

	testDB       *mock.Db
	testServer   *httptest.Server
	tokenService adapter.TokenService
)

// bootstrap wires the full application against the in-memory database and
// redis, once for the whole suite. Scenarios share the server and reset the
// database between runs.
func bootstrap() {
	bootstrapOnce.Do(func() {
		testDB = mock.NewDb("moneybook", map[string]any{
			"users":        &model.UserModel{},
			"books":        &model.BookModel{},
			"accounts":     &model.AccountModel{},
			"transactions": &model.TransactionModel{},
			"categories":   &model.CategoryModel{},
			"tags":         &model.TagModel{},
			"persons":      &model.PersonModel{},
		})
		redisClient := mock.NewRedis()

		cfg := &config.Config{
			Server: config.ServerConfig{
				Environment: "test",
			},
			JWT: config.JWTConfig{
				Secret:            testJWTSecret,
				AccessTokenExpiry: time.Hour,
			},
			Retention: config.RetentionConfig{
				Window:        30 * 24 * time.Hour,
				SweepInterval: 24 * time.Hour,
			},
		}

		injector := dependency.NewInjector(cfg, testDB.DbConn, redisClient)
		engine := injector.Router.Setup(cfg.Server.Environment)
		testServer = httptest.NewServer(engine)

		tokenService = adapters.NewTokenService(testJWTSecret, time.Hour)
	})
}
