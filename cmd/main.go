package main

import (
	"context"
	"os"
	"os/signal"
	"strconv"
	"syscall"
	"time"

	"go.uber.org/zap"

	"github.com/skillwaves/skillwaves-server/config"
	"github.com/skillwaves/skillwaves-server/internal/constant"
	"github.com/skillwaves/skillwaves-server/internal/handler"
	"github.com/skillwaves/skillwaves-server/internal/store"
	"github.com/skillwaves/skillwaves-server/internal/token"
	"github.com/skillwaves/skillwaves-server/pkg/cache"
	"github.com/skillwaves/skillwaves-server/pkg/database"
	"github.com/skillwaves/skillwaves-server/pkg/logger"
	http_server "github.com/skillwaves/skillwaves-server/pkg/server/http"
)

//	@title			SKILL WAVES SERVER APIs
//	@version		1.0
//	@description	Job-marketplace backend: jobs, bids and cookie-token auth.

// @securityDefinitions.apikey	CookieAuth
// @in							cookie
// @name						token
// @description				Signed identity token issued by /user/access-token
func main() {
	env := config.GetEnv()

	zap.ReplaceGlobals(logger.GetLogger(env.LoggerConfig))
	defer logger.Sync()

	mongoDB := database.NewMongoDB(&env.MongoConfig)
	if err := mongoDB.Connect(); err != nil {
		zap.L().Fatal("MongoDB connection failed", zap.Error(err))
	}
	defer mongoDB.Close()

	codec := token.NewCodec(
		[]byte(env.AuthConfig.Secret),
		time.Duration(env.AuthConfig.TokenTTLMinutes)*time.Minute,
	)

	var listCache cache.Cache
	if env.CacheConfig.Enabled {
		listCache = cache.NewCache(env.CacheConfig, env.RedisConfig)
		defer listCache.Stop()
	}

	handlers := http_server.Handlers{
		Job: handler.NewJobHandler(
			store.NewMongoJobStore(mongoDB.Collection(constant.JobsCollection)),
			listCache,
		),
		Bid: handler.NewBidHandler(
			store.NewMongoBidStore(mongoDB.Collection(constant.BidsCollection)),
		),
		User: handler.NewUserHandler(codec, env.AuthConfig),
	}

	server := http_server.New(env, codec, handlers,
		http_server.Port(strconv.Itoa(env.AppConfig.Port)),
		http_server.HealthCheck(mongoDB.Ping))
	server.Start()
	zap.L().Info("Server started", zap.Int("port", env.AppConfig.Port))

	interrupt := make(chan os.Signal, 1)
	signal.Notify(interrupt, os.Interrupt, syscall.SIGTERM)

	select {
	case sig := <-interrupt:
		zap.L().Info("Shutdown signal received", zap.String("signal", sig.String()))
	case err := <-server.Notify():
		zap.L().Error("Server error", zap.Error(err))
	}

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := server.Shutdown(ctx); err != nil {
		zap.L().Error("Server shutdown failed", zap.Error(err))
	}
}
