// Command solrun-server exposes the solution runner over HTTP: POST /judge
// selects a solution from the archive, runs it against the problem's test
// cases and returns the verdicts as JSON.
package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	ginzap "github.com/gin-contrib/zap"
	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus"
	ginprometheus "github.com/zsais/go-gin-prometheus"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"golang.org/x/sync/errgroup"

	"github.com/acmob/solrun/cmd/solrun-server/config"
	"github.com/acmob/solrun/cmd/solrun-server/restjudge"
	"github.com/acmob/solrun/cmd/solrun/version"
	"github.com/acmob/solrun/judger"
	"github.com/acmob/solrun/language"
	"github.com/acmob/solrun/pkg/toolcheck"
)

var logger *zap.Logger

func main() {
	conf := loadConf()
	if conf.Version {
		fmt.Println(version.Version)
		return
	}
	initLogger(conf)
	defer logger.Sync()
	if ce := logger.Check(zap.InfoLevel, "Config loaded"); ce != nil {
		ce.Write(zap.String("config", fmt.Sprintf("%+v", conf)))
	}

	var metrics *judger.Metrics
	if conf.EnableMetrics {
		metrics = judger.NewMetrics(prometheus.DefaultRegisterer)
	}
	j := judger.New(toolcheck.New(), logger, metrics)

	srv := http.Server{
		Addr:    conf.HTTPAddr,
		Handler: initHTTPMux(conf, j),
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	var eg errgroup.Group
	eg.Go(func() error {
		logger.Info("Starting http server", zap.String("addr", conf.HTTPAddr))
		if err := srv.ListenAndServe(); !errors.Is(err, http.ErrServerClosed) {
			return err
		}
		return nil
	})
	eg.Go(func() error {
		<-ctx.Done()
		logger.Info("Shutting Down...")
		shutdownCtx, cancel := context.WithTimeout(context.Background(), time.Second*3)
		defer cancel()
		return srv.Shutdown(shutdownCtx)
	})
	if err := eg.Wait(); err != nil {
		logger.Error("server exited", zap.Error(err))
	}
}

func initHTTPMux(conf *config.Config, j *judger.Judger) http.Handler {
	if conf.Release {
		gin.SetMode(gin.ReleaseMode)
	}
	r := gin.New()
	r.Use(ginzap.Ginzap(logger, "", false))
	r.Use(ginzap.RecoveryWithZap(logger, true))

	// Metrics Handle
	if conf.EnableMetrics {
		initGinMetrics(r)
	}

	// Version handle
	r.GET("/version", func(ctx *gin.Context) {
		ctx.JSON(http.StatusOK, gin.H{"version": version.Version})
	})

	// Judge handle
	judgeHandle := restjudge.NewJudgeHandle(conf.Dir, loadRegistry(conf), j, logger)
	judgeHandle.Register(r)

	return r
}

func initGinMetrics(r *gin.Engine) {
	p := ginprometheus.NewWithConfig(ginprometheus.Config{
		Subsystem:          "gin",
		DisableBodyReading: true,
	})
	p.ReqCntURLLabelMappingFn = func(c *gin.Context) string {
		return c.FullPath()
	}
	p.Use(r)
}

func loadConf() *config.Config {
	var conf config.Config
	if err := conf.Load(); err != nil {
		if err == flag.ErrHelp {
			os.Exit(0)
		}
		log.Fatalln("load config failed ", err)
	}
	return &conf
}

func loadRegistry(conf *config.Config) *language.Registry {
	reg, err := language.Load(conf.LangConf)
	if err != nil {
		if !os.IsNotExist(err) {
			log.Fatalln("load language config failed ", err)
		}
		logger.Info("language config does not exist, using built-in registry",
			zap.String("path", conf.LangConf))
		return language.Defaults()
	}
	return reg
}

func initLogger(conf *config.Config) {
	if conf.Silent {
		logger = zap.NewNop()
		return
	}

	var err error
	if conf.Release {
		logger, err = zap.NewProduction()
	} else {
		config := zap.NewDevelopmentConfig()
		config.EncoderConfig.EncodeLevel = zapcore.CapitalColorLevelEncoder
		config.Level.SetLevel(zap.InfoLevel)
		logger, err = config.Build()
	}
	if err != nil {
		log.Fatalln("init logger failed ", err)
	}
}
