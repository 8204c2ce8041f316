// Command solrun builds and runs a contest solution against the problem's
// recorded test cases, printing a single success line or one line per
// failing case.
//
// Usage: solrun [options] year problem language solution_number
package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"os"
	"strconv"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"github.com/acmob/solrun/cmd/solrun/config"
	"github.com/acmob/solrun/cmd/solrun/version"
	"github.com/acmob/solrun/judger"
	"github.com/acmob/solrun/language"
	"github.com/acmob/solrun/pkg/toolcheck"
	"github.com/acmob/solrun/problem"
)

var logger *zap.Logger

func main() {
	conf, pos := loadConf()
	if conf.Version {
		fmt.Println(version.Version)
		return
	}
	initLogger(conf)
	defer logger.Sync()

	if len(pos) != 4 {
		log.Fatalln("usage: solrun [options] year problem language solution_number")
	}
	year, prob, langName, solArg := pos[0], pos[1], pos[2], pos[3]
	if _, err := strconv.Atoi(year); err != nil {
		log.Fatalln("year must be numeric:", year)
	}
	solution, err := strconv.Atoi(solArg)
	if err != nil {
		log.Fatalln("solution number must be numeric:", solArg)
	}
	event, err := problem.ParseEvent(conf.Event)
	if err != nil {
		log.Fatalln(err)
	}

	spec, ok := loadRegistry(conf).Get(langName)
	if !ok {
		log.Fatalln("unknown language:", langName)
	}

	srcPath := problem.SolutionPath(conf.Dir, year, event, prob, spec.Name, spec.Ext, solution)
	if _, err := os.Stat(srcPath); err != nil {
		log.Fatalln("solution file not found:", srcPath)
	}
	cases, err := problem.LoadCases(problem.TestsDir(conf.Dir, year, event, prob))
	if err != nil {
		log.Fatalln("load test cases failed:", err)
	}
	logger.Info("judging solution",
		zap.String("source", srcPath),
		zap.String("language", spec.Name),
		zap.Int("cases", len(cases)))

	j := judger.New(toolcheck.New(), logger, nil)
	report, err := j.Run(context.Background(), spec, srcPath, cases)
	if err != nil {
		log.Fatalln("run failed:", err)
	}
	report.Render(os.Stdout)
}

// loadConf splits the command line into flag arguments and the trailing
// four positional arguments, then loads config from flags & environment.
func loadConf() (*config.Config, []string) {
	args := os.Args[1:]
	var pos []string
	if len(args) >= 4 {
		pos = args[len(args)-4:]
		args = args[:len(args)-4]
	}
	var conf config.Config
	if err := conf.Load(args); err != nil {
		if err == flag.ErrHelp {
			os.Exit(0)
		}
		log.Fatalln("load config failed ", err)
	}
	return &conf, pos
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
