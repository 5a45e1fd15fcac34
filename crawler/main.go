package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/joho/godotenv"
	log "github.com/sirupsen/logrus"
	"github.com/spf13/viper"
	prefixed "github.com/x-cray/logrus-prefixed-formatter"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/bitmark-inc/ukcovid-dashboard/consts"
	"github.com/bitmark-inc/ukcovid-dashboard/external/ukcovid"
	"github.com/bitmark-inc/ukcovid-dashboard/store"
)

const (
	logPrefix      = "cron"
	defaultTimeout = 15 * time.Second
)

type Cron interface {
	Run(ctx context.Context) error
}

func initLog() {
	logLevel, err := log.ParseLevel(viper.GetString("log.level"))
	if err != nil {
		log.SetLevel(log.DebugLevel)
	} else {
		log.SetLevel(logLevel)
	}

	log.SetOutput(os.Stdout)

	log.SetFormatter(&prefixed.TextFormatter{
		ForceFormatting: true,
		FullTimestamp:   true,
	})
}

func loadConfig(file string) {
	if err := godotenv.Load(); err != nil && !os.IsNotExist(err) {
		fmt.Println("Cannot load .env file:", err)
	}

	// Config from file
	viper.SetConfigType("yaml")
	if file != "" {
		viper.SetConfigFile(file)
	}

	viper.AddConfigPath("/.config/")
	viper.AddConfigPath(".")
	err := viper.ReadInConfig()
	if err != nil {
		fmt.Println("No config file. Read config from env.")
		viper.AllowEmptyEnv(false)
	}

	// Config from env if possible
	viper.AutomaticEnv()
	viper.SetEnvPrefix("ukcovid")
	viper.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))

	viper.SetDefault("endpoint.url", ukcovid.DefaultURL)
	viper.SetDefault("endpoint.timeout", 30*time.Second)
}

// crons lists one job per selectable area followed by the England age/gender feed
func crons(mStore store.MongoStore, fetcher ukcovid.Fetcher) []Cron {
	jobs := make([]Cron, 0, len(consts.Areas)+1)
	for _, area := range consts.Areas {
		jobs = append(jobs, newDailyCrawler(area, mStore, fetcher))
	}
	return append(jobs, newAgeGenderCrawler(mStore, fetcher))
}

// runAll runs every job and returns how many of them failed
func runAll(ctx context.Context, jobs []Cron) int {
	failed := 0
	for _, job := range jobs {
		if err := job.Run(ctx); err != nil {
			failed++
		}
	}
	return failed
}

func main() {
	var configFile string

	flag.StringVar(&configFile, "c", "./config.yaml", "[optional] path of configuration file")
	flag.Parse()

	loadConfig(configFile)

	initLog()

	ctx := context.Background()

	// initialise mongodb connections
	opts := options.Client().ApplyURI(viper.GetString("mongo.conn"))
	opts.SetMaxPoolSize(viper.GetUint64("mongo.pool"))
	mongoClient, err := mongo.NewClient(opts)
	if nil != err {
		log.Panicf("create mongo client with error: %s", err)
	}

	err = mongoClient.Connect(ctx)
	if nil != err {
		log.Panicf("connect mongo database with error: %s", err)
	}

	mStore := store.NewMongoStore(
		mongoClient,
		viper.GetString("mongo.database"),
	)
	defer mStore.Close()

	if err := mStore.Ping(); err != nil {
		log.Panicf("ping mongo database with error: %s", err)
	}

	fetcher := ukcovid.New(
		viper.GetString("endpoint.url"),
		viper.GetDuration("endpoint.timeout"),
		nil,
		nil)

	jobs := crons(mStore, fetcher)
	if failed := runAll(ctx, jobs); failed > 0 {
		log.WithField("prefix", logPrefix).Warnf("%d of %d crawlers failed", failed, len(jobs))
	}
}
