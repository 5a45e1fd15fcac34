package main

import (
	"strings"

	"github.com/spf13/viper"

	"github.com/bitmark-inc/ukcovid-dashboard/schema"
)

func init() {
	viper.AutomaticEnv()
	viper.SetEnvPrefix("ukcovid")
	viper.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
}

func main() {
	schema.NewMongoDBIndexer(viper.GetString("mongo.conn"), viper.GetString("mongo.database")).IndexAll()
}
