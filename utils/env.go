package utils

import (
	"fmt"
	"macro-traco-backend/structs"
	"strings"
	"time"

	"github.com/spf13/viper"
)

var EnvConfig *structs.EnviromentModel

type EnvService struct{}

func (e *EnvService) InitEnv() {
	e.loadConfig()
	e.configToModel()
}

func (e *EnvService) loadConfig() {
	viper.SetConfigName("config")
	viper.SetConfigType("yml")
	viper.AddConfigPath(".")

	viper.SetDefault("database.client", "sqlite3")
	viper.SetDefault("database.name", "usda.sql3")
	viper.SetDefault("database.max_idle", 2)
	viper.SetDefault("database.max_open_conn", 10)
	viper.SetDefault("database.max_life_time", "1h")
	viper.SetDefault("concurrentAmount", 4)
	viper.SetDefault("rabbitmq.queue", "macro-traco")
	viper.SetDefault("server.timezone", "UTC")
	viper.SetDefault("server.dev_server_host", "http://localhost:3000")
	viper.SetDefault("server.static_dir", "static")
	viper.SetDefault("router.port", 5000)

	if err := viper.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); ok {

			// no config.yml, read everything from the environment
			viper.AutomaticEnv()
			viper.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
		} else {
			panic(fmt.Errorf("Fatal error config file: %s \n", err))
		}
	}
}

func (e *EnvService) configToModel() {
	var config structs.EnviromentModel
	config.Database.Client = viper.GetString("database.client")
	config.Database.Host = viper.GetString("database.host")
	config.Database.User = viper.GetString("database.user")
	config.Database.Password = viper.GetString("database.password")
	config.Database.Db = viper.GetString("database.name")
	config.Database.MaxIdle = uint(viper.GetInt("database.max_idle"))
	config.Database.MaxOpenConn = uint(viper.GetInt("database.max_open_conn"))
	config.Database.MaxLifeTime = viper.GetString("database.max_life_time")
	config.Database.Params = viper.GetString("database.params")
	config.Database.Port = viper.GetString("database.port")
	config.Database.LogEnable = viper.GetInt("database.log_enable")
	config.ConcurrentAmount = viper.GetInt("concurrentAmount")
	config.RabbitMQ.Enable = viper.GetInt("rabbitmq.enable")
	config.RabbitMQ.Domain = viper.GetString("rabbitmq.domain")
	config.RabbitMQ.Queue = viper.GetString("rabbitmq.queue")
	config.Log.ElkEnable = viper.GetInt("log.elk.enable")
	config.Log.ElkIndex = viper.GetString("log.elk.index")
	config.Log.ElkURL = viper.GetString("log.elk.url")
	config.Log.LogstashEnable = viper.GetInt("log.logstash.enable")
	config.Log.LogstashURL = viper.GetString("log.logstash.url")
	config.Email.APIUrl = viper.GetString("email.api_url")
	config.Server.Timezone = viper.GetString("server.timezone")
	config.Server.Dev = viper.GetBool("server.dev")
	config.Server.DevServerHost = viper.GetString("server.dev_server_host")
	config.Server.StaticDir = viper.GetString("server.static_dir")
	config.Router.Port = viper.GetInt("router.port")
	EnvConfig = &config
}

// Location returns the configured timezone, UTC when unset or unknown.
func Location() *time.Location {
	if EnvConfig == nil || EnvConfig.Server.Timezone == "" {
		return time.UTC
	}
	location, err := time.LoadLocation(EnvConfig.Server.Timezone)
	if err != nil {
		return time.UTC
	}
	return location
}
