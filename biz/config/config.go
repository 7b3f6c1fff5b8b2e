package config

import (
	"os"

	"github.com/cloudwego/hertz/pkg/common/hlog"
	"gopkg.in/yaml.v3"
)

func Init(filepath string) {
	content, err := os.ReadFile(filepath)
	if err != nil {
		panic(err)
	}

	if err := yaml.Unmarshal(content, &globalConfig); err != nil {
		panic(err)
	}

	hlog.Debugf("config debug: %+v", globalConfig)
}

func GetServerConf() ServerConf {
	return globalConfig.Server
}

func GetMySQLConf() MySQLConf {
	return globalConfig.MySQL
}

func GetRedisConf() RedisConf {
	return globalConfig.Redis
}

func GetCORSConf() CORSConf {
	return globalConfig.CORS
}

func GetCacheConf() CacheConf {
	return globalConfig.Cache
}

func GetLoggerConf() LoggerConf {
	return globalConfig.Logger
}

var globalConfig ServiceConf

type ServiceConf struct {
	Server ServerConf `yaml:"server"`
	MySQL  MySQLConf  `yaml:"mysql"`
	Redis  RedisConf  `yaml:"redis"`
	CORS   CORSConf   `yaml:"cors"`
	Cache  CacheConf  `yaml:"cache"`
	Logger LoggerConf `yaml:"logger"`
}

type ServerConf struct {
	Addr string `yaml:"addr"`
}

type MySQLConf struct {
	DBName   string `yaml:"db_name"`
	IP       string `yaml:"ip"`
	Port     int    `yaml:"port"`
	Username string `yaml:"username"`
	Password string `yaml:"password"`
}

type RedisConf struct {
	IP       string `yaml:"ip"`
	Port     int    `yaml:"port"`
	Password string `yaml:"password"`
	DB       int    `yaml:"db"`
}

type CORSConf struct {
	AllowOrigins     []string `yaml:"allow_origins"`
	AllowMethods     []string `yaml:"allow_methods"`
	AllowHeaders     []string `yaml:"allow_headers"`
	AllowCredentials bool     `yaml:"allow_credentials"`
	MaxAge           int      `yaml:"max_age"`
}

type CacheConf struct {
	KeyPrefix  string `yaml:"key_prefix"`
	TTLSeconds int    `yaml:"ttl_seconds"`
}

type LoggerConf struct {
	Level      string `yaml:"level"`
	Dir        string `yaml:"dir"`
	FileName   string `yaml:"file_name"`
	MaxSize    int    `yaml:"max_size"`
	MaxBackups int    `yaml:"max_backups"`
	MaxAge     int    `yaml:"max_age"`
}
