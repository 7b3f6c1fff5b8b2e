package main

import (
	"flag"

	"prauts/be/biz/config"
	"prauts/be/biz/db"
	"prauts/be/biz/util/logger"
)

//	@title			prauts account service
//	@version		1.0
//	@description	Account management API: CRUD and credential changes.

func main() {
	confPath := flag.String("conf", "./conf/deploy.yml", "config file path")
	flag.Parse()

	config.Init(*confPath)
	logger.Init()
	db.Init()

	NewEngine().Spin()
}
