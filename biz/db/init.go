package db

import (
	"prauts/be/biz/db/mysql"
	"prauts/be/biz/db/redis"
)

func Init() {
	mysql.Init()
	redis.Init()
}
