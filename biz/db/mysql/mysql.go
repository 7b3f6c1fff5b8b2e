package mysql

import (
	"fmt"

	"prauts/be/biz/config"
	"prauts/be/biz/model/storage"

	"gorm.io/driver/mysql"
	"gorm.io/gorm"
)

var dbConn *gorm.DB

func Init() {
	conf := config.GetMySQLConf()
	dsn := fmt.Sprintf("%s:%s@tcp(%s:%d)/%s?charset=utf8mb4&parseTime=True&loc=Local",
		conf.Username, conf.Password, conf.IP, conf.Port, conf.DBName)

	conn, err := gorm.Open(mysql.Open(dsn), &gorm.Config{})
	if err != nil {
		panic(err)
	}

	if err := conn.AutoMigrate(&storage.AccountRecord{}); err != nil {
		panic(err)
	}

	dbConn = conn
}

func GetDbConn() *gorm.DB {
	return dbConn
}

// SetDbConn swaps the connection, for tests running against sqlite.
func SetDbConn(conn *gorm.DB) {
	dbConn = conn
}
