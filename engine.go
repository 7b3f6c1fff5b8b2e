package main

import (
	"prauts/be/biz/config"
	"prauts/be/biz/handler"
	"prauts/be/biz/middleware"

	"github.com/cloudwego/hertz/pkg/app/server"
)

func NewEngine() *server.Hertz {
	addr := config.GetServerConf().Addr
	if addr == "" {
		addr = "127.0.0.1:8080"
	}

	h := server.New(server.WithHostPorts(addr))
	h.Use(middleware.Suite()...)

	registerRoutes(h)
	return h
}

func registerRoutes(h *server.Hertz) {
	v1 := h.Group("/api/v1")

	accounts := v1.Group("/accounts")
	accounts.GET("", handler.ListAccounts)
	accounts.POST("", handler.CreateAccount)
	accounts.GET("/:id", handler.GetAccount)
	accounts.PUT("/:id", handler.UpdateAccount)
	accounts.DELETE("/:id", handler.DeleteAccount)
	accounts.POST("/:id/password", handler.ChangePassword)
}
