package middleware

import (
	"prauts/be/biz/middleware/accesslog"
	"prauts/be/biz/middleware/cors"
	"prauts/be/biz/middleware/recovery"
	"prauts/be/biz/middleware/trace"

	"github.com/cloudwego/hertz/pkg/app"
)

func Suite() []app.HandlerFunc {
	return []app.HandlerFunc{
		recovery.New(),  // panic handler
		trace.New(),     // request log id
		accesslog.New(), // access logs
		cors.New(),      // cross-origin requests
	}
}
