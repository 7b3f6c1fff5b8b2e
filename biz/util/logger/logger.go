package logger

import (
	"github.com/cloudwego/hertz/pkg/common/hlog"
)

func Init() {
	hlog.SetOutput(newOutput())
	hlog.SetLevel(newLevel())
}
