package trace

import (
	"context"

	"prauts/be/biz/util/trace_info"

	"github.com/cloudwego/hertz/pkg/app"
	"github.com/google/uuid"
)

const (
	headerKeyLogId = "X-Log-ID"
)

func New() app.HandlerFunc {
	return func(ctx context.Context, c *app.RequestContext) {
		logID := c.Request.Header.Get(headerKeyLogId)
		if logID == "" {
			logID = uuid.NewString()
		}
		ctx = trace_info.WithLogId(ctx, logID)
		c.Next(ctx)
		c.Header(headerKeyLogId, logID)
	}
}
