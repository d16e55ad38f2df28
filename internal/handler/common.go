package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/skillwaves/skillwaves-server/internal/constant"
	"github.com/skillwaves/skillwaves-server/pkg/logger"
)

// upstreamFailure reports a failed database round trip as a structured 500,
// logged under the request's correlation ID. The original service let these
// surface as unhandled rejections; here they become an explicit
// UpstreamFailure response.
func upstreamFailure(c *gin.Context, err error) {
	log := logger.WithError(logger.GetLoggerFromContext(c.Request.Context()), err)
	log.Error("Upstream database call failed",
		zap.String("path", c.Request.URL.Path),
		zap.String("method", c.Request.Method))

	resData := constant.INTERNAL_SERVER_ERROR
	resData.Error = err.Error()
	c.JSON(http.StatusInternalServerError, resData)
}
