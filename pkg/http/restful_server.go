package http

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
	"liyu1981.xyz/battlogger/pkg/battlog"
	"liyu1981.xyz/battlogger/pkg/common"
	"liyu1981.xyz/battlogger/pkg/metrics"
)

type RestfulServer struct {
	Server           *gin.Engine
	Battlog          *battlog.BattLog
	RateLimiterStore *battlog.RateLimiterStore
	Metrics          *metrics.Metrics
}

func (rs *RestfulServer) logger() *zap.Logger {
	return common.GetLoggerWith(common.LoggerNameRestfulServer)
}

// RateLimit rejects a client whose bucket is empty. Clients are keyed by
// address; without a store every request passes.
func (rs *RestfulServer) RateLimit(c *gin.Context) {
	if !rs.RateLimiterStore.Allow(c.ClientIP()) {
		c.AbortWithStatusJSON(http.StatusTooManyRequests, gin.H{"error": "Too many requests."})
		return
	}
	c.Next()
}

func (rs *RestfulServer) Setup() {
	// ClientIP is the socket peer; forwarded headers are not trusted
	if err := rs.Server.SetTrustedProxies(nil); err != nil {
		rs.logger().Error("Failed to reset trusted proxies", zap.Error(err))
	}
	rs.Server.Use(rs.Metrics.GinMiddleware())

	rs.Server.GET("/healthz", rs.HealthCheck)
	rs.Server.GET("/metrics", gin.WrapH(rs.Metrics.Handler()))

	api := rs.Server.Group("/api")
	{
		api.GET("/data", rs.GetData)
		api.GET("/battery/:batteryId", rs.GetBattery)
		api.GET("/battery_details_data/:batteryId", rs.GetBatteryDetails)
		api.GET("/battery_tests/:batteryId", rs.GetBatteryTests)

		api.GET("/model_map", rs.GetModelMap)
		api.GET("/model_details", rs.GetModelDetails)
		api.GET("/model_details_data/:guid", rs.GetModelDetailsForID)
		api.GET("/chemistry_details", rs.GetChemistryDetails)
		api.GET("/formfactor_details", rs.GetFormFactorDetails)
		api.GET("/test_run_processes", rs.GetTestRunProcesses)

		api.GET("/export", rs.Export)
		api.GET("/export/:kind", rs.Export)
	}

	writes := api.Group("", rs.RateLimit)
	{
		writes.POST("/create_battery", rs.CreateBattery)
		writes.PUT("/battery/:batteryId", rs.UpdateBattery)
		writes.DELETE("/battery/:batteryId", rs.DeleteBattery)

		writes.POST("/create_model", rs.CreateModel)
		writes.POST("/create_chemistry", rs.CreateChemistry)
		writes.POST("/create_formfactor", rs.CreateFormFactor)

		writes.POST("/create_test_run", rs.CreateTestRun)
		writes.POST("/create_test_run_process", rs.CreateTestRunProcess)

		writes.POST("/import", rs.Import)
		writes.POST("/import/:kind", rs.Import)
	}
}

func statusFor(kind common.ErrorKind) int {
	switch kind {
	case common.KindValidation, common.KindIntegrity:
		return http.StatusBadRequest
	case common.KindNotFound:
		return http.StatusNotFound
	case common.KindConflict:
		return http.StatusConflict
	default:
		return http.StatusInternalServerError
	}
}

// respondError writes err as {"error": message}. Internal failures are logged
// and answered with fallback only.
func (rs *RestfulServer) respondError(c *gin.Context, err error, fallback string) {
	status := statusFor(common.KindOf(err))
	if status == http.StatusInternalServerError {
		rs.logger().Error(fallback,
			zap.String("method", c.Request.Method),
			zap.String("path", c.Request.URL.Path),
			zap.Error(err))
	}
	c.JSON(status, gin.H{"error": common.MessageOf(err, fallback)})
}

func badRequest(c *gin.Context, message string) {
	c.JSON(http.StatusBadRequest, gin.H{"error": message})
}

func (rs *RestfulServer) HealthCheck(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"status": "ok"})
}
