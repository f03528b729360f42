package server

import (
	"context"
	"errors"
	"net/http"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/sirupsen/logrus"

	"github.com/stocklens/stocklens/pkg/analyzer"
	"github.com/stocklens/stocklens/pkg/chart"
	"github.com/stocklens/stocklens/pkg/config"
	"github.com/stocklens/stocklens/pkg/datasource"
	"github.com/stocklens/stocklens/pkg/metrics"
	"github.com/stocklens/stocklens/pkg/types"
)

var log = logrus.WithFields(logrus.Fields{
	"component": "server",
})

// Run serves the dashboard and the JSON API until the context ends,
// then drains in-flight requests before returning.
func Run(ctx context.Context, userConfig *config.Config, session *analyzer.Analyzer) error {
	srv := &http.Server{
		Addr:    userConfig.Server.Bind,
		Handler: NewEngine(userConfig, session),
	}

	go func() {
		<-ctx.Done()

		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()

		if err := srv.Shutdown(shutdownCtx); err != nil {
			log.WithError(err).Error("server shutdown error")
		}
	}()

	log.Infof("serving dashboard on %s", userConfig.Server.Bind)
	if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
		return err
	}

	return nil
}

// NewEngine wires all routes. Split from Run so tests can drive the
// handlers without a listener.
func NewEngine(userConfig *config.Config, session *analyzer.Analyzer) *gin.Engine {
	r := gin.Default()
	r.Use(cors.New(cors.Config{
		AllowOrigins:     []string{"*"},
		AllowHeaders:     []string{"Origin", "Content-Type"},
		ExposeHeaders:    []string{"Content-Length"},
		AllowMethods:     []string{"GET", "POST"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}))
	r.Use(requestID())

	r.SetHTMLTemplate(dashboardTemplate)

	r.GET("/", dashboardHandler(userConfig, session))

	r.GET("/api/ping", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"message": "pong"})
	})

	r.GET("/api/sources", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"sources": datasource.Names()})
	})

	r.GET("/api/analyze", analyzeHandler(session))

	r.GET("/charts/:kind", chartHandler(session))

	r.GET("/metrics", gin.WrapH(promhttp.Handler()))

	return r
}

func requestID() gin.HandlerFunc {
	return func(c *gin.Context) {
		id := c.GetHeader("X-Request-Id")
		if id == "" {
			id = uuid.New().String()
		}

		c.Writer.Header().Set("X-Request-Id", id)
		c.Next()
	}
}

func requestFromQuery(c *gin.Context) analyzer.Request {
	return analyzer.Request{
		Symbol:   c.Query("symbol"),
		Period:   types.Period(c.Query("period")),
		Interval: types.Interval(c.Query("interval")),
	}
}

func analyzeHandler(session *analyzer.Analyzer) gin.HandlerFunc {
	return func(c *gin.Context) {
		startTime := time.Now()

		report, err := session.Analyze(c.Request.Context(), requestFromQuery(c))
		if err != nil {
			metrics.ObserveSessionError(session.SourceName(), err)

			if errors.Is(err, datasource.ErrNoData) {
				c.JSON(http.StatusNotFound, gin.H{"error": datasource.NoDataMessage})
				return
			}

			log.WithError(err).Error("analyze query error")
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}

		metrics.ObserveSession(report, time.Since(startTime))
		c.JSON(http.StatusOK, gin.H{"report": report})
	}
}

func chartHandler(session *analyzer.Analyzer) gin.HandlerFunc {
	return func(c *gin.Context) {
		kind, err := chart.ParseKind(c.Param("kind"))
		if err != nil {
			c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
			return
		}

		report, err := session.Analyze(c.Request.Context(), requestFromQuery(c))
		if err != nil {
			if errors.Is(err, datasource.ErrNoData) {
				c.JSON(http.StatusNotFound, gin.H{"error": datasource.NoDataMessage})
				return
			}

			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}

		canvas := chart.Draw(kind, report)
		if canvas == nil {
			c.JSON(http.StatusNotFound, gin.H{"error": panelUnavailable(kind)})
			return
		}

		png, err := canvas.RenderPNG()
		if err != nil {
			log.WithError(err).Errorf("can not render %s panel", kind)
			c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
			return
		}

		c.Data(http.StatusOK, "image/png", png)
	}
}

func panelUnavailable(kind chart.Kind) string {
	switch kind {
	case chart.KindMACD:
		return analyzer.WarnMACDUnavailable
	case chart.KindOBV:
		return analyzer.WarnOBVUnavailable
	}

	return string(kind) + " data not available"
}

func dashboardHandler(userConfig *config.Config, session *analyzer.Analyzer) gin.HandlerFunc {
	return func(c *gin.Context) {
		data := DashboardData{
			Symbol:    c.DefaultQuery("symbol", userConfig.Analyzer.Symbol),
			Period:    types.Period(c.DefaultQuery("period", string(userConfig.Analyzer.Period))),
			Interval:  types.Interval(c.DefaultQuery("interval", string(userConfig.Analyzer.Interval))),
			Periods:   types.AllPeriods,
			Intervals: types.AllIntervals,
		}

		startTime := time.Now()
		report, err := session.Analyze(c.Request.Context(), analyzer.Request{
			Symbol:   data.Symbol,
			Period:   data.Period,
			Interval: data.Interval,
		})

		switch {
		case errors.Is(err, datasource.ErrNoData):
			metrics.ObserveSessionError(session.SourceName(), err)
			data.Error = datasource.NoDataMessage

		case err != nil:
			metrics.ObserveSessionError(session.SourceName(), err)
			data.Error = err.Error()

		default:
			metrics.ObserveSession(report, time.Since(startTime))
			data.Report = report
		}

		c.HTML(http.StatusOK, "dashboard", data)
	}
}
