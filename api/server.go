package api

import (
	"context"
	"embed"
	"html/template"
	"net/http"
	"time"

	sentrygin "github.com/getsentry/sentry-go/gin"
	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"
	"github.com/spf13/viper"

	"github.com/bitmark-inc/ukcovid-dashboard/dashboard"
	"github.com/bitmark-inc/ukcovid-dashboard/external/ukcovid"
	"github.com/bitmark-inc/ukcovid-dashboard/logmodule"
	"github.com/bitmark-inc/ukcovid-dashboard/render"
)

var log *logrus.Entry

func init() {
	log = logrus.WithField("prefix", "gin")
}

//go:embed templates/*.tmpl
var templates embed.FS

// Server to run a http server instance
type Server struct {
	// Server instance
	server *http.Server

	// chart builders
	builder *dashboard.Builder
	graph   *dashboard.Graph

	// image output
	renderer *render.Renderer

	// exposition of the fetch metrics, optional
	metricsHandler http.Handler
}

// NewServer new instance of server
func NewServer(
	fetcher ukcovid.Fetcher,
	lang string,
	renderer *render.Renderer,
	metricsHandler http.Handler) *Server {
	builder := dashboard.NewBuilder(fetcher, lang)

	if renderer == nil {
		renderer = render.New(0, 0)
	}

	return &Server{
		builder:        builder,
		graph:          dashboard.NewGraph(builder),
		renderer:       renderer,
		metricsHandler: metricsHandler,
	}
}

// Run to run the server
func (s *Server) Run(addr string) error {
	s.server = &http.Server{
		Addr:    addr,
		Handler: s.setupRouter(),
	}

	return s.server.ListenAndServe()
}

func (s *Server) setupRouter() *gin.Engine {
	r := gin.New()
	r.Use(gin.Recovery())
	r.Use(sentrygin.New(sentrygin.Options{
		Repanic:         true,
		WaitForDelivery: false,
		Timeout:         10 * time.Second,
	}))
	r.SetHTMLTemplate(template.Must(template.New("").ParseFS(templates, "templates/*.tmpl")))

	r.GET("/", logmodule.Ginrus("Page"), s.page)

	chartRoute := r.Group("/charts")
	chartRoute.Use(logmodule.Ginrus("Chart"))
	{
		chartRoute.GET("/:name", s.chartImage)
	}

	apiRoute := r.Group("/api")
	apiRoute.Use(logmodule.Ginrus("API"))
	{
		apiRoute.GET("/options", s.options)
		apiRoute.GET("/summary", s.summary)
		apiRoute.GET("/charts/trend", s.trendChart)
		apiRoute.GET("/charts/comparison", s.comparisonChart)
		apiRoute.GET("/charts/age-gender", s.ageGenderChart)
		apiRoute.POST("/dashboard", s.dashboard)
	}

	if s.metricsHandler != nil {
		metricRoute := r.Group("/metrics")
		metricRoute.Use(cors.New(cors.Config{
			AllowMethods:     []string{"GET"},
			AllowHeaders:     []string{"Origin"},
			ExposeHeaders:    []string{"Content-Length"},
			AllowCredentials: true,
			AllowAllOrigins:  true,
			MaxAge:           12 * time.Hour,
		}))
		metricRoute.Use(s.apikeyAuthentication(viper.GetString("server.apikey.metric")))
		{
			metricRoute.GET("", gin.WrapH(s.metricsHandler))
		}
	}

	r.GET("/healthz", s.healthz)

	return r
}

// Shutdown to shutdown the server
func (s *Server) Shutdown(ctx context.Context) error {
	return s.server.Shutdown(ctx)
}

// shouldInterupt sends error message and determine if it should interupt the current flow
func shouldInterupt(err error, c *gin.Context) bool {
	if err == nil {
		return false
	}

	if hub := sentrygin.GetHubFromContext(c); hub != nil {
		hub.CaptureException(err)
	}

	if ukcovid.IsUnreachable(err) {
		abortWithEncoding(c, http.StatusBadGateway, errorStatisticsUnavailable, err)
		return true
	}

	log.Error(err)
	abortWithEncoding(c, http.StatusInternalServerError, errorInternalServer, err)
	return true
}

func (s *Server) healthz(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"status":  "OK",
		"version": viper.GetString("server.version"),
	})
}

func responseWithEncoding(c *gin.Context, code int, obj ErrorResponse) {
	acceptEncoding := c.GetHeader("Accept-Encoding")
	switch acceptEncoding {
	default:
		c.JSON(code, obj)
	}
}

func abortWithEncoding(c *gin.Context, code int, obj ErrorResponse, errors ...error) {
	for _, err := range errors {
		c.Error(err)
	}
	responseWithEncoding(c, code, obj)
	c.Abort()
}
