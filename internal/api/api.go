package api

import (
	"context"
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	"github.com/spf13/viper"

	"github.com/cleanocean/coa-backend/internal/api/controller"
	"github.com/cleanocean/coa-backend/internal/pkg/constants"
	"github.com/cleanocean/coa-backend/internal/pkg/logger"
	"github.com/cleanocean/coa-backend/internal/pkg/store"
	"github.com/cleanocean/coa-backend/internal/service/auth"
	"github.com/cleanocean/coa-backend/internal/service/records"
	"github.com/cleanocean/coa-backend/internal/service/report"
)

type APIService struct {
	router *echo.Echo

	reportService  *report.Service
	recordsService *records.Service
	authService    *auth.Service
}

func (svc *APIService) Serve(addr string) {
	logger.Fatal(context.Background(), svc.router.Start(addr))
}

func (svc *APIService) Shutdown(ctx context.Context) error {
	return svc.router.Shutdown(ctx)
}

// ServeHTTP lets tests drive the router without opening a listener.
func (svc *APIService) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	svc.router.ServeHTTP(w, r)
}

func NewAPIService(st store.Store) (*APIService, error) {
	svc := &APIService{router: echo.New()}
	svc.router.HideBanner = true

	svc.router.Validator = NewValidator()
	svc.router.Binder = NewBinder()
	svc.router.JSONSerializer = NewSerializer()
	svc.router.Use(middleware.Logger())
	svc.router.HTTPErrorHandler = httpErrorHandler
	svc.router.Use(middleware.CORSWithConfig(middleware.CORSConfig{
		AllowOrigins: []string{viper.GetString(constants.ViperCORSOrigin)},
		AllowMethods: []string{echo.GET, echo.PUT, echo.POST, echo.DELETE},
		AllowHeaders: []string{"Content-Type", "Authorization"},
	}))

	svc.reportService = report.NewService(st)
	svc.recordsService = records.NewService(st)
	svc.authService = auth.NewService(st)

	cntrl := controller.NewController(svc.reportService, svc.recordsService, svc.authService)

	svc.router.GET("/", cntrl.Index)
	svc.router.GET("/dirtydozen", cntrl.DirtyDozen)
	svc.router.GET("/breakdown", cntrl.Breakdown)
	svc.router.GET("/locations", cntrl.Locations)
	svc.router.GET("/locationsHierarchy", cntrl.LocationsHierarchy)
	svc.router.GET("/validdaterange", cntrl.ValidDateRange)
	svc.router.GET("/validmaterials", cntrl.ValidMaterials)
	svc.router.GET("/itemslist", cntrl.ItemsList)

	authGroup := svc.router.Group("/auth")
	authGroup.POST("/login", cntrl.Login)

	items := svc.router.Group("/items")
	items.GET("", cntrl.ListItems)
	items.POST("", cntrl.AddItem, svc.AuthMiddleware)
	items.PUT("", cntrl.UpdateItem, svc.AuthMiddleware)
	items.DELETE("", cntrl.RemoveItem, svc.AuthMiddleware)

	sites := svc.router.Group("/sites")
	sites.GET("", cntrl.ListSites)
	sites.POST("", cntrl.AddSite, svc.AuthMiddleware)
	sites.PUT("", cntrl.UpdateSite, svc.AuthMiddleware)
	sites.DELETE("", cntrl.RemoveSite, svc.AuthMiddleware)

	events := svc.router.Group("/events")
	events.GET("", cntrl.ListEvents)
	events.POST("", cntrl.AddEvent, svc.AuthMiddleware)
	events.PUT("", cntrl.UpdateEvent, svc.AuthMiddleware)
	events.DELETE("", cntrl.RemoveEvent, svc.AuthMiddleware)

	eventItems := svc.router.Group("/eventitems")
	eventItems.GET("", cntrl.ListEventItems)
	eventItems.POST("", cntrl.AddEventItem, svc.AuthMiddleware)
	eventItems.PUT("", cntrl.UpdateEventItem, svc.AuthMiddleware)
	eventItems.DELETE("", cntrl.RemoveEventItem, svc.AuthMiddleware)

	return svc, nil
}
