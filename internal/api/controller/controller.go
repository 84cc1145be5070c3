package controller

import (
	"net/http"
	"strconv"

	"github.com/labstack/echo/v4"

	"github.com/cleanocean/coa-backend/internal/pkg/constants"
	"github.com/cleanocean/coa-backend/internal/service/auth"
	"github.com/cleanocean/coa-backend/internal/service/records"
	"github.com/cleanocean/coa-backend/internal/service/report"
)

type Controller struct {
	reports *report.Service
	records *records.Service
	auth    *auth.Service
}

func NewController(reports *report.Service, records *records.Service, auth *auth.Service) *Controller {
	return &Controller{reports: reports, records: records, auth: auth}
}

// ctxUsername returns the username the auth middleware put on the context.
// Guarded routes always have one.
func ctxUsername(ctx echo.Context) string {
	username, _ := ctx.Get(constants.CtxKeyUsername).(string)
	return username
}

func idParam(ctx echo.Context, key string) (int64, error) {
	id, err := strconv.ParseInt(ctx.QueryParams().Get(key), 10, 64)
	if err != nil {
		return 0, constants.NewCodedError(http.StatusBadRequest, "invalid "+key)
	}

	return id, nil
}

type statusResponse struct {
	Status string `json:"status"`
}

var statusOK = statusResponse{Status: "ok"}
