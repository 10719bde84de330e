package handler

import (
	"bytes"
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/jengzang/life-rhythms-go/internal/mapper"
	"github.com/jengzang/life-rhythms-go/internal/models"
	"github.com/jengzang/life-rhythms-go/internal/observability"
	"github.com/jengzang/life-rhythms-go/internal/render"
	"github.com/jengzang/life-rhythms-go/internal/service"
	"github.com/jengzang/life-rhythms-go/internal/web"
	"github.com/jengzang/life-rhythms-go/pkg/response"
)

// PageTitle is the dashboard heading
const PageTitle = "Life Rhythms in Europe"

// DashboardHandler handles HTTP requests for the dashboard
type DashboardHandler struct {
	service *service.DashboardService
}

// NewDashboardHandler creates a new dashboard handler
func NewDashboardHandler(service *service.DashboardService) *DashboardHandler {
	return &DashboardHandler{service: service}
}

// Index handles GET /. An invalid selection renders the page with the
// default selection and a notice instead of an API error.
func (h *DashboardHandler) Index(c *gin.Context) {
	status := http.StatusOK
	var notice string

	sel, err := h.selection(c)
	var d mapper.Dashboard
	if err == nil {
		d, err = h.service.Dashboard(sel)
	}
	if errors.Is(err, mapper.ErrInvalidFilterValue) {
		_ = c.Error(err)
		status = http.StatusBadRequest
		notice = err.Error() + "; showing the default selection"
		d, err = h.service.Dashboard(h.service.DefaultSelection())
	}
	if err != nil {
		response.InternalError(c, "Failed to build views", err)
		return
	}

	var buf bytes.Buffer
	page := web.Page{Title: PageTitle, Options: h.service.Options(), Dashboard: d, Notice: notice}
	if err := web.Render(&buf, page); err != nil {
		response.InternalError(c, "Failed to render page", err)
		return
	}
	c.Data(status, "text/html; charset=utf-8", buf.Bytes())
}

// Health handles GET /health
func (h *DashboardHandler) Health(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"status": "ok",
		"rows":   h.service.Rows(),
	})
}

// GetFilters handles GET /api/v1/filters
func (h *DashboardHandler) GetFilters(c *gin.Context) {
	response.Success(c, h.service.Options())
}

// GetViews handles GET /api/v1/views
func (h *DashboardHandler) GetViews(c *gin.Context) {
	sel, err := h.selection(c)
	if err != nil {
		h.fail(c, err)
		return
	}

	d, err := h.service.Dashboard(sel)
	if err != nil {
		h.fail(c, err)
		return
	}
	response.Success(c, d)
}

// GetView handles GET /api/v1/views/:view
func (h *DashboardHandler) GetView(c *gin.Context) {
	sel, err := h.selection(c)
	if err != nil {
		h.fail(c, err)
		return
	}

	v, err := h.service.View(c.Param("view"), sel)
	if err != nil {
		h.fail(c, err)
		return
	}
	response.Success(c, v)
}

// GetPreview handles GET /api/v1/views/:view/preview.png
func (h *DashboardHandler) GetPreview(c *gin.Context) {
	sel, err := h.selection(c)
	if err != nil {
		h.fail(c, err)
		return
	}

	var buf bytes.Buffer
	if err := h.service.Preview(c.Param("view"), sel, &buf); err != nil {
		h.fail(c, err)
		return
	}
	c.Data(http.StatusOK, "image/png", buf.Bytes())
}

// selection binds the filter query parameters over the default selection;
// parameters absent from the query keep their default
func (h *DashboardHandler) selection(c *gin.Context) (models.Selection, error) {
	sel := h.service.DefaultSelection()
	if err := c.ShouldBindQuery(&sel); err != nil {
		field, value := unboundFilter(c)
		observability.RecordInvalidFilter(field)
		return h.service.DefaultSelection(), &mapper.InvalidFilterValueError{Field: field, Value: value}
	}
	return sel, nil
}

// integerFilters are the query parameters bound to integer selection fields
var integerFilters = []string{"year", "hour"}

// unboundFilter names the query parameter a failed bind tripped on
func unboundFilter(c *gin.Context) (string, string) {
	for _, field := range integerFilters {
		if v, ok := c.GetQuery(field); ok && v != "" {
			if _, err := strconv.Atoi(v); err != nil {
				return field, v
			}
		}
	}
	return "query", c.Request.URL.RawQuery
}

func (h *DashboardHandler) fail(c *gin.Context, err error) {
	switch {
	case errors.Is(err, mapper.ErrInvalidFilterValue):
		response.BadRequest(c, "Invalid filter value", err)
	case errors.Is(err, mapper.ErrUnknownView):
		response.NotFound(c, "Unknown view", err)
	case errors.Is(err, render.ErrUnsupportedMark):
		response.UnprocessableEntity(c, "Preview not available for this view", err)
	default:
		response.InternalError(c, "Failed to build view", err)
	}
}
