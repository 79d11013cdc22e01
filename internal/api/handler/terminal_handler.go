package handler

import (
	"bytes"
	"fmt"
	"io"
	"iter"
	"net/http"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/tpemanager/tpe-manager/internal/api/metrics"
	"github.com/tpemanager/tpe-manager/internal/core/ports"
)

const exportFileLayout = "20060102_150405"

// SpreadsheetEncoder writes a header row followed by rows to w.
type SpreadsheetEncoder interface {
	Encode(w io.Writer, headers []string, rows iter.Seq2[ports.ExportRow, error]) error
}

// TerminalHandler handles HTTP requests for the terminal inventory.
type TerminalHandler struct {
	service     ports.TerminalService
	reports     ports.ReportService
	encoder     SpreadsheetEncoder
	contentType string
	now         func() time.Time
}

func NewTerminalHandler(service ports.TerminalService, reports ports.ReportService, encoder SpreadsheetEncoder, contentType string) *TerminalHandler {
	return &TerminalHandler{
		service:     service,
		reports:     reports,
		encoder:     encoder,
		contentType: contentType,
		now:         time.Now,
	}
}

// List handles GET /api/tpe.
//
// @Summary      List terminals
// @Description  Paginated list. Filters combine with AND.
// @Tags         tpe
// @Produce      json
// @Security     BearerAuth
// @Param        page             query     int     false  "Page number (1-based)"  default(1)
// @Param        page_size        query     int     false  "Items per page (max 100)"  default(10)
// @Param        search           query     string  false  "Substring of service name or shop id"
// @Param        tpe_model        query     string  false  "Exact model"
// @Param        connection_type  query     string  false  "ethernet or 4g5g"
// @Success      200              {object}  listTerminalsResponse
// @Failure      400              {object}  errorResponse
// @Failure      401              {object}  errorResponse
// @Router       /api/tpe [get]
func (h *TerminalHandler) List(c echo.Context) error {
	page, err := queryInt(c, "page", 1)
	if err != nil {
		return err
	}
	pageSize, err := queryInt(c, "page_size", 0)
	if err != nil {
		return err
	}

	result, err := h.service.List(c.Request().Context(), ports.ListTerminalsInput{
		Page:           page,
		PageSize:       pageSize,
		Search:         c.QueryParam("search"),
		Model:          c.QueryParam("tpe_model"),
		ConnectionType: c.QueryParam("connection_type"),
	})
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, toListTerminalsResponse(result))
}

// Get handles GET /api/tpe/:id.
//
// @Summary      Get a terminal
// @Tags         tpe
// @Produce      json
// @Security     BearerAuth
// @Param        id   path      string  true  "Terminal ID"
// @Success      200  {object}  terminalResponse
// @Failure      404  {object}  errorResponse
// @Router       /api/tpe/{id} [get]
func (h *TerminalHandler) Get(c echo.Context) error {
	t, err := h.service.Get(c.Request().Context(), c.Param("id"))
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, toTerminalResponse(t))
}

// Create handles POST /api/tpe. A shop id is generated when none is given.
//
// @Summary      Register a terminal
// @Tags         tpe
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        body  body      createTerminalRequest  true  "Terminal"
// @Success      201   {object}  terminalResponse
// @Failure      400   {object}  errorResponse
// @Router       /api/tpe [post]
func (h *TerminalHandler) Create(c echo.Context) error {
	var req createTerminalRequest
	if err := bindAndValidate(c, &req); err != nil {
		return err
	}
	input, err := toTerminalInput(req)
	if err != nil {
		return err
	}

	t, err := h.service.Create(c.Request().Context(), input)
	if err != nil {
		return err
	}

	model := string(t.Model)
	if model == "" {
		model = "unspecified"
	}
	metrics.TerminalsCreatedTotal.WithLabelValues(model).Inc()
	return c.JSON(http.StatusCreated, toTerminalResponse(t))
}

// Update handles PUT /api/tpe/:id.
//
// @Summary      Update a terminal
// @Tags         tpe
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        id    path      string                 true  "Terminal ID"
// @Param        body  body      updateTerminalRequest  true  "Fields to change"
// @Success      200   {object}  terminalResponse
// @Failure      400   {object}  errorResponse
// @Failure      404   {object}  errorResponse
// @Router       /api/tpe/{id} [put]
func (h *TerminalHandler) Update(c echo.Context) error {
	var req updateTerminalRequest
	if err := bindAndValidate(c, &req); err != nil {
		return err
	}

	t, err := h.service.Update(c.Request().Context(), c.Param("id"), toTerminalPatch(req))
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, toTerminalResponse(t))
}

// Delete handles DELETE /api/tpe/:id.
//
// @Summary      Delete a terminal
// @Tags         tpe
// @Security     BearerAuth
// @Param        id   path  string  true  "Terminal ID"
// @Success      204
// @Failure      404  {object}  errorResponse
// @Router       /api/tpe/{id} [delete]
func (h *TerminalHandler) Delete(c echo.Context) error {
	if err := h.service.Delete(c.Request().Context(), c.Param("id")); err != nil {
		return err
	}
	metrics.TerminalsDeletedTotal.Inc()
	return c.NoContent(http.StatusNoContent)
}

// Stats handles GET /api/tpe/stats/summary.
//
// @Summary      Inventory summary
// @Tags         tpe
// @Produce      json
// @Security     BearerAuth
// @Success      200  {object}  domain.TerminalStats
// @Router       /api/tpe/stats/summary [get]
func (h *TerminalHandler) Stats(c echo.Context) error {
	stats, err := h.service.Stats(c.Request().Context())
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, stats)
}

// Export handles GET /api/tpe/export/excel. The workbook is built in memory
// so a storage failure still yields a JSON error.
//
// @Summary      Export the inventory
// @Tags         tpe
// @Produce      application/vnd.openxmlformats-officedocument.spreadsheetml.sheet
// @Security     BearerAuth
// @Success      200  {file}    file
// @Failure      500  {object}  errorResponse
// @Router       /api/tpe/export/excel [get]
func (h *TerminalHandler) Export(c echo.Context) error {
	var (
		buf   bytes.Buffer
		count int
	)
	rows := countRows(h.reports.ExportRows(c.Request().Context()), &count)
	if err := h.encoder.Encode(&buf, h.reports.ExportHeaders(), rows); err != nil {
		metrics.TerminalExportsTotal.WithLabelValues("error").Inc()
		return fmt.Errorf("export terminals: %w", err)
	}

	metrics.TerminalExportsTotal.WithLabelValues("success").Inc()
	metrics.TerminalExportRows.Observe(float64(count))

	filename := fmt.Sprintf("tpe_export_%s.xlsx", h.now().Format(exportFileLayout))
	c.Response().Header().Set(echo.HeaderContentDisposition, fmt.Sprintf("attachment; filename=%q", filename))
	return c.Blob(http.StatusOK, h.contentType, buf.Bytes())
}

func countRows(rows iter.Seq2[ports.ExportRow, error], n *int) iter.Seq2[ports.ExportRow, error] {
	return func(yield func(ports.ExportRow, error) bool) {
		for row, err := range rows {
			if err == nil {
				*n++
			}
			if !yield(row, err) {
				return
			}
		}
	}
}
