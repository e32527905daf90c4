package server

import (
	"errors"
	"fmt"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/carboncentrik/footprint/internal/engine"
	"github.com/carboncentrik/footprint/internal/history"
	"github.com/carboncentrik/footprint/internal/pagination"
	"github.com/carboncentrik/footprint/internal/recommend"
	"github.com/carboncentrik/footprint/internal/survey"
	"github.com/carboncentrik/footprint/pkg/version"
)

// userID resolves the caller identity from the X-User-ID header.
func userID(c *gin.Context) string {
	if id := c.GetHeader(HeaderUserID); id != "" {
		return id
	}
	return engine.DefaultUserID
}

// writeError maps a pipeline error onto an HTTP status and a stable error
// code that clients can branch on.
func writeError(c *gin.Context, err error) {
	status, code := errorStatus(err)
	c.JSON(status, gin.H{"error": code, "message": err.Error()})
}

func errorStatus(err error) (int, string) {
	switch {
	case errors.Is(err, survey.ErrInvalidCategory):
		return http.StatusBadRequest, "invalid_category"
	case errors.Is(err, survey.ErrInvalidValue):
		return http.StatusBadRequest, "invalid_value"
	case errors.Is(err, survey.ErrUnknownField):
		return http.StatusBadRequest, "unknown_field"
	case errors.Is(err, history.ErrInvalidUserID):
		return http.StatusBadRequest, "invalid_user_id"
	case errors.Is(err, history.ErrNotFound):
		return http.StatusNotFound, "no_history"
	case errors.Is(err, engine.ErrNoModel):
		return http.StatusServiceUnavailable, "no_model"
	default:
		return http.StatusInternalServerError, "internal_error"
	}
}

func (s *Server) handleHealthz(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"status": "ok", "version": version.GetVersion()})
}

func (s *Server) handleEstimate(c *gin.Context) {
	var form survey.Form
	if err := c.ShouldBindJSON(&form); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid_request", "message": err.Error()})
		return
	}

	answers, err := form.ToAnswers()
	if err != nil {
		writeError(c, err)
		return
	}

	result, err := s.engine.Estimate(c.Request.Context(), answers)
	if err != nil {
		writeError(c, err)
		return
	}

	c.JSON(http.StatusOK, result)
}

type saveResponse struct {
	Result *engine.Result `json:"result"`
	Record history.Record `json:"record"`
}

func (s *Server) handleSave(c *gin.Context) {
	var form survey.Form
	if err := c.ShouldBindJSON(&form); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid_request", "message": err.Error()})
		return
	}

	answers, err := form.ToAnswers()
	if err != nil {
		writeError(c, err)
		return
	}

	result, record, err := s.engine.Save(c.Request.Context(), userID(c), answers)
	if err != nil {
		writeError(c, err)
		return
	}

	c.JSON(http.StatusCreated, saveResponse{Result: result, Record: record})
}

func (s *Server) handleDashboard(c *gin.Context) {
	d, err := s.engine.Dashboard(c.Request.Context(), userID(c))
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, d)
}

// historyResponse is the paginated record envelope for GET /api/v1/history.
type historyResponse struct {
	UserID     string           `json:"user_id"`
	Records    []history.Record `json:"records"`
	Pagination pagination.Meta  `json:"pagination"`
}

// queryInt parses an optional integer query parameter into dst.
func queryInt(c *gin.Context, name string, dst *int) error {
	raw := c.Query(name)
	if raw == "" {
		return nil
	}
	v, err := strconv.Atoi(raw)
	if err != nil {
		return fmt.Errorf("%s must be an integer", name)
	}
	*dst = v
	return nil
}

// paginationFromQuery reads the optional limit/offset and page/page_size
// query parameters, falling back to the defaults.
func paginationFromQuery(c *gin.Context) (pagination.Params, error) {
	params := *pagination.NewParams()
	if err := queryInt(c, "limit", &params.Limit); err != nil {
		return params, err
	}
	if err := queryInt(c, "offset", &params.Offset); err != nil {
		return params, err
	}
	if err := queryInt(c, "page", &params.Page); err != nil {
		return params, err
	}
	if err := queryInt(c, "page_size", &params.PageSize); err != nil {
		return params, err
	}
	return params, params.Validate()
}

func (s *Server) handleHistory(c *gin.Context) {
	params, err := paginationFromQuery(c)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid_pagination", "message": err.Error()})
		return
	}

	h, err := s.engine.History(c.Request.Context(), userID(c))
	if err != nil {
		writeError(c, err)
		return
	}

	c.JSON(http.StatusOK, historyResponse{
		UserID:     userID(c),
		Records:    pagination.Apply(h.History, params),
		Pagination: pagination.NewMeta(params, h.Len()),
	})
}

// handleRecommendations recomputes the recommendations for the caller's
// latest stored answers, mirroring the dashboard's recommendations section.
func (s *Server) handleRecommendations(c *gin.Context) {
	h, err := s.engine.History(c.Request.Context(), userID(c))
	if err != nil {
		writeError(c, err)
		return
	}

	latest, ok := h.Latest()
	if !ok {
		writeError(c, fmt.Errorf("%w: history is empty", history.ErrNotFound))
		return
	}

	c.JSON(http.StatusOK, gin.H{"recommendations": recommend.For(latest.InputData)})
}
