package hiredemployee

import (
	"net/http"
	"strconv"

	hiredemployeeerrors "github.com/gnat1399/globant-data-engineering-challenge-gn/internal/hiredemployee/errors"
	"github.com/gnat1399/globant-data-engineering-challenge-gn/internal/shared/apperror"
	"github.com/gnat1399/globant-data-engineering-challenge-gn/internal/shared/response"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

type Handler struct {
	service Service
	logger  *zap.Logger
}

func NewHandler(service Service, logger ...*zap.Logger) *Handler {
	l := zap.L().Named("hiredemployee.handler")
	if len(logger) > 0 && logger[0] != nil {
		l = logger[0].Named("hiredemployee.handler")
	}
	return &Handler{service: service, logger: l}
}

func (h *Handler) writeServiceError(c *gin.Context, err error) {
	httpErr := apperror.ToHTTP(err)
	h.logger.Warn("hired employee request failed",
		zap.String("path", c.FullPath()),
		zap.Int("status", httpErr.Status),
		zap.Error(err),
	)
	response.Error(c, httpErr.Status, httpErr.Code, httpErr.Message, httpErr.Details)
}

func (h *Handler) GetAll(c *gin.Context) {
	filter, ok := parseFilter(c)
	if !ok {
		h.writeServiceError(c, hiredemployeeerrors.ErrInvalidFilter)
		return
	}

	page, _ := strconv.Atoi(c.DefaultQuery("page", "1"))
	if page < 1 {
		page = 1
	}
	pageSize, _ := strconv.Atoi(c.DefaultQuery("page_size", "20"))
	if pageSize < 1 || pageSize > 100 {
		pageSize = 20
	}

	resp, total, err := h.service.GetAll(c.Request.Context(), filter, page, pageSize)
	if err != nil {
		h.writeServiceError(c, err)
		return
	}

	meta := response.NewPaginationMeta(total, page, pageSize)
	response.Success(c, http.StatusOK, resp, &meta)
}

func (h *Handler) GetById(c *gin.Context) {
	resp, err := h.service.GetByID(c.Request.Context(), c.Param("id"))
	if err != nil {
		h.writeServiceError(c, err)
		return
	}

	response.Success(c, http.StatusOK, resp, nil)
}

func parseFilter(c *gin.Context) (ListFilter, bool) {
	var filter ListFilter
	for _, q := range []struct {
		key string
		dst **int64
	}{
		{"department_id", &filter.DepartmentID},
		{"job_id", &filter.JobID},
	} {
		raw := c.Query(q.key)
		if raw == "" {
			continue
		}
		v, err := strconv.ParseInt(raw, 10, 64)
		if err != nil || v <= 0 {
			return ListFilter{}, false
		}
		*q.dst = &v
	}
	return filter, true
}
