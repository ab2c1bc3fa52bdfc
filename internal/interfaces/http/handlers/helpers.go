package handlers

import (
	domainerrors "captura-leads.backend/internal/domain/errors"
	"captura-leads.backend/internal/interfaces/http/response"
	"captura-leads.backend/pkg/utils"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// parseUUIDParam reads a path parameter as a UUID, writing a 400 on failure
func parseUUIDParam(c *gin.Context, name string) (uuid.UUID, bool) {
	id, err := utils.ParseID(c.Param(name))
	if err != nil {
		response.Error(c, domainerrors.BadRequest("invalid "+name))
		return uuid.Nil, false
	}
	return id, true
}

// bindPage reads offset/limit query parameters. Clamping happens in the usecases.
func bindPage(c *gin.Context) (utils.PageParams, bool) {
	var page utils.PageParams
	if err := c.ShouldBindQuery(&page); err != nil {
		response.BindError(c, err)
		return page, false
	}
	return page, true
}

func bindJSON(c *gin.Context, dst interface{}) bool {
	if err := c.ShouldBindJSON(dst); err != nil {
		response.BindError(c, err)
		return false
	}
	return true
}
