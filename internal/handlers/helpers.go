package handlers

import (
	"errors"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/agendavivo/agenda-api/internal/httperr"
	"github.com/agendavivo/agenda-api/internal/middleware"
)

func actingUser(c *gin.Context) (userID, establishmentID uuid.UUID) {
	userID = c.MustGet(middleware.ContextUserID).(uuid.UUID)
	establishmentID = c.MustGet(middleware.ContextEstablishmentID).(uuid.UUID)
	return
}

func parseIDParam(c *gin.Context) (uuid.UUID, bool) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		httperr.BadRequest(c, "invalid_id", "Identificador inválido.")
		return uuid.Nil, false
	}
	return id, true
}

// writeBusinessError converte códigos de negócio dos usecases para HTTP.
func writeBusinessError(c *gin.Context, err error) {
	var be httperr.BusinessError
	if !errors.As(err, &be) {
		httperr.Internal(c, "internal_error", "Erro interno do servidor: "+err.Error())
		return
	}

	switch {
	case be.Code == httperr.CodeSlotConflict:
		httperr.BadRequest(c, be.Code, "Horário já ocupado para este profissional")
	case be.Code == httperr.CodeNotFound || strings.HasSuffix(be.Code, "_not_found"):
		httperr.NotFound(c, be.Code, "Registro não encontrado.")
	case be.Code == httperr.CodeInvalidStatus:
		httperr.BadRequest(c, be.Code, "Status inválido.")
	case be.Code == httperr.CodeInvalidDateTime:
		httperr.BadRequest(c, be.Code, "Data ou hora inválida.")
	default:
		httperr.BadRequest(c, be.Code, "Requisição inválida.")
	}
}
