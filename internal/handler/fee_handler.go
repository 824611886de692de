package handler

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"marketplace-payout-api/internal/constant"
	"marketplace-payout-api/internal/dto"
	"marketplace-payout-api/internal/fee"
	"marketplace-payout-api/internal/service"
	"marketplace-payout-api/internal/utils"
)

type FeeHandler struct{ svc *service.FeeService }

func NewFeeHandler() *FeeHandler {
	return &FeeHandler{svc: service.NewFeeService()}
}

// Quote prices a base amount under the active policy without side effects.
func (h *FeeHandler) Quote(c *gin.Context) {
	var req dto.FeeQuoteReq
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, utils.CustomError(constant.CodeInvalidParams, err.Error()))
		return
	}

	resp, err := h.svc.Quote(c.Request.Context(), req)
	if err != nil {
		var verr *fee.ValidationError
		if errors.As(err, &verr) {
			// Surface the specific rejection reason, never an opaque failure.
			c.JSON(http.StatusUnprocessableEntity, utils.CustomError(constant.CodeFeeValidationFailed, verr.Reason))
			return
		}
		c.JSON(http.StatusInternalServerError, utils.Error(constant.CodeSystemError))
		return
	}
	c.JSON(http.StatusOK, utils.Success(resp))
}
