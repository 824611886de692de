package handler

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"marketplace-payout-api/internal/constant"
	"marketplace-payout-api/internal/dto"
	"marketplace-payout-api/internal/fee"
	"marketplace-payout-api/internal/service"
	"marketplace-payout-api/internal/utils"
)

type OrderHandler struct{ svc *service.OrderService }

func NewOrderHandler() *OrderHandler {
	return &OrderHandler{svc: service.NewOrderService()}
}

func (h *OrderHandler) Create(c *gin.Context) {
	var req dto.CreateOrderReq
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, utils.CustomError(constant.CodeInvalidParams, err.Error()))
		return
	}

	resp, err := h.svc.Create(c.Request.Context(), req)
	if err != nil {
		var verr *fee.ValidationError
		if errors.As(err, &verr) {
			c.JSON(http.StatusUnprocessableEntity, utils.CustomError(constant.CodeFeeValidationFailed, verr.Reason))
			return
		}
		var cerr constant.Error
		if errors.As(err, &cerr) {
			c.JSON(http.StatusBadRequest, utils.Error(cerr.Code()))
			return
		}
		c.JSON(http.StatusInternalServerError, utils.Error(constant.CodeSystemError))
		return
	}
	c.JSON(http.StatusOK, utils.Success(resp))
}

func (h *OrderHandler) Complete(c *gin.Context) {
	orderID, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, utils.Error(constant.CodeInvalidParams))
		return
	}

	resp, err := h.svc.Complete(c.Request.Context(), orderID)
	if err != nil {
		status, code := completeFailure(err)
		c.JSON(status, utils.Error(code))
		return
	}
	c.JSON(http.StatusOK, utils.Success(resp))
}

// completeFailure maps a completion error onto HTTP: 404 for a missing
// order, 409 for a status transition that cannot apply, 500 otherwise.
func completeFailure(err error) (int, int) {
	var cerr constant.Error
	if !errors.As(err, &cerr) {
		return http.StatusInternalServerError, constant.CodeSystemError
	}
	if cerr.Code() == constant.CodeOrderNotFound {
		return http.StatusNotFound, cerr.Code()
	}
	return http.StatusConflict, cerr.Code()
}
