package handler

import (
	"errors"
	"fmt"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"marketplace-payout-api/internal/constant"
	"marketplace-payout-api/internal/dto"
	"marketplace-payout-api/internal/export"
	"marketplace-payout-api/internal/service"
	"marketplace-payout-api/internal/utils"
)

type PayoutBatchHandler struct{ svc *service.PayoutBatchService }

func NewPayoutBatchHandler() *PayoutBatchHandler {
	return &PayoutBatchHandler{svc: service.NewPayoutBatchService()}
}

// CreateBatch claims all eligible pending payouts. An empty pool is a normal
// outcome and returns an empty success, not an error.
func (h *PayoutBatchHandler) CreateBatch(c *gin.Context) {
	batch, err := h.svc.CreateBatch(c.Request.Context())
	if err != nil {
		c.JSON(http.StatusInternalServerError, utils.Error(constant.CodeSystemError))
		return
	}
	if batch == nil {
		c.JSON(http.StatusOK, utils.Error(constant.CodeBatchEmpty))
		return
	}
	c.JSON(http.StatusOK, utils.Success(batch))
}

func (h *PayoutBatchHandler) Confirm(c *gin.Context) {
	batchID, ok := parseBatchID(c)
	if !ok {
		return
	}
	var req dto.ConfirmBatchReq
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, utils.CustomError(constant.CodeInvalidParams, err.Error()))
		return
	}

	result, err := h.svc.ConfirmBatch(c.Request.Context(), batchID, req.Confirmations)
	if err != nil {
		c.JSON(http.StatusInternalServerError, utils.Error(constant.CodeSystemError))
		return
	}
	c.JSON(http.StatusOK, utils.Success(result))
}

func (h *PayoutBatchHandler) Fail(c *gin.Context) {
	batchID, ok := parseBatchID(c)
	if !ok {
		return
	}
	var req dto.FailBatchReq
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, utils.CustomError(constant.CodeInvalidParams, err.Error()))
		return
	}

	result, err := h.svc.FailBatch(c.Request.Context(), batchID, req.Reason, req.PayoutIDs)
	if err != nil {
		var cerr constant.Error
		if errors.As(err, &cerr) {
			c.JSON(http.StatusNotFound, utils.Error(cerr.Code()))
			return
		}
		c.JSON(http.StatusInternalServerError, utils.Error(constant.CodeSystemError))
		return
	}
	c.JSON(http.StatusOK, utils.Success(result))
}

func (h *PayoutBatchHandler) Status(c *gin.Context) {
	batchID, ok := parseBatchID(c)
	if !ok {
		return
	}
	vo, err := h.svc.BatchStatus(c.Request.Context(), batchID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, utils.Error(constant.CodeSystemError))
		return
	}
	if vo == nil {
		c.JSON(http.StatusNotFound, utils.Error(constant.CodeBatchNotFound))
		return
	}
	c.JSON(http.StatusOK, utils.Success(vo))
}

// Export streams the bank-processing CSV for an existing batch.
func (h *PayoutBatchHandler) Export(c *gin.Context) {
	batchID, ok := parseBatchID(c)
	if !ok {
		return
	}
	batch, err := h.svc.ExportBatch(c.Request.Context(), batchID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, utils.Error(constant.CodeSystemError))
		return
	}
	if batch == nil {
		c.JSON(http.StatusNotFound, utils.Error(constant.CodeBatchNotFound))
		return
	}

	c.Header("Content-Type", "text/csv")
	c.Header("Content-Disposition", fmt.Sprintf(`attachment; filename="payout_batch_%d.csv"`, batchID))
	if err := export.WriteBatchCSV(c.Writer, batch); err != nil {
		// Already streaming; log through gin's error list, nothing to roll back.
		_ = c.Error(err)
	}
}

func (h *PayoutBatchHandler) Requeue(c *gin.Context) {
	payoutID, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, utils.Error(constant.CodeInvalidParams))
		return
	}
	if err := h.svc.RequeueFailed(c.Request.Context(), payoutID); err != nil {
		var cerr constant.Error
		if errors.As(err, &cerr) {
			c.JSON(http.StatusConflict, utils.Error(cerr.Code()))
			return
		}
		c.JSON(http.StatusInternalServerError, utils.Error(constant.CodeSystemError))
		return
	}
	c.JSON(http.StatusOK, utils.Success(gin.H{"payoutId": payoutID}))
}

func parseBatchID(c *gin.Context) (uint64, bool) {
	batchID, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, utils.Error(constant.CodeInvalidParams))
		return 0, false
	}
	return batchID, true
}
