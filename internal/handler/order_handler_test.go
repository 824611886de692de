package handler

import (
	"errors"
	"net/http"
	"testing"

	"marketplace-payout-api/internal/constant"
)

func TestCompleteFailureMapping(t *testing.T) {
	cases := []struct {
		name       string
		err        error
		wantStatus int
		wantCode   int
	}{
		{"order not found", constant.NewError(constant.CodeOrderNotFound), http.StatusNotFound, constant.CodeOrderNotFound},
		{"already completed", constant.NewError(constant.CodeOrderStatusInvalid), http.StatusConflict, constant.CodeOrderStatusInvalid},
		{"plain error", errors.New("connection reset"), http.StatusInternalServerError, constant.CodeSystemError},
	}
	for _, c := range cases {
		status, code := completeFailure(c.err)
		if status != c.wantStatus || code != c.wantCode {
			t.Errorf("%s: got (%d, %d), want (%d, %d)", c.name, status, code, c.wantStatus, c.wantCode)
		}
	}
}
