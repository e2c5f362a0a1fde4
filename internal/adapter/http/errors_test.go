package http

import (
	"errors"
	"fmt"
	"net/http"
	"testing"

	"glint-backoffice/internal/domain/report"
	"glint-backoffice/internal/domain/session"
	"glint-backoffice/internal/domain/workflow"
)

type upstream struct{ code int }

func (u upstream) Error() string { return "upstream" }
func (u upstream) Is(target error) bool { return target == workflow.ErrRemote }
func (u upstream) StatusCode() int { return u.code }

func TestStatusFor(t *testing.T) {
	tests := []struct {
		err  error
		want int
	}{
		{workflow.Invalid("bad"), http.StatusUnprocessableEntity},
		{workflow.Forbidden("no"), http.StatusForbidden},
		{report.ErrNotFound, http.StatusNotFound},
		{fmt.Errorf("lookup: %w", report.ErrNotFound), http.StatusNotFound},
		{session.ErrExpired, http.StatusUnauthorized},
		{session.ErrNotFound, http.StatusUnauthorized},
		{workflow.Remote("down"), http.StatusBadGateway},
		{upstream{code: http.StatusUnauthorized}, http.StatusUnauthorized},
		{upstream{code: http.StatusBadRequest}, http.StatusBadRequest},
		{upstream{code: http.StatusNotFound}, http.StatusNotFound},
		{upstream{code: http.StatusForbidden}, http.StatusBadGateway},
		{upstream{code: http.StatusConflict}, http.StatusBadGateway},
		{upstream{code: http.StatusServiceUnavailable}, http.StatusBadGateway},
		{errors.New("boom"), http.StatusInternalServerError},
	}
	for _, tt := range tests {
		if got := statusFor(tt.err); got != tt.want {
			t.Fatalf("statusFor(%v) = %d, want %d", tt.err, got, tt.want)
		}
	}
}
