package apperr

import (
	"context"

	"github.com/m-mizutani/ctxlog"
	"github.com/m-mizutani/goerr/v2"
	"github.com/relops-lab/glgate/pkg/domain/model"
)

// Handle logs an operation failure. Failures caused by the caller's own
// input are warnings; everything else is an application error.
func Handle(ctx context.Context, err error) {
	logger := ctxlog.From(ctx)

	if goerr.HasTag(err, model.ErrTagValidation) || goerr.HasTag(err, model.ErrTagMissingParam) {
		logger.Warn("request rejected", "error", err)
		return
	}
	logger.Error("application error", "error", err)
}
