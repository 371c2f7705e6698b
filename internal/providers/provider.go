package providers

import (
	"context"

	"econseries/internal/model"
)

type Provider interface {
	Name() string
	FetchSeries(ctx context.Context, query model.Query) (model.Series, error)
}
