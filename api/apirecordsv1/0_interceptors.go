package apirecordsv1

import (
	"context"
	"errors"

	"github.com/fulldump/box"

	"github.com/fulldump/recordlist/service"
)

var ErrServicerMissing = errors.New("servicer missing")

type servicerKey struct{}

func SetServicer(ctx context.Context, s service.Servicer) context.Context {
	return context.WithValue(ctx, servicerKey{}, s)
}

// GetServicer returns nil when ctx carries no servicer.
func GetServicer(ctx context.Context) service.Servicer {
	s, _ := ctx.Value(servicerKey{}).(service.Servicer)
	return s
}

func injectServicer(s service.Servicer) box.I {
	return func(next box.H) box.H {
		return func(ctx context.Context) {
			if s == nil {
				box.SetError(ctx, ErrServicerMissing)
				return
			}
			next(SetServicer(ctx, s))
		}
	}
}
