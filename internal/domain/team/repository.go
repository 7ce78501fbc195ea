package team

import "context"

type Repository interface {
	GetRegistry(ctx context.Context, countryDir string) (Registry, error)
}
