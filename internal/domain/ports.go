package domain

import "context"

type ComponentRepo interface {
	List(ctx context.Context, f ComponentFilter) ([]Component, error)
	FindByID(ctx context.Context, id string) (*Component, error)
	Save(ctx context.Context, c *Component) error
	Count(ctx context.Context) (int64, error)
}

type CartRepo interface {
	SubmitLineItem(ctx context.Context, owner string, item LineItem) (*Confirmation, error)
}

// BuildStore guarda el armado de cada sesión. Load devuelve un build vacío si la sesión no tiene uno.
type BuildStore interface {
	Load(ctx context.Context, sessionID string) (*Build, error)
	Save(ctx context.Context, sessionID string, b *Build) error
	Delete(ctx context.Context, sessionID string) error
}
