package usecase

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"github.com/Vinaypunani/build-gaming/internal/domain"
)

// CartReader es la parte de lectura del carrito que usa la API del armador.
type CartReader interface {
	ListByOwner(ctx context.Context, owner string) ([]domain.CartItem, error)
	Remove(ctx context.Context, owner string, id uuid.UUID) error
}

type CartUC struct {
	Cart CartReader
}

func (uc *CartUC) Items(ctx context.Context, owner string) ([]domain.CartItem, error) {
	if owner == "" {
		return nil, fmt.Errorf("%w: sesión vacía", ErrInvalidInput)
	}
	return uc.Cart.ListByOwner(ctx, owner)
}

func (uc *CartUC) Remove(ctx context.Context, owner, id string) error {
	uid, err := uuid.Parse(id)
	if err != nil {
		return domain.ErrNotFound
	}
	return uc.Cart.Remove(ctx, owner, uid)
}
