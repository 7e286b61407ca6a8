package usecase

import (
	"context"
	"fmt"
	"strconv"
	"strings"

	"github.com/Vinaypunani/build-gaming/internal/domain"
)

const (
	SortPopularity = "popularity"
	SortPrice      = "price"
	SortName       = "name"
)

// CatalogQuery son los parámetros del selector de componentes.
type CatalogQuery struct {
	Query   string
	Sort    string
	Order   string
	InStock string // "", "true" o "false"
}

type CatalogUC struct {
	Components domain.ComponentRepo
}

// List lista los componentes de un slot. Por defecto ordena por popularidad descendente.
func (uc *CatalogUC) List(ctx context.Context, slot domain.Slot, q CatalogQuery) ([]domain.Component, error) {
	if !slot.Valid() {
		return nil, fmt.Errorf("%w: %s", domain.ErrUnknownSlot, slot)
	}
	f := domain.ComponentFilter{
		Category: slot,
		Query:    strings.TrimSpace(q.Query),
		Sort:     SortPopularity,
		Desc:     true,
	}
	switch s := strings.ToLower(strings.TrimSpace(q.Sort)); s {
	case "", SortPopularity, "rating":
	case SortPrice, SortName:
		f.Sort = s
		f.Desc = false
	default:
		return nil, fmt.Errorf("%w: orden %q", ErrInvalidInput, q.Sort)
	}
	switch strings.ToLower(strings.TrimSpace(q.Order)) {
	case "":
	case "asc":
		f.Desc = false
	case "desc":
		f.Desc = true
	default:
		return nil, fmt.Errorf("%w: dirección %q", ErrInvalidInput, q.Order)
	}
	if v := strings.TrimSpace(q.InStock); v != "" {
		in, err := strconv.ParseBool(v)
		if err != nil {
			return nil, fmt.Errorf("%w: in_stock %q", ErrInvalidInput, q.InStock)
		}
		f.InStock = in
	}
	return uc.Components.List(ctx, f)
}

func (uc *CatalogUC) Get(ctx context.Context, id string) (*domain.Component, error) {
	if id == "" {
		return nil, fmt.Errorf("%w: id vacío", domain.ErrNotFound)
	}
	return uc.Components.FindByID(ctx, id)
}
