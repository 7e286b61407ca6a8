package postgres

import (
	"context"
	"errors"
	"strings"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/Vinaypunani/build-gaming/internal/domain"
)

type ComponentRepo struct{ db *gorm.DB }

func NewComponentRepo(db *gorm.DB) *ComponentRepo { return &ComponentRepo{db: db} }

// Save inserta o actualiza por id.
func (r *ComponentRepo) Save(ctx context.Context, c *domain.Component) error {
	return r.db.WithContext(ctx).Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "id"}},
		UpdateAll: true,
	}).Create(c).Error
}

func (r *ComponentRepo) FindByID(ctx context.Context, id string) (*domain.Component, error) {
	var c domain.Component
	if err := r.db.WithContext(ctx).First(&c, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domain.ErrNotFound
		}
		return nil, err
	}
	return &c, nil
}

func (r *ComponentRepo) List(ctx context.Context, f domain.ComponentFilter) ([]domain.Component, error) {
	list := []domain.Component{}
	q := r.db.WithContext(ctx).Model(&domain.Component{})
	if f.Category != "" {
		q = q.Where("category = ?", f.Category)
	}
	if f.InStock {
		q = q.Where("stock > 0")
	}
	if query := strings.TrimSpace(f.Query); query != "" {
		like := "%" + query + "%"
		q = q.Where("LOWER(name) LIKE LOWER(?) OR LOWER(brand) LIKE LOWER(?)", like, like)
	}
	dir := " asc"
	if f.Desc {
		dir = " desc"
	}
	switch f.Sort {
	case "price":
		q = q.Order("price" + dir)
	case "name":
		q = q.Order("name" + dir)
	default:
		q = q.Order("rating" + dir).Order("reviews" + dir)
	}
	// desempate estable
	q = q.Order("id asc")
	if err := q.Find(&list).Error; err != nil {
		return nil, err
	}
	return list, nil
}

func (r *ComponentRepo) Count(ctx context.Context) (int64, error) {
	var n int64
	err := r.db.WithContext(ctx).Model(&domain.Component{}).Count(&n).Error
	return n, err
}
