package postgres

import (
	"context"
	"errors"
	"strings"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/Vinaypunani/build-gaming/internal/domain"
)

type CartRepo struct{ db *gorm.DB }

func NewCartRepo(db *gorm.DB) *CartRepo { return &CartRepo{db: db} }

// SubmitLineItem agrega el item al carrito del dueño. Si el mismo dueño
// reenvía el line item se devuelve la confirmación original.
func (r *CartRepo) SubmitLineItem(ctx context.Context, owner string, item domain.LineItem) (*domain.Confirmation, error) {
	owner = strings.TrimSpace(owner)
	if owner == "" {
		return nil, errors.New("dueño vacío")
	}
	if item.ID == "" {
		return nil, errors.New("line item sin id")
	}
	var row domain.CartItem
	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		err := lineItemQuery(tx, owner, item.ID).First(&row).Error
		if err == nil {
			return nil
		}
		if !errors.Is(err, gorm.ErrRecordNotFound) {
			return err
		}
		row = domain.CartItem{
			ID:         uuid.New(),
			Owner:      owner,
			LineItemID: item.ID,
			Name:       item.Name,
			Price:      item.Price,
			Image:      item.Image,
			Quantity:   1,
			Parts:      item.Parts,
			CreatedAt:  item.CreatedAt,
		}
		return tx.Create(&row).Error
	})
	if err != nil {
		return nil, err
	}
	return &domain.Confirmation{CartItemID: row.ID, LineItemID: row.LineItemID, SubmittedAt: row.CreatedAt}, nil
}

// lineItemQuery busca un line item ya enviado por el mismo dueño.
func lineItemQuery(tx *gorm.DB, owner, lineItemID string) *gorm.DB {
	return tx.Where("owner = ? AND line_item_id = ?", owner, lineItemID)
}

func (r *CartRepo) ListByOwner(ctx context.Context, owner string) ([]domain.CartItem, error) {
	items := []domain.CartItem{}
	if err := r.db.WithContext(ctx).Where("owner = ?", owner).Order("created_at asc").Find(&items).Error; err != nil {
		return nil, err
	}
	return items, nil
}

func (r *CartRepo) Remove(ctx context.Context, owner string, id uuid.UUID) error {
	res := r.db.WithContext(ctx).Where("owner = ? AND id = ?", owner, id).Delete(&domain.CartItem{})
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return domain.ErrNotFound
	}
	return nil
}
