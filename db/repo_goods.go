package db

import (
	"context"

	"rentora/models"

	"gorm.io/gorm"
)

// Categories

func (r *Repo) CreateCategory(ctx context.Context, c *models.GoodsCategory) error {
	return r.DB.WithContext(ctx).Create(c).Error
}

func (r *Repo) ListCategories(ctx context.Context) ([]models.GoodsCategory, error) {
	var cs []models.GoodsCategory
	err := r.DB.WithContext(ctx).Order("created_at DESC").Find(&cs).Error
	return cs, err
}

func (r *Repo) FindCategoryByID(ctx context.Context, id string) (*models.GoodsCategory, error) {
	var c models.GoodsCategory
	if err := r.DB.WithContext(ctx).First(&c, "id = ?", id).Error; err != nil {
		return nil, err
	}
	return &c, nil
}

func (r *Repo) DeleteCategoryByID(ctx context.Context, id string) error {
	res := r.DB.WithContext(ctx).Delete(&models.GoodsCategory{}, "id = ?", id)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}

// Goods

func (r *Repo) CreateGoods(ctx context.Context, g *models.Goods) error {
	return r.DB.WithContext(ctx).Create(g).Error
}

func (r *Repo) FindGoodsByID(ctx context.Context, id string) (*models.Goods, error) {
	var g models.Goods
	if err := r.DB.WithContext(ctx).First(&g, "id = ?", id).Error; err != nil {
		return nil, err
	}
	return &g, nil
}

// GoodsFilter holds optional equality filters; zero values mean "any".
type GoodsFilter struct {
	Status         *bool
	VendorBranchID string
	UserID         string
}

// ListGoods combines the supplied filters with AND.
func (r *Repo) ListGoods(ctx context.Context, f GoodsFilter) ([]models.Goods, error) {
	q := r.DB.WithContext(ctx).Model(&models.Goods{}).Order("created_at DESC")
	if f.Status != nil {
		q = q.Where("status = ?", *f.Status)
	}
	if f.VendorBranchID != "" {
		q = q.Where("vendor_branch_id = ?", f.VendorBranchID)
	}
	if f.UserID != "" {
		q = q.Where("user_id = ?", f.UserID)
	}

	var gs []models.Goods
	if err := q.Find(&gs).Error; err != nil {
		return nil, err
	}
	return gs, nil
}

// UpdateGoodsStatus flips the status field only; every other column is
// immutable after creation.
func (r *Repo) UpdateGoodsStatus(ctx context.Context, id string, status bool) (*models.Goods, error) {
	var g models.Goods
	if err := r.DB.WithContext(ctx).First(&g, "id = ?", id).Error; err != nil {
		return nil, err
	}
	if err := r.DB.WithContext(ctx).Model(&g).Update("status", status).Error; err != nil {
		return nil, err
	}
	return &g, nil
}

func (r *Repo) DeleteGoodsByID(ctx context.Context, id string) error {
	res := r.DB.WithContext(ctx).Delete(&models.Goods{}, "id = ?", id)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}
