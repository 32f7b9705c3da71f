package db

import (
	"context"

	"rentora/models"

	"gorm.io/gorm"
)

// Vendors

func (r *Repo) CreateVendor(ctx context.Context, v *models.Vendor) error {
	return r.DB.WithContext(ctx).Create(v).Error
}

func (r *Repo) ListVendors(ctx context.Context) ([]models.Vendor, error) {
	var vs []models.Vendor
	err := r.DB.WithContext(ctx).Order("created_at DESC").Find(&vs).Error
	return vs, err
}

func (r *Repo) FindVendorByID(ctx context.Context, id string) (*models.Vendor, error) {
	var v models.Vendor
	if err := r.DB.WithContext(ctx).First(&v, "id = ?", id).Error; err != nil {
		return nil, err
	}
	return &v, nil
}

func (r *Repo) UpdateVendorStatus(ctx context.Context, id, status string) (*models.Vendor, error) {
	var v models.Vendor
	if err := r.DB.WithContext(ctx).First(&v, "id = ?", id).Error; err != nil {
		return nil, err
	}
	if err := r.DB.WithContext(ctx).Model(&v).Update("status", status).Error; err != nil {
		return nil, err
	}
	return &v, nil
}

func (r *Repo) DeleteVendorByID(ctx context.Context, id string) error {
	res := r.DB.WithContext(ctx).Delete(&models.Vendor{}, "id = ?", id)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}

// Branches

func (r *Repo) CreateBranch(ctx context.Context, b *models.VendorBranch) error {
	return r.DB.WithContext(ctx).Create(b).Error
}

func (r *Repo) ListBranchesByVendor(ctx context.Context, vendorID string) ([]models.VendorBranch, error) {
	var bs []models.VendorBranch
	err := r.DB.WithContext(ctx).
		Where("vendor_id = ?", vendorID).
		Order("created_at DESC").
		Find(&bs).Error
	return bs, err
}

func (r *Repo) DeleteBranchByID(ctx context.Context, id string) error {
	res := r.DB.WithContext(ctx).Delete(&models.VendorBranch{}, "id = ?", id)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}
