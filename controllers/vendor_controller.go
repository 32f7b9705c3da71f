package controllers

import (
	"errors"
	"net/http"

	"rentora/app"
	"rentora/models"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

type VendorController struct{ *Srv }

func GetVendorController(s *Srv) *VendorController { return &VendorController{Srv: s} }

type createVendorRequest struct {
	CompanyName    string `json:"companyName" binding:"required,min=2,max=200"`
	CompanyAddress string `json:"companyAddress" binding:"required,min=5,max=255"`
}

// POST /api/v1/vendor — the owner is always the authenticated principal;
// contact fields are copied from their user row.
func (vc *VendorController) CreateVendor(c *gin.Context) {
	var in createVendorRequest
	if err := c.ShouldBindJSON(&in); err != nil {
		c.JSON(http.StatusBadRequest, bindErrors(err))
		return
	}

	p, ok := app.CurrentPrincipal(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, app.H{"message": "unauthorized"})
		return
	}
	owner, err := vc.Repo.FindUserByID(c.Request.Context(), p.ID)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		c.JSON(http.StatusNotFound, app.H{"message": "User not found"})
		return
	}
	if err != nil {
		c.JSON(http.StatusInternalServerError, app.H{"message": err.Error()})
		return
	}

	v := &models.Vendor{
		ID:             uuid.NewString(),
		UserID:         owner.ID,
		CompanyName:    in.CompanyName,
		CompanyAddress: in.CompanyAddress,
		Email:          owner.Email,
		Phone:          owner.Phone,
		Status:         models.VendorPending,
	}
	if err := vc.Repo.CreateVendor(c.Request.Context(), v); err != nil {
		c.JSON(http.StatusInternalServerError, app.H{"message": err.Error()})
		return
	}
	c.JSON(http.StatusOK, app.H{"message": "Vendor created successfully", "vendor": v})
}

// GET /api/v1/vendor
func (vc *VendorController) ListVendors(c *gin.Context) {
	vs, err := vc.Repo.ListVendors(c.Request.Context())
	if err != nil {
		c.JSON(http.StatusInternalServerError, app.H{"message": err.Error()})
		return
	}
	c.JSON(http.StatusOK, vs)
}

// GET /api/v1/vendor/:id
func (vc *VendorController) GetVendor(c *gin.Context) {
	v, err := vc.Repo.FindVendorByID(c.Request.Context(), c.Param("id"))
	if errors.Is(err, gorm.ErrRecordNotFound) {
		c.JSON(http.StatusNotFound, app.H{"message": "Vendor not found"})
		return
	}
	if err != nil {
		c.JSON(http.StatusInternalServerError, app.H{"message": err.Error()})
		return
	}
	c.JSON(http.StatusOK, v)
}

// DELETE /api/v1/vendor/:id
func (vc *VendorController) DeleteVendor(c *gin.Context) {
	err := vc.Repo.DeleteVendorByID(c.Request.Context(), c.Param("id"))
	if errors.Is(err, gorm.ErrRecordNotFound) {
		c.JSON(http.StatusNotFound, app.H{"message": "Vendor not found or already deleted"})
		return
	}
	if err != nil {
		c.JSON(http.StatusInternalServerError, app.H{"message": err.Error()})
		return
	}
	c.JSON(http.StatusOK, app.H{"message": "Vendor deleted successfully"})
}

type vendorStatusRequest struct {
	Status string `json:"status" binding:"required,oneof=active suspended pending"`
}

// PATCH /api/v1/vendor/:id/status — admin only.
func (vc *VendorController) UpdateVendorStatus(c *gin.Context) {
	var in vendorStatusRequest
	if err := c.ShouldBindJSON(&in); err != nil {
		c.JSON(http.StatusBadRequest, bindErrors(err))
		return
	}

	v, err := vc.Repo.UpdateVendorStatus(c.Request.Context(), c.Param("id"), in.Status)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		c.JSON(http.StatusNotFound, app.H{"message": "Vendor not found"})
		return
	}
	if err != nil {
		c.JSON(http.StatusInternalServerError, app.H{"message": err.Error()})
		return
	}
	c.JSON(http.StatusOK, app.H{"message": "Vendor status updated successfully", "vendor": v})
}

type createBranchRequest struct {
	Name    string `json:"name" binding:"required,min=2,max=200"`
	Address string `json:"address" binding:"omitempty,max=255"`
	Phone   string `json:"phone" binding:"omitempty,max=30"`
}

// POST /api/v1/vendor/:id/branch
func (vc *VendorController) CreateBranch(c *gin.Context) {
	var in createBranchRequest
	if err := c.ShouldBindJSON(&in); err != nil {
		c.JSON(http.StatusBadRequest, bindErrors(err))
		return
	}

	vendorID := c.Param("id")
	if _, err := vc.Repo.FindVendorByID(c.Request.Context(), vendorID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			c.JSON(http.StatusNotFound, app.H{"message": "Vendor not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, app.H{"message": err.Error()})
		return
	}

	b := &models.VendorBranch{
		ID:       uuid.NewString(),
		VendorID: vendorID,
		Name:     in.Name,
		Address:  in.Address,
		Phone:    in.Phone,
	}
	if err := vc.Repo.CreateBranch(c.Request.Context(), b); err != nil {
		c.JSON(http.StatusInternalServerError, app.H{"message": err.Error()})
		return
	}
	c.JSON(http.StatusCreated, app.H{"message": "Branch created successfully", "branch": b})
}

// GET /api/v1/vendor/:id/branch
func (vc *VendorController) ListBranches(c *gin.Context) {
	vendorID := c.Param("id")
	if _, err := vc.Repo.FindVendorByID(c.Request.Context(), vendorID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			c.JSON(http.StatusNotFound, app.H{"message": "Vendor not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, app.H{"message": err.Error()})
		return
	}

	bs, err := vc.Repo.ListBranchesByVendor(c.Request.Context(), vendorID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, app.H{"message": err.Error()})
		return
	}
	c.JSON(http.StatusOK, bs)
}

// DELETE /api/v1/vendor/branch/:branchId
func (vc *VendorController) DeleteBranch(c *gin.Context) {
	err := vc.Repo.DeleteBranchByID(c.Request.Context(), c.Param("branchId"))
	if errors.Is(err, gorm.ErrRecordNotFound) {
		c.JSON(http.StatusNotFound, app.H{"message": "Branch not found"})
		return
	}
	if err != nil {
		c.JSON(http.StatusInternalServerError, app.H{"message": err.Error()})
		return
	}
	c.JSON(http.StatusOK, app.H{"message": "Branch deleted successfully"})
}
