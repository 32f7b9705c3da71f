package controllers

import (
	"errors"
	"net/http"
	"strconv"

	"rentora/app"
	"rentora/booking"
	"rentora/cache"
	"rentora/db"
	"rentora/models"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

type GoodsController struct{ *Srv }

func GetGoodsController(s *Srv) *GoodsController { return &GoodsController{Srv: s} }

// dropSnapshot invalidates the cached dashboard after any goods write.
func (gc *GoodsController) dropSnapshot(c *gin.Context) {
	if err := gc.Cache.Invalidate(c.Request.Context(), cache.SnapshotKey); err != nil {
		gc.Log.Debug().Err(err).Msg("snapshot invalidate failed")
	}
}

// Categories

type createCategoryRequest struct {
	Title       string `json:"title" binding:"required,min=2,max=200"`
	Price       int64  `json:"price" binding:"required,min=1"`
	Description string `json:"description" binding:"omitempty,max=255"`
}

// POST /api/v1/goods/category
func (gc *GoodsController) CreateCategory(c *gin.Context) {
	var in createCategoryRequest
	if err := c.ShouldBindJSON(&in); err != nil {
		c.JSON(http.StatusBadRequest, bindErrors(err))
		return
	}

	cat := &models.GoodsCategory{
		ID:          uuid.NewString(),
		Title:       in.Title,
		Price:       strconv.FormatInt(in.Price, 10),
		Description: in.Description,
	}
	if err := gc.Repo.CreateCategory(c.Request.Context(), cat); err != nil {
		c.JSON(http.StatusInternalServerError, app.H{"message": err.Error()})
		return
	}
	c.JSON(http.StatusCreated, app.H{"message": "Category created successfully", "data": cat})
}

// GET /api/v1/goods/category
func (gc *GoodsController) ListCategories(c *gin.Context) {
	cs, err := gc.Repo.ListCategories(c.Request.Context())
	if err != nil {
		c.JSON(http.StatusInternalServerError, app.H{"message": err.Error()})
		return
	}
	c.JSON(http.StatusOK, cs)
}

// DELETE /api/v1/goods/category/:id
func (gc *GoodsController) DeleteCategory(c *gin.Context) {
	err := gc.Repo.DeleteCategoryByID(c.Request.Context(), c.Param("id"))
	if errors.Is(err, gorm.ErrRecordNotFound) {
		c.JSON(http.StatusNotFound, app.H{"message": "Category not found"})
		return
	}
	if err != nil {
		c.JSON(http.StatusInternalServerError, app.H{"message": err.Error()})
		return
	}
	c.JSON(http.StatusOK, app.H{"message": "Category deleted successfully"})
}

// Goods

type createGoodsRequest struct {
	VendorBranchID string `json:"vendorBranchId" binding:"required,uuid"`
	CategoryID     string `json:"categoryId" binding:"required,uuid"`
	Name           string `json:"name" binding:"required,min=2,max=200"`
	Quantity       int    `json:"quantity" binding:"required,min=1"`
	DateIn         string `json:"dateIn" binding:"required"`
	DateOut        string `json:"dateOut" binding:"required"`
	PaymentMethod  string `json:"paymentMethod" binding:"required,oneof=cash transfer"`
	Bank           string `json:"bank" binding:"omitempty,oneof=bca bni bri mandiri"`
}

// POST /api/v1/goods — the booking creation flow. One category read, one
// goods insert; not wrapped in a transaction, so a category deleted between
// the two can leave a dangling reference. Accepted risk.
func (gc *GoodsController) CreateGoods(c *gin.Context) {
	var in createGoodsRequest
	if err := c.ShouldBindJSON(&in); err != nil {
		c.JSON(http.StatusBadRequest, bindErrors(err))
		return
	}

	p, ok := app.CurrentPrincipal(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, app.H{"message": "unauthorized"})
		return
	}

	quote, err := booking.NewQuote(in.DateIn, in.DateOut)
	if err != nil {
		c.JSON(http.StatusBadRequest, app.H{"message": err.Error()})
		return
	}

	cat, err := gc.Repo.FindCategoryByID(c.Request.Context(), in.CategoryID)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		c.JSON(http.StatusNotFound, app.H{"message": "Category not found"})
		return
	}
	if err != nil {
		c.JSON(http.StatusInternalServerError, app.H{"message": err.Error()})
		return
	}

	unitPrice, err := strconv.ParseInt(cat.Price, 10, 64)
	if err != nil {
		// A non-numeric stored price means the row is corrupt.
		gc.Log.Error().Str("categoryId", cat.ID).Str("price", cat.Price).Msg("invalid category price")
		c.JSON(http.StatusInternalServerError, app.H{"message": "Invalid category price"})
		return
	}

	if err := booking.ValidatePayment(in.PaymentMethod, in.Bank); err != nil {
		c.JSON(http.StatusBadRequest, app.H{"message": err.Error()})
		return
	}

	g := &models.Goods{
		ID:             uuid.NewString(),
		VendorBranchID: in.VendorBranchID,
		CategoryID:     in.CategoryID,
		UserID:         p.ID,
		Name:           in.Name,
		Quantity:       in.Quantity,
		DateIn:         quote.DateIn,
		DateOut:        quote.DateOut,
		DayTotal:       quote.DayTotal,
		PaymentMethod:  in.PaymentMethod,
		Bank:           in.Bank,
		Status:         true,
		TotalPrice:     quote.Total(unitPrice, in.Quantity),
	}
	if err := gc.Repo.CreateGoods(c.Request.Context(), g); err != nil {
		c.JSON(http.StatusInternalServerError, app.H{"message": err.Error()})
		return
	}
	gc.dropSnapshot(c)

	c.JSON(http.StatusCreated, app.H{"message": "Goods created successfully", "goods": g})
}

// GET /api/v1/goods?status=&vendorBranchId=&userId=
func (gc *GoodsController) ListGoods(c *gin.Context) {
	filter := gc.parseFilter(c)
	gs, err := gc.Repo.ListGoods(c.Request.Context(), filter)
	if err != nil {
		c.JSON(http.StatusInternalServerError, app.H{"message": err.Error()})
		return
	}
	c.JSON(http.StatusOK, app.H{"count": len(gs), "data": gs})
}

func (gc *GoodsController) parseFilter(c *gin.Context) (f db.GoodsFilter) {
	if raw := c.Query("status"); raw != "" {
		if v, err := strconv.ParseBool(raw); err == nil {
			f.Status = &v
		}
	}
	f.VendorBranchID = c.Query("vendorBranchId")
	f.UserID = c.Query("userId")
	return f
}

type goodsStatusRequest struct {
	Status *bool `json:"status" binding:"required"`
}

// PATCH /api/v1/goods/:id/status
func (gc *GoodsController) UpdateGoodsStatus(c *gin.Context) {
	var in goodsStatusRequest
	if err := c.ShouldBindJSON(&in); err != nil {
		c.JSON(http.StatusBadRequest, bindErrors(err))
		return
	}

	g, err := gc.Repo.UpdateGoodsStatus(c.Request.Context(), c.Param("id"), *in.Status)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		c.JSON(http.StatusNotFound, app.H{"message": "Goods not found"})
		return
	}
	if err != nil {
		c.JSON(http.StatusInternalServerError, app.H{"message": err.Error()})
		return
	}
	gc.dropSnapshot(c)

	c.JSON(http.StatusOK, app.H{"message": "Goods status updated successfully", "goods": g})
}

// DELETE /api/v1/goods/:id/delete
func (gc *GoodsController) DeleteGoods(c *gin.Context) {
	err := gc.Repo.DeleteGoodsByID(c.Request.Context(), c.Param("id"))
	if errors.Is(err, gorm.ErrRecordNotFound) {
		c.JSON(http.StatusNotFound, app.H{"message": "Goods not found"})
		return
	}
	if err != nil {
		c.JSON(http.StatusInternalServerError, app.H{"message": err.Error()})
		return
	}
	gc.dropSnapshot(c)

	c.JSON(http.StatusOK, app.H{"message": "Goods deleted successfully"})
}
