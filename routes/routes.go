package routes

import (
	"time"

	"rentora/app"
	"rentora/controllers"
	"rentora/metrics"

	"github.com/gin-gonic/gin"
)

func RegisterRoutes(r *gin.Engine, a *app.App) {
	s := controllers.GetSrv(a)
	authCtl := controllers.GetAuthController(s)
	userCtl := controllers.GetUserController(s)
	vendorCtl := controllers.GetVendorController(s)
	goodsCtl := controllers.GetGoodsController(s)
	statsCtl := controllers.GetStatsController(s)

	authMW := app.AuthRequired(a.Config)
	adminMW := app.AdminOnly()
	seenMW := app.TouchLastSeen(s.Repo, a.RDB, 5*time.Minute)

	r.GET("/metrics", metrics.Handler())

	v1 := r.Group("/api/v1")

	auth := v1.Group("/auth")
	{
		auth.POST("/register", authCtl.Register)
		auth.POST("/login", authCtl.Login)
	}

	users := v1.Group("/users", authMW, seenMW)
	{
		users.GET("", userCtl.ListUsers)
		users.GET("/:id", userCtl.GetUser)
		users.PUT("/:id", userCtl.UpdateUser)
		users.DELETE("/:id", adminMW, userCtl.DeleteUser)
	}

	vendor := v1.Group("/vendor", authMW, seenMW)
	{
		vendor.POST("", vendorCtl.CreateVendor)
		vendor.GET("", vendorCtl.ListVendors)
		vendor.GET("/:id", vendorCtl.GetVendor)
		vendor.DELETE("/:id", vendorCtl.DeleteVendor)
		vendor.PATCH("/:id/status", adminMW, vendorCtl.UpdateVendorStatus)

		vendor.POST("/:id/branch", vendorCtl.CreateBranch)
		vendor.GET("/:id/branch", vendorCtl.ListBranches)
		vendor.DELETE("/branch/:branchId", vendorCtl.DeleteBranch)
	}

	goods := v1.Group("/goods", authMW, seenMW)
	{
		goods.POST("/category", goodsCtl.CreateCategory)
		goods.GET("/category", goodsCtl.ListCategories)
		goods.DELETE("/category/:id", goodsCtl.DeleteCategory)

		goods.POST("", goodsCtl.CreateGoods)
		goods.GET("", goodsCtl.ListGoods)
		goods.PATCH("/:id/status", goodsCtl.UpdateGoodsStatus)
		goods.DELETE("/:id/delete", goodsCtl.DeleteGoods)
	}

	v1.GET("/stats", authMW, seenMW, statsCtl.Dashboard)
}
