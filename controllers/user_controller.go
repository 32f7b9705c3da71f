package controllers

import (
	"errors"
	"net/http"

	"rentora/app"
	"rentora/models"

	"github.com/gin-gonic/gin"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

type UserController struct{ *Srv }

func GetUserController(s *Srv) *UserController { return &UserController{Srv: s} }

// GET /api/v1/users
func (uc *UserController) ListUsers(c *gin.Context) {
	users, err := uc.Repo.ListUsers(c.Request.Context())
	if err != nil {
		c.JSON(http.StatusInternalServerError, app.H{"message": err.Error()})
		return
	}
	c.JSON(http.StatusOK, users)
}

// GET /api/v1/users/:id
func (uc *UserController) GetUser(c *gin.Context) {
	u, err := uc.Repo.FindUserByID(c.Request.Context(), c.Param("id"))
	if errors.Is(err, gorm.ErrRecordNotFound) {
		c.JSON(http.StatusNotFound, app.H{"message": "User not found"})
		return
	}
	if err != nil {
		c.JSON(http.StatusInternalServerError, app.H{"message": err.Error()})
		return
	}
	c.JSON(http.StatusOK, u)
}

type updateUserRequest struct {
	Name     string `json:"name" binding:"omitempty,min=2,max=100"`
	Email    string `json:"email" binding:"omitempty,email"`
	Phone    string `json:"phone" binding:"omitempty,min=10"`
	Address  string `json:"address" binding:"omitempty,min=5"`
	Role     string `json:"role" binding:"omitempty,oneof=superadmin customer vendor"`
	Password string `json:"password" binding:"omitempty,min=6"`
}

// PUT /api/v1/users/:id — partial update; absent fields are left alone.
func (uc *UserController) UpdateUser(c *gin.Context) {
	var in updateUserRequest
	if err := c.ShouldBindJSON(&in); err != nil {
		c.JSON(http.StatusBadRequest, bindErrors(err))
		return
	}

	updates := map[string]any{}
	if in.Name != "" {
		updates["name"] = in.Name
	}
	if in.Email != "" {
		updates["email"] = in.Email
	}
	if in.Phone != "" {
		updates["phone"] = in.Phone
	}
	if in.Address != "" {
		updates["address"] = in.Address
	}
	if in.Role != "" {
		updates["role"] = in.Role
	}
	if in.Password != "" {
		hashed, err := bcrypt.GenerateFromPassword([]byte(in.Password), bcrypt.DefaultCost)
		if err != nil {
			c.JSON(http.StatusInternalServerError, app.H{"message": err.Error()})
			return
		}
		updates["password"] = string(hashed)
	}

	u, err := uc.Repo.UpdateUser(c.Request.Context(), c.Param("id"), updates)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		c.JSON(http.StatusNotFound, app.H{"message": "User not found"})
		return
	}
	if err != nil {
		c.JSON(http.StatusInternalServerError, app.H{"message": err.Error()})
		return
	}
	c.JSON(http.StatusOK, app.H{"message": "User updated successfully", "user": u})
}

// DELETE /api/v1/users/:id — admin only; self-deletion is rejected so an
// install cannot lock itself out.
func (uc *UserController) DeleteUser(c *gin.Context) {
	id := c.Param("id")
	if p, ok := app.CurrentPrincipal(c); ok && p.ID == id {
		c.JSON(http.StatusBadRequest, app.H{"message": "cannot delete yourself"})
		return
	}

	target, err := uc.Repo.FindUserByID(c.Request.Context(), id)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		c.JSON(http.StatusNotFound, app.H{"message": "User not found"})
		return
	}
	if err != nil {
		c.JSON(http.StatusInternalServerError, app.H{"message": err.Error()})
		return
	}
	if target.Role == models.RoleSuperadmin {
		c.JSON(http.StatusForbidden, app.H{"message": "cannot delete a superadmin"})
		return
	}

	if err := uc.Repo.DeleteUserByID(c.Request.Context(), id); err != nil {
		c.JSON(http.StatusInternalServerError, app.H{"message": err.Error()})
		return
	}
	c.JSON(http.StatusOK, app.H{"message": "User deleted"})
}
