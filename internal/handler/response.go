package handler

import (
	"github.com/gin-gonic/gin"

	"taskboard/internal/model"
)

// errorResponse writes the uniform failure body.
func errorResponse(c *gin.Context, status int, message string) {
	c.JSON(status, gin.H{"message": message})
}

// UserResponse is the public shape of a user. The password hash never
// leaves the handler layer.
type UserResponse struct {
	ID       string `json:"id"`
	Email    string `json:"email"`
	Fullname string `json:"fullname"`
	Avatar   string `json:"avatar"`
}

func newUserResponse(user *model.User) UserResponse {
	return UserResponse{
		ID:       user.ID.String(),
		Email:    user.Email,
		Fullname: user.Fullname,
		Avatar:   user.Avatar,
	}
}
