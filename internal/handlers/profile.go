package handlers

import (
	"github.com/gin-gonic/gin"
	"github.com/pickngo/pickngo-backend/internal/models"
	"github.com/pickngo/pickngo-backend/internal/services"
	"gorm.io/gorm"
)

// GetProfile retrieves the user's profile
func GetProfile(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		userId := c.GetUint("userId")

		var user models.User
		if err := db.First(&user, userId).Error; err != nil {
			c.JSON(404, gin.H{"success": false, "message": "User not found"})
			return
		}

		c.JSON(200, gin.H{
			"success": true,
			"user": gin.H{
				"id":           user.ID,
				"email":        user.Email,
				"username":     user.Username,
				"phoneNumber":  user.PhoneNumber,
				"userType":     user.UserType,
				"profileImage": services.GetDocumentURL(user.ProfileImage),
			},
		})
	}
}

// UpdateProfile updates the user's profile information
func UpdateProfile(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		userId := c.GetUint("userId")

		var input struct {
			Username    *string `json:"username"`
			PhoneNumber *string `json:"phoneNumber"`
		}

		if err := c.ShouldBindJSON(&input); err != nil {
			c.JSON(400, gin.H{"success": false, "message": err.Error()})
			return
		}

		var user models.User
		if err := db.First(&user, userId).Error; err != nil {
			c.JSON(404, gin.H{"success": false, "message": "User not found"})
			return
		}

		// Update fields individually to handle empty strings properly
		if input.Username != nil {
			user.Username = *input.Username
		}
		if input.PhoneNumber != nil {
			user.PhoneNumber = *input.PhoneNumber
		}

		// Use Save() instead of Updates() to persist all fields including empty strings
		if err := db.Save(&user).Error; err != nil {
			c.JSON(500, gin.H{"success": false, "message": "Failed to update profile"})
			return
		}

		c.JSON(200, gin.H{
			"success": true,
			"user": gin.H{
				"id":          user.ID,
				"email":       user.Email,
				"username":    user.Username,
				"phoneNumber": user.PhoneNumber,
				"userType":    user.UserType,
			},
		})
	}
}

// UploadProfileImage replaces the user's profile image
func UploadProfileImage(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		userId := c.GetUint("userId")

		file, err := c.FormFile("image")
		if err != nil {
			c.JSON(400, gin.H{"success": false, "message": "Profile image is required"})
			return
		}

		var user models.User
		if err := db.First(&user, userId).Error; err != nil {
			c.JSON(404, gin.H{"success": false, "message": "User not found"})
			return
		}

		imageURL, err := services.UploadDocument(file, "profiles")
		if err != nil {
			c.JSON(500, gin.H{"success": false, "message": "Failed to upload image"})
			return
		}

		if user.ProfileImage != "" {
			_ = services.DeleteDocument(user.ProfileImage)
		}

		user.ProfileImage = imageURL
		if err := db.Save(&user).Error; err != nil {
			c.JSON(500, gin.H{"success": false, "message": "Failed to update profile"})
			return
		}

		c.JSON(200, gin.H{
			"success":      true,
			"message":      "Profile image updated",
			"profileImage": services.GetDocumentURL(imageURL),
		})
	}
}
