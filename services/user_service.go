package services

import (
	"errors"
	"fmt"

	"github.com/9xxdpxx6/ZenythiumApi-sub002/config"
	"github.com/9xxdpxx6/ZenythiumApi-sub002/models"
	"github.com/9xxdpxx6/ZenythiumApi-sub002/utils"
)

type ProfileInput struct {
	Name           string `json:"name"`
	ProfilePicture string `json:"profile_picture"` // base64 data URL, uploaded to S3
}

func GetUserProfile(userID uint) (map[string]interface{}, error) {
	var user models.User
	result := config.DB.First(&user, userID)
	if result.Error != nil {
		return nil, errors.New("user not found")
	}

	return map[string]interface{}{
		"id":              user.ID,
		"email":           user.Email,
		"name":            user.Name,
		"profile_picture": user.ProfilePicture,
	}, nil
}

func UpdateUserProfile(userID uint, input ProfileInput) error {
	var user models.User
	result := config.DB.First(&user, userID)
	if result.Error != nil {
		return errors.New("user not found")
	}

	if input.Name != "" {
		user.Name = input.Name
	}
	if input.ProfilePicture != "" {
		url, err := utils.UploadBase64ImageToS3(input.ProfilePicture, user.Email)
		if err != nil {
			return fmt.Errorf("failed to upload image: %v", err)
		}
		user.ProfilePicture = url
	}

	return config.DB.Save(&user).Error
}
