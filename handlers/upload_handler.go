package handlers

import (
	"net/url"
	"strconv"
	"time"

	"github.com/cloudinary/cloudinary-go/v2"
	"github.com/cloudinary/cloudinary-go/v2/api"
	"github.com/cloudinary/cloudinary-go/v2/api/uploader"
	config "github.com/edumart/course_market/configs"
	"github.com/gofiber/fiber/v2"
)

// GenerateUploadSignature signs a direct-to-Cloudinary upload for course
// thumbnails and lecture assets so files never pass through this server.
func GenerateUploadSignature(c *fiber.Ctx) error {
	cloudinaryURL := config.Config("CLOUDINARY_URL")
	cld, err := cloudinary.NewFromURL(cloudinaryURL)
	if err != nil {
		return respond(c, fiber.StatusInternalServerError, "Failed to initialize Cloudinary", nil)
	}

	parsedURL, err := url.Parse(cloudinaryURL)
	if err != nil {
		return respond(c, fiber.StatusInternalServerError, "Failed to parse Cloudinary URL", nil)
	}
	secret, _ := parsedURL.User.Password()

	paramsToSign, err := api.StructToParams(uploader.UploadParams{
		Folder: "course_market_assets",
	})
	if err != nil {
		return respond(c, fiber.StatusInternalServerError, "Failed to prepare signature params", nil)
	}

	timestamp := time.Now().Unix()
	paramsToSign.Set("timestamp", strconv.FormatInt(timestamp, 10))

	signature, err := api.SignParameters(paramsToSign, secret)
	if err != nil {
		return respond(c, fiber.StatusInternalServerError, "Failed to sign upload params", nil)
	}

	return respond(c, fiber.StatusOK, "OK", fiber.Map{
		"signature": signature,
		"timestamp": timestamp,
		"api_key":   cld.Config.Cloud.APIKey,
		"folder":    "course_market_assets",
	})
}
