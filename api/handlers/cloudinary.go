package handlers

import (
	"encoding/json"
	"errors"
	"net/http"
	"net/url"
	"strconv"
	"time"

	cloudinary "github.com/cloudinary/cloudinary-go/v2/api"

	"github.com/legalaid-ng/legalaid-api/config"
)

// Upload folders per segment
const (
	FolderProofOfIndigency = "proof-of-indigency"
	FolderLawyerAvatars    = "lawyer-avatars"
	FolderAttachments      = "attachments"
)

var errCloudinaryNotConfigured = errors.New("cloudinary credentials are not set")

// CloudinaryHandler signs direct browser uploads to Cloudinary
type CloudinaryHandler struct {
	CloudName    string
	APIKey       string
	APISecret    string
	UploadPreset string
	Folder       string
	now          func() time.Time
}

// NewCloudinaryHandler returns a handler signing uploads into folder
func NewCloudinaryHandler(conf *config.Config, folder string) CloudinaryHandler {
	return CloudinaryHandler{
		CloudName:    conf.CloudinaryCloudName,
		APIKey:       conf.CloudinaryAPIKey,
		APISecret:    conf.CloudinaryAPISecret,
		UploadPreset: conf.CloudinaryUploadPreset,
		Folder:       folder,
		now:          time.Now,
	}
}

// GenerateSignature generates a signature for Cloudinary uploads
func (c CloudinaryHandler) GenerateSignature(w http.ResponseWriter, r *http.Request) {
	if c.APISecret == "" || c.APIKey == "" {
		config.ErrorStatus("uploads are unavailable", http.StatusServiceUnavailable, w, errCloudinaryNotConfigured)
		return
	}

	now := time.Now
	if c.now != nil {
		now = c.now
	}
	timestamp := strconv.FormatInt(now().Unix(), 10)

	params := url.Values{}
	params.Set("timestamp", timestamp)
	if c.Folder != "" {
		params.Set("folder", c.Folder)
	}
	if c.UploadPreset != "" {
		params.Set("upload_preset", c.UploadPreset)
	}

	signature, err := cloudinary.SignParameters(params, c.APISecret)
	if err != nil {
		config.ErrorStatus("failed to sign upload", http.StatusInternalServerError, w, err)
		return
	}

	response := map[string]string{
		"timestamp":    timestamp,
		"signature":    signature,
		"apiKey":       c.APIKey,
		"cloudName":    c.CloudName,
		"folder":       c.Folder,
		"uploadPreset": c.UploadPreset,
	}
	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(response)
}
