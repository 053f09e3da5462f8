package rehost

import (
	"context"
	"fmt"
	"log/slog"
	"path"
	"strings"

	"github.com/cloudinary/cloudinary-go/v2"
	"github.com/cloudinary/cloudinary-go/v2/api/uploader"

	"reel_fetcher/internal/domain"
)

// Config holds Cloudinary credentials and the upload folder.
type Config struct {
	CloudName string
	APIKey    string
	APISecret string
	Folder    string
}

// Cloudinary re-hosts remote media into Cloudinary-backed durable
// storage. Uploads fetch straight from the remote URL; the video never
// transits this process.
type Cloudinary struct {
	cld    *cloudinary.Cloudinary
	folder string
	logger *slog.Logger
}

func New(cfg Config, logger *slog.Logger) (*Cloudinary, error) {
	cld, err := cloudinary.NewFromParams(cfg.CloudName, cfg.APIKey, cfg.APISecret)
	if err != nil {
		return nil, fmt.Errorf("init cloudinary: %w", err)
	}

	return &Cloudinary{
		cld:    cld,
		folder: cfg.Folder,
		logger: logger.With("component", "rehoster"),
	}, nil
}

// Rehost uploads the remote video and returns its canonical video URI
// plus the derived thumbnail URI. Upload failures are domain.ErrStorage.
func (c *Cloudinary) Rehost(ctx context.Context, remoteURL string) (*domain.AssetURIs, error) {
	result, err := c.cld.Upload.Upload(ctx, remoteURL, uploader.UploadParams{
		ResourceType: "video",
		Folder:       c.folder,
	})
	if err != nil {
		return nil, fmt.Errorf("upload video: %w: %w", domain.ErrStorage, err)
	}
	if result.Error.Message != "" || result.SecureURL == "" {
		return nil, fmt.Errorf("upload rejected: %s: %w", result.Error.Message, domain.ErrStorage)
	}

	uris := &domain.AssetURIs{
		VideoURI: result.SecureURL,
		ThumbURI: ThumbURL(result.SecureURL),
	}

	c.logger.Debug("rehosted video", "video_uri", uris.VideoURI)

	return uris, nil
}

// ThumbURL derives the still-image URI by swapping the video extension
// for .jpg. Cloudinary serves a frame at the same public path; other
// providers may not, so the assumption lives in this one function.
func ThumbURL(videoURL string) string {
	ext := path.Ext(videoURL)
	if ext == "" {
		return videoURL + ".jpg"
	}
	return strings.TrimSuffix(videoURL, ext) + ".jpg"
}
