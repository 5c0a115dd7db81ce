package services

import (
	"context"
	"errors"
	"fmt"
	"image"
	_ "image/jpeg"
	_ "image/png"
	"os"
	"sync"
	"time"

	"play-and-learn/internal/audio"
	"play-and-learn/internal/config"
	"play-and-learn/internal/logger"
	"play-and-learn/internal/render"
)

// PlaceholderCaption is written under the generated launcher picture
const PlaceholderCaption = "Emy Girl"

// Picture is the launcher image and where it came from
type Picture struct {
	Image       image.Image
	Source      string
	Placeholder bool
	LoadTime    time.Duration
}

// AssetService locates and loads the bundled image and music
type AssetService struct {
	cfg    config.AssetConfig
	logger logger.Logger

	mu      sync.Mutex
	picture *Picture
}

func NewAssetService(cfg config.AssetConfig, log logger.Logger) *AssetService {
	return &AssetService{cfg: cfg, logger: log}
}

// Picture returns the launcher image. A missing or unreadable file falls
// back to the generated placeholder. The result is cached.
func (s *AssetService) Picture(ctx context.Context) (*Picture, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.picture != nil {
		return s.picture, nil
	}

	select {
	case <-ctx.Done():
		return nil, ctx.Err()
	default:
	}

	start := time.Now()
	pic, err := s.loadPicture()
	if err != nil {
		s.logger.Warning("AssetService", "using placeholder picture", map[string]interface{}{
			"file":  s.cfg.Background,
			"error": err.Error(),
		})
		pic = &Picture{Image: render.Placeholder(PlaceholderCaption), Placeholder: true}
	}
	pic.LoadTime = time.Since(start)
	s.picture = pic
	return pic, nil
}

func (s *AssetService) loadPicture() (*Picture, error) {
	path, err := audio.Resolve(s.cfg.Dir, s.cfg.Background)
	if err != nil {
		return nil, err
	}
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open image: %w", err)
	}
	defer f.Close()

	img, format, err := image.Decode(f)
	if err != nil {
		return nil, fmt.Errorf("failed to decode image %s: %w", path, err)
	}
	s.logger.Debug("AssetService", "picture loaded", map[string]interface{}{
		"file":   path,
		"format": format,
		"width":  img.Bounds().Dx(),
		"height": img.Bounds().Dy(),
	})
	return &Picture{Image: render.FitPicture(img), Source: path}, nil
}

// MusicPath resolves the background music file. The error wraps
// audio.ErrAssetNotFound when no candidate exists.
func (s *AssetService) MusicPath() (string, error) {
	path, err := audio.Resolve(s.cfg.Dir, s.cfg.Music)
	if err != nil {
		if errors.Is(err, audio.ErrAssetNotFound) {
			s.logger.Warning("AssetService", "background music not found", map[string]interface{}{
				"file": s.cfg.Music,
				"dir":  s.cfg.Dir,
			})
		}
		return "", err
	}
	return path, nil
}
