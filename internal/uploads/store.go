package uploads

import (
	"context"
	"encoding/base64"
	"fmt"
	"os"
	"path"
	"path/filepath"
	"strings"
	"time"

	"github.com/dustin/go-humanize"
	"github.com/gabriel-vasile/mimetype"
	"github.com/google/uuid"

	"gallery/pkg/config"
	"gallery/pkg/logger"
)

const (
	dataPrefix   = "data:"
	base64Marker = ";base64,"

	DefaultPublicPath = "/static/uploads"
)

// Store keeps uploaded images on local disk under a directory served by the
// static handler.
type Store struct {
	dir        string
	publicPath string
	maxSize    int64
	accepted   map[string]struct{}
	log        *logger.Logger
	now        func() time.Time
}

func NewStore(dir, publicPath string, maxSize int64, accepted []string, log *logger.Logger) *Store {
	types := make(map[string]struct{}, len(accepted))
	for _, t := range accepted {
		types[strings.ToLower(t)] = struct{}{}
	}
	if publicPath == "" {
		publicPath = DefaultPublicPath
	}
	return &Store{
		dir:        dir,
		publicPath: strings.TrimRight(publicPath, "/"),
		maxSize:    maxSize,
		accepted:   types,
		log:        log,
		now:        time.Now,
	}
}

// NewStoreFromConfig places uploads under the static dir so they are reachable
// through /static/.
func NewStoreFromConfig(cfg *config.Config) *Store {
	publicPath := DefaultPublicPath
	if rel, err := filepath.Rel(cfg.StaticDir, cfg.UploadDir); err == nil && !strings.HasPrefix(rel, "..") && rel != "." {
		publicPath = path.Join("/static", filepath.ToSlash(rel))
	}
	return NewStore(cfg.UploadDir, publicPath, cfg.MaxImageSize, config.AcceptedImageTypes, cfg.Log.WithComponent("uploads"))
}

// Resolve stores embedded images and returns every other reference as is.
func (s *Store) Resolve(ctx context.Context, imageRef string) (string, error) {
	ref := strings.TrimSpace(imageRef)
	if !strings.HasPrefix(ref, dataPrefix) {
		return imageRef, nil
	}
	return s.SaveDataURI(ctx, ref)
}

// SaveDataURI decodes a base64 data URI, checks its real content type and
// size, and writes it to disk. It returns the server path of the new file.
func (s *Store) SaveDataURI(ctx context.Context, dataURI string) (string, error) {
	declared, payload, err := splitDataURI(dataURI)
	if err != nil {
		return "", err
	}
	if _, ok := s.accepted[declared]; !ok {
		return "", fmt.Errorf("%w: %s", ErrUnsupportedType, declared)
	}
	if int64(base64.StdEncoding.DecodedLen(len(payload))) > s.maxSize+2 {
		return "", fmt.Errorf("%w of %s", ErrTooLarge, humanize.Bytes(uint64(s.maxSize)))
	}

	data, err := base64.StdEncoding.DecodeString(payload)
	if err != nil {
		return "", fmt.Errorf("%w: payload is not valid base64", ErrInvalidDataURI)
	}
	if len(data) == 0 {
		return "", fmt.Errorf("%w: empty image", ErrInvalidDataURI)
	}
	if int64(len(data)) > s.maxSize {
		return "", fmt.Errorf("%w of %s (got %s)", ErrTooLarge,
			humanize.Bytes(uint64(s.maxSize)), humanize.Bytes(uint64(len(data))))
	}

	detected := mimetype.Detect(data)
	if _, ok := s.accepted[detected.String()]; !ok {
		return "", fmt.Errorf("%w: content is %s", ErrUnsupportedType, detected.String())
	}

	if err := ctx.Err(); err != nil {
		return "", err
	}
	if err := os.MkdirAll(s.dir, 0o755); err != nil {
		return "", fmt.Errorf("failed to create upload dir: %w", err)
	}

	name := fmt.Sprintf("%s_%s%s", s.now().UTC().Format("20060102150405"), uuid.NewString(), detected.Extension())
	if err := os.WriteFile(filepath.Join(s.dir, name), data, 0o644); err != nil {
		return "", fmt.Errorf("failed to write image: %w", err)
	}

	s.log.Info("Image uploaded",
		"file", name,
		"content_type", detected.String(),
		"size", humanize.Bytes(uint64(len(data))),
	)
	return s.publicPath + "/" + name, nil
}

func splitDataURI(dataURI string) (string, string, error) {
	rest, ok := strings.CutPrefix(strings.TrimSpace(dataURI), dataPrefix)
	if !ok {
		return "", "", fmt.Errorf("%w: missing data: prefix", ErrInvalidDataURI)
	}
	header, payload, ok := strings.Cut(rest, ",")
	if !ok || !strings.HasSuffix(header+",", base64Marker) {
		return "", "", fmt.Errorf("%w: expected base64 encoding", ErrInvalidDataURI)
	}
	mediaType, _, _ := strings.Cut(header, ";")
	mediaType = strings.ToLower(strings.TrimSpace(mediaType))
	if mediaType == "" {
		return "", "", fmt.Errorf("%w: missing media type", ErrInvalidDataURI)
	}
	return mediaType, payload, nil
}
