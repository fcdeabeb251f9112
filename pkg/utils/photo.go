package utils

import (
	"encoding/base64"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/google/uuid"
)

// PhotoStore persists a base64-encoded photo payload and returns the URL
// path recorded on the owning record.
type PhotoStore interface {
	SaveBase64(payload string) (string, error)
}

type DiskPhotoStore struct {
	Dir string
}

func NewDiskPhotoStore() *DiskPhotoStore {
	dir := os.Getenv("UPLOADS_DIR")
	if dir == "" {
		dir = "./uploads"
	}
	return &DiskPhotoStore{Dir: dir}
}

// SaveBase64 accepts either a bare base64 string or a data URI
// ("data:image/png;base64,...").
func (s *DiskPhotoStore) SaveBase64(payload string) (string, error) {
	ext := "jpg"
	if strings.HasPrefix(payload, "data:") {
		parts := strings.SplitN(payload, ",", 2)
		if len(parts) != 2 {
			return "", fmt.Errorf("malformed data uri")
		}
		if strings.Contains(parts[0], "image/png") {
			ext = "png"
		}
		payload = parts[1]
	}

	raw, err := base64.StdEncoding.DecodeString(payload)
	if err != nil {
		return "", fmt.Errorf("decode photo: %w", err)
	}

	if err := os.MkdirAll(s.Dir, 0o755); err != nil {
		return "", err
	}
	name := uuid.New().String() + "." + ext
	if err := os.WriteFile(filepath.Join(s.Dir, name), raw, 0o644); err != nil {
		return "", err
	}
	return "/uploads/" + name, nil
}
