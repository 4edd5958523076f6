package disk

import (
	"context"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"pet-adoption/internal/ports/images"
)

// Store guarda las imágenes en <root>/<resource>/<nombre>; el router sirve
// root bajo /images/.
type Store struct {
	root string
}

func New(root string) (*Store, error) {
	for _, r := range []images.Resource{images.ResourceUsers, images.ResourcePets} {
		if err := os.MkdirAll(filepath.Join(root, string(r)), 0o755); err != nil {
			return nil, fmt.Errorf("disk images: mkdir: %w", err)
		}
	}
	return &Store{root: root}, nil
}

func (s *Store) Root() string { return s.root }

func (s *Store) Save(ctx context.Context, resource images.Resource, up images.Upload) (string, error) {
	if err := images.ValidateExtension(up.Filename); err != nil {
		return "", err
	}
	if err := ctx.Err(); err != nil {
		return "", err
	}

	name := images.NewName(up.Filename)
	path := filepath.Join(s.root, string(resource), name)

	f, err := os.OpenFile(path, os.O_CREATE|os.O_EXCL|os.O_WRONLY, 0o644)
	if err != nil {
		return "", fmt.Errorf("disk images: create: %w", err)
	}
	if _, err := io.Copy(f, up.Body); err != nil {
		_ = f.Close()
		_ = os.Remove(path)
		return "", fmt.Errorf("disk images: write: %w", err)
	}
	if err := f.Close(); err != nil {
		_ = os.Remove(path)
		return "", fmt.Errorf("disk images: close: %w", err)
	}
	return name, nil
}
