package images

import (
	"context"
	"io"
	"mime/multipart"
	"path/filepath"
	"strings"

	"pet-adoption/internal/platform/apperr"

	"github.com/google/uuid"
)

// Resource separa las imágenes por tipo de recurso (carpeta / prefijo).
type Resource string

const (
	ResourceUsers Resource = "users"
	ResourcePets  Resource = "pets"
)

// Upload es un archivo recibido, todavía no persistido.
type Upload struct {
	Filename    string
	Body        io.Reader
	Size        int64
	ContentType string
}

// Store persiste una imagen y devuelve la referencia (nombre de archivo)
// que se guarda en el usuario o en la mascota.
type Store interface {
	Save(ctx context.Context, resource Resource, up Upload) (string, error)
}

var ErrUnsupportedType = apperr.Validation("Por favor, envie apenas jpg, jpeg ou png!")

var allowedExt = map[string]bool{
	".png":  true,
	".jpg":  true,
	".jpeg": true,
}

// ValidateExtension acepta solo png/jpg/jpeg (case-insensitive).
func ValidateExtension(filename string) error {
	if !allowedExt[strings.ToLower(filepath.Ext(filename))] {
		return ErrUnsupportedType
	}
	return nil
}

// NewName genera un nombre único conservando la extensión original.
func NewName(filename string) string {
	return uuid.NewString() + strings.ToLower(filepath.Ext(filename))
}

// OpenMultipart abre los archivos de un form multipart. El caller debe
// invocar close() cuando termina (también si hubo error).
func OpenMultipart(files []*multipart.FileHeader) ([]Upload, func(), error) {
	opened := make([]multipart.File, 0, len(files))
	closeAll := func() {
		for _, f := range opened {
			_ = f.Close()
		}
	}

	out := make([]Upload, 0, len(files))
	for _, fh := range files {
		f, err := fh.Open()
		if err != nil {
			return nil, closeAll, apperr.Internal(err)
		}
		opened = append(opened, f)
		out = append(out, Upload{
			Filename:    fh.Filename,
			Body:        f,
			Size:        fh.Size,
			ContentType: fh.Header.Get("Content-Type"),
		})
	}
	return out, closeAll, nil
}
