package store

import (
	"errors"
	"os"
)

// Resource — одна коллекция как единый блок байт: читается и
// перезаписывается целиком, без частичных записей.
type Resource interface {
	Load() ([]byte, error)
	Save(data []byte) error
}

type fileResource struct {
	path string
}

func (r *fileResource) Load() ([]byte, error) {
	raw, err := os.ReadFile(r.path)
	if errors.Is(err, os.ErrNotExist) {
		// отсутствующий файл — пустая коллекция
		return []byte("[]"), nil
	}
	if err != nil {
		return nil, err
	}
	return raw, nil
}

func (r *fileResource) Save(data []byte) error {
	return os.WriteFile(r.path, data, 0o644)
}

type memResource struct {
	data []byte
}

func (r *memResource) Load() ([]byte, error) {
	if r.data == nil {
		return []byte("[]"), nil
	}
	return r.data, nil
}

func (r *memResource) Save(data []byte) error {
	r.data = data
	return nil
}
