package store

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"time"
)

const (
	customersFile = "customers.json"
	contactsFile  = "contacts.json"
	dealsFile     = "deals.json"
)

// Store владеет тремя коллекциями CRM. Каждая мутация читает коллекцию
// целиком, меняет её в памяти и перезаписывает файл; последняя запись
// побеждает.
type Store struct {
	dataDir string

	customers Resource
	contacts  Resource
	deals     Resource

	now func() time.Time
}

// New открывает файловое хранилище в каталоге dataDir, создавая каталог
// и пустые файлы коллекций при необходимости.
func New(dataDir string) (*Store, error) {
	if err := os.MkdirAll(dataDir, 0o755); err != nil {
		return nil, fmt.Errorf("create data dir: %w", err)
	}
	for _, name := range []string{customersFile, contactsFile, dealsFile} {
		path := filepath.Join(dataDir, name)
		if _, err := os.Stat(path); os.IsNotExist(err) {
			if err := os.WriteFile(path, []byte("[]"), 0o644); err != nil {
				return nil, fmt.Errorf("init %s: %w", name, err)
			}
		}
	}
	return &Store{
		dataDir:   dataDir,
		customers: &fileResource{path: filepath.Join(dataDir, customersFile)},
		contacts:  &fileResource{path: filepath.Join(dataDir, contactsFile)},
		deals:     &fileResource{path: filepath.Join(dataDir, dealsFile)},
		now:       time.Now,
	}, nil
}

// NewMem — хранилище в памяти для тестов, семантика та же.
func NewMem() *Store {
	return &Store{
		customers: &memResource{},
		contacts:  &memResource{},
		deals:     &memResource{},
		now:       time.Now,
	}
}

func decode[T any](r Resource) ([]T, error) {
	raw, err := r.Load()
	if err != nil {
		return nil, err
	}
	var out []T
	if err := json.Unmarshal(raw, &out); err != nil {
		// битый файл читается как пустая коллекция
		return nil, nil
	}
	return out, nil
}

func encode[T any](r Resource, list []T) error {
	if list == nil {
		list = []T{}
	}
	raw, err := json.MarshalIndent(list, "", "  ")
	if err != nil {
		return err
	}
	return r.Save(raw)
}

// Backup копирует файлы коллекций в data/backup/<timestamp>/ как есть,
// байт в байт. Возвращает путь к каталогу копии.
func (s *Store) Backup(timestamp string) (string, error) {
	if s.dataDir == "" {
		return "", fmt.Errorf("backup requires file-backed storage")
	}

	backupDir := filepath.Join(s.dataDir, "backup", timestamp)
	if err := os.MkdirAll(backupDir, 0o755); err != nil {
		return "", fmt.Errorf("create backup dir: %w", err)
	}

	for _, name := range []string{customersFile, contactsFile, dealsFile} {
		src := filepath.Join(s.dataDir, name)
		if _, err := os.Stat(src); os.IsNotExist(err) {
			continue
		}
		if err := copyFile(src, filepath.Join(backupDir, name)); err != nil {
			return "", err
		}
	}

	return backupDir, nil
}

func copyFile(src, dst string) error {
	in, err := os.Open(src)
	if err != nil {
		return err
	}
	defer in.Close()

	out, err := os.Create(dst)
	if err != nil {
		return err
	}
	defer out.Close()

	if _, err := io.Copy(out, in); err != nil {
		return err
	}
	return out.Close()
}
