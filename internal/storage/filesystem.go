package storage

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"time"

	"github.com/MikeBiancalana/streak/internal/config"
)

// FileStore handles export files on disk
type FileStore struct{}

// NewFileStore creates a new file store
func NewFileStore() *FileStore {
	return &FileStore{}
}

// FileInfo holds file metadata
type FileInfo struct {
	Path         string
	LastModified time.Time
	Exists       bool
}

// ExportPath returns the default export file path for a date
func (fs *FileStore) ExportPath(date string) (string, error) {
	exportDir, err := config.ExportDir()
	if err != nil {
		return "", err
	}

	return filepath.Join(exportDir, config.AppName+"-"+date+".yaml"), nil
}

// BackupPath returns the path of the snapshot taken before a replacing
// import. stamp disambiguates several imports on one day.
func (fs *FileStore) BackupPath(date string, stamp time.Time) (string, error) {
	exportDir, err := config.ExportDir()
	if err != nil {
		return "", err
	}

	name := fmt.Sprintf("%s-%s-backup-%s.yaml", config.AppName, date, stamp.Format("150405"))
	return filepath.Join(exportDir, name), nil
}

// WriteFile writes content to path, creating parent directories
func (fs *FileStore) WriteFile(path string, content []byte) error {
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return fmt.Errorf("failed to create directory: %w", err)
	}
	if err := os.WriteFile(path, content, 0644); err != nil {
		return fmt.Errorf("failed to write file: %w", err)
	}
	return nil
}

// ReadFile reads a file and returns its content and metadata
func (fs *FileStore) ReadFile(path string) ([]byte, FileInfo, error) {
	fileInfo, err := os.Stat(path)
	if os.IsNotExist(err) {
		return nil, FileInfo{Path: path, Exists: false}, fmt.Errorf("file not found: %s", path)
	}
	if err != nil {
		return nil, FileInfo{}, fmt.Errorf("failed to stat file: %w", err)
	}

	content, err := os.ReadFile(path)
	if err != nil {
		return nil, FileInfo{}, fmt.Errorf("failed to read file: %w", err)
	}

	return content, FileInfo{
		Path:         path,
		LastModified: fileInfo.ModTime(),
		Exists:       true,
	}, nil
}

// ListExports returns export files, newest first. Listing does not
// create the export directory; a missing one means no exports.
func (fs *FileStore) ListExports() ([]FileInfo, error) {
	dataDir, err := config.DataDir()
	if err != nil {
		return nil, err
	}
	exportDir := filepath.Join(dataDir, config.ExportDirName)

	entries, err := os.ReadDir(exportDir)
	if errors.Is(err, os.ErrNotExist) {
		return []FileInfo{}, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to read export directory: %w", err)
	}

	files := make([]FileInfo, 0)
	for _, entry := range entries {
		if entry.IsDir() || filepath.Ext(entry.Name()) != ".yaml" {
			continue
		}
		info, err := entry.Info()
		if err != nil {
			continue
		}
		files = append(files, FileInfo{
			Path:         filepath.Join(exportDir, entry.Name()),
			LastModified: info.ModTime(),
			Exists:       true,
		})
	}

	sort.Slice(files, func(i, j int) bool {
		return files[i].LastModified.After(files[j].LastModified)
	})
	return files, nil
}
