package storage

import (
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
)

var ErrInvalidKey = errors.New("invalid storage key")

// LocalStorage keeps resource blobs on disk, sharded by the first characters of the key.
type LocalStorage struct {
	basePath string
}

func NewLocalStorage(basePath string) (*LocalStorage, error) {
	if err := os.MkdirAll(basePath, os.ModePerm); err != nil {
		return nil, err
	}
	return &LocalStorage{basePath: basePath}, nil
}

func (ls *LocalStorage) pathFor(key string) (string, error) {
	if key == "" || strings.ContainsAny(key, `/\`) || key == "." || key == ".." {
		return "", fmt.Errorf("%w: %q", ErrInvalidKey, key)
	}
	if len(key) < 4 {
		return filepath.Join(ls.basePath, key), nil
	}
	return filepath.Join(ls.basePath, key[:2], key[2:4], key), nil
}

func (ls *LocalStorage) Save(key string, data io.Reader) error {
	filePath, err := ls.pathFor(key)
	if err != nil {
		return err
	}

	if err := os.MkdirAll(filepath.Dir(filePath), os.ModePerm); err != nil {
		return err
	}

	file, err := os.Create(filePath)
	if err != nil {
		return err
	}
	defer file.Close()

	if _, err := io.Copy(file, data); err != nil {
		os.Remove(filePath)
		return err
	}
	return nil
}

func (ls *LocalStorage) Get(key string) (io.ReadCloser, error) {
	filePath, err := ls.pathFor(key)
	if err != nil {
		return nil, err
	}

	file, err := os.Open(filePath)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, fmt.Errorf("file with key %s not found: %w", key, err)
		}
		return nil, err
	}

	return file, nil
}

// Copy duplicates the blob under srcKey to dstKey, so either can be deleted
// without affecting the other.
func (ls *LocalStorage) Copy(srcKey, dstKey string) error {
	src, err := ls.Get(srcKey)
	if err != nil {
		return err
	}
	defer src.Close()

	return ls.Save(dstKey, src)
}

// Delete removes the blob. Missing blobs are not an error.
func (ls *LocalStorage) Delete(key string) error {
	filePath, err := ls.pathFor(key)
	if err != nil {
		return err
	}

	err = os.Remove(filePath)
	if os.IsNotExist(err) {
		return nil
	}

	return err
}
