// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"context"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/MKhiriev/go-file-drop/internal/logger"
	"github.com/MKhiriev/go-file-drop/models"
)

const (
	dirPerm = 0o755
)

// localFileStorage keeps files in a single directory on the local
// filesystem. Names are joined to the root verbatim; rejecting unsafe names
// is the caller's job.
type localFileStorage struct {
	root     string
	location models.Location
}

// NewLocalFileStorage returns a [FileStorage] rooted at dir. A relative dir
// is resolved against the working directory once, at construction.
func NewLocalFileStorage(dir string, location models.Location) (FileStorage, error) {
	root, err := filepath.Abs(dir)
	if err != nil {
		return nil, fmt.Errorf("error resolving %s directory %q: %w", location, dir, err)
	}

	return &localFileStorage{
		root:     root,
		location: location,
	}, nil
}

func (s *localFileStorage) Prepare(ctx context.Context) error {
	if err := os.MkdirAll(s.root, dirPerm); err != nil {
		logger.FromContext(ctx).Err(err).
			Str("func", "localFileStorage.Prepare").
			Str("root", s.root).
			Msg("error creating directory")
		return fmt.Errorf("%w: %w", ErrCreatingDirectory, err)
	}

	return nil
}

func (s *localFileStorage) Save(ctx context.Context, file models.StoredFile) error {
	log := logger.FromContext(ctx)
	path := s.path(file.Name)

	f, err := os.Create(path)
	if err != nil {
		log.Err(err).Str("func", "localFileStorage.Save").Str("path", path).Msg("error creating file")
		return fmt.Errorf("%w: %w", ErrCreatingFile, err)
	}
	defer f.Close()

	if _, err = f.Write(file.Content); err != nil {
		log.Err(err).Str("func", "localFileStorage.Save").Str("path", path).Msg("error writing file")
		return fmt.Errorf("%w: %w", ErrWritingFile, err)
	}

	if err = f.Close(); err != nil {
		log.Err(err).Str("func", "localFileStorage.Save").Str("path", path).Msg("error flushing file")
		return fmt.Errorf("%w: %w", ErrWritingFile, err)
	}

	return nil
}

func (s *localFileStorage) Load(ctx context.Context, name string) (models.StoredFile, error) {
	log := logger.FromContext(ctx)
	path := s.path(name)

	f, err := os.Open(path)
	if err != nil {
		log.Debug().Err(err).Str("func", "localFileStorage.Load").Str("path", path).Msg("error opening file")
		return models.StoredFile{}, fmt.Errorf("%w: %w", ErrFileNotFound, err)
	}
	defer f.Close()

	content, err := io.ReadAll(f)
	if err != nil {
		log.Err(err).Str("func", "localFileStorage.Load").Str("path", path).Msg("error reading file")
		return models.StoredFile{}, fmt.Errorf("%w: %w", ErrReadingFile, err)
	}

	return models.StoredFile{
		Name:     name,
		Content:  content,
		Location: s.location,
	}, nil
}

func (s *localFileStorage) Location() models.Location {
	return s.location
}

func (s *localFileStorage) path(name string) string {
	return filepath.Join(s.root, name)
}
