package service

import (
	"context"
	"sync"

	"github.com/MKhiriev/go-file-drop/models"
)

// UploadLockingService serializes writes of the same file name. Writes to
// different names run in parallel; the last writer still wins.
type UploadLockingService struct {
	inner UploadService
	locks *keyedMutex
}

func NewUploadLockingService() UploadServiceWrapper {
	return &UploadLockingService{
		locks: newKeyedMutex(),
	}
}

func (l *UploadLockingService) PrepareUpload(ctx context.Context) error {
	return l.inner.PrepareUpload(ctx)
}

func (l *UploadLockingService) CheckFileName(ctx context.Context, name string) error {
	return l.inner.CheckFileName(ctx, name)
}

func (l *UploadLockingService) UploadFile(ctx context.Context, file models.StoredFile) error {
	unlock := l.locks.Lock(file.Name)
	defer unlock()

	return l.inner.UploadFile(ctx, file)
}

func (l *UploadLockingService) Wrap(wrapped UploadService) UploadService {
	l.inner = wrapped
	return l
}

// keyedMutex hands out one mutex per key and forgets it once the last
// holder or waiter is gone.
type keyedMutex struct {
	mu    sync.Mutex
	locks map[string]*refMutex
}

type refMutex struct {
	sync.Mutex
	refs int
}

func newKeyedMutex() *keyedMutex {
	return &keyedMutex{locks: make(map[string]*refMutex)}
}

// Lock blocks until key is free and returns the matching unlock func.
func (k *keyedMutex) Lock(key string) func() {
	k.mu.Lock()
	m, ok := k.locks[key]
	if !ok {
		m = &refMutex{}
		k.locks[key] = m
	}
	m.refs++
	k.mu.Unlock()

	m.Lock()

	return func() {
		m.Unlock()

		k.mu.Lock()
		m.refs--
		if m.refs == 0 {
			delete(k.locks, key)
		}
		k.mu.Unlock()
	}
}

func (k *keyedMutex) len() int {
	k.mu.Lock()
	defer k.mu.Unlock()
	return len(k.locks)
}
