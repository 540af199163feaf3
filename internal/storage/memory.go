package storage

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"sort"
	"strings"
	"sync"
	"time"
)

type memObject struct {
	data         []byte
	contentType  string
	metadata     map[string]string
	lastModified time.Time
}

// Memory is an in-memory ObjectStore. It backs tests and local runs that
// have no S3 endpoint; listing order is sorted by key so behavior is
// deterministic.
type Memory struct {
	mu      sync.RWMutex
	objects map[string]memObject
}

// NewMemory returns an empty in-memory object store.
func NewMemory() *Memory {
	return &Memory{objects: make(map[string]memObject)}
}

func (m *Memory) Put(ctx context.Context, key string, r io.Reader, opt PutOptions) (ObjectInfo, error) {
	if err := ctx.Err(); err != nil {
		return ObjectInfo{}, err
	}
	data, err := io.ReadAll(r)
	if err != nil {
		return ObjectInfo{}, fmt.Errorf("read content for %q: %w", key, err)
	}
	meta := make(map[string]string, len(opt.Metadata))
	for k, v := range opt.Metadata {
		meta[strings.ToLower(k)] = v
	}
	obj := memObject{
		data:         data,
		contentType:  opt.ContentType,
		metadata:     meta,
		lastModified: time.Now(),
	}

	m.mu.Lock()
	m.objects[key] = obj
	m.mu.Unlock()

	return ObjectInfo{
		Key:          key,
		Size:         int64(len(data)),
		ContentType:  opt.ContentType,
		LastModified: obj.lastModified,
		Metadata:     meta,
	}, nil
}

func (m *Memory) Get(ctx context.Context, key string) (io.ReadCloser, ObjectInfo, error) {
	if err := ctx.Err(); err != nil {
		return nil, ObjectInfo{}, err
	}
	m.mu.RLock()
	obj, ok := m.objects[key]
	m.mu.RUnlock()
	if !ok {
		return nil, ObjectInfo{}, fmt.Errorf("get object %q: %w", key, ErrNotFound)
	}
	info := ObjectInfo{
		Key:          key,
		Size:         int64(len(obj.data)),
		ContentType:  obj.contentType,
		LastModified: obj.lastModified,
		Metadata:     obj.metadata,
	}
	return io.NopCloser(bytes.NewReader(obj.data)), info, nil
}

func (m *Memory) GetMetadata(ctx context.Context, key string) (map[string]string, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	m.mu.RLock()
	obj, ok := m.objects[key]
	m.mu.RUnlock()
	if !ok {
		return nil, fmt.Errorf("stat object %q: %w", key, ErrNotFound)
	}
	meta := make(map[string]string, len(obj.metadata))
	for k, v := range obj.metadata {
		meta[k] = v
	}
	return meta, nil
}

func (m *Memory) List(ctx context.Context, prefix string) ([]string, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	m.mu.RLock()
	names := []string{}
	for key := range m.objects {
		if strings.HasPrefix(key, prefix) {
			names = append(names, strings.TrimPrefix(key, prefix))
		}
	}
	m.mu.RUnlock()
	sort.Strings(names)
	return names, nil
}

func (m *Memory) Delete(ctx context.Context, key string) (bool, error) {
	if err := ctx.Err(); err != nil {
		return false, err
	}
	m.mu.Lock()
	_, ok := m.objects[key]
	delete(m.objects, key)
	m.mu.Unlock()
	return ok, nil
}
