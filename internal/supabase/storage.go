package supabase

import (
	"bytes"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	storage "github.com/supabase-community/storage-go"
)

type StorageClient struct {
	client  *storage.Client
	bucket  string
	baseURL string
}

func NewStorageClient(supabaseURL, serviceRoleKey, bucket string) (*StorageClient, error) {
	// Ensure URL doesn't have trailing slash
	baseURL := strings.TrimSuffix(supabaseURL, "/")
	client := storage.NewClient(baseURL+"/storage/v1", serviceRoleKey, nil)

	return &StorageClient{
		client:  client,
		bucket:  bucket,
		baseURL: baseURL,
	}, nil
}

// PhotoExtension returns the lowercased extension of the uploaded filename,
// restricted to the formats the magnet print shop accepts. Anything else
// falls back to jpg.
func PhotoExtension(filename string) string {
	idx := strings.LastIndex(filename, ".")
	if idx < 0 || idx == len(filename)-1 {
		return "jpg"
	}
	ext := strings.ToLower(filename[idx+1:])
	switch ext {
	case "jpg", "jpeg", "png", "webp":
		return ext
	}
	return "jpg"
}

// PhotoObjectKey builds a storage key that cannot collide across concurrent
// submissions and cannot be guessed from the original filename.
func PhotoObjectKey(filename string) string {
	return fmt.Sprintf("images/%d-%s.%s", time.Now().UnixMilli(), uuid.NewString(), PhotoExtension(filename))
}

// UploadOrderPhoto stores the photo under a fresh object key and returns the
// key together with its durable public URL. Existing objects are never
// overwritten.
func (s *StorageClient) UploadOrderPhoto(filename string, data []byte, contentType string) (string, string, error) {
	storagePath := PhotoObjectKey(filename)

	if contentType == "" {
		contentType = "image/jpeg"
	}
	upsert := false
	cacheControl := "3600"
	_, err := s.client.UploadFile(s.bucket, storagePath, bytes.NewReader(data), storage.FileOptions{
		ContentType:  &contentType,
		Upsert:       &upsert,
		CacheControl: &cacheControl,
	})
	if err != nil {
		return "", "", fmt.Errorf("failed to upload file: %w", err)
	}

	return storagePath, s.GetPublicURL(storagePath), nil
}

func (s *StorageClient) GetPublicURL(storagePath string) string {
	return fmt.Sprintf("%s/storage/v1/object/public/%s/%s",
		s.baseURL, s.bucket, storagePath)
}

func (s *StorageClient) DeleteFile(storagePath string) error {
	_, err := s.client.RemoveFile(s.bucket, []string{storagePath})
	return err
}
