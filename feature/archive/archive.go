package archive

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"sort"
	"strings"
	"time"

	"guild-manager/core/storage"

	"github.com/minio/minio-go/v7"
)

const contentType = "application/yaml"

// Store archives applied guild configurations in a bucket.
type Store struct {
	client storage.Client
	bucket string
	now    func() time.Time
}

// NewStore creates a Store writing to bucket.
func NewStore(client storage.Client, bucket string) *Store {
	return &Store{client: client, bucket: bucket, now: time.Now}
}

// Key returns the object key for a configuration archived at t.
func Key(guildID string, t time.Time) string {
	return fmt.Sprintf("%s%d.yaml", prefix(guildID), t.UnixNano())
}

func prefix(guildID string) string {
	return "guilds/" + guildID + "/"
}

// EnsureBucket creates the bucket when it does not exist yet.
func (s *Store) EnsureBucket(ctx context.Context) error {
	exists, err := s.client.BucketExists(ctx, s.bucket)
	if err != nil {
		return fmt.Errorf("failed to check bucket %s: %w", s.bucket, err)
	}
	if exists {
		return nil
	}
	if err := s.client.MakeBucket(ctx, s.bucket, minio.MakeBucketOptions{}); err != nil {
		return fmt.Errorf("failed to create bucket %s: %w", s.bucket, err)
	}
	return nil
}

// Save uploads raw as the newest configuration of the guild and returns its key.
func (s *Store) Save(ctx context.Context, guildID string, raw []byte) (string, error) {
	key := Key(guildID, s.now())
	_, err := s.client.PutObject(ctx, s.bucket, key, bytes.NewReader(raw), int64(len(raw)),
		minio.PutObjectOptions{ContentType: contentType})
	if err != nil {
		return "", fmt.Errorf("failed to archive %s: %w", key, err)
	}
	return key, nil
}

// Load downloads an archived configuration.
func (s *Store) Load(ctx context.Context, key string) ([]byte, error) {
	obj, err := s.client.GetObject(ctx, s.bucket, key, minio.GetObjectOptions{})
	if err != nil {
		return nil, fmt.Errorf("failed to get %s: %w", key, err)
	}
	defer obj.Close()

	data, err := io.ReadAll(obj)
	if err != nil {
		return nil, fmt.Errorf("failed to read %s: %w", key, err)
	}
	return data, nil
}

// List returns the archived keys of a guild, newest first.
func (s *Store) List(ctx context.Context, guildID string) ([]string, error) {
	var keys []string
	for obj := range s.client.ListObjects(ctx, s.bucket, minio.ListObjectsOptions{Prefix: prefix(guildID), Recursive: true}) {
		if obj.Err != nil {
			return nil, fmt.Errorf("failed to list archive of guild %s: %w", guildID, obj.Err)
		}
		if strings.HasSuffix(obj.Key, ".yaml") {
			keys = append(keys, obj.Key)
		}
	}

	// Keys only differ by their nanosecond stamp, which has a fixed width
	// for any date this program will see.
	sort.Sort(sort.Reverse(sort.StringSlice(keys)))
	return keys, nil
}
