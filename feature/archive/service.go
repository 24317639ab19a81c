package archive

import (
	"bytes"
	"context"
	"fmt"
	"os"
	"path"
	"path/filepath"

	"application-sync/core/reconcile"
	"application-sync/core/storage"

	"github.com/goccy/go-json"
	"github.com/minio/minio-go/v7"
	"go.uber.org/zap"
)

// ReportObject is the object name of the run report within a run prefix.
const ReportObject = "report.json"

// Object is one archived file.
type Object struct {
	Key          string `json:"key"`
	Size         int64  `json:"size"`
	LastModified string `json:"last_modified"`
}

// Service uploads run artifacts to object storage.
type Service struct {
	client storage.Client
	bucket string
	logger *zap.Logger
}

// NewService creates a new archive service.
func NewService(client storage.Client, bucket string, logger *zap.Logger) *Service {
	return &Service{client: client, bucket: bucket, logger: logger}
}

// Prefix returns the object prefix of a run.
func Prefix(runID string) string {
	return path.Join("runs", runID) + "/"
}

// Archive uploads the source file and the JSON report under runs/<run-id>/.
// The bucket is created when missing.
func (s *Service) Archive(ctx context.Context, runID, sourcePath string, report *reconcile.Report) error {
	if err := s.ensureBucket(ctx); err != nil {
		return err
	}

	source, err := os.ReadFile(sourcePath)
	if err != nil {
		return fmt.Errorf("failed to read source: %w", err)
	}
	sourceKey := Prefix(runID) + filepath.Base(sourcePath)
	if err := s.put(ctx, sourceKey, source, "text/csv"); err != nil {
		return err
	}

	body, err := json.MarshalIndent(report, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to encode report: %w", err)
	}
	if err := s.put(ctx, Prefix(runID)+ReportObject, body, "application/json"); err != nil {
		return err
	}

	s.logger.Info("Run archived",
		zap.String("run_id", runID),
		zap.String("bucket", s.bucket),
		zap.String("prefix", Prefix(runID)),
	)
	return nil
}

// List returns the archived objects of a run.
func (s *Service) List(ctx context.Context, runID string) ([]Object, error) {
	var objects []Object
	for obj := range s.client.ListObjects(ctx, s.bucket, minio.ListObjectsOptions{Prefix: Prefix(runID), Recursive: true}) {
		if obj.Err != nil {
			return nil, fmt.Errorf("failed to list archive: %w", obj.Err)
		}
		objects = append(objects, Object{
			Key:          obj.Key,
			Size:         obj.Size,
			LastModified: obj.LastModified.UTC().Format("2006-01-02T15:04:05Z"),
		})
	}
	return objects, nil
}

func (s *Service) ensureBucket(ctx context.Context) error {
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

func (s *Service) put(ctx context.Context, key string, data []byte, contentType string) error {
	_, err := s.client.PutObject(ctx, s.bucket, key, bytes.NewReader(data), int64(len(data)), minio.PutObjectOptions{
		ContentType: contentType,
	})
	if err != nil {
		return fmt.Errorf("failed to upload %s: %w", key, err)
	}
	return nil
}
