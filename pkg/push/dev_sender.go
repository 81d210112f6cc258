package push

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"time"
)

// DevSender implements PushSender for local development.
// It saves notifications as JSON files instead of calling a gateway.
type DevSender struct {
	dir string
}

// NewDevSender creates a development push sender that saves notifications
// to disk. The directory will be created if it doesn't exist.
func NewDevSender(dir string) *DevSender {
	return &DevSender{dir: dir}
}

type pushRecord struct {
	Timestamp string            `json:"timestamp"`
	Token     string            `json:"device_token"`
	Title     string            `json:"title"`
	Body      string            `json:"body"`
	Data      map[string]string `json:"data,omitempty"`
}

// SendPush saves the notification as a JSON file in the configured directory.
func (d *DevSender) SendPush(ctx context.Context, params SendPushParams) error {
	if err := params.Validate(); err != nil {
		return err
	}

	if err := os.MkdirAll(d.dir, 0755); err != nil {
		return fmt.Errorf("%w: failed to create directory: %v", ErrFailedToSendPush, err)
	}

	now := time.Now()
	record := pushRecord{
		Timestamp: now.Format(time.RFC3339),
		Token:     params.DeviceToken,
		Title:     params.Title,
		Body:      params.Body,
		Data:      params.Data,
	}

	data, err := json.MarshalIndent(record, "", "  ")
	if err != nil {
		return fmt.Errorf("%w: failed to marshal notification: %v", ErrFailedToSendPush, err)
	}

	path := filepath.Join(d.dir, now.Format("2006_01_02_150405.000")+".json")
	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("%w: failed to write notification file: %v", ErrFailedToSendPush, err)
	}
	return nil
}
