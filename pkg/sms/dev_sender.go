package sms

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"time"
)

// DevSender implements SMSSender for local development.
// It saves messages as JSON files to a specified directory instead of
// calling a gateway.
type DevSender struct {
	dir string
}

// NewDevSender creates a development SMS sender that saves messages to disk.
// The directory will be created if it doesn't exist.
func NewDevSender(dir string) *DevSender {
	return &DevSender{dir: dir}
}

type smsRecord struct {
	Timestamp string `json:"timestamp"`
	To        string `json:"to"`
	Message   string `json:"message"`
}

// SendSMS saves the message as a JSON file in the configured directory.
func (d *DevSender) SendSMS(ctx context.Context, params SendSMSParams) error {
	if err := params.Validate(); err != nil {
		return err
	}

	if err := os.MkdirAll(d.dir, 0755); err != nil {
		return fmt.Errorf("%w: failed to create directory: %v", ErrFailedToSendSMS, err)
	}

	now := time.Now()
	record := smsRecord{
		Timestamp: now.Format(time.RFC3339),
		To:        params.To,
		Message:   params.Message,
	}

	data, err := json.MarshalIndent(record, "", "  ")
	if err != nil {
		return fmt.Errorf("%w: failed to marshal message: %v", ErrFailedToSendSMS, err)
	}

	path := filepath.Join(d.dir, fmt.Sprintf("%s_%s.json", now.Format("2006_01_02_150405.000"), params.To))
	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("%w: failed to write message file: %v", ErrFailedToSendSMS, err)
	}
	return nil
}
