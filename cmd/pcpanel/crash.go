package main

import (
	"fmt"
	"os"
	"path/filepath"
	"time"
)

const crashLogName = "error.log"

// writeCrashLog appends reason and stack to error.log in dir.
func writeCrashLog(dir string, reason any, stack []byte) (string, error) {
	path := filepath.Join(dir, crashLogName)
	f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
	if err != nil {
		return "", fmt.Errorf("failed to open crash log: %w", err)
	}
	defer f.Close()

	if _, err := fmt.Fprintf(f, "%s pcpanel %s: %v\n%s\n", time.Now().Format(time.RFC3339), appVersion(), reason, stack); err != nil {
		return "", fmt.Errorf("failed to write crash log: %w", err)
	}
	return path, nil
}
