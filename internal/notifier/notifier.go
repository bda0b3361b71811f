// Package notifier delivers desktop notifications through the dayflow tray
// app. The tray app advertises itself with a lockfile of the form
// "port|pid|secret" and accepts JSON posts on localhost.
package notifier

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/mitchellh/go-ps"

	"github.com/julianstephens/dayflow/internal/constants"
)

var (
	userConfigDirFunc = os.UserConfigDir
	findProcessFunc   = ps.FindProcess
)

var ErrTrayNotRunning = errors.New(constants.TrayProcessName + " is not running")

// Payload is the body posted to the tray app.
type Payload struct {
	Text       string `json:"text"`
	DurationMs uint32 `json:"duration_ms"`
	Sound      string `json:"sound,omitempty"`
	Volume     int    `json:"volume,omitempty"` // 0-100
	Stop       bool   `json:"stop,omitempty"`
}

type Notifier struct {
	client *http.Client
}

func New() *Notifier {
	return &Notifier{client: &http.Client{Timeout: constants.NotifyTimeout}}
}

// Notify shows text for the default duration.
func (n *Notifier) Notify(ctx context.Context, text string) error {
	return n.Send(ctx, Payload{Text: text, DurationMs: constants.NotificationDurationMs})
}

// Send locates the tray process and posts p to it.
func (n *Notifier) Send(ctx context.Context, p Payload) error {
	dir, err := TrayConfigDir()
	if err != nil {
		return err
	}
	port, secret, err := findTray(filepath.Join(dir, constants.NotifierLockfileName))
	if err != nil {
		return err
	}
	return n.post(ctx, "http://127.0.0.1:"+port, secret, p)
}

// Available reports whether a live tray app has advertised itself.
func Available() bool {
	dir, err := TrayConfigDir()
	if err != nil {
		return false
	}
	_, _, err = findTray(filepath.Join(dir, constants.NotifierLockfileName))
	return err == nil
}

// TrayConfigDir returns the tray app's config directory, honouring a custom
// lockfile_dir in its settings.json.
func TrayConfigDir() (string, error) {
	configDir, err := userConfigDirFunc()
	if err != nil {
		return "", fmt.Errorf("failed to get user config dir: %w", err)
	}
	trayDir := filepath.Join(configDir, constants.TrayAppIdentifier)

	data, err := os.ReadFile(filepath.Join(trayDir, "settings.json"))
	if err != nil {
		return trayDir, nil
	}
	var store struct {
		Settings struct {
			LockfileDir *string `json:"lockfile_dir"`
		} `json:"settings"`
	}
	if json.Unmarshal(data, &store) == nil && store.Settings.LockfileDir != nil && *store.Settings.LockfileDir != "" {
		return *store.Settings.LockfileDir, nil
	}
	return trayDir, nil
}

// findTray parses the lockfile and checks that its pid belongs to the tray app.
func findTray(lockfilePath string) (port, secret string, err error) {
	content, err := os.ReadFile(lockfilePath)
	if err != nil {
		return "", "", ErrTrayNotRunning
	}

	parts := strings.Split(strings.TrimSpace(string(content)), "|")
	if len(parts) != 3 {
		return "", "", errors.New("lockfile is malformed")
	}
	port, pidStr, secret := strings.TrimSpace(parts[0]), parts[1], strings.TrimSpace(parts[2])

	portNum, err := strconv.Atoi(port)
	if err != nil {
		return "", "", errors.New("invalid port number in lockfile")
	}
	if portNum < 1 || portNum > 65535 {
		return "", "", fmt.Errorf("port number %d is outside valid range (1-65535)", portNum)
	}
	pid, err := strconv.Atoi(pidStr)
	if err != nil {
		return "", "", errors.New("invalid process ID in lockfile")
	}
	if secret == "" {
		return "", "", errors.New("secret in lockfile is empty")
	}

	process, err := findProcessFunc(pid)
	if err != nil || process == nil {
		return "", "", ErrTrayNotRunning
	}
	if !strings.HasPrefix(process.Executable(), constants.TrayProcessName) {
		return "", "", fmt.Errorf("process with PID %d is not %s (is %s)", pid, constants.TrayProcessName, process.Executable())
	}
	return port, secret, nil
}

func (n *Notifier) post(ctx context.Context, url, secret string, p Payload) error {
	body, err := json.Marshal(p)
	if err != nil {
		return err
	}
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewReader(body))
	if err != nil {
		return err
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set(constants.TraySecretHeader, secret)

	res, err := n.client.Do(req)
	if err != nil {
		return err
	}
	defer res.Body.Close()

	if res.StatusCode == http.StatusOK {
		return nil
	}
	msg, _ := io.ReadAll(io.LimitReader(res.Body, 1024))
	return fmt.Errorf("notification failed with status %d: %s", res.StatusCode, string(msg))
}
