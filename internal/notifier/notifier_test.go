package notifier

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"strings"
	"testing"

	ps "github.com/mitchellh/go-ps"

	"github.com/julianstephens/dayflow/internal/constants"
)

type mockProcess struct {
	pid        int
	executable string
}

func (m *mockProcess) Pid() int           { return m.pid }
func (m *mockProcess) PPid() int          { return 0 }
func (m *mockProcess) Executable() string { return m.executable }

func stubConfigDir(t *testing.T) string {
	t.Helper()
	dir := t.TempDir()
	old := userConfigDirFunc
	userConfigDirFunc = func() (string, error) { return dir, nil }
	t.Cleanup(func() { userConfigDirFunc = old })
	return dir
}

func stubProcess(t *testing.T, executable string) {
	t.Helper()
	old := findProcessFunc
	findProcessFunc = func(pid int) (ps.Process, error) {
		if executable == "" {
			return nil, nil
		}
		return &mockProcess{pid: pid, executable: executable}, nil
	}
	t.Cleanup(func() { findProcessFunc = old })
}

func TestTrayConfigDir(t *testing.T) {
	base := stubConfigDir(t)

	want := filepath.Join(base, constants.TrayAppIdentifier)
	dir, err := TrayConfigDir()
	if err != nil || dir != want {
		t.Fatalf("default dir = %s, %v; want %s", dir, err, want)
	}

	if err := os.MkdirAll(want, 0755); err != nil {
		t.Fatal(err)
	}
	custom := "/custom/tray/dir"
	settings := `{"settings": {"lockfile_dir": "` + custom + `"}}`
	if err := os.WriteFile(filepath.Join(want, "settings.json"), []byte(settings), 0644); err != nil {
		t.Fatal(err)
	}
	dir, err = TrayConfigDir()
	if err != nil || dir != custom {
		t.Errorf("custom dir = %s, %v; want %s", dir, err, custom)
	}
}

func TestFindTray(t *testing.T) {
	lockfile := filepath.Join(t.TempDir(), constants.NotifierLockfileName)

	if _, _, err := findTray(lockfile); !errors.Is(err, ErrTrayNotRunning) {
		t.Errorf("missing lockfile: error = %v", err)
	}

	tests := []struct {
		name       string
		content    string
		executable string
		wantErr    string
	}{
		{"two parts", "8080|12345", "dayflow-tray", "malformed"},
		{"garbage", "invalid", "dayflow-tray", "malformed"},
		{"empty secret", "8080|12345|", "dayflow-tray", "secret"},
		{"empty port", "|12345|s3cret", "dayflow-tray", "port"},
		{"port out of range", "99999|12345|s3cret", "dayflow-tray", "range"},
		{"bad pid", "8080|abc|s3cret", "dayflow-tray", "process ID"},
		{"no process", "8080|12345|s3cret", "", "not running"},
		{"wrong executable", "8080|12345|s3cret", "other-app", "is not"},
		{"ok", "8080|12345|s3cret\n", "dayflow-tray", ""},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if err := os.WriteFile(lockfile, []byte(tt.content), 0600); err != nil {
				t.Fatal(err)
			}
			stubProcess(t, tt.executable)

			port, secret, err := findTray(lockfile)
			if tt.wantErr != "" {
				if err == nil || !strings.Contains(err.Error(), tt.wantErr) {
					t.Errorf("error = %v, want containing %q", err, tt.wantErr)
				}
				return
			}
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if port != "8080" || secret != "s3cret" {
				t.Errorf("got port=%s secret=%s", port, secret)
			}
		})
	}
}

func newTrayServer(t *testing.T, got *[]Payload) *httptest.Server {
	t.Helper()
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodPost {
			w.WriteHeader(http.StatusMethodNotAllowed)
			return
		}
		if r.Header.Get(constants.TraySecretHeader) != "test-secret" {
			w.WriteHeader(http.StatusUnauthorized)
			w.Write([]byte("Unauthorized"))
			return
		}
		var p Payload
		if err := json.NewDecoder(r.Body).Decode(&p); err != nil {
			w.WriteHeader(http.StatusBadRequest)
			return
		}
		if p.Text == "fail" {
			w.WriteHeader(http.StatusInternalServerError)
			return
		}
		*got = append(*got, p)
		w.WriteHeader(http.StatusOK)
	}))
	t.Cleanup(srv.Close)
	return srv
}

func TestPost(t *testing.T) {
	var got []Payload
	srv := newTrayServer(t, &got)
	n := New()
	ctx := context.Background()

	if err := n.post(ctx, srv.URL, "test-secret", Payload{Text: "hello"}); err != nil {
		t.Errorf("unexpected error: %v", err)
	}
	if err := n.post(ctx, srv.URL, "wrong", Payload{Text: "hello"}); err == nil {
		t.Error("expected error for wrong secret")
	}
	err := n.post(ctx, srv.URL, "test-secret", Payload{Text: "fail"})
	if err == nil || !strings.Contains(err.Error(), "500") {
		t.Errorf("expected status error, got %v", err)
	}
	if len(got) != 1 || got[0].Text != "hello" {
		t.Errorf("server received %+v", got)
	}
}

func TestSendThroughLockfile(t *testing.T) {
	var got []Payload
	srv := newTrayServer(t, &got)
	port := srv.URL[strings.LastIndex(srv.URL, ":")+1:]

	base := stubConfigDir(t)
	trayDir := filepath.Join(base, constants.TrayAppIdentifier)
	if err := os.MkdirAll(trayDir, 0755); err != nil {
		t.Fatal(err)
	}
	lock := port + "|4242|test-secret"
	if err := os.WriteFile(filepath.Join(trayDir, constants.NotifierLockfileName), []byte(lock), 0600); err != nil {
		t.Fatal(err)
	}
	stubProcess(t, "dayflow-tray")

	err := New().Send(context.Background(), Payload{Text: "Wake up", Sound: "forest", Volume: 10})
	if err != nil {
		t.Fatalf("Send failed: %v", err)
	}
	if len(got) != 1 || got[0].Sound != "forest" || got[0].Volume != 10 {
		t.Errorf("server received %+v", got)
	}

	if err := New().Notify(context.Background(), "plain"); err != nil {
		t.Fatalf("Notify failed: %v", err)
	}
	if got[1].DurationMs != constants.NotificationDurationMs {
		t.Errorf("DurationMs = %d", got[1].DurationMs)
	}
}
