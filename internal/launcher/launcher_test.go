package launcher

import (
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/vovakirdan/heartjump/internal/config"
)

func envOf(vars map[string]string) func(string) string {
	return func(key string) string { return vars[key] }
}

func TestHeadless(t *testing.T) {
	tests := []struct {
		name string
		goos string
		env  map[string]string
		want bool
	}{
		{"windows", "windows", nil, false},
		{"darwin", "darwin", nil, false},
		{"linux without display", "linux", nil, true},
		{"linux with x11", "linux", map[string]string{"DISPLAY": ":0"}, false},
		{"linux with wayland", "linux", map[string]string{"WAYLAND_DISPLAY": "wayland-0"}, false},
		{"freebsd without display", "freebsd", nil, true},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if got := Headless(tc.goos, envOf(tc.env)); got != tc.want {
				t.Errorf("Headless() = %v, expected %v", got, tc.want)
			}
		})
	}
}

type fakeStarter struct {
	name  string
	args  []string
	calls int
	err   error
}

func (f *fakeStarter) start(name string, args ...string) (int, error) {
	f.calls++
	f.name = name
	f.args = args
	if f.err != nil {
		return 0, f.err
	}
	return 4242, nil
}

func newTestLauncher(env map[string]string, starter *fakeStarter) *Launcher {
	l := New(config.DefaultLauncherConfig(), nil)
	l.goos = "linux"
	l.getenv = envOf(env)
	l.executable = func() (string, error) { return "/usr/local/bin/heartjump", nil }
	l.start = starter.start
	return l
}

func TestLaunchHeadless(t *testing.T) {
	starter := &fakeStarter{}
	l := newTestLauncher(nil, starter)

	out, err := l.Launch(context.Background())
	if err != nil {
		t.Fatalf("Launch() failed: %v", err)
	}
	if out.Launched {
		t.Error("headless host should not launch")
	}
	if starter.calls != 0 {
		t.Error("no process should be started")
	}
	if out.Notice.DownloadURL != config.DefaultLauncherConfig().DownloadURL {
		t.Errorf("download url = %q", out.Notice.DownloadURL)
	}

	text := out.Notice.String()
	for _, want := range []string{"headless", out.Notice.DownloadURL, "go run ./cmd/heartjump window"} {
		if !strings.Contains(text, want) {
			t.Errorf("notice missing %q:\n%s", want, text)
		}
	}
}

func TestLaunchStartsWindow(t *testing.T) {
	starter := &fakeStarter{}
	l := newTestLauncher(map[string]string{"DISPLAY": ":0"}, starter).WithArgs("--fps", "30")

	out, err := l.Launch(context.Background())
	if err != nil {
		t.Fatalf("Launch() failed: %v", err)
	}
	if !out.Launched || out.PID != 4242 {
		t.Errorf("outcome = %+v", out)
	}
	if starter.name != "/usr/local/bin/heartjump" {
		t.Errorf("started %q", starter.name)
	}
	if strings.Join(starter.args, " ") != "window --fps 30" {
		t.Errorf("args = %v", starter.args)
	}
}

func TestLaunchStartFailure(t *testing.T) {
	starter := &fakeStarter{err: errors.New("exec format error")}
	l := newTestLauncher(map[string]string{"DISPLAY": ":0"}, starter)

	out, err := l.Launch(context.Background())
	if err == nil {
		t.Fatal("expected start error")
	}
	if !strings.Contains(err.Error(), "failed to start game") {
		t.Errorf("error = %v", err)
	}
	if out.Launched {
		t.Error("failed start should not report launched")
	}
	if starter.calls != 1 {
		t.Errorf("start called %d times, expected exactly 1", starter.calls)
	}
}

func TestLaunchExecutableError(t *testing.T) {
	starter := &fakeStarter{}
	l := newTestLauncher(map[string]string{"DISPLAY": ":0"}, starter)
	l.executable = func() (string, error) { return "", errors.New("no /proc") }

	if _, err := l.Launch(context.Background()); err == nil {
		t.Error("expected error when the executable cannot be found")
	}
	if starter.calls != 0 {
		t.Error("nothing should start without an executable")
	}
}

func TestLaunchCancelled(t *testing.T) {
	starter := &fakeStarter{}
	l := newTestLauncher(map[string]string{"DISPLAY": ":0"}, starter)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	if _, err := l.Launch(ctx); !errors.Is(err, context.Canceled) {
		t.Errorf("Launch() = %v, expected context.Canceled", err)
	}
	if starter.calls != 0 {
		t.Error("cancelled launch should not start a process")
	}
}
