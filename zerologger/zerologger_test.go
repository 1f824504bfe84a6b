package zerologger

import (
	"bufio"
	"bytes"
	"errors"
	"os"
	"testing"

	json "github.com/goccy/go-json"
	"github.com/iif-sadaf/simplelogger"
	"github.com/rs/zerolog"
)

func TestMain(m *testing.M) {
	zerolog.SetGlobalLevel(zerolog.TraceLevel)
	os.Exit(m.Run())
}

type record struct {
	Level   string `json:"level"`
	Message string `json:"message"`
}

func decode(t *testing.T, buf *bytes.Buffer) []record {
	t.Helper()

	var out []record
	sc := bufio.NewScanner(buf)
	for sc.Scan() {
		var r record
		if err := json.Unmarshal(sc.Bytes(), &r); err != nil {
			t.Fatalf("could not decode line %q: %v", sc.Text(), err)
		}
		out = append(out, r)
	}
	return out
}

func TestNew(t *testing.T) {
	t.Parallel()

	zl := zerolog.Nop()

	tt := []struct {
		name    string
		cfg     Config
		wantErr error
	}{
		{name: "valid", cfg: Config{Logger: &zl, Level: simplelogger.LevelDebug}},
		{name: "nil logger", cfg: Config{}, wantErr: ErrNilLogger},
		{name: "invalid level", cfg: Config{Logger: &zl, Level: simplelogger.Level(7)}, wantErr: simplelogger.ErrInvalidLevel},
	}

	for _, tc := range tt {
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			l, err := New(tc.cfg)
			if !errors.Is(err, tc.wantErr) {
				t.Fatalf("error mismatch: want %v, got %v", tc.wantErr, err)
			}
			if err == nil && l.LogLevel() != tc.cfg.Level {
				t.Fatalf("level mismatch: want %v, got %v", tc.cfg.Level, l.LogLevel())
			}
		})
	}
}

func TestLogThreshold(t *testing.T) {
	t.Parallel()

	tt := []struct {
		name      string
		threshold simplelogger.Level
		want      []record
	}{
		{
			name:      "info",
			threshold: simplelogger.LevelInfo,
			want:      []record{{"info", "a"}},
		},
		{
			name:      "debug",
			threshold: simplelogger.LevelDebug,
			want:      []record{{"info", "a"}, {"debug", "b"}},
		},
		{
			name:      "trace",
			threshold: simplelogger.LevelTrace,
			want:      []record{{"info", "a"}, {"debug", "b"}, {"trace", "c"}},
		},
	}

	for _, tc := range tt {
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			var buf bytes.Buffer
			zl := zerolog.New(&buf).Level(zerolog.TraceLevel)

			l, err := New(Config{Logger: &zl, Level: tc.threshold})
			if err != nil {
				t.Fatalf("New returned error: %v", err)
			}

			simplelogger.Info(l, "a")
			simplelogger.Debug(l, "b")
			simplelogger.Trace(l, "c")

			got := decode(t, &buf)
			if len(got) != len(tc.want) {
				t.Fatalf("record count mismatch: want %d, got %d", len(tc.want), len(got))
			}
			for i := range got {
				if got[i] != tc.want[i] {
					t.Fatalf("record %d mismatch: want %+v, got %+v", i, tc.want[i], got[i])
				}
			}
		})
	}
}

func TestIsActive(t *testing.T) {
	t.Parallel()

	tt := []struct {
		name  string
		level zerolog.Level
		want  bool
	}{
		{name: "trace", level: zerolog.TraceLevel, want: true},
		{name: "info", level: zerolog.InfoLevel, want: true},
		{name: "warn", level: zerolog.WarnLevel, want: false},
		{name: "disabled", level: zerolog.Disabled, want: false},
	}

	for _, tc := range tt {
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			zl := zerolog.New(&bytes.Buffer{}).Level(tc.level)
			l, err := New(Config{Logger: &zl})
			if err != nil {
				t.Fatalf("New returned error: %v", err)
			}

			if got := simplelogger.IsActive(l); got != tc.want {
				t.Fatalf("IsActive mismatch: want %v, got %v", tc.want, got)
			}
		})
	}
}

func TestSetLogLevelIgnoresInvalid(t *testing.T) {
	t.Parallel()

	zl := zerolog.Nop()
	l, err := New(Config{Logger: &zl, Level: simplelogger.LevelDebug})
	if err != nil {
		t.Fatalf("New returned error: %v", err)
	}

	l.SetLogLevel(simplelogger.Level(3))
	if got := l.LogLevel(); got != simplelogger.LevelDebug {
		t.Fatalf("level mismatch: want %v, got %v", simplelogger.LevelDebug, got)
	}
}
