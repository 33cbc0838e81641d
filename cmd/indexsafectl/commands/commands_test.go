package commands

import (
	"bytes"
	"context"
	"encoding/json"
	"net"
	"os"
	"path/filepath"
	"slices"
	"strings"
	"testing"

	"github.com/xaionaro-go/indexsafe/pkg/indexsafe"
	"github.com/xaionaro-go/indexsafe/pkg/indexsafeserver/grpc/go/indexsafe_grpc"
)

func run(t *testing.T, args ...string) (string, int) {
	t.Helper()

	exitCode := 0
	oldExit := exit
	exit = func(code int) { exitCode = code }
	t.Cleanup(func() { exit = oldExit })

	for _, name := range []string{"file", "sequence"} {
		if err := Get.Flags().Set(name, ""); err != nil {
			t.Fatalf("unable to reset flag %q: %v", name, err)
		}
	}
	if err := Root.PersistentFlags().Set("format", "plaintext"); err != nil {
		t.Fatalf("unable to reset the format: %v", err)
	}

	var out bytes.Buffer
	Root.SetOut(&out)
	Root.SetArgs(args)
	if err := Root.ExecuteContext(context.Background()); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	return out.String(), exitCode
}

func TestGet(t *testing.T) {
	for _, tc := range []struct {
		name     string
		args     []string
		output   string
		exitCode int
	}{
		{name: "first", args: []string{"get", "0", "10", "20", "30"}, output: "10\n"},
		{name: "last", args: []string{"get", "2", "10", "20", "30"}, output: "30\n"},
		{
			name:     "pastEnd",
			args:     []string{"get", "3", "10", "20", "30"},
			output:   "index_too_high: index 3 is out of range (length 3)\n",
			exitCode: ExitCodeOutOfRange,
		},
		{
			name:     "negative",
			args:     []string{"get", "--", "-1", "10", "20", "30"},
			output:   "index_too_low: index -1 is negative (length 3)\n",
			exitCode: ExitCodeOutOfRange,
		},
		{
			name:     "empty",
			args:     []string{"get", "0"},
			output:   "index_too_high: index 0 is out of range (length 0)\n",
			exitCode: ExitCodeOutOfRange,
		},
	} {
		t.Run(tc.name, func(t *testing.T) {
			output, exitCode := run(t, tc.args...)
			if output != tc.output {
				t.Fatalf("expected %q, got %q", tc.output, output)
			}
			if exitCode != tc.exitCode {
				t.Fatalf("expected exit code %d, got %d", tc.exitCode, exitCode)
			}
		})
	}
}

func TestGetJSON(t *testing.T) {
	output, exitCode := run(t, "--format", "json", "get", "3", "10", "20", "30")
	if exitCode != ExitCodeOutOfRange {
		t.Fatalf("expected exit code %d, got %d", ExitCodeOutOfRange, exitCode)
	}

	var reply indexsafe_grpc.GetReply
	if err := json.Unmarshal([]byte(output), &reply); err != nil {
		t.Fatalf("unable to parse %q: %v", output, err)
	}
	if reply.Outcome != indexsafe_grpc.OutcomeIndexTooHigh || reply.Index != 3 || reply.Length != 3 {
		t.Fatalf("unexpected reply: %#v", reply)
	}
}

func TestGetFromFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "seq.yaml")
	err := os.WriteFile(path, []byte("sequences:\n  small: [10, 20, 30]\n"), 0o644)
	if err != nil {
		t.Fatalf("unable to write the file: %v", err)
	}

	output, exitCode := run(t, "get", "1", "--file", path, "--sequence", "small")
	if exitCode != 0 || output != "20\n" {
		t.Fatalf("unexpected result: %q (exit code %d)", output, exitCode)
	}
}

func TestGetListener(t *testing.T) {
	ctx := context.Background()

	t.Run("tcp", func(t *testing.T) {
		l, err := getListener(ctx, "tcp:127.0.0.1:0")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		defer l.Close()
		if !strings.HasPrefix(l.Addr().String(), "127.0.0.1:") {
			t.Fatalf("unexpected address %s", l.Addr())
		}
	})

	t.Run("unixStale", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "s.sock")
		stale, err := net.Listen("unix", path)
		if err != nil {
			t.Fatalf("unable to create a stale socket: %v", err)
		}
		stale.(*net.UnixListener).SetUnlinkOnClose(false)
		stale.Close()
		if _, err := os.Lstat(path); err != nil {
			t.Fatalf("the stale socket is gone: %v", err)
		}

		l, err := getListener(ctx, "unix:"+path)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		defer l.Close()
		if l.Addr().Network() != "unix" {
			t.Fatalf("unexpected network %s", l.Addr().Network())
		}
	})

	t.Run("unixRegularFile", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "data")
		if err := os.WriteFile(path, []byte("keep me"), 0o600); err != nil {
			t.Fatalf("unable to write the file: %v", err)
		}
		l, err := getListener(ctx, "unix:"+path)
		if err == nil {
			l.Close()
			t.Fatalf("expected an error for a regular file")
		}
		content, err := os.ReadFile(path)
		if err != nil {
			t.Fatalf("the file is gone: %v", err)
		}
		if string(content) != "keep me" {
			t.Fatalf("the file was modified: %q", content)
		}
	})

	t.Run("tls", func(t *testing.T) {
		l, err := getListener(ctx, "tcp+ssl:127.0.0.1:0")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		l.Close()
	})
}

func TestResolveSequence(t *testing.T) {
	path := filepath.Join(t.TempDir(), "seq.yaml")
	err := os.WriteFile(path, []byte("sequences:\n  small: [10, 20, 30]\n"), 0o644)
	if err != nil {
		t.Fatalf("unable to write the file: %v", err)
	}

	for _, tc := range []struct {
		name     string
		file     string
		sequence string
		values   []string
		expected indexsafe.Slice[int64]
		isError  bool
	}{
		{name: "inline", values: []string{"1", "-2"}, expected: indexsafe.Slice[int64]{1, -2}},
		{name: "inlineEmpty", expected: indexsafe.Slice[int64]{}},
		{name: "file", file: path, sequence: "small", expected: indexsafe.Slice[int64]{10, 20, 30}},
		{name: "fileWithValues", file: path, sequence: "small", values: []string{"1"}, isError: true},
		{name: "sequenceWithoutFile", sequence: "small", isError: true},
		{name: "sequenceWithoutFileWithValues", sequence: "small", values: []string{"1"}, isError: true},
		{name: "unknownSequence", file: path, sequence: "other", isError: true},
		{name: "badValue", values: []string{"x"}, isError: true},
	} {
		t.Run(tc.name, func(t *testing.T) {
			t.Cleanup(func() {
				_ = Get.Flags().Set("file", "")
				_ = Get.Flags().Set("sequence", "")
			})
			if err := Get.Flags().Set("file", tc.file); err != nil {
				t.Fatal(err)
			}
			if err := Get.Flags().Set("sequence", tc.sequence); err != nil {
				t.Fatal(err)
			}

			seq, err := resolveSequence(Get, tc.values)
			if tc.isError {
				if err == nil {
					t.Fatalf("expected an error, got %v", seq)
				}
				return
			}
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if !slices.Equal(seq, tc.expected) {
				t.Fatalf("expected %v, got %v", tc.expected, seq)
			}
		})
	}
}
