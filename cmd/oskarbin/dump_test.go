package main

import (
	"context"
	"encoding/binary"
	"io"
	"os"
	"path/filepath"
	"strings"
	"testing"

	json "github.com/goccy/go-json"
)

// writeDumpFixture lays out a v2 container with two plain int records.
func writeDumpFixture(t *testing.T) string {
	t.Helper()

	buf := make([]byte, 64)
	copy(buf, "OSKARBIN\x00")
	buf[9] = 2
	buf[10] = 1
	buf[11], buf[12], buf[13], buf[14], buf[15] = 8, 4, 8, 4, 8

	for i, v := range []uint32{7, 9} {
		tag := make([]byte, 20)
		tag[0], tag[1], tag[2] = 'T', 'B', 'G'
		tag[5] = 0x02 // int
		tag[6] = uint8(i + 1)
		tag[7] = 1
		binary.LittleEndian.PutUint64(tag[12:20], 4)
		buf = append(buf, tag...)
		buf = binary.LittleEndian.AppendUint32(buf, v)
	}

	path := filepath.Join(t.TempDir(), "pattern.bin")
	if err := os.WriteFile(path, buf, 0o644); err != nil {
		t.Fatalf("write fixture: %v", err)
	}
	return path
}

// runDump executes the dump command with stdout captured. Not parallel:
// the command writes to the process-wide stdout and shared flag vars.
func runDump(t *testing.T, args ...string) string {
	t.Helper()

	old := os.Stdout
	r, w, err := os.Pipe()
	if err != nil {
		t.Fatalf("pipe: %v", err)
	}
	os.Stdout = w

	runErr := dumpCmd().Run(context.Background(), append([]string{"dump"}, args...))
	_ = w.Close()
	os.Stdout = old

	out, readErr := io.ReadAll(r)
	if readErr != nil {
		t.Fatalf("read captured output: %v", readErr)
	}
	if runErr != nil {
		t.Fatalf("dump failed: %v", runErr)
	}
	return string(out)
}

func TestDumpJSONEmitsAllRecords(t *testing.T) {
	path := writeDumpFixture(t)

	out := runDump(t, "--file", path, "--json")
	lines := strings.Split(strings.TrimSpace(out), "\n")
	if len(lines) != 2 {
		t.Fatalf("expected 2 records, got %d: %q", len(lines), out)
	}

	var rec dumpRecord
	if err := json.Unmarshal([]byte(lines[0]), &rec); err != nil {
		t.Fatalf("decode first record: %v", err)
	}
	if rec.Group != 1 || rec.Type != "int" {
		t.Fatalf("unexpected first record: %+v", rec)
	}
}

func TestDumpHonorsLimit(t *testing.T) {
	path := writeDumpFixture(t)

	out := runDump(t, "--file", path, "--json", "--limit", "1")
	lines := strings.Split(strings.TrimSpace(out), "\n")
	if len(lines) != 1 {
		t.Fatalf("expected 1 record with --limit 1, got %d: %q", len(lines), out)
	}

	var rec dumpRecord
	if err := json.Unmarshal([]byte(lines[0]), &rec); err != nil {
		t.Fatalf("decode record: %v", err)
	}
	if rec.Group != 1 {
		t.Fatalf("limit kept the wrong record: %+v", rec)
	}
}
