package cmd

import (
	"os"
	"path/filepath"
	"testing"
)

func TestCheckExist(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "present.txt")
	if err := os.WriteFile(path, []byte("x"), 0644); err != nil {
		t.Fatal(err)
	}
	if !checkExist("", path) {
		t.Error("checkExist should report true for an existing file")
	}
	if checkExist("", filepath.Join(dir, "missing.txt")) {
		t.Error("checkExist should report false for a missing file")
	}
	if checkExist("", "") {
		t.Error("checkExist should report false for an empty filename")
	}
}

func TestCheckCreate(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "sub", "new.txt")
	if !checkCreate("--output", path) {
		t.Error("checkCreate should report true when the file can be created")
	}
	if _, err := os.Stat(path); err == nil {
		t.Error("checkCreate should remove the probe file it created")
	}
}

func TestTimedRunAlwaysRunsTheWork(t *testing.T) {
	var ran bool
	timedRun(false, "", "phase", 1, func() { ran = true })
	if !ran {
		t.Error("timedRun did not invoke the work function")
	}

	ran = false
	timedRun(true, "", "phase", 1, func() { ran = true })
	if !ran {
		t.Error("timedRun with timed=true did not invoke the work function")
	}
}
