package source

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestValidateFile(t *testing.T) {
	tmpDir := t.TempDir()

	emptyPDF := filepath.Join(tmpDir, "empty.pdf")
	if err := os.WriteFile(emptyPDF, nil, 0o600); err != nil {
		t.Fatalf("Failed to create empty file: %v", err)
	}

	notPDF := filepath.Join(tmpDir, "schedule.txt")
	if err := os.WriteFile(notPDF, []byte("not a pdf"), 0o600); err != nil {
		t.Fatalf("Failed to create text file: %v", err)
	}

	bogusPDF := filepath.Join(tmpDir, "bogus.pdf")
	if err := os.WriteFile(bogusPDF, []byte("this is not pdf content"), 0o600); err != nil {
		t.Fatalf("Failed to create bogus file: %v", err)
	}

	tests := []struct {
		name        string
		path        string
		maxFileSize int64
		wantErrPart string
	}{
		{
			name:        "empty path",
			path:        "",
			maxFileSize: 1024,
			wantErrPart: "input path cannot be empty",
		},
		{
			name:        "non-existent file",
			path:        filepath.Join(tmpDir, "missing.pdf"),
			maxFileSize: 1024,
			wantErrPart: "does not exist",
		},
		{
			name:        "directory instead of file",
			path:        tmpDir,
			maxFileSize: 1024,
			wantErrPart: "directory",
		},
		{
			name:        "wrong extension",
			path:        notPDF,
			maxFileSize: 1024,
			wantErrPart: "not a PDF",
		},
		{
			name:        "empty file",
			path:        emptyPDF,
			maxFileSize: 1024,
			wantErrPart: "empty",
		},
		{
			name:        "file exceeds size limit",
			path:        bogusPDF,
			maxFileSize: 4,
			wantErrPart: "too large",
		},
		{
			name:        "content is not PDF",
			path:        bogusPDF,
			maxFileSize: 1024,
			wantErrPart: "invalid PDF",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidateFile(tt.path, tt.maxFileSize)
			if err == nil {
				t.Fatalf("ValidateFile(%q) expected error containing %q, got nil", tt.path, tt.wantErrPart)
			}
			if !strings.Contains(err.Error(), tt.wantErrPart) {
				t.Errorf("ValidateFile(%q) error = %v, want it to contain %q", tt.path, err, tt.wantErrPart)
			}
		})
	}
}

func TestOpenRejectsInvalidInput(t *testing.T) {
	if _, err := Open("", 1024); err == nil {
		t.Error("Open(\"\") should fail validation")
	}

	if _, err := Open(filepath.Join(t.TempDir(), "missing.pdf"), 1024); err == nil {
		t.Error("Open() should fail for a missing file")
	}
}
