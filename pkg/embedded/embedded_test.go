package embedded

import (
	"os"
	"path/filepath"
	"testing"
	"testing/fstest"
)

func testFS() (fstest.MapFS, fstest.MapFS) {
	assets := fstest.MapFS{
		"assets/audio/song1.au": &fstest.MapFile{Data: []byte("au-bytes")},
	}
	data := fstest.MapFS{
		"data/greeting.yaml": &fstest.MapFile{Data: []byte("name: achai\n")},
	}
	return assets, data
}

// TestIsInitialized 测试初始化状态检测
func TestIsInitialized(t *testing.T) {
	initialized = false

	if IsInitialized() {
		t.Error("Expected IsInitialized() to return false before Init()")
	}

	assets, data := testFS()
	Init(assets, data)

	if !IsInitialized() {
		t.Error("Expected IsInitialized() to return true after Init()")
	}

	initialized = false
}

// TestReadFileNotInitialized 测试未初始化时调用 ReadFile
func TestReadFileNotInitialized(t *testing.T) {
	initialized = false

	_, err := ReadFile("assets/test.txt")
	if err == nil {
		t.Fatal("Expected error when calling ReadFile() before Init()")
	}
	if err.Error() != "embedded package not initialized, call Init() first" {
		t.Errorf("Unexpected error message: %v", err)
	}

	if Exists("assets/test.png") {
		t.Error("Expected Exists() to return false before Init()")
	}
}

// TestReadFileRouting 测试按前缀选择文件系统
func TestReadFileRouting(t *testing.T) {
	assets, data := testFS()
	Init(assets, data)
	defer func() { initialized = false }()

	tests := []struct {
		path    string
		want    string
		wantErr bool
	}{
		{path: "assets/audio/song1.au", want: "au-bytes"},
		{path: "./data/greeting.yaml", want: "name: achai\n"},
		{path: "data/missing.yaml", wantErr: true},
		{path: "other/file.txt", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.path, func(t *testing.T) {
			got, err := ReadFile(tt.path)
			if tt.wantErr {
				if err == nil {
					t.Errorf("expected error for %s", tt.path)
				}
				return
			}
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if string(got) != tt.want {
				t.Errorf("ReadFile(%s) = %q, want %q", tt.path, got, tt.want)
			}
		})
	}

	if !Exists("data/greeting.yaml") {
		t.Error("Expected data/greeting.yaml to exist")
	}
}

// TestReadFileOrDisk 测试嵌入资源缺失时回退到磁盘
func TestReadFileOrDisk(t *testing.T) {
	assets, data := testFS()
	Init(assets, data)
	defer func() { initialized = false }()

	got, err := ReadFileOrDisk("data/greeting.yaml")
	if err != nil || string(got) != "name: achai\n" {
		t.Errorf("embedded read: got %q, err %v", got, err)
	}

	diskPath := filepath.Join(t.TempDir(), "custom.yaml")
	if err := os.WriteFile(diskPath, []byte("name: mina\n"), 0o644); err != nil {
		t.Fatalf("failed to write temp file: %v", err)
	}
	got, err = ReadFileOrDisk(diskPath)
	if err != nil || string(got) != "name: mina\n" {
		t.Errorf("disk read: got %q, err %v", got, err)
	}

	if _, err := ReadFileOrDisk(filepath.Join(t.TempDir(), "nope.yaml")); err == nil {
		t.Error("expected error for missing file")
	}
}

// TestReadFileNilFS 只提供了部分文件系统时不应 panic
func TestReadFileNilFS(t *testing.T) {
	assets, _ := testFS()
	Init(assets, nil)
	defer func() { initialized = false }()

	if _, err := ReadFile("data/greeting.yaml"); err == nil {
		t.Error("Expected error for a missing data file system")
	}
	if _, err := ReadFile("assets/audio/song1.au"); err != nil {
		t.Errorf("assets should still be readable: %v", err)
	}
}
