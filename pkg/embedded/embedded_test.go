package embedded

import (
	"errors"
	"os"
	"path/filepath"
	"testing"
	"testing/fstest"
)

// reset 重置包状态，避免测试之间互相影响
func reset(t *testing.T) {
	t.Helper()
	mu.Lock()
	dataFS = nil
	overrideFS = nil
	overrideDir = ""
	initialized = false
	mu.Unlock()
	t.Cleanup(func() {
		mu.Lock()
		initialized = false
		overrideFS = nil
		overrideDir = ""
		mu.Unlock()
	})
}

// TestIsInitialized 测试初始化状态检测
func TestIsInitialized(t *testing.T) {
	reset(t)

	if IsInitialized() {
		t.Error("Expected IsInitialized() to return false before Init()")
	}

	Init(fstest.MapFS{})

	if !IsInitialized() {
		t.Error("Expected IsInitialized() to return true after Init()")
	}
}

// TestReadFileNotInitialized 测试未初始化时调用 ReadFile
func TestReadFileNotInitialized(t *testing.T) {
	reset(t)

	_, err := ReadFile("data/catalog.yaml")
	if !errors.Is(err, ErrNotInitialized) {
		t.Errorf("Expected ErrNotInitialized, got %v", err)
	}
}

// TestReadFile 测试路径标准化和前缀校验
func TestReadFile(t *testing.T) {
	reset(t)
	Init(fstest.MapFS{
		"data/catalog.yaml": {Data: []byte("products: []")},
	})

	tests := []struct {
		name    string
		path    string
		wantErr bool
	}{
		{"标准路径", "data/catalog.yaml", false},
		{"带 ./ 前缀", "./data/catalog.yaml", false},
		{"未知前缀", "assets/chair.png", true},
		{"文件不存在", "data/missing.yaml", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			data, err := ReadFile(tt.path)
			if (err != nil) != tt.wantErr {
				t.Fatalf("ReadFile(%q) error = %v, wantErr %v", tt.path, err, tt.wantErr)
			}
			if !tt.wantErr && string(data) != "products: []" {
				t.Errorf("ReadFile(%q) = %q", tt.path, data)
			}
		})
	}

	if !Exists("data/catalog.yaml") || Exists("data/missing.yaml") {
		t.Error("Exists() result mismatch")
	}
}

// TestOverrideDir 磁盘覆盖目录中的文件优先于内嵌文件
func TestOverrideDir(t *testing.T) {
	reset(t)
	Init(fstest.MapFS{
		"data/catalog.yaml": {Data: []byte("embedded")},
		"data/other.yaml":   {Data: []byte("embedded-other")},
	})

	dir := t.TempDir()
	if err := os.MkdirAll(filepath.Join(dir, "data"), 0o755); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(filepath.Join(dir, "data", "catalog.yaml"), []byte("disk"), 0o644); err != nil {
		t.Fatal(err)
	}

	SetOverrideDir(dir)
	if OverrideDir() != dir {
		t.Errorf("OverrideDir() = %q, want %q", OverrideDir(), dir)
	}

	if data, _ := ReadFile("data/catalog.yaml"); string(data) != "disk" {
		t.Errorf("覆盖文件应优先, got %q", data)
	}
	// 覆盖目录中不存在的文件回退到内嵌版本
	if data, _ := ReadFile("data/other.yaml"); string(data) != "embedded-other" {
		t.Errorf("应回退到内嵌文件, got %q", data)
	}

	SetOverrideDir("")
	if data, _ := ReadFile("data/catalog.yaml"); string(data) != "embedded" {
		t.Errorf("取消覆盖后应读取内嵌文件, got %q", data)
	}
}
