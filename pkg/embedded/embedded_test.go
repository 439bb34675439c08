package embedded

import (
	"errors"
	"testing"
	"testing/fstest"
)

// resetForTest 恢复未初始化状态
func resetForTest(t *testing.T) {
	t.Helper()
	dataFS = nil
	initialized = false
	t.Cleanup(func() {
		dataFS = nil
		initialized = false
	})
}

func testFS() fstest.MapFS {
	return fstest.MapFS{
		"data/session.yaml": &fstest.MapFile{Data: []byte("maxLives: 5\n")},
	}
}

// TestNotInitialized 测试未初始化时访问资源
func TestNotInitialized(t *testing.T) {
	resetForTest(t)

	if _, err := ReadFile(DefaultSessionConfigPath); !errors.Is(err, ErrNotInitialized) {
		t.Errorf("ReadFile(): got %v, want ErrNotInitialized", err)
	}
}

// TestReadFile 测试路径规范化与前缀检查
func TestReadFile(t *testing.T) {
	resetForTest(t)
	Init(testFS())

	tests := []struct {
		name    string
		path    string
		want    string
		wantErr bool
	}{
		{"plain path", "data/session.yaml", "maxLives: 5\n", false},
		{"dot slash prefix", "./data/session.yaml", "maxLives: 5\n", false},
		{"unknown prefix", "assets/session.yaml", "", true},
		{"missing file", "data/missing.yaml", "", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			data, err := ReadFile(tt.path)
			if (err != nil) != tt.wantErr {
				t.Fatalf("ReadFile(%q) error = %v, wantErr %v", tt.path, err, tt.wantErr)
			}
			if string(data) != tt.want {
				t.Errorf("ReadFile(%q) = %q, want %q", tt.path, data, tt.want)
			}
		})
	}
}

// TestInitReplacesFS 测试重复 Init 使用新的文件系统
func TestInitReplacesFS(t *testing.T) {
	resetForTest(t)
	Init(testFS())
	Init(fstest.MapFS{
		"data/session.yaml": &fstest.MapFile{Data: []byte("maxLives: 1\n")},
	})

	data, err := ReadFile(DefaultSessionConfigPath)
	if err != nil {
		t.Fatalf("ReadFile() error: %v", err)
	}
	if string(data) != "maxLives: 1\n" {
		t.Errorf("ReadFile() = %q, want the second FS contents", data)
	}
}
