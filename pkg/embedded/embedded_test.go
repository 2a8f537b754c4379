package embedded

import (
	"errors"
	"io/fs"
	"testing"
	"testing/fstest"
)

func testFS() fstest.MapFS {
	return fstest.MapFS{
		"data/content.yaml": {Data: []byte("geometry:\n  title: X\n")},
	}
}

func TestIsInitialized(t *testing.T) {
	Init(nil)
	if IsInitialized() {
		t.Error("期望 Init 之前未初始化")
	}

	Init(testFS())
	defer Init(nil)
	if !IsInitialized() {
		t.Error("期望 Init 之后已初始化")
	}
}

func TestNotInitialized(t *testing.T) {
	Init(nil)

	if _, err := Open("data/content.yaml"); !errors.Is(err, ErrNotInitialized) {
		t.Errorf("Open: 期望 ErrNotInitialized，得到 %v", err)
	}
	if _, err := ReadFile("data/content.yaml"); !errors.Is(err, ErrNotInitialized) {
		t.Errorf("ReadFile: 期望 ErrNotInitialized，得到 %v", err)
	}
	if Exists("data/content.yaml") {
		t.Error("未初始化时 Exists 应返回 false")
	}
}

func TestReadFile(t *testing.T) {
	Init(testFS())
	defer Init(nil)

	tests := []struct {
		name     string
		path     string
		wantErr  bool
		notExist bool
	}{
		{name: "标准路径", path: "data/content.yaml"},
		{name: "带 ./ 前缀", path: "./data/content.yaml"},
		{name: "未知前缀", path: "assets/logo.png", wantErr: true},
		{name: "文件不存在", path: "data/missing.yaml", wantErr: true, notExist: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			data, err := ReadFile(tt.path)
			if tt.wantErr {
				if err == nil {
					t.Fatal("期望返回错误")
				}
				if tt.notExist && !errors.Is(err, fs.ErrNotExist) {
					t.Errorf("期望 fs.ErrNotExist，得到 %v", err)
				}
				return
			}
			if err != nil {
				t.Fatalf("意外错误: %v", err)
			}
			if len(data) == 0 {
				t.Error("期望读到内容")
			}
		})
	}
}

func TestExists(t *testing.T) {
	Init(testFS())
	defer Init(nil)

	if !Exists("data/content.yaml") {
		t.Error("期望 data/content.yaml 存在")
	}
	if Exists("data/nope.yaml") {
		t.Error("期望 data/nope.yaml 不存在")
	}
}
