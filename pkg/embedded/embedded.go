// Package embedded 提供嵌入资源的统一访问接口
//
// 由于 Go embed 指令只能嵌入当前包目录及其子目录的文件，
// embed.FS 变量必须声明在项目根目录（embed.go）或 mobile 包中。
// 本包提供包装函数，让其他包可以访问嵌入的资源。
//
// 开发模式下可以通过 SetOverrideDir 指定磁盘目录，
// 该目录中存在的文件优先于内嵌版本（用于配置热重载）。
//
// 使用前必须调用 Init() 初始化。
package embedded

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"
	"sync"
)

// ErrNotInitialized 在 Init() 之前访问资源时返回
var ErrNotInitialized = errors.New("embedded package not initialized, call Init() first")

var (
	mu          sync.RWMutex
	dataFS      fs.FS
	overrideFS  fs.FS
	overrideDir string
	initialized bool
)

// Init 初始化内嵌文件系统
// 必须在 main() 开始时、任何资源加载之前调用
func Init(data fs.FS) {
	mu.Lock()
	defer mu.Unlock()
	dataFS = data
	initialized = true
}

// IsInitialized 返回 embedded 包是否已初始化
func IsInitialized() bool {
	mu.RLock()
	defer mu.RUnlock()
	return initialized
}

// SetOverrideDir 设置磁盘覆盖目录（该目录对应项目根，包含 data/）
// 传入空字符串取消覆盖
func SetOverrideDir(dir string) {
	mu.Lock()
	defer mu.Unlock()
	overrideDir = dir
	if dir == "" {
		overrideFS = nil
		return
	}
	overrideFS = os.DirFS(dir)
}

// OverrideDir 返回当前磁盘覆盖目录
func OverrideDir() string {
	mu.RLock()
	defer mu.RUnlock()
	return overrideDir
}

// normalize 标准化路径并校验前缀
func normalize(path string) (string, error) {
	// 标准化路径分隔符为正斜杠（fs.FS 使用正斜杠）
	path = filepath.ToSlash(path)

	// 移除可能的 "./" 前缀
	path = strings.TrimPrefix(path, "./")

	if !strings.HasPrefix(path, "data/") {
		return "", fmt.Errorf("unknown resource path prefix: %s (must start with 'data/')", path)
	}
	return path, nil
}

// ReadFile 读取资源文件内容
// 路径必须以 "data/" 开头；覆盖目录中存在同名文件时优先读取
func ReadFile(path string) ([]byte, error) {
	mu.RLock()
	defer mu.RUnlock()

	if !initialized {
		return nil, ErrNotInitialized
	}

	path, err := normalize(path)
	if err != nil {
		return nil, err
	}

	if overrideFS != nil {
		data, err := fs.ReadFile(overrideFS, path)
		if err == nil {
			return data, nil
		}
		if !errors.Is(err, fs.ErrNotExist) {
			return nil, err
		}
	}
	return fs.ReadFile(dataFS, path)
}

// Exists 检查资源文件是否存在
func Exists(path string) bool {
	_, err := ReadFile(path)
	return err == nil
}
