// Package embedded 提供嵌入资源的统一访问接口
//
// 由于 Go embed 指令只能嵌入当前包目录及其子目录的文件，
// embed.FS 变量必须声明在项目根目录（embed.go）。
// 本包提供包装函数，让其他包可以访问嵌入的资源。
//
// 使用前必须调用 Init() 初始化。
package embedded

import (
	"embed"
	"fmt"
	"io/fs"
	"path/filepath"
	"strings"
)

var (
	dataFS      embed.FS
	initialized bool
)

// Init 初始化 embed.FS 变量
// 必须在 main() 开始时、任何资源加载之前调用
func Init(data embed.FS) {
	dataFS = data
	initialized = true
}

// IsInitialized 返回 embedded 包是否已初始化
func IsInitialized() bool {
	return initialized
}

// normalize 把路径统一成 embed.FS 认识的形式（正斜杠，无 "./" 前缀）
func normalize(path string) string {
	path = filepath.ToSlash(path)
	return strings.TrimPrefix(path, "./")
}

// Open 打开嵌入文件，路径必须以 "data/" 开头
func Open(path string) (fs.File, error) {
	if !initialized {
		return nil, fmt.Errorf("embedded package not initialized, call Init() first")
	}
	path = normalize(path)
	if !strings.HasPrefix(path, "data/") {
		return nil, fmt.Errorf("unknown resource path prefix: %s (must start with 'data/')", path)
	}
	return dataFS.Open(path)
}

// ReadFile 读取嵌入文件内容，路径必须以 "data/" 开头
func ReadFile(path string) ([]byte, error) {
	if !initialized {
		return nil, fmt.Errorf("embedded package not initialized, call Init() first")
	}
	path = normalize(path)
	if !strings.HasPrefix(path, "data/") {
		return nil, fmt.Errorf("unknown resource path prefix: %s (must start with 'data/')", path)
	}
	return fs.ReadFile(dataFS, path)
}

// Exists 检查文件是否存在于 embed.FS 中
func Exists(path string) bool {
	file, err := Open(path)
	if err != nil {
		return false
	}
	file.Close()
	return true
}

// Glob 在 embed.FS 中匹配文件，模式必须以 "data/" 开头
func Glob(pattern string) ([]string, error) {
	if !initialized {
		return nil, fmt.Errorf("embedded package not initialized, call Init() first")
	}
	pattern = normalize(pattern)
	if !strings.HasPrefix(pattern, "data/") {
		return nil, fmt.Errorf("unknown resource path prefix: %s (must start with 'data/')", pattern)
	}
	return fs.Glob(dataFS, pattern)
}

// Stat 获取嵌入文件信息
func Stat(path string) (fs.FileInfo, error) {
	file, err := Open(path)
	if err != nil {
		return nil, err
	}
	defer file.Close()
	return file.Stat()
}
