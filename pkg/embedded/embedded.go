// Package embedded 提供嵌入资源的统一访问接口
//
// 由于 Go embed 指令只能嵌入当前包目录及其子目录的文件，
// embed.FS 变量必须声明在项目根目录（embed.go）。
// 本包提供包装函数，让其他包可以访问嵌入的 data/ 目录。
//
// 美术与音效资源（assets/）不嵌入，始终从磁盘读取；
// 未调用 Init() 时 data/ 也回退到磁盘读取，便于工具和测试使用。
package embedded

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"
)

var (
	dataFS      fs.FS
	initialized bool
)

// Init 注册嵌入的 data 文件系统
// 必须在 main() 开始时、任何配置加载之前调用
func Init(data fs.FS) {
	dataFS = data
	initialized = data != nil
}

// Reset 清除注册的文件系统（测试用）
func Reset() {
	dataFS = nil
	initialized = false
}

// IsInitialized 返回 embedded 包是否已初始化
func IsInitialized() bool {
	return initialized
}

// normalize 标准化路径：正斜杠、去掉 "./" 前缀
func normalize(path string) string {
	path = filepath.ToSlash(path)
	return strings.TrimPrefix(path, "./")
}

// ReadFile 读取文件内容
//
// "data/" 开头的路径优先从嵌入的文件系统读取，不存在时回退到磁盘；
// 其他路径直接从磁盘读取。
func ReadFile(path string) ([]byte, error) {
	path = normalize(path)

	if initialized && strings.HasPrefix(path, "data/") {
		data, err := fs.ReadFile(dataFS, path)
		if err == nil {
			return data, nil
		}
		if !errors.Is(err, fs.ErrNotExist) {
			return nil, fmt.Errorf("failed to read embedded file %s: %w", path, err)
		}
	}

	return os.ReadFile(path)
}

// Open 打开文件，查找顺序与 ReadFile 相同
func Open(path string) (fs.File, error) {
	path = normalize(path)

	if initialized && strings.HasPrefix(path, "data/") {
		file, err := dataFS.Open(path)
		if err == nil {
			return file, nil
		}
		if !errors.Is(err, fs.ErrNotExist) {
			return nil, err
		}
	}

	return os.Open(path)
}

// Exists 检查文件是否存在
func Exists(path string) bool {
	file, err := Open(path)
	if err != nil {
		return false
	}
	file.Close()
	return true
}
