// Package storage 上传文件的持久化
package storage

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

// FileStore 按名称保存文件内容
type FileStore interface {
	Save(ctx context.Context, name string, data []byte) error
}

// Local 保存在本地目录中的文件，目录同时以静态文件方式对外提供
type Local struct {
	root string
}

// NewLocal 创建本地文件存储，目录不存在时自动创建
func NewLocal(root string) (*Local, error) {
	if err := os.MkdirAll(root, 0o755); err != nil {
		return nil, fmt.Errorf("创建上传目录失败: %w", err)
	}
	return &Local{root: root}, nil
}

// Root 返回存储目录
func (l *Local) Root() string {
	return l.root
}

// Save 写入文件，名称不能包含路径
func (l *Local) Save(_ context.Context, name string, data []byte) error {
	if name == "" || name != filepath.Base(name) || strings.HasPrefix(name, ".") {
		return fmt.Errorf("invalid file name %q", name)
	}
	path := filepath.Join(l.root, name)
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("写入文件失败: %w", err)
	}
	return nil
}
