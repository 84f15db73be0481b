package service

import (
	"context"
	"fmt"
	"io"
	"strings"
	"time"

	"k8s.io/apimachinery/pkg/util/rand"

	"github.com/nihatdadaloglu/oda/internal/apperror"
	"github.com/nihatdadaloglu/oda/pkg/logger"
	"github.com/nihatdadaloglu/oda/pkg/storage"
)

// DefaultMaxUploadSize 单个文件的默认大小上限
const DefaultMaxUploadSize int64 = 10 * 1024 * 1024

// UploadURLPrefix 上传文件对外访问的路径前缀
const UploadURLPrefix = "/uploads/"

// 只按扩展名判断类型，不检查文件内容
var allowedExtensions = map[string]struct{}{
	"pdf":  {},
	"jpg":  {},
	"jpeg": {},
	"png":  {},
	"doc":  {},
	"docx": {},
}

// StoredFile 保存成功的文件
type StoredFile struct {
	FileURL  string `json:"file_url"`
	Filename string `json:"filename"`
}

// IncomingFile 待保存的文件内容和客户端提供的文件名
type IncomingFile struct {
	Name string
	Data []byte
}

// FileIngestor 校验并保存上传文件，原始文件名只用于取扩展名
type FileIngestor struct {
	store   storage.FileStore
	maxSize int64
	logger  *logger.Logger
	now     func() time.Time
}

// NewFileIngestor 创建上传服务
func NewFileIngestor(store storage.FileStore, maxSize int64, logger *logger.Logger) *FileIngestor {
	if maxSize <= 0 {
		maxSize = DefaultMaxUploadSize
	}
	return &FileIngestor{store: store, maxSize: maxSize, logger: logger, now: time.Now}
}

// ReadLimited 读取上传内容，最多读取上限加一个字节，超出部分不进内存
func (f *FileIngestor) ReadLimited(r io.Reader) ([]byte, error) {
	data, err := io.ReadAll(io.LimitReader(r, f.maxSize+1))
	if err != nil {
		return nil, fmt.Errorf("read upload: %w", err)
	}
	return data, nil
}

// Ingest 先检查大小再检查扩展名，通过后以生成的名称保存
func (f *FileIngestor) Ingest(ctx context.Context, data []byte, filename string) (*StoredFile, error) {
	if int64(len(data)) > f.maxSize {
		return nil, apperror.ErrTooLarge
	}
	ext := fileExtension(filename)
	if _, ok := allowedExtensions[ext]; !ok {
		return nil, apperror.ErrUnsupportedType
	}

	name := fmt.Sprintf("%s_%s.%s", f.now().Format("20060102_150405"), rand.String(8), ext)
	if err := f.store.Save(ctx, name, data); err != nil {
		return nil, fmt.Errorf("save upload: %w", err)
	}
	return &StoredFile{FileURL: UploadURLPrefix + name, Filename: name}, nil
}

// IngestAll 逐个保存文件，不合格的文件直接跳过，返回保存成功的文件地址
func (f *FileIngestor) IngestAll(ctx context.Context, files []IncomingFile) []string {
	urls := make([]string, 0, len(files))
	for _, file := range files {
		if file.Name == "" {
			continue
		}
		stored, err := f.Ingest(ctx, file.Data, file.Name)
		if err != nil {
			f.logger.Debug("跳过上传文件", "filename", file.Name, "error", err)
			continue
		}
		urls = append(urls, stored.FileURL)
	}
	return urls
}

// fileExtension 取最后一个点之后的部分并转为小写，没有点时整个文件名即扩展名
func fileExtension(filename string) string {
	if i := strings.LastIndex(filename, "."); i >= 0 {
		filename = filename[i+1:]
	}
	return strings.ToLower(filename)
}
