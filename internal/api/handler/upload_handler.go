package handler

import (
	"mime/multipart"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/nihatdadaloglu/oda/internal/api/response"
	"github.com/nihatdadaloglu/oda/internal/constants"
	"github.com/nihatdadaloglu/oda/internal/service"
	"github.com/nihatdadaloglu/oda/pkg/logger"
)

// UploadHandler 文件上传处理器
type UploadHandler struct {
	files  *service.FileIngestor
	logger *logger.Logger
}

// NewUploadHandler 创建上传处理器实例
func NewUploadHandler(files *service.FileIngestor, logger *logger.Logger) *UploadHandler {
	return &UploadHandler{files: files, logger: logger}
}

// Upload 上传单个文件，表单字段为 file
func (h *UploadHandler) Upload(c *gin.Context) {
	header, err := c.FormFile("file")
	if err != nil {
		response.Fail(c, http.StatusBadRequest, constants.ErrFileMissing)
		return
	}

	data, err := readFormFile(h.files, header)
	if err != nil {
		response.Error(c, h.logger, err)
		return
	}

	stored, err := h.files.Ingest(c.Request.Context(), data, header.Filename)
	if err != nil {
		response.Error(c, h.logger, err)
		return
	}
	response.OK(c, stored)
}

func readFormFile(files *service.FileIngestor, header *multipart.FileHeader) ([]byte, error) {
	f, err := header.Open()
	if err != nil {
		return nil, err
	}
	defer f.Close()
	return files.ReadLimited(f)
}
