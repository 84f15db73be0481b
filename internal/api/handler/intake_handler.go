package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/nihatdadaloglu/oda/internal/api/response"
	"github.com/nihatdadaloglu/oda/internal/constants"
	"github.com/nihatdadaloglu/oda/internal/service"
	"github.com/nihatdadaloglu/oda/pkg/logger"
)

// IntakeHandler 联系表单和入会申请
type IntakeHandler struct {
	intake *service.IntakeService
	files  *service.FileIngestor
	logger *logger.Logger
}

// NewIntakeHandler 创建表单处理器实例
func NewIntakeHandler(intake *service.IntakeService, files *service.FileIngestor, logger *logger.Logger) *IntakeHandler {
	return &IntakeHandler{intake: intake, files: files, logger: logger}
}

// ContactRequest 联系表单
type ContactRequest struct {
	Name    string `json:"name" binding:"required"`
	Email   string `json:"email" binding:"required,email"`
	Phone   string `json:"phone" binding:"required"`
	Message string `json:"message" binding:"required"`
}

// MembershipRequest 入会申请表单字段，附件在 files 字段中
type MembershipRequest struct {
	Name      string  `form:"name" binding:"required"`
	Email     string  `form:"email" binding:"required,email"`
	Phone     string  `form:"phone" binding:"required"`
	Address   string  `form:"address" binding:"required"`
	TaxNumber string  `form:"tax_number" binding:"required"`
	Note      *string `form:"note"`
}

// Contact 提交联系表单
// @Summary 提交联系表单
// @Tags 表单
// @Accept json
// @Produce json
// @Router /api/contact [post]
func (h *IntakeHandler) Contact(c *gin.Context) {
	var req ContactRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Fail(c, http.StatusBadRequest, constants.ErrInvalidParams)
		return
	}

	_, err := h.intake.SubmitContact(c.Request.Context(), service.ContactForm{
		Name:    req.Name,
		Email:   req.Email,
		Phone:   req.Phone,
		Message: req.Message,
	})
	if err != nil {
		response.Error(c, h.logger, err)
		return
	}
	response.Message(c, constants.SuccessContact)
}

// Membership 提交入会申请，不合格的附件会被忽略
// @Summary 提交入会申请
// @Tags 表单
// @Accept multipart/form-data
// @Produce json
// @Router /api/membership [post]
func (h *IntakeHandler) Membership(c *gin.Context) {
	var req MembershipRequest
	if err := c.ShouldBind(&req); err != nil {
		response.Fail(c, http.StatusBadRequest, constants.ErrInvalidParams)
		return
	}

	var files []service.IncomingFile
	if form, err := c.MultipartForm(); err == nil {
		for _, header := range form.File["files"] {
			data, err := readFormFile(h.files, header)
			if err != nil {
				h.logger.Debug("读取附件失败", "filename", header.Filename, "error", err)
				continue
			}
			files = append(files, service.IncomingFile{Name: header.Filename, Data: data})
		}
	}

	_, err := h.intake.SubmitMembership(c.Request.Context(), service.MembershipForm{
		Name:      req.Name,
		Email:     req.Email,
		Phone:     req.Phone,
		Address:   req.Address,
		TaxNumber: req.TaxNumber,
		Note:      req.Note,
	}, files)
	if err != nil {
		response.Error(c, h.logger, err)
		return
	}
	response.Message(c, constants.SuccessMembership)
}

// MembershipStatus 按邮箱或税号查询申请状态
func (h *IntakeHandler) MembershipStatus(c *gin.Context) {
	status, err := h.intake.FindStatus(c.Request.Context(), c.Query("query"))
	if err != nil {
		response.Error(c, h.logger, err)
		return
	}
	response.OK(c, status)
}
