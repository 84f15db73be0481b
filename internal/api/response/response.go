// Package response 统一的JSON响应格式：{"code": 状态码, "msg": 提示, "data": 数据}
package response

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/nihatdadaloglu/oda/internal/apperror"
	"github.com/nihatdadaloglu/oda/internal/constants"
	"github.com/nihatdadaloglu/oda/pkg/logger"
)

// OK 返回数据
func OK(c *gin.Context, data interface{}) {
	c.JSON(http.StatusOK, gin.H{
		"code": http.StatusOK,
		"msg":  constants.Success,
		"data": data,
	})
}

// OKWithMessage 返回数据和成功提示
func OKWithMessage(c *gin.Context, msg string, data interface{}) {
	c.JSON(http.StatusOK, gin.H{
		"code": http.StatusOK,
		"msg":  msg,
		"data": data,
	})
}

// Message 返回成功提示
func Message(c *gin.Context, msg string) {
	c.JSON(http.StatusOK, gin.H{
		"code": http.StatusOK,
		"msg":  msg,
	})
}

// Fail 返回错误并中止后续处理
func Fail(c *gin.Context, status int, msg string) {
	c.AbortWithStatusJSON(status, gin.H{
		"code": status,
		"msg":  msg,
	})
}

// Error 将错误转换为响应。领域错误返回对应状态码和提示，其他错误记录日志后返回500
func Error(c *gin.Context, log *logger.Logger, err error) {
	appErr, ok := apperror.From(err)
	if !ok {
		log.Error("请求处理失败", "method", c.Request.Method, "path", c.Request.URL.Path, "error", err)
		Fail(c, http.StatusInternalServerError, constants.ErrInternalServer)
		return
	}
	Fail(c, Status(appErr.Kind), appErr.Message)
}

// Status 错误分类对应的HTTP状态码
func Status(kind apperror.Kind) int {
	switch kind {
	case apperror.KindAuthentication:
		return http.StatusUnauthorized
	case apperror.KindPermission:
		return http.StatusForbidden
	case apperror.KindValidation:
		return http.StatusBadRequest
	case apperror.KindNotFound:
		return http.StatusNotFound
	default:
		return http.StatusInternalServerError
	}
}
