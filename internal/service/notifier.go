package service

import (
	"context"
	"time"

	"github.com/nihatdadaloglu/oda/pkg/async"
	"github.com/nihatdadaloglu/oda/pkg/email"
	"github.com/nihatdadaloglu/oda/pkg/logger"
)

const notifyTimeout = 30 * time.Second

// Notifier 异步发送通知邮件
type Notifier interface {
	// Notify 提交发送任务后立即返回，返回值表示是否已入队
	Notify(to, subject, htmlBody string) bool
}

// Dispatcher 通过工作队列发送邮件，每封邮件最多尝试一次，失败只记录日志
type Dispatcher struct {
	worker *async.Worker
	mailer email.Mailer
	logger *logger.Logger
}

// NewDispatcher 创建通知分发器
func NewDispatcher(worker *async.Worker, mailer email.Mailer, logger *logger.Logger) *Dispatcher {
	return &Dispatcher{worker: worker, mailer: mailer, logger: logger}
}

func (d *Dispatcher) Notify(to, subject, htmlBody string) bool {
	if to == "" {
		d.logger.Warn("通知收件人为空，已忽略", "subject", subject)
		return false
	}
	return d.worker.TryAdd("email:"+subject, func(ctx context.Context) error {
		if err := d.mailer.Send(ctx, to, subject, htmlBody); err != nil {
			return err
		}
		d.logger.Info("通知邮件已发送", "to", to, "subject", subject)
		return nil
	}, notifyTimeout)
}
