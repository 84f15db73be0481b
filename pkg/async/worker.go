package async

import (
	"context"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/nihatdadaloglu/oda/pkg/logger"
)

// Task 表示一个异步任务，只执行一次，失败不重试
type Task struct {
	ID      string
	Name    string
	Handler func(ctx context.Context) error
	Timeout time.Duration
}

// Worker 固定数量协程消费的有界任务队列
type Worker struct {
	taskQueue chan Task
	logger    *logger.Logger
	wg        sync.WaitGroup

	mu     sync.RWMutex
	closed bool
}

// NewWorker 创建一个新的工作器
func NewWorker(queueSize int, logger *logger.Logger) *Worker {
	if queueSize <= 0 {
		queueSize = 1
	}
	return &Worker{
		taskQueue: make(chan Task, queueSize),
		logger:    logger,
	}
}

// Start 启动工作协程
func (w *Worker) Start(numWorkers int) {
	if numWorkers <= 0 {
		numWorkers = 1
	}
	for i := 0; i < numWorkers; i++ {
		w.wg.Add(1)
		go w.processTask()
	}
}

// Stop 停止接收新任务，等待队列中的任务执行完
func (w *Worker) Stop() {
	w.mu.Lock()
	if w.closed {
		w.mu.Unlock()
		return
	}
	w.closed = true
	close(w.taskQueue)
	w.mu.Unlock()

	w.wg.Wait()
}

// TryAdd 将任务加入队列，队列已满或已停止时丢弃任务并返回 false，不会阻塞
func (w *Worker) TryAdd(name string, handler func(ctx context.Context) error, timeout time.Duration) bool {
	task := Task{
		ID:      uuid.NewString(),
		Name:    name,
		Handler: handler,
		Timeout: timeout,
	}

	w.mu.RLock()
	defer w.mu.RUnlock()
	if w.closed {
		w.logger.Warn("Worker stopped, task dropped", "task", name)
		return false
	}

	select {
	case w.taskQueue <- task:
		return true
	default:
		w.logger.Warn("Task queue full, task dropped", "task", name)
		return false
	}
}

// processTask 处理任务的工作循环
func (w *Worker) processTask() {
	defer w.wg.Done()

	for task := range w.taskQueue {
		w.executeTask(task)
	}
}

// executeTask 执行单个任务，panic 和错误只记录日志
func (w *Worker) executeTask(task Task) {
	start := time.Now()

	defer func() {
		if r := recover(); r != nil {
			w.logger.Error("Async task panicked", "task_id", task.ID, "task", task.Name, "panic", r)
		}
	}()

	ctx := context.Background()
	if task.Timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, task.Timeout)
		defer cancel()
	}

	if err := task.Handler(ctx); err != nil {
		w.logger.Error("Async task failed", "task_id", task.ID, "task", task.Name, "error", err)
		return
	}
	w.logger.Debug("Async task completed", "task_id", task.ID, "task", task.Name, "duration", time.Since(start))
}
