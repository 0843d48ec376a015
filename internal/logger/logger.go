package logger

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"sync"
	"time"

	"pokkit-datagen/internal/schema"
)

//
// ---------------------------------------------------------
// Run Logger
// ---------------------------------------------------------
//

// RunLogger 记录一次命令运行的详细过程：被拒绝的候选样本（完整 JSON）、
// LLM 请求与响应、最终汇总。控制台只打印前几条警告，完整信息都在这里。
// 内部使用互斥锁，distill 的并发 worker 可以同时写入。
type RunLogger struct {
	logDir   string     // 日志目录 (~/.pokkit-datagen/log)
	logFile  *os.File   // 当前运行的日志文件句柄
	logIndex int        // 日志条目计数器
	mu       sync.Mutex // 互斥锁
}

// DefaultDir 返回默认日志目录
func DefaultDir() (string, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("cannot determine user home directory: %w", err)
	}
	return filepath.Join(home, ".pokkit-datagen", "log"), nil
}

// NewRunLogger 创建日志管理器，dir 为空时使用默认目录。目录不存在会自动创建。
func NewRunLogger(dir string) (*RunLogger, error) {
	if dir == "" {
		var err error
		if dir, err = DefaultDir(); err != nil {
			return nil, err
		}
	}

	if err := os.MkdirAll(dir, 0755); err != nil {
		return nil, fmt.Errorf("cannot create log directory: %w", err)
	}

	return &RunLogger{logDir: dir}, nil
}

//
// ---------------------------------------------------------
// Log File Control
// ---------------------------------------------------------
//

// StartNewRun 开启一次新的日志会话，创建带时间戳的日志文件并写入头部
func (l *RunLogger) StartNewRun(command string) error {
	l.mu.Lock()
	defer l.mu.Unlock()

	if l.logFile != nil {
		l.logFile.Close()
		l.logFile = nil
	}

	now := time.Now()
	logPath := filepath.Join(l.logDir, fmt.Sprintf("%s_run_%s.log", command, now.Format("20060102_150405")))

	file, err := os.Create(logPath)
	if err != nil {
		return fmt.Errorf("failed to create log file: %w", err)
	}

	l.logFile = file
	l.logIndex = 0

	header := fmt.Sprintf("%s\npokkit-datagen %s - %s\n%s\n",
		strings.Repeat("=", 80),
		command,
		now.Format("2006-01-02 15:04:05"),
		strings.Repeat("=", 80),
	)

	if _, err := file.WriteString(header); err != nil {
		return fmt.Errorf("failed writing header: %w", err)
	}

	return nil
}

// safeJSON 格式化 JSON 序列化，失败时返回带错误提示的 JSON
func safeJSON(v any) []byte {
	j, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return fmt.Appendf(nil, `{"error": "json marshal failed: %v"}`, err)
	}
	return j
}

// writeLog 写入一条记录：类型、编号、时间戳、内容
func (l *RunLogger) writeLog(logType, content string) error {
	l.mu.Lock()
	defer l.mu.Unlock()

	if l.logFile == nil {
		return fmt.Errorf("log file not initialized (StartNewRun not called?)")
	}

	l.logIndex++

	entry := fmt.Sprintf(
		"\n%s\n[%d] %s\nTimestamp: %s\n%s\n%s\n",
		strings.Repeat("-", 80),
		l.logIndex,
		logType,
		time.Now().Format("2006-01-02 15:04:05.000"),
		strings.Repeat("-", 80),
		content,
	)

	if _, err := l.logFile.WriteString(entry); err != nil {
		return fmt.Errorf("write log failed: %w", err)
	}

	return l.logFile.Sync()
}

//
// ---------------------------------------------------------
// Entries
// ---------------------------------------------------------
//

// LogRejection 记录一条未通过校验的候选样本
func (l *RunLogger) LogRejection(split, generator string, reason error, ex schema.Example) error {
	data := map[string]any{
		"split":     split,
		"generator": generator,
		"error":     reason.Error(),
		"example":   ex,
	}
	return l.writeLog("REJECTED", "Rejected candidate:\n\n"+string(safeJSON(data)))
}

// LogRequest 记录一次 LLM 请求
func (l *RunLogger) LogRequest(model, system, user string) error {
	req := map[string]any{
		"model": model,
		"messages": []map[string]string{
			{"role": "system", "content": system},
			{"role": "user", "content": user},
		},
	}
	return l.writeLog("REQUEST", "LLM Request:\n\n"+string(safeJSON(req)))
}

// LogResponse 记录 LLM 返回的文本或错误
func (l *RunLogger) LogResponse(content string, err error) error {
	resp := map[string]any{"content": content}
	if err != nil {
		resp["error"] = err.Error()
	}
	return l.writeLog("RESPONSE", "LLM Response:\n\n"+string(safeJSON(resp)))
}

// LogSummary 记录运行汇总
func (l *RunLogger) LogSummary(summary any) error {
	return l.writeLog("SUMMARY", "Run summary:\n\n"+string(safeJSON(summary)))
}

//
// ---------------------------------------------------------
// File Control
// ---------------------------------------------------------
//

// GetLogFilePath 返回当前日志文件路径
func (l *RunLogger) GetLogFilePath() string {
	l.mu.Lock()
	defer l.mu.Unlock()

	if l.logFile == nil {
		return ""
	}
	return l.logFile.Name()
}

// Close 关闭日志文件
func (l *RunLogger) Close() error {
	l.mu.Lock()
	defer l.mu.Unlock()

	if l.logFile != nil {
		err := l.logFile.Close()
		l.logFile = nil
		return err
	}
	return nil
}
