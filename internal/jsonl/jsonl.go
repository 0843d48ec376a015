// Package jsonl 读写每行一条样本的 JSONL 文件。
package jsonl

import (
	"bufio"
	"bytes"
	"encoding/json"
	"fmt"
	"io"

	"pokkit-datagen/internal/schema"
)

// maxLine 单行最大长度
const maxLine = 16 * 1024 * 1024

// Writer 逐行写出样本。不转义 HTML 字符，emoji 等非 ASCII 字符原样输出。
type Writer struct {
	buf   *bufio.Writer
	enc   *json.Encoder
	count int
}

// NewWriter 创建 Writer，调用方负责在结束时 Flush
func NewWriter(w io.Writer) *Writer {
	buf := bufio.NewWriter(w)
	enc := json.NewEncoder(buf)
	enc.SetEscapeHTML(false)
	return &Writer{buf: buf, enc: enc}
}

// Write 写出一条样本（Encoder 自带换行）
func (w *Writer) Write(ex schema.Example) error {
	if err := w.enc.Encode(ex); err != nil {
		return fmt.Errorf("encode example %d: %w", w.count+1, err)
	}
	w.count++
	return nil
}

// Flush 刷新缓冲区
func (w *Writer) Flush() error {
	if err := w.buf.Flush(); err != nil {
		return fmt.Errorf("flush: %w", err)
	}
	return nil
}

// Count 已写出的样本数
func (w *Writer) Count() int {
	return w.count
}

// Record 读到的一行：行号、原始字节和解码结果
type Record struct {
	Line    int
	Raw     []byte
	Example schema.Example
	Err     error
}

// Scan 逐行读取，对每个非空行调用 fn。解码失败的行通过 Record.Err 交给调用方处理；
// fn 返回错误时停止扫描并返回该错误。
func Scan(r io.Reader, fn func(Record) error) error {
	sc := bufio.NewScanner(r)
	sc.Buffer(make([]byte, 64*1024), maxLine)

	line := 0
	for sc.Scan() {
		line++
		raw := bytes.TrimSpace(sc.Bytes())
		if len(raw) == 0 {
			continue
		}
		rec := Record{Line: line, Raw: bytes.Clone(raw)}
		if err := json.Unmarshal(raw, &rec.Example); err != nil {
			rec.Err = fmt.Errorf("line %d: %w", line, err)
		}
		if err := fn(rec); err != nil {
			return err
		}
	}
	if err := sc.Err(); err != nil {
		return fmt.Errorf("read jsonl: %w", err)
	}
	return nil
}

// ReadAll 读取全部样本，遇到无法解码的行立即返回错误
func ReadAll(r io.Reader) ([]schema.Example, error) {
	var out []schema.Example
	err := Scan(r, func(rec Record) error {
		if rec.Err != nil {
			return rec.Err
		}
		out = append(out, rec.Example)
		return nil
	})
	return out, err
}
