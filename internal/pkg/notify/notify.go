// Package notify delivers user-visible messages, the CLI counterpart of toast notifications.
package notify

import (
	"fmt"
	"io"
	"sync"

	"github.com/dmpt/absensi/internal/pkg/logger"
)

// Localized messages shown to users
const (
	MsgSessionExpired = "Akses tidak sah, silakan masuk kembali"
	MsgFetchFailed    = "Terjadi kesalahan saat mengambil data"
	MsgSendFailed     = "Terjadi kesalahan saat mengirim data"
	MsgUpdateFailed   = "Terjadi kesalahan saat mengupdate data"
	MsgDeleteFailed   = "Terjadi kesalahan saat menghapus data"
	MsgUploadFailed   = "Terjadi kesalahan saat mengupload file"
	MsgUpdateFileFail = "Terjadi kesalahan saat mengupdate file"
)

// Notifier shows messages to the user
type Notifier interface {
	Error(msg string)
	Success(msg string)
}

// WriterNotifier prints messages to a writer and mirrors them to the logger
type WriterNotifier struct {
	mu  sync.Mutex
	out io.Writer
	log *logger.ZapLogger
}

// NewWriterNotifier creates a notifier writing to out
func NewWriterNotifier(out io.Writer, log *logger.ZapLogger) *WriterNotifier {
	if log == nil {
		log = logger.NewNop()
	}
	return &WriterNotifier{out: out, log: log}
}

// Error prints an error message
func (n *WriterNotifier) Error(msg string) {
	n.log.Debug("Error notification", logger.String("message", msg))
	n.write("✗ " + msg)
}

// Success prints a success message
func (n *WriterNotifier) Success(msg string) {
	n.log.Debug("Success notification", logger.String("message", msg))
	n.write("✓ " + msg)
}

func (n *WriterNotifier) write(line string) {
	n.mu.Lock()
	defer n.mu.Unlock()
	fmt.Fprintln(n.out, line)
}

// Notification is a captured message
type Notification struct {
	Level   string
	Message string
}

// Recorder captures notifications in memory
type Recorder struct {
	mu    sync.Mutex
	items []Notification
}

// NewRecorder creates an empty recorder
func NewRecorder() *Recorder {
	return &Recorder{}
}

// Error records an error message
func (r *Recorder) Error(msg string) {
	r.add("error", msg)
}

// Success records a success message
func (r *Recorder) Success(msg string) {
	r.add("success", msg)
}

func (r *Recorder) add(level, msg string) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.items = append(r.items, Notification{Level: level, Message: msg})
}

// Notifications returns a copy of everything recorded so far
func (r *Recorder) Notifications() []Notification {
	r.mu.Lock()
	defer r.mu.Unlock()
	out := make([]Notification, len(r.items))
	copy(out, r.items)
	return out
}

// Errors returns the recorded error messages
func (r *Recorder) Errors() []string {
	var msgs []string
	for _, n := range r.Notifications() {
		if n.Level == "error" {
			msgs = append(msgs, n.Message)
		}
	}
	return msgs
}

// Reset drops every recorded notification
func (r *Recorder) Reset() {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.items = nil
}
