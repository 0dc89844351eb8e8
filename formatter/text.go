package formatter

import (
	"bytes"
	"io"
	"time"

	"github.com/philipp01105/bridgelog/core"
)

// TextFormatter formats sink entries as human-readable text
type TextFormatter struct {
	Config
}

// NewTextFormatter creates a new text formatter
func NewTextFormatter(cfg Config) *TextFormatter {
	if cfg.TimestampFormat == "" {
		cfg.TimestampFormat = time.RFC3339
	}
	return &TextFormatter{Config: cfg}
}

// Format formats an entry as text
func (f *TextFormatter) Format(entry *core.Entry) ([]byte, error) {
	buf := getBuffer()
	defer putBuffer(buf)

	f.formatToBuffer(entry, buf)

	// Copy buffer content to return
	result := make([]byte, buf.Len())
	copy(result, buf.Bytes())
	return result, nil
}

// FormatTo formats an entry and writes it directly to the writer
func (f *TextFormatter) FormatTo(entry *core.Entry, w io.Writer) error {
	buf := getBuffer()

	f.formatToBuffer(entry, buf)

	_, err := w.Write(buf.Bytes())
	putBuffer(buf)
	return err
}

// pre-formatted channel strings to avoid multiple WriteString calls
var channelBrackets = [...]string{
	core.InfoChannel:  "[INFO] ",
	core.ErrorChannel: "[ERROR] ",
}

// formatToBuffer writes the formatted entry into the given buffer
func (f *TextFormatter) formatToBuffer(entry *core.Entry, buf *bytes.Buffer) {
	if !f.DisableTimestamp {
		// use AppendFormat to avoid string allocation
		buf.Write(entry.Time.AppendFormat(buf.AvailableBuffer(), f.TimestampFormat))
		buf.WriteByte(' ')
	}

	if int(entry.Channel) < len(channelBrackets) && entry.Channel >= 0 {
		buf.WriteString(channelBrackets[entry.Channel])
	} else {
		buf.WriteString("[UNKNOWN] ")
	}

	if entry.Source != nil {
		buf.WriteString(entry.Source.Name)
		buf.WriteString(": ")
	}

	buf.WriteString(entry.Message)
	buf.WriteByte('\n')
}
