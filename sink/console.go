package sink

import (
	"fmt"
	"io"
	"os"
	"sync"

	"github.com/philipp01105/bridgelog/core"
	"github.com/philipp01105/bridgelog/formatter"
)

// Console writes one formatted line per call to an io.Writer
type Console struct {
	writer          io.Writer
	formatter       formatter.Formatter
	writerFormatter formatter.WriterFormatter
	mu              sync.Mutex
	stats           *Stats
}

// ConsoleConfig holds configuration for the console sink
type ConsoleConfig struct {
	// Writer to write to (default: os.Stderr)
	Writer io.Writer
	// Formatter to use (default: TextFormatter)
	Formatter formatter.Formatter
}

// NewConsole creates a new console sink
func NewConsole(cfg ConsoleConfig) *Console {
	if cfg.Writer == nil {
		cfg.Writer = os.Stderr
	}
	if cfg.Formatter == nil {
		cfg.Formatter = formatter.NewTextFormatter(formatter.Config{})
	}

	c := &Console{
		writer:    cfg.Writer,
		formatter: cfg.Formatter,
		stats:     NewStats(),
	}

	// Cache WriterFormatter for zero-alloc path
	c.writerFormatter, _ = cfg.Formatter.(formatter.WriterFormatter)

	return c
}

// LogInfo writes msg as an informational line
func (c *Console) LogInfo(source *core.Source, msg string) {
	c.emit(core.InfoChannel, source, msg)
}

// LogError writes msg as an error line
func (c *Console) LogError(source *core.Source, msg string) {
	c.emit(core.ErrorChannel, source, msg)
}

// LogErr writes err, including any detail its %+v verb renders, as an error line
func (c *Console) LogErr(err error) {
	if err == nil {
		return
	}
	c.stats.IncrementErrs()
	c.write(core.ErrorChannel, nil, fmt.Sprintf("%+v", err))
}

func (c *Console) emit(ch core.Channel, source *core.Source, msg string) {
	c.stats.IncrementChannel(ch)
	c.write(ch, source, msg)
}

// write formats and writes one line
func (c *Console) write(ch core.Channel, source *core.Source, msg string) {
	entry := core.GetEntry()
	entry.Channel = ch
	entry.Source = source
	entry.Message = msg
	defer core.PutEntry(entry)

	if c.writerFormatter != nil {
		c.mu.Lock()
		err := c.writerFormatter.FormatTo(entry, c.writer)
		c.mu.Unlock()
		if err != nil {
			c.stats.IncrementFailed()
		}
		return
	}

	data, err := c.formatter.Format(entry)
	if err != nil {
		c.stats.IncrementFailed()
		return
	}

	c.mu.Lock()
	_, err = c.writer.Write(data)
	c.mu.Unlock()
	if err != nil {
		c.stats.IncrementFailed()
	}
}

// Stats returns a snapshot of the current statistics
func (c *Console) Stats() Snapshot {
	return c.stats.GetSnapshot()
}
