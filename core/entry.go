package core

import (
	"reflect"
	"sync"
	"time"
)

// Channel is one of the two outlets a host sink distinguishes
type Channel int8

const (
	// InfoChannel receives trace, debug, info and warn calls
	InfoChannel Channel = iota
	// ErrorChannel receives error calls and reported errors
	ErrorChannel
)

// String returns the string representation of the channel
func (c Channel) String() string {
	switch c {
	case InfoChannel:
		return "INFO"
	case ErrorChannel:
		return "ERROR"
	default:
		return "UNKNOWN"
	}
}

// ChannelFor maps a call level onto the sink channel it is forwarded to.
func ChannelFor(level Level) Channel {
	if level == ErrorLevel {
		return ErrorChannel
	}
	return InfoChannel
}

// Source attributes a call to a host type or object. A nil *Source means
// the sink should fall back to its own ambient attribution.
type Source struct {
	// Name is the dotted name the source was resolved from
	Name string
	// Type is the host type, if known
	Type reflect.Type
	// Value is the registered object, if one was registered
	Value any
}

// String returns the name of the source, or "" for a nil source
func (s *Source) String() string {
	if s == nil {
		return ""
	}
	return s.Name
}

// Entry represents one rendered sink line with all its metadata
type Entry struct {
	Time    time.Time
	Channel Channel
	Source  *Source
	Message string
}

// entryPool is a pool of Entry objects to reduce allocations
var entryPool = sync.Pool{
	New: func() interface{} {
		return &Entry{}
	},
}

// GetEntry retrieves an Entry from the pool
func GetEntry() *Entry {
	e := entryPool.Get().(*Entry)
	e.Time = time.Now()
	return e
}

// PutEntry returns an Entry to the pool
func PutEntry(e *Entry) {
	if e == nil {
		return
	}
	e.Message = ""
	e.Source = nil
	e.Channel = InfoChannel
	entryPool.Put(e)
}
