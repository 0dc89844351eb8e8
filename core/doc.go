// Package core defines the shared types used across bridgelog.
//
// It provides the Level type used for threshold comparison, the Source
// type that attributes a call to a host type, the Entry type that sinks
// render into a single line, and the Field type used by the adapters to
// carry structured key-value pairs into the message text.
//
// Level is a strict total order: All < Trace < Debug < Info < Warn <
// Error < Off. All and Off are sentinels that only ever appear as
// thresholds; a call is always made at one of the five real levels, so
// an All threshold lets everything through and an Off threshold lets
// nothing through without any special casing in the gate.
//
// Entry objects are pooled via sync.Pool. Sinks that render lines get
// an Entry with GetEntry and return it with PutEntry once written.
package core
