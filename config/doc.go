// Package config is the configuration store behind bridgelog.
//
// A Store is loaded once from a single named resource. The resource is
// searched for through an ordered pair of ResourceLoaders: the context
// loader supplied by the host (a directory list, an fs.FS such as an
// embed.FS, or anything implementing ResourceLoader), then the system
// loader (the working directory and the directory of the executable)
// when the context loader has nothing. A missing or unreadable resource
// is never fatal; the store simply falls back to built-in defaults.
//
// Resources named *.yaml or *.yml are read as YAML and flattened into
// dotted keys. Everything else is read as a properties file:
//
//	bridgelog.showLogName=true
//	bridgelog.showLevel=false
//	bridgelog.level=info
//	bridgelog.logger.org.example=debug
//	bridgelog.logger.org.example.Widget=trace
//
// Any key may be overridden process-wide through an OverrideSource. The
// default source is the process environment, looked up under the exact
// key and then under its upper-snake spelling (BRIDGELOG_LEVEL). An
// override always wins over the file.
//
// EffectiveLevel walks a dotted logger name from most to least specific
// and returns the first recognized level keyword, then the global level,
// then INFO.
//
// Load reports what it found straight to the diagnostic Sink given in
// the options; no logger exists yet at that point.
package config
