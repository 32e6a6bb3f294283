// Package confloader loads and writes KEY=value configuration files.
//
// It uses koanf as the underlying library:
//
//   - loader.go: Loader over koanf with a file source and a map source
//   - dotenv.go: koanf parser for the KEY=value line format
//   - provider.go: in-memory koanf provider
//   - watcher.go: fsnotify watcher that reports changes to loaded files
//
// Keys are case-sensitive and are never split on a delimiter by the parser.
package confloader
