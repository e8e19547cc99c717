// Package watch re-runs linting when bibliography files change on disk.
//
// The watcher registers the parent directories of the requested files with
// fsnotify, filters events down to the watched .bib files, and debounces
// rapid event bursts (editors typically emit several) into a single re-lint
// callback.
package watch
