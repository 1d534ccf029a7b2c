// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package dialog

import (
	"log/slog"
	"path/filepath"
	"slices"

	"github.com/fsnotify/fsnotify"
)

// Watcher reports changes to declaration files. It watches their
// directories, so that files replaced by editors are still seen.
type Watcher struct {

	// Changes receives the path of each changed file. Changes that
	// arrive before the previous one is received are coalesced.
	Changes <-chan string

	// Errors receives errors from the underlying watcher.
	Errors <-chan error

	w *fsnotify.Watcher
}

// Watch starts watching the given files.
func Watch(paths ...string) (*Watcher, error) {
	w, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, err
	}
	var files, dirs []string
	for _, p := range paths {
		if p == "" {
			continue
		}
		abs, err := filepath.Abs(p)
		if err != nil {
			w.Close()
			return nil, err
		}
		files = append(files, abs)
		if dir := filepath.Dir(abs); !slices.Contains(dirs, dir) {
			dirs = append(dirs, dir)
			if err := w.Add(dir); err != nil {
				w.Close()
				return nil, err
			}
		}
	}
	changes := make(chan string, 1)
	errs := make(chan error, 1)
	go forward(w, files, changes, errs)
	return &Watcher{Changes: changes, Errors: errs, w: w}, nil
}

func forward(w *fsnotify.Watcher, files []string, changes chan<- string, errs chan<- error) {
	defer close(changes)
	defer close(errs)
	for {
		select {
		case ev, ok := <-w.Events:
			if !ok {
				return
			}
			if !ev.Has(fsnotify.Write) && !ev.Has(fsnotify.Create) && !ev.Has(fsnotify.Rename) {
				continue
			}
			name, err := filepath.Abs(ev.Name)
			if err != nil || !slices.Contains(files, name) {
				continue
			}
			slog.Debug("dialog: declaration changed", "file", name, "op", ev.Op.String())
			select {
			case changes <- name:
			default:
			}
		case err, ok := <-w.Errors:
			if !ok {
				return
			}
			select {
			case errs <- err:
			default:
				slog.Error("dialog: watching declarations", "err", err)
			}
		}
	}
}

// Close stops watching. The Changes and Errors channels are closed.
func (w *Watcher) Close() error {
	return w.w.Close()
}
