// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package main

import (
	"os"
	"path/filepath"

	"github.com/bitmark-inc/logger"
	"github.com/fsnotify/fsnotify"

	"github.com/bitmark-inc/bintree/fault"
)

// FileWatcher - report changes to a single file
type FileWatcher interface {
	Start() error
	Stop() error
}

const (
	fileWatcherLoggerPrefix = "file-watcher"
)

type fileWatcherData struct {
	log      *logger.L
	channels WatcherChannel
	watcher  *fsnotify.Watcher
	filePath string
	done     chan struct{}
}

// WatcherChannel - events from the watcher
type WatcherChannel struct {
	change chan struct{}
	remove chan struct{}
}

func newWatcherChannel() WatcherChannel {
	return WatcherChannel{
		change: make(chan struct{}, 1),
		remove: make(chan struct{}, 1),
	}
}

func newFileWatcher(targetFile string, log *logger.L, channels WatcherChannel) (FileWatcher, error) {
	filePath, err := filepath.Abs(filepath.Clean(targetFile))
	if nil != err {
		log.Errorf("parse file %s error: %s", targetFile, err)
		return nil, err
	}

	if _, err := os.Stat(filePath); os.IsNotExist(err) {
		return nil, fault.ErrMissingParameters
	}

	watcher, err := fsnotify.NewWatcher()
	if nil != err {
		log.Errorf("new watcher with error: %s", err)
		return nil, err
	}

	return &fileWatcherData{
		log:      log,
		watcher:  watcher,
		channels: channels,
		filePath: filePath,
		done:     make(chan struct{}),
	}, nil
}

// Start - watch the directory holding the file so that editors
// which replace the file by renaming are still seen
func (w *fileWatcherData) Start() error {
	err := w.watcher.Add(filepath.Dir(w.filePath))
	if nil != err {
		w.log.Errorf("watcher add error: %s, abort", err)
		return err
	}

	go w.run()

	return nil
}

func (w *fileWatcherData) run() {
	for {
		select {
		case <-w.done:
			return

		case err, ok := <-w.watcher.Errors:
			if !ok {
				return
			}
			w.log.Warnf("watcher error: %s", err)

		case event, ok := <-w.watcher.Events:
			if !ok {
				return
			}
			w.log.Debugf("file event: %v", event)

			if filepath.Clean(event.Name) != w.filePath {
				w.log.Tracef("file %s not match, discard event", event.Name)
				continue
			}

			if watcherEventFileRemove(event) {
				w.log.Warnf("file %s removed", w.filePath)
				w.sendEvent(w.channels.remove, "remove")
				continue
			}

			if watcherEventFileChange(event) {
				w.log.Info("sending config change event…")
				w.sendEvent(w.channels.change, "change")
			}
		}
	}
}

// Stop - finish watching
func (w *fileWatcherData) Stop() error {
	close(w.done)
	return w.watcher.Close()
}

func (w *fileWatcherData) isChannelFull(ch chan<- struct{}) bool {
	return len(ch) == cap(ch)
}

func (w *fileWatcherData) sendEvent(ch chan<- struct{}, name string) {
	if !w.isChannelFull(ch) {
		ch <- struct{}{}
	} else {
		w.log.Debugf("event channel %s full, discard event", name)
	}
}

func watcherEventFileRemove(event fsnotify.Event) bool {
	return event.Name == "" ||
		event.Op&fsnotify.Remove == fsnotify.Remove ||
		event.Op&fsnotify.Rename == fsnotify.Rename
}

func watcherEventFileChange(event fsnotify.Event) bool {
	return event.Op&fsnotify.Write == fsnotify.Write ||
		event.Op&fsnotify.Create == fsnotify.Create ||
		event.Op&fsnotify.Chmod == fsnotify.Chmod
}
