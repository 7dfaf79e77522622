package main

import (
	"fmt"
	"log/slog"
	"path/filepath"
	"sync"
	"time"

	"github.com/cubahno/apipatterns/internal/config"
	"github.com/fsnotify/fsnotify"
)

// configWatcher reloads the config when the config file changes.
// Rapid successive writes are debounced into a single reload.
type configWatcher struct {
	cfg      *config.Config
	watcher  *fsnotify.Watcher
	stopChan chan struct{}

	reloadTimer    *time.Timer
	reloadMu       sync.Mutex
	reloadDebounce time.Duration
}

func newConfigWatcher(cfg *config.Config) (*configWatcher, error) {
	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, fmt.Errorf("failed to create watcher: %w", err)
	}

	// editors replace the file on save, so watch the directory
	if err := watcher.Add(cfg.BaseDir); err != nil {
		_ = watcher.Close()
		return nil, fmt.Errorf("failed to watch %s: %w", cfg.BaseDir, err)
	}

	return &configWatcher{
		cfg:            cfg,
		watcher:        watcher,
		stopChan:       make(chan struct{}),
		reloadDebounce: time.Second,
	}, nil
}

func (cw *configWatcher) start() {
	go cw.watch()
}

func (cw *configWatcher) stop() {
	cw.reloadMu.Lock()
	if cw.reloadTimer != nil {
		cw.reloadTimer.Stop()
		cw.reloadTimer = nil
	}
	cw.reloadMu.Unlock()

	close(cw.stopChan)
	_ = cw.watcher.Close()
}

func (cw *configWatcher) watch() {
	configFile := filepath.Join(cw.cfg.BaseDir, config.ConfigFileName)

	for {
		select {
		case <-cw.stopChan:
			return
		case event, ok := <-cw.watcher.Events:
			if !ok {
				return
			}
			if event.Name != configFile {
				continue
			}
			if event.Op&(fsnotify.Write|fsnotify.Create) == 0 {
				continue
			}
			cw.scheduleReload()
		case err, ok := <-cw.watcher.Errors:
			if !ok {
				return
			}
			slog.Error("config watcher error", "error", err)
		}
	}
}

func (cw *configWatcher) scheduleReload() {
	cw.reloadMu.Lock()
	defer cw.reloadMu.Unlock()

	if cw.reloadTimer != nil {
		cw.reloadTimer.Stop()
	}
	cw.reloadTimer = time.AfterFunc(cw.reloadDebounce, func() {
		slog.Info("config file changed, reloading")
		cw.cfg.Reload()
	})
}
