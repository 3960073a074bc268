package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"sync/atomic"
	"time"

	"github.com/fsnotify/fsnotify"
	"gopkg.in/yaml.v3"
)

// tuningFile mirrors the optional YAML override file. Absent sections
// leave the compiled defaults untouched.
type tuningFile struct {
	Player  *PlayerConfig  `yaml:"player"`
	Enemy   *EnemyConfig   `yaml:"enemy"`
	Combat  *CombatConfig  `yaml:"combat"`
	Session *SessionConfig `yaml:"session"`
}

// LoadTuning applies overrides from a YAML file on top of the current
// values. A missing file is not an error.
func LoadTuning(path string) error {
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil
		}
		return fmt.Errorf("read tuning file: %w", err)
	}

	// Unmarshal over copies of the live values so fields absent from
	// the file keep their current settings.
	player, enemy, combat, session := Player, Enemy, Combat, Session
	tf := tuningFile{Player: &player, Enemy: &enemy, Combat: &combat, Session: &session}
	if err := yaml.Unmarshal(data, &tf); err != nil {
		return fmt.Errorf("parse tuning file %s: %w", path, err)
	}

	Player, Enemy, Combat, Session = player, enemy, combat, session
	return nil
}

var tuningDirty atomic.Bool

// WatchTuning watches the tuning file's directory and flags a reload
// whenever the file changes. The returned func stops the watcher.
func WatchTuning(path string) (func(), error) {
	w, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, err
	}
	if err := w.Add(filepath.Dir(path)); err != nil {
		_ = w.Close()
		return nil, err
	}

	name := filepath.Base(path)
	go func() {
		last := time.Time{}
		for {
			select {
			case event, ok := <-w.Events:
				if !ok {
					return
				}
				if event.Op&(fsnotify.Write|fsnotify.Create|fsnotify.Rename) == 0 {
					continue
				}
				if !strings.EqualFold(filepath.Base(event.Name), name) {
					continue
				}
				// Editors fire bursts of events per save.
				now := time.Now()
				if now.Sub(last) < 100*time.Millisecond {
					continue
				}
				last = now
				tuningDirty.Store(true)
			case _, ok := <-w.Errors:
				if !ok {
					return
				}
			}
		}
	}()

	return func() { _ = w.Close() }, nil
}

// ReloadTuningIfChanged re-reads the tuning file when the watcher has
// flagged a change. Called from the game loop so all mutation of the
// config globals stays on one goroutine.
func ReloadTuningIfChanged(path string) error {
	if !tuningDirty.CompareAndSwap(true, false) {
		return nil
	}
	return LoadTuning(path)
}
