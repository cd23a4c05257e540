package config

import (
	"github.com/fsnotify/fsnotify"

	"github.com/bnema/datagrid/internal/logging"
)

// Watch starts watching the config file for changes and reloads automatically.
func (m *Manager) Watch() error {
	m.mu.Lock()
	defer m.mu.Unlock()

	if m.watching {
		return nil
	}

	m.viper.OnConfigChange(func(e fsnotify.Event) {
		log := logging.NewFromEnv()
		log.Debug().Str("op", e.Op.String()).Str("file", e.Name).Msg("fsnotify config change detected")

		if err := m.Reload(); err != nil {
			log.Warn().Err(err).Msg("failed to reload config")
		}
	})
	m.viper.WatchConfig()

	m.watching = true
	return nil
}

// Reload re-reads the file and notifies callbacks. A file that no longer
// validates keeps the previous configuration in place.
func (m *Manager) Reload() error {
	m.mu.Lock()
	if err := m.viper.ReadInConfig(); err != nil {
		m.mu.Unlock()
		return err
	}
	if err := m.decode(); err != nil {
		m.mu.Unlock()
		return err
	}
	m.notifyCallbacksLocked()
	return nil
}

// notifyCallbacksLocked copies callbacks and config, releases lock, then notifies.
// Must be called with m.mu held for write.
func (m *Manager) notifyCallbacksLocked() {
	cfg := m.config.Clone()
	callbacks := make([]func(*Config), len(m.callbacks))
	copy(callbacks, m.callbacks)
	m.mu.Unlock()

	for _, callback := range callbacks {
		callback(cfg)
	}
}

// OnConfigChange registers a callback function to be called when config changes.
func (m *Manager) OnConfigChange(callback func(*Config)) {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.callbacks = append(m.callbacks, callback)
}
