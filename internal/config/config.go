package config

import (
	"log"
	"os"
	"sync"

	"gopkg.in/yaml.v3"
)

var (
	once     sync.Once
	instance *Config
)

// UIConfig настройки интерактивного терминала
type UIConfig struct {
	Color bool `yaml:"color"`
}

// CatalogConfig указывает на необязательный JSON-каталог для начальной загрузки
type CatalogConfig struct {
	Path string `yaml:"path"`
}

// MetricsConfig настройки для экспортера метрик
type MetricsConfig struct {
	Enabled bool `yaml:"enabled"`
	Port    int  `yaml:"port"`
}

// LoggingConfig уровень и файл журнала
type LoggingConfig struct {
	Level string `yaml:"level"`
	Path  string `yaml:"path"`
}

// Config корень дерева конфигурации, строго соответствующий librarium.yaml
type Config struct {
	UI      UIConfig      `yaml:"ui"`
	Catalog CatalogConfig `yaml:"catalog"`
	Metrics MetricsConfig `yaml:"metrics"`
	Logging LoggingConfig `yaml:"logging"`
}

func defaults() *Config {
	return &Config{
		UI:      UIConfig{Color: true},
		Metrics: MetricsConfig{Enabled: false, Port: 9190},
		Logging: LoggingConfig{Level: "info"},
	}
}

// Get возвращает инициализированный объект конфигурации (Singleton).
// Отсутствующий файл не ошибка: CLI должен запускаться без конфига.
func Get() *Config {
	once.Do(func() {
		instance = defaults()

		path := os.Getenv("LIBRARIUM_CONFIG")
		if path == "" {
			path = "librarium.yaml"
		}

		f, err := os.ReadFile(path)
		if err != nil {
			return
		}
		if err := yaml.Unmarshal(f, instance); err != nil {
			log.Fatalf("[CONFIG ERROR] Failed to parse %s: %v", path, err)
		}
	})
	return instance
}
