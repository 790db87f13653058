package config

import (
	"encoding/json"
	"fmt"
	"log"
	"os"
	"path/filepath"
	"strings"
	"sync"
)

// Package config provides configuration management for the Tone analysis service

// Config struct to hold all configuration data
type Config struct {
	ListenAddr         string       `json:"listen_addr"`
	FaceModelPath      string       `json:"face_model_path"`
	MaxUploadBytes     int64        `json:"max_upload_bytes"`
	ProcessMaxWidth    int          `json:"process_max_width"`
	RateLimitPerSecond float64      `json:"rate_limit_per_second"`
	RateLimitBurst     int          `json:"rate_limit_burst"`
	Tuning             TuningConfig `json:"tuning"`
}

var (
	instance     *Config
	once         sync.Once
	pathOverride string
)

// SetFilename overrides the config file location. It has no effect
// after the first call to GetConfig.
func SetFilename(path string) {
	pathOverride = path
}

// GetConfig returns the singleton instance of Config.
func GetConfig() *Config {
	once.Do(func() {
		instance = &Config{}
		// Load config from file
		if err := instance.loadFromFile(GetFilename()); err != nil {
			// Missing or unreadable config is not fatal; run on defaults.
			fmt.Println("Error loading config:", err)
			instance.setDefaultValues()
		}
	})
	return instance
}

// GetFilename returns the path to the user's config file
func GetFilename() string {
	if pathOverride != "" {
		return pathOverride
	}
	homeDir, err := os.UserHomeDir()
	if err != nil {
		log.Fatalf("Error getting user home directory: %v", err)
	}
	return filepath.Join(homeDir, "."+strings.ToLower(AppName), "config.json")
}

// GetPath returns the path to the user's config directory
func GetPath() string {
	homeDir, err := os.UserHomeDir()
	if err != nil {
		log.Fatalf("Error getting user home directory: %v", err)
	}
	return filepath.Join(homeDir, "."+strings.ToLower(AppName))
}

// loadFromFile loads configuration from the specified file
func (c *Config) loadFromFile(filename string) error {
	data, err := os.ReadFile(filename)
	if err != nil {
		return err // Return the error for handling in GetConfig()
	}

	c.setDefaultValues()
	err = json.Unmarshal(data, c)
	if err != nil {
		return err
	}

	return nil
}

// setDefaultValues sets default values for the configuration
func (c *Config) setDefaultValues() {
	c.ListenAddr = DefaultListenAddr
	c.FaceModelPath = ""
	c.MaxUploadBytes = MaxUploadBytes
	c.ProcessMaxWidth = ProcessImageMaxWidth
	c.RateLimitPerSecond = 2
	c.RateLimitBurst = 4
	c.Tuning = DefaultTuningConfig()
}

// Save saves the current configuration to the user's config file
func (c *Config) Save() {
	cfgFile := GetFilename()
	err := os.MkdirAll(filepath.Dir(cfgFile), 0700) // Ensure the directory exists
	if err != nil {
		log.Fatalf("Error creating config directory: %v", err)
	}

	data, err := json.MarshalIndent(c, "", "  ") // Use indentation for readability
	if err != nil {
		log.Fatalf("Error encoding config data: %v", err)
	}

	err = os.WriteFile(cfgFile, data, 0644) // Use appropriate file permissions
	if err != nil {
		log.Fatalf("Error writing config file: %v", err)
	}
}
