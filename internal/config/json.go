// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"encoding/json"
	"fmt"
	"os"
	"time"
)

// StructuredJSONConfig is the on-disk shape of the JSON config file.
type StructuredJSONConfig struct {
	App struct {
		PasswordHasher  string `json:"password_hasher"`
		PasswordHashKey string `json:"password_hash_key"`
		Version         string `json:"version"`
	} `json:"app,omitempty"`

	Storage struct {
		DB struct {
			DSN string `json:"dsn"`
		} `json:"db,omitempty"`

		Quota struct {
			LimitBytes int64 `json:"limit_bytes"`
		} `json:"quota,omitempty"`
	} `json:"storage,omitempty"`

	Workers struct {
		AutosaveDelay Duration `json:"autosave_delay"`
	} `json:"workers,omitempty"`

	Log struct {
		Path string `json:"path"`
	} `json:"log,omitempty"`
}

func parseJSON(jsonFilePath string) (*StructuredConfig, error) {
	jsonFile, err := os.Open(jsonFilePath)
	if err != nil {
		return nil, fmt.Errorf("error reading a json file: %w", err)
	}
	defer jsonFile.Close()

	var jsonCfg StructuredJSONConfig
	if err := json.NewDecoder(jsonFile).Decode(&jsonCfg); err != nil {
		return nil, fmt.Errorf("error decoding json configs: %w", err)
	}

	cfg := &StructuredConfig{
		App: App{
			PasswordHasher:  jsonCfg.App.PasswordHasher,
			PasswordHashKey: jsonCfg.App.PasswordHashKey,
			Version:         jsonCfg.App.Version,
		},
		Storage: Storage{
			DB:    DB{DSN: jsonCfg.Storage.DB.DSN},
			Quota: Quota{LimitBytes: jsonCfg.Storage.Quota.LimitBytes},
		},
		Workers: Workers{AutosaveDelay: time.Duration(jsonCfg.Workers.AutosaveDelay)},
		Log:     Log{Path: jsonCfg.Log.Path},
	}

	return cfg, nil
}

// Duration is a wrapper around time.Duration that supports JSON unmarshaling from strings like "1h", "30s"
type Duration time.Duration

func (d *Duration) UnmarshalJSON(b []byte) error {
	var v interface{}
	if err := json.Unmarshal(b, &v); err != nil {
		return err
	}

	switch value := v.(type) {
	case float64:
		*d = Duration(time.Duration(value))
		return nil
	case string:
		tmp, err := time.ParseDuration(value)
		if err != nil {
			return err
		}
		*d = Duration(tmp)
		return nil
	default:
		return json.Unmarshal(b, (*time.Duration)(d))
	}
}

func (d Duration) MarshalJSON() ([]byte, error) {
	return json.Marshal(time.Duration(d).String())
}
