package config

import (
	"encoding/json"
	"fmt"
	"os"
	"time"
)

// StructuredJSONConfig is the on-disk JSON layout.
type StructuredJSONConfig struct {
	App struct {
		SecretKey        string   `json:"secret_key"`
		QuizAdvanceDelay Duration `json:"quiz_advance_delay"`
		LogFile          string   `json:"log_file"`
	} `json:"app,omitempty"`

	Storage struct {
		DB struct {
			DSN string `json:"dsn"`
		} `json:"db,omitempty"`
	} `json:"storage,omitempty"`

	Adapter struct {
		HTTPAddress    string   `json:"http_address"`
		RequestTimeout Duration `json:"request_timeout"`
	} `json:"adapter,omitempty"`

	Server struct {
		HTTPAddress string `json:"http_address"`
		Username    string `json:"username"`
		Password    string `json:"password"`
	} `json:"server,omitempty"`
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

	return &StructuredConfig{
		App: App{
			SecretKey:        jsonCfg.App.SecretKey,
			QuizAdvanceDelay: time.Duration(jsonCfg.App.QuizAdvanceDelay),
			LogFile:          jsonCfg.App.LogFile,
		},
		Storage: Storage{
			DB: DB{DSN: jsonCfg.Storage.DB.DSN},
		},
		Adapter: Adapter{
			HTTPAddress:    jsonCfg.Adapter.HTTPAddress,
			RequestTimeout: time.Duration(jsonCfg.Adapter.RequestTimeout),
		},
		Server: Server{
			HTTPAddress: jsonCfg.Server.HTTPAddress,
			Username:    jsonCfg.Server.Username,
			Password:    jsonCfg.Server.Password,
		},
	}, nil
}

// Duration wraps time.Duration so JSON accepts "1s"-style strings as well as
// nanosecond numbers.
type Duration time.Duration

func (d *Duration) UnmarshalJSON(b []byte) error {
	var v any
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
		return fmt.Errorf("invalid duration %s", string(b))
	}
}

func (d Duration) MarshalJSON() ([]byte, error) {
	return json.Marshal(time.Duration(d).String())
}
