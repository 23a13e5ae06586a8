package config

import (
	"encoding/json"
	"fmt"
	"os"
	"time"
)

// StructuredJSONConfig mirrors [StructuredConfig] with JSON tags. Durations
// accept either Go duration strings ("5s") or nanosecond numbers.
type StructuredJSONConfig struct {
	App struct {
		APIKey   string `json:"api_key"`
		Version  string `json:"version"`
		LogLevel string `json:"log_level"`
	} `json:"app,omitempty"`

	Storage struct {
		Backend string `json:"backend"`

		Files struct {
			UploadDir string `json:"upload_dir"`
			SharedDir string `json:"shared_dir"`
		} `json:"files,omitempty"`

		S3 struct {
			Endpoint     string `json:"endpoint"`
			AccessKey    string `json:"access_key"`
			SecretKey    string `json:"secret_key"`
			UploadBucket string `json:"upload_bucket"`
			SharedBucket string `json:"shared_bucket"`
		} `json:"s3,omitempty"`
	} `json:"storage,omitempty"`

	Server struct {
		HTTPAddress       string   `json:"http_address"`
		ReadHeaderTimeout Duration `json:"read_header_timeout"`
	} `json:"server,omitempty"`

	Upload struct {
		AllowedExtensions []string `json:"allowed_extensions"`
		AllowUnsafeNames  bool     `json:"allow_unsafe_names"`
		SerializeWrites   bool     `json:"serialize_writes"`
	} `json:"upload,omitempty"`

	Adapter struct {
		HTTPAddress    string   `json:"http_address"`
		RequestTimeout Duration `json:"request_timeout"`
	} `json:"adapter,omitempty"`
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
			APIKey:   jsonCfg.App.APIKey,
			Version:  jsonCfg.App.Version,
			LogLevel: jsonCfg.App.LogLevel,
		},
		Storage: Storage{
			Backend: jsonCfg.Storage.Backend,
			Files: Files{
				UploadDir: jsonCfg.Storage.Files.UploadDir,
				SharedDir: jsonCfg.Storage.Files.SharedDir,
			},
			S3: S3{
				Endpoint:     jsonCfg.Storage.S3.Endpoint,
				AccessKey:    jsonCfg.Storage.S3.AccessKey,
				SecretKey:    jsonCfg.Storage.S3.SecretKey,
				UploadBucket: jsonCfg.Storage.S3.UploadBucket,
				SharedBucket: jsonCfg.Storage.S3.SharedBucket,
			},
		},
		Server: Server{
			HTTPAddress:       jsonCfg.Server.HTTPAddress,
			ReadHeaderTimeout: time.Duration(jsonCfg.Server.ReadHeaderTimeout),
		},
		Upload: Upload{
			AllowedExtensions: jsonCfg.Upload.AllowedExtensions,
			AllowUnsafeNames:  jsonCfg.Upload.AllowUnsafeNames,
			SerializeWrites:   jsonCfg.Upload.SerializeWrites,
		},
		Adapter: Adapter{
			HTTPAddress:    jsonCfg.Adapter.HTTPAddress,
			RequestTimeout: time.Duration(jsonCfg.Adapter.RequestTimeout),
		},
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
