package deadtime

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"
)

type Configuration struct {
	FileIn           string    `json:"file_in" yaml:"file_in"`
	FileOut          string    `json:"file_out" yaml:"file_out"`
	BackgroundFile   string    `json:"background_file" yaml:"background_file"`
	DeadTime         float64   `json:"dead_time" yaml:"dead_time"`
	Paralyzable      bool      `json:"paralyzable" yaml:"paralyzable"`
	DtSigma          float64   `json:"dt_sigma" yaml:"dt_sigma"`
	Seed             uint64    `json:"seed" yaml:"seed"`
	WriteDiagnostics bool      `json:"write_diagnostics" yaml:"write_diagnostics"`
	Verbosity        int       `json:"verbosity" yaml:"verbosity"`
	NoDB             bool      `json:"no_db" yaml:"no_db"`
	Host             string    `json:"host" yaml:"host"`
	User             string    `json:"user" yaml:"user"`
	Passwd           string    `json:"pass" yaml:"pass"`
	DBName           string    `json:"dbname" yaml:"dbname"`
	NumWorkers       int       `json:"num_workers" yaml:"num_workers"`
	Rate             float64   `json:"rate" yaml:"rate"`
	BackgroundRate   float64   `json:"background_rate" yaml:"background_rate"`
	Duration         float64   `json:"duration" yaml:"duration"`
	DeadTimes        []float64 `json:"dead_times" yaml:"dead_times"`
	Repetitions      int       `json:"repetitions" yaml:"repetitions"`
}

func DefaultConfiguration() Configuration {
	return Configuration{
		DeadTime:         2.5e-3,
		Paralyzable:      false,
		DtSigma:          0,
		Seed:             1,
		WriteDiagnostics: true,
		Verbosity:        0,
		NoDB:             true,
		Host:             "localhost",
		User:             "deadtime",
		Passwd:           "readonly",
		DBName:           "DEADTIME",
		NumWorkers:       1,
		Rate:             100,
		BackgroundRate:   0,
		Duration:         1000,
		DeadTimes:        []float64{1e-3, 2.5e-3, 5e-3, 1e-2},
		Repetitions:      1,
	}
}

// LoadConfiguration reads a JSON or YAML (.yaml, .yml) file on top of the
// default values.
func LoadConfiguration(filename string) (Configuration, error) {
	config := DefaultConfiguration()

	data, err := os.ReadFile(filename)
	if err != nil {
		return config, err
	}
	switch strings.ToLower(filepath.Ext(filename)) {
	case ".yaml", ".yml":
		err = yaml.Unmarshal(data, &config)
	default:
		err = json.Unmarshal(data, &config)
	}
	if err != nil {
		return config, fmt.Errorf("error decoding %s: %w", filename, err)
	}
	return config, config.Validate()
}

func (c Configuration) Validate() error {
	if c.DtSigma < 0 {
		return &ErrInvalidParameter{Name: "dt_sigma", Value: c.DtSigma}
	}
	if c.NumWorkers < 1 {
		return &ErrInvalidParameter{Name: "num_workers", Value: float64(c.NumWorkers)}
	}
	if c.Duration < 0 {
		return &ErrInvalidParameter{Name: "duration", Value: c.Duration}
	}
	if c.Repetitions < 1 {
		return &ErrInvalidParameter{Name: "repetitions", Value: float64(c.Repetitions)}
	}
	return nil
}
