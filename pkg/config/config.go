// Package config loads the YAML configuration of an ensemble scan.
package config

import (
	"context"
	"errors"
	"fmt"
	"os"

	"github.com/go-playground/validator/v10"
	"gopkg.in/yaml.v3"

	"github.com/freestylewhl/pynoddy/pkg/source"
)

var validate = validator.New()

// ScanConfig describes one ensemble scan: where the model files live, which
// models belong to the ensemble, and how to reduce them.
type ScanConfig struct {
	Source SourceConfig `yaml:"source"`

	// Models lists the model basenames in scan order. Order matters: the
	// reduction keeps the first occurrence of each unique topology.
	Models []string `yaml:"models" validate:"required,min=1,dive,required"`

	// MinVolume, when positive, prunes nodes below this voxel volume from
	// every graph before comparison.
	MinVolume int64 `yaml:"min_volume" validate:"gte=0"`

	// ProgressOutput is the path of the cumulative unique-count log; empty
	// disables it.
	ProgressOutput string `yaml:"progress_output"`

	// Workers bounds parallel model loading; 0 means sequential.
	Workers int `yaml:"workers" validate:"gte=0,lte=256"`

	LogLevel string `yaml:"log_level" validate:"omitempty,oneof=debug info warn error"`
}

// SourceConfig selects where model files are read from: exactly one of a
// local directory or an S3 location.
type SourceConfig struct {
	LocalDir string    `yaml:"local_dir"`
	S3       *S3Config `yaml:"s3"`
}

// S3Config locates an ensemble staged in object storage.
type S3Config struct {
	Bucket    string `yaml:"bucket" validate:"required"`
	Prefix    string `yaml:"prefix"`
	Region    string `yaml:"region" validate:"required"`
	Endpoint  string `yaml:"endpoint"`
	AccessKey string `yaml:"access_key"`
	SecretKey string `yaml:"secret_key"`
}

// Load reads and validates a scan configuration file.
func Load(path string) (*ScanConfig, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read config: %w", err)
	}
	return Parse(data)
}

// Parse parses and validates YAML configuration bytes.
func Parse(data []byte) (*ScanConfig, error) {
	var cfg ScanConfig
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("parse config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// Validate checks struct tags plus the cross-field source constraint.
func (c *ScanConfig) Validate() error {
	if err := validate.Struct(c); err != nil {
		var verrs validator.ValidationErrors
		if errors.As(err, &verrs) && len(verrs) > 0 {
			ve := verrs[0]
			return fmt.Errorf("config: field %s failed %q validation", ve.Namespace(), ve.Tag())
		}
		return fmt.Errorf("config: %w", err)
	}

	if (c.Source.LocalDir == "") == (c.Source.S3 == nil) {
		return errors.New("config: source requires exactly one of local_dir or s3")
	}
	return nil
}

// BuildSource constructs the model-file source the configuration selects.
func (c *ScanConfig) BuildSource(ctx context.Context) (source.Source, error) {
	if c.Source.LocalDir != "" {
		return source.NewLocalSource(c.Source.LocalDir), nil
	}
	s3cfg := c.Source.S3
	return source.NewS3Source(ctx, source.S3Params{
		Bucket:    s3cfg.Bucket,
		Prefix:    s3cfg.Prefix,
		Region:    s3cfg.Region,
		Endpoint:  s3cfg.Endpoint,
		AccessKey: s3cfg.AccessKey,
		SecretKey: s3cfg.SecretKey,
	})
}
