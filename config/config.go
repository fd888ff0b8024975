// Package config loads the immutable run configuration from YAML.
//
// A Config starts from Default, is overlaid with a YAML document and is then
// validated with struct tags. Accessors turn it into component options; the
// Config itself never changes after Load returns.
package config

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"
	"reflect"
	"strings"

	"github.com/go-playground/validator/v10"
	"gopkg.in/yaml.v3"

	"github.com/katalvlaran/phonalign"
)

// ErrInvalid wraps every decoding and validation failure.
var ErrInvalid = fmt.Errorf("config: invalid configuration: %w", phonalign.ErrConfiguration)

// Config is the full run configuration.
type Config struct {
	LogLevel string `yaml:"log_level" validate:"oneof=debug info warn error"`

	// Environment selects the logger encoding: production (JSON) or development.
	Environment string `yaml:"environment" validate:"oneof=production development"`

	// Workers bounds parallel pairwise work; 0 means GOMAXPROCS.
	Workers int `yaml:"workers" validate:"gte=0"`

	Scoring  Scoring  `yaml:"scoring"`
	Pairwise Pairwise `yaml:"pairwise"`
	Distance Distance `yaml:"distance"`
	MSA      MSA      `yaml:"msa"`
	Tree     Tree     `yaml:"tree"`
	Link     Link     `yaml:"linkcomm"`
}

// Scoring selects the Scorer.
type Scoring struct {
	Model      string   `yaml:"model" validate:"oneof=identity sca matrix"`
	Match      float64  `yaml:"match"`
	Mismatch   float64  `yaml:"mismatch"`
	GapOpen    *float64 `yaml:"gap_open" validate:"omitempty,lte=0"`
	GapExtend  *float64 `yaml:"gap_extend" validate:"omitempty,lte=0"`
	MatrixFile string   `yaml:"matrix_file" validate:"required_if=Model matrix"`
}

// Pairwise configures pairwise alignment and its distance.
type Pairwise struct {
	Mode          string `yaml:"mode" validate:"oneof=global local overlap semi-global"`
	Normalization string `yaml:"normalization" validate:"oneof=longer mean"`
}

// Distance configures distance matrices.
type Distance struct {
	Metric string `yaml:"metric" validate:"oneof=alignment edit hamming"`
}

// MSA configures multiple alignment.
type MSA struct {
	Mode             string  `yaml:"mode" validate:"oneof=progressive library"`
	GuideMethod      string  `yaml:"guide_method" validate:"oneof=upgma nj"`
	LibraryWeight    float64 `yaml:"library_weight" validate:"gte=0"`
	LibraryExtension bool    `yaml:"library_extension"`
	Refine           bool    `yaml:"refine"`
	Iterations       int     `yaml:"iterations" validate:"gte=0"`
	Seed             int64   `yaml:"seed"`
}

// Tree configures tree building and flat clustering.
type Tree struct {
	Method    string  `yaml:"method" validate:"oneof=upgma nj"`
	Linkage   string  `yaml:"linkage" validate:"oneof=average single complete"`
	Threshold float64 `yaml:"threshold" validate:"gte=0"`
}

// Link configures link clustering. A nil Threshold merges to the end.
// MatrixCut selects the pairs kept when the graph comes from a distance
// matrix.
type Link struct {
	Threshold *float64 `yaml:"threshold" validate:"omitempty,gte=0"`
	Tanimoto  bool     `yaml:"tanimoto"`
	MatrixCut float64  `yaml:"matrix_cut" validate:"gte=0"`
}

// Default returns the documented defaults.
func Default() Config {
	return Config{
		LogLevel:    "info",
		Environment: "production",
		Scoring: Scoring{
			Model:    "sca",
			Match:    1,
			Mismatch: -1,
		},
		Pairwise: Pairwise{Mode: "global", Normalization: "longer"},
		Distance: Distance{Metric: "alignment"},
		MSA: MSA{
			Mode:          "progressive",
			GuideMethod:   "upgma",
			LibraryWeight: 1,
			Iterations:    100,
		},
		Tree: Tree{Method: "upgma", Linkage: "average", Threshold: 0.5},
		Link: Link{MatrixCut: 0.5},
	}
}

// Load reads and validates the YAML file at path. An empty path returns
// Default.
func Load(path string) (Config, error) {
	if path == "" {
		cfg := Default()
		return cfg, cfg.Validate()
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return Config{}, fmt.Errorf("config: read %s: %w", path, err)
	}

	return Parse(bytes.NewReader(data))
}

// Parse decodes a YAML document over Default and validates it. Unknown keys
// are rejected.
func Parse(r io.Reader) (Config, error) {
	cfg := Default()
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)
	if err := dec.Decode(&cfg); err != nil && !errors.Is(err, io.EOF) {
		return Config{}, fmt.Errorf("%w: decode: %w", ErrInvalid, err)
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}

	return cfg, nil
}

var validate = newValidator()

func newValidator() *validator.Validate {
	v := validator.New()
	v.RegisterTagNameFunc(func(f reflect.StructField) string {
		name := strings.SplitN(f.Tag.Get("yaml"), ",", 2)[0]
		if name == "-" {
			return ""
		}

		return name
	})

	return v
}

// Validate checks every field and reports all failures at once.
func (c Config) Validate() error {
	err := validate.Struct(c)
	if err == nil {
		return nil
	}
	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		return fmt.Errorf("%w: %w", ErrInvalid, err)
	}
	msgs := make([]string, 0, len(verrs))
	for _, fe := range verrs {
		msgs = append(msgs, formatFieldError(fe))
	}

	return fmt.Errorf("%w: %s", ErrInvalid, strings.Join(msgs, "; "))
}

func formatFieldError(fe validator.FieldError) string {
	// Namespace is "Config.scoring.gap_open"; drop the root.
	field := fe.Namespace()
	if i := strings.IndexByte(field, '.'); i >= 0 {
		field = field[i+1:]
	}

	switch fe.Tag() {
	case "required_if":
		return fmt.Sprintf("%s is required when %s", field, fe.Param())
	case "oneof":
		return fmt.Sprintf("%s must be one of: %s", field, fe.Param())
	case "gte":
		return fmt.Sprintf("%s must be >= %s", field, fe.Param())
	case "lte":
		return fmt.Sprintf("%s must be <= %s", field, fe.Param())
	default:
		return fmt.Sprintf("%s is invalid", field)
	}
}
