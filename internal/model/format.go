package model

import (
	"encoding/json"
	"os"
	"path/filepath"

	"ocrflow/pkg/serrors"

	"gopkg.in/yaml.v3"
)

// Files that make up a model artifact directory.
const (
	ConfigFileName    = "ocrmodel.yaml"
	SignatureFileName = "signature.json"
)

// FormatVersion is the artifact layout version this package writes. Loading
// rejects artifacts written by a newer layout.
const FormatVersion = 1

// Config is the persisted model description stored in ocrmodel.yaml. It
// selects the OCR engine and its tuning; everything else about inference
// behavior lives in code.
type Config struct {
	FormatVersion int               `yaml:"format_version"`
	Engine        string            `yaml:"engine"`
	Languages     []string          `yaml:"languages,omitempty"`
	JPEGQuality   int               `yaml:"jpeg_quality,omitempty"`
	Variables     map[string]string `yaml:"variables,omitempty"`
}

// Validate rejects configs that no engine factory can act on.
func (c Config) Validate() error {
	switch c.Engine {
	case EngineTesseract, EngineNoop:
	case "":
		return serrors.With(serrors.ErrInvalid, "model config does not name an engine")
	default:
		return serrors.With(serrors.ErrInvalid, "unknown ocr engine %q", c.Engine)
	}

	if c.JPEGQuality < 0 || c.JPEGQuality > 100 {
		return serrors.With(serrors.ErrInvalid, "jpeg quality %d is outside 0-100", c.JPEGQuality)
	}

	return nil
}

// Save writes a model artifact directory: ocrmodel.yaml next to
// signature.json. The directory is created if needed.
func Save(dir string, config Config, sig Signature) error {
	if err := config.Validate(); err != nil {
		return err
	}
	if err := sig.Validate(); err != nil {
		return err
	}

	if config.FormatVersion == 0 {
		config.FormatVersion = FormatVersion
	}

	if err := os.MkdirAll(dir, 0o755); err != nil {
		return serrors.Wrap(serrors.ErrInternal, err, "could not create model directory")
	}

	rawConfig, err := yaml.Marshal(config)
	if err != nil {
		return serrors.Wrap(serrors.ErrInternal, err, "could not marshal model config")
	}
	if err := os.WriteFile(filepath.Join(dir, ConfigFileName), rawConfig, 0o644); err != nil {
		return serrors.Wrap(serrors.ErrInternal, err, "could not write %s", ConfigFileName)
	}

	rawSig, err := json.MarshalIndent(sig, "", "  ")
	if err != nil {
		return serrors.Wrap(serrors.ErrInternal, err, "could not marshal model signature")
	}
	if err := os.WriteFile(filepath.Join(dir, SignatureFileName), rawSig, 0o644); err != nil {
		return serrors.Wrap(serrors.ErrInternal, err, "could not write %s", SignatureFileName)
	}

	return nil
}

// LoadConfig reads and validates ocrmodel.yaml from a model directory.
func LoadConfig(dir string) (Config, error) {
	raw, err := os.ReadFile(filepath.Join(dir, ConfigFileName))
	if err != nil {
		if os.IsNotExist(err) {
			return Config{}, serrors.Wrap(serrors.ErrNotFound, err, "%s is not a model directory", dir)
		}

		return Config{}, serrors.Wrap(serrors.ErrInternal, err, "could not read %s", ConfigFileName)
	}

	var config Config
	if err := yaml.Unmarshal(raw, &config); err != nil {
		return Config{}, serrors.Wrap(serrors.ErrInvalid, err, "could not parse %s", ConfigFileName)
	}

	if config.FormatVersion > FormatVersion {
		return Config{}, serrors.With(serrors.ErrInvalid,
			"model format version %d is newer than supported version %d", config.FormatVersion, FormatVersion)
	}
	if err := config.Validate(); err != nil {
		return Config{}, err
	}

	return config, nil
}

// LoadSignature reads and validates signature.json from a model directory.
func LoadSignature(dir string) (Signature, error) {
	raw, err := os.ReadFile(filepath.Join(dir, SignatureFileName))
	if err != nil {
		if os.IsNotExist(err) {
			return Signature{}, serrors.Wrap(serrors.ErrNotFound, err, "%s has no model signature", dir)
		}

		return Signature{}, serrors.Wrap(serrors.ErrInternal, err, "could not read %s", SignatureFileName)
	}

	var sig Signature
	if err := json.Unmarshal(raw, &sig); err != nil {
		return Signature{}, serrors.Wrap(serrors.ErrInvalid, err, "could not parse %s", SignatureFileName)
	}

	if err := sig.Validate(); err != nil {
		return Signature{}, err
	}

	return sig, nil
}
