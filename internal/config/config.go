// Package config loads and validates the alarm-type configuration file.
package config

import (
	"errors"
	"fmt"
	"os"

	"github.com/shopspring/decimal"
	"gopkg.in/yaml.v3"
)

// AlarmType describes one contract whose alarm queue the dispatcher drains.
// All fields are read-only after Load.
type AlarmType struct {
	Name             string          `yaml:"name"`
	ContractAddress  string          `yaml:"contract_address"`
	MaxBatchSize     uint32          `yaml:"max_batch_size"`
	GasLimitPerAlarm uint64          `yaml:"gas_limit_per_alarm"`
	GasPrice         decimal.Decimal `yaml:"-"`
	Enabled          bool            `yaml:"enabled"`
}

type alarmTypeYAML struct {
	Name             string `yaml:"name"`
	ContractAddress  string `yaml:"contract_address"`
	MaxBatchSize     uint32 `yaml:"max_batch_size"`
	GasLimitPerAlarm uint64 `yaml:"gas_limit_per_alarm"`
	GasPrice         string `yaml:"gas_price"`
	Enabled          *bool  `yaml:"enabled"`
}

type fileYAML struct {
	AlarmTypes []alarmTypeYAML `yaml:"alarm_types"`
}

// Load reads the YAML alarm-type list from path.
func Load(path string) ([]AlarmType, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read alarms config: %w", err)
	}
	return Parse(raw)
}

// Parse decodes and validates the YAML alarm-type list.
func Parse(raw []byte) ([]AlarmType, error) {
	var file fileYAML
	if err := yaml.Unmarshal(raw, &file); err != nil {
		return nil, fmt.Errorf("parse alarms config: %w", err)
	}
	if len(file.AlarmTypes) == 0 {
		return nil, errors.New("alarms config declares no alarm types")
	}

	alarms := make([]AlarmType, 0, len(file.AlarmTypes))
	for i, a := range file.AlarmTypes {
		alarm, err := a.validate()
		if err != nil {
			return nil, fmt.Errorf("alarm type %d (%q): %w", i, a.Name, err)
		}
		alarms = append(alarms, alarm)
	}
	return alarms, nil
}

func (a alarmTypeYAML) validate() (AlarmType, error) {
	if a.Name == "" {
		return AlarmType{}, errors.New("name is required")
	}
	if a.ContractAddress == "" {
		return AlarmType{}, errors.New("contract_address is required")
	}
	if a.MaxBatchSize == 0 {
		return AlarmType{}, errors.New("max_batch_size must be positive")
	}
	if a.GasLimitPerAlarm == 0 {
		return AlarmType{}, errors.New("gas_limit_per_alarm must be positive")
	}

	gasPrice := decimal.NewFromInt(1)
	if a.GasPrice != "" {
		parsed, err := decimal.NewFromString(a.GasPrice)
		if err != nil {
			return AlarmType{}, fmt.Errorf("gas_price must be a decimal: %w", err)
		}
		if parsed.IsNegative() || parsed.IsZero() {
			return AlarmType{}, fmt.Errorf("gas_price must be positive, got %s", parsed)
		}
		gasPrice = parsed
	}

	// Alarm types default to enabled; reserved types are kept in the
	// config file with enabled: false.
	enabled := true
	if a.Enabled != nil {
		enabled = *a.Enabled
	}

	return AlarmType{
		Name:             a.Name,
		ContractAddress:  a.ContractAddress,
		MaxBatchSize:     a.MaxBatchSize,
		GasLimitPerAlarm: a.GasLimitPerAlarm,
		GasPrice:         gasPrice,
		Enabled:          enabled,
	}, nil
}
