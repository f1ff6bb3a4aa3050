package repositories

import (
	"corvo-delivery/internal/domain"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"
)

type CourierSeed struct {
	Name    string `json:"name" yaml:"name"`
	Contact string `json:"contact" yaml:"contact"`
}

type DeliverySeed struct {
	ID       int    `json:"id" yaml:"id"`
	Customer string `json:"customer" yaml:"customer"`
	Status   string `json:"status" yaml:"status"`
}

type ReportSeed struct {
	Completed int            `json:"completed" yaml:"completed"`
	Pending   int            `json:"pending" yaml:"pending"`
	Details   []DeliverySeed `json:"details" yaml:"details"`
}

// FixtureSeed is the on-disk shape of a fixture.
type FixtureSeed struct {
	Couriers   []CourierSeed  `json:"couriers" yaml:"couriers"`
	Deliveries []DeliverySeed `json:"deliveries" yaml:"deliveries"`
	Report     ReportSeed     `json:"report" yaml:"report"`
}

// Read a fixture from a JSON or YAML file, chosen by extension.
func LoadSeed(path string) (domain.Fixture, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return domain.Fixture{}, fmt.Errorf("load seed: read %q: %w", path, err)
	}

	format := strings.TrimPrefix(strings.ToLower(filepath.Ext(path)), ".")
	f, err := ParseSeed(data, format)
	if err != nil {
		return domain.Fixture{}, fmt.Errorf("load seed %q: %w", path, err)
	}
	return f, nil
}

// Decode and validate a fixture. format is "json", "yaml" or "yml".
func ParseSeed(data []byte, format string) (domain.Fixture, error) {
	var seed FixtureSeed
	switch format {
	case "json":
		if err := json.Unmarshal(data, &seed); err != nil {
			return domain.Fixture{}, fmt.Errorf("parse json: %w", err)
		}
	case "yaml", "yml":
		if err := yaml.Unmarshal(data, &seed); err != nil {
			return domain.Fixture{}, fmt.Errorf("parse yaml: %w", err)
		}
	default:
		return domain.Fixture{}, fmt.Errorf("unsupported seed format %q", format)
	}

	f, err := seed.toFixture()
	if err != nil {
		return domain.Fixture{}, err
	}
	if err := f.Validate(); err != nil {
		return domain.Fixture{}, err
	}
	return f, nil
}

func (s FixtureSeed) toFixture() (domain.Fixture, error) {
	f := domain.Fixture{
		Couriers:   make([]domain.Courier, 0, len(s.Couriers)),
		Deliveries: make([]domain.Delivery, 0, len(s.Deliveries)),
		Report: domain.ReportSummary{
			Completed: s.Report.Completed,
			Pending:   s.Report.Pending,
			Details:   make([]domain.Delivery, 0, len(s.Report.Details)),
		},
	}

	for _, c := range s.Couriers {
		f.Couriers = append(f.Couriers, domain.Courier{
			Name:    strings.TrimSpace(c.Name),
			Contact: strings.TrimSpace(c.Contact),
		})
	}

	for i, d := range s.Deliveries {
		delivery, err := d.toDelivery()
		if err != nil {
			return domain.Fixture{}, fmt.Errorf("delivery at index %d: %w", i+1, err)
		}
		f.Deliveries = append(f.Deliveries, delivery)
	}

	for i, d := range s.Report.Details {
		delivery, err := d.toDelivery()
		if err != nil {
			return domain.Fixture{}, fmt.Errorf("report detail at index %d: %w", i+1, err)
		}
		f.Report.Details = append(f.Report.Details, delivery)
	}

	return f, nil
}

func (d DeliverySeed) toDelivery() (domain.Delivery, error) {
	status, err := domain.ParseDeliveryStatus(d.Status)
	if err != nil {
		return domain.Delivery{}, err
	}
	return domain.Delivery{
		ID:       d.ID,
		Customer: strings.TrimSpace(d.Customer),
		Status:   status,
	}, nil
}
