// Package seed loads the starter catalog from YAML.
package seed

import (
	"context"
	_ "embed"
	"log/slog"
	"os"

	"experience-booking/internal/domain/experience"
	"experience-booking/internal/pkg/config"
	"experience-booking/internal/pkg/errs"
	"experience-booking/internal/pkg/money"
	"experience-booking/internal/usecase/commands"

	"gopkg.in/yaml.v3"
)

//go:embed experiences.yaml
var defaultCatalog []byte

type catalogFile struct {
	Experiences []experienceRecord `yaml:"experiences"`
}

type experienceRecord struct {
	Title         string   `yaml:"title"`
	Location      string   `yaml:"location"`
	Price         string   `yaml:"price"`
	OriginalPrice string   `yaml:"originalPrice"`
	Rating        string   `yaml:"rating"`
	ReviewCount   int      `yaml:"reviewCount"`
	Duration      string   `yaml:"duration"`
	GroupSize     string   `yaml:"groupSize"`
	Category      string   `yaml:"category"`
	Image         string   `yaml:"image"`
	Featured      bool     `yaml:"featured"`
	Description   string   `yaml:"description"`
	Inclusions    []string `yaml:"inclusions"`
	Exclusions    []string `yaml:"exclusions"`
	Highlights    []string `yaml:"highlights"`
}

// Load reads the catalog at path, or the embedded catalog when path is empty.
func Load(path string) ([]experience.Details, error) {
	data := defaultCatalog
	if path != "" {
		b, err := os.ReadFile(path)
		if err != nil {
			return nil, errs.Wrapf(err, "read seed file %s", path)
		}
		data = b
	}
	return Parse(data)
}

func Parse(data []byte) ([]experience.Details, error) {
	var file catalogFile
	if err := yaml.Unmarshal(data, &file); err != nil {
		return nil, errs.Wrap(err, "parse seed yaml")
	}

	out := make([]experience.Details, 0, len(file.Experiences))
	for i, rec := range file.Experiences {
		d, err := rec.toDetails()
		if err != nil {
			return nil, errs.Wrapf(err, "experience %d (%q)", i, rec.Title)
		}
		out = append(out, d)
	}
	return out, nil
}

func (r experienceRecord) toDetails() (experience.Details, error) {
	price, err := money.Parse(r.Price)
	if err != nil {
		return experience.Details{}, errs.Wrap(err, "price")
	}
	rating, err := experience.ParseRating(r.Rating)
	if err != nil {
		return experience.Details{}, errs.Wrap(err, "rating")
	}

	d := experience.Details{
		Title:       r.Title,
		Location:    r.Location,
		Price:       price,
		Rating:      rating,
		ReviewCount: r.ReviewCount,
		Duration:    r.Duration,
		GroupSize:   r.GroupSize,
		Category:    r.Category,
		Image:       r.Image,
		Featured:    r.Featured,
		Inclusions:  r.Inclusions,
		Exclusions:  r.Exclusions,
		Highlights:  r.Highlights,
	}
	if r.OriginalPrice != "" {
		op, err := money.Parse(r.OriginalPrice)
		if err != nil {
			return experience.Details{}, errs.Wrap(err, "originalPrice")
		}
		d.OriginalPrice = &op
	}
	if r.Description != "" {
		desc := r.Description
		d.Description = &desc
	}
	return d, nil
}

// SeedCatalog inserts the configured catalog through the experience commands.
func SeedCatalog(ctx context.Context, cfg config.CatalogConfig, cmds commands.ExperienceCommands, logger *slog.Logger) error {
	if !cfg.Seed {
		logger.Info("Catalog seeding disabled")
		return nil
	}

	details, err := Load(cfg.SeedFile)
	if err != nil {
		return err
	}
	for _, d := range details {
		if _, err := cmds.Create(ctx, d); err != nil {
			return errs.Wrapf(err, "seed experience %q", d.Title)
		}
	}
	logger.Info("Catalog seeded", "experiences", len(details))
	return nil
}
