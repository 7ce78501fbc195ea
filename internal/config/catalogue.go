package config

import (
	"fmt"
	"os"

	"github.com/go-playground/validator/v10"
	"github.com/riskibarqy/football-tables/internal/domain/league"
	"gopkg.in/yaml.v3"
)

type catalogueFile struct {
	Countries   map[string]countryEntry `yaml:"countries" validate:"required,min=1,dive,keys,required,endkeys"`
	Corrections []correctionEntry       `yaml:"corrections" validate:"dive"`
	TieBreaks   []tieBreakEntry         `yaml:"tiebreaks" validate:"dive"`
}

type countryEntry struct {
	Dir     string                 `yaml:"dir" validate:"required"`
	Leagues map[string]leagueEntry `yaml:"leagues" validate:"required,min=1,dive,keys,required,endkeys"`
}

type leagueEntry struct {
	Dir    string     `yaml:"dir" validate:"required"`
	Name   string     `yaml:"name" validate:"required"`
	Points []eraEntry `yaml:"points" validate:"required,min=1,dive"`
}

type eraEntry struct {
	Begin  int `yaml:"begin" validate:"required,min=1800,max=9999"`
	End    int `yaml:"end" validate:"required,gtefield=Begin,max=9999"`
	Points int `yaml:"win" validate:"required,min=1"`
}

// SeasonKey is the country/league/season triple shared by season scoped entries.
type SeasonKey struct {
	Country string `yaml:"country" validate:"required"`
	League  string `yaml:"league" validate:"required"`
	Season  int    `yaml:"season" validate:"required,min=1800,max=9999"`
}

type correctionEntry struct {
	SeasonKey `yaml:",inline"`
	Team      string `yaml:"team" validate:"required"`
	Points    int    `yaml:"points" validate:"required"`
}

type tieBreakEntry struct {
	SeasonKey `yaml:",inline"`
	Rule      string `yaml:"rule" validate:"required,oneof=goals-for"`
}

// LoadCatalogue reads and validates the league catalogue YAML file.
func LoadCatalogue(path string) (league.Catalogue, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return league.Catalogue{}, fmt.Errorf("read catalogue %s: %w", path, err)
	}
	return ParseCatalogue(raw)
}

// ParseCatalogue decodes catalogue YAML into the domain catalogue.
func ParseCatalogue(raw []byte) (league.Catalogue, error) {
	var file catalogueFile
	if err := yaml.Unmarshal(raw, &file); err != nil {
		return league.Catalogue{}, fmt.Errorf("decode catalogue: %w", err)
	}
	if err := validator.New().Struct(file); err != nil {
		return league.Catalogue{}, fmt.Errorf("validate catalogue: %w", err)
	}

	out := league.Catalogue{
		Countries: make(map[string]league.Country, len(file.Countries)),
	}
	for code, c := range file.Countries {
		country := league.Country{
			Code:    code,
			Dir:     c.Dir,
			Leagues: make(map[string]league.League, len(c.Leagues)),
		}
		for leagueCode, l := range c.Leagues {
			lg := league.League{Code: leagueCode, Dir: l.Dir, Name: l.Name}
			for _, era := range l.Points {
				lg.Eras = append(lg.Eras, league.PointsEra{Begin: era.Begin, End: era.End, Points: era.Points})
			}
			if err := lg.ValidateEras(); err != nil {
				return league.Catalogue{}, fmt.Errorf("validate catalogue: country=%s: %w", code, err)
			}
			country.Leagues[leagueCode] = lg
		}
		out.Countries[code] = country
	}

	for _, c := range file.Corrections {
		id := c.identity()
		if _, err := out.Resolve(id.Country, id.League, id.Season); err != nil {
			return league.Catalogue{}, fmt.Errorf("validate catalogue: correction: %w", err)
		}
		out.Corrections = append(out.Corrections, league.CorrectionRule{Identity: id, Team: c.Team, PointsDelta: c.Points})
	}
	for _, tb := range file.TieBreaks {
		id := tb.identity()
		if _, err := out.Resolve(id.Country, id.League, id.Season); err != nil {
			return league.Catalogue{}, fmt.Errorf("validate catalogue: tie-break: %w", err)
		}
		out.TieBreaks = append(out.TieBreaks, league.TieBreakRule{Identity: id, Rule: tb.Rule})
	}

	return out, nil
}

func (k SeasonKey) identity() league.Identity {
	return league.Identity{Country: k.Country, League: k.League, Season: k.Season}
}
