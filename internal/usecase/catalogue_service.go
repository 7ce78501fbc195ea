package usecase

import (
	"context"
	"sort"

	"github.com/riskibarqy/football-tables/internal/domain/league"
)

type CatalogueLeague struct {
	Code string
	Dir  string
	Name string
	Eras []league.PointsEra
}

type CatalogueCountry struct {
	Code    string
	Dir     string
	Leagues []CatalogueLeague
}

type CatalogueOverview struct {
	Countries   []CatalogueCountry
	Corrections []league.CorrectionRule
	TieBreaks   []league.TieBreakRule
}

type CatalogueService struct {
	catalogue league.Catalogue
}

func NewCatalogueService(catalogue league.Catalogue) *CatalogueService {
	return &CatalogueService{catalogue: catalogue}
}

// Overview lists the catalogue sorted by country, league and season.
func (s *CatalogueService) Overview(ctx context.Context) CatalogueOverview {
	_, span := startUsecaseSpan(ctx, "usecase.CatalogueService.Overview")
	defer span.End()

	out := CatalogueOverview{
		Countries:   make([]CatalogueCountry, 0, len(s.catalogue.Countries)),
		Corrections: append([]league.CorrectionRule(nil), s.catalogue.Corrections...),
		TieBreaks:   append([]league.TieBreakRule(nil), s.catalogue.TieBreaks...),
	}
	for _, code := range s.catalogue.CountryCodes() {
		country := s.catalogue.Countries[code]
		item := CatalogueCountry{Code: code, Dir: country.Dir}
		for _, leagueCode := range country.LeagueCodes() {
			lg := country.Leagues[leagueCode]
			eras := append([]league.PointsEra(nil), lg.Eras...)
			sort.Slice(eras, func(i, j int) bool { return eras[i].Begin < eras[j].Begin })
			item.Leagues = append(item.Leagues, CatalogueLeague{Code: leagueCode, Dir: lg.Dir, Name: lg.Name, Eras: eras})
		}
		out.Countries = append(out.Countries, item)
	}

	sort.SliceStable(out.Corrections, func(i, j int) bool {
		return identityLess(out.Corrections[i].Identity, out.Corrections[j].Identity)
	})
	sort.SliceStable(out.TieBreaks, func(i, j int) bool {
		return identityLess(out.TieBreaks[i].Identity, out.TieBreaks[j].Identity)
	})
	return out
}

func identityLess(a, b league.Identity) bool {
	if a.Country != b.Country {
		return a.Country < b.Country
	}
	if a.League != b.League {
		return a.League < b.League
	}
	return a.Season < b.Season
}
