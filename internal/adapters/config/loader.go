// Package config provides the chart configuration loader for stellium.
package config

import (
	"fmt"
	"os"
	"path/filepath"
	"slices"
	"time"

	"go.stellium.dev/stellium/internal/core/domain"
	"go.stellium.dev/stellium/internal/core/ports"
	"go.trai.ch/zerr"
	"gopkg.in/yaml.v3"
)

// Loader implements ports.ConfigLoader using a YAML file.
type Loader struct {
	Logger ports.Logger
}

// NewLoader creates a new Loader with the given logger.
func NewLoader(logger ports.Logger) *Loader {
	return &Loader{Logger: logger}
}

var _ ports.ConfigLoader = (*Loader)(nil)

// Load builds the configuration for cwd. It reads the nearest stellium.yaml
// on the upward path and merges it over the defaults; without a file the
// defaults apply unchanged.
func (l *Loader) Load(cwd string) (domain.ChartConfig, error) {
	cfg := domain.DefaultConfig()

	configPath, err := l.DiscoverConfigPath(cwd)
	if err != nil {
		return domain.ChartConfig{}, err
	}
	if configPath == "" {
		return cfg, nil
	}

	var file ChartFile
	if err := readAndUnmarshalYAML(configPath, &file); err != nil {
		return domain.ChartConfig{}, zerr.With(err, "file", configPath)
	}

	if err := l.apply(&cfg, &file); err != nil {
		err = zerr.Wrap(err, domain.ErrConfigInvalid.Error())
		return domain.ChartConfig{}, zerr.With(err, "file", configPath)
	}

	return cfg, nil
}

// DiscoverConfigPath returns the nearest stellium.yaml at or above cwd, or
// the empty string when none exists.
func (l *Loader) DiscoverConfigPath(cwd string) (string, error) {
	currentDir := cwd
	for {
		candidate := filepath.Join(currentDir, domain.ConfigFileName)
		if _, err := os.Stat(candidate); err == nil {
			return candidate, nil
		}

		parentDir := filepath.Dir(currentDir)
		if parentDir == currentDir {
			// Reached root
			return "", nil
		}
		currentDir = parentDir
	}
}

func (l *Loader) apply(cfg *domain.ChartConfig, file *ChartFile) error {
	if err := l.applyOptions(cfg, file); err != nil {
		return err
	}
	if err := applyLists(cfg, file); err != nil {
		return err
	}
	// Orbs come after the aspect list so no-effect warnings see the final
	// set of enabled aspects.
	if err := l.applyOrbs(cfg, file.Orbs); err != nil {
		return err
	}
	applyFilter(cfg, file.Filter)
	return applyCache(cfg, file.Cache)
}

func (l *Loader) applyOptions(cfg *domain.ChartConfig, file *ChartFile) error {
	if file.Zodiac != "" {
		zodiac, err := domain.ParseZodiac(file.Zodiac)
		if err != nil {
			return err
		}
		cfg.Options.Zodiac = zodiac
	}

	if file.Ayanamsa != "" {
		ayanamsa, err := domain.ParseAyanamsa(file.Ayanamsa)
		if err != nil {
			return err
		}
		cfg.Options.Ayanamsa = ayanamsa

		if cfg.Options.Zodiac == domain.ZodiacTropical {
			l.Logger.Warn("'ayanamsa' has no effect with the tropical zodiac")
		}
	}

	return nil
}

func applyLists(cfg *domain.ChartConfig, file *ChartFile) error {
	if file.Bodies != nil {
		bodies, err := parseNames(file.Bodies, domain.ParseBody)
		if err != nil {
			return err
		}
		cfg.Bodies = bodies
	}

	if file.Houses != nil {
		systems, err := parseNames(file.Houses, domain.ParseHouseSystem)
		if err != nil {
			return err
		}
		cfg.HouseSystems = systems
	}

	if file.Aspects != nil {
		aspects, err := parseNames(file.Aspects, domain.ParseAspectName)
		if err != nil {
			return err
		}
		cfg.Aspects = aspects
	}

	// Component and analyzer names stay as strings; the pipeline registry
	// resolves them and downgrades unknown names to warnings.
	if file.Components != nil {
		cfg.Components = slices.Clone(file.Components)
	}
	if file.Analyzers != nil {
		cfg.Analyzers = slices.Clone(file.Analyzers)
	}

	return nil
}

func (l *Loader) applyOrbs(cfg *domain.ChartConfig, dto *OrbsDTO) error {
	if dto == nil {
		return nil
	}

	if dto.Default != 0 {
		if dto.Default < 0 {
			return zerr.With(domain.ErrInvalidOrb, "orb", dto.Default)
		}
		cfg.DefaultOrb = dto.Default
	}

	if dto.Aspects != nil {
		orbs, err := l.parseAspectOrbs(cfg.Aspects, dto.Aspects)
		if err != nil {
			return err
		}
		cfg.AspectOrbs = orbs
	}

	if dto.Rules != nil {
		rules := make([]domain.OrbRule, 0, len(dto.Rules))
		for i, ruleDTO := range dto.Rules {
			rule, err := l.parseOrbRule(ruleDTO)
			if err != nil {
				return zerr.With(err, "rule", i)
			}
			rules = append(rules, rule)
		}
		cfg.OrbRules = rules
	}

	return nil
}

func (l *Loader) parseAspectOrbs(enabled []domain.AspectName, raw map[string]float64) (map[domain.AspectName]float64, error) {
	// Map iteration order is random, so we sort the names to keep warnings
	// and first-error selection stable.
	names := make([]string, 0, len(raw))
	for name := range raw {
		names = append(names, name)
	}
	slices.Sort(names)

	orbs := make(map[domain.AspectName]float64, len(raw))
	for _, name := range names {
		aspect, err := domain.ParseAspectName(name)
		if err != nil {
			return nil, err
		}
		orb := raw[name]
		if orb < 0 {
			return nil, zerr.With(zerr.With(domain.ErrInvalidOrb, "aspect", name), "orb", orb)
		}
		if !slices.Contains(enabled, aspect) {
			l.Logger.Warn(fmt.Sprintf("orb for '%s' has no effect: aspect is not enabled", name))
		}
		orbs[aspect] = orb
	}

	return orbs, nil
}

func (l *Loader) parseOrbRule(dto OrbRuleDTO) (domain.OrbRule, error) {
	if len(dto.Bodies) == 0 || len(dto.Bodies) > 2 {
		return domain.OrbRule{}, zerr.With(domain.ErrInvalidOrbRule, "bodies", len(dto.Bodies))
	}
	if dto.Orb < 0 {
		return domain.OrbRule{}, zerr.With(domain.ErrInvalidOrb, "orb", dto.Orb)
	}

	rule := domain.OrbRule{Orb: dto.Orb}
	for _, name := range dto.Bodies {
		body, err := domain.ParseBody(name)
		if err != nil {
			return domain.OrbRule{}, err
		}
		rule.Bodies = append(rule.Bodies, body)
	}

	if len(rule.Bodies) == 2 && rule.Bodies[0] == rule.Bodies[1] {
		l.Logger.Warn(fmt.Sprintf("orb rule pairs '%s' with itself and can never match", dto.Bodies[0]))
	}

	if dto.Aspect != "" {
		aspect, err := domain.ParseAspectName(dto.Aspect)
		if err != nil {
			return domain.OrbRule{}, err
		}
		rule.Aspect = aspect
		rule.HasAspect = true
	}

	return rule, nil
}

func applyFilter(cfg *domain.ChartConfig, dto *FilterDTO) {
	if dto == nil {
		return
	}
	if dto.Points != nil {
		cfg.Filter.IncludePoints = *dto.Points
	}
	if dto.Angles != nil {
		cfg.Filter.IncludeAngles = *dto.Angles
	}
	if dto.AngleToAngle != nil {
		cfg.Filter.AngleToAngle = *dto.AngleToAngle
	}
}

func applyCache(cfg *domain.ChartConfig, dto *CacheDTO) error {
	if dto == nil {
		return nil
	}

	if dto.Backend != "" {
		backend, err := domain.ParseCacheBackend(dto.Backend)
		if err != nil {
			return err
		}
		cfg.Cache.Backend = backend
	}

	if dto.Path != "" {
		cfg.Cache.Path = dto.Path
	}

	if dto.MaxAge != "" {
		maxAge, err := time.ParseDuration(dto.MaxAge)
		if err != nil || maxAge < 0 {
			return zerr.With(domain.ErrInvalidMaxAge, "max_age", dto.MaxAge)
		}
		cfg.Cache.MaxAge = maxAge
	}

	return nil
}

// parseNames resolves a list of configuration names through parse, rejecting
// unknown names and dropping duplicates while keeping first-occurrence order.
func parseNames[T comparable](names []string, parse func(string) (T, error)) ([]T, error) {
	out := make([]T, 0, len(names))
	seen := make(map[T]bool, len(names))
	for _, name := range names {
		v, err := parse(name)
		if err != nil {
			return nil, err
		}
		if seen[v] {
			continue
		}
		seen[v] = true
		out = append(out, v)
	}
	return out, nil
}

// readAndUnmarshalYAML reads a YAML file and unmarshals it into the target struct.
func readAndUnmarshalYAML[T any](configPath string, target *T) error {
	// #nosec G304 -- configPath comes from the upward search, not user input
	configFile, err := os.ReadFile(configPath)
	if err != nil {
		return zerr.Wrap(err, domain.ErrConfigReadFailed.Error())
	}

	if parseErr := yaml.Unmarshal(configFile, target); parseErr != nil {
		return zerr.Wrap(parseErr, domain.ErrConfigParseFailed.Error())
	}

	return nil
}
