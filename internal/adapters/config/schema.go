package config

// ChartFile represents the structure of the stellium.yaml configuration file.
// Every section is optional; a section the file leaves out keeps its default.
type ChartFile struct {
	Zodiac     string     `yaml:"zodiac"`
	Ayanamsa   string     `yaml:"ayanamsa"`
	Bodies     []string   `yaml:"bodies"`
	Houses     []string   `yaml:"houses"`
	Aspects    []string   `yaml:"aspects"`
	Orbs       *OrbsDTO   `yaml:"orbs"`
	Filter     *FilterDTO `yaml:"filter"`
	Components []string   `yaml:"components"`
	Analyzers  []string   `yaml:"analyzers"`
	Cache      *CacheDTO  `yaml:"cache"`
}

// OrbsDTO represents the orbs section: the fallback allowance, per-aspect
// defaults, and body-specific override rules.
type OrbsDTO struct {
	Default float64            `yaml:"default"`
	Aspects map[string]float64 `yaml:"aspects"`
	Rules   []OrbRuleDTO       `yaml:"rules"`
}

// OrbRuleDTO represents one orb override in the configuration. An empty
// aspect applies the rule to every aspect.
type OrbRuleDTO struct {
	Bodies []string `yaml:"bodies"`
	Aspect string   `yaml:"aspect"`
	Orb    float64  `yaml:"orb"`
}

// FilterDTO represents the aspect filter section. Pointer fields distinguish
// an absent key from an explicit false.
type FilterDTO struct {
	Points       *bool `yaml:"points"`
	Angles       *bool `yaml:"angles"`
	AngleToAngle *bool `yaml:"angle_to_angle"`
}

// CacheDTO represents the calculation cache section. MaxAge uses Go duration
// syntax, for example "720h".
type CacheDTO struct {
	Backend string `yaml:"backend"`
	Path    string `yaml:"path"`
	MaxAge  string `yaml:"max_age"`
}
