package advisor

// NeverRecommend scores a move that must not be suggested. It sits far below
// any score a real move can reach.
const NeverRecommend = -1e9

// Weights are the constants the scoring functions are parameterised by. The
// zero value is not useful; start from DefaultWeights.
type Weights struct {
	EarlyTurns int     `yaml:"early_turns" toml:"early_turns"`
	EarlyBonus float64 `yaml:"early_bonus" toml:"early_bonus"`

	Resource ResourceWeights `yaml:"resource" toml:"resource"`
	Token    TokenWeights    `yaml:"token" toml:"token"`
	Building BuildingWeights `yaml:"building" toml:"building"`
	Roles    RoleWeights     `yaml:"roles" toml:"roles"`

	PreferenceWeight float64 `yaml:"preference_weight" toml:"preference_weight"`
}

type ResourceWeights struct {
	MatchStrong float64 `yaml:"match_strong" toml:"match_strong"`
	MatchWeak   float64 `yaml:"match_weak" toml:"match_weak"`
	Diversify   float64 `yaml:"diversify" toml:"diversify"`
	Deny        float64 `yaml:"deny" toml:"deny"`
}

type TokenWeights struct {
	Base    float64 `yaml:"base" toml:"base"`
	First   float64 `yaml:"first" toml:"first"`
	Second  float64 `yaml:"second" toml:"second"`
	Penalty float64 `yaml:"penalty" toml:"penalty"`
}

type BuildingWeights struct {
	HeldBonus     float64 `yaml:"held_bonus" toml:"held_bonus"`
	HeldStep      float64 `yaml:"held_step" toml:"held_step"`
	StartBonus    float64 `yaml:"start_bonus" toml:"start_bonus"`
	MarketBonus   float64 `yaml:"market_bonus" toml:"market_bonus"`
	MarketTypes   int     `yaml:"market_types" toml:"market_types"`
	ColonistBonus float64 `yaml:"colonist_bonus" toml:"colonist_bonus"`
	TokenValue    float64 `yaml:"token_value" toml:"token_value"`
	CostPenalty   float64 `yaml:"cost_penalty" toml:"cost_penalty"`
	NoBuildScore  float64 `yaml:"no_build_score" toml:"no_build_score"`
}

type RoleWeights struct {
	Prospector  float64 `yaml:"prospector" toml:"prospector"`
	Craftsman   float64 `yaml:"craftsman" toml:"craftsman"`
	Mayor       float64 `yaml:"mayor" toml:"mayor"`
	Trader      float64 `yaml:"trader" toml:"trader"`
	Captain     float64 `yaml:"captain" toml:"captain"`
	ActiveBonus float64 `yaml:"active_bonus" toml:"active_bonus"`
}

// DefaultWeights returns the opening-game tuning.
func DefaultWeights() Weights {
	return Weights{
		EarlyTurns: 2,
		EarlyBonus: 1.0,
		Resource: ResourceWeights{
			MatchStrong: 3.0,
			MatchWeak:   1.0,
			Diversify:   1.0,
			Deny:        1.5,
		},
		Token: TokenWeights{
			Base:    4.0,
			First:   2.0,
			Second:  1.0,
			Penalty: 1.5,
		},
		Building: BuildingWeights{
			HeldBonus:     3.0,
			HeldStep:      1.0,
			StartBonus:    1.5,
			MarketBonus:   2.0,
			MarketTypes:   2,
			ColonistBonus: 1.5,
			TokenValue:    0.5,
			CostPenalty:   0.4,
			NoBuildScore:  0.25,
		},
		Roles: RoleWeights{
			Prospector:  2.0,
			Craftsman:   1.8,
			Mayor:       1.5,
			Trader:      1.2,
			Captain:     1.0,
			ActiveBonus: 1.0,
		},
		PreferenceWeight: 0.5,
	}
}
