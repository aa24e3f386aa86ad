package layout

// Config tunes placement and motion. All distances are logical pixels; all
// rates are per frame.
type Config struct {
	MinDistance       float64 `toml:"min_distance"`
	Margin            float64 `toml:"margin"`
	Cluster           bool    `toml:"cluster"`
	ClusterMin        float64 `toml:"cluster_min"`
	ClusterMax        float64 `toml:"cluster_max"`
	PlacementAttempts int     `toml:"placement_attempts"`

	IdleLerp     float64 `toml:"idle_lerp"`
	SentenceLerp float64 `toml:"sentence_lerp"`
	AmplitudeMin float64 `toml:"amplitude_min"`
	AmplitudeMax float64 `toml:"amplitude_max"`
	SpeedMin     float64 `toml:"speed_min"`
	SpeedMax     float64 `toml:"speed_max"`

	AvoidImpulse float64 `toml:"avoid_impulse"`
	AvoidFrames  int     `toml:"avoid_frames"`
	AvoidDecay   float64 `toml:"avoid_decay"`
	HelpImpulse  float64 `toml:"help_impulse"`

	SentenceGap float64 `toml:"sentence_gap"`
	OptionGap   float64 `toml:"option_gap"`
	// OptionRows is how many text lines below a word its role labels sit.
	OptionRows float64 `toml:"option_rows"`

	CenterMin   float64 `toml:"center_min"`
	CenterMax   float64 `toml:"center_max"`
	EjectRadius float64 `toml:"eject_radius"`
	KickImpulse float64 `toml:"kick_impulse"`
	KickFrames  int     `toml:"kick_frames"`

	HelpWidth  float64 `toml:"help_width"`
	HelpHeight float64 `toml:"help_height"`
}

// DefaultConfig returns the exhibit's stock tuning.
func DefaultConfig() Config {
	return Config{
		MinDistance:       50,
		Margin:            40,
		Cluster:           true,
		ClusterMin:        50,
		ClusterMax:        150,
		PlacementAttempts: 2000,

		IdleLerp:     0.04,
		SentenceLerp: 0.18,
		AmplitudeMin: 6,
		AmplitudeMax: 18,
		SpeedMin:     0.002,
		SpeedMax:     0.01,

		AvoidImpulse: 30,
		AvoidFrames:  60,
		AvoidDecay:   0.92,
		HelpImpulse:  6,

		SentenceGap: 12,
		OptionGap:   8,
		OptionRows:  1,

		CenterMin:   0.30,
		CenterMax:   0.70,
		EjectRadius: 0.25,
		KickImpulse: 40,
		KickFrames:  40,

		HelpWidth:  208,
		HelpHeight: 80,
	}
}
