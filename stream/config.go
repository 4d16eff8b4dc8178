package stream

// Config holds the demo application settings, decoded from YAML.
type Config struct {
	Mqtt struct {
		URL      string `yaml:"url"`
		Username string `yaml:"username"`
		Password string `yaml:"password"`
		Topic    string `yaml:"topic"`
	} `yaml:"mqtt"`
	Animation struct {
		Pixels            int     `yaml:"pixels"`
		FrameRate         float64 `yaml:"frameRate"`
		CycleSecs         float64 `yaml:"cycleSecs"`
		TransitionSecs    float64 `yaml:"transitionSecs"`
		Overshoots        int     `yaml:"overshoots"`
		OvershootHalflife float64 `yaml:"overshootHalflife"`
	} `yaml:"animation"`
}

// ApplyDefaults fills in any animation settings missing from the YAML.
func (c *Config) ApplyDefaults() {
	a := &c.Animation
	if a.Pixels == 0 {
		a.Pixels = 500
	}
	if a.FrameRate == 0 {
		a.FrameRate = 30
	}
	if a.CycleSecs == 0 {
		a.CycleSecs = 60
	}
	if a.TransitionSecs == 0 {
		a.TransitionSecs = 5
	}
	if a.OvershootHalflife == 0 {
		a.Overshoots = 2
		a.OvershootHalflife = 0.2
	}
}
