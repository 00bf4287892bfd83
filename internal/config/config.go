package config

type Config struct {
	Environment Environment
	Log         Log
	HTTP        HTTPServer
	DatabaseURL string `env:"DATABASE_URL" envDefault:"spinwheel.db"`

	Wheel Wheel `envPrefix:"WHEEL_"`
}

type Wheel struct {
	// SpinDurationMS is handed to the presentation layer as the CSS
	// transition duration; the core itself never times the animation.
	SpinDurationMS int `env:"SPIN_DURATION_MS" envDefault:"5000"`
}

type Environment struct {
	Name string `env:"ENVIRONMENT" envDefault:"development"`
}

type Log struct {
	Level  string `env:"LOG_LEVEL" envDefault:"info"`
	Format string `env:"LOG_FORMAT" envDefault:"json"`
}

type HTTPServer struct {
	Host string `env:"HTTP_HOST" envDefault:"0.0.0.0"`
	Port string `env:"HTTP_PORT" envDefault:"8080"`
}
