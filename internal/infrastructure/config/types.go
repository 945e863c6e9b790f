package config

// AppConfig is the root config for app.toml
type AppConfig struct {
	Display DisplayConfig `toml:"display"`
	Window  WindowConfig  `toml:"window"`
	Log     LogConfig     `toml:"log"`
}

// DisplayConfig sets the logical screen size and tick rate.
type DisplayConfig struct {
	ScreenWidth  int `toml:"screenWidth"`
	ScreenHeight int `toml:"screenHeight"`
	Scale        int `toml:"scale"` // Window pixels per logical pixel
	TPS          int `toml:"tps"`   // Updates per second
}

// WindowConfig sets the window title and resize behavior.
type WindowConfig struct {
	Title     string `toml:"title"`
	Resizable bool   `toml:"resizable"`
}

// LogConfig sets the log level.
type LogConfig struct {
	Level string `toml:"level"`
}

// Default values applied to zero fields.
const (
	DefaultScreenWidth  = 320
	DefaultScreenHeight = 240
	DefaultScale        = 2
	DefaultTPS          = 60
	DefaultTitle        = "Scene Stack"
	DefaultLogLevel     = "info"
)

// DT returns the fixed time step in seconds.
func (d DisplayConfig) DT() float64 {
	return 1.0 / float64(d.TPS)
}

func (c *AppConfig) applyDefaults() {
	if c.Display.ScreenWidth == 0 {
		c.Display.ScreenWidth = DefaultScreenWidth
	}
	if c.Display.ScreenHeight == 0 {
		c.Display.ScreenHeight = DefaultScreenHeight
	}
	if c.Display.Scale == 0 {
		c.Display.Scale = DefaultScale
	}
	if c.Display.TPS == 0 {
		c.Display.TPS = DefaultTPS
	}
	if c.Window.Title == "" {
		c.Window.Title = DefaultTitle
	}
	if c.Log.Level == "" {
		c.Log.Level = DefaultLogLevel
	}
}
