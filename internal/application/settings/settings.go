// Package settings defines application-level configuration data.
package settings

import "time"

// KeyMapConfig defines the configuration for keybindings.
type KeyMapConfig struct {
	Up       string `yaml:"up" kong:"help='Up key',default='k,up'"`
	Down     string `yaml:"down" kong:"help='Down key',default='j,down'"`
	UpPage   string `yaml:"up_page" kong:"help='Page Up key',default='ctrl+u,pgup'"`
	DownPage string `yaml:"down_page" kong:"help='Page Down key',default='ctrl+d,pgdown'"`
	Search   string `yaml:"search" kong:"help='Focus search bar key',default='/'"`
	Open     string `yaml:"open" kong:"help='Enlarge image key',default='enter'"`
	Back     string `yaml:"back" kong:"help='Close/Back key',default='esc'"`
	LoadMore string `yaml:"load_more" kong:"help='Load more key',default='m'"`
	Retry    string `yaml:"retry" kong:"help='Retry failed page key',default='r'"`
	Save     string `yaml:"save" kong:"help='Save image key',default='b'"`
	Browser  string `yaml:"browser" kong:"help='Open image page in browser key',default='o'"`
	Dismiss  string `yaml:"dismiss" kong:"help='Dismiss notifications key',default='x'"`
	Quit     string `yaml:"quit" kong:"help='Quit key',default='q'"`
}

// ThemeConfig defines the color theme configuration.
type ThemeConfig struct {
	Accent string `yaml:"accent" kong:"help='Accent color',default='205'"`
	Tags   string `yaml:"tags" kong:"help='Tag text color',default='244'"`
}

// PixabayConfig defines search provider settings.
type PixabayConfig struct {
	APIKey         string `yaml:"api_key" kong:"help='Pixabay API key',env='PIXABAY_API_KEY'"`
	BaseURL        string `yaml:"base_url" kong:"help='Pixabay API endpoint',default='https://pixabay.com/api/'"`
	ImageType      string `yaml:"image_type" kong:"help='Image type (all/photo/illustration/vector)',default='photo'"`
	Orientation    string `yaml:"orientation" kong:"help='Orientation (all/horizontal/vertical)',default='horizontal'"`
	SafeSearch     bool   `yaml:"safe_search" kong:"help='Only return images suitable for all ages',default='true'"`
	TimeoutSeconds int    `yaml:"timeout_seconds" kong:"help='Request timeout in seconds',default='10'"`
}

// Settings represents the application configuration.
type Settings struct {
	Pixabay     PixabayConfig `yaml:"pixabay" kong:"embed,prefix='pixabay.'"`
	KeyMap      KeyMapConfig  `yaml:"keymap" kong:"embed,prefix='keymap.'"`
	Theme       ThemeConfig   `yaml:"theme" kong:"embed,prefix='theme.'"`
	ToastMillis int           `yaml:"toast_millis" kong:"help='Notification display time in milliseconds',default='1500'"`
	SavedFile   string        `yaml:"saved_file" kong:"help='Saved images database path'"`
	LogFile     string        `yaml:"log_file" kong:"help='Log file path'"`
	LogLevel    string        `yaml:"log_level" kong:"help='Log level (debug/info/warn/error)',default='info'"`
}

// ToastDuration returns how long a notification stays on screen.
func (s Settings) ToastDuration() time.Duration {
	if s.ToastMillis <= 0 {
		return 1500 * time.Millisecond
	}
	return time.Duration(s.ToastMillis) * time.Millisecond
}

// RequestTimeout returns the provider request timeout. Zero disables it.
func (s Settings) RequestTimeout() time.Duration {
	if s.Pixabay.TimeoutSeconds <= 0 {
		return 0
	}
	return time.Duration(s.Pixabay.TimeoutSeconds) * time.Second
}
