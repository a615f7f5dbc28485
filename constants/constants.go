package constants

import (
	"strings"

	"github.com/spf13/viper"
)

// Conf reads FRETDEX_* environment variables over the defaults below.
var Conf *viper.Viper

func init() {
	Conf = viper.New()
	Conf.SetTypeByDefaultValue(true)
	Conf.SetDefault("port", 8080)
	Conf.SetDefault("allowed_origins", []string{"*"})
	Conf.SetDefault("frets", 22)
	Conf.SetDefault("prefer_flats", false)
	Conf.SetDefault("debug", false)
	Conf.SetDefault("midi_port", "")
	Conf.SetDefault("debounce_ms", 150)

	Conf.SetEnvPrefix("fretdex")
	Conf.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	Conf.AutomaticEnv()
}

func GetPort() int {
	return Conf.GetInt("port")
}

func GetAllowedOrigins() []string {
	return Conf.GetStringSlice("allowed_origins")
}

func GetFrets() int {
	return Conf.GetInt("frets")
}

func PreferFlats() bool {
	return Conf.GetBool("prefer_flats")
}

func Debug() bool {
	return Conf.GetBool("debug")
}

func GetMidiPort() string {
	return Conf.GetString("midi_port")
}

func GetDebounceMs() int {
	return Conf.GetInt("debounce_ms")
}

// MaxFrets bounds the frets setting.
const MaxFrets = 36
