package view

import (
	"bytes"

	"github.com/rs/zerolog/log"
	"github.com/spf13/viper"

	"github.com/rstms/memview/dump"
)

const ViperPrefix = "memview"

func ViperInit() {
	if ViperGetBool("debug") {
		var buf bytes.Buffer
		err := viper.WriteConfigTo(&buf)
		if err != nil {
			log.Warn().Err(err).Msg("failed writing config")
			return
		}
		log.Debug().Msgf("config file: %s\n### START ###\n%s\n### END ###", viper.ConfigFileUsed(), buf.String())
	}
}

func ViperSetDefaults() {
	ViperSetDefault("log_level", "info")
	ViperSetDefault("concurrent_threshold", int64(dump.DefaultConcurrentThreshold))
}

func ViperKey(key string) string {
	return ViperPrefix + "." + key
}

func ViperGetString(key string) string {
	return viper.GetString(ViperKey(key))
}

func ViperGetBool(key string) bool {
	return viper.GetBool(ViperKey(key))
}

func ViperGetInt64(key string) int64 {
	return viper.GetInt64(ViperKey(key))
}

func ViperSetDefault(key string, value any) {
	viper.SetDefault(ViperKey(key), value)
}

func ViperSet(key string, value any) {
	viper.Set(ViperKey(key), value)
}
