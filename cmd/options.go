/*
Copyright © 2025 Matt Krueger <mkrueger@rstms.net>
All rights reserved.

Redistribution and use in source and binary forms, with or without
modification, are permitted provided that the following conditions are met:

 1. Redistributions of source code must retain the above copyright notice,
    this list of conditions and the following disclaimer.

 2. Redistributions in binary form must reproduce the above copyright notice,
    this list of conditions and the following disclaimer in the documentation
    and/or other materials provided with the distribution.

 3. Neither the name of the copyright holder nor the names of its contributors
    may be used to endorse or promote products derived from this software
    without specific prior written permission.

THIS SOFTWARE IS PROVIDED BY THE COPYRIGHT HOLDERS AND CONTRIBUTORS "AS IS"
AND ANY EXPRESS OR IMPLIED WARRANTIES, INCLUDING, BUT NOT LIMITED TO, THE
IMPLIED WARRANTIES OF MERCHANTABILITY AND FITNESS FOR A PARTICULAR PURPOSE
ARE DISCLAIMED. IN NO EVENT SHALL THE COPYRIGHT HOLDER OR CONTRIBUTORS BE
LIABLE FOR ANY DIRECT, INDIRECT, INCIDENTAL, SPECIAL, EXEMPLARY, OR
CONSEQUENTIAL DAMAGES (INCLUDING, BUT NOT LIMITED TO, PROCUREMENT OF
SUBSTITUTE GOODS OR SERVICES; LOSS OF USE, DATA, OR PROFITS; OR BUSINESS
INTERRUPTION) HOWEVER CAUSED AND ON ANY THEORY OF LIABILITY, WHETHER IN
CONTRACT, STRICT LIABILITY, OR TORT (INCLUDING NEGLIGENCE OR OTHERWISE)
ARISING IN ANY WAY OUT OF THE USE OF THIS SOFTWARE, EVEN IF ADVISED OF THE
POSSIBILITY OF SUCH DAMAGE.
*/
package cmd

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/fatih/color"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/rstms/memview/view"
)

func optionKey(name string) string {
	return view.ViperKey(strings.ReplaceAll(name, "-", "_"))
}

func OptionString(cmd *cobra.Command, name, flag, defaultValue, description string) {
	if flag == "" {
		cmd.PersistentFlags().String(name, defaultValue, description)
	} else {
		cmd.PersistentFlags().StringP(name, flag, defaultValue, description)
	}
	err := viper.BindPFlag(optionKey(name), cmd.PersistentFlags().Lookup(name))
	cobra.CheckErr(err)
}

func OptionSwitch(cmd *cobra.Command, name, flag, description string) {
	if flag == "" {
		cmd.PersistentFlags().Bool(name, false, description)
	} else {
		cmd.PersistentFlags().BoolP(name, flag, false, description)
	}
	err := viper.BindPFlag(optionKey(name), cmd.PersistentFlags().Lookup(name))
	cobra.CheckErr(err)
}

func ViperGetString(key string) string {
	return view.ViperGetString(key)
}

func ViperGetBool(key string) bool {
	return view.ViperGetBool(key)
}

func CobraAddCommand(parent, cmd *cobra.Command) {
	parent.AddCommand(cmd)
}

func InitConfig() {
	view.ViperSetDefaults()
	cfgFile = ViperGetString("config")
	if cfgFile != "" {
		viper.SetConfigFile(cfgFile)
	} else {
		home, err := os.UserHomeDir()
		cobra.CheckErr(err)
		viper.AddConfigPath(filepath.Join(home, ".config", "memview"))
		viper.SetConfigName("config")
		viper.SetConfigType("yaml")
	}
	viper.SetEnvPrefix("MEMVIEW")
	viper.SetEnvKeyReplacer(strings.NewReplacer(view.ViperPrefix+".", "", ".", "_", "-", "_"))
	viper.AutomaticEnv()
	err := viper.ReadInConfig()
	if err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok || cfgFile != "" {
			cobra.CheckErr(err)
		}
	}
}

func InitLogging() {
	level := zerolog.InfoLevel
	if name := ViperGetString("log_level"); name != "" {
		parsed, err := zerolog.ParseLevel(strings.ToLower(name))
		cobra.CheckErr(err)
		level = parsed
	}
	if ViperGetBool("debug") || ViperGetBool("verbose") {
		level = zerolog.DebugLevel
	}
	if ViperGetBool("no_color") {
		color.NoColor = true
	}
	zerolog.SetGlobalLevel(level)
	zerolog.TimeFieldFormat = time.RFC3339Nano
	log.Logger = zerolog.
		New(zerolog.ConsoleWriter{
			Out:        os.Stderr,
			TimeFormat: "2006-01-02T15:04:05.000Z07:00",
			NoColor:    color.NoColor,
		}).
		With().Timestamp().Caller().
		Logger()
}

func FormatJSON(v any) string {
	formatted, err := json.MarshalIndent(v, "", "  ")
	cobra.CheckErr(err)
	return string(formatted)
}

// ReadInput reads FILE, or stdin for '-', and applies the --offset and
// --length window.
func ReadInput(filename string) ([]byte, error) {
	var data []byte
	var err error
	if filename == "-" {
		data, err = io.ReadAll(os.Stdin)
	} else {
		data, err = os.ReadFile(filename)
	}
	if err != nil {
		return nil, fmt.Errorf("failed reading input: %v", err)
	}
	log.Debug().Str("file", filename).Int("bytes", len(data)).Msg("read input")
	return applyWindow(data, ViperGetString("offset"), ViperGetString("length"))
}

func applyWindow(data []byte, offsetParam, lengthParam string) ([]byte, error) {
	offset := int64(0)
	if offsetParam != "" {
		value, err := view.SizeParse(offsetParam)
		if err != nil {
			return nil, err
		}
		offset = value
	}
	if offset > int64(len(data)) {
		return nil, fmt.Errorf("offset %d beyond end of input (%d bytes)", offset, len(data))
	}
	end := int64(len(data))
	if lengthParam != "" {
		length, err := view.SizeParse(lengthParam)
		if err != nil {
			return nil, err
		}
		if length < end-offset {
			end = offset + length
		}
	}
	return data[offset:end], nil
}
