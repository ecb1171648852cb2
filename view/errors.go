package view

import (
	"errors"
	"fmt"

	"github.com/rs/zerolog/log"
)

var ErrInvalidSearchMode = errors.New("invalid search mode")
var ErrInvalidDirection = errors.New("invalid direction")
var ErrInvalidHashKey = errors.New("invalid hash key")

func Fatal(err error) error {
	if ViperGetBool("debug") {
		log.Error().Err(err).Send()
	}
	return err
}

func Fatalf(format string, args ...any) error {
	return Fatal(fmt.Errorf(format, args...))
}
