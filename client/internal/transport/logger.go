package transport

import "github.com/rs/zerolog/log"

// zerologAdapter routes resty's internal messages into the global logger.
type zerologAdapter struct{}

func (zerologAdapter) Errorf(format string, v ...interface{}) {
	log.Error().Str("component", "resty").Msgf(format, v...)
}

func (zerologAdapter) Warnf(format string, v ...interface{}) {
	log.Warn().Str("component", "resty").Msgf(format, v...)
}

func (zerologAdapter) Debugf(format string, v ...interface{}) {
	log.Debug().Str("component", "resty").Msgf(format, v...)
}
