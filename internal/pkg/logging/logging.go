// Package logging builds the application-wide zap logger.
package logging

import "go.uber.org/zap"

// NewSugaredLogger returns a configured zap sugared logger.
// Development mode switches to the human-readable console encoder.
func NewSugaredLogger(development bool) (*zap.SugaredLogger, error) {
	var (
		logger *zap.Logger
		err    error
	)

	if development {
		logger, err = zap.NewDevelopment()
	} else {
		logger, err = zap.NewProduction()
	}
	if err != nil {
		return nil, err
	}

	return logger.Sugar(), nil
}
