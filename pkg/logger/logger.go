// Package logger builds the process-wide zap logger. Development mode uses
// the console encoder; everything else logs structured JSON.
package logger

import (
	"go.uber.org/zap"
)

func New(env string) (*zap.Logger, error) {
	var (
		log *zap.Logger
		err error
	)
	if env == "development" {
		log, err = zap.NewDevelopment()
	} else {
		log, err = zap.NewProduction()
	}
	if err != nil {
		return nil, err
	}
	zap.ReplaceGlobals(log)
	return log, nil
}
