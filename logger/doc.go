// Package logger provides structured logging for voicetext using zerolog.
//
// It supports JSON and console output, log level configuration, and
// component-scoped loggers with structured fields.
//
// # Configuration
//
//	logging:
//	  level: "debug"
//	  format: "console"
//
// # Usage
//
//	log := logger.WithComponent("deepgram")
//	log.Debug("sending audio", logger.Fields(logger.FieldPayloadBytes, len(audio)))
//
// Secrets are never logged; use CredentialFields to describe a credential.
package logger
