// Package config loads voicetext configuration.
//
// Values come from, in increasing precedence, a config.yml file, a .env file
// and the process environment. Environment variables map onto nested keys by
// splitting on underscores, so SERVER_PORT sets server.port and
// DEEPGRAM_MODEL sets deepgram.model.
//
//	var cfg config.AppConfig
//	if err := config.Load("voicetext", &cfg); err != nil {
//	    return err
//	}
//	cfg.ApplyDefaults()
//	if err := cfg.Validate(); err != nil {
//	    return err
//	}
package config
