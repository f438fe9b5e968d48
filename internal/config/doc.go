// Package config loads generator settings through viper.
//
// Every input and output location has a default under data/, matching the
// layout the generator has always used. An optional .bsfield.yaml in the
// working directory may override them; the environment only controls
// logging (BSFIELD_LOG_LEVEL, BSFIELD_LOG_FORMAT).
package config
