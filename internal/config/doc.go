// Package config provides configuration management for wdbin.
//
// Configuration is read with Viper from config.yaml, searched in the current
// directory and then in the wdbin config directory (see [paths.ConfigDir]).
// Every key may be overridden from the environment using the WDBIN_ prefix,
// with dots replaced by underscores:
//
//	WDBIN_BINARY_DIR=/opt/drivers
//	WDBIN_DRIVER_PREFERENCES_VERSION=114.0.5735.90
//
// # Configuration File
//
//	version: 1
//	preset: chromedriver
//	binary_dir: ~/.local/share/wdbin/bin
//	driver:
//	  executables:
//	    linux64: chromedriver
//	  renames:
//	    - from: chromedriver.exe
//	      to: chromedriver-win.exe
//	  polling:
//	    max_attempts: 3
//	    delay: 250ms
//	  version_map:
//	    - browser: 114
//	      drivers: 114.0.5735.90
//	    - browser: default
//	      drivers: [2.46]
//
// The version map is a sequence so that declaration order survives Viper,
// which does not preserve mapping order. Fields left empty are filled from the
// selected preset before [Validate] runs.
package config
