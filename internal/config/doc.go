// Package config provides configuration loading for the edawatch job monitor.
//
// # Sources
//
// Settings are layered, later sources winning:
//
//  1. Built-in defaults (Default)
//  2. A YAML file, /etc/edawatch/config.yaml unless --config is given
//  3. EDAWATCH_PREFIX, EDAWATCH_HOURS and EDAWATCH_RUNTIME
//  4. Command-line flags that were explicitly set
//
// # File Format
//
//	prefix: ansible-job-
//	hours: 12
//	runtime: podman
//	host: eda-node-01
//	pretty: true
//	concurrency: 4
//	timeout: 2m
//	min_ansible_version: "2.14"
//
// Unknown keys are rejected so typos do not silently fall back to defaults.
//
// # Validation
//
// Validate checks the runtime name, that hours is a finite non-negative
// number, and that concurrency and timeout are sane.
package config
