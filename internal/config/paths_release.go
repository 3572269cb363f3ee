//go:build !dev

package config

func devDataDir() string { return "" }
