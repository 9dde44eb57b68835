package config

const (
	// Configuration file paths
	ConfigPathNameWords = "configs/naming/words.json"
)
