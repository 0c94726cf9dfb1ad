package env

import (
	"log"
	"os"

	"github.com/joho/godotenv"
)

// vars holds the key/value pairs read from the .env file. OS environment
// variables win over file values so container deployments can override
// single keys without editing the file.
var vars map[string]string

// envFileLocations is searched in order; the binary may run from the project
// root or from a cmd/ subdirectory.
var envFileLocations = []string{
	".env",
	"../../.env",
	"../../../.env",
}

// SetupEnvFile loads the first .env file found. A missing file is not fatal,
// the process then runs on OS environment variables alone.
func SetupEnvFile() {
	for _, location := range envFileLocations {
		loaded, err := godotenv.Read(location)
		if err != nil {
			continue
		}
		vars = loaded
		return
	}
	log.Println("No .env file found, using OS environment only")
}

// GetEnv returns the value for key, preferring the OS environment over the
// .env file, or def when neither is set.
func GetEnv(key, def string) string {
	if val := os.Getenv(key); val != "" {
		return val
	}
	if val, ok := vars[key]; ok && val != "" {
		return val
	}
	return def
}

// IsDev reports whether the app runs in development mode
func IsDev() bool {
	return GetEnv("APP_ENV", "prod") == "dev"
}
