package config

import (
	"log"
	"os"
	"strconv"

	"github.com/joho/godotenv"
)

func Config(key string) string {
	err := godotenv.Load(".env")
	if err != nil {
		log.Println("Warning: .env file not found, reading from system environment variables")
	}

	return os.Getenv(key)
}

// TeacherSplitRatio is the share of each enrollment's price paid out to the
// teacher. Defaults to 0.8 when TEACHER_SPLIT_RATIO is unset or malformed.
func TeacherSplitRatio() float64 {
	ratio, err := strconv.ParseFloat(Config("TEACHER_SPLIT_RATIO"), 64)
	if err != nil || ratio <= 0 || ratio > 1 {
		return 0.8
	}
	return ratio
}
