package main

import (
	"os"

	"github.com/joho/godotenv"
	"github.com/sirupsen/logrus"

	"github.com/vit0-9/dns_lookup_api/pkg/utils"
)

func main() {
	logrus.SetFormatter(&logrus.TextFormatter{FullTimestamp: true})

	if err := godotenv.Load(); err != nil {
		logrus.Warn("No .env file found, using environment variables from system if set")
	}

	utils.LoadMaxMindDBs(os.Getenv("MMDB_CITY_PATH"), os.Getenv("MMDB_ASN_PATH"))
	defer utils.CloseMaxMindDBs()

	app, err := NewApp()
	if err != nil {
		logrus.WithError(err).Fatal("Failed to initialize application")
	}

	port := os.Getenv("PORT")
	if port == "" {
		port = "8080"
	}

	if err := app.Start(":" + port); err != nil {
		logrus.WithError(err).Fatal("Server error")
	}
}
