package main

import (
	"os"

	"github.com/ancientastronautunearthed/fiber-app/config"
	"github.com/ancientastronautunearthed/fiber-app/routes"
	"github.com/ancientastronautunearthed/fiber-app/services"
	"github.com/ancientastronautunearthed/fiber-app/utils"

	"github.com/joho/godotenv"
)

func main() {
	godotenv.Load()

	config.InitLogger()
	defer config.Logger.Sync()

	config.InitDB()
	if os.Getenv("S3_BUCKET") != "" {
		utils.InitS3()
	}

	gen := services.NewOpenAIGenerator(config.Logger)
	art := services.NewImageService(config.Logger)

	riddles := services.NewRiddleService(config.DB, gen, config.Logger)
	riddles.StartDailyScheduler()

	r := routes.SetupRouter(config.DB, gen, art, config.Logger)
	r.Run(":8080")
}
