package main

import (
	"fmt"
	"os"

	"pawnops/cmd"
	httpadapter "pawnops/internal/adapters/in/http"

	"github.com/joho/godotenv"
	"github.com/labstack/echo/v4"
	"github.com/labstack/gommon/log"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
)

func main() {
	configs := getConfigs()

	gormDB := mustConnectDB(configs)

	app, err := cmd.NewCompositionRoot(configs, gormDB)
	if err != nil {
		log.Fatalf("Failed to build composition root: %v", err)
	}

	jobManager := app.CreateJobManager()
	if err := jobManager.StartAll(); err != nil {
		log.Fatalf("Failed to start background jobs: %v", err)
	}
	defer jobManager.StopAll()

	startWebServer(&app, configs.HTTPPort)
}

func getConfigs() cmd.Config {
	config := cmd.Config{
		HTTPPort:                     goDotEnvVariable("HTTP_PORT"),
		DBHost:                       goDotEnvVariable("DB_HOST"),
		DBPort:                       goDotEnvVariable("DB_PORT"),
		DBUser:                       goDotEnvVariable("DB_USER"),
		DBPassword:                   goDotEnvVariable("DB_PASSWORD"),
		DBName:                       goDotEnvVariable("DB_NAME"),
		DBSslMode:                    goDotEnvVariable("DB_SSLMODE"),
		AssignmentExpirySchedule:     goDotEnvVariable("ASSIGNMENT_EXPIRY_SCHEDULE"),
		ReconciliationReportSchedule: goDotEnvVariable("RECONCILIATION_REPORT_SCHEDULE"),
	}

	// Defaults: expiry sweep every minute, reconciliation report hourly.
	if config.AssignmentExpirySchedule == "" {
		config.AssignmentExpirySchedule = "0 * * * * *"
	}
	if config.ReconciliationReportSchedule == "" {
		config.ReconciliationReportSchedule = "0 0 * * * *"
	}

	return config
}

func goDotEnvVariable(key string) string {
	err := godotenv.Load(".env")
	if err != nil {
		log.Fatalf("Error loading .env file")
	}
	return os.Getenv(key)
}

func mustConnectDB(configs cmd.Config) *gorm.DB {
	dsn := fmt.Sprintf("host=%s port=%s user=%s password=%s dbname=%s sslmode=%s",
		configs.DBHost, configs.DBPort, configs.DBUser, configs.DBPassword, configs.DBName, configs.DBSslMode)

	gormDB, err := gorm.Open(postgres.Open(dsn), &gorm.Config{})
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}
	return gormDB
}

func startWebServer(app *cmd.CompositionRoot, port string) {
	server := httpadapter.NewServer(
		app.CreateCreateAssignmentCommandHandler(),
		app.CreateVerifyPickupCommandHandler(),
		app.CreateVerifyDropoffCommandHandler(),
		app.CreateSetAssignmentStatusCommandHandler(),
		app.CreateRecordLoanDisbursementCommandHandler(),
		app.CreateGetActiveAssignmentsQueryHandler(),
		app.CreateGetBranchAssignmentsQueryHandler(),
		app.CreateGetAssignmentQueryHandler(),
		app.CreateGetBranchCapitalQueryHandler(),
		app.CreateGetBranchLedgerQueryHandler(),
		app.CreateGetReconciliationLogQueryHandler(),
		app.Tracker(),
	)

	e := echo.New()
	server.RegisterRoutes(e)

	e.Logger.Fatal(e.Start(fmt.Sprintf("0.0.0.0:%s", port)))
}
