package common

const (
	EnvKeyGoEnv    string = "GO_ENV"
	EnvKeyLogLevel string = "LOG_LEVEL"

	EnvKeyRunIntegrationTests string = "RUN_INTEGRATION_TESTS"

	EnvKeyDBType string = "BATTLOGGER_DB_TYPE"
	EnvKeyDbPath string = "BATTLOGGER_DB_PATH"

	EnvKeyHttpHostPort string = "BATTLOGGER_HTTP_HOST_PORT"
	EnvKeyGrpcHostPort string = "BATTLOGGER_GRPC_HOST_PORT"

	EnvKeyDefaultRate  string = "BATTLOGGER_DEFAULT_RATE"
	EnvKeyDefaultBurst string = "BATTLOGGER_DEFAULT_BURST"
	EnvKeyHttpRate     string = "BATTLOGGER_HTTP_RATE"

	LoggerNameBattlogCore   string = "battlog_core"
	LoggerNameRestfulServer string = "restful_server"
	LoggerNameGrpcServer    string = "grpc_server"
	LoggerNameDB            string = "db"

	LoggerFieldCategory          string = "category"
	LoggerCategoryChemistry      string = "chemistry"
	LoggerCategoryFormFactor     string = "formfactor"
	LoggerCategoryModel          string = "model"
	LoggerCategoryBattery        string = "battery"
	LoggerCategoryTestRun        string = "testrun"
	LoggerCategoryImportExport   string = "import_export"
	LoggerCategoryReferenceCache string = "cache"
)
