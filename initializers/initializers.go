package initializers

import (
	"context"

	"approval-flow-backend/config"
	"approval-flow-backend/fiberlog"
	authhandler "approval-flow-backend/lib/auth"
	requesthandler "approval-flow-backend/lib/request"
	usershandler "approval-flow-backend/lib/users"
)

var LoggerConfig *fiberlog.Config

func InitAllServices(ctx context.Context) {
	LoggerConfig = InitLogger()
	config.InitConfig()
	InitDBConnection()
	usershandler.NewHandler()
	authhandler.NewHandler()
	requesthandler.NewHandler()
}
