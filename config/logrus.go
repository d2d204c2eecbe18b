package config

import (
	"fmt"
	"net/http"

	"github.com/gofiber/fiber/v2"
	"github.com/sirupsen/logrus"
)

var logrusInstance *logrus.Logger

func GetLogrusInstance() *logrus.Logger {
	if logrusInstance == nil {
		logrusInstance = logrus.New()
		logrusInstance.SetFormatter(&logrus.JSONFormatter{})
	}
	return logrusInstance
}

// SetLogLevel applies LOG_LEVEL; an unknown level keeps the current one.
func SetLogLevel(level string) {
	lvl, err := logrus.ParseLevel(level)
	if err != nil {
		GetLogrusInstance().Warnf("unknown log level %q, keeping %s", level, GetLogrusInstance().GetLevel())
		return
	}
	GetLogrusInstance().SetLevel(lvl)
}

const (
	green  = "\033[32m" // 2xx
	yellow = "\033[33m" // 3xx and 404
	red    = "\033[31m" // 4xx and 5xx
	reset  = "\033[0m"
)

func statusColor(statusCode int) string {
	switch {
	case statusCode >= fiber.StatusOK && statusCode < fiber.StatusMultipleChoices:
		return green
	case statusCode == fiber.StatusNotFound,
		statusCode >= fiber.StatusMultipleChoices && statusCode < fiber.StatusBadRequest:
		return yellow
	case statusCode >= fiber.StatusBadRequest:
		return red
	default:
		return reset
	}
}

func PrintLogInfo(username *string, statusCode int, functionName string) {
	user := "Unknown"
	if username != nil && *username != "" {
		user = *username
	}

	logMsg := fmt.Sprintf("User: %s, (%s) => Status: %s[%d] - %s%s", user, functionName, statusColor(statusCode), statusCode, http.StatusText(statusCode), reset)
	GetLogrusInstance().WithFields(logrus.Fields{
		"user":   user,
		"func":   functionName,
		"status": statusCode,
	}).Info(logMsg)
}
