package log

import (
	"fmt"
	"os"

	log "github.com/sirupsen/logrus"
)

// LogLevel filters messages before they reach logrus.
type LogLevel int

const (
	DEBUG LogLevel = iota
	INFO
	WARNING
	ERROR
	SILENT
)

var level = INFO

func init() {
	log.SetOutput(os.Stdout)
	log.SetLevel(log.DebugLevel)
}

func SetLevel(newLevel LogLevel) {
	level = newLevel
}

func Level() LogLevel {
	return level
}

func Debugln(format string, v ...interface{}) {
	print(DEBUG, format, v...)
}

func Infoln(format string, v ...interface{}) {
	print(INFO, format, v...)
}

func Warnln(format string, v ...interface{}) {
	print(WARNING, format, v...)
}

func Errorln(format string, v ...interface{}) {
	print(ERROR, format, v...)
}

func print(l LogLevel, format string, v ...interface{}) {
	if l < level {
		return
	}

	msg := fmt.Sprintf(format, v...)
	switch l {
	case DEBUG:
		log.Debugln(msg)
	case INFO:
		log.Infoln(msg)
	case WARNING:
		log.Warnln(msg)
	case ERROR:
		log.Errorln(msg)
	}
}

func (l LogLevel) String() string {
	switch l {
	case DEBUG:
		return "debug"
	case INFO:
		return "info"
	case WARNING:
		return "warning"
	case ERROR:
		return "error"
	case SILENT:
		return "silent"
	default:
		return "unknown"
	}
}
