package aldicrawler

import (
	"io"
	"log"
	"os"
	"path/filepath"
	"time"
)

// defaultLogger writes to both the terminal and a dated log file under
// the storage directory for the site.
type defaultLogger struct {
	app    *Crawler
	logger *log.Logger
}

// newDefaultLogger creates a new instance of defaultLogger.
func newDefaultLogger(app *Crawler, siteName string) *defaultLogger {
	currentDate := time.Now().Format("2006-01-02")
	directory := filepath.Join(app.storagePath, "logs", siteName)
	err := os.MkdirAll(directory, 0755)
	if err != nil {
		log.Fatalf("Failed to create log directory: %v", err)
	}

	logFilePath := filepath.Join(directory, currentDate+"_application.log")

	file, err := os.OpenFile(logFilePath, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0666)
	if err != nil {
		log.Fatalf("Failed to open log file: %v", err)
	}
	// Create a multi-writer that writes to both the file and the terminal.
	multiWriter := io.MultiWriter(file, os.Stdout)

	return &defaultLogger{
		app:    app,
		logger: log.New(multiWriter, "⏱️ ", log.LstdFlags),
	}
}

func (l *defaultLogger) Info(format string, args ...interface{}) {
	l.logger.Printf("📢 INFO: "+format, args...)
}

func (l *defaultLogger) Warn(format string, args ...interface{}) {
	l.logger.Printf("⚠️ WARN: "+format, args...)
}

func (l *defaultLogger) Debug(format string, args ...interface{}) {
	l.logger.Printf("🐞 DEBUG: "+format, args...)
}

func (l *defaultLogger) Error(format string, args ...interface{}) {
	l.logger.Printf("🛑 ERROR: "+format, args...)
}

func (l *defaultLogger) Summary(format string, args ...interface{}) {
	l.logger.Printf("📜 SUMMARY: "+format, args...)
}

func (l *defaultLogger) Fatal(format string, args ...interface{}) {
	l.logger.Fatalf("🚨 FATAL: "+format, args...)
}

// Html logs an error message and persists the offending page content to
// the html log directory for later inspection.
func (l *defaultLogger) Html(html, url, msg string) {
	l.Error("%s", msg)
	err := l.app.writePageContentToFile(html, url, msg)
	if err != nil {
		l.logger.Printf("⚛️ HTML: %v", err)
	}
}
